package main

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/foo-jin/txtar"
)

var (
	packOut     string
	packComment string
)

// packCmd represents the pack command
var packCmd = &cobra.Command{
	Use:                   "pack [flags] DIR",
	DisableFlagsInUseLine: true,
	Args:                  cobra.ExactArgs(1),
	Short:                 "Pack a directory tree into an archive",
	Long: `Pack walks the named directory and emits a txtar archive containing every
regular file under it, named by its slash-separated path relative to the
directory. The archive is written to standard output unless -o is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		root := args[0]

		var files []txtar.File
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.Type().IsRegular() {
				if !d.IsDir() {
					log.Warnf("skipping irregular file %q", path)
				}
				return nil
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			files = append(files, txtar.NewFile(filepath.ToSlash(rel), string(data)))
			return nil
		})
		if err != nil {
			return err
		}

		a := txtar.New(packComment, files...)
		w := os.Stdout
		if packOut != "" {
			f, err := os.Create(packOut)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}
		_, err = a.WriteTo(w)
		return err
	},
}

func init() {
	packCmd.Flags().StringVarP(&packOut, "output", "o", "", "write the archive to this file instead of stdout")
	packCmd.Flags().StringVarP(&packComment, "comment", "c", "", "comment text to place before the first file")
	rootCmd.AddCommand(packCmd)
}

package main

import (
	"github.com/spf13/cobra"
)

var extractDir string

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:                   "extract [flags] [FILE]",
	DisableFlagsInUseLine: true,
	Args:                  cobra.MaximumNArgs(1),
	Short:                 "Extract an archive's files into a directory",
	Long: `Extract parses the named txtar file (or standard input) and writes each of
its files under the destination directory. Intermediate directories are
created as needed. Extraction refuses file names that would escape the
destination directory and never overwrites an existing file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := readArchive(args)
		if err != nil {
			cmd.SilenceUsage = true
			return err
		}
		cmd.SilenceUsage = true
		return a.Materialize(extractDir)
	},
}

func init() {
	extractCmd.Flags().StringVarP(&extractDir, "dir", "C", ".", "directory to extract files into")
	rootCmd.AddCommand(extractCmd)
}

package main

import (
	"os"

	"github.com/spf13/cobra"
)

// fmtCmd represents the fmt command
var fmtCmd = &cobra.Command{
	Use:                   "fmt [FILE]",
	DisableFlagsInUseLine: true,
	Args:                  cobra.MaximumNArgs(1),
	Short:                 "Rewrite an archive in canonical form",
	Long: `Fmt parses the named txtar file (or standard input) and writes it back to
standard output in canonical serialized form, with every section terminated
by a newline.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		a, err := readArchive(args)
		if err != nil {
			return err
		}
		_, err = a.WriteTo(os.Stdout)
		return err
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}

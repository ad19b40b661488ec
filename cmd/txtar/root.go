package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/foo-jin/txtar"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "txtar",
	Short: "Read and write txtar text archives",
	Long: `The txtar utility works with txtar archives: plain-text files that bundle
a tree of text files into a single blob, using "-- name --" delimiter lines.
It can extract an archive onto the filesystem, pack a directory tree into an
archive, and reformat an archive into its canonical serialized form.`,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		return err
	}
	return nil
}

// readArchive parses the archive named by args[0], or the one on stdin when
// no argument is given.
func readArchive(args []string) (*txtar.Archive, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return txtar.Parse(data), nil
	}
	return txtar.ParseFile(args[0])
}

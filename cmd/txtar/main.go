package main

import (
	"os"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var log = logrus.NewEntry(logrus.StandardLogger())

func realMain() error {
	// Anything the user asked for goes to stdout; logging is unrequested
	// output and belongs on stderr so the archive stream stays clean.
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(new(prefixed.TextFormatter))
	log = logrus.WithField("prefix", "txtar")

	return Execute()
}

func main() {
	// wrapping main allows us to use defer in realMain and still exit
	// non-zero on failure
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}

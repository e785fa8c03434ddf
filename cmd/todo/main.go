package main

import (
	"os"

	"github.com/tgienger/todo/internal/cli"
)

// Version information set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(cli.Options{Version: version, Commit: commit, Date: date}); err != nil {
		os.Exit(1)
	}
}

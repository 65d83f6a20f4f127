package main

import (
	"fmt"
	"os"

	"github.com/fivetwenty-io/repuestos/cmd/repuestos/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := commands.NewRootCommand(commands.BuildInfo{
		Version: version,
		Commit:  commit,
		Built:   date,
	})

	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

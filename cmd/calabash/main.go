// Package main is the entry point for the calabash CLI.
package main

import (
	"fmt"
	"os"

	"github.com/calabashre/calabash/internal/cli"
	"github.com/calabashre/calabash/internal/config"
	"github.com/calabashre/calabash/internal/logging"
)

func main() {
	cfg := config.Load()
	logging.Setup(cfg.DevMode)

	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

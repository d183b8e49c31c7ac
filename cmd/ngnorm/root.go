package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"ngnorm-go/packages/compiler/core"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:          "ngnorm",
	Short:        "Normalize component template declarations",
	Long:         "ngnorm resolves component template declarations into their canonical form: templates loaded, style URLs made absolute, @imports folded in and content projection selectors extracted.",
	Version:      core.VersionFull,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

func newLogger() *log.Logger {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
}

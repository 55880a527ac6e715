// Package cli implements the describedroutes command line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/describedroutes/describedroutes/pkg/logging"
	"github.com/describedroutes/describedroutes/pkg/uritemplate"
)

var (
	// Persistent flags available to all subcommands
	logLevel  string
	logFormat string

	logger = logging.Nop()

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "describedroutes",
	Short: "describedroutes converts and expands resource template trees",
	Long: `describedroutes works with resource template documents: framework-neutral
metadata describing the URI structure of a web application as a tree of
named resources, their HTTP methods and their URI Templates.

Documents are read from files (JSON, YAML or XML, with ** glob support) or
from stdin, and can be re-emitted in any format, expanded against actual
parameter values, partially expanded into a smaller template tree, or
validated against the wire-format schema.`,
	SilenceUsage:  true,
	SilenceErrors: true, // We handle errors in Execute()
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.New(logLevel, logFormat, cmd.ErrOrStderr())
		slog.SetDefault(logger)
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// engine returns the URI Template engine shared by all commands.
func engine() *uritemplate.Engine {
	return uritemplate.New()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
}

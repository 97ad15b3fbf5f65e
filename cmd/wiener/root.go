package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the wiener CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wiener",
		Short: "Wiener's attack against RSA keys with a small private exponent",
		Long: `wiener recovers RSA private keys from public keys (N, e) whose private
exponent d is smaller than roughly N^(1/4)/3, using Wiener's
continued-fraction attack.

It can also generate deliberately vulnerable key pairs to demonstrate
the attack end to end.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewAttackCmd())
	cmd.AddCommand(NewKeygenCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogger returns a logger writing to stderr, at debug level when
// verbose is set.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// getVerboseFlag reads the persistent verbose flag.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return false
	}
	return verbose
}

// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// app carries flags and resources shared by every subcommand.
type app struct {
	verbose  bool
	envFiles []string
	logger   *slog.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "classica",
		Short: "Classical cipher toolkit",
		Long: `Classica is a CLI tool for the Hill, Caesar and Vigenère ciphers.
It can encrypt and decrypt text, generate Hill keys, recover Caesar keys
by frequency analysis and estimate password entropy.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging on stderr")
	root.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil, "read HILL_* variables from this .env file (repeatable)")

	root.AddCommand(
		newHillCommand(a),
		newCaesarCommand(a),
		newVigenereCommand(a),
		newEntropyCommand(a),
	)

	return root
}

// joinArgs treats all positional arguments as one message.
func joinArgs(args []string) string {
	return strings.Join(args, " ")
}

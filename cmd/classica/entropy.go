// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/classica/strength"
	"github.com/spf13/cobra"
)

func newEntropyCommand(_ *app) *cobra.Command {
	var (
		asJSON     bool
		userInputs []string
	)

	cmd := &cobra.Command{
		Use:   "entropy PASSWORD",
		Short: "Estimate password entropy and redundancy",
		Long: `Entropy prints the zxcvbn guessing entropy, the theoretical maximum for the
password's length, the redundancy between the two and the recommended
usage level (80 bits standalone, 50 with rate limiting, 13 with hardware).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := strength.Evaluate(args[0], userInputs...)
			if err != nil {
				return fmt.Errorf("entropy: %w", err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return json.NewEncoder(out).Encode(rep)
			}
			fmt.Fprintf(out, "entropy:              %.2f bits\n", rep.Entropy)
			fmt.Fprintf(out, "max entropy:          %.2f bits\n", rep.MaxEntropy)
			fmt.Fprintf(out, "max relative entropy: %.2f bits\n", rep.MaxRelativeEntropy)
			fmt.Fprintf(out, "charset entropy:      %.2f bits\n", rep.CharsetEntropy)
			fmt.Fprintf(out, "redundancy:           %.3f\n", rep.Redundancy)
			fmt.Fprintf(out, "score:                %d/4 (crack time %s)\n", rep.Score, rep.CrackTime)
			fmt.Fprintf(out, "level:                %s\n", rep.Level)
			fmt.Fprintf(out, "secure:               %t\n", rep.Secure)

			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	cmd.Flags().StringSliceVar(&userInputs, "user-input", nil, "words an attacker knows (name, site)")

	return cmd
}

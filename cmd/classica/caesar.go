// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/classica/caesar"
	"github.com/spf13/cobra"
)

func newCaesarCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "caesar",
		Short: "Caesar shift cipher",
		Long: `The Caesar cipher shifts every letter by a fixed number of positions.
Output keeps only the letters, upper-cased. Negative and large keys are reduced modulo 26.`,
	}

	for _, encrypt := range []bool{true, false} {
		encrypt := encrypt
		var key int
		use, short := "decrypt", "Decrypt Caesar ciphertext"
		if encrypt {
			use, short = "encrypt", "Encrypt text with a Caesar shift"
		}
		sub := &cobra.Command{
			Use:   use + " TEXT...",
			Short: short,
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				var (
					out string
					err error
				)
				if encrypt {
					out, err = caesar.Encrypt(joinArgs(args), key)
				} else {
					out, err = caesar.Decrypt(joinArgs(args), key)
				}
				if err != nil {
					return fmt.Errorf("caesar %s: %w", use, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)

				return nil
			},
		}
		sub.Flags().IntVarP(&key, "key", "k", 3, "shift amount")
		cmd.AddCommand(sub)
	}

	cmd.AddCommand(newCaesarCrackCommand(a))

	return cmd
}

func newCaesarCrackCommand(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "crack CIPHERTEXT...",
		Short: "Recover the key by letter-frequency analysis",
		Long: `Crack scores all 26 keys with a chi-squared test against English letter
frequencies and prints the best key and plaintext. With --all it prints the
25 brute-force candidates instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := joinArgs(args)
			if all {
				for i, candidate := range caesar.BruteForce(text) {
					fmt.Fprintf(cmd.OutOrStdout(), "%2d %s\n", i+1, candidate)
				}
				return nil
			}

			key, err := caesar.EstimateShift(text)
			if err != nil {
				return fmt.Errorf("caesar crack: %w", err)
			}
			score, err := caesar.ChiSquared(text, key)
			if err != nil {
				return fmt.Errorf("caesar crack: %w", err)
			}
			a.logger.Debug("caesar: key estimated", slog.Int("key", key), slog.Float64("chi2", score))

			plain, err := caesar.Decrypt(text, key)
			if err != nil {
				return fmt.Errorf("caesar crack: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "key=%d\n%s\n", key, plain)

			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "print every brute-force candidate")

	return cmd
}

// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/classica/vigenere"
	"github.com/spf13/cobra"
)

func newVigenereCommand(_ *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vigenere",
		Short: "Vigenère cipher",
		Long: `Vigenère cipher is a method of encrypting alphabetic text using a series of Caesar
ciphers based on the letters of a key. Non-letters are dropped.`,
	}

	for _, encrypt := range []bool{true, false} {
		encrypt := encrypt
		var key string
		use := "decrypt"
		if encrypt {
			use = "encrypt"
		}
		sub := &cobra.Command{
			Use:   use + " TEXT...",
			Short: "Vigenère " + use,
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				var (
					out string
					err error
				)
				if encrypt {
					out, err = vigenere.Encrypt(joinArgs(args), key)
				} else {
					out, err = vigenere.Decrypt(joinArgs(args), key)
				}
				if err != nil {
					return fmt.Errorf("vigenere %s: %w", use, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)

				return nil
			},
		}
		sub.Flags().StringVarP(&key, "key", "k", "", "key word (letters only)")
		if err := sub.MarkFlagRequired("key"); err != nil {
			panic(err)
		}
		cmd.AddCommand(sub)
	}

	return cmd
}

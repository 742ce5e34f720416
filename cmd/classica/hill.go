// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/katalvlaran/classica/config"
	"github.com/katalvlaran/classica/hill"
	"github.com/katalvlaran/classica/matrix"
	"github.com/spf13/cobra"
)

// errNoHillKey is returned by hill decrypt when no key source is given.
var errNoHillKey = errors.New("no key: set HILL_KEY, --key or --passphrase")

type hillFlags struct {
	key        string
	inverse    string
	passphrase string
	size       int
}

func (f *hillFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.key, "key", "k", "", "key matrix as JSON, e.g. '[[3,3],[2,5]]'")
	cmd.Flags().StringVar(&f.inverse, "inverse", "", "inverse key matrix as JSON (verified against --key)")
	cmd.Flags().StringVarP(&f.passphrase, "passphrase", "p", "", "derive the key from a passphrase")
	cmd.Flags().IntVarP(&f.size, "size", "n", 0, "block size for generated or derived keys")
	cmd.MarkFlagsMutuallyExclusive("key", "passphrase")
}

// resolveConfig layers the flags over config.Load.
func (f *hillFlags) resolveConfig(a *app) (config.Config, error) {
	cfg, err := config.Load(config.WithEnvFiles(a.envFiles...))
	if err != nil {
		return config.Config{}, err
	}

	if f.key != "" {
		if cfg.Key, err = matrix.ParseJSON([]byte(f.key)); err != nil {
			return config.Config{}, fmt.Errorf("--key: %w", err)
		}
		cfg.KeySize = cfg.Key.Rows()
		cfg.Inverse = nil
	}
	if f.inverse != "" {
		if cfg.Inverse, err = matrix.ParseJSON([]byte(f.inverse)); err != nil {
			return config.Config{}, fmt.Errorf("--inverse: %w", err)
		}
	}
	if f.size > 0 {
		if cfg.Key != nil && cfg.Key.Rows() != f.size {
			return config.Config{}, fmt.Errorf("--size %d conflicts with a %dx%d key: %w",
				f.size, cfg.Key.Rows(), cfg.Key.Cols(), config.ErrInvalidValue)
		}
		cfg.KeySize = f.size
	}

	return cfg, nil
}

// cipher builds the engine. requireKey forbids silently generating a key.
func (f *hillFlags) cipher(a *app, requireKey bool) (*hill.Cipher, bool, error) {
	cfg, err := f.resolveConfig(a)
	if err != nil {
		return nil, false, err
	}

	if f.passphrase != "" {
		c, err := hill.NewFromPassphrase(f.passphrase, cfg.KeySize,
			hill.WithMaxAttempts(cfg.MaxAttempts), hill.WithLogger(a.logger))
		return c, false, err
	}
	if cfg.Key == nil && requireKey {
		return nil, false, errNoHillKey
	}

	c, err := config.NewCipher(cfg, a.logger)

	return c, cfg.Key == nil, err
}

// fresh ignores any configured key and generates or derives a new one.
func (f *hillFlags) fresh(a *app) (*hill.Cipher, error) {
	cfg, err := config.Load(config.WithEnvFiles(a.envFiles...))
	if err != nil {
		return nil, err
	}
	if f.size > 0 {
		cfg.KeySize = f.size
	}
	if f.passphrase != "" {
		return hill.NewFromPassphrase(f.passphrase, cfg.KeySize,
			hill.WithMaxAttempts(cfg.MaxAttempts), hill.WithLogger(a.logger))
	}
	cfg.Key, cfg.Inverse = nil, nil

	return config.NewCipher(cfg, a.logger)
}

func newHillCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hill",
		Short: "Hill cipher",
		Long: `The Hill cipher multiplies blocks of n letters by an n×n key matrix modulo 26.
Only A–Z survive normalization and the last block is padded with X.`,
	}
	cmd.AddCommand(newHillTransformCommand(a, true), newHillTransformCommand(a, false), newHillKeygenCommand(a))

	return cmd
}

func newHillTransformCommand(a *app, encrypt bool) *cobra.Command {
	var f hillFlags
	use, short := "decrypt", "Decrypt Hill ciphertext"
	if encrypt {
		use, short = "encrypt", "Encrypt text with the Hill cipher (generates a key if none is configured)"
	}

	cmd := &cobra.Command{
		Use:   use + " TEXT...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, generated, err := f.cipher(a, !encrypt)
			if err != nil {
				return fmt.Errorf("hill %s: %w", use, err)
			}
			if generated {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s='%s'\n%s='%s'\n",
					config.EnvKey, c.Key(), config.EnvKeyInverse, c.InverseKey())
			}

			var out string
			if encrypt {
				out, err = c.Encrypt(joinArgs(args))
			} else {
				out, err = c.Decrypt(joinArgs(args))
			}
			if err != nil {
				return fmt.Errorf("hill %s: %w", use, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
	}
	f.register(cmd)

	return cmd
}

func newHillKeygenCommand(a *app) *cobra.Command {
	var (
		f      hillFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate an invertible key matrix and its inverse",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := f.fresh(a)
			if err != nil {
				return fmt.Errorf("hill keygen: %w", err)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				return enc.Encode(struct {
					Key     *matrix.Dense `json:"key"`
					Inverse *matrix.Dense `json:"inverse"`
				}{c.Key(), c.InverseKey()})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s='%s'\n%s='%s'\n",
				config.EnvKey, c.Key(), config.EnvKeyInverse, c.InverseKey())

			return nil
		},
	}
	cmd.Flags().StringVarP(&f.passphrase, "passphrase", "p", "", "derive the key from a passphrase")
	cmd.Flags().IntVarP(&f.size, "size", "n", 0, "key dimension (default HILL_KEY_SIZE or 4)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print {\"key\":...,\"inverse\":...}")

	return cmd
}

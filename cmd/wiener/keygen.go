package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmajstor/rsa-wiener/pkg/rsautil"
)

// errInvalidBits is returned when the requested key size is too small.
var errInvalidBits = errors.New("invalid key size: must be at least 128 bits")

// NewKeygenCmd creates the keygen command.
func NewKeygenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate an RSA key pair vulnerable to Wiener's attack",
		Long: `Keygen generates an RSA key pair and prints it as JSON.

By default the key is deliberately vulnerable: its private exponent d is
chosen below N^(1/4)/3, so "wiener attack" can recover the private key
from the public half alone. Pass --strong for a normal key pair with
e = 65537, which the attack cannot break.

Examples:
  # A 1024-bit vulnerable demo key
  wiener keygen --bits 1024

  # A normal key for negative testing
  wiener keygen --bits 1024 --strong`,
		Args: cobra.NoArgs,
		RunE: runKeygenCmd,
	}

	cmd.Flags().IntP("bits", "b", 1024, "Key size in bits")
	cmd.Flags().Bool("strong", false, "Generate a normal (non-vulnerable) key pair")

	return cmd
}

// keyPairJSON is the printable form of a generated key pair, all values in
// decimal strings.
type keyPairJSON struct {
	N   string `json:"n"`
	E   string `json:"e"`
	D   string `json:"d"`
	P   string `json:"p"`
	Q   string `json:"q"`
	Phi string `json:"phi"`
}

// runKeygenCmd executes the keygen command.
func runKeygenCmd(cmd *cobra.Command, _ []string) error {
	bits, err := cmd.Flags().GetInt("bits")
	if err != nil {
		return err
	}
	if bits < 128 {
		return errInvalidBits
	}
	strong, _ := cmd.Flags().GetBool("strong")

	var pair *rsautil.KeyPair
	if strong {
		pair, err = rsautil.GenerateKey(bits)
	} else {
		pair, err = rsautil.GenerateVulnerableKey(bits)
	}
	if err != nil {
		return fmt.Errorf("key generation failed: %w", err)
	}

	out, err := json.MarshalIndent(keyPairJSON{
		N:   pair.N.String(),
		E:   pair.E.String(),
		D:   pair.D.String(),
		P:   pair.P.String(),
		Q:   pair.Q.String(),
		Phi: pair.Phi.String(),
	}, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

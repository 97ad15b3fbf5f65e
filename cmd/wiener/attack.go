package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tmajstor/rsa-wiener/internal/report"
	"github.com/tmajstor/rsa-wiener/pkg/wiener"
)

// Flag validation errors. Sentinels so tests can match them with errors.Is.
var (
	// errNoPublicKey is returned when neither --key-file nor the
	// --modulus/--exponent pair provides a public key.
	errNoPublicKey = errors.New("no public key: provide --key-file or both --modulus and --exponent")

	// errConflictingReportFormats is returned when both --json and
	// --markdown are specified.
	errConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// errUnknownKeyFormat is returned for a --format other than json or yaml.
	errUnknownKeyFormat = errors.New("unknown key file format: must be json or yaml")
)

// NewAttackCmd creates the attack command.
func NewAttackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attack",
		Short: "Recover an RSA private key from a public key (N, e)",
		Long: `Attack runs Wiener's continued-fraction attack against an RSA public key.

It expands e/N into a continued fraction, walks the convergents in order,
and reports the first convergent that yields a verified factorization of N.
The attack succeeds whenever the private exponent d is below N^(1/4)/3.

Examples:
  # Attack a key given on the command line (decimal or 0x-hex)
  wiener attack --modulus 90581 --exponent 17993

  # Attack a key stored in a JSON file {"n": "...", "e": "..."}
  wiener attack --key-file pubkey.json

  # YAML key file, Markdown report written to a file
  wiener attack --key-file pubkey.yaml --format yaml --markdown --output report.md

  # Verify convergents on multiple workers
  wiener attack --key-file pubkey.json --parallel --workers 8`,
		Args: cobra.NoArgs,
		RunE: runAttackCmd,
	}

	// Key source flags
	cmd.Flags().StringP("modulus", "n", "", "Public modulus N (decimal or 0x-hex)")
	cmd.Flags().StringP("exponent", "e", "", "Public exponent e (decimal or 0x-hex)")
	cmd.Flags().StringP("key-file", "f", "", "Path to a public key file")
	cmd.Flags().String("format", "", "Key file format: json or yaml (default: by file extension)")

	// Search flags
	cmd.Flags().Bool("parallel", false, "Verify convergents concurrently")
	cmd.Flags().Int("workers", 0, "Number of parallel workers (0 = auto-detect based on CPU cores)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false, "Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false, "Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "", "Write report to specified file path instead of stdout")

	return cmd
}

// runAttackCmd executes the attack command.
func runAttackCmd(cmd *cobra.Command, _ []string) error {
	logger := setupLogger(getVerboseFlag(cmd))
	slog.SetDefault(logger)

	jsonOut, _ := cmd.Flags().GetBool("json")
	markdownOut, _ := cmd.Flags().GetBool("markdown")
	if jsonOut && markdownOut {
		return errConflictingReportFormats
	}

	client, strategyName, err := buildClient(cmd)
	if err != nil {
		return err
	}

	start := time.Now()
	n, e, key, err := recoverKey(cmd, client)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	logger.Debug("attack succeeded",
		"convergent_index", key.ConvergentIndex,
		"elapsed", elapsed,
	)

	out, closeOut, err := openOutput(cmd)
	if err != nil {
		return err
	}
	defer closeOut()

	var writer report.Writer
	switch {
	case jsonOut:
		writer = report.NewJSONWriter(out, report.WithPrettyPrint())
	case markdownOut:
		writer = report.NewMarkdownWriter(out)
	default:
		writer = report.NewTextWriter(out)
	}

	_, err = writer.Write(report.NewResult(n, e, key, strategyName, elapsed))
	return err
}

// buildClient assembles the attack client from the search flags.
func buildClient(cmd *cobra.Command) (*wiener.Client, string, error) {
	client := wiener.NewClient()

	parallel, _ := cmd.Flags().GetBool("parallel")
	if !parallel {
		return client, (&wiener.SequentialStrategy{}).Name(), nil
	}

	workers, err := cmd.Flags().GetInt("workers")
	if err != nil {
		return nil, "", err
	}
	strategy := wiener.NewParallelStrategy().WithWorkers(workers)
	return client.WithStrategy(strategy), strategy.Name(), nil
}

// recoverKey resolves the public key source and runs the attack.
func recoverKey(cmd *cobra.Command, client *wiener.Client) (n, e *big.Int, key *wiener.RecoveredKey, err error) {
	ctx := cmd.Context()

	keyFile, _ := cmd.Flags().GetString("key-file")
	if keyFile != "" {
		parser, err := keyParserFor(cmd, keyFile)
		if err != nil {
			return nil, nil, nil, err
		}
		pub, err := parser.ParsePublicKey(keyFile)
		if err != nil {
			return nil, nil, nil, err
		}
		key, err := client.RecoverKeyFromPublicKey(ctx, pub.N, pub.E)
		return pub.N, pub.E, key, err
	}

	modulus, _ := cmd.Flags().GetString("modulus")
	exponent, _ := cmd.Flags().GetString("exponent")
	if modulus == "" || exponent == "" {
		return nil, nil, nil, errNoPublicKey
	}

	n, err = parseBigIntFlag(modulus)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("invalid --modulus: %w", err)
	}
	e, err = parseBigIntFlag(exponent)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("invalid --exponent: %w", err)
	}

	key, err = client.RecoverKeyFromPublicKey(ctx, n, e)
	return n, e, key, err
}

// keyParserFor picks a parser from --format, falling back to the file extension.
func keyParserFor(cmd *cobra.Command, keyFile string) (wiener.KeyParser, error) {
	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		switch strings.ToLower(filepath.Ext(keyFile)) {
		case ".yaml", ".yml":
			format = "yaml"
		default:
			format = "json"
		}
	}

	switch format {
	case "json":
		return &wiener.JSONParser{}, nil
	case "yaml":
		return &wiener.YAMLParser{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", errUnknownKeyFormat, format)
	}
}

// openOutput returns the report destination and a cleanup function.
func openOutput(cmd *cobra.Command) (io.Writer, func(), error) {
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.Create(output)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// parseBigIntFlag parses a decimal or 0x-prefixed hex command line value.
func parseBigIntFlag(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		base = 16
	}
	z, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, fmt.Errorf("not a valid integer: %q", s)
	}
	return z, nil
}

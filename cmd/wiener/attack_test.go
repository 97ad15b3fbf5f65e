package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tmajstor/rsa-wiener/pkg/wiener"
)

// runCommand executes the root command with args and returns its output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestAttackCmd_TextbookKey(t *testing.T) {
	t.Parallel()

	out, err := runCommand(t, "attack", "--modulus", "90581", "--exponent", "17993")
	if err != nil {
		t.Fatalf("attack failed: %v", err)
	}

	for _, want := range []string{"379", "239", "d:   5"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestAttackCmd_HexFlags(t *testing.T) {
	t.Parallel()

	out, err := runCommand(t, "attack", "-n", "0x161D5", "-e", "0x4649")
	if err != nil {
		t.Fatalf("attack failed: %v", err)
	}
	if !strings.Contains(out, "d:   5") {
		t.Errorf("output missing recovered exponent:\n%s", out)
	}
}

func TestAttackCmd_JSONReport(t *testing.T) {
	t.Parallel()

	out, err := runCommand(t, "attack", "-n", "90581", "-e", "17993", "--json")
	if err != nil {
		t.Fatalf("attack failed: %v", err)
	}

	var result struct {
		D               string `json:"d"`
		ConvergentIndex int    `json:"convergent_index"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if result.D != "5" {
		t.Errorf("d = %q, want 5", result.D)
	}
	if result.ConvergentIndex != 1 {
		t.Errorf("convergent_index = %d, want 1", result.ConvergentIndex)
	}
}

func TestAttackCmd_MarkdownReportToFile(t *testing.T) {
	t.Parallel()

	outPath := filepath.Join(t.TempDir(), "report.md")
	_, err := runCommand(t, "attack", "-n", "90581", "-e", "17993", "--markdown", "--output", outPath)
	if err != nil {
		t.Fatalf("attack failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	if !strings.Contains(string(data), "# Wiener Attack Report") {
		t.Errorf("markdown report missing header:\n%s", data)
	}
}

func TestAttackCmd_KeyFile(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "key.json")
		if err := os.WriteFile(path, []byte(`{"n": "90581", "e": "17993"}`), 0o600); err != nil {
			t.Fatal(err)
		}

		out, err := runCommand(t, "attack", "--key-file", path)
		if err != nil {
			t.Fatalf("attack failed: %v", err)
		}
		if !strings.Contains(out, "d:   5") {
			t.Errorf("output missing recovered exponent:\n%s", out)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "key.yaml")
		if err := os.WriteFile(path, []byte("n: \"90581\"\ne: \"17993\"\n"), 0o600); err != nil {
			t.Fatal(err)
		}

		out, err := runCommand(t, "attack", "--key-file", path)
		if err != nil {
			t.Fatalf("attack failed: %v", err)
		}
		if !strings.Contains(out, "d:   5") {
			t.Errorf("output missing recovered exponent:\n%s", out)
		}
	})
}

func TestAttackCmd_Parallel(t *testing.T) {
	t.Parallel()

	out, err := runCommand(t, "attack", "-n", "90581", "-e", "17993", "--parallel", "--workers", "4")
	if err != nil {
		t.Fatalf("attack failed: %v", err)
	}
	if !strings.Contains(out, "Parallel") {
		t.Errorf("output missing strategy name:\n%s", out)
	}
}

func TestAttackCmd_FlagValidation(t *testing.T) {
	t.Parallel()

	t.Run("no public key", func(t *testing.T) {
		t.Parallel()
		_, err := runCommand(t, "attack")
		if !errors.Is(err, errNoPublicKey) {
			t.Errorf("expected errNoPublicKey, got %v", err)
		}
	})

	t.Run("conflicting report formats", func(t *testing.T) {
		t.Parallel()
		_, err := runCommand(t, "attack", "-n", "90581", "-e", "17993", "--json", "--markdown")
		if !errors.Is(err, errConflictingReportFormats) {
			t.Errorf("expected errConflictingReportFormats, got %v", err)
		}
	})

	t.Run("unknown key format", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "key.json")
		if err := os.WriteFile(path, []byte(`{"n": "90581", "e": "17993"}`), 0o600); err != nil {
			t.Fatal(err)
		}
		_, err := runCommand(t, "attack", "--key-file", path, "--format", "toml")
		if !errors.Is(err, errUnknownKeyFormat) {
			t.Errorf("expected errUnknownKeyFormat, got %v", err)
		}
	})

	t.Run("invalid modulus", func(t *testing.T) {
		t.Parallel()
		_, err := runCommand(t, "attack", "-n", "not-a-number", "-e", "17993")
		if err == nil {
			t.Error("expected error for invalid modulus")
		}
	})
}

func TestAttackCmd_StrongKeyFails(t *testing.T) {
	t.Parallel()

	// 3233 = 61*53 with e = 17 and d = 2753: d is far above N^(1/4)/3.
	_, err := runCommand(t, "attack", "-n", "3233", "-e", "17")
	if !errors.Is(err, wiener.ErrAttackFailed) {
		t.Errorf("expected ErrAttackFailed, got %v", err)
	}
}

func TestParseBigIntFlag(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want int64
	}{
		{"90581", 90581},
		{"0x161D5", 90581},
		{" 42 ", 42},
	}
	for _, tc := range cases {
		got, err := parseBigIntFlag(tc.in)
		if err != nil {
			t.Errorf("parseBigIntFlag(%q) failed: %v", tc.in, err)
			continue
		}
		if got.Int64() != tc.want {
			t.Errorf("parseBigIntFlag(%q) = %s, want %d", tc.in, got, tc.want)
		}
	}

	if _, err := parseBigIntFlag("xyz"); err == nil {
		t.Error("expected error for invalid value")
	}
}

package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	vigerrors "github.com/rinstrell/vigenere/internal/errors"
)

// runCommand executes the root command with the given arguments and
// returns captured stdout, stderr, and the resulting error.
func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	// A nil slice would make cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRunEncrypt(t *testing.T) {
	out, errOut, err := runCommand(t, "HELLO", "-k", "KEY")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out != "RIJVS\n" {
		t.Errorf("stdout = %q, want %q", out, "RIJVS\n")
	}
	if errOut != "" {
		t.Errorf("stderr = %q, want empty", errOut)
	}
}

func TestRunDecrypt(t *testing.T) {
	out, _, err := runCommand(t, "RIJVS", "-m", "1", "-k", "KEY")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out != "HELLO\n" {
		t.Errorf("stdout = %q, want %q", out, "HELLO\n")
	}
}

func TestRunPreservesPunctuationAndCase(t *testing.T) {
	out, _, err := runCommand(t, "Hello, World!", "-k", "key")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out != "Rijvs, Uyvjn!\n" {
		t.Errorf("stdout = %q, want %q", out, "Rijvs, Uyvjn!\n")
	}
}

func TestRunNoArguments(t *testing.T) {
	out, errOut, err := runCommand(t)
	if !errors.Is(err, vigerrors.ErrUsage) {
		t.Fatalf("Expected ErrUsage, got: %v", err)
	}
	if out != "" {
		t.Errorf("stdout = %q, want empty (no partial output on error)", out)
	}
	if !strings.Contains(errOut, "usage: vigenere") {
		t.Errorf("stderr should contain the usage line, got: %q", errOut)
	}
}

func TestRunHelp(t *testing.T) {
	out, errOut, err := runCommand(t, "-h")
	if !errors.Is(err, vigerrors.ErrHelpRequested) {
		t.Fatalf("Expected ErrHelpRequested, got: %v", err)
	}
	if out != "" {
		t.Errorf("stdout = %q, want empty (help goes to stderr)", out)
	}
	if !strings.Contains(errOut, "usage: vigenere") {
		t.Errorf("stderr should contain the usage line, got: %q", errOut)
	}
	if !strings.Contains(errOut, "positional arguments") {
		t.Errorf("stderr should contain the full help text, got: %q", errOut)
	}
}

func TestRunEmptyKey(t *testing.T) {
	out, errOut, err := runCommand(t, "HELLO", "-k", "")
	if !errors.Is(err, vigerrors.ErrEmptyKey) {
		t.Fatalf("Expected ErrEmptyKey, got: %v", err)
	}
	if out != "" {
		t.Errorf("stdout = %q, want empty (no partial output on error)", out)
	}
	if !strings.Contains(errOut, "usage: vigenere") {
		t.Errorf("stderr should contain the usage line, got: %q", errOut)
	}
}

func TestRunRoundTrip(t *testing.T) {
	message := "Attack at dawn; hold the eastern bridge!"
	ciphertext, _, err := runCommand(t, message, "-k", "LEMON")
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}

	plaintext, _, err := runCommand(t, strings.TrimSuffix(ciphertext, "\n"), "-m", "1", "-k", "LEMON")
	if err != nil {
		t.Fatalf("decrypt failed: %v", err)
	}
	if plaintext != message+"\n" {
		t.Errorf("round trip = %q, want %q", plaintext, message+"\n")
	}
}

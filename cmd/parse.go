package cmd

import (
	vigerrors "github.com/rinstrell/vigenere/internal/errors"
	"github.com/rinstrell/vigenere/internal/vigenere"
)

// options holds everything parsed from the command line.
type options struct {
	Message string
	Key     string
	Mode    vigenere.Mode
	Verbose bool
	Debug   bool
}

// parseArgs enforces the rigid positional grammar:
//
//	"message" [-m MODE] [-k "KEY"]
//
// The message comes first, -m (if present) second, -k last. Flags are
// not reorderable. -m takes a value whose leading digit selects the
// mode, even to encrypt and odd to decrypt; -k is required and its value
// must be non-empty. A lone -h in first position requests help.
func parseArgs(args []string) (options, error) {
	opts := options{Mode: vigenere.Encrypt}

	// The diagnostic switches are ambient tooling rather than part of
	// the documented grammar, so they are accepted anywhere.
	rest := make([]string, 0, len(args))
	for _, arg := range args {
		switch arg {
		case "-v", "--verbose":
			opts.Verbose = true
		case "-d", "--debug":
			opts.Debug = true
		default:
			rest = append(rest, arg)
		}
	}

	if len(rest) == 0 {
		return opts, vigerrors.ErrUsage
	}
	if rest[0] == "-h" || rest[0] == "--help" {
		return opts, vigerrors.ErrHelpRequested
	}
	if rest[0] == "" {
		return opts, vigerrors.ErrEmptyMessage
	}
	opts.Message = rest[0]

	i := 1
	if i < len(rest) && rest[i] == "-m" {
		if i+1 >= len(rest) {
			return opts, vigerrors.ErrUsage
		}
		value := rest[i+1]
		if len(value) == 0 || value[0] < '0' || value[0] > '9' {
			return opts, vigerrors.ErrInvalidMode
		}
		opts.Mode = vigenere.Mode(int(value[0]-'0') % 2)
		i += 2
	}

	if i+1 >= len(rest) || rest[i] != "-k" {
		return opts, vigerrors.ErrUsage
	}
	opts.Key = rest[i+1]
	i += 2

	if i != len(rest) {
		return opts, vigerrors.ErrUsage
	}
	if opts.Key == "" {
		return opts, vigerrors.ErrEmptyKey
	}

	return opts, nil
}

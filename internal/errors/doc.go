// Package errors provides typed error values for the vigenere CLI.
//
// Using sentinel errors allows the command layer to handle specific
// conditions programmatically with errors.Is() rather than string
// matching. This makes error handling robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Usage errors: the command line could not be understood (ErrUsage,
//     ErrHelpRequested, ErrEmptyMessage, ErrInvalidMode)
//   - Key errors: the keyword cannot drive the cipher (ErrEmptyKey)
//   - Invariant errors: programming mistakes (ErrKeystreamMismatch)
//
// # Usage
//
// Return errors from internal packages:
//
//	if key == "" {
//	    return "", errors.ErrEmptyKey
//	}
//
// Handle errors in the CLI layer:
//
//	opts, err := parseArgs(args)
//	if errors.Is(err, cliErrors.ErrHelpRequested) {
//	    // Print full help instead of the usage line.
//	}
//
// Every error is terminal for the process: the program performs one pass
// and exits with code 1 without producing partial output.
package errors

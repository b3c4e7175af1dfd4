// Package logger provides leveled diagnostic logging for the vigenere CLI.
//
// The logger supports two verbosity levels controlled by command-line
// switches. All diagnostic output goes to stderr so that stdout carries
// nothing but the transformed message.
//
// # Verbosity Levels
//
//   - -v / --verbose: shows info messages
//   - -d / --debug: shows all messages including debug details
//
// Without switches, only warnings and errors are shown.
//
// # Usage
//
// Create a logger with the desired verbosity:
//
//	log := logger.Logger{Verbose: verbose, Debug: debug}
//	log.Debugf("parsed mode: %s", opts.Mode)
package logger

package cmd

import (
	"errors"
	"fmt"
	"io"

	vigerrors "github.com/rinstrell/vigenere/internal/errors"
	logger "github.com/rinstrell/vigenere/internal/logging"
	"github.com/rinstrell/vigenere/internal/ui"
	"github.com/rinstrell/vigenere/internal/vigenere"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the vigenere command.
//
// Flag parsing is disabled: the original interface demands a fixed
// argument order that pflag's free reordering would silently loosen, so
// the raw arguments go straight to parseArgs. cobra still provides the
// command frame, stream plumbing, and test hooks.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   `vigenere [-h] "message" [-m MODE] [-k "KEY"]`,
		Short: "Encrypt or decrypt a message with the Vigenère cipher",
		Long: `Encrypts or decrypts a text message using the Vigenère polyalphabetic
substitution cipher with a user-supplied keyword. Letter case and any
non-alphabetic characters are preserved.`,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := parseArgs(args)
			if err != nil {
				if errors.Is(err, vigerrors.ErrHelpRequested) {
					printHelp(cmd.ErrOrStderr())
				} else {
					printUsage(cmd.ErrOrStderr())
				}
				return err
			}

			log := logger.Logger{Verbose: opts.Verbose, Debug: opts.Debug}
			log.Debugf("parsed arguments: mode=%s, message length=%d, key length=%d",
				opts.Mode, len(opts.Message), len(opts.Key))

			keystream, err := vigenere.Keystream(opts.Message, opts.Key)
			if err != nil {
				// Unreachable from the CLI (parseArgs rejects empty keys
				// first), kept for direct callers of RunE.
				log.Errorf("keystream generation failed: %v", err)
				printUsage(cmd.ErrOrStderr())
				return err
			}
			log.Debugf("keystream: %q", keystream)

			output, err := vigenere.Transform(opts.Message, keystream, opts.Mode)
			if err != nil {
				log.Errorf("transform failed: %v", err)
				return err
			}
			log.Infof("%s of %d characters complete", opts.Mode, len(output))

			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}
	return cmd
}

// Execute runs the command against os.Args. Any returned error has
// already been reported to stderr; the caller only maps it to an exit
// code.
func Execute() error {
	return NewRootCmd().Execute()
}

const usageLine = `usage: vigenere [-h] "message" [-m MODE] [-k "KEY"]`

func printUsage(w io.Writer) {
	fmt.Fprintln(w, usageLine)
}

// printHelp writes the full help text. Help goes to stderr like the
// usage line: stdout is reserved for transformed messages.
func printHelp(w io.Writer) {
	fmt.Fprintln(w, ui.Banner("vigenere"))
	fmt.Fprintln(w, usageLine)
	fmt.Fprintf(w, `
positional arguments:
  message  specifies the message to encrypt/decrypt (A-Z, a-z).
  %s       encrypt/decrypt the subsequent message.
           %s
  %s       specifies the keyword to use (variable length, ASCII-only).

optional arguments:
  %s       displays help message and usage information.

examples:
  %s
  %s
`,
		ui.Flag.Sprint("-m"),
		ui.Muted.Sprint("0 = encrypt, 1 = decrypt, 0 = default"),
		ui.Flag.Sprint("-k"),
		ui.Flag.Sprint("-h"),
		ui.Code.Sprint(`vigenere "HELLO WORLD" -k "KEY"`),
		ui.Code.Sprint(`vigenere "RIJVS UYVJN" -m 1 -k "KEY"`),
	)
}

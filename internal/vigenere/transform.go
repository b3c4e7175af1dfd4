package vigenere

import (
	"strings"

	vigerrors "github.com/rinstrell/vigenere/internal/errors"
)

// Mode selects the direction of the transform. It is chosen once per
// invocation and never changes mid-run.
type Mode int

const (
	Encrypt Mode = iota
	Decrypt
)

func (m Mode) String() string {
	if m == Decrypt {
		return "decrypt"
	}
	return "encrypt"
}

// Transform applies the keystream to message and returns the result.
//
// Non-alphabetic message characters pass through unchanged. Alphabetic
// characters are shifted by the 0–25 position of the keystream letter at
// the same index: (m + k) mod 26 to encrypt, (m - k + 26) mod 26 to
// decrypt. The +26 keeps the result non-negative before the modulo. The
// case of each message character is preserved in the output.
//
// Returns ErrKeystreamMismatch if the keystream length differs from the
// message length. That cannot happen for a keystream generated from the
// same message, so it signals misuse rather than bad user input.
func Transform(message, keystream string, mode Mode) (string, error) {
	if len(message) != len(keystream) {
		return "", vigerrors.ErrKeystreamMismatch
	}

	var b strings.Builder
	b.Grow(len(message))

	for i := 0; i < len(message); i++ {
		c := message[i]
		if !isLetter(c) {
			b.WriteByte(c)
			continue
		}

		m := letterIndex(c)
		k := letterIndex(keystream[i])

		var shifted int
		if mode == Encrypt {
			shifted = (m + k) % alphabetSize
		} else {
			shifted = (m - k + alphabetSize) % alphabetSize
		}

		b.WriteByte(letterAt(shifted, isUpper(c)))
	}

	return b.String(), nil
}

// Encipher encrypts message with key, deriving the keystream internally.
func Encipher(message, key string) (string, error) {
	keystream, err := Keystream(message, key)
	if err != nil {
		return "", err
	}
	return Transform(message, keystream, Encrypt)
}

// Decipher decrypts message with key, deriving the keystream internally.
func Decipher(message, key string) (string, error) {
	keystream, err := Keystream(message, key)
	if err != nil {
		return "", err
	}
	return Transform(message, keystream, Decrypt)
}

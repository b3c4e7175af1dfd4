package vigenere

import (
	"strings"

	vigerrors "github.com/rinstrell/vigenere/internal/errors"
)

// Keystream expands key into a sequence the same length as message.
//
// Each position holds the uppercase key letter that will shift the
// message character at that position, or Placeholder where the message
// character is non-alphabetic. The key cycles only across alphabetic
// message positions, so spaces and punctuation do not consume a key
// letter and the key stays contiguous across them:
//
//	message:   HELLO WORLD
//	key:       KEY
//	keystream: KEYKE YKEYK
//
// Returns ErrEmptyKey if key is empty.
func Keystream(message, key string) (string, error) {
	if len(key) == 0 {
		return "", vigerrors.ErrEmptyKey
	}

	var b strings.Builder
	b.Grow(len(message))

	// Running index over alphabetic message positions only.
	letters := 0
	for i := 0; i < len(message); i++ {
		if !isLetter(message[i]) {
			b.WriteByte(Placeholder)
			continue
		}
		b.WriteByte(toUpper(key[letters%len(key)]))
		letters++
	}

	return b.String(), nil
}

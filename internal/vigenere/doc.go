// Package vigenere implements the Vigenère polyalphabetic substitution
// cipher over the 26-letter ASCII alphabet.
//
// The cipher runs as a two-stage pipeline of pure functions: Keystream
// expands a keyword into a shift sequence aligned with the message, and
// Transform applies the per-character modular shifts. Encipher and
// Decipher combine the two stages for callers that hold only a keyword.
//
// Non-alphabetic characters pass through both stages untouched, and the
// keyword cycles only across alphabetic message positions, so
// punctuation and spacing never disturb the key alignment. Letter case
// is preserved: the shift is computed case-insensitively and the result
// takes the case of the original character.
//
//	out, err := vigenere.Encipher("Hello, World!", "key")
//	// out == "Rijvs, Uyvjn!"
package vigenere

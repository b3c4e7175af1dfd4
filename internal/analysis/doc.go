// Package analysis provides ciphertext-only cryptanalysis of Vigenère
// ciphertext: keyword-length estimation via the index of coincidence and
// keyword recovery via per-column chi-squared fitting against English
// letter frequencies.
//
// Both techniques rely on the cipher preserving the plaintext's letter
// statistics within each keyword column. They need a few hundred letters
// of English-like ciphertext to be reliable; short or non-English input
// produces guesses, not answers.
//
//	length := analysis.EstimateKeyLength(ciphertext, 20)
//	key := analysis.RecoverKey(ciphertext, length)
package analysis

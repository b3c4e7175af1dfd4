package analysis

import (
	"math"
	"strings"
)

const alphabetSize = 26

// englishIOC is the index of coincidence of typical English prose.
// Polyalphabetic ciphertext flattens toward 1/26 ≈ 0.0385.
const englishIOC = 0.065

// englishFreq holds relative English letter frequencies for A–Z,
// measured over a large corpus.
var englishFreq = [alphabetSize]float64{
	0.08167, 0.01492, 0.02782, 0.04253, 0.12702, 0.02228, 0.02015, // A-G
	0.06094, 0.06966, 0.00153, 0.00772, 0.04025, 0.02406, 0.06749, // H-N
	0.07507, 0.01929, 0.00095, 0.05987, 0.06327, 0.09056, 0.02758, // O-U
	0.00978, 0.02360, 0.00150, 0.01974, 0.00074, // V-Z
}

// letters strips text to its alphabetic characters, uppercased. Analysis
// only ever sees the letters, matching the cipher's pass-through of
// everything else.
func letters(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case 'A' <= c && c <= 'Z':
			b.WriteByte(c)
		case 'a' <= c && c <= 'z':
			b.WriteByte(c - 'a' + 'A')
		}
	}
	return b.String()
}

// IndexOfCoincidence returns the probability that two randomly chosen
// letters of text are equal. English prose sits near 0.065; uniformly
// random letters near 0.0385. Non-letters are ignored.
func IndexOfCoincidence(text string) float64 {
	var counts [alphabetSize]int
	total := 0
	for _, c := range letters(text) {
		counts[c-'A']++
		total++
	}
	if total < 2 {
		return 0
	}

	var sum float64
	for _, n := range counts {
		sum += float64(n) * float64(n-1)
	}
	return sum / (float64(total) * float64(total-1))
}

// EstimateKeyLength guesses the keyword length of a Vigenère ciphertext.
//
// For each candidate length it splits the ciphertext letters into that
// many columns and averages their indices of coincidence. A column
// enciphered with a single shift keeps English statistics, so the true
// length (and its multiples) score near 0.065 while the rest flatten
// toward random. The smallest candidate with an English-like score wins;
// if nothing clears the bar, the candidate nearest 0.065 is returned.
func EstimateKeyLength(ciphertext string, maxLength int) int {
	text := letters(ciphertext)
	if maxLength < 1 {
		return 0
	}

	// Below englishThreshold a column is considered flattened.
	const englishThreshold = 0.06

	best := 1
	minDiff := math.MaxFloat64
	for keyLength := 1; keyLength <= maxLength; keyLength++ {
		avg := 0.0
		for col := 0; col < keyLength; col++ {
			var column strings.Builder
			for i := col; i < len(text); i += keyLength {
				column.WriteByte(text[i])
			}
			avg += IndexOfCoincidence(column.String())
		}
		avg /= float64(keyLength)

		if avg >= englishThreshold {
			return keyLength
		}
		if diff := math.Abs(avg - englishIOC); diff < minDiff {
			minDiff = diff
			best = keyLength
		}
	}

	return best
}

// RecoverKey derives the most likely keyword of the given length from a
// Vigenère ciphertext, assuming English plaintext.
//
// Each keyword position defines a column of the ciphertext enciphered
// with a single Caesar shift. For every candidate shift the column is
// undone and its letter distribution compared to English frequencies
// with a chi-squared statistic; the best-fitting shift names the keyword
// letter.
func RecoverKey(ciphertext string, keyLength int) string {
	text := letters(ciphertext)
	if keyLength < 1 || len(text) == 0 {
		return ""
	}

	key := make([]byte, keyLength)
	for col := 0; col < keyLength; col++ {
		bestShift := 0
		bestChi := math.MaxFloat64
		for shift := 0; shift < alphabetSize; shift++ {
			var counts [alphabetSize]int
			total := 0
			for i := col; i < len(text); i += keyLength {
				plain := (int(text[i]-'A') - shift + alphabetSize) % alphabetSize
				counts[plain]++
				total++
			}
			if total == 0 {
				break
			}

			chi := 0.0
			for letter, n := range counts {
				observed := float64(n) / float64(total)
				expected := englishFreq[letter]
				chi += (observed - expected) * (observed - expected) / expected
			}
			if chi < bestChi {
				bestChi = chi
				bestShift = shift
			}
		}
		key[col] = byte(bestShift) + 'A'
	}

	return string(key)
}

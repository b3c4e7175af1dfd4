package vigenere

// alphabetSize is the modulo space the shifts are performed in. Every
// shift result lands in 0–25 before being mapped back to a letter.
const alphabetSize = 26

// Placeholder fills keystream positions that correspond to non-alphabetic
// message characters. The transform never consumes it.
const Placeholder byte = ' '

func isLetter(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}

func isUpper(c byte) bool {
	return 'A' <= c && c <= 'Z'
}

func toUpper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// letterIndex maps a letter of either case to its 0–25 alphabet position.
func letterIndex(c byte) int {
	return int(toUpper(c) - 'A')
}

// letterAt maps a 0–25 alphabet position back to a letter, uppercase or
// lowercase to match the character whose case is being preserved.
func letterAt(i int, upper bool) byte {
	if upper {
		return byte(i) + 'A'
	}
	return byte(i) + 'a'
}

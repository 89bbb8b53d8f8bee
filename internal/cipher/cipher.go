// Package cipher implements the Caesar rotation over the 26-letter Latin
// alphabet and the input filter shared by every text field in the app.
//
// All functions are total: any string and any integer shift are accepted.
// Characters outside A-Z (after upper-casing) pass through unchanged, so the
// length and the position of spaces and punctuation are always preserved.
package cipher

import (
	"strings"
	"unicode"
)

// Alphabet is the ordered symbol set the wheel and the transform share.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Size is the number of symbols on every ring of the wheel. It is untyped so
// the wheel math can use it in float expressions.
const Size = 26

// Normalize reduces any integer shift into [0, Size).
func Normalize(shift int) int {
	n := shift % Size
	if n < 0 {
		n += Size
	}
	return n
}

// Index returns the alphabet position of an upper-case letter, or -1.
func Index(letter byte) int {
	if letter < 'A' || letter > 'Z' {
		return -1
	}
	return int(letter - 'A')
}

// Letter returns the letter at alphabet position i, wrapping modulo Size.
func Letter(i int) byte {
	return Alphabet[Normalize(i)]
}

// ShiftText rotates every A-Z letter of text by shift positions. When encrypt
// is false the inverse rotation is applied. Text is upper-cased first.
func ShiftText(text string, shift int, encrypt bool) string {
	s := Normalize(shift)
	if !encrypt {
		s = (Size - s) % Size
	}

	upper := strings.ToUpper(text)
	var b strings.Builder
	b.Grow(len(upper))
	for _, r := range upper {
		if r < 'A' || r > 'Z' {
			b.WriteRune(r)
			continue
		}
		b.WriteByte(Alphabet[(int(r-'A')+s)%Size])
	}
	return b.String()
}

// Encrypt is ShiftText in the encrypting direction.
func Encrypt(text string, shift int) string {
	return ShiftText(text, shift, true)
}

// Decrypt is ShiftText in the decrypting direction.
func Decrypt(text string, shift int) string {
	return ShiftText(text, shift, false)
}

// Sanitize upper-cases input and drops everything except A-Z and whitespace.
func Sanitize(input string) string {
	upper := strings.ToUpper(input)
	var b strings.Builder
	b.Grow(len(upper))
	for _, r := range upper {
		if (r >= 'A' && r <= 'Z') || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

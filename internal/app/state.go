// state.go holds the canonical cipher state and the rules that keep the two
// text buffers consistent with the shift.
//
// cipherState is the single writable copy of the shift, the reference letter
// and both buffers. The wheel widget and the text inputs only ever report
// intents; every mutation goes through one of the methods below.
//
// Exactly one buffer is the source at any edit instant: whichever the user
// just typed into. The other is recomputed in full from it and the shift.
// Swap is the one operation that breaks this pairing, and it does so on
// purpose: the buffers are exchanged verbatim and stay inconsistent until the
// next edit or shift change.
package app

import (
	"github.com/treykane/cipher-nexus/internal/cipher"
	"github.com/treykane/cipher-nexus/internal/dial"
	"github.com/treykane/cipher-nexus/internal/wheel"
)

type cipherState struct {
	shift  int
	letter byte
	plain  string
	cipher string
}

// newCipherState builds a consistent state from raw initial values.
func newCipherState(shift int, letter byte, plain string) cipherState {
	s := cipherState{letter: dial.DefaultReferenceLetter}
	s.setReferenceLetter(letter)
	s.shift = cipher.Normalize(shift)
	s.editPlaintext(plain)
	return s
}

// setShift adopts a new shift and re-encodes the plaintext. The plaintext is
// the source and is left untouched.
func (s *cipherState) setShift(shift int) {
	s.shift = cipher.Normalize(shift)
	s.cipher = cipher.Encrypt(s.plain, s.shift)
}

// editPlaintext stores sanitized input and re-encodes it.
func (s *cipherState) editPlaintext(raw string) {
	s.plain = cipher.Sanitize(raw)
	s.cipher = cipher.Encrypt(s.plain, s.shift)
}

// editCiphertext stores sanitized input and decodes it into the plaintext.
func (s *cipherState) editCiphertext(raw string) {
	s.cipher = cipher.Sanitize(raw)
	s.plain = cipher.Decrypt(s.cipher, s.shift)
}

// swap exchanges the buffers without re-applying the transform.
func (s *cipherState) swap() {
	s.plain, s.cipher = s.cipher, s.plain
}

// reset clears both buffers. Shift and reference letter are kept.
func (s *cipherState) reset() {
	s.plain = ""
	s.cipher = ""
}

// setReferenceLetter stores an upper-case letter. Anything else is ignored.
// The shift does not change; only the derived reference number moves.
func (s *cipherState) setReferenceLetter(l byte) bool {
	norm, ok := dial.NormalizeLetter(rune(l))
	if !ok {
		return false
	}
	s.letter = norm
	return true
}

// referenceNumber is the number aligned with the reference letter.
func (s cipherState) referenceNumber() int {
	return dial.ReferenceNumber(s.shift, s.letter)
}

// props is the read-only view handed to the wheel.
func (s cipherState) props() wheel.Props {
	return wheel.Props{
		Shift:           s.shift,
		ReferenceLetter: s.letter,
		CipherText:      s.cipher,
		PlainText:       s.plain,
	}
}

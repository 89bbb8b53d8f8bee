package app

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/treykane/cipher-nexus/internal/cipher"
)

func TestNewCipherStateEncodesInitialText(t *testing.T) {
	s := newCipherState(23, 'A', "CLAYTON")
	if s.cipher != "ZIXVQLK" {
		t.Fatalf("expected ZIXVQLK, got %q", s.cipher)
	}
	if s.referenceNumber() != 23 {
		t.Fatalf("expected reference number 23, got %d", s.referenceNumber())
	}

	odd := newCipherState(-1, 'z', "hi!")
	if odd.shift != 25 || odd.letter != 'Z' || odd.plain != "HI" {
		t.Fatalf("expected normalized state, got %+v", odd)
	}
}

func TestSetShiftReencodesPlaintext(t *testing.T) {
	s := newCipherState(0, 'A', "ATTACK AT DAWN")
	s.setShift(3)
	if s.plain != "ATTACK AT DAWN" {
		t.Fatalf("plaintext must not change on shift, got %q", s.plain)
	}
	if s.cipher != "DWWDFN DW GDZQ" {
		t.Fatalf("expected DWWDFN DW GDZQ, got %q", s.cipher)
	}

	s.setShift(29)
	if s.shift != 3 {
		t.Fatalf("expected shift reduced to 3, got %d", s.shift)
	}
}

func TestEditCiphertextDecodesIntoPlaintext(t *testing.T) {
	s := newCipherState(23, 'A', "")
	s.editCiphertext("zixvqlk")
	if s.cipher != "ZIXVQLK" || s.plain != "CLAYTON" {
		t.Fatalf("expected ZIXVQLK/CLAYTON, got %q/%q", s.cipher, s.plain)
	}
}

func TestEditsSanitizeInput(t *testing.T) {
	s := newCipherState(1, 'A', "")
	s.editPlaintext("Hello, World 42!")
	if s.plain != "HELLO WORLD " {
		t.Fatalf("unexpected sanitized plaintext %q", s.plain)
	}
	if s.cipher != "IFMMP XPSME " {
		t.Fatalf("unexpected ciphertext %q", s.cipher)
	}
}

func TestBuffersStayConsistentAfterEdits(t *testing.T) {
	for shift := 0; shift < 26; shift++ {
		s := newCipherState(shift, 'A', "THE QUICK BROWN FOX")
		if got := cipher.Decrypt(s.cipher, s.shift); got != s.plain {
			t.Fatalf("shift %d: decrypt(cipher)=%q, plain=%q", shift, got, s.plain)
		}
		if len(s.cipher) != len(s.plain) {
			t.Fatalf("shift %d: lengths differ", shift)
		}
		for i := range s.plain {
			if s.plain[i] == ' ' && s.cipher[i] != ' ' {
				t.Fatalf("shift %d: space moved at %d", shift, i)
			}
		}
	}
}

func TestSwapExchangesVerbatim(t *testing.T) {
	s := newCipherState(3, 'A', "ABC")
	before := s
	s.swap()
	if s.plain != "DEF" || s.cipher != "ABC" {
		t.Fatalf("expected swapped buffers, got %q/%q", s.plain, s.cipher)
	}
	if s.shift != before.shift || s.letter != before.letter {
		t.Fatal("swap must not touch shift or reference letter")
	}
	// The pair is no longer shift-consistent until the next edit.
	if cipher.Encrypt(s.plain, s.shift) == s.cipher {
		t.Fatal("swap should not re-encode")
	}

	s.setShift(s.shift)
	if s.cipher != "GHI" {
		t.Fatalf("next shift change re-encodes from plaintext, got %q", s.cipher)
	}
}

func TestResetClearsBuffersOnly(t *testing.T) {
	s := newCipherState(11, 'K', "SECRET")
	s.reset()
	want := cipherState{shift: 11, letter: 'K'}
	if diff := cmp.Diff(want, s, cmp.AllowUnexported(cipherState{})); diff != "" {
		t.Fatalf("unexpected state after reset (-want +got):\n%s", diff)
	}
}

func TestSetReferenceLetterKeepsShift(t *testing.T) {
	s := newCipherState(23, 'A', "CLAYTON")
	if !s.setReferenceLetter('c') {
		t.Fatal("expected lower-case letter to be accepted")
	}
	if s.letter != 'C' || s.shift != 23 || s.referenceNumber() != 25 {
		t.Fatalf("unexpected state %+v ref=%d", s, s.referenceNumber())
	}
	if s.setReferenceLetter('7') {
		t.Fatal("digits are not reference letters")
	}
	if s.letter != 'C' {
		t.Fatalf("rejected input must not change the letter, got %q", s.letter)
	}
}

func TestPropsMirrorState(t *testing.T) {
	s := newCipherState(5, 'B', "HI")
	p := s.props()
	if p.Shift != 5 || p.ReferenceLetter != 'B' || p.PlainText != "HI" || p.CipherText != "MN" {
		t.Fatalf("unexpected props %+v", p)
	}
	if p.ReferenceNumber() != s.referenceNumber() {
		t.Fatalf("props and state disagree on reference number")
	}
}

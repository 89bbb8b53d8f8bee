package app

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTypingPlaintextEncodesLive(t *testing.T) {
	m := newTestModel(t, nil)
	m.applyShift(3)

	press(m, key("p"))
	if m.focus != focusPlain {
		t.Fatalf("expected plaintext focus, got %v", m.focus)
	}
	press(m, tea.KeyMsg{Type: tea.KeyCtrlU})
	typeText(m, "attack at dawn!")

	if m.state.plain != "ATTACK AT DAWN" {
		t.Fatalf("expected sanitized plaintext, got %q", m.state.plain)
	}
	if m.plainInput.Value() != "ATTACK AT DAWN" {
		t.Fatalf("expected field to mirror sanitized text, got %q", m.plainInput.Value())
	}
	if m.state.cipher != "DWWDFN DW GDZQ" || m.cipherInput.Value() != "DWWDFN DW GDZQ" {
		t.Fatalf("expected ciphertext to follow, got state=%q field=%q", m.state.cipher, m.cipherInput.Value())
	}
}

func TestBoundKeysTypeWhileEditing(t *testing.T) {
	m := newTestModel(t, nil)
	press(m, key("p"))
	press(m, tea.KeyMsg{Type: tea.KeyCtrlU})

	if cmd := press(m, key("q")); cmd != nil {
		for _, msg := range runCmd(cmd) {
			if _, ok := msg.(tea.QuitMsg); ok {
				t.Fatal("q must type into the field, not quit")
			}
		}
	}
	typeText(m, "srl")
	if m.state.plain != "QSRL" {
		t.Fatalf("expected bound keys to be typed, got %q", m.state.plain)
	}
	if m.state.shift != 23 {
		t.Fatalf("l must not move the shift while editing, got %d", m.state.shift)
	}
}

func TestEditingCiphertextDecodes(t *testing.T) {
	m := newTestModel(t, nil)
	press(m, key("c"))
	press(m, tea.KeyMsg{Type: tea.KeyCtrlU})
	typeText(m, "zixvqlk")

	if m.state.cipher != "ZIXVQLK" {
		t.Fatalf("expected ciphertext ZIXVQLK, got %q", m.state.cipher)
	}
	if m.state.plain != "CLAYTON" || m.plainInput.Value() != "CLAYTON" {
		t.Fatalf("expected plaintext CLAYTON, got state=%q field=%q", m.state.plain, m.plainInput.Value())
	}
}

func TestSwapAndReset(t *testing.T) {
	m := newTestModel(t, nil)

	press(m, key("s"))
	if m.state.plain != "ZIXVQLK" || m.state.cipher != "CLAYTON" {
		t.Fatalf("expected buffers swapped verbatim, got plain=%q cipher=%q", m.state.plain, m.state.cipher)
	}
	if m.state.shift != 23 {
		t.Fatalf("swap must keep the shift, got %d", m.state.shift)
	}
	if m.plainInput.Value() != "ZIXVQLK" || m.cipherInput.Value() != "CLAYTON" {
		t.Fatal("expected fields to show swapped buffers")
	}

	press(m, key("r"))
	if m.state.plain != "" || m.state.cipher != "" || m.plainInput.Value() != "" {
		t.Fatalf("expected reset to clear both buffers, got %+v", m.state)
	}
	if m.state.shift != 23 {
		t.Fatalf("reset must keep the shift, got %d", m.state.shift)
	}
}

func TestShiftKeysClampToSliderRange(t *testing.T) {
	m := newTestModel(t, nil)

	for i := 0; i < 5; i++ {
		press(m, key("l"))
	}
	if m.state.shift != ShiftMax {
		t.Fatalf("expected shift clamped at %d, got %d", ShiftMax, m.state.shift)
	}

	m.applyShift(1)
	press(m, tea.KeyMsg{Type: tea.KeyLeft})
	press(m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.state.shift != 0 {
		t.Fatalf("expected shift clamped at 0, got %d", m.state.shift)
	}
	if m.state.cipher != "CLAYTON" {
		t.Fatalf("expected identity cipher at shift 0, got %q", m.state.cipher)
	}
}

func TestReferenceNumberEditMovesShift(t *testing.T) {
	m := newTestModel(t, nil)
	press(m, key("n"))
	if m.focus != focusNumber || m.wheel.Focused() == 0 {
		t.Fatalf("expected number field focus, got %v", m.focus)
	}

	press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	typeText(m, "07")

	if m.state.shift != 7 {
		t.Fatalf("expected shift 7 from reference number 07, got %d", m.state.shift)
	}
	if m.state.cipher != "JSHFAVU" || m.cipherInput.Value() != "JSHFAVU" {
		t.Fatalf("expected re-encoded ciphertext, got %q", m.state.cipher)
	}
}

func TestReferenceNumberOutOfRangeIsIgnored(t *testing.T) {
	m := newTestModel(t, nil)
	press(m, key("n"))
	press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	typeText(m, "9")
	if m.state.shift != 9 {
		t.Fatalf("expected 9 to apply, got %d", m.state.shift)
	}

	typeText(m, "9")
	if !strings.Contains(m.View(), "A = 09") {
		t.Fatal("expected the hub to show the derived 09 after a rejected 99")
	}
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.state.shift != 9 || m.state.cipher != "LUJHCXW" {
		t.Fatalf("expected 99 to leave shift 9 alone, got %+v", m.state)
	}
}

func TestReferenceLetterEditKeepsShift(t *testing.T) {
	m := newTestModel(t, nil)
	press(m, key("e"))
	typeText(m, "c")

	if m.state.letter != 'C' {
		t.Fatalf("expected reference letter C, got %q", m.state.letter)
	}
	if m.state.shift != 23 || m.state.referenceNumber() != 25 {
		t.Fatalf("expected shift 23 and number 25, got shift=%d number=%d", m.state.shift, m.state.referenceNumber())
	}
}

func TestTabCyclesCipherFields(t *testing.T) {
	m := newTestModel(t, nil)

	want := []focusTarget{focusPlain, focusCipher, focusLetter, focusNumber, focusPlain}
	for i, target := range want {
		press(m, tea.KeyMsg{Type: tea.KeyTab})
		if m.focus != target {
			t.Fatalf("step %d: expected focus %v, got %v", i, target, m.focus)
		}
	}
	press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != focusNumber {
		t.Fatalf("expected shift+tab to go back to number, got %v", m.focus)
	}
	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.focus != focusNone || m.wheel.Focused() != 0 {
		t.Fatalf("expected esc to release focus, got %v", m.focus)
	}
}

func TestCopyBuffersUseClipboard(t *testing.T) {
	m := newTestModel(t, nil)
	var copied []string
	orig := clipboardWrite
	clipboardWrite = func(s string) error {
		copied = append(copied, s)
		return nil
	}
	t.Cleanup(func() { clipboardWrite = orig })

	press(m, key("y"))
	press(m, key("Y"))
	if len(copied) != 2 || copied[0] != "ZIXVQLK" || copied[1] != "CLAYTON" {
		t.Fatalf("unexpected clipboard writes %q", copied)
	}

	clipboardWrite = func(string) error { return errors.New("no clipboard") }
	press(m, key("y"))
	if m.status != "Clipboard copy failed" {
		t.Fatalf("expected failure status, got %q", m.status)
	}
}

func TestHelpOverlayToggles(t *testing.T) {
	m := newTestModel(t, nil)

	press(m, key("?"))
	if m.overlay != overlayHelp {
		t.Fatal("expected help overlay to open")
	}
	if m.help.TotalLineCount() == 0 {
		t.Fatal("expected rendered help content")
	}
	if s := m.helpMarkdown(); !strings.Contains(s, "`Ctrl+T`") || !strings.Contains(s, "`A = 23`") {
		t.Fatalf("expected live key labels and reference in help, got:\n%s", s)
	}

	// Keys other than close and scroll do not reach the page.
	press(m, key("s"))
	if m.state.plain != "CLAYTON" {
		t.Fatal("page actions must be blocked behind the help overlay")
	}

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.overlay != overlayNone {
		t.Fatal("expected esc to close help")
	}
}

func TestQuitCancelsRemix(t *testing.T) {
	m := newTestModel(t, &stubEditor{})
	cancelled := false
	m.remixing = true
	m.remixCancel = func() { cancelled = true }

	_, cmd := m.Update(key("q"))
	if !cancelled || m.remixing {
		t.Fatal("expected quit to cancel the remix in flight")
	}
	msgs := runCmd(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected a quit message, got %v", msgs)
	}
	if _, ok := msgs[0].(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg, got %T", msgs[0])
	}
}

func TestForwardsToField(t *testing.T) {
	cases := []struct {
		msg  tea.KeyMsg
		want bool
	}{
		{key("q"), true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}, false},
		{tea.KeyMsg{Type: tea.KeyBackspace}, true},
		{tea.KeyMsg{Type: tea.KeyLeft}, true},
		{tea.KeyMsg{Type: tea.KeyTab}, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, false},
		{tea.KeyMsg{Type: tea.KeyCtrlT}, false},
	}
	for _, tc := range cases {
		if got := forwardsToField(tc.msg); got != tc.want {
			t.Fatalf("forwardsToField(%q) = %v, want %v", tc.msg.String(), got, tc.want)
		}
	}
}

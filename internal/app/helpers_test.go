package app

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/cipher-nexus/internal/config"
	"github.com/treykane/cipher-nexus/internal/remix"
	"github.com/treykane/cipher-nexus/internal/wheel"
)

const (
	testWidth  = 120
	testHeight = 40
)

// stubEditor answers every remix with a fixed image or error.
type stubEditor struct {
	image   []byte
	err     error
	prompts []string
}

func (s *stubEditor) Edit(_ context.Context, _ []byte, prompt string) ([]byte, error) {
	s.prompts = append(s.prompts, prompt)
	return s.image, s.err
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Defaults()
	cfg.KeymapFile = filepath.Join(t.TempDir(), "keymap.yaml")
	cfg.DownloadDir = t.TempDir()
	return cfg
}

func newTestModel(t *testing.T, editor remix.ImageEditor) *Model {
	t.Helper()
	m := New(Options{Config: testConfig(t), Editor: editor})
	m.capture = func(wheel.Props) ([]byte, error) { return []byte("wheel"), nil }
	m.Update(tea.WindowSizeMsg{Width: testWidth, Height: testHeight})
	return m
}

// runCmd executes cmd and flattens batches. Commands that block, like cursor
// blinks and spinner ticks, are abandoned after a short wait.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, runCmd(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(50 * time.Millisecond):
		return nil
	}
}

// feed runs cmd and delivers the intents and results it produces back into
// the model, the way the Bubble Tea runtime would.
func feed(m *Model, cmd tea.Cmd) {
	for _, msg := range runCmd(cmd) {
		switch msg.(type) {
		case wheel.ShiftChangedMsg, wheel.ReferenceLetterChangedMsg, remixResultMsg:
			_, next := m.Update(msg)
			feed(m, next)
		}
	}
}

func press(m *Model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	feed(m, cmd)
	return cmd
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m *Model, s string) {
	for _, r := range s {
		if r == ' ' {
			press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		press(m, key(string(r)))
	}
}

func mouse(action tea.MouseAction, button tea.MouseButton, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

func click(m *Model, x, y int) {
	_, cmd := m.Update(mouse(tea.MouseActionPress, tea.MouseButtonLeft, x, y))
	feed(m, cmd)
}

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

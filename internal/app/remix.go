// remix.go connects the lab page to the remix service.
//
// Each request captures the wheel as it is at submit time, carries a sequence
// number and runs under its own cancellable context. Submitting again,
// pressing Esc or quitting cancels the context and bumps the sequence, so a
// late answer from the service is recognised as stale and dropped.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/cipher-nexus/internal/remix"
	"github.com/treykane/cipher-nexus/internal/wheel"
)

// remixResultMsg carries a finished remix back into the update loop.
type remixResultMsg struct {
	seq    int
	prompt string
	image  []byte
	err    error
}

// startRemix validates the prompt and launches a remix command.
func (m *Model) startRemix() tea.Cmd {
	prompt := strings.TrimSpace(m.promptInput.Value())
	if prompt == "" {
		m.status = "Enter a prompt first"
		return nil
	}

	m.cancelRemix()
	ctx, cancel := context.WithCancel(context.Background())
	m.remixCancel = cancel
	m.remixing = true
	m.remixPrompt = prompt
	m.labErr = ""
	m.status = "Gemini is thinking..."

	seq := m.remixSeq
	appLog.Info("remix started", "seq", seq, "prompt_len", len(prompt))
	return tea.Batch(
		remixCmd(ctx, m.lab, m.capture, m.props(), prompt, seq),
		m.spinner.Tick,
	)
}

// remixCmd captures the wheel and runs the remix off the update loop.
func remixCmd(ctx context.Context, lab *remix.Lab, capture func(wheel.Props) ([]byte, error), props wheel.Props, prompt string, seq int) tea.Cmd {
	return func() tea.Msg {
		source, err := capture(props)
		if err != nil {
			return remixResultMsg{seq: seq, prompt: prompt, err: fmt.Errorf("failed to capture wheel: %w", err)}
		}
		image, err := lab.Remix(ctx, source, prompt)
		return remixResultMsg{seq: seq, prompt: prompt, image: image, err: err}
	}
}

// cancelRemix abandons the request in flight, if any. Its result will no
// longer match remixSeq.
func (m *Model) cancelRemix() {
	m.remixSeq++
	if m.remixCancel != nil {
		m.remixCancel()
		m.remixCancel = nil
	}
	m.remixing = false
}

// saveArtwork writes the last result to the download directory.
func (m *Model) saveArtwork() {
	if len(m.artwork) == 0 {
		m.status = "No artwork to save yet"
		return
	}
	path, err := remix.Save(m.cfg.DownloadDir, m.artwork, m.now())
	if err != nil {
		m.setStatusError("Save artwork failed", err, "dir", m.cfg.DownloadDir)
		return
	}
	m.savedPath = path
	m.status = "Saved " + path
	appLog.Info("saved artwork", "path", path, "bytes", len(m.artwork))
}

// refreshSuggestions filters the canned prompts against the typed prompt.
func (m *Model) refreshSuggestions() {
	m.suggestions = remix.Suggest(m.promptInput.Value())
	m.suggestCursor = clamp(m.suggestCursor, 0, max(0, len(m.suggestions)-1))
}

func (m *Model) moveSuggestion(step int) {
	if len(m.suggestions) == 0 {
		return
	}
	m.suggestCursor = clamp(m.suggestCursor+step, 0, len(m.suggestions)-1)
}

// applySuggestion copies the highlighted suggestion into the prompt.
func (m *Model) applySuggestion() {
	if m.suggestCursor < 0 || m.suggestCursor >= len(m.suggestions) {
		return
	}
	m.usePrompt(m.suggestions[m.suggestCursor])
}

func (m *Model) usePrompt(prompt string) {
	m.promptInput.SetValue(prompt)
	m.promptInput.CursorEnd()
	m.refreshSuggestions()
	m.status = "Prompt: " + prompt
}

// remixErrorText is the short message shown in the lab panel.
func remixErrorText(err error) string {
	switch {
	case errors.Is(err, remix.ErrNoEditor):
		return "Remix is not configured. Set GEMINI_API_KEY or run `ciphernexus setup`."
	case errors.Is(err, remix.ErrNoImage):
		return "No image returned from AI"
	case errors.Is(err, context.DeadlineExceeded):
		return "The image service timed out"
	}
	return err.Error()
}

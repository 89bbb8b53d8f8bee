package remix

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/treykane/cipher-nexus/internal/logging"
)

var (
	// ErrEmptyPrompt is returned when the instruction is blank.
	ErrEmptyPrompt = errors.New("prompt is empty")
	// ErrNoImage is returned when the service answers without an image.
	ErrNoImage = errors.New("no image returned from AI")
	// ErrNoEditor is returned when no image service is configured.
	ErrNoEditor = errors.New("image service is not configured")
)

var labLog = logging.New("remix")

// Lab runs remix requests against an ImageEditor.
type Lab struct {
	editor ImageEditor
}

// NewLab builds a lab around editor. A nil editor makes every remix fail
// with ErrNoEditor.
func NewLab(editor ImageEditor) *Lab {
	return &Lab{editor: editor}
}

// Ready reports whether an image service is attached.
func (l *Lab) Ready() bool {
	return l != nil && l.editor != nil
}

// Remix sends source with the trimmed prompt and returns the new image.
func (l *Lab) Remix(ctx context.Context, source []byte, prompt string) ([]byte, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}
	if !l.Ready() {
		return nil, ErrNoEditor
	}
	if len(source) == 0 {
		return nil, errors.New("failed to capture wheel")
	}

	started := time.Now()
	out, err := l.editor.Edit(ctx, source, prompt)
	if err != nil {
		labLog.Warn("remix failed", "prompt_len", len(prompt), "error", err)
		return nil, fmt.Errorf("failed to process image: %w", err)
	}
	if len(out) == 0 {
		return nil, ErrNoImage
	}
	labLog.Info("remix complete", "bytes", len(out), "duration_ms", time.Since(started).Milliseconds())
	return out, nil
}

// FileName is the download name for an artwork produced at t.
func FileName(t time.Time) string {
	return fmt.Sprintf("cipher-nexus-remix-%d.png", t.UnixMilli())
}

// Save writes img into dir under FileName(now) and returns the full path.
func Save(dir string, img []byte, now time.Time) (string, error) {
	if len(img) == 0 {
		return "", ErrNoImage
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}
	path := filepath.Join(dir, FileName(now))
	if err := os.WriteFile(path, img, 0o644); err != nil {
		return "", fmt.Errorf("write artwork: %w", err)
	}
	return path, nil
}

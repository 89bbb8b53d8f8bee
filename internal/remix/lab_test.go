package remix

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/genai"
)

type fakeEditor struct {
	out    []byte
	err    error
	calls  int
	prompt string
	image  []byte
}

func (f *fakeEditor) Edit(_ context.Context, image []byte, prompt string) ([]byte, error) {
	f.calls++
	f.prompt = prompt
	f.image = image
	return f.out, f.err
}

func TestRemixTrimsPromptAndReturnsImage(t *testing.T) {
	editor := &fakeEditor{out: []byte("art")}
	lab := NewLab(editor)

	got, err := lab.Remix(context.Background(), []byte("png"), "  neon glow \n")
	if err != nil {
		t.Fatalf("remix: %v", err)
	}
	if string(got) != "art" {
		t.Fatalf("expected editor output, got %q", got)
	}
	if editor.prompt != "neon glow" || string(editor.image) != "png" {
		t.Fatalf("unexpected editor call: prompt=%q image=%q", editor.prompt, editor.image)
	}
}

func TestRemixFailures(t *testing.T) {
	serviceErr := errors.New("quota exceeded")
	cases := []struct {
		name      string
		lab       *Lab
		source    []byte
		prompt    string
		wantIs    error
		wantCalls int
	}{
		{name: "blank prompt", lab: NewLab(&fakeEditor{out: []byte("x")}), source: []byte("png"), prompt: "   ", wantIs: ErrEmptyPrompt},
		{name: "no editor", lab: NewLab(nil), source: []byte("png"), prompt: "wood", wantIs: ErrNoEditor},
		{name: "empty reply", lab: NewLab(&fakeEditor{}), source: []byte("png"), prompt: "wood", wantIs: ErrNoImage, wantCalls: 1},
		{name: "service error", lab: NewLab(&fakeEditor{err: serviceErr}), source: []byte("png"), prompt: "wood", wantIs: serviceErr, wantCalls: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.lab.Remix(context.Background(), tc.source, tc.prompt)
			if !errors.Is(err, tc.wantIs) {
				t.Fatalf("expected %v, got %v", tc.wantIs, err)
			}
			if fake, ok := tc.lab.editor.(*fakeEditor); ok && fake.calls != tc.wantCalls {
				t.Fatalf("expected %d editor calls, got %d", tc.wantCalls, fake.calls)
			}
		})
	}
}

func TestRemixRejectsMissingCapture(t *testing.T) {
	editor := &fakeEditor{out: []byte("art")}
	if _, err := NewLab(editor).Remix(context.Background(), nil, "wood"); err == nil {
		t.Fatal("expected capture failure")
	}
	if editor.calls != 0 {
		t.Fatalf("editor should not be called without a capture, got %d calls", editor.calls)
	}
}

func TestFileName(t *testing.T) {
	at := time.UnixMilli(1718000000123)
	if got := FileName(at); got != "cipher-nexus-remix-1718000000123.png" {
		t.Fatalf("unexpected file name %q", got)
	}
}

func TestSaveWritesArtwork(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "downloads")
	at := time.UnixMilli(42)

	path, err := Save(dir, []byte("art"), at)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if path != filepath.Join(dir, "cipher-nexus-remix-42.png") {
		t.Fatalf("unexpected path %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "art" {
		t.Fatalf("unexpected contents %q", data)
	}

	if _, err := Save(dir, nil, at); !errors.Is(err, ErrNoImage) {
		t.Fatalf("expected ErrNoImage for empty artwork, got %v", err)
	}
}

func TestSuggest(t *testing.T) {
	if diff := cmp.Diff(Suggestions, Suggest("  ")); diff != "" {
		t.Fatalf("blank input should list every suggestion (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Traditional hand-carved wood with ivory inlays"}, Suggest("wood")); diff != "" {
		t.Fatalf("unexpected matches (-want +got):\n%s", diff)
	}
	if got := Suggest("neon"); len(got) == 0 || got[0] != "Neon cyberpunk aesthetic with glitches" {
		t.Fatalf("expected neon suggestion first, got %v", got)
	}
	if got := Suggest("zzz"); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}
}

func TestFirstImageSkipsTextParts(t *testing.T) {
	if got := firstImage(nil); got != nil {
		t.Fatalf("expected nil for nil response, got %q", got)
	}
	resp := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
		{Content: nil},
		{Content: &genai.Content{Parts: []*genai.Part{
			genai.NewPartFromText("here you go"),
			genai.NewPartFromBytes([]byte("img"), "image/png"),
			genai.NewPartFromBytes([]byte("second"), "image/png"),
		}}},
	}}
	if got := firstImage(resp); string(got) != "img" {
		t.Fatalf("expected first inline image, got %q", got)
	}
}

package main

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/treykane/cipher-nexus/internal/config"
	"github.com/treykane/cipher-nexus/internal/wheel"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEncodeAndDecode(t *testing.T) {
	cases := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"encode default shift", "", []string{"encode", "Clayton"}, "ZIXVQLK\n"},
		{"encode shift 3", "", []string{"encode", "-s", "3", "attack", "at", "dawn!"}, "DWWDFN DW GDZQ!\n"},
		{"punctuation passes through", "", []string{"decode", "-s", "3", "GZ, 42?"}, "DW, 42?\n"},
		{"decode stdin", "zixvqlk\nzixvqlk zixvqlk\n", []string{"decode"}, "CLAYTON\nCLAYTON CLAYTON\n"},
		{"negative shift wraps", "", []string{"encode", "--shift=-1", "abc"}, "ZAB\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := execute(t, tc.stdin, tc.args...)
			if err != nil {
				t.Fatalf("execute: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRenderSVGToStdout(t *testing.T) {
	got, err := execute(t, "", "render", "--shift", "23", "--text", "clayton")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{`id="` + wheel.SVGElementID + `"`, "ZIXVQLK", "CLAYTON"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in svg output", want)
		}
	}
}

func TestRenderPNGToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wheel.png")
	if _, err := execute(t, "", "render", "-f", "png", "-o", path); err != nil {
		t.Fatalf("render: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != wheel.CaptureSize || cfg.Height != wheel.CaptureSize {
		t.Fatalf("unexpected size %dx%d", cfg.Width, cfg.Height)
	}
}

func TestRenderRejectsBadInput(t *testing.T) {
	if _, err := execute(t, "", "render", "-f", "png"); err == nil {
		t.Fatal("expected png to stdout to fail")
	}
	if _, err := execute(t, "", "render", "-f", "gif"); err == nil {
		t.Fatal("expected unknown format to fail")
	}
}

func TestRenderProps(t *testing.T) {
	cfg := config.Config{Shift: 29, ReferenceLetter: "c", PlainText: "hi!"}
	want := wheel.Props{Shift: 3, ReferenceLetter: 'C', PlainText: "HI", CipherText: "KL"}
	if diff := cmp.Diff(want, renderProps(cfg)); diff != "" {
		t.Fatalf("props mismatch (-want +got):\n%s", diff)
	}
}

func TestApplySetup(t *testing.T) {
	cfg := config.Config{Shift: 23, ReferenceLetter: "A", DownloadDir: "/tmp/old"}
	got, err := applySetup(cfg, setupAnswers{shift: " 5 ", letter: "q", text: "hello, world", downloadDir: " "})
	if err != nil {
		t.Fatalf("applySetup: %v", err)
	}
	want := config.Config{Shift: 5, ReferenceLetter: "Q", PlainText: "HELLO WORLD", DownloadDir: "/tmp/old"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}

	for _, bad := range []string{"", "26", "-1", "five"} {
		if _, err := applySetup(cfg, setupAnswers{shift: bad}); err == nil {
			t.Fatalf("expected shift %q to be rejected", bad)
		}
	}
}

type memoryKeyStore struct{ key string }

func (s *memoryKeyStore) Get() (string, error) {
	if s.key == "" {
		return "", config.ErrNoAPIKey
	}
	return s.key, nil
}

func (s *memoryKeyStore) Set(key string) error {
	s.key = key
	return nil
}

func (s *memoryKeyStore) Delete() error {
	s.key = ""
	return nil
}

func TestStoreKey(t *testing.T) {
	store := &memoryKeyStore{key: "old"}

	if err := storeKey(store, setupAnswers{keepKey: true, apiKey: "ignored"}); err != nil || store.key != "old" {
		t.Fatalf("expected kept key, got %q (%v)", store.key, err)
	}
	if err := storeKey(store, setupAnswers{apiKey: " new "}); err != nil || store.key != "new" {
		t.Fatalf("expected new key, got %q (%v)", store.key, err)
	}
	if err := storeKey(store, setupAnswers{}); err != nil || store.key != "" {
		t.Fatalf("expected key removed, got %q (%v)", store.key, err)
	}
}

func TestNewEditor(t *testing.T) {
	t.Setenv(config.EnvGeminiAPIKey, "")
	t.Setenv(config.EnvGoogleAPIKey, "")
	cfg := config.Config{RemixModel: "test-model"}

	editor, err := newEditor(context.Background(), cfg, &memoryKeyStore{})
	if err != nil || editor != nil {
		t.Fatalf("expected no editor without a key, got %v (%v)", editor, err)
	}

	editor, err = newEditor(context.Background(), cfg, &memoryKeyStore{key: "k"})
	if err != nil {
		t.Fatalf("newEditor: %v", err)
	}
	if editor.Model() != "test-model" {
		t.Fatalf("unexpected model %q", editor.Model())
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/treykane/cipher-nexus/internal/app"
	"github.com/treykane/cipher-nexus/internal/config"
	"github.com/treykane/cipher-nexus/internal/logging"
	"github.com/treykane/cipher-nexus/internal/remix"
)

var log = logging.New("cli")

// wheelFlags override the saved wheel state for a single run.
type wheelFlags struct {
	shift  int
	letter string
	text   string
}

func (f *wheelFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.shift, "shift", "s", config.DefaultShift, "cipher shift (wraps modulo 26)")
	cmd.Flags().StringVarP(&f.letter, "letter", "l", "", "reference letter shown in the hub")
	cmd.Flags().StringVarP(&f.text, "text", "t", "", "initial plaintext")
}

// apply copies the flags the user actually set onto cfg.
func (f *wheelFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("shift") {
		cfg.Shift = f.shift
	}
	if cmd.Flags().Changed("letter") {
		cfg.ReferenceLetter = config.NormalizeReferenceLetter(f.letter)
	}
	if cmd.Flags().Changed("text") {
		cfg.PlainText = f.text
	}
}

func newRootCmd() *cobra.Command {
	var flags wheelFlags
	root := &cobra.Command{
		Use:   "ciphernexus",
		Short: "Turn a Caesar cipher wheel in your terminal",
		Long: `Cipher Nexus draws a rotating Caesar cipher wheel. Drag the inner rings,
type into either text buffer, and send a snapshot of the wheel to Gemini for an
AI remix.

Settings live in ~/.cipher-nexus/config.yaml. Run "ciphernexus setup" to store a
Gemini API key in the system keyring.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			flags.apply(cmd, &cfg)
			return runTUI(cmd.Context(), cfg)
		},
	}
	flags.register(root)

	root.AddCommand(newEncodeCmd(), newDecodeCmd(), newRenderCmd(), newSetupCmd())
	return root
}

func runTUI(ctx context.Context, cfg config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	editor, err := newEditor(ctx, cfg, config.OSKeyring{})
	if err != nil {
		log.Warn("remix disabled", "error", err)
	}

	opts := app.Options{Config: cfg}
	if editor != nil {
		opts.Editor = editor
	}
	p := tea.NewProgram(app.New(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// newEditor connects to Gemini when an API key is available. No key is not an
// error: the lab explains how to add one.
func newEditor(ctx context.Context, cfg config.Config, store config.KeyStore) (*remix.GeminiEditor, error) {
	key, err := config.APIKey(store)
	if errors.Is(err, config.ErrNoAPIKey) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	editor, err := remix.NewGeminiEditor(ctx, key, cfg.RemixModel)
	if err != nil {
		return nil, fmt.Errorf("connect to gemini: %w", err)
	}
	log.Info("remix enabled", "model", editor.Model())
	return editor, nil
}

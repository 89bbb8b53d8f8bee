package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/treykane/cipher-nexus/internal/cipher"
	"github.com/treykane/cipher-nexus/internal/config"
)

// setupAnswers is what the setup form collects.
type setupAnswers struct {
	apiKey      string
	keepKey     bool
	shift       string
	letter      string
	text        string
	downloadDir string
}

func newSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Store a Gemini API key and pick defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			store := config.OSKeyring{}
			_, keyErr := store.Get()
			hasKey := keyErr == nil

			answers := setupAnswers{
				keepKey:     hasKey,
				shift:       strconv.Itoa(cfg.Shift),
				letter:      cfg.ReferenceLetter,
				text:        cfg.PlainText,
				downloadDir: cfg.DownloadDir,
			}
			if err := setupForm(&answers, hasKey).Run(); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					fmt.Fprintln(cmd.OutOrStdout(), "Setup cancelled.")
					return nil
				}
				return err
			}

			next, err := applySetup(cfg, answers)
			if err != nil {
				return err
			}
			if err := storeKey(store, answers); err != nil {
				return err
			}
			if err := config.Save(next); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Saved settings. Run ciphernexus to start.")
			return nil
		},
	}
}

func setupForm(a *setupAnswers, hasKey bool) *huh.Form {
	keyGroup := huh.NewGroup(
		huh.NewInput().
			Title("Gemini API key").
			Description("Stored in the system keyring. Leave empty to skip the AI Visualizer.").
			EchoMode(huh.EchoModePassword).
			Value(&a.apiKey),
	)
	if hasKey {
		keyGroup = huh.NewGroup(
			huh.NewConfirm().
				Title("Keep the stored Gemini API key?").
				Value(&a.keepKey),
			huh.NewInput().
				Title("New Gemini API key").
				Description("Only used when you do not keep the stored key. Empty removes it.").
				EchoMode(huh.EchoModePassword).
				Value(&a.apiKey),
		)
	}

	return huh.NewForm(
		keyGroup,
		huh.NewGroup(
			huh.NewInput().
				Title("Starting shift").
				Validate(validateShift).
				Value(&a.shift),
			huh.NewInput().
				Title("Reference letter").
				CharLimit(1).
				Value(&a.letter),
			huh.NewInput().
				Title("Starting plaintext").
				Value(&a.text),
			huh.NewInput().
				Title("Save remixes to").
				Value(&a.downloadDir),
		),
	)
}

func validateShift(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 || n >= cipher.Size {
		return fmt.Errorf("enter a number from 0 to %d", cipher.Size-1)
	}
	return nil
}

// applySetup folds the form answers into cfg.
func applySetup(cfg config.Config, a setupAnswers) (config.Config, error) {
	if err := validateShift(a.shift); err != nil {
		return cfg, err
	}
	cfg.Shift, _ = strconv.Atoi(strings.TrimSpace(a.shift))
	cfg.ReferenceLetter = config.NormalizeReferenceLetter(a.letter)
	cfg.PlainText = cipher.Sanitize(a.text)
	if dir := strings.TrimSpace(a.downloadDir); dir != "" {
		cfg.DownloadDir = dir
	}
	return cfg, nil
}

// storeKey writes, keeps or removes the keyring entry.
func storeKey(store config.KeyStore, a setupAnswers) error {
	if a.keepKey {
		return nil
	}
	key := strings.TrimSpace(a.apiKey)
	if key == "" {
		return store.Delete()
	}
	return store.Set(key)
}

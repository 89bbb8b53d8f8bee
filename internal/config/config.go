// Package config loads and saves cipher-nexus settings.
//
// Settings live in an optional YAML file at ~/.cipher-nexus/config.yaml.
// Load starts from Defaults, lays the file over them and then applies
// CIPHER_NEXUS_* environment overrides. The Gemini API key is never written to
// the file; see APIKey.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/treykane/cipher-nexus/internal/cipher"
	"github.com/treykane/cipher-nexus/internal/dial"
	"github.com/treykane/cipher-nexus/internal/logging"
)

const (
	configDirName  = ".cipher-nexus"
	configFileName = "config.yaml"
	keymapFileName = "keymap.yaml"
)

// Environment overrides.
const (
	EnvShift       = "CIPHER_NEXUS_SHIFT"
	EnvLetter      = "CIPHER_NEXUS_LETTER"
	EnvText        = "CIPHER_NEXUS_TEXT"
	EnvRemixModel  = "CIPHER_NEXUS_REMIX_MODEL"
	EnvDownloadDir = "CIPHER_NEXUS_DOWNLOAD_DIR"
)

// Defaults for a fresh install.
const (
	DefaultShift      = 23
	DefaultPlainText  = "CLAYTON"
	DefaultRemixModel = "gemini-2.5-flash-image"
)

var log = logging.New("config")

// Config stores user-defined settings.
type Config struct {
	Shift           int               `yaml:"shift"`
	ReferenceLetter string            `yaml:"reference_letter"`
	PlainText       string            `yaml:"plain_text"`
	RemixModel      string            `yaml:"remix_model"`
	DownloadDir     string            `yaml:"download_dir"`
	Keybindings     map[string]string `yaml:"keybindings,omitempty"`
	KeymapFile      string            `yaml:"keymap_file,omitempty"`
}

// Defaults returns the settings used when no file or override is present.
func Defaults() Config {
	cfg := Config{
		Shift:           DefaultShift,
		ReferenceLetter: string(dial.DefaultReferenceLetter),
		PlainText:       DefaultPlainText,
		RemixModel:      DefaultRemixModel,
	}
	if dir, err := DefaultDownloadDir(); err == nil {
		cfg.DownloadDir = dir
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.KeymapFile = filepath.Join(home, configDirName, keymapFileName)
	}
	return cfg
}

// DefaultDownloadDir is where remix artwork is saved unless configured.
func DefaultDownloadDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, "Downloads"), nil
}

// ConfigPath returns the configuration file path.
func ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// Exists reports whether the config file exists.
func Exists() (bool, error) {
	path, err := ConfigPath()
	if err != nil {
		return false, err
	}
	_, err = os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat config path: %w", err)
}

// Load reads the saved configuration. A missing file is not an error.
func Load() (Config, error) {
	cfg := Defaults()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Debug("no config file, using defaults", "path", path)
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		// Keys absent from the file keep their default values.
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Defaults(), fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	if err := cfg.normalize(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes configuration to disk.
func Save(cfg Config) error {
	if err := cfg.normalize(); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	log.Info("saved config", "path", path)
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvShift)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Shift = n
		} else {
			log.Warn("ignore invalid shift override", "value", v)
		}
	}
	if v := os.Getenv(EnvLetter); v != "" {
		cfg.ReferenceLetter = v
	}
	if v, ok := os.LookupEnv(EnvText); ok {
		cfg.PlainText = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvRemixModel)); v != "" {
		cfg.RemixModel = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvDownloadDir)); v != "" {
		cfg.DownloadDir = v
	}
}

// normalize folds every field into the range the app accepts.
func (c *Config) normalize() error {
	c.Shift = cipher.Normalize(c.Shift)
	c.ReferenceLetter = NormalizeReferenceLetter(c.ReferenceLetter)
	c.PlainText = cipher.Sanitize(c.PlainText)
	c.RemixModel = strings.TrimSpace(c.RemixModel)
	if c.RemixModel == "" {
		c.RemixModel = DefaultRemixModel
	}

	if strings.TrimSpace(c.DownloadDir) == "" {
		dir, err := DefaultDownloadDir()
		if err != nil {
			return err
		}
		c.DownloadDir = dir
	}
	dir, err := NormalizeDir(c.DownloadDir)
	if err != nil {
		return fmt.Errorf("invalid download_dir: %w", err)
	}
	c.DownloadDir = dir

	if strings.TrimSpace(c.KeymapFile) != "" {
		keymap, err := NormalizeDir(c.KeymapFile)
		if err != nil {
			return fmt.Errorf("invalid keymap_file: %w", err)
		}
		c.KeymapFile = keymap
	}
	return nil
}

// NormalizeReferenceLetter keeps the first letter of s, upper-cased, or the
// default reference letter when s has none.
func NormalizeReferenceLetter(s string) string {
	for _, r := range s {
		if l, ok := dial.NormalizeLetter(r); ok {
			return string(l)
		}
	}
	return string(dial.DefaultReferenceLetter)
}

// NormalizeDir expands "~" and returns a clean absolute path.
func NormalizeDir(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is required")
	}

	expanded, err := expandHome(trimmed)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", err
	}

	return filepath.Clean(abs), nil
}

func expandHome(path string) (string, error) {
	if path == "~" {
		return os.UserHomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
	}
	return path, nil
}

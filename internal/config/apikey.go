package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

// Environment variables checked for the Gemini API key, in order.
const (
	EnvGeminiAPIKey = "GEMINI_API_KEY"
	EnvGoogleAPIKey = "GOOGLE_API_KEY"
)

const (
	keyringService = "cipher-nexus"
	keyringUser    = "gemini-api-key"
)

// ErrNoAPIKey means neither the environment nor the key store holds a key.
var ErrNoAPIKey = errors.New("no Gemini API key configured")

// KeyStore persists the API key outside the config file.
type KeyStore interface {
	Get() (string, error)
	Set(key string) error
	Delete() error
}

// OSKeyring stores the key in the operating system keyring.
type OSKeyring struct{}

// Get returns the stored key or ErrNoAPIKey.
func (OSKeyring) Get() (string, error) {
	key, err := keyring.Get(keyringService, keyringUser)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNoAPIKey
	}
	if err != nil {
		return "", fmt.Errorf("read keyring: %w", err)
	}
	return key, nil
}

// Set stores key.
func (OSKeyring) Set(key string) error {
	if err := keyring.Set(keyringService, keyringUser, key); err != nil {
		return fmt.Errorf("write keyring: %w", err)
	}
	return nil
}

// Delete removes the stored key. Deleting a missing key is not an error.
func (OSKeyring) Delete() error {
	err := keyring.Delete(keyringService, keyringUser)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("delete keyring: %w", err)
	}
	return nil
}

// APIKey resolves the Gemini API key from the environment first and then
// from store. A nil store only consults the environment.
func APIKey(store KeyStore) (string, error) {
	for _, name := range []string{EnvGeminiAPIKey, EnvGoogleAPIKey} {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v, nil
		}
	}
	if store == nil {
		return "", ErrNoAPIKey
	}
	key, err := store.Get()
	if err != nil {
		return "", err
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", ErrNoAPIKey
	}
	return key, nil
}

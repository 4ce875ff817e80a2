package secrets

import (
	"errors"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

// KeyringService groups the app's secrets in the OS keychain.
const KeyringService = "hirepath"

// Known secret names. The keychain account is the name itself; each has an
// env fallback for headless setups where no keychain is available.
const (
	GroqAPIKey   = "groq_api_key"
	AdzunaAppID  = "adzuna_app_id"
	AdzunaAppKey = "adzuna_app_key"
	IMAPPassword = "imap_password"
)

var envFallback = map[string]string{
	GroqAPIKey:   "GROQ_API_KEY",
	AdzunaAppID:  "ADZUNA_APP_ID",
	AdzunaAppKey: "ADZUNA_APP_KEY",
	IMAPPassword: "HIREPATH_IMAP_PASSWORD",
}

var ErrNotFound = errors.New("secret not found")

func Known(name string) bool {
	_, ok := envFallback[name]
	return ok
}

// Get reads the keychain first, then the env fallback.
func Get(name string) (string, error) {
	if !Known(name) {
		return "", ErrNotFound
	}

	v, err := keyring.Get(KeyringService, name)
	if err == nil && strings.TrimSpace(v) != "" {
		return v, nil
	}

	if env := strings.TrimSpace(os.Getenv(envFallback[name])); env != "" {
		return env, nil
	}

	return "", ErrNotFound
}

func Set(name, value string) error {
	if !Known(name) {
		return errors.New("unknown secret name: " + name)
	}
	if strings.TrimSpace(value) == "" {
		return errors.New("secret value is empty")
	}
	return keyring.Set(KeyringService, name, value)
}

func Delete(name string) error {
	if !Known(name) {
		return errors.New("unknown secret name: " + name)
	}
	return keyring.Delete(KeyringService, name)
}

// Status reports which known secrets resolve, without exposing values.
func Status() map[string]bool {
	out := make(map[string]bool, len(envFallback))
	for name := range envFallback {
		_, err := Get(name)
		out[name] = err == nil
	}
	return out
}

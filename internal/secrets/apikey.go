// Package secrets resolves the x.ai API credential: OS keychain first,
// environment fallback. The key never lands in the YAML config file.
package secrets

import (
	"errors"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

const KeyringService = "jobextract"

// APIKey looks the credential up in the keychain under the configured
// account, then falls back to XAI_API_KEY. Empty result means the AI
// extractor runs degraded; that is the caller's call to log, not an error.
func APIKey(keyringAccount string) string {
	if strings.TrimSpace(keyringAccount) != "" {
		if key, err := keyring.Get(KeyringService, keyringAccount); err == nil && strings.TrimSpace(key) != "" {
			return strings.TrimSpace(key)
		}
	}
	return strings.TrimSpace(os.Getenv("XAI_API_KEY"))
}

func SetAPIKey(keyringAccount, key string) error {
	if strings.TrimSpace(keyringAccount) == "" {
		return errors.New("keyring account name is empty")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("api key is empty")
	}
	return keyring.Set(KeyringService, keyringAccount, key)
}

func DeleteAPIKey(keyringAccount string) error {
	if strings.TrimSpace(keyringAccount) == "" {
		return errors.New("keyring account name is empty")
	}
	return keyring.Delete(KeyringService, keyringAccount)
}

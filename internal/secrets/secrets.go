package secrets

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

// KeyringService groups this app's secrets in the OS keychain.
const KeyringService = "jobtrack"

const braveAccount = "brave_api_key"

// BraveAPIKey resolves the search API credential: environment first, then
// the OS keychain. Missing credential is a startup failure, not a per-run
// degradation.
func BraveAPIKey() (string, error) {
	if v := strings.TrimSpace(os.Getenv("BRAVE_API_KEY")); v != "" {
		return v, nil
	}
	if pw, err := keyring.Get(KeyringService, braveAccount); err == nil && strings.TrimSpace(pw) != "" {
		return pw, nil
	}
	return "", errors.New("BRAVE_API_KEY not set (env or keychain)")
}

// IMAPAccount names the keychain entry for a mailbox credential.
func IMAPAccount(username, host string) string {
	return fmt.Sprintf("imap:%s@%s", username, host)
}

// IMAPPassword resolves the mailbox credential the same way as the API key.
func IMAPPassword(username, host string) (string, error) {
	if v := strings.TrimSpace(os.Getenv("JOBTRACK_IMAP_PASSWORD")); v != "" {
		return v, nil
	}
	if pw, err := keyring.Get(KeyringService, IMAPAccount(username, host)); err == nil && strings.TrimSpace(pw) != "" {
		return pw, nil
	}
	return "", errors.New("IMAP password not found (set JOBTRACK_IMAP_PASSWORD or store it in the keychain)")
}

func Set(account, value string) error {
	if strings.TrimSpace(account) == "" {
		return errors.New("keyring account name is empty")
	}
	if strings.TrimSpace(value) == "" {
		return errors.New("secret value is empty")
	}
	return keyring.Set(KeyringService, account, value)
}

func Delete(account string) error {
	if strings.TrimSpace(account) == "" {
		return errors.New("keyring account name is empty")
	}
	return keyring.Delete(KeyringService, account)
}

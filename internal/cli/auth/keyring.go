package auth

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const service = "roomdesk-cli"

const (
	accessKey  = "access_token"
	refreshKey = "refresh_token"
	emailKey   = "email_token"
)

// KeyringStore keeps credentials in the OS keychain/credential manager.
type KeyringStore struct {
	service string
}

// NewKeyringStore returns a Store backed by the OS keyring.
func NewKeyringStore() *KeyringStore {
	return &KeyringStore{service: service}
}

// getKeyringKey returns a unique key per token kind and server
func getKeyringKey(kind, server string) string {
	return fmt.Sprintf("%s-%s", kind, server)
}

func (k *KeyringStore) Load(server string) (Credentials, error) {
	var creds Credentials
	fields := []struct {
		kind string
		dst  *string
	}{
		{accessKey, &creds.Access},
		{refreshKey, &creds.Refresh},
		{emailKey, &creds.Email},
	}

	for _, f := range fields {
		value, err := keyring.Get(k.service, getKeyringKey(f.kind, server))
		if err != nil {
			if errors.Is(err, keyring.ErrNotFound) {
				continue
			}
			return Credentials{}, fmt.Errorf("failed to load %s: %w", f.kind, err)
		}
		*f.dst = value
	}

	return creds, nil
}

// Save writes every non-empty token and removes the empty ones.
func (k *KeyringStore) Save(server string, creds Credentials) error {
	fields := []struct {
		kind  string
		value string
	}{
		{accessKey, creds.Access},
		{refreshKey, creds.Refresh},
		{emailKey, creds.Email},
	}

	for _, f := range fields {
		key := getKeyringKey(f.kind, server)
		if f.value == "" {
			if err := k.delete(key); err != nil {
				return err
			}
			continue
		}
		if err := keyring.Set(k.service, key, f.value); err != nil {
			return fmt.Errorf("failed to save %s: %w", f.kind, err)
		}
	}

	return nil
}

func (k *KeyringStore) Clear(server string) error {
	for _, kind := range []string{accessKey, refreshKey, emailKey} {
		if err := k.delete(getKeyringKey(kind, server)); err != nil {
			return err
		}
	}
	return nil
}

func (k *KeyringStore) delete(key string) error {
	if err := keyring.Delete(k.service, key); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil // Already deleted
		}
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}

// Package session keeps the "who is signed in on this device" marker.
//
// The marker lives in an encrypted badger key-value store (the Vault), apart
// from the relational profile cache. Because the two are written by separate
// operations, Manager.Restore cross-checks them before trusting either.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	badger "github.com/dgraph-io/badger/v4"
)

// ErrNoValue is returned by Vault.Get when the key is absent.
var ErrNoValue = errors.New("no value stored")

// keySize selects AES-256 for the badger encryption key.
const keySize = 32

// Vault is an encrypted on-disk key-value store.
type Vault struct {
	db *badger.DB
}

// OpenVault opens (or creates) the vault in dir, encrypted with key.
func OpenVault(dir string, key []byte) (*Vault, error) {
	if len(key) != keySize {
		return nil, fmt.Errorf("session key must be %d bytes, got %d", keySize, len(key))
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create vault directory: %w", err)
	}

	opts := badger.DefaultOptions(dir).
		WithEncryptionKey(key).
		WithIndexCacheSize(8 << 20). // required when encryption is on
		WithNumVersionsToKeep(1).
		WithLogger(slogLogger{logger: slog.Default().With("component", "vault")})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open vault: %w", err)
	}
	return &Vault{db: db}, nil
}

// Close flushes and closes the vault.
func (v *Vault) Close() error {
	return v.db.Close()
}

// Put stores value under key.
func (v *Vault) Put(key, value string) error {
	err := v.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Get returns the value under key or ErrNoValue.
func (v *Vault) Get(key string) (string, error) {
	var value []byte
	err := v.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", ErrNoValue
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	return string(value), nil
}

// Delete removes key. Deleting an absent key is not an error.
func (v *Vault) Delete(key string) error {
	err := v.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// LoadKey resolves the vault encryption key. A non-empty hexKey wins;
// otherwise the key is read from keyFile, which is created with a fresh
// random key on first use.
func LoadKey(hexKey, keyFile string) ([]byte, error) {
	if hexKey != "" {
		key, err := hex.DecodeString(strings.TrimSpace(hexKey))
		if err != nil {
			return nil, fmt.Errorf("invalid session key: %w", err)
		}
		return key, nil
	}

	data, err := os.ReadFile(keyFile)
	if err == nil {
		return hex.DecodeString(strings.TrimSpace(string(data)))
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}

	key := make([]byte, keySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate session key: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(keyFile), 0700); err != nil {
		return nil, fmt.Errorf("failed to create key directory: %w", err)
	}
	if err := os.WriteFile(keyFile, []byte(hex.EncodeToString(key)), 0600); err != nil {
		return nil, fmt.Errorf("failed to write key file: %w", err)
	}
	slog.Info("Generated new session key", "path", keyFile)
	return key, nil
}

// slogLogger routes badger's printf-style logs into slog.
type slogLogger struct {
	logger *slog.Logger
}

func (l slogLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l slogLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l slogLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l slogLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

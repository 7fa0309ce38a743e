package store

import (
	"errors"

	"qgcalc/internal/domain"
)

// ErrWeakPassphrase is returned by NewEncryptedStore for an empty passphrase.
var ErrWeakPassphrase = errors.New("passphrase must not be empty")

// EncryptedStore seals every value before handing it to the wrapped store.
type EncryptedStore struct {
	inner      domain.KVStore
	passphrase string
	kdf        kdfParams
}

var _ domain.KVStore = (*EncryptedStore)(nil)

func NewEncryptedStore(inner domain.KVStore, passphrase string) (*EncryptedStore, error) {
	if passphrase == "" {
		return nil, ErrWeakPassphrase
	}
	return &EncryptedStore{inner: inner, passphrase: passphrase, kdf: defaultKDF()}, nil
}

func (s *EncryptedStore) Get(key string) ([]byte, bool, error) {
	b, ok, err := s.inner.Get(key)
	if err != nil || !ok {
		return nil, ok, err
	}
	raw, err := open(s.passphrase, key, b)
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (s *EncryptedStore) Set(key string, value []byte) error {
	b, err := seal(s.passphrase, key, value, s.kdf)
	if err != nil {
		return err
	}
	return s.inner.Set(key, b)
}

package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"qgcalc/internal/util/memzero"
)

// envelopeVersion is the newest sealed-value format this package reads.
const envelopeVersion = 1

// ErrWrongPassphrase is returned when a sealed value does not open, either
// because the passphrase differs or the ciphertext was modified.
var ErrWrongPassphrase = errors.New("wrong passphrase or corrupted value")

// envelope is the JSON form of a sealed value.
type envelope struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

type kdfParams struct{ N, R, P int }

func defaultKDF() kdfParams { return kdfParams{N: 1 << 15, R: 8, P: 1} }

// seal derives a fresh key from passphrase and a random salt and encrypts raw.
// The key name is bound as additional data so values cannot be swapped
// between keys.
func seal(passphrase, name string, raw []byte, kdf kdfParams) ([]byte, error) {
	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, err
	}
	key, err := deriveKey(passphrase, salt[:], kdf)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte // zero nonce; the key is unique per salt
	ct := aead.Seal(nil, nonce[:], raw, additionalData(name, salt[:]))

	return json.Marshal(envelope{
		V:      envelopeVersion,
		Salt:   salt[:],
		N:      kdf.N,
		R:      kdf.R,
		P:      kdf.P,
		Cipher: ct,
	})
}

func open(passphrase, name string, b []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrongPassphrase, err)
	}
	if env.V > envelopeVersion {
		return nil, fmt.Errorf("unsupported envelope version %d", env.V)
	}

	key, err := deriveKey(passphrase, env.Salt, kdfParams{N: env.N, R: env.R, P: env.P})
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], env.Cipher, additionalData(name, env.Salt))
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

// deriveKey runs scrypt over a private copy of passphrase and wipes the copy.
func deriveKey(passphrase string, salt []byte, kdf kdfParams) ([]byte, error) {
	pass := []byte(passphrase)
	defer memzero.Zero(pass)
	return scrypt.Key(pass, salt, kdf.N, kdf.R, kdf.P, chacha20poly1305.KeySize)
}

func additionalData(name string, salt []byte) []byte {
	ad := make([]byte, 0, len(name)+1+len(salt))
	ad = append(ad, name...)
	ad = append(ad, 0)
	return append(ad, salt...)
}

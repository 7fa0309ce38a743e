// Package store provides the key-value persistence behind history and theme.
//
// Every backend implements domain.KVStore and wraps I/O failures in
// ErrUnavailable so callers can tell "storage is down" apart from "key is
// missing". Stored values are opaque JSON documents owned by the services.
//
// Backends:
//   - FileStore: one JSON file per key under the home directory, written via
//     temp file and rename.
//   - SQLiteStore: a single kv table in a SQLite database.
//   - MemoryStore: process-local map, used by calcd and tests.
//   - EncryptedStore: wraps another backend and seals values with a
//     passphrase-derived key (scrypt + ChaCha20-Poly1305).
//
// Watch reports changes to a FileStore key made by other processes.
package store

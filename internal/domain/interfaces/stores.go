package interfaces

// KVStore is the persistence port used by the history and theme services.
//
// Get reports ok=false for a missing key. Implementations return an error
// wrapping store.ErrUnavailable when the backing storage cannot be reached,
// so callers can fall back explicitly.
type KVStore interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
}

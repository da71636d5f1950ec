package storage

import "errors"

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("storage: key not found")

// Port is the persistence boundary every collection goes through. The
// production implementation is sqlite-backed; tests use the in-memory
// one. Values are opaque byte payloads (serialized JSON collections).
type Port interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

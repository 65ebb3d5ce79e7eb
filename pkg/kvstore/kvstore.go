// Package kvstore defines the persistence port the application state is
// flushed through. Stores only need durable get/put/delete of opaque
// byte values under string keys; the repositories on top serialize
// whole snapshots per write.
package kvstore

// Store is the key-value persistence port.
type Store interface {
	// Get returns the value for key, or (nil, nil) when the key is absent.
	Get(key string) ([]byte, error)
	// Put writes the value for key, replacing any previous value.
	Put(key string, value []byte) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error
	// Close releases the underlying resources.
	Close() error
}

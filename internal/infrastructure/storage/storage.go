package storage

// Store is the narrow durable key-value port both collections persist
// through. Values are structured text; a missing key is not an error.
type Store interface {
	// Get returns the value for key and whether it exists.
	Get(key string) (string, bool, error)
	// Set writes the full value for key, replacing any previous value.
	Set(key string, value string) error
	// Remove deletes key; removing a missing key is a no-op.
	Remove(key string) error
	Close() error
}

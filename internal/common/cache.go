package common

import "time"

// Cache is the surface behind the fleet listing and timeline document
// caches. Backends may serialize values, so what comes back is not
// guaranteed to be the type that went in; read through GetTyped so a
// foreign type counts as a miss.
type Cache interface {
	// Set stores value at key for ttl.
	Set(key string, value any, ttl time.Duration)

	// Get returns the raw cached value and whether the key was present.
	Get(key string) (any, bool)

	// Delete drops key.
	Delete(key string)

	// Close releases any backend connections.
	Close() error
}

// GetTyped reads key and returns its value only when it holds a T. The
// redis backend JSON round-trips structs into maps; those read as a miss
// so callers recompute instead of serving a flattened document.
func GetTyped[T any](c Cache, key string) (T, bool) {
	if raw, found := c.Get(key); found {
		if v, ok := raw.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

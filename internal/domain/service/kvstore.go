package service

import "context"

// AddressKeyPrefix namespaces per-owner address lists inside a KeyValueStore.
// A full key is AddressKeyPrefix + ownerID.
const AddressKeyPrefix = "addresses_"

// AddressKey builds the store key holding ownerID's address list.
func AddressKey(ownerID string) string {
	return AddressKeyPrefix + ownerID
}

// KeyValueStore is the durable local cache backing offline address access.
// Values are opaque byte slices; callers own the encoding.
type KeyValueStore interface {
	// Get returns the value for key, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set writes key to value, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys lists all keys with the given prefix.
	Keys(ctx context.Context, prefix string) ([]string, error)

	// Close releases the underlying resources.
	Close() error
}

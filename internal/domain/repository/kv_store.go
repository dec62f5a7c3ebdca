package repository

import "context"

// KVPair is one entry of the diagnostic listing.
type KVPair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// KVStore is the durable, process-wide string-to-string namespace that backs
// all account and profile state. Writes are durable before the call returns.
// There is no grouping of writes: a multi-key save is a sequence of
// independent Set calls with no atomicity across them.
type KVStore interface {
	// Set overwrites the value under key unconditionally. Idempotent.
	Set(ctx context.Context, key, value string) error

	// Get returns the value under key. A never-written key yields ok=false
	// with a nil error; absence is a valid result, not a failure.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Delete removes key. Deleting an absent key is a no-op, not an error.
	Delete(ctx context.Context, key string) error

	// List returns every stored pair. Diagnostic inspection only; no
	// business logic may depend on it.
	List(ctx context.Context) ([]KVPair, error)
}

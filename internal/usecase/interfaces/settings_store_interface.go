package interfaces

import "context"

// ISettingsStore is a durable key/value store for gateway settings,
// currently the two mode-scoped webhook-id slots.
//
// Get returns an empty string (no error) when the key is absent.
// Concurrent Put calls for the same key are last-write-wins, which is
// acceptable for webhook ids: any stored id is a valid one.

type ISettingsStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
}

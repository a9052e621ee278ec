package ports

import "context"

// Stores encoded plan responses by request fingerprint.
type PlanCache interface {
	// Return the payload for key; ok is false on a miss.
	Get(ctx context.Context, key string) (payload []byte, ok bool, err error)
	// Store the payload for key, replacing any previous value.
	Put(ctx context.Context, key string, payload []byte) error
}

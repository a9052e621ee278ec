package memory

import (
	"context"
	"slices"
	"sync"
)

// PlanCache keeps encoded plans for the life of the process.
type PlanCache struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewPlanCache() *PlanCache {
	return &PlanCache{entries: map[string][]byte{}}
}

func (c *PlanCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	payload, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(payload), true, nil
}

func (c *PlanCache) Put(_ context.Context, key string, payload []byte) error {
	c.mu.Lock()
	c.entries[key] = slices.Clone(payload)
	c.mu.Unlock()
	return nil
}

// Len returns the number of cached plans.
func (c *PlanCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

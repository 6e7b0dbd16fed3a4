package channel

import (
	"fmt"

	"github.com/postroom/postroom-backend/internal/domain"
)

// Registry maps channels to their adapters.
type Registry struct {
	adapters map[domain.Channel]Adapter
}

// NewRegistry builds a registry from the given adapters, keyed by the
// channel each adapter reports.
func NewRegistry(adapters ...Adapter) *Registry {
	m := make(map[domain.Channel]Adapter, len(adapters))
	for _, a := range adapters {
		m[a.Channel()] = a
	}
	return &Registry{adapters: m}
}

// For returns the adapter for a channel.
// Returns domain.ErrNotFound if no adapter is configured for it.
func (r *Registry) For(ch domain.Channel) (Adapter, error) {
	a, ok := r.adapters[ch]
	if !ok {
		return nil, fmt.Errorf("channel %s: no adapter configured: %w", ch, domain.ErrNotFound)
	}
	return a, nil
}

package config

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/vedanetwork/veda-core/logging"
)

// Selector holds the network a process runs on. It is written once during
// startup and read by every component that was handed it.
//
// This type is safe for concurrent access.
type Selector struct {
	registry *Registry

	mu     sync.RWMutex
	active *Params
}

// NewSelector returns an unselected Selector backed by registry.
func NewSelector(registry *Registry) *Selector {
	return &Selector{registry: registry}
}

// Select makes the named network active and returns its parameters. Selecting
// the already active network again is a no-op. Selecting a different network,
// or an unknown one, fails and leaves the current selection untouched.
func (s *Selector) Select(name string) (*Params, error) {
	p, err := s.registry.Get(name)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active != nil {
		if s.active.Network == p.Network {
			return s.active, nil
		}
		return nil, errors.Wrapf(ErrAlreadySelected, "active %s, requested %s", s.active.Name(), name)
	}
	s.active = p

	logging.CPrint(logging.INFO, "network selected", logging.LogFormat{
		"network": p.Name(),
		"port":    p.Identity.DefaultPort,
		"genesis": p.GenesisHash.String(),
	})
	return p, nil
}

// Current returns the active parameters. Calling it before a successful
// Select is a programming error and panics.
func (s *Selector) Current() *Params {
	s.mu.RLock()
	p := s.active
	s.mu.RUnlock()
	if p == nil {
		logging.CPrint(logging.PANIC, "network parameters read before a network was selected", logging.LogFormat{})
	}
	return p
}

// IsSelected reports whether Select has succeeded.
func (s *Selector) IsSelected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active != nil
}

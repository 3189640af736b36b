package provider

import (
	"fmt"
	"sort"
	"sync"

	apperrors "autoscribe/internal/app/errors"
)

// Registry maps provider choices to adapters
type Registry struct {
	mu        sync.RWMutex
	providers map[Choice]Transcriber
}

// NewRegistry creates a registry holding the given adapters
func NewRegistry(transcribers ...Transcriber) (*Registry, error) {
	r := &Registry{providers: make(map[Choice]Transcriber)}
	for _, t := range transcribers {
		if err := r.Register(t); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds an adapter under its own name
func (r *Registry) Register(t Transcriber) error {
	if t == nil {
		return fmt.Errorf("provider cannot be nil")
	}
	name := t.Name()
	if name == "" || name == ChoiceAuto {
		return fmt.Errorf("invalid provider name %q", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[name]; exists {
		return fmt.Errorf("provider '%s' already registered", name)
	}
	r.providers[name] = t
	return nil
}

// Get returns the adapter registered for choice
func (r *Registry) Get(choice Choice) (Transcriber, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, exists := r.providers[choice]
	if !exists {
		return nil, apperrors.Newf(apperrors.KindInvalidInput, "unsupported service: %s", choice)
	}
	return t, nil
}

// Resolve turns auto into a concrete provider by input size and returns the
// adapter for the resolved choice.
func (r *Registry) Resolve(choice Choice, sizeBytes int64) (Choice, Transcriber, error) {
	if choice == "" || choice == ChoiceAuto {
		choice = SelectService(sizeBytes)
	}
	t, err := r.Get(choice)
	if err != nil {
		return "", nil, err
	}
	return choice, t, nil
}

// List returns the registered provider names in sorted order
func (r *Registry) List() []Choice {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]Choice, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

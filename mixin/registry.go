package mixin

import (
	"sync"

	"mixer/internal/common"
)

// Registry is an append-only store of named merge fragments and chain
// transformers. Both kinds share one namespace; a name can be registered
// once for the registry's lifetime.
type Registry struct {
	mu           sync.RWMutex
	fragments    map[string]*Fragment
	transformers map[string]Transformer
	names        []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		fragments:    make(map[string]*Fragment),
		transformers: make(map[string]Transformer),
	}
}

// RegisterFragment stores a copy of f under name.
func (r *Registry) RegisterFragment(name string, f *Fragment) error {
	if name == "" || f == nil {
		return newError(CodeInvalidRegistration, name, "",
			"RegisterFragment(name, fragment): name must be non-empty and fragment non-nil")
	}

	if key, ok := f.validate(); !ok {
		return newError(CodeInvalidFragment, name, key, "member %q has no callable", key)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkFree(name); err != nil {
		return err
	}

	r.fragments[name] = f.Clone()
	r.names = append(r.names, name)

	return nil
}

// RegisterChain stores a chain transformer under name.
func (r *Registry) RegisterChain(name string, t Transformer) error {
	if name == "" || t == nil {
		return newError(CodeInvalidRegistration, name, "",
			"RegisterChain(name, transformer): name must be non-empty and transformer non-nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkFree(name); err != nil {
		return err
	}

	r.transformers[name] = t
	r.names = append(r.names, name)

	return nil
}

func (r *Registry) checkFree(name string) error {
	_, isFragment := r.fragments[name]
	_, isChain := r.transformers[name]

	if isFragment || isChain {
		return newError(CodeDuplicateName, name, "", "invalid mixin name: %s already exists", name)
	}

	return nil
}

// Fragment returns a copy of the fragment registered under name.
func (r *Registry) Fragment(name string) (*Fragment, bool) {
	f, ok := r.fragment(name)
	if !ok {
		return nil, false
	}

	return f.Clone(), true
}

// fragment returns the stored fragment. Resolution clones it into a
// descriptor before anything is written.
func (r *Registry) fragment(name string) (*Fragment, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.fragments[name]

	return f, ok
}

// Transformer returns the chain transformer registered under name.
func (r *Registry) Transformer(name string) (Transformer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.transformers[name]

	return t, ok
}

// Has reports whether name is registered as either kind.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.checkFree(name) != nil
}

// Names returns every registered name in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return common.Clone(r.names)
}

package httpclient

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Registry holds one Client per named upstream.
type Registry struct {
	clients     map[string]*Client
	mu          sync.RWMutex
	defaultOpts []Option
}

func NewRegistry(defaultOpts ...Option) *Registry {
	return &Registry{
		clients:     make(map[string]*Client),
		mu:          sync.RWMutex{},
		defaultOpts: defaultOpts,
	}
}

// Register builds a client from cfg and stores it under name, replacing any
// previous client with that name.
func (r *Registry) Register(name string, cfg Config, opts ...Option) error {
	allOpts := make([]Option, 0, len(r.defaultOpts)+len(opts))
	allOpts = append(allOpts, r.defaultOpts...)
	allOpts = append(allOpts, opts...)

	client, err := New(cfg, allOpts...)
	if err != nil {
		return fmt.Errorf("httpclient: register %q: %w", name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.clients[name] = client

	return nil
}

func (r *Registry) Client(name string) (*Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.clients[name]

	return client, ok
}

func (r *Registry) MustClient(name string) *Client {
	client, ok := r.Client(name)
	if !ok {
		panic(fmt.Sprintf("httpclient: service %q not registered", name))
	}

	return client
}

func (r *Registry) Has(name string) bool {
	_, ok := r.Client(name)

	return ok
}

func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.clients[name]
	if ok {
		delete(r.clients, name)
	}

	return ok
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.clients))
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.clients)
}

package decision

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"lundao/internal/bot"
)

var (
	ErrUnknownStrategy = errors.New("unknown strategy")
	ErrNoStrategies    = errors.New("no strategies registered")
)

type entry struct {
	strategy bot.Strategy
	// mu serialises Decide: strategies such as MCTS carry per-instance state.
	mu sync.Mutex
}

// Registry maps strategy names to instances, remembering registration order.
type Registry struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]*entry
}

func NewRegistry(strategies ...bot.Strategy) *Registry {
	r := &Registry{entries: make(map[string]*entry)}
	for _, s := range strategies {
		r.Register(s)
	}
	return r
}

// Register adds s, replacing any strategy with the same name in place.
func (r *Registry) Register(s bot.Strategy) {
	if s == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	name := s.Name()
	if _, ok := r.entries[name]; !ok {
		r.order = append(r.order, name)
	}
	r.entries[name] = &entry{strategy: s}
}

func (r *Registry) lookup(name string) (*entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, name)
	}
	return e, nil
}

// Get returns the strategy registered under name.
func (r *Registry) Get(name string) (bot.Strategy, error) {
	e, err := r.lookup(name)
	if err != nil {
		return nil, err
	}
	return e.strategy, nil
}

// Resolve returns name if registered, otherwise the first registered name.
func (r *Registry) Resolve(name string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.entries[name]; ok {
		return name, nil
	}
	if len(r.order) == 0 {
		return "", ErrNoStrategies
	}
	return r.order[0], nil
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// Info describes a registered strategy.
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// List returns every strategy sorted by name.
func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Info, 0, len(r.entries))
	for name, e := range r.entries {
		out = append(out, Info{Name: name, Description: e.strategy.Description()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

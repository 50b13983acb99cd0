package shell

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// ErrNoSuchCommand is returned by [Registry.Lookup] for unregistered names
var ErrNoSuchCommand = errors.New("no such command")

// CommandFunc runs one command. args excludes the command name.
type CommandFunc func(sh *Shell, args []string) error

// Registry maps command names to their implementations
type Registry struct {
	mu       sync.RWMutex
	commands map[string]CommandFunc
}

func NewRegistry() *Registry {
	return &Registry{commands: map[string]CommandFunc{}}
}

// Register ties fn to name. The first registration of a name wins so
// builtins cannot be replaced once a shell is running.
func (r *Registry) Register(name string, fn CommandFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.commands[name]; ok {
		return
	}
	r.commands[name] = fn
}

// Lookup returns the command registered under name
func (r *Registry) Lookup(name string) (CommandFunc, error) {
	r.mu.RLock()
	fn, ok := r.commands[name]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.Wrap(ErrNoSuchCommand, name)
	}
	return fn, nil
}

// Names returns the registered command names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

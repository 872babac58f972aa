package spring

import (
	"maps"
	"slices"
	"sync"
)

// DefaultConfigName is the registry name of DefaultConfig.
const DefaultConfigName = "default config"

// ConfigRegistry is a named collection of configs for tuning tools. It is
// an ordinary value passed to whoever needs it.
type ConfigRegistry struct {
	mu      sync.Mutex
	configs map[string]Config
}

// NewConfigRegistry creates a registry, optionally seeded with
// DefaultConfig under DefaultConfigName.
func NewConfigRegistry(includeDefault bool) *ConfigRegistry {
	r := &ConfigRegistry{configs: make(map[string]Config)}
	if includeDefault {
		r.Add(DefaultConfigName, DefaultConfig)
	}
	return r
}

// Add stores c under name. It returns false and leaves the registry
// unchanged when the name is taken.
func (r *ConfigRegistry) Add(name string, c Config) bool {
	if name == "" {
		misuse(ErrEmptyName, "ConfigRegistry.Add")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.configs[name]; ok {
		return false
	}
	r.configs[name] = c
	return true
}

// Put stores c under name, replacing any previous entry.
func (r *ConfigRegistry) Put(name string, c Config) {
	if name == "" {
		misuse(ErrEmptyName, "ConfigRegistry.Put")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.configs[name] = c
}

// Remove deletes name and reports whether it was present.
func (r *ConfigRegistry) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.configs[name]; !ok {
		return false
	}
	delete(r.configs, name)
	return true
}

func (r *ConfigRegistry) Get(name string) (Config, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.configs[name]
	return c, ok
}

// All returns a copy of the registry contents.
func (r *ConfigRegistry) All() map[string]Config {
	r.mu.Lock()
	defer r.mu.Unlock()
	return maps.Clone(r.configs)
}

// Names returns the registered names in sorted order.
func (r *ConfigRegistry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Sorted(maps.Keys(r.configs))
}

func (r *ConfigRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.configs)
}

func (r *ConfigRegistry) RemoveAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.configs)
}

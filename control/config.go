// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Thread-safe configuration store with dynamic update, typed lookups and
// reload propagation. Values may be seeded from a TOML file.

package control

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/mohae/deepcopy"
	"github.com/momentics/hioload-fdio/api"
)

// ConfigStore is a dynamic key/value map with atomic snapshot and listener support.
type ConfigStore struct {
	mu        sync.RWMutex
	config    map[string]any
	listeners []func()
}

var _ api.ConfigSource = (*ConfigStore)(nil)

// NewConfigStore initializes a new config store with empty data.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{
		config:    make(map[string]any),
		listeners: make([]func(), 0),
	}
}

// LoadFile decodes a TOML document into a new store. Nested tables are
// flattened into dotted keys, so [bridge] fastpath = false becomes
// "bridge.fastpath".
func LoadFile(path string) (*ConfigStore, error) {
	var doc map[string]any
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, fmt.Errorf("config decode %s: %w", path, err)
	}
	cs := NewConfigStore()
	flatten("", doc, cs.config)
	return cs, nil
}

func flatten(prefix string, in map[string]any, out map[string]any) {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := v.(map[string]any); ok {
			flatten(key, sub, out)
			continue
		}
		out[key] = v
	}
}

// GetSnapshot returns a deep copy of all config values. TOML arrays are
// copied too, so callers may modify the result freely.
func (cs *ConfigStore) GetSnapshot() map[string]any {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return deepcopy.Copy(cs.config).(map[string]any)
}

// Bool returns a boolean value; strings are parsed with strconv.ParseBool.
func (cs *ConfigStore) Bool(key string, def bool) bool {
	cs.mu.RLock()
	v, ok := cs.config[key]
	cs.mu.RUnlock()
	if !ok {
		return def
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		if parsed, err := strconv.ParseBool(b); err == nil {
			return parsed
		}
	}
	return def
}

// Int returns an integer value. TOML integers decode as int64.
func (cs *ConfigStore) Int(key string, def int) int {
	cs.mu.RLock()
	v, ok := cs.config[key]
	cs.mu.RUnlock()
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case string:
		if parsed, err := strconv.Atoi(n); err == nil {
			return parsed
		}
	}
	return def
}

// SetConfig merges new values and dispatches listeners asynchronously.
func (cs *ConfigStore) SetConfig(newCfg map[string]any) {
	for _, fn := range cs.merge(newCfg) {
		go fn()
	}
}

// SetConfigSync merges new values and runs listeners before returning.
func (cs *ConfigStore) SetConfigSync(newCfg map[string]any) {
	for _, fn := range cs.merge(newCfg) {
		fn()
	}
}

// OnReload registers a listener hook called on config changes.
func (cs *ConfigStore) OnReload(fn func()) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.listeners = append(cs.listeners, fn)
}

// merge applies values under the lock and returns the listeners to notify.
// Listeners run unlocked because they read the store back.
func (cs *ConfigStore) merge(newCfg map[string]any) []func() {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	for k, v := range newCfg {
		cs.config[k] = v
	}
	return append([]func(){}, cs.listeners...)
}

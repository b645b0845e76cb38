package validation

import (
	"fmt"
	"strings"
	"sync"
)

type registryEntry struct {
	rule    Rule
	info    RuleInfo
	enabled bool
}

// registry keeps rules in registration order. Built-ins are registered first
// at construction, custom rules after. generation changes on every mutation
// so cached reports never outlive the rule set they were computed with.
type registry struct {
	mu         sync.RWMutex
	entries    []registryEntry
	index      map[string]int
	generation uint64
}

func newRegistry() *registry {
	return &registry{index: make(map[string]int)}
}

func (r *registry) register(rule Rule) (RuleInfo, error) {
	info, err := ruleInfo(rule)
	if err != nil {
		return info, err
	}
	info.ID = strings.TrimSpace(info.ID)
	if err := validateInfo(info); err != nil {
		return info, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[info.ID]; exists {
		return info, fmt.Errorf("%w: %q", ErrDuplicateRuleID, info.ID)
	}
	r.index[info.ID] = len(r.entries)
	r.entries = append(r.entries, registryEntry{rule: rule, info: info, enabled: true})
	r.generation++
	return info, nil
}

func (r *registry) setEnabled(id string, enabled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.index[strings.TrimSpace(id)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrRuleNotFound, id)
	}
	if r.entries[idx].enabled == enabled {
		return nil
	}
	r.entries[idx].enabled = enabled
	r.generation++
	return nil
}

func (r *registry) has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.index[id]
	return ok
}

// snapshot returns the enabled entries in order along with the generation
// they belong to.
func (r *registry) snapshot() ([]registryEntry, uint64) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]registryEntry, 0, len(r.entries))
	for _, entry := range r.entries {
		if entry.enabled {
			out = append(out, entry)
		}
	}
	return out, r.generation
}

func (r *registry) currentGeneration() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.generation
}

// RuleStatus lists a registered rule with its enabled flag.
type RuleStatus struct {
	RuleInfo
	Enabled bool `json:"enabled"`
}

func (r *registry) list() []RuleStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]RuleStatus, len(r.entries))
	for i, entry := range r.entries {
		out[i] = RuleStatus{RuleInfo: entry.info, Enabled: entry.enabled}
	}
	return out
}

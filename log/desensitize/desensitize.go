// Package desensitize masks credentials and key material in log output.
package desensitize

import (
	"slices"
	"sync"
)

// Hook holds an ordered rule set. It is safe for concurrent use.
type Hook struct {
	mu    sync.RWMutex
	rules []Rule
}

// NewHook creates a hook with rules
func NewHook(rules ...Rule) *Hook {
	h := &Hook{}
	h.AddRule(rules...)
	return h
}

// NewBuiltinHook creates a hook with BuiltinRules
func NewBuiltinHook() *Hook {
	return NewHook(BuiltinRules()...)
}

// AddRule appends rules, replacing rules with the same name in place
func (h *Hook) AddRule(rules ...Rule) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, rule := range rules {
		if rule == nil {
			continue
		}
		idx := slices.IndexFunc(h.rules, func(r Rule) bool { return r.Name() == rule.Name() })
		if idx >= 0 {
			h.rules[idx] = rule
			continue
		}
		h.rules = append(h.rules, rule)
	}
}

// AddContentRule adds a ContentRule
func (h *Hook) AddContentRule(name, pattern, replacement string) error {
	rule, err := NewContentRule(name, pattern, replacement)
	if err != nil {
		return err
	}
	h.AddRule(rule)
	return nil
}

// AddFieldRule adds a FieldRule
func (h *Hook) AddFieldRule(name, field string) error {
	rule, err := NewFieldRule(name, field)
	if err != nil {
		return err
	}
	h.AddRule(rule)
	return nil
}

// RemoveRule removes the rule called name
func (h *Hook) RemoveRule(name string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	n := len(h.rules)
	h.rules = slices.DeleteFunc(h.rules, func(r Rule) bool { return r.Name() == name })
	return len(h.rules) != n
}

// Rules returns the rule names in application order
func (h *Hook) Rules() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	names := make([]string, len(h.rules))
	for i, r := range h.rules {
		names[i] = r.Name()
	}
	return names
}

// Desensitize applies every rule to s in order
func (h *Hook) Desensitize(s string) string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, rule := range h.rules {
		s = rule.Process(s)
	}
	return s
}

// Package tool implements discovery, registration, and subprocess
// execution of external schema-describing tool executables.
package tool

import (
	"encoding/json"
	"sort"
)

// Entry is a single registered tool.
type Entry struct {
	Name   string
	Path   string
	Schema json.RawMessage
}

// Registry is an in-memory, name-keyed collection of discovered tools with
// override-on-insert semantics.
type Registry struct {
	entries []Entry
}

// NewRegistry creates an empty registry with the documented 16-entry
// initial capacity.
func NewRegistry() *Registry {
	return &Registry{entries: make([]Entry, 0, 16)}
}

// Lookup performs a linear name scan, returning (entry, true) on a hit.
func (r *Registry) Lookup(name string) (Entry, bool) {
	for _, e := range r.entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Add inserts a new entry or replaces an existing one by name.
func (r *Registry) Add(e Entry) {
	for i, existing := range r.entries {
		if existing.Name == e.Name {
			r.entries[i] = e
			return
		}
	}
	r.entries = append(r.entries, e)
}

// Clear discards all entries, preserving allocated capacity.
func (r *Registry) Clear() {
	r.entries = r.entries[:0]
}

// Count returns the number of registered tools.
func (r *Registry) Count() int {
	return len(r.entries)
}

// Sort orders entries alphabetically by name, used only by debug listings.
func (r *Registry) Sort() {
	sort.Slice(r.entries, func(i, j int) bool {
		return r.entries[i].Name < r.entries[j].Name
	})
}

// All returns a borrowed view of every registered entry, used by the
// `ikigai tools` listing.
func (r *Registry) All() []Entry {
	return r.entries
}

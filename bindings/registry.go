package bindings

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/keychord/combo"
	"github.com/dshills/keychord/keyname"
)

// Handler is invoked when a binding's shortcut is matched.
type Handler func() error

// Binding describes a shortcut registration.
type Binding struct {
	// Keys is the shortcut string, e.g. "ctrl+s" or "ctrl+k ctrl+c".
	Keys string

	// Action names the command this binding triggers. Informational;
	// the registry dispatches to the Handler, not the action name.
	Action string

	// Description documents the binding.
	Description string

	// EventType selects which key event kind completes the match.
	EventType combo.EventType

	// Strict rejects the binding at registration time if any key name
	// is unrecognized.
	Strict bool
}

// entry is a registered binding with its pre-parsed sequence chain.
type entry struct {
	id      uuid.UUID
	binding Binding

	// chain is the sequence's combination identifiers in order,
	// prefix combinations followed by the terminal combination.
	chain []string

	handler Handler
}

// Registry holds registered bindings. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]*entry
	parser  *combo.Parser
}

// NewRegistry creates an empty registry using the default combo parser.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[uuid.UUID]*entry),
		parser:  combo.NewParser(combo.Collaborators{}),
	}
}

// Bind parses and registers a binding, returning a handle for Unbind.
func (r *Registry) Bind(b Binding, h Handler) (uuid.UUID, error) {
	if h == nil {
		return uuid.Nil, fmt.Errorf("binding %q: nil handler", b.Keys)
	}

	parsed, err := r.parser.ParseSequence(b.Keys, combo.Options{
		EventType:       b.EventType,
		EnsureValidKeys: b.Strict,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("binding %q: %w", b.Keys, err)
	}

	chain := make([]string, 0, parsed.Sequence.Size)
	if parsed.Sequence.Prefix != "" {
		chain = append(chain, splitPrefix(parsed.Sequence.Prefix)...)
	}
	chain = append(chain, parsed.Combination.ID)

	e := &entry{
		id:      uuid.New(),
		binding: b,
		chain:   chain,
		handler: h,
	}

	r.mu.Lock()
	r.entries[e.id] = e
	r.mu.Unlock()

	return e.id, nil
}

// Unbind removes a binding. Returns false if the handle is unknown.
func (r *Registry) Unbind(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		return false
	}
	delete(r.entries, id)
	return true
}

// Bindings returns a snapshot of all registered bindings.
func (r *Registry) Bindings() []Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Binding, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.binding)
	}
	return out
}

// Len returns the number of registered bindings.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// snapshot returns the current entries for matching.
func (r *Registry) snapshot() []*entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	return out
}

// splitPrefix splits a sequence prefix into combination identifiers.
// Identifiers never contain spaces, so a plain split is safe.
func splitPrefix(prefix string) []string {
	return strings.Split(prefix, " ")
}

// chordKeys returns the key names of a combination identifier.
func chordKeys(id string) []string {
	return keyname.SplitID(id)
}

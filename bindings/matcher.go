package bindings

import (
	"errors"
	"sync"

	"github.com/dshills/keychord/combo"
	"github.com/dshills/keychord/keyname"
)

// Matcher matches live key events against a registry's bindings.
//
// Callers feed it canonical key names (the tcellkeys package produces them
// from terminal events). Two input models are supported:
//
//   - Press treats each event as one complete combination. Sources that
//     never report key releases (terminal input) use this model; sequences
//     advance per event and no pressed state accumulates.
//   - KeyDown/KeyUp track the currently pressed key set for sources that
//     report releases. A combination is satisfied while its exact key set
//     is held; a satisfied non-terminal combination commits to the pending
//     sequence when any of its keys releases, so a modifier held across
//     combinations ("ctrl+k ctrl+c" with Ctrl never released) still
//     advances.
//
// Use one model per matcher; the two do not share transient state.
type Matcher struct {
	mu  sync.Mutex
	reg *Registry

	// pressed is the set of currently held keys (KeyDown/KeyUp model).
	pressed combo.KeySet

	// done holds the committed combination identifiers of the pending
	// sequence.
	done []string

	// commit is the identifier satisfied by the current hold, moved to
	// done when one of its keys releases. Pressing a key outside the
	// satisfied chord abandons it.
	commit string
}

// NewMatcher creates a matcher over the given registry.
func NewMatcher(reg *Registry) *Matcher {
	return &Matcher{
		reg:     reg,
		pressed: make(combo.KeySet),
	}
}

// Press matches one complete key event against the registry and returns
// the bindings fired with their joined handler errors.
//
// Up-event bindings never fire from Press; they need a source that
// reports releases.
func (m *Matcher) Press(names ...string) ([]Binding, error) {
	set := make(combo.KeySet, len(names))
	for _, name := range names {
		set[name] = true
	}
	id := keyname.NormalizeID(set.Names())

	m.mu.Lock()
	fired, matched := m.pressOnce(id)
	if len(fired) == 0 && !matched && len(m.done) > 0 {
		// The event does not continue the pending sequence; start over.
		m.done = nil
		fired, _ = m.pressOnce(id)
	}
	if len(fired) > 0 {
		m.done = nil
	}
	m.mu.Unlock()

	return run(fired)
}

// pressOnce matches one event id at the current sequence position,
// advancing the pending sequence on a non-terminal match. Caller holds m.mu.
func (m *Matcher) pressOnce(id string) (fired []*entry, matched bool) {
	next := len(m.done)
	advance := false

	for _, e := range m.reg.snapshot() {
		if len(e.chain) <= next || !sliceEqual(e.chain[:next], m.done) {
			continue
		}
		if id != e.chain[next] {
			continue
		}
		matched = true
		if next == len(e.chain)-1 {
			if e.binding.EventType == combo.EventDown {
				fired = append(fired, e)
			}
			continue
		}
		advance = true
	}

	if advance {
		m.done = append(m.done, id)
	}
	return fired, matched
}

// KeyDown records key presses and fires any completed down-event bindings.
// It returns the bindings fired and the joined handler errors.
func (m *Matcher) KeyDown(names ...string) ([]Binding, error) {
	m.mu.Lock()
	for _, name := range names {
		m.pressed[name] = true
	}
	if m.commit != "" && !subsetOf(m.pressed, m.commit) {
		// The hold grew past the satisfied chord; abandon it.
		m.commit = ""
	}

	fired := m.evaluate(combo.EventDown)
	m.mu.Unlock()

	return run(fired)
}

// KeyUp records key releases. Up-event bindings whose combination is
// satisfied by the held set fire before the keys are removed. Releasing a
// key of a satisfied non-terminal combination commits it to the pending
// sequence; the remaining held keys can start the next combination.
func (m *Matcher) KeyUp(names ...string) ([]Binding, error) {
	m.mu.Lock()

	fired := m.evaluate(combo.EventUp)

	for _, name := range names {
		delete(m.pressed, name)
	}
	if m.commit != "" && (len(m.pressed) == 0 || anyChordKey(names, m.commit)) {
		m.done = append(m.done, m.commit)
		m.commit = ""
	}
	m.mu.Unlock()

	return run(fired)
}

// Reset clears all pressed and pending sequence state.
func (m *Matcher) Reset() {
	m.mu.Lock()
	m.pressed = make(combo.KeySet)
	m.done = nil
	m.commit = ""
	m.mu.Unlock()
}

// Pending reports whether a multi-combination sequence is in progress.
func (m *Matcher) Pending() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.done) > 0 || m.commit != ""
}

// evaluate matches the pressed set against the registry for the given event
// type and updates sequence state. Caller holds m.mu. The returned entries'
// handlers must be run after the lock is released.
func (m *Matcher) evaluate(et combo.EventType) []*entry {
	id := keyname.NormalizeID(m.pressed.Names())

	// Only presses satisfy chords; a hold shrinking back to a chord's
	// key set on release does not re-satisfy it.
	allowCommit := et == combo.EventDown

	fired, pending := m.matchOnce(id, et, allowCommit)
	if len(fired) == 0 && !pending && len(m.done) > 0 {
		// The press does not continue the pending sequence; start over.
		m.done = nil
		m.commit = ""
		fired, _ = m.matchOnce(id, et, allowCommit)
	}

	if len(fired) > 0 {
		m.done = nil
		m.commit = ""
	}
	return fired
}

// matchOnce evaluates the pressed set once against the current sequence
// position. It reports completed entries and whether any entry remains
// reachable from this hold.
func (m *Matcher) matchOnce(id string, et combo.EventType, allowCommit bool) (fired []*entry, pending bool) {
	next := len(m.done)

	for _, e := range m.reg.snapshot() {
		if len(e.chain) <= next || !sliceEqual(e.chain[:next], m.done) {
			continue
		}

		chord := e.chain[next]
		terminal := next == len(e.chain)-1

		if id == chord {
			if terminal {
				if e.binding.EventType == et {
					fired = append(fired, e)
				} else {
					pending = true
				}
				continue
			}
			if allowCommit {
				m.commit = id
			}
			pending = true
			continue
		}

		if subsetOf(m.pressed, chord) {
			pending = true
		}
	}
	return fired, pending
}

// run invokes the handlers of fired entries, joining their errors.
func run(fired []*entry) ([]Binding, error) {
	if len(fired) == 0 {
		return nil, nil
	}

	out := make([]Binding, 0, len(fired))
	var errs []error
	for _, e := range fired {
		out = append(out, e.binding)
		if err := e.handler(); err != nil {
			errs = append(errs, err)
		}
	}
	return out, errors.Join(errs...)
}

// subsetOf reports whether every pressed key belongs to the chord.
func subsetOf(pressed combo.KeySet, chordID string) bool {
	keys := chordKeys(chordID)
	if len(pressed) > len(keys) {
		return false
	}
	in := make(map[string]bool, len(keys))
	for _, k := range keys {
		in[k] = true
	}
	for k := range pressed {
		if !in[k] {
			return false
		}
	}
	return true
}

// anyChordKey reports whether any of the names is a key of the chord.
func anyChordKey(names []string, chordID string) bool {
	keys := chordKeys(chordID)
	for _, name := range names {
		for _, k := range keys {
			if name == k {
				return true
			}
		}
	}
	return false
}

func sliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

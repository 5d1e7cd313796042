package combo

import "errors"

// Parse errors
var (
	ErrEmpty          = errors.New("empty key sequence")
	ErrInvalidKey     = errors.New("invalid key name")
	ErrBadCombination = errors.New("malformed key combination")
)

// EventType is an opaque tag identifying which kind of key event a parsed
// combination should be matched against. The parser never interprets it;
// it is carried through to the terminal Combination verbatim.
type EventType int

// Conventional event types. Callers own the taxonomy; these constants are
// provided for convenience only.
const (
	EventDown EventType = iota
	EventUp
)

// String returns the conventional name for the event type.
func (e EventType) String() string {
	switch e {
	case EventDown:
		return "down"
	case EventUp:
		return "up"
	default:
		return "unknown"
	}
}

// KeySet is a presence set of canonical key names.
type KeySet map[string]bool

// Names returns the key names in the set in unspecified order.
func (s KeySet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	return names
}

// Contains reports whether all of the given names are present.
func (s KeySet) Contains(names ...string) bool {
	for _, name := range names {
		if !s[name] {
			return false
		}
	}
	return true
}

// Combination is a normalized key combination.
type Combination struct {
	// ID is the canonical, order-independent identifier of the key set.
	ID string

	// Size is the number of distinct keys.
	Size int

	// Keys is the key presence set. Owned by this Combination.
	Keys KeySet

	// EventType is the caller-supplied tag, copied verbatim.
	EventType EventType
}

// Sequence describes the shape of a parsed key sequence.
type Sequence struct {
	// Prefix is the space-joined normalized identifiers of every
	// combination except the last. Empty for single-combination sequences.
	Prefix string

	// Size is the total number of combinations, prefix plus terminal.
	Size int
}

// Parsed is the result of parsing a key sequence string.
type Parsed struct {
	Sequence    Sequence
	Combination Combination
}

// Options controls a parse.
type Options struct {
	// EventType is forwarded into the terminal Combination.
	EventType EventType

	// EnsureValidKeys rejects the whole sequence when any standardized
	// key name is unrecognized. When false, unknown keys are accepted
	// under their standardized name.
	EnsureValidKeys bool
}

// Collaborators are the pure functions the parser delegates to. Nil fields
// fall back to the keyname package's defaults.
type Collaborators struct {
	// Standardize returns the canonical name for a raw key token given
	// the shift/alt context of the surrounding combination.
	Standardize func(raw string, shift, alt bool) string

	// Valid reports whether a canonical key name is recognized.
	// Consulted only when Options.EnsureValidKeys is set.
	Valid func(name string) bool

	// NormalizeID returns the order-independent identifier for a key set.
	NormalizeID func(keys []string) string

	// StripWhitespace normalizes whitespace before tokenization.
	StripWhitespace func(s string) string
}

// Package keyname provides the default key-name services consumed by the
// combo parser: standardization of raw key spellings, validity checking,
// order-independent combination identifiers, and whitespace normalization.
//
// Canonical names are display names: "Escape", "Enter", "PageUp", modifier
// names "Ctrl", "Alt", "Shift", "Meta", single characters as themselves
// (letters lowercase unless standardized under shift context), and "+" for
// the literal plus key.
package keyname

import (
	"sort"
	"strings"
	"unicode"
)

// aliases maps lowercase spellings to canonical key names.
var aliases = map[string]string{
	"escape":      "Escape",
	"esc":         "Escape",
	"enter":       "Enter",
	"return":      "Enter",
	"cr":          "Enter",
	"tab":         "Tab",
	"backspace":   "Backspace",
	"bs":          "Backspace",
	"delete":      "Delete",
	"del":         "Delete",
	"insert":      "Insert",
	"ins":         "Insert",
	"home":        "Home",
	"end":         "End",
	"pageup":      "PageUp",
	"pgup":        "PageUp",
	"pagedown":    "PageDown",
	"pgdn":        "PageDown",
	"up":          "Up",
	"down":        "Down",
	"left":        "Left",
	"right":       "Right",
	"space":       "Space",
	"spacebar":    "Space",
	"pause":       "Pause",
	"printscreen": "PrintScreen",
	"scrolllock":  "ScrollLock",
	"numlock":     "NumLock",
	"capslock":    "CapsLock",
	"ctrl":        "Ctrl",
	"control":     "Ctrl",
	"alt":         "Alt",
	"option":      "Alt",
	"opt":         "Alt",
	"shift":       "Shift",
	"meta":        "Meta",
	"cmd":         "Meta",
	"command":     "Meta",
	"win":         "Meta",
	"super":       "Meta",
	"plus":        "+",
	"f1":          "F1",
	"f2":          "F2",
	"f3":          "F3",
	"f4":          "F4",
	"f5":          "F5",
	"f6":          "F6",
	"f7":          "F7",
	"f8":          "F8",
	"f9":          "F9",
	"f10":         "F10",
	"f11":         "F11",
	"f12":         "F12",
}

// canonical is the set of recognized multi-character key names.
var canonical = func() map[string]bool {
	m := make(map[string]bool, len(aliases))
	for _, name := range aliases {
		m[name] = true
	}
	return m
}()

// Standardize returns the canonical name for a raw key token.
//
// The shift and alt flags carry the modifier context of the surrounding
// combination. Under shift context single letters standardize to their
// uppercase form; otherwise letters standardize to lowercase. The default
// table does not vary by alt; the parameter exists for locale-style
// standardizers that substitute characters when Alt is held.
//
// Unrecognized multi-character names are returned lowercased rather than
// rejected; validity is a separate concern (see Valid).
func Standardize(raw string, shift, alt bool) string {
	lower := strings.ToLower(raw)
	if name, ok := aliases[lower]; ok {
		return name
	}

	runes := []rune(raw)
	if len(runes) == 1 {
		r := runes[0]
		if unicode.IsLetter(r) {
			if shift {
				return string(unicode.ToUpper(r))
			}
			return string(unicode.ToLower(r))
		}
		return string(r)
	}

	return lower
}

// Valid reports whether name is a recognized canonical key name.
// Any single printable non-space character is a valid key.
func Valid(name string) bool {
	if canonical[name] {
		return true
	}
	runes := []rune(name)
	return len(runes) == 1 && unicode.IsPrint(runes[0]) && !unicode.IsSpace(runes[0])
}

// NormalizeID returns the canonical identifier for a set of key names.
// The identifier is independent of authoring order: names are sorted
// bytewise and joined with "+". Because "+" sorts before all letters and
// digits, a combination containing the literal plus key always renders it
// first ("++Ctrl"), which keeps identifiers re-parseable.
func NormalizeID(keys []string) string {
	sorted := make([]string, len(keys))
	copy(sorted, keys)
	sort.Strings(sorted)
	return strings.Join(sorted, "+")
}

// SplitID splits a canonical identifier produced by NormalizeID back into
// its key names. It is the inverse of NormalizeID for valid identifiers.
func SplitID(id string) []string {
	if id == "" {
		return nil
	}
	if id == "+" {
		return []string{"+"}
	}
	if strings.HasPrefix(id, "++") {
		rest := strings.Split(id[2:], "+")
		return append([]string{"+"}, rest...)
	}
	return strings.Split(id, "+")
}

// StripWhitespace collapses runs of whitespace to single spaces and trims
// leading and trailing whitespace.
func StripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

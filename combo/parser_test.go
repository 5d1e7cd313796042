package combo

import (
	"errors"
	"strings"
	"testing"
)

func TestParseSequenceOrderIndependence(t *testing.T) {
	perms := []string{"ctrl+a", "a+ctrl"}

	var ids []string
	for _, perm := range perms {
		parsed, err := ParseSequence(perm, Options{})
		if err != nil {
			t.Fatalf("ParseSequence(%q) error = %v", perm, err)
		}
		ids = append(ids, parsed.Combination.ID)
	}

	if ids[0] != ids[1] {
		t.Errorf("order dependence: %q != %q", ids[0], ids[1])
	}
	if ids[0] != "Ctrl+a" {
		t.Errorf("id = %q, want %q", ids[0], "Ctrl+a")
	}
}

func TestParseSequenceSizeInvariants(t *testing.T) {
	tests := []struct {
		in           string
		wantSeqSize  int
		wantKeyCount int
	}{
		{"a", 1, 1},
		{"ctrl+a", 1, 2},
		{"ctrl+a b", 2, 1},
		{"ctrl+k ctrl+c", 2, 2},
		{"a b c d", 4, 1},
		{"ctrl+ctrl+a", 1, 2}, // duplicates collapse
	}

	for _, tt := range tests {
		parsed, err := ParseSequence(tt.in, Options{})
		if err != nil {
			t.Errorf("ParseSequence(%q) error = %v", tt.in, err)
			continue
		}
		if parsed.Sequence.Size != tt.wantSeqSize {
			t.Errorf("ParseSequence(%q) sequence size = %d, want %d",
				tt.in, parsed.Sequence.Size, tt.wantSeqSize)
		}
		if parsed.Combination.Size != tt.wantKeyCount {
			t.Errorf("ParseSequence(%q) combination size = %d, want %d",
				tt.in, parsed.Combination.Size, tt.wantKeyCount)
		}
		if parsed.Combination.Size != len(parsed.Combination.Keys) {
			t.Errorf("ParseSequence(%q) size %d != len(keys) %d",
				tt.in, parsed.Combination.Size, len(parsed.Combination.Keys))
		}
	}
}

func TestParseSequenceSingleCombinationEmptyPrefix(t *testing.T) {
	parsed, err := ParseSequence("ctrl+s", Options{})
	if err != nil {
		t.Fatalf("ParseSequence error = %v", err)
	}
	if parsed.Sequence.Prefix != "" {
		t.Errorf("prefix = %q, want empty", parsed.Sequence.Prefix)
	}
	if parsed.Sequence.Size != 1 {
		t.Errorf("size = %d, want 1", parsed.Sequence.Size)
	}
}

func TestParseSequenceFull(t *testing.T) {
	parsed, err := ParseSequence("ctrl+a b shift+c", Options{EventType: EventDown})
	if err != nil {
		t.Fatalf("ParseSequence error = %v", err)
	}

	if parsed.Sequence.Prefix != "Ctrl+a b" {
		t.Errorf("prefix = %q, want %q", parsed.Sequence.Prefix, "Ctrl+a b")
	}
	if parsed.Sequence.Size != 3 {
		t.Errorf("sequence size = %d, want 3", parsed.Sequence.Size)
	}

	c := parsed.Combination
	if c.Size != 2 {
		t.Errorf("combination size = %d, want 2", c.Size)
	}
	if !c.Keys.Contains("Shift", "C") {
		t.Errorf("combination keys = %v, want Shift and C", c.Keys.Names())
	}
	if c.ID != "C+Shift" {
		t.Errorf("combination id = %q, want %q", c.ID, "C+Shift")
	}
	if c.EventType != EventDown {
		t.Errorf("event type = %v, want %v", c.EventType, EventDown)
	}
}

func TestParseSequenceImplicitShift(t *testing.T) {
	// A bare uppercase letter is shorthand for the shifted key.
	parsed, err := ParseSequence("C", Options{})
	if err != nil {
		t.Fatalf("ParseSequence(\"C\") error = %v", err)
	}
	if parsed.Combination.Size != 2 || !parsed.Combination.Keys.Contains("Shift", "C") {
		t.Errorf("keys = %v, want Shift and C", parsed.Combination.Keys.Names())
	}

	explicit, err := ParseSequence("shift+c", Options{})
	if err != nil {
		t.Fatalf("ParseSequence(\"shift+c\") error = %v", err)
	}
	if parsed.Combination.ID != explicit.Combination.ID {
		t.Errorf("id = %q, want %q", parsed.Combination.ID, explicit.Combination.ID)
	}

	// Lowercase stays a single unshifted key.
	lower, err := ParseSequence("c", Options{})
	if err != nil {
		t.Fatalf("ParseSequence(\"c\") error = %v", err)
	}
	if lower.Combination.Size != 1 || lower.Combination.ID != "c" {
		t.Errorf("lowercase id = %q size = %d, want \"c\" size 1",
			lower.Combination.ID, lower.Combination.Size)
	}
}

func TestParseSequenceEnsureValidKeys(t *testing.T) {
	_, err := ParseSequence("foobar+a", Options{EnsureValidKeys: true})
	if !errors.Is(err, ErrInvalidKey) {
		t.Errorf("error = %v, want ErrInvalidKey", err)
	}

	// A bad key anywhere in the sequence fails the whole parse.
	_, err = ParseSequence("foobar+a b", Options{EnsureValidKeys: true})
	if !errors.Is(err, ErrInvalidKey) {
		t.Errorf("error = %v, want ErrInvalidKey", err)
	}

	// Without validation the unknown key is accepted as standardized.
	parsed, err := ParseSequence("foobar+a", Options{})
	if err != nil {
		t.Fatalf("ParseSequence error = %v", err)
	}
	if !parsed.Combination.Keys.Contains("foobar", "a") {
		t.Errorf("keys = %v, want foobar and a", parsed.Combination.Keys.Names())
	}
}

func TestParseSequencePlusKey(t *testing.T) {
	parsed, err := ParseSequence("+", Options{})
	if err != nil {
		t.Fatalf("ParseSequence(\"+\") error = %v", err)
	}
	if parsed.Combination.Size != 1 || !parsed.Combination.Keys.Contains("+") {
		t.Errorf("keys = %v, want the plus key alone", parsed.Combination.Keys.Names())
	}
	if parsed.Combination.ID != "+" {
		t.Errorf("id = %q, want %q", parsed.Combination.ID, "+")
	}

	parsed, err = ParseSequence("ctrl++", Options{})
	if err != nil {
		t.Fatalf("ParseSequence(\"ctrl++\") error = %v", err)
	}
	if !parsed.Combination.Keys.Contains("Ctrl", "+") {
		t.Errorf("keys = %v, want Ctrl and +", parsed.Combination.Keys.Names())
	}
}

func TestParseSequenceIdempotentIDs(t *testing.T) {
	// Re-parsing a normalized identifier yields the same identifier.
	inputs := []string{"ctrl+a", "shift+c", "a+b", "+", "ctrl++", "alt+shift+p", "C"}

	for _, in := range inputs {
		first, err := ParseSequence(in, Options{})
		if err != nil {
			t.Errorf("ParseSequence(%q) error = %v", in, err)
			continue
		}
		second, err := ParseSequence(first.Combination.ID, Options{})
		if err != nil {
			t.Errorf("ParseSequence(%q) error = %v", first.Combination.ID, err)
			continue
		}
		if second.Combination.ID != first.Combination.ID {
			t.Errorf("id not idempotent for %q: %q -> %q",
				in, first.Combination.ID, second.Combination.ID)
		}
	}
}

func TestParseSequenceWhitespaceRobust(t *testing.T) {
	a, err := ParseSequence("  a+b   c  ", Options{})
	if err != nil {
		t.Fatalf("ParseSequence error = %v", err)
	}
	b, err := ParseSequence("a+b c", Options{})
	if err != nil {
		t.Fatalf("ParseSequence error = %v", err)
	}

	if a.Sequence != b.Sequence || a.Combination.ID != b.Combination.ID {
		t.Errorf("whitespace changed result: %+v vs %+v", a, b)
	}
}

func TestParseSequenceEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n"} {
		parsed, err := ParseSequence(in, Options{})
		if !errors.Is(err, ErrEmpty) {
			t.Errorf("ParseSequence(%q) error = %v, want ErrEmpty", in, err)
		}
		if parsed != nil {
			t.Errorf("ParseSequence(%q) = %+v, want nil on failure", in, parsed)
		}
	}
}

func TestParseSequenceBadCombination(t *testing.T) {
	for _, in := range []string{"a+", "a+ b", "+a"} {
		_, err := ParseSequence(in, Options{})
		if !errors.Is(err, ErrBadCombination) {
			t.Errorf("ParseSequence(%q) error = %v, want ErrBadCombination", in, err)
		}
	}
}

func TestParseCombination(t *testing.T) {
	c, err := defaultParser.ParseCombination(" Shift+C ", Options{EventType: EventUp})
	if err != nil {
		t.Fatalf("ParseCombination error = %v", err)
	}
	if c.ID != "C+Shift" {
		t.Errorf("id = %q, want %q", c.ID, "C+Shift")
	}
	if c.EventType != EventUp {
		t.Errorf("event type = %v, want %v", c.EventType, EventUp)
	}
}

func TestParserCustomCollaborators(t *testing.T) {
	p := NewParser(Collaborators{
		Standardize: func(raw string, shift, alt bool) string {
			return strings.ToUpper(raw)
		},
		Valid: func(name string) bool { return name != "BAD" },
	})

	parsed, err := p.ParseSequence("a+b", Options{EnsureValidKeys: true})
	if err != nil {
		t.Fatalf("ParseSequence error = %v", err)
	}
	if !parsed.Combination.Keys.Contains("A", "B") {
		t.Errorf("keys = %v, want A and B", parsed.Combination.Keys.Names())
	}

	_, err = p.ParseSequence("bad+b", Options{EnsureValidKeys: true})
	if !errors.Is(err, ErrInvalidKey) {
		t.Errorf("error = %v, want ErrInvalidKey", err)
	}
}

func TestMustParseSequence(t *testing.T) {
	parsed := MustParseSequence("ctrl+s", Options{})
	if parsed.Combination.ID != "Ctrl+s" {
		t.Errorf("id = %q, want %q", parsed.Combination.ID, "Ctrl+s")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParseSequence should panic on invalid input")
		}
	}()
	MustParseSequence("a+", Options{})
}

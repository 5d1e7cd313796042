package combo

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dshills/keychord/keyname"
)

// Parser parses key sequence strings. The zero value uses the keyname
// package's default collaborators and is ready to use.
//
// Parsers are stateless between calls and safe for concurrent use.
type Parser struct {
	collab Collaborators
}

// NewParser creates a parser with the given collaborators. Nil collaborator
// fields fall back to the keyname defaults.
func NewParser(collab Collaborators) *Parser {
	return &Parser{collab: collab}
}

var defaultParser = &Parser{}

// ParseSequence parses a key sequence string with the default collaborators.
func ParseSequence(s string, opts Options) (*Parsed, error) {
	return defaultParser.ParseSequence(s, opts)
}

// MustParseSequence parses a sequence and panics on error.
// Use only for known-valid sequences in initialization code.
func MustParseSequence(s string, opts Options) *Parsed {
	parsed, err := ParseSequence(s, opts)
	if err != nil {
		panic("invalid key sequence: " + s + ": " + err.Error())
	}
	return parsed
}

// ParseSequence parses a key sequence string into its normalized form.
//
// The string is whitespace-normalized and split into space-separated
// combination substrings. All but the last become the sequence prefix
// (only their normalized identifiers are kept); the last becomes the
// terminal Combination, tagged with opts.EventType.
//
// Errors are ErrEmpty for empty input, ErrBadCombination for malformed
// "+" grammar, and ErrInvalidKey when opts.EnsureValidKeys is set and a
// key name is unrecognized. There is no partial result: on error the
// returned Parsed is nil.
func (p *Parser) ParseSequence(s string, opts Options) (*Parsed, error) {
	s = p.stripWhitespace(s)
	if s == "" {
		return nil, ErrEmpty
	}

	parts := strings.Split(s, " ")
	nonTerminal, terminal := parts[:len(parts)-1], parts[len(parts)-1]

	prefixIDs := make([]string, 0, len(nonTerminal))
	for _, part := range nonTerminal {
		set, err := p.parseCombination(part, opts)
		if err != nil {
			return nil, err
		}
		prefixIDs = append(prefixIDs, p.normalizeID(set))
	}

	set, err := p.parseCombination(terminal, opts)
	if err != nil {
		return nil, err
	}

	return &Parsed{
		Sequence: Sequence{
			Prefix: strings.Join(prefixIDs, " "),
			Size:   len(parts),
		},
		Combination: Combination{
			ID:        p.normalizeID(set),
			Size:      len(set),
			Keys:      set,
			EventType: opts.EventType,
		},
	}, nil
}

// ParseCombination parses a single combination string into a Combination.
func (p *Parser) ParseCombination(s string, opts Options) (*Combination, error) {
	s = p.stripWhitespace(s)
	set, err := p.parseCombination(s, opts)
	if err != nil {
		return nil, err
	}
	return &Combination{
		ID:        p.normalizeID(set),
		Size:      len(set),
		Keys:      set,
		EventType: opts.EventType,
	}, nil
}

// parseCombination builds the key presence set for one combination string.
// Duplicate tokens standardizing to the same name collapse to one entry.
func (p *Parser) parseCombination(s string, opts Options) (KeySet, error) {
	shift, alt := modContext(s)

	tokens, err := splitCombination(s)
	if err != nil {
		return nil, err
	}

	// A bare uppercase letter token means shift+letter: "C" is shorthand
	// for "shift+c", and the Shift key joins the set.
	implicitShift := false
	if !shift {
		for _, tok := range tokens {
			if runes := []rune(tok); len(runes) == 1 && unicode.IsUpper(runes[0]) {
				shift = true
				implicitShift = true
				break
			}
		}
	}

	set := make(KeySet, len(tokens)+1)
	for _, tok := range tokens {
		name := p.standardize(tok, shift, alt)
		if opts.EnsureValidKeys && !p.valid(name) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidKey, tok)
		}
		set[name] = true
	}
	if implicitShift {
		set[p.standardize("shift", shift, alt)] = true
	}
	return set, nil
}

func (p *Parser) normalizeID(set KeySet) string {
	if p.collab.NormalizeID != nil {
		return p.collab.NormalizeID(set.Names())
	}
	return keyname.NormalizeID(set.Names())
}

func (p *Parser) standardize(raw string, shift, alt bool) string {
	if p.collab.Standardize != nil {
		return p.collab.Standardize(raw, shift, alt)
	}
	return keyname.Standardize(raw, shift, alt)
}

func (p *Parser) valid(name string) bool {
	if p.collab.Valid != nil {
		return p.collab.Valid(name)
	}
	return keyname.Valid(name)
}

func (p *Parser) stripWhitespace(s string) string {
	if p.collab.StripWhitespace != nil {
		return p.collab.StripWhitespace(s)
	}
	return keyname.StripWhitespace(s)
}

package combo

import (
	"fmt"
	"strings"
)

// splitCombination splits a combination string into raw key tokens.
//
// The input must be non-empty with no surrounding whitespace. A "+" at a
// token position denotes the literal plus key and is emitted as the token
// "+"; any other "+" separates tokens. A separator must be followed by a
// token, and a plus-key token must be followed by a separator or the end
// of the string.
func splitCombination(s string) ([]string, error) {
	if s == "" {
		return nil, ErrEmpty
	}

	tokens := make([]string, 0, 4)
	i := 0
	for {
		if i >= len(s) {
			return nil, fmt.Errorf("%w: trailing separator in %q", ErrBadCombination, s)
		}

		if s[i] == '+' {
			tokens = append(tokens, "+")
			i++
		} else {
			end := strings.IndexByte(s[i:], '+')
			if end == -1 {
				tokens = append(tokens, s[i:])
				i = len(s)
			} else {
				tokens = append(tokens, s[i:i+end])
				i += end
			}
		}

		if i == len(s) {
			return tokens, nil
		}
		if s[i] != '+' {
			return nil, fmt.Errorf("%w: missing separator after plus key in %q", ErrBadCombination, s)
		}
		i++
	}
}

// modContext reports whether shift or alt context applies to key-name
// standardization for a combination string. Detection is a case-insensitive
// substring test; "shift"/"alt" need not be whole tokens.
func modContext(s string) (shift, alt bool) {
	lower := strings.ToLower(s)
	return strings.Contains(lower, "shift"), strings.Contains(lower, "alt")
}

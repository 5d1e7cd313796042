// Package combo parses key sequence strings into normalized, order-independent
// descriptions suitable for matching against live keyboard state.
//
// A key combination is a set of keys held together, written as tokens joined
// by "+": "ctrl+s", "shift+alt+p". A key sequence is an ordered list of
// combinations written space-separated: "ctrl+k ctrl+c". All combinations but
// the last are the sequence's prefix; the last is its terminal combination.
//
// # Normalization
//
// Two combinations that name the same keys in different orders normalize to
// the same identifier: "ctrl+a" and "a+ctrl" both produce "Ctrl+a". Key names
// are standardized ("esc" becomes "Escape") with shift/alt context taken into
// account, so "shift+c" contains the key "C". A bare uppercase letter is
// shorthand for the shifted key: "C" parses to the keys {Shift, C}, the same
// as "shift+c".
//
// # The literal plus key
//
// Because "+" is both the separator and a key, a "+" that appears where a key
// token is expected is the plus key itself: at the start of a combination
// ("+", "++a") or immediately after a separator ("ctrl++"). Every other "+"
// is a separator, and a separator must be followed by a token.
//
// # Collaborators
//
// Standardization, validity checking, identifier normalization and whitespace
// stripping are supplied as pure functions. The zero Parser uses the keyname
// package's defaults; substitute Collaborators to change locale behavior.
package combo

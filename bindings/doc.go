// Package bindings maps parsed key shortcuts to handlers and matches live
// keyboard state against them.
//
// A Registry holds bindings keyed by their normalized sequence identifiers.
// Bind parses the shortcut through the combo package at registration time,
// so matching never re-parses strings. A Matcher consumes key events
// expressed as canonical key names (see the keyname and tcellkeys packages)
// and fires handlers on completed matches. Sources that report releases
// drive it with KeyDown/KeyUp, which track the currently pressed key set;
// sources that report only complete presses, like terminal input, drive it
// with Press.
package bindings

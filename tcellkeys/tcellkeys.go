// Package tcellkeys translates tcell key events into canonical key names
// for the bindings matcher.
package tcellkeys

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Names returns the canonical key names held down by a tcell key event:
// modifier names first, then the key itself. Terminals report presses only,
// never releases, so the result feeds bindings.Matcher.Press directly; the
// KeyDown/KeyUp model needs an event source that reports releases.
//
// Letter runes are reported lowercase with an explicit "Shift" name when
// uppercase, matching the combo package's shift-context standardization
// (shift+c parses to the keys {Shift, C}).
func Names(ev *tcell.EventKey) []string {
	names := make([]string, 0, 3)
	seen := make(map[string]bool, 4)
	add := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	mods := ev.Modifiers()
	if mods&tcell.ModCtrl != 0 {
		add("Ctrl")
	}
	if mods&tcell.ModAlt != 0 {
		add("Alt")
	}
	if mods&tcell.ModShift != 0 {
		add("Shift")
	}
	if mods&tcell.ModMeta != 0 {
		add("Meta")
	}

	switch k := ev.Key(); k {
	case tcell.KeyRune:
		r := ev.Rune()
		switch {
		case r == ' ':
			add("Space")
		case unicode.IsUpper(r):
			add("Shift")
			add(string(r))
		case unicode.IsLetter(r) && seen["Shift"]:
			add(string(unicode.ToUpper(r)))
		default:
			add(string(r))
		}
	case tcell.KeyEscape:
		add("Escape")
	case tcell.KeyEnter:
		add("Enter")
	case tcell.KeyTab:
		add("Tab")
	case tcell.KeyBacktab:
		add("Shift")
		add("Tab")
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		add("Backspace")
	case tcell.KeyDelete:
		add("Delete")
	case tcell.KeyInsert:
		add("Insert")
	case tcell.KeyHome:
		add("Home")
	case tcell.KeyEnd:
		add("End")
	case tcell.KeyPgUp:
		add("PageUp")
	case tcell.KeyPgDn:
		add("PageDown")
	case tcell.KeyUp:
		add("Up")
	case tcell.KeyDown:
		add("Down")
	case tcell.KeyLeft:
		add("Left")
	case tcell.KeyRight:
		add("Right")
	case tcell.KeyF1:
		add("F1")
	case tcell.KeyF2:
		add("F2")
	case tcell.KeyF3:
		add("F3")
	case tcell.KeyF4:
		add("F4")
	case tcell.KeyF5:
		add("F5")
	case tcell.KeyF6:
		add("F6")
	case tcell.KeyF7:
		add("F7")
	case tcell.KeyF8:
		add("F8")
	case tcell.KeyF9:
		add("F9")
	case tcell.KeyF10:
		add("F10")
	case tcell.KeyF11:
		add("F11")
	case tcell.KeyF12:
		add("F12")
	default:
		// Control characters arrive as KeyCtrlA..KeyCtrlZ; report the
		// letter with Ctrl even when the modifier bit is absent.
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			add("Ctrl")
			add(string(rune('a' + k - tcell.KeyCtrlA)))
		}
	}

	return names
}

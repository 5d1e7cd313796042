// Package loader reads shortcut binding files and feeds them into a
// bindings.Registry. Files are TOML; a Watcher reloads them on change.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/keychord/bindings"
	"github.com/dshills/keychord/combo"
)

// fileConfig is the TOML structure of a bindings file.
//
//	[[binding]]
//	keys = "ctrl+k ctrl+c"
//	action = "comment.add"
//	event = "down"
//	description = "Comment selection"
//	strict = true
type fileConfig struct {
	Bindings []bindingConfig `toml:"binding"`
}

type bindingConfig struct {
	Keys        string `toml:"keys"`
	Action      string `toml:"action"`
	Event       string `toml:"event,omitempty"`
	Description string `toml:"description,omitempty"`
	Strict      bool   `toml:"strict,omitempty"`
}

// LoadFile loads bindings from a TOML file.
func LoadFile(path string) ([]bindings.Binding, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening bindings file: %w", err)
	}
	defer f.Close()

	bs, err := LoadReader(f)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return bs, nil
}

// LoadReader loads bindings from TOML content.
func LoadReader(r io.Reader) ([]bindings.Binding, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading bindings: %w", err)
	}

	var config fileConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("decoding bindings: %w", err)
	}

	out := make([]bindings.Binding, 0, len(config.Bindings))
	for i, bc := range config.Bindings {
		if bc.Keys == "" {
			return nil, fmt.Errorf("binding %d: empty keys", i)
		}

		et, err := eventType(bc.Event)
		if err != nil {
			return nil, fmt.Errorf("binding %d (%s): %w", i, bc.Keys, err)
		}

		out = append(out, bindings.Binding{
			Keys:        bc.Keys,
			Action:      bc.Action,
			Description: bc.Description,
			EventType:   et,
			Strict:      bc.Strict,
		})
	}
	return out, nil
}

// eventType maps the file's event field to a combo.EventType.
// Empty means key down.
func eventType(s string) (combo.EventType, error) {
	switch s {
	case "", "down":
		return combo.EventDown, nil
	case "up":
		return combo.EventUp, nil
	default:
		return 0, fmt.Errorf("unknown event type %q", s)
	}
}

// Resolver maps an action name to its handler.
type Resolver func(action string) bindings.Handler

// LoadAndBind loads a bindings file and registers every binding, resolving
// handlers by action name. An action the resolver does not know is an error.
func LoadAndBind(path string, reg *bindings.Registry, resolve Resolver) error {
	bs, err := LoadFile(path)
	if err != nil {
		return err
	}

	for _, b := range bs {
		h := resolve(b.Action)
		if h == nil {
			return fmt.Errorf("binding %q: no handler for action %q", b.Keys, b.Action)
		}
		if _, err := reg.Bind(b, h); err != nil {
			return err
		}
	}
	return nil
}

// ParseError reports a failure loading a specific bindings file.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

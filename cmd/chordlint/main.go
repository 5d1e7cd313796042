// Package main is the entry point for chordlint, a shortcut-file checker.
//
// chordlint loads one or more TOML bindings files, parses every shortcut,
// and prints its normalized form. Malformed shortcuts, and unrecognized key
// names under -strict, are reported and make the exit status nonzero.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/keychord/combo"
	"github.com/dshills/keychord/loader"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	strict := flag.Bool("strict", false, "reject unrecognized key names")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("chordlint %s\n", version)
		return 0
	}

	files := flag.Args()
	if len(files) == 0 {
		usage()
		return 2
	}

	failed := false
	for _, path := range files {
		if err := lintFile(path, *strict); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			failed = true
		}
	}
	if failed {
		return 1
	}
	return 0
}

// lintFile checks every binding in a file, printing normalized forms.
func lintFile(path string, strict bool) error {
	bs, err := loader.LoadFile(path)
	if err != nil {
		return err
	}

	var bad int
	for _, b := range bs {
		parsed, err := combo.ParseSequence(b.Keys, combo.Options{
			EventType:       b.EventType,
			EnsureValidKeys: strict || b.Strict,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %q: %v\n", path, b.Keys, err)
			bad++
			continue
		}

		if parsed.Sequence.Prefix != "" {
			fmt.Printf("%s: %q -> %s %s\n", path, b.Keys, parsed.Sequence.Prefix, parsed.Combination.ID)
		} else {
			fmt.Printf("%s: %q -> %s\n", path, b.Keys, parsed.Combination.ID)
		}
	}

	if bad > 0 {
		return fmt.Errorf("%s: %d invalid binding(s)", path, bad)
	}
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: chordlint [options] file.toml...

Checks shortcut bindings files and prints normalized key identifiers.

Options:
`)
	flag.PrintDefaults()
}

/*
Package loader reads grammar tables from files.

Two formats are supported. The plain format is a stream of whitespace
separated items, in the order an operator would type them in:

    2                        number of productions
    S->(S) S->a              productions, "A->@" for epsilon productions
    4  ( ) a #               number of terminals, terminals (including '#')
    1  S                     number of non-terminals, non-terminals
    5                        last state number (states start at 0)
    1 -1 4 -1 -1 -1          GOTO table, one number per state and non-terminal
    S2 E-1 S3 E-1 …          ACTION table, per state and terminal: S|R|A|E and operand

Kind and operand of an ACTION cell may be written together ("S2") or apart
("S 2"). -1 is the "no transition" entry for GOTO cells.

The TOML format describes the same information with named keys, see ReadTOML.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/lrtab/table"
)

// tracer traces with key 'lrtab.loader'.
func tracer() tracing.Trace {
	return tracing.Select("lrtab.loader")
}

// LoadFile loads a grammar table from a file. Files with extension ".toml"
// are read with ReadTOML, all others with ReadPlain.
func LoadFile(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var t *table.Table
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		t, err = ReadTOML(f)
	} else {
		t, err = ReadPlain(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if t.Name == "" {
		t.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	tracer().Infof("loaded table %s from %s", t.Name, path)
	return t, nil
}

// singleChar checks that a word is a single character.
func singleChar(word, what string) (rune, error) {
	r := []rune(word)
	if len(r) != 1 {
		return 0, fmt.Errorf("%s %q is not a single character", what, word)
	}
	return r[0], nil
}

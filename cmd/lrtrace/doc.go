/*
Command lrtrace loads an LR grammar table and analyzes input strings with it,
printing a step-by-step trace of the shift-reduce parse.

    lrtrace --table parens.toml "(a)" "((a))"
    lrtrace -t parens.txt                      # interactive mode

In interactive mode every line is analyzed as an input string. ":table"
prints information about the loaded table, ":q" quits.

Exit codes are 0 if all inputs are accepted, 1 if an input is rejected,
2 for a defect of the table and 3 for usage errors or unreadable tables.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lrtab.cli'
func tracer() tracing.Trace {
	return tracing.Select("lrtab.cli")
}

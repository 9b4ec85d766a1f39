package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/lrtab/engine"
	"github.com/npillmayer/lrtab/scanner"
	"github.com/npillmayer/lrtab/sink"
	"github.com/npillmayer/lrtab/table"
)

// analyzer runs input strings against a table and keeps the worst outcome
// for the exit code.
type analyzer struct {
	table   *table.Table
	scanner *scanner.AlphabetScanner
	parser  *engine.Parser
	plain   bool
	out     io.Writer
	worst   int
}

// Analyze classifies input, runs the parser and prints the trace and verdict.
func (a *analyzer) Analyze(input string) engine.Result {
	tracer().Infof("Input is %q", input)
	syms, err := a.scanner.Terminals(input)
	if err != nil {
		pterm.Error.Println(err.Error())
		a.note(exitRejected)
		return engine.Result{Verdict: engine.Rejected, Err: err}
	}
	tokens := engine.WithEndMarker(syms, a.table)
	var res engine.Result
	if a.plain {
		text := sink.NewText(a.out)
		res = a.parser.Run(tokens, text)
		text.Verdict(res)
		if err := text.Err(); err != nil {
			tracer().Errorf("writing trace: %v", err)
		}
	} else {
		pt := sink.NewPTerm()
		res = a.parser.Run(tokens, pt)
		pt.Render(res)
	}
	switch res.Verdict {
	case engine.Accepted:
		a.note(exitAccepted)
	case engine.Rejected:
		a.note(exitRejected)
	default:
		a.note(exitDefect)
	}
	return res
}

func (a *analyzer) note(code int) {
	if code > a.worst {
		a.worst = code
	}
}

func (a *analyzer) exitCode() int {
	return a.worst
}

// REPL starts interactive mode.
func (a *analyzer) REPL() error {
	repl, err := readline.New("lrtrace> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	pterm.Info.Println(fmt.Sprintf("Table %s loaded, quit with :q or <ctrl>D", a.table.Name))
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := a.command(line); quit {
			break
		}
	}
	println("Good bye!")
	return nil
}

// command executes a REPL command or analyzes the line as input.
func (a *analyzer) command(line string) bool {
	switch line {
	case ":q", ":quit":
		return true
	case ":table":
		a.describe()
	default:
		a.Analyze(line)
	}
	return false
}

func (a *analyzer) describe() {
	fp, err := a.table.Fingerprint()
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	alpha := a.table.Alphabet()
	pterm.Info.Println(fmt.Sprintf("table %s: %s, %d productions, states 0…%d",
		a.table.Name, alpha, a.table.ProductionCount(), a.table.MaxState()))
	pterm.Info.Println("fingerprint " + fp)
}

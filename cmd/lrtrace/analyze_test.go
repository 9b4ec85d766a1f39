package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/lrtab/engine"
	"github.com/npillmayer/lrtab/internal/fixtures"
	"github.com/npillmayer/lrtab/scanner"
	"github.com/npillmayer/lrtab/table"
)

func newAnalyzer(t *testing.T, tab *table.Table, out *bytes.Buffer) *analyzer {
	sc, err := scanner.NewAlphabetScanner(tab.Alphabet())
	if err != nil {
		t.Fatal(err)
	}
	return &analyzer{
		table:   tab,
		scanner: sc,
		parser:  engine.New(tab),
		plain:   true,
		out:     out,
	}
}

func TestAnalyzeExitCodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrtab.cli")
	defer teardown()
	//
	out := &bytes.Buffer{}
	a := newAnalyzer(t, fixtures.Parens(), out)
	res := a.Analyze("((a))")
	assert.True(t, res.Accepted())
	assert.Equal(t, exitAccepted, a.exitCode())
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out.String()), "grammar accepts the input"))
	a.Analyze("(a")
	assert.Equal(t, exitRejected, a.exitCode())
	a.Analyze("a")
	assert.Equal(t, exitRejected, a.exitCode(), "exit code keeps the worst outcome")
	a.Analyze("(x)")
	assert.Equal(t, exitRejected, a.exitCode())
	//
	b := newAnalyzer(t, fixtures.BrokenParens(), out)
	res = b.Analyze("(a)")
	assert.Equal(t, engine.Fatal, res.Verdict)
	assert.Equal(t, exitDefect, b.exitCode())
}

func TestCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrtab.cli")
	defer teardown()
	//
	out := &bytes.Buffer{}
	a := newAnalyzer(t, fixtures.Parens(), out)
	assert.True(t, a.command(":q"))
	assert.False(t, a.command(":table"))
	assert.False(t, a.command("a"))
	assert.Contains(t, out.String(), "grammar accepts the input")
}

package sink

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/lrtab/engine"
	"github.com/npillmayer/lrtab/internal/fixtures"
)

func TestStateStack(t *testing.T) {
	assert.Equal(t, "0", StateStack([]int{0}))
	assert.Equal(t, "024", StateStack([]int{0, 2, 4}))
	assert.Equal(t, "0(10)3(123)", StateStack([]int{0, 10, 3, 123}))
	assert.Equal(t, "", StateStack(nil))
}

func TestTextTrace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrtab.engine")
	defer teardown()
	//
	tab := fixtures.Parens()
	var buf bytes.Buffer
	text := NewText(&buf)
	rec := &Recorder{}
	res := engine.New(tab).Run(fixtures.Input(tab, "(a)#"), Tee(text, rec, Tracer(), nil))
	text.Verdict(res)
	if text.Err() != nil {
		t.Fatal(text.Err())
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	t.Logf("\n%s", buf.String())
	// header + 6 steps + verdict
	if len(lines) != 8 {
		t.Fatalf("expected 8 lines of output, have %d", len(lines))
	}
	assert.True(t, strings.HasPrefix(lines[0], "Step"))
	fields := strings.Fields(lines[4])
	assert.Equal(t, []string{"4", "024", "#(S", "S->a", ")#"}, fields)
	fields = strings.Fields(lines[1])
	assert.Equal(t, []string{"1", "0", "#", "(a)#"}, fields)
	assert.Equal(t, "(a)#", lines[1][4*DefaultColumnWidth:], "input column starts after 4 columns")
	assert.Equal(t, "grammar accepts the input", lines[7])
	assert.Equal(t, 6, len(rec.Records()))
	rec.Reset()
	assert.Equal(t, 0, len(rec.Records()))
}

func TestVerdicts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrtab.engine")
	defer teardown()
	//
	tab := fixtures.Trivial()
	res := engine.New(tab).Run(fixtures.Input(tab, "b#"), nil)
	assert.Equal(t, `grammar rejects the input: no action for state 0 and terminal 'b'`, Verdict(res))
	res = engine.New(tab).Run(fixtures.Input(tab, "a"), nil)
	assert.Equal(t, "grammar rejects the input: input exhausted in state 1", Verdict(res))
	broken := fixtures.BrokenParens()
	res = engine.New(broken).Run(fixtures.Input(broken, "(a)#"), nil)
	msg := Verdict(res)
	assert.True(t, strings.HasPrefix(msg, "table defect: GOTO(2, S) undefined"), msg)
	assert.True(t, errors.Is(res.Err, engine.ErrGotoUndefined))
}

func TestPTermRows(t *testing.T) {
	tab := fixtures.Epsilon()
	p := NewPTerm()
	engine.New(tab).Run(fixtures.Input(tab, "a#"), p)
	data := p.Data()
	if len(data) != 5 {
		t.Fatalf("expected header and 4 rows, have %d", len(data))
	}
	assert.Equal(t, []string{"2", "02", "#A", "A->@", "a#"}, data[2])
	p.Reset()
	assert.Equal(t, 1, len(p.Data()))
}

func TestRecorderReset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrtab.engine")
	defer teardown()
	//
	tab := fixtures.Parens()
	p := engine.New(tab)
	rec := &Recorder{}
	p.Run(fixtures.Input(tab, "((a))#"), rec)
	first := rec.Records()
	n := len(first)
	rec.Reset()
	assert.Empty(t, rec.Records())
	p.Run(fixtures.Input(tab, "a#"), rec)
	assert.Equal(t, n, len(first))
	assert.Equal(t, "((a))#", Symbols(first[0].Remaining))
	assert.Equal(t, "a#", Symbols(rec.Records()[0].Remaining))
}

package loader

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/lrtab/internal/fixtures"
	"github.com/npillmayer/lrtab/table"
)

func fingerprint(t *testing.T, tab *table.Table) string {
	fp, err := tab.Fingerprint()
	if err != nil {
		t.Fatal(err)
	}
	return fp
}

func TestLoadPlain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrtab.loader")
	defer teardown()
	//
	tab, err := LoadFile("testdata/parens.txt")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "parens", tab.Name)
	assert.Equal(t, 5, tab.MaxState())
	assert.Equal(t, 2, tab.ProductionCount())
	assert.Equal(t, fingerprint(t, fixtures.Parens()), fingerprint(t, tab))
}

func TestLoadTOML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrtab.loader")
	defer teardown()
	//
	tab, err := LoadFile("testdata/parens.toml")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, fingerprint(t, fixtures.Parens()), fingerprint(t, tab))
	tab, err = LoadFile("testdata/epsilon.toml")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, fingerprint(t, fixtures.Epsilon()), fingerprint(t, tab))
	p, _ := tab.Production(2)
	assert.True(t, p.Epsilon)
}

func TestPlainTruncated(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrtab.loader")
	defer teardown()
	//
	inputs := []string{
		"",
		"2 S->(S)",
		"1 S->a 2 a # 1 S 1 1 -1 S1 E-1",
		"1 S->a 2 a # 1 S 1 1 -1 S1 E-1 E-1 A", // operand of accept missing
	}
	for _, input := range inputs {
		_, err := ReadPlain(strings.NewReader(input))
		assert.True(t, errors.Is(err, io.ErrUnexpectedEOF), "input %q: error is %v", input, err)
	}
}

func TestPlainMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrtab.loader")
	defer teardown()
	//
	inputs := []string{
		"x",
		"1 S->a 2 ab # 1 S 1",
		"1 S->a 2 a # 1 S 1 1 -1 X1 E-1 E-1 A-1",
		"1 S->a 2 a # 1 S 1 1 -1 Sx E-1 E-1 A-1",
		"1 S->a 2 a # 1 S 1 1 -1 R0 E-1 E-1 A-1",
		"1 S->a 2 a # 1 S -1",
	}
	for _, input := range inputs {
		_, err := ReadPlain(strings.NewReader(input))
		assert.True(t, errors.Is(err, table.ErrMalformed), "input %q: error is %v", input, err)
	}
}

func TestPlainOutOfRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrtab.loader")
	defer teardown()
	//
	// shift to state 7 with only states 0 and 1
	input := "1 S->a 2 a # 1 S 1 1 -1 S7 E-1 E-1 A-1"
	_, err := ReadPlain(strings.NewReader(input))
	assert.Error(t, err)
	var berr *table.BuildError
	assert.True(t, errors.As(err, &berr), "expected a build error, is %v", err)
}

func TestTOMLErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrtab.loader")
	defer teardown()
	//
	base := `
terminals    = ["a", "#"]
nonterminals = ["S"]
productions  = ["S->a"]
`
	inputs := map[string]string{
		"missing states":  base + `action = ["S1 E", "E A"]`,
		"unknown key":     base + "states = 1\ncolor = \"red\"\naction = [\"S1 E\", \"E A\"]",
		"row count":       base + `states = 1` + "\n" + `action = ["S1 E"]`,
		"cell count":      base + `states = 1` + "\n" + `action = ["S1", "E A"]`,
		"bad cell":        base + `states = 1` + "\n" + `action = ["Sx E", "E A"]`,
		"goto cell count": base + `states = 1` + "\n" + `action = ["S1 E", "E A"]` + "\ngoto = [[1, 1]]",
		"long terminal":   `terminals = ["ab"]`,
		"syntax":          `terminals = [`,
	}
	for name, input := range inputs {
		_, err := ReadTOML(strings.NewReader(input))
		assert.True(t, errors.Is(err, table.ErrMalformed), "%s: error is %v", name, err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrtab.loader")
	defer teardown()
	//
	_, err := LoadFile("testdata/no-such-table.toml")
	assert.Error(t, err)
}

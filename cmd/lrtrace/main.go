package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	flag "github.com/spf13/pflag"

	"github.com/npillmayer/lrtab/engine"
	"github.com/npillmayer/lrtab/loader"
	"github.com/npillmayer/lrtab/scanner"
	"github.com/npillmayer/lrtab/table"
)

// Exit codes
const (
	exitAccepted = 0
	exitRejected = 1
	exitDefect   = 2
	exitUsage    = 3
)

var traceKeys = []string{"lrtab.cli", "lrtab.table", "lrtab.engine", "lrtab.loader", "lrtab.scanner"}

func main() {
	initDisplay()
	initTracing()
	tablefile := flag.StringP("table", "t", "", "grammar table file (.toml or plain)")
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	limit := flag.Int("limit", 0, "maximum number of parser steps per input (0 = no limit)")
	htmldir := flag.String("html", "", "export ACTION and GOTO tables as HTML to this directory")
	plain := flag.Bool("plain", false, "print traces as plain text")
	panicky := flag.Bool("panic", false, "panic on table defects (post-mortem debugging)")
	flag.Parse()
	setTraceLevel(*tlevel)
	if *tablefile == "" {
		pterm.Error.Println("no table file given, use --table")
		flag.Usage()
		os.Exit(exitUsage)
	}
	tab, err := loader.LoadFile(*tablefile)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(exitUsage)
	}
	tab.Dump() // only visible in debug mode
	if *htmldir != "" {
		if err := exportHTML(tab, *htmldir); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(exitUsage)
		}
	}
	sc, err := scanner.NewAlphabetScanner(tab.Alphabet())
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(exitUsage)
	}
	a := &analyzer{
		table:   tab,
		scanner: sc,
		parser:  engine.New(tab, engine.StepLimit(*limit), engine.PanicOnDefect(*panicky)),
		plain:   *plain,
		out:     os.Stdout,
	}
	if flag.NArg() == 0 {
		if err := a.REPL(); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(exitUsage)
		}
		os.Exit(a.exitCode())
	}
	for _, input := range flag.Args() {
		a.Analyze(input)
	}
	os.Exit(a.exitCode())
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// initTracing routes all tracing keys of this module to Go's log package.
func initTracing() {
	gtrace.SyntaxTracer = gologadapter.New()
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.New))
}

func setTraceLevel(l string) {
	level := tracing.TraceLevelFromString(l)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	tracer().Infof("Trace level is %s", l)
}

func exportHTML(tab *table.Table, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for name, export := range map[string]func(*os.File) error{
		"action.html": func(f *os.File) error { return tab.ActionTableAsHTML(f) },
		"goto.html":   func(f *os.File) error { return tab.GotoTableAsHTML(f) },
	} {
		path := filepath.Join(dir, name)
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		err = export(f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("exporting %s: %w", path, err)
		}
		tracer().Infof("exported %s", path)
	}
	return nil
}

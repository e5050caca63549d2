/*
Command rtlfix rewrites right-to-left text in XML translation files for
renderers without bidi and shaping support.

Usage:

	rtlfix [flags] <file|directory>
	rtlfix -i

Every file with extension ".xml" below the given directory is parsed; if
it contains one of the marker elements (LanguageInfo, LanguageData), the
text of every leaf element is processed and the file is written back in
place.

Configuration is read from NestedText files, located at
~/.config/rtlfix/config.nt (or ~/.rtlfix.nt) and from the file given by
flag -config. Flags override configuration values.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/knadh/koanf/providers/file"
	"github.com/npillmayer/rtlfix"
	"github.com/npillmayer/rtlfix/batch"
	"github.com/npillmayer/rtlfix/shaping"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'rtlfix'
func tracer() tracing.Trace {
	return tracing.Select("rtlfix")
}

// Exit codes
const (
	exitOK = iota
	exitUsage
	exitFailures
)

// tracer keys which are configured by flag -trace
var traceKeys = []string{
	"rtlfix",
	"rtlfix.placeholder",
	"rtlfix.reverse",
	"rtlfix.shaping",
	"rtlfix.xmltree",
	"rtlfix.batch",
}

// configuration defaults, used for keys not set in any configuration file
var defaults = map[string]interface{}{
	"trace.root":       "Error",
	batch.KeyExtension: ".xml",
	batch.KeyMarkers:   "LanguageInfo,LanguageData",
	batch.KeyMode:      "full",
	batch.KeyWorkers:   4,
	batch.KeyDryRun:    false,
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "", "Trace level [Debug|Info|Error]")
	cfgfile := flag.String("config", "", "NestedText configuration file")
	mode := flag.String("mode", "", "Processing mode [full|reverse|shape]")
	markers := flag.String("markers", "", "Comma-separated list of marker elements")
	ext := flag.String("ext", "", "Extension of candidate files")
	workers := flag.Int("workers", 0, "Number of files processed in parallel")
	dryrun := flag.Bool("n", false, "Dry run: do not write files")
	interactive := flag.Bool("i", false, "Interactive mode")
	showGaps := flag.Bool("gaps", false, "List letters missing from the shaping table")
	flag.Usage = usage
	flag.Parse()

	// set up configuration
	conf, err := loadConfiguration(*cfgfile)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(exitUsage)
	}
	setFlags(conf, map[string]string{
		batch.KeyMode:      *mode,
		batch.KeyMarkers:   *markers,
		batch.KeyExtension: *ext,
	})
	if *workers > 0 {
		conf.Set(batch.KeyWorkers, *workers)
	}
	if *dryrun {
		conf.Set(batch.KeyDryRun, true)
	}

	// set up logging
	if err := setupTracing(conf, *tlevel); err != nil {
		pterm.Error.Println(err)
		os.Exit(exitUsage)
	}
	cfg := batch.ConfigFrom(conf)
	if _, err := rtlfix.ParseMode(conf.GetString(batch.KeyMode)); err != nil {
		pterm.Error.Println(err)
		os.Exit(exitUsage)
	}
	gaps := shaping.NewGaps()
	proc := rtlfix.NewProcessor(rtlfix.WithMode(cfg.Mode), rtlfix.WithGaps(gaps))

	if *interactive {
		repl, err := readline.New("rtl > ")
		if err != nil {
			tracer().Errorf("%v", err)
			os.Exit(exitUsage)
		}
		intp := &Intp{repl: repl, proc: proc, gaps: gaps}
		pterm.Info.Println("Welcome to rtlfix")
		pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
		intp.REPL()
		return
	}

	if flag.NArg() != 1 {
		usage()
		os.Exit(exitUsage)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	results, err := batch.ProcessTree(ctx, flag.Arg(0), cfg, proc)
	printResults(results, cfg)
	if *showGaps || gaps.Len() > 0 {
		printGaps(gaps)
	}
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(exitUsage)
	}
	if batch.Summarize(results).Failed > 0 {
		os.Exit(exitFailures)
	}
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: rtlfix [flags] <file|directory>\n       rtlfix -i\n\nFlags:\n")
	flag.PrintDefaults()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// loadConfiguration loads the configuration from the default locations and,
// if path is not empty, from file path.
func loadConfiguration(path string) (*koanfadapter.KConf, error) {
	conf := koanfadapter.New(nil, "rtlfix", []string{"nt"})
	conf.InitDefaults()
	for key, value := range defaults {
		if !conf.IsSet(key) {
			conf.Set(key, value)
		}
	}
	if path != "" {
		if err := conf.Koanf().Load(file.Provider(path), koanfadapter.Parser()); err != nil {
			return nil, fmt.Errorf("cannot load configuration %s: %w", path, err)
		}
	}
	return conf, nil
}

// setFlags overrides configuration values with non-empty flag values.
func setFlags(conf *koanfadapter.KConf, flags map[string]string) {
	for key, value := range flags {
		if value = strings.TrimSpace(value); value != "" {
			conf.Set(key, value)
		}
	}
}

// setupTracing configures the root tracer from conf. If level is not
// empty, all tracers of this application are set to level.
func setupTracing(conf *koanfadapter.KConf, level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if level != "" {
		switch strings.ToLower(level) {
		case "debug", "info", "error":
		default:
			return fmt.Errorf("invalid trace level: %s", level)
		}
		for _, key := range traceKeys {
			conf.Set("trace."+key, level)
		}
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("error configuring tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Infof("trace level is %s", strconv.Quote(level))
	return nil
}

/*
Package batch applies RTL processing to translation files.

A candidate file is a file with a configured extension (".xml" by default)
whose document contains at least one of a set of marker elements
("LanguageInfo" or "LanguageData" by default). Every leaf element of such
a document gets its text processed, and the document is written back in
place.

Files are independent units of work: a file which cannot be read, parsed
or written is reported in its Result, and processing continues with the
next file.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package batch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/npillmayer/rtlfix"
	"github.com/npillmayer/rtlfix/xmltree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rtlfix.batch'.
func tracer() tracing.Trace {
	return tracing.Select("rtlfix.batch")
}

// ErrNotXML flags a file without the configured extension.
// ErrNoMarkers flags a document without any of the marker elements.
var (
	ErrNotXML    = errors.New("not a candidate file")
	ErrNoMarkers = errors.New("no marker element found")
)

// Status is the outcome of processing a file.
type Status int8

// Outcomes
const (
	Processed Status = iota // processed and written (unless in dry-run mode)
	Skipped                 // not a candidate file
	Failed                  // an error occurred
)

func (s Status) String() string {
	switch s {
	case Processed:
		return "processed"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("Status(%d)", int8(s))
}

// Result reports the outcome of processing a file.
type Result struct {
	Path    string
	Status  Status
	Leaves  int   // number of leaf elements with text
	Changed int   // number of leaf texts changed
	Written bool  // file has been written back
	Err     error // reason for Skipped or Failed
}

func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s: %s: %v", r.Path, r.Status, r.Err)
	}
	return fmt.Sprintf("%s: %s, %d/%d leaves changed", r.Path, r.Status, r.Changed, r.Leaves)
}

// ProcessFile processes a single file. If proc is nil, a processor for
// cfg.Mode is used.
func ProcessFile(path string, cfg Config, proc *rtlfix.Processor) Result {
	res := Result{Path: path}
	if proc == nil {
		proc = rtlfix.NewProcessor(rtlfix.WithMode(cfg.Mode))
	}
	if !cfg.Accepts(path) {
		res.Status, res.Err = Skipped, ErrNotXML
		return res
	}
	doc, err := parseFile(path)
	if err != nil {
		tracer().Errorf("failed to parse %s: %v", path, err)
		res.Status, res.Err = Failed, err
		return res
	}
	if !doc.HasAny(cfg.Markers...) {
		tracer().Infof("no marker element in %s; skipping", path)
		res.Status, res.Err = Skipped, ErrNoMarkers
		return res
	}
	for _, leaf := range doc.Leaves() {
		text := leaf.Text()
		if text == "" {
			continue
		}
		res.Leaves++
		if out := proc.Process(text); out != text {
			leaf.SetText(out)
			res.Changed++
		}
	}
	res.Status = Processed
	if cfg.DryRun {
		tracer().Infof("%s: %d of %d leaves would change", path, res.Changed, res.Leaves)
		return res
	}
	if err := writeFile(path, doc); err != nil {
		tracer().Errorf("failed to write %s: %v", path, err)
		res.Status, res.Err = Failed, err
		return res
	}
	res.Written = true
	tracer().Infof("%s: %d of %d leaves changed", path, res.Changed, res.Leaves)
	return res
}

func parseFile(path string) (*xmltree.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := xmltree.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// writeFile replaces path with the serialized document. The document is
// written to a temporary file first, which is then renamed.
func writeFile(path string, doc *xmltree.Document) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // no-op after successful rename
	if _, err = doc.WriteTo(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), info.Mode().Perm()); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Collect returns the candidate files below root, judging from their
// extension, in lexical order. If root is a file, it is returned as the
// only candidate, regardless of its extension.
func Collect(root string, cfg Config) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}
	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && cfg.Accepts(path) {
			paths = append(paths, path)
		}
		return nil
	})
	return paths, err
}

// ProcessTree processes root, which is either a file or a directory. For
// directories, every candidate file below root is processed, with up to
// cfg.Workers files in parallel.
//
// Results are ordered by path. Failures of single files are reported in
// their results only. The returned error is non-nil if root cannot be
// walked or if ctx is cancelled; in the latter case the results of files
// processed so far are returned.
func ProcessTree(ctx context.Context, root string, cfg Config, proc *rtlfix.Processor) ([]Result, error) {
	paths, err := Collect(root, cfg)
	if err != nil {
		return nil, fmt.Errorf("cannot walk %s: %w", root, err)
	}
	if proc == nil {
		proc = rtlfix.NewProcessor(rtlfix.WithMode(cfg.Mode))
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > len(paths) {
		workers = len(paths)
	}
	tracer().Debugf("%d candidate file(s) below %s, %d worker(s)", len(paths), root, workers)
	jobs := make(chan string)
	results := make(chan Result, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for path := range jobs {
				results <- ProcessFile(path, cfg, proc)
			}
		}()
	}
	go func() {
		defer close(jobs)
		for _, path := range paths {
			select {
			case jobs <- path:
			case <-ctx.Done():
				return
			}
		}
	}()
	go func() {
		wg.Wait()
		close(results)
	}()
	collected := make([]Result, 0, len(paths))
	for r := range results {
		collected = append(collected, r)
	}
	sort.Slice(collected, func(i, j int) bool {
		return collected[i].Path < collected[j].Path
	})
	return collected, ctx.Err()
}

// Summary counts results by status.
type Summary struct {
	Processed, Skipped, Failed int
	Changed                    int // number of leaf texts changed
}

// Summarize counts results by status.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		switch r.Status {
		case Processed:
			s.Processed++
			s.Changed += r.Changed
		case Skipped:
			s.Skipped++
		case Failed:
			s.Failed++
		}
	}
	return s
}

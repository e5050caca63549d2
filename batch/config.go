package batch

import (
	"strings"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/rtlfix"
	"github.com/npillmayer/schuko"
)

// Configuration keys
const (
	KeyExtension = "rtlfix.extension"
	KeyMarkers   = "rtlfix.markers"
	KeyMode      = "rtlfix.mode"
	KeyWorkers   = "rtlfix.workers"
	KeyDryRun    = "rtlfix.dryrun"
)

// Config controls which files are processed and how.
type Config struct {
	Extension string      // file extension of candidate files, including the dot
	Markers   []string    // a document must contain one of these elements
	Mode      rtlfix.Mode // processing mode for leaf texts
	Workers   int         // number of files processed concurrently
	DryRun    bool        // do not write files back
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Extension: ".xml",
		Markers:   []string{"LanguageInfo", "LanguageData"},
		Mode:      rtlfix.ModeFull,
		Workers:   4,
	}
}

// ConfigFrom reads a configuration from conf. Keys not set in conf keep
// their default value. Invalid values are reported and replaced by their
// defaults.
func ConfigFrom(conf schuko.Configuration) Config {
	cfg := DefaultConfig()
	if conf == nil {
		return cfg
	}
	if conf.IsSet(KeyExtension) {
		if ext := strings.TrimSpace(conf.GetString(KeyExtension)); ext != "" {
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			cfg.Extension = ext
		}
	}
	if conf.IsSet(KeyMarkers) {
		if m := ParseMarkers(conf.GetString(KeyMarkers)); len(m) > 0 {
			cfg.Markers = m
		}
	}
	if conf.IsSet(KeyMode) {
		mode, err := rtlfix.ParseMode(conf.GetString(KeyMode))
		if err != nil {
			tracer().Errorf("config: %v; using %s", err, cfg.Mode)
		} else {
			cfg.Mode = mode
		}
	}
	if conf.IsSet(KeyWorkers) {
		if n := conf.GetInt(KeyWorkers); n > 0 {
			cfg.Workers = n
		} else {
			tracer().Errorf("config: %s must be positive; using %d", KeyWorkers, cfg.Workers)
		}
	}
	if conf.IsSet(KeyDryRun) {
		cfg.DryRun = conf.GetBool(KeyDryRun)
	}
	return cfg
}

// ParseMarkers splits a comma- or space-separated list of element names.
// Duplicates are removed, the order of first occurrence is kept.
func ParseMarkers(list string) []string {
	fields := strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	seen := hashset.New()
	markers := make([]string, 0, len(fields))
	for _, f := range fields {
		if seen.Contains(f) {
			continue
		}
		seen.Add(f)
		markers = append(markers, f)
	}
	return markers
}

// Accepts is a predicate: is path a candidate file, judging from its
// extension? The comparison is case-sensitive.
func (cfg Config) Accepts(path string) bool {
	ext := cfg.Extension
	if ext == "" {
		ext = ".xml"
	}
	return len(path) > len(ext) && strings.HasSuffix(path, ext)
}

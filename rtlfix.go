package rtlfix

import (
	"fmt"
	"strings"

	"github.com/npillmayer/rtlfix/reverse"
	"github.com/npillmayer/rtlfix/script"
	"github.com/npillmayer/rtlfix/segment"
	"github.com/npillmayer/rtlfix/shaping"
)

// Mode selects the steps a Processor applies.
type Mode int

// Processing modes.
//
// ModeFull reverses the letters of every word, shapes the reversed word and
// finally reverses the order of words. Shaping therefore operates on words
// in visual order: for a letter at index i, the preceding letter (toward
// the start of the word as written) is at index i+1, the following one at
// i-1.
//
// ModeReverse reverses letters and word order, but does not shape.
//
// ModeShape expects text which already has been reversed (by ModeReverse)
// and shapes every word, keeping the order of words.
//
// For any text t, processing t with ModeShape after ModeReverse yields the
// same result as processing t with ModeFull.
const (
	ModeFull Mode = iota
	ModeReverse
	ModeShape
)

func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeReverse:
		return "reverse"
	case ModeShape:
		return "shape"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode returns the mode named s ("full", "reverse" or "shape"),
// ignoring case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "full":
		return ModeFull, nil
	case "reverse":
		return ModeReverse, nil
	case "shape":
		return ModeShape, nil
	}
	return ModeFull, fmt.Errorf("unknown processing mode %q", s)
}

// Processor transforms text blocks. A Processor is safe for concurrent use.
type Processor struct {
	mode   Mode
	shaper *shaping.Shaper
}

// Option configures a Processor.
type Option func(*Processor)

// WithMode sets the processing mode. The default is ModeFull.
func WithMode(m Mode) Option {
	return func(p *Processor) {
		p.mode = m
	}
}

// WithGaps attaches a registry for letters missing from the shaping table.
func WithGaps(gaps *shaping.Gaps) Option {
	return func(p *Processor) {
		p.shaper = shaping.New(gaps)
	}
}

// NewProcessor creates a Processor.
func NewProcessor(opts ...Option) *Processor {
	p := &Processor{}
	for _, opt := range opts {
		opt(p)
	}
	if p.shaper == nil {
		p.shaper = shaping.New(nil)
	}
	return p
}

// Mode returns the processing mode of p.
func (p *Processor) Mode() Mode {
	return p.mode
}

// Gaps returns the gap registry of p, or nil.
func (p *Processor) Gaps() *shaping.Gaps {
	return p.shaper.Gaps()
}

// Process transforms a text block. Empty text and text without any RTL
// letter are returned unchanged. Otherwise whitespace between words is
// normalized to a single space.
func (p *Processor) Process(text string) string {
	if !script.ContainsRTL(text) {
		return text
	}
	words := segment.Words(text)
	switch p.mode {
	case ModeReverse:
		reverse.Words(words, reverse.Word)
	case ModeShape:
		p.shaper.ShapeWords(words)
	default:
		reverse.Words(words, func(w string) string {
			return p.shaper.ShapeWord(reverse.Word(w))
		})
	}
	CT().Debugf("%s: %d word(s) processed", p.mode, len(words))
	return strings.Join(words, " ")
}

var defaultProcessor = NewProcessor()

// ProcessLeafText transforms the text of an XML leaf element with
// ModeFull. Empty text and text without any RTL letter are returned
// unchanged.
func ProcessLeafText(text string) string {
	return defaultProcessor.Process(text)
}

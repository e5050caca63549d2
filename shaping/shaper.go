package shaping

import (
	"context"
	"strings"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/rtlfix/placeholder"
)

// Shaper shapes words, reporting letters missing from the presentation form
// table to a gap registry. A Shaper is safe for concurrent use, as long as
// its Gaps registry is (which a registry created by NewGaps is).
type Shaper struct {
	gaps *Gaps
}

// New creates a Shaper. gaps may be nil.
func New(gaps *Gaps) *Shaper {
	return &Shaper{gaps: gaps}
}

// Gaps returns the gap registry of s, if any.
func (s *Shaper) Gaps() *Gaps {
	return s.gaps
}

// ShapeWord shapes a single word, given in visual order.
// It does not report gaps other than by tracing them.
func ShapeWord(word string) string {
	return (*Shaper)(nil).ShapeWord(word)
}

// ShapeWord shapes a single word, given in visual order.
// ShapeWord is a pure function of word; no state is carried from one call
// to the next.
func (s *Shaper) ShapeWord(word string) string {
	if word == "" {
		return word
	}
	acc := borrowAccumulator(word)
	defer acc.release()
	var gaps *Gaps
	if s != nil {
		gaps = s.gaps
	}
	return acc.shape(gaps)
}

// ShapeWords shapes every word of words, in place.
func (s *Shaper) ShapeWords(words []string) {
	for i, w := range words {
		words[i] = s.ShapeWord(w)
	}
}

// --- Accumulator -----------------------------------------------------------

// accumulator holds the state of shaping a single word.
type accumulator struct {
	runes           []rune // the word
	opaque          []bool // flags placeholder runes; nil if none
	out             strings.Builder
	pendingLigature bool
	pendingAlef     rune
}

// Accumulators are short-lived objects. To avoid multiple allocation of
// small objects we will pool them.
type accumulatorPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalAccumulatorPool *accumulatorPool

func init() {
	globalAccumulatorPool = &accumulatorPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &accumulator{}, nil
		})
	globalAccumulatorPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalAccumulatorPool.opool = pool.NewObjectPool(globalAccumulatorPool.ctx, factory, config)
}

// borrowAccumulator returns a fresh accumulator, initialized for word.
func borrowAccumulator(word string) *accumulator {
	var acc *accumulator
	if o, err := globalAccumulatorPool.opool.BorrowObject(globalAccumulatorPool.ctx); err == nil {
		acc = o.(*accumulator)
	} else {
		tracer().Errorf("shaping: cannot borrow accumulator: %v", err)
		acc = &accumulator{}
	}
	acc.reset()
	acc.runes = append(acc.runes, []rune(word)...)
	acc.opaque = placeholder.Mask(word, len(acc.runes))
	acc.out.Grow(len(word) + len(word)/2)
	return acc
}

func (acc *accumulator) reset() {
	acc.runes = acc.runes[:0]
	acc.opaque = nil
	acc.out.Reset()
	acc.pendingLigature = false
	acc.pendingAlef = 0
}

// Clears the accumulator and puts it back into the pool.
func (acc *accumulator) release() {
	acc.reset()
	_ = globalAccumulatorPool.opool.ReturnObject(globalAccumulatorPool.ctx, acc)
}

// at returns the class of the rune at index i. Indices out of range and
// placeholder runes are reported as Other, as they never take part in
// joining.
func (acc *accumulator) at(i int) LetterClass {
	if i < 0 || i >= len(acc.runes) || acc.isOpaque(i) {
		return Other
	}
	c, _ := Classify(acc.runes[i])
	return c
}

func (acc *accumulator) isOpaque(i int) bool {
	return acc.opaque != nil && acc.opaque[i]
}

// shape runs the state machine over the word. The letter preceding index i
// is at i+1, the following one at i-1.
func (acc *accumulator) shape(gaps *Gaps) string {
	for i, r := range acc.runes {
		if acc.pendingLigature {
			// r is the Lam
			form := FormLigatureIsolated
			if acc.at(i+1) == Connecting {
				form = FormLigatureFinal
			}
			lig, _ := Presentation(acc.pendingAlef, form)
			acc.out.WriteRune(lig)
			acc.pendingLigature = false
			acc.pendingAlef = 0
			continue
		}
		if acc.isOpaque(i) {
			acc.out.WriteRune(r)
			continue
		}
		class, _ := Classify(r)
		if class == LamAlefTrigger && i+1 < len(acc.runes) &&
			acc.runes[i+1] == Lam && !acc.isOpaque(i+1) {
			acc.pendingLigature = true
			acc.pendingAlef = r
			continue
		}
		prevJoins := acc.at(i+1) == Connecting
		nextJoins := acc.at(i-1).Joining()
		var form Form
		switch class {
		case Connecting:
			switch {
			case prevJoins && nextJoins:
				form = FormMedial
			case prevJoins:
				form = FormFinal
			case nextJoins:
				form = FormInitial
			default:
				form = FormIsolated
			}
		case NonConnecting, LamAlefTrigger:
			if prevJoins {
				form = FormFinal
			} else {
				form = FormIsolated
			}
		default: // Isolated, Other
			acc.out.WriteRune(r)
			continue
		}
		if p, ok := Presentation(r, form); ok {
			acc.out.WriteRune(p)
			continue
		}
		tracer().Errorf("shaping: unknown letter %s", Describe(r))
		gaps.Add(r)
		acc.out.WriteRune(r)
	}
	return acc.out.String()
}

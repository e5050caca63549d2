package shaping

import (
	"fmt"
	"strings"
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"golang.org/x/text/unicode/runenames"
)

// Gaps collects letters which should be shaped but are missing from the
// presentation form table. It is safe for concurrent use.
//
// The zero value is not usable; create instances with NewGaps.
type Gaps struct {
	mu     sync.Mutex
	counts *treemap.Map // rune -> int
}

// NewGaps creates an empty gap registry.
func NewGaps() *Gaps {
	return &Gaps{counts: treemap.NewWith(utils.RuneComparator)}
}

// Add records an occurrence of r.
func (g *Gaps) Add(r rune) {
	if g == nil {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	n := 0
	if v, found := g.counts.Get(r); found {
		n = v.(int)
	}
	g.counts.Put(r, n+1)
}

// Count returns the number of occurrences of r recorded so far.
func (g *Gaps) Count(r rune) int {
	if g == nil {
		return 0
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if v, found := g.counts.Get(r); found {
		return v.(int)
	}
	return 0
}

// Len returns the number of distinct letters recorded.
func (g *Gaps) Len() int {
	if g == nil {
		return 0
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.counts.Size()
}

// Each calls f for every recorded letter, in ascending code-point order.
// f must not call methods of g.
func (g *Gaps) Each(f func(r rune, count int)) {
	if g == nil {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	it := g.counts.Iterator()
	for it.Next() {
		f(it.Key().(rune), it.Value().(int))
	}
}

func (g *Gaps) String() string {
	var sb strings.Builder
	sb.WriteString("gaps{")
	first := true
	g.Each(func(r rune, count int) {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%s×%d", Describe(r), count)
	})
	sb.WriteString("}")
	return sb.String()
}

// Describe formats r for diagnostics, e.g. "U+0649 'ى' (ARABIC LETTER ALEF MAKSURA)".
func Describe(r rune) string {
	name := runenames.Name(r)
	if name == "" {
		return fmt.Sprintf("U+%04X '%c'", r, r)
	}
	return fmt.Sprintf("U+%04X '%c' (%s)", r, r, name)
}

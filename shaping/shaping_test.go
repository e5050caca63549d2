package shaping

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/rtlfix/internal/tracing"
)

func TestClassify(t *testing.T) {
	for _, tc := range []struct {
		r     rune
		class LetterClass
		base  rune
	}{
		{'ب', Connecting, 0xFE8F},
		{'ل', Connecting, 0xFEDD},
		{'ی', Connecting, 0xFBFC},
		{'د', NonConnecting, 0xFEA9},
		{'ژ', NonConnecting, 0xFB8A},
		{'ا', LamAlefTrigger, 0xFE8D},
		{'آ', LamAlefTrigger, 0xFE81},
		{'ء', Isolated, 0xFE80},
		{'ى', NonConnecting, 0},
		{'ئ', Other, 0},
		{'A', Other, 0},
		{'1', Other, 0},
	} {
		class, b := Classify(tc.r)
		if class != tc.class || b != tc.base {
			t.Errorf("Classify(%q) = (%v, %#x), expected (%v, %#x)", tc.r, class, b, tc.class, tc.base)
		}
	}
}

func TestPresentation(t *testing.T) {
	for _, tc := range []struct {
		r    rune
		f    Form
		p    rune
		isOK bool
	}{
		{'ب', FormIsolated, 0xFE8F, true},
		{'ب', FormFinal, 0xFE90, true},
		{'ب', FormInitial, 0xFE91, true},
		{'ب', FormMedial, 0xFE92, true},
		{'پ', FormMedial, 0xFB59, true},
		{'د', FormFinal, 0xFEAA, true},
		{'د', FormInitial, 0, false},
		{'ء', FormFinal, 0, false},
		{'ا', FormLigatureIsolated, 0xFEFB, true},
		{'ا', FormLigatureFinal, 0xFEFC, true},
		{'آ', FormLigatureFinal, 0xFEF6, true},
		{'ب', FormLigatureIsolated, 0, false},
		{'ى', FormIsolated, 0, false},
	} {
		p, ok := Presentation(tc.r, tc.f)
		if p != tc.p || ok != tc.isOK {
			t.Errorf("Presentation(%q, %v) = (%#x, %v), expected (%#x, %v)", tc.r, tc.f, p, ok, tc.p, tc.isOK)
		}
	}
}

// Words are given in visual order, i.e. already reversed.
func TestShapeWord(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	for i, tc := range []struct {
		word, expected string
	}{
		{"", ""},
		{"ABC", "ABC"},
		{"ب", "ﺏ"},                              // single connecting letter
		{"بب", "ﺐﺑ"},                       // final ← initial
		{"ببب", "ﺐﺒﺑ"},                // with medial
		{"ایند", "ﺎﯿﻧﺩ"},         // دنیا
		{"بد", "ﺏﺩ"},                       // دب: no join after Dal
		{"دب", "ﺪﺑ"},                       // بد
		{"ءب", "ءﺏ"},                            // Hamza never joins
		{"A1ب", "A1ﺏ"},                          // Latin passes through
		{"ال", "ﻻ"},                             // لا
		{"الب", "ﻼﺑ"},                      // بلا
		{"الال", "ﻻﻻ"},                     // لالا
		{"{0}مالس", "{0}ﻡﻼﺳ"},         // سلام with a placeholder
		{"ب{0}ب", "ﺏ{0}ﺏ"},                 // placeholders do not join
		{"ال{0}", "ﻻ{0}"},                       // ligature next to a placeholder
		{"{ال}", "{ال}"},                             // letters inside a token are opaque
	} {
		if w := ShapeWord(tc.word); w != tc.expected {
			t.Errorf("test #%d: ShapeWord(%q) = %+q, expected %+q", i, tc.word, w, tc.expected)
		}
	}
}

func TestLamAlefLigatures(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	for alef, lig := range map[rune]rune{'آ': 0xFEF5, 'أ': 0xFEF7, 'إ': 0xFEF9, 'ا': 0xFEFB} {
		word := string([]rune{alef, Lam})
		if w := ShapeWord(word); w != string(lig) {
			t.Errorf("expected isolated ligature %U for %q, have %+q", lig, word, w)
		}
		word = string([]rune{alef, Lam, 'ب'})
		w := []rune(ShapeWord(word))
		if len(w) != 2 || w[0] != lig+1 {
			t.Errorf("expected final ligature %U for %q, have %+q", lig+1, word, string(w))
		}
	}
}

func TestLigaturePairCount(t *testing.T) {
	// two Lam-Alef pairs and a Lam followed by a lone Alef
	word := "الباللا"
	shaped := ShapeWord(word)
	n := 0
	for _, r := range shaped {
		if r >= 0xFEF5 && r <= 0xFEFC {
			n++
		}
	}
	if n != 2 {
		t.Errorf("expected 2 ligatures in %+q, have %d", shaped, n)
	}
	if len([]rune(shaped)) != len([]rune(word))-2 {
		t.Errorf("expected every pair to collapse into one glyph, have %+q", shaped)
	}
}

func TestShapingIsDeterministic(t *testing.T) {
	words := []string{"ال", "ب", "ایند", "{0}مالس"}
	first := make([]string, len(words))
	for i, w := range words {
		first[i] = ShapeWord(w)
	}
	for k := 0; k < 3; k++ {
		for i, w := range words {
			if s := ShapeWord(w); s != first[i] {
				t.Errorf("shaping %q is not deterministic: %+q vs %+q", w, s, first[i])
			}
		}
	}
	// a word ending in a pending Alef must not affect the next word
	if ShapeWord("ا") != "ﺍ" || ShapeWord("ل") != "ﻝ" {
		t.Errorf("ligature state leaked between words")
	}
}

func TestUnknownLetter(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	gaps := NewGaps()
	shaper := New(gaps)
	w := shaper.ShapeWord("ىب")
	if w != "ىﺑ" {
		t.Errorf("expected Alef Maksura to pass through, have %+q", w)
	}
	shaper.ShapeWord("ى")
	if gaps.Len() != 1 || gaps.Count('ى') != 2 {
		t.Errorf("expected 2 occurrences of U+0649 recorded, have %v", gaps)
	}
	if !strings.Contains(gaps.String(), "ARABIC LETTER ALEF MAKSURA") {
		t.Errorf("expected letter name in %q", gaps.String())
	}
}

func TestConcurrentShaping(t *testing.T) {
	gaps := NewGaps()
	shaper := New(gaps)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := 0; k < 100; k++ {
				if w := shaper.ShapeWord("الب"); w != "ﻼﺑ" {
					t.Errorf("unexpected result %+q", w)
					return
				}
				shaper.ShapeWord("ى")
			}
		}()
	}
	wg.Wait()
	if gaps.Count('ى') != 800 {
		t.Errorf("expected 800 gap records, have %d", gaps.Count('ى'))
	}
}

func ExampleShapeWord() {
	// "سلام" in visual order
	fmt.Printf("%U\n", []rune(ShapeWord("مالس")))
	// Output: [U+FEE1 U+FEFC U+FEB3]
}

package rtlfix

import (
	"strings"
	"testing"

	"github.com/npillmayer/rtlfix/internal/tracing"
	"github.com/npillmayer/rtlfix/reverse"
	"github.com/npillmayer/rtlfix/shaping"
)

func TestProcessLeafTextIdentity(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	for _, text := range []string{
		"",
		"   ",
		"Hello   World",
		"Press {0} to continue.\n",
		"Ünïcödé ＡＢＣ 漢字",
	} {
		if out := ProcessLeafText(text); out != text {
			t.Errorf("expected %q to be left alone, have %q", text, out)
		}
	}
}

func TestProcessLeafText(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	for i, tc := range []struct {
		text, expected string
	}{
		{"ABC دنیا", "ﺎﯿﻧﺩ ABC"},
		{"{0}سلام", "{0}ﻡﻼﺳ"},
		{"ب", "ﺏ"},
		{"لا", "ﻻ"},
		{"بلا", "ﻼﺑ"},
		{"  سلام   دنیا ", "ﺎﯿﻧﺩ ﻡﻼﺳ"},
		{"שלום עולם", "םלוע םולש"},
	} {
		if out := ProcessLeafText(tc.text); out != tc.expected {
			t.Errorf("test #%d: ProcessLeafText(%q) = %+q, expected %+q", i, tc.text, out, tc.expected)
		}
	}
}

func TestWordOrderInversion(t *testing.T) {
	text := "یک دو ABC 42 سه"
	out := strings.Split(ProcessLeafText(text), " ")
	in := strings.Fields(text)
	if len(out) != len(in) {
		t.Fatalf("expected %d words, have %d", len(in), len(out))
	}
	shaper := shaping.New(nil)
	for i, w := range in {
		expected := shaper.ShapeWord(reverse.Word(w))
		if out[len(out)-1-i] != expected {
			t.Errorf("word #%d: expected %+q at position %d, have %+q", i, expected, len(out)-1-i, out[len(out)-1-i])
		}
	}
	if out[1] != "42" || out[2] != "ABC" {
		t.Errorf("expected Latin words to keep their letter order, have %q", out)
	}
}

func TestModes(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	reverser := NewProcessor(WithMode(ModeReverse))
	shaper := NewProcessor(WithMode(ModeShape))
	full := NewProcessor()
	for _, text := range []string{
		"ABC دنیا",
		"{0}سلام",
		"کتاب‌های لالا {name} بلا",
		"سل{0}ام دنیا!",
		"no rtl here",
	} {
		r := reverser.Process(text)
		if s := shaper.Process(r); s != full.Process(text) {
			t.Errorf("shape(reverse(%q)) = %+q, but full = %+q", text, s, full.Process(text))
		}
	}
	if out := reverser.Process("ABC دنیا"); out != "ایند ABC" {
		t.Errorf("reverse mode: expected %q, have %q", "ایند ABC", out)
	}
	if out := shaper.Process("ABC ایند"); out != "ABC ﺎﯿﻧﺩ" {
		t.Errorf("shape mode: expected word order to be kept, have %+q", out)
	}
}

func TestParseMode(t *testing.T) {
	for s, m := range map[string]Mode{"": ModeFull, "Full": ModeFull, "reverse": ModeReverse, " shape ": ModeShape} {
		mode, err := ParseMode(s)
		if err != nil || mode != m {
			t.Errorf("ParseMode(%q) = (%v, %v), expected %v", s, mode, err, m)
		}
	}
	if _, err := ParseMode("bidi"); err == nil {
		t.Errorf("expected error for unknown mode")
	}
}

func TestProcessorGaps(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	gaps := shaping.NewGaps()
	p := NewProcessor(WithGaps(gaps))
	out := p.Process("على")
	if !strings.ContainsRune(out, 'ى') {
		t.Errorf("expected unknown letter to pass through, have %+q", out)
	}
	if p.Gaps() != gaps || gaps.Count('ى') != 1 {
		t.Errorf("expected Alef Maksura to be recorded, have %v", gaps)
	}
}

func TestInformationSeparatorsSplitWords(t *testing.T) {
	expected := ProcessLeafText("سلام دنیا")
	if out := ProcessLeafText("سلام\x1fدنیا"); out != expected {
		t.Errorf("expected U+001F to separate words like a space, have %q, expected %q", out, expected)
	}
}

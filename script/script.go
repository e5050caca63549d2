package script

import (
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/unicode/rangetable"
)

// Hebrew and Arabic are the code-point blocks treated as right-to-left.
var (
	Hebrew = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x0590, Hi: 0x05FF, Stride: 1}},
	}
	Arabic = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x0600, Hi: 0x06FF, Stride: 1}},
	}
)

// RTL is the union of Hebrew and Arabic.
var RTL = rangetable.Merge(Hebrew, Arabic)

// IsRTL is a predicate: is r within one of the RTL blocks?
func IsRTL(r rune) bool {
	if r < 0x0590 || r > 0x06FF {
		return false
	}
	return unicode.Is(RTL, r)
}

// ContainsRTL returns true if at least one rune of s is an RTL rune.
func ContainsRTL(s string) bool {
	for _, r := range s {
		if IsRTL(r) {
			return true
		}
	}
	return false
}

var (
	arab = language.MustParseScript("Arab")
	hebr = language.MustParseScript("Hebr")
	zyyy = language.MustParseScript("Zyyy")
)

// Of returns the ISO 15924 script of r as far as this package is concerned:
// "Arab" for the Arabic block, "Hebr" for the Hebrew block and "Zyyy"
// (common/undetermined) for anything else.
func Of(r rune) language.Script {
	switch {
	case unicode.Is(Arabic, r):
		return arab
	case unicode.Is(Hebrew, r):
		return hebr
	}
	return zyyy
}

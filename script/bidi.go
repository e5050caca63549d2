package script

import (
	"strconv"

	"golang.org/x/text/unicode/bidi"
)

// BidiClass returns the UAX#9 bidi class of r.
//
// RTL detection of this package does not depend on bidi classes. They are
// used for diagnostics only, e.g. to find letters which will be displayed
// right-to-left by a bidi-aware renderer but are not covered by the RTL
// ranges.
func BidiClass(r rune) bidi.Class {
	props, _ := bidi.LookupRune(r)
	return props.Class()
}

// IsStrongRTL is a predicate: is r of bidi class R or AL?
func IsStrongRTL(r rune) bool {
	c := BidiClass(r)
	return c == bidi.R || c == bidi.AL
}

var classNames = [...]string{
	bidi.L:       "L",
	bidi.R:       "R",
	bidi.EN:      "EN",
	bidi.ES:      "ES",
	bidi.ET:      "ET",
	bidi.AN:      "AN",
	bidi.CS:      "CS",
	bidi.B:       "B",
	bidi.S:       "S",
	bidi.WS:      "WS",
	bidi.ON:      "ON",
	bidi.BN:      "BN",
	bidi.NSM:     "NSM",
	bidi.AL:      "AL",
	bidi.Control: "Control",
	bidi.LRO:     "LRO",
	bidi.RLO:     "RLO",
	bidi.LRE:     "LRE",
	bidi.RLE:     "RLE",
	bidi.PDF:     "PDF",
	bidi.LRI:     "LRI",
	bidi.RLI:     "RLI",
	bidi.FSI:     "FSI",
	bidi.PDI:     "PDI",
}

// ClassString returns a bidi class as a string.
func ClassString(c bidi.Class) string {
	if int(c) < len(classNames) && classNames[c] != "" {
		return classNames[c]
	}
	return "bidi_class(" + strconv.FormatInt(int64(c), 10) + ")"
}

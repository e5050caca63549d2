package shaping

import "fmt"

// LetterClass is the connectivity class of a letter.
type LetterClass int8

// Letter classes
const (
	Other          LetterClass = iota // not shaped: Latin, digits, punctuation, …
	Isolated                          // never joins (Hamza)
	Connecting                        // joins to both sides
	NonConnecting                     // joins to the preceding letter only
	LamAlefTrigger                    // Alef variant, forms a ligature with a preceding Lam
)

func (c LetterClass) String() string {
	switch c {
	case Isolated:
		return "Isolated"
	case Connecting:
		return "Connecting"
	case NonConnecting:
		return "NonConnecting"
	case LamAlefTrigger:
		return "LamAlefTrigger"
	}
	return "Other"
}

// Joining is a predicate: may a letter of class c receive a join from a
// preceding connecting letter?
func (c LetterClass) Joining() bool {
	return c == Connecting || c == NonConnecting || c == LamAlefTrigger
}

// Form is a presentation form.
type Form int8

// Presentation forms. The first four are offsets from a letter's base
// (isolated) presentation code-point.
const (
	FormIsolated Form = iota
	FormFinal
	FormInitial
	FormMedial
	FormLigatureIsolated
	FormLigatureFinal
)

func (f Form) String() string {
	switch f {
	case FormIsolated:
		return "isol"
	case FormFinal:
		return "fina"
	case FormInitial:
		return "init"
	case FormMedial:
		return "medi"
	case FormLigatureIsolated:
		return "liga/isol"
	case FormLigatureFinal:
		return "liga/fina"
	}
	return fmt.Sprintf("Form(%d)", int8(f))
}

// Lam is ARABIC LETTER LAM.
const Lam rune = 'ل'

// base maps letters to their isolated presentation form.
var base = map[rune]rune{
	'ء': 0xFE80,
	'آ': 0xFE81,
	'أ': 0xFE83,
	'ؤ': 0xFE85,
	'إ': 0xFE87,
	'ئ': 0xFE89,
	'ا': 0xFE8D,
	'ب': 0xFE8F,
	'پ': 0xFB56,
	'ة': 0xFE93,
	'ت': 0xFE95,
	'ث': 0xFE99,
	'ج': 0xFE9D,
	'چ': 0xFB7A,
	'ح': 0xFEA1,
	'خ': 0xFEA5,
	'د': 0xFEA9,
	'ذ': 0xFEAB,
	'ر': 0xFEAD,
	'ز': 0xFEAF,
	'ژ': 0xFB8A,
	'س': 0xFEB1,
	'ش': 0xFEB5,
	'ص': 0xFEB9,
	'ض': 0xFEBD,
	'ط': 0xFEC1,
	'ظ': 0xFEC5,
	'ع': 0xFEC9,
	'غ': 0xFECD,
	'ف': 0xFED1,
	'ق': 0xFED5,
	'ک': 0xFB8E,
	'گ': 0xFB92,
	'ل': 0xFEDD,
	'م': 0xFEE1,
	'ن': 0xFEE5,
	'ه': 0xFEE9,
	'و': 0xFEED,
	'ي': 0xFEF1,
	'ی': 0xFBFC,
}

// lamAlef maps Alef variants to the isolated Lam-Alef ligature. The final
// form is one code-point above.
var lamAlef = map[rune]rune{
	'آ': 0xFEF5,
	'أ': 0xFEF7,
	'إ': 0xFEF9,
	'ا': 0xFEFB,
}

var classes = func() map[rune]LetterClass {
	m := make(map[rune]LetterClass, 64)
	for _, r := range "بپتثجچحخسشصضطظعغفقکگلمنهيی" {
		m[r] = Connecting
	}
	for _, r := range "اأإآدذرزژوؤةى" {
		m[r] = NonConnecting
	}
	for r := range lamAlef {
		m[r] = LamAlefTrigger
	}
	m['ء'] = Isolated
	return m
}()

// Classify returns the connectivity class of r and its isolated
// presentation form. The presentation form is 0 if r has no table entry.
//
// Letters not covered by any class are Other, even if they have a table
// entry (YEH WITH HAMZA ABOVE); they are never re-shaped.
func Classify(r rune) (LetterClass, rune) {
	c, ok := classes[r]
	if !ok {
		return Other, 0
	}
	return c, base[r]
}

// Presentation returns the presentation form f of letter r.
// For the ligature forms, r has to be the Alef variant of a Lam-Alef pair.
// If there is no such form, Presentation returns false.
func Presentation(r rune, f Form) (rune, bool) {
	switch f {
	case FormLigatureIsolated, FormLigatureFinal:
		lig, ok := lamAlef[r]
		if !ok {
			return 0, false
		}
		if f == FormLigatureFinal {
			lig++
		}
		return lig, true
	}
	b, ok := base[r]
	if !ok {
		return 0, false
	}
	c, _ := Classify(r)
	switch {
	case f == FormIsolated:
	case f == FormFinal && c != Isolated:
	case c == Connecting && (f == FormInitial || f == FormMedial):
	default:
		return 0, false
	}
	return b + rune(f), true
}

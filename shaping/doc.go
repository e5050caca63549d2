/*
Package shaping maps Arabic and Persian letters to their contextual
presentation forms.

Renderers without an OpenType shaping engine display Arabic letters in
their isolated form, regardless of their neighbors. This package replaces
every letter of a word with the presentation form code-point (Unicode
blocks "Arabic Presentation Forms-A/B") selected by the connectivity of
its neighbors, and composes Lam followed by an Alef variant into a single
ligature code-point.

Words are expected in visual order, i.e. after their letters have been
reversed (see package reverse). Consequently the letter preceding the one
at index i in logical order is the one at index i+1, and the following
letter is at index i-1.

▪︎ Connecting letters take one of four forms: isolated (+0 from the
table's base code-point), final (+1), initial (+2) or medial (+3).

▪︎ Non-connecting letters take the final form if preceded by a connecting
letter, otherwise the isolated form.

▪︎ Lam-Alef becomes one ligature, isolated or final, depending on the
letter preceding the Lam.

Placeholder tokens ("{0}") are opaque: their runes are copied verbatim and
never count as neighbors. Letters classified as joining but missing from
the table are copied and reported through a Gaps registry.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>


*/
package shaping

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rtlfix.shaping'.
func tracer() tracing.Trace {
	return tracing.Select("rtlfix.shaping")
}

/*
Package reverse re-orders right-to-left text for renderers which lay out
every run left to right.

Word reverses the letters of a single word, Block additionally reverses
the order of the words of a text. Placeholder tokens ("{0}", "{name}")
are never reversed; see package placeholder for their placement.

Words without any right-to-left letter are left alone, as are blocks
without any right-to-left letter. Reversal is done on code-points, not on
grapheme clusters: combining marks will end up before their base letter.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package reverse

import (
	"strings"

	"github.com/npillmayer/rtlfix/placeholder"
	"github.com/npillmayer/rtlfix/script"
	"github.com/npillmayer/rtlfix/segment"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rtlfix.reverse'.
func tracer() tracing.Trace {
	return tracing.Select("rtlfix.reverse")
}

// Word reverses the code-points of word, leaving placeholder tokens intact.
//
// If word has no RTL letter outside of placeholder tokens, it is returned
// unchanged.
func Word(word string) string {
	stripped, tokens := placeholder.Extract(word)
	if !script.ContainsRTL(stripped) {
		return word
	}
	runes := []rune(stripped)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return placeholder.Restore(string(runes), tokens)
}

// Block reverses every word of text and the order of the words.
// Words are joined by a single space; the original whitespace is not
// preserved.
//
// Text without any RTL letter is returned unchanged.
func Block(text string) string {
	if !script.ContainsRTL(text) {
		return text
	}
	words := segment.Words(text)
	Words(words, Word)
	tracer().Debugf("reversed block of %d word(s)", len(words))
	return strings.Join(words, " ")
}

// Words applies f to every word and reverses the order of words, in place.
func Words(words []string, f func(string) string) {
	if f != nil {
		for i, w := range words {
			words[i] = f(w)
		}
	}
	for i, j := 0, len(words)-1; i < j; i, j = i+1, j-1 {
		words[i], words[j] = words[j], words[i]
	}
}

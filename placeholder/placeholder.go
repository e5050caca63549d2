/*
Package placeholder guards substitution markers like "{0}" or
"{PAWN_nameDef}" while the letters of a word are re-ordered.

A placeholder token is a brace-delimited span, matched non-greedily: "{"
followed by anything up to the first "}". An opening brace without a
matching closing brace is ordinary text. Nested braces are not supported.

Tokens are removed from a word with Extract and put back with Restore.
Restore inserts every token at the rune offset it had in the original
word, counted from the start of the (possibly reversed) output. Offsets
are not mirrored: a token which started at offset 2 will start at offset 2
after reversal as well. Consumers of the translated strings rely on exactly
this placement.
*/
package placeholder

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rtlfix.placeholder'.
func tracer() tracing.Trace {
	return tracing.Select("rtlfix.placeholder")
}

// Pattern is the regular expression for placeholder tokens.
var Pattern = regexp.MustCompile(`\{.*?\}`)

// Token is a placeholder found in a word.
type Token struct {
	Text   string // literal text, including the braces
	Offset int    // rune offset of the token within the original word
}

// Extract removes all placeholder tokens from word. It returns the word
// without tokens and the tokens in order of appearance.
//
// If word contains no placeholder, stripped is word and tokens is nil.
func Extract(word string) (stripped string, tokens []Token) {
	locs := Pattern.FindAllStringIndex(word, -1)
	if len(locs) == 0 {
		return word, nil
	}
	var sb strings.Builder
	sb.Grow(len(word))
	tokens = make([]Token, 0, len(locs))
	last := 0
	for _, loc := range locs {
		sb.WriteString(word[last:loc[0]])
		tokens = append(tokens, Token{
			Text:   word[loc[0]:loc[1]],
			Offset: utf8.RuneCountInString(word[:loc[0]]),
		})
		last = loc[1]
	}
	sb.WriteString(word[last:])
	tracer().Debugf("extracted %d placeholder(s) from %q", len(tokens), word)
	return sb.String(), tokens
}

// Restore re-inserts tokens into s. Tokens are inserted in ascending order
// of their offsets, each at its original rune offset of the string built so
// far, shifting subsequent content to the right. An offset beyond the end of
// the string appends the token.
//
// Restore expects tokens as returned by Extract, i.e. sorted by offset.
func Restore(s string, tokens []Token) string {
	if len(tokens) == 0 {
		return s
	}
	runes := []rune(s)
	for _, token := range tokens {
		at := token.Offset
		if at < 0 {
			at = 0
		} else if at > len(runes) {
			at = len(runes)
		}
		t := []rune(token.Text)
		r := make([]rune, 0, len(runes)+len(t))
		r = append(r, runes[:at]...)
		r = append(r, t...)
		r = append(r, runes[at:]...)
		runes = r
	}
	return string(runes)
}

// Span is a half-open range [From, To) of rune indices.
type Span struct {
	From, To int
}

// Contains is a predicate: is rune index i within the span?
func (sp Span) Contains(i int) bool {
	return i >= sp.From && i < sp.To
}

// Spans returns the rune index ranges of all placeholder tokens in word,
// in order of appearance.
func Spans(word string) []Span {
	locs := Pattern.FindAllStringIndex(word, -1)
	if len(locs) == 0 {
		return nil
	}
	spans := make([]Span, len(locs))
	for i, loc := range locs {
		from := utf8.RuneCountInString(word[:loc[0]])
		spans[i] = Span{
			From: from,
			To:   from + utf8.RuneCountInString(word[loc[0]:loc[1]]),
		}
	}
	return spans
}

// Mask returns a slice of length n (the rune count of word) flagging every
// rune which is part of a placeholder token.
func Mask(word string, n int) []bool {
	spans := Spans(word)
	if len(spans) == 0 {
		return nil
	}
	mask := make([]bool, n)
	for _, sp := range spans {
		for i := sp.From; i < sp.To && i < n; i++ {
			mask[i] = true
		}
	}
	return mask
}

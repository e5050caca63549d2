/*
Package rtlfix rewrites right-to-left text for renderers without support
for the Unicode bidi algorithm and without contextual shaping.

Description

Translation files of games and embedded devices are often displayed by
engines which lay out every run of text left to right and draw every
code-point in isolation. Arabic, Persian and Hebrew text shows up there
with reversed letters, reversed words and, for Arabic script, without any
joining between letters.

Package rtlfix works around this by storing text in visual order:

(1) The letters of every word containing right-to-left letters are
reversed; package reverse.

(2) Arabic and Persian letters are replaced by their contextual
presentation forms, and Lam-Alef pairs are composed into a single
ligature; package shaping.

(3) The order of the words of the text is reversed, and words are joined
by a single space.

Placeholder tokens like "{0}" survive all of these steps unchanged; see
package placeholder.

Text which does not contain any right-to-left letter is never touched.

This is no implementation of UAX#9. There is no notion of embedding
levels, mirrored brackets or numbers, and letters are processed one
code-point at a time (not as grapheme clusters).

BSD License

Copyright (c) 2017–22, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

Contents

The driver function is ProcessLeafText, which applies all of the steps
above to the text of one XML leaf element. Type Processor allows to
select a subset of the steps (see Mode) and to collect letters missing
from the shaping table.

Sub-package xmltree reads and writes XML documents, sub-package batch
walks directories of translation files, and cmd/rtlfix is the command
line front end.
*/
package rtlfix

import (
	"github.com/npillmayer/schuko/tracing"
)

// CT traces with key 'rtlfix'.
func CT() tracing.Trace {
	return tracing.Select("rtlfix")
}

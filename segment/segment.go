/*
Package segment splits text into words.

A word is a maximal run of non-whitespace code-points. Whitespace is
anything unicode.IsSpace reports as such, plus the information
separators U+001C to U+001F; runs of whitespace are pure
separators and are not reported as segments.

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


Typical Usage

Segmenter provides an interface similar to bufio.Scanner for reading data
such as a file of Unicode text.
Similar to Scanner's Scan() function, successive calls to a segmenter's
Next() method will step through the words of the input.

  segmenter := segment.NewSegmenter()
  segmenter.Init(strings.NewReader("Hello World"))
  for segmenter.Next() {
    // do something with segmenter.Text() or segmenter.Bytes()
  }

For short strings, Words is a shortcut. */
package segment

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"
)

// CT traces with key 'rtlfix'.
func CT() tracing.Trace {
	return tracing.Select("rtlfix")
}

// A Segmenter receives a sequence of code-points from an io.RuneReader and
// segments it into words.
type Segmenter struct {
	reader        io.RuneReader // where we get the next runes from
	activeSegment []byte        // the most recent segment
	buffer        *bytes.Buffer // wrapper around activeSegment
	maxSegmentLen int           // maximum length allowed for segments
	pos           int64         // current position in text
	err           error
	atEOF         bool
	inUse         bool // Next() has been called; buffer is in use.
}

// MaxSegmentSize is the maximum size used to buffer a segment
// unless the user provides an explicit buffer with Segmenter.Buffer().
const MaxSegmentSize = 64 * 1024
const startBufSize = 256 // Size of initial allocation for buffer.

// ErrTooLong flags a buffer overflow.
// ErrNotInitialized is returned if a segmenters Next-function is called without
// first setting an input source.
var (
	ErrTooLong        = errors.New("segmenter: segment too long for buffer")
	ErrNotInitialized = errors.New("segmenter not initialized; must call Init(...) first")
)

// NewSegmenter creates a new Segmenter.
//
// Before using newly created segmenters, clients will have to call Init(...)
// on them, i.e. initialize them for a rune reader.
func NewSegmenter() *Segmenter {
	return &Segmenter{}
}

// Init initializes a Segmenter with an io.RuneReader to read from.
// s is either a newly created segmenter to be initialized, or we may
// re-initializes a segmenter already in use.
func (s *Segmenter) Init(reader io.RuneReader) {
	if reader == nil {
		reader = strings.NewReader("")
	}
	s.reader = reader
	if s.buffer == nil {
		s.buffer = bytes.NewBuffer(make([]byte, 0, startBufSize))
		s.maxSegmentLen = MaxSegmentSize
	} else {
		s.buffer.Reset()
	}
	s.activeSegment = nil
	s.atEOF = false
	s.inUse = false
	s.err = nil
	s.pos = 0
}

// Buffer sets the initial buffer to use when segmenting and the maximum
// size of a segment.
//
// Buffer panics if it is called after segmenting has started. Clients will have
// to call Init(...) again to permit re-setting the buffer.
func (s *Segmenter) Buffer(buf []byte, max int) {
	if s.inUse {
		panic("segment.Buffer: buffer already in use; cannot be re-set")
	}
	s.buffer = bytes.NewBuffer(buf[:0])
	s.maxSegmentLen = max
}

// Err returns the first non-EOF error that was encountered by the
// Segmenter.
func (s *Segmenter) Err() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}

// Next advances the Segmenter to the next word, which will then be available
// through the Bytes() or Text() method. It returns false when the segmenting
// stops, either by reaching the end of the input or an error.
// After Next() returns false, the Err() method will return any error
// that occurred during reading, except for io.EOF.
func (s *Segmenter) Next() bool {
	if s.reader == nil {
		s.setErr(ErrNotInitialized)
		return false
	}
	s.inUse = true
	s.activeSegment = nil
	s.buffer.Reset()
	for !s.atEOF {
		r, sz, err := s.reader.ReadRune()
		if err != nil {
			s.atEOF = true
			if err != io.EOF {
				CT().Errorf("segmenter: ReadRune() error: %s", err)
				s.setErr(err)
				return false
			}
			break
		}
		s.pos += int64(sz)
		if isSeparator(r) {
			if s.buffer.Len() > 0 {
				break
			}
			continue
		}
		if s.buffer.Len()+utf8.RuneLen(r) > s.maxSegmentLen {
			s.setErr(ErrTooLong)
			return false
		}
		s.buffer.WriteRune(r)
	}
	if s.buffer.Len() == 0 {
		return false
	}
	s.activeSegment = s.buffer.Bytes()
	CT().Debugf("segmenter: Next() = %q", s.activeSegment)
	return true
}

// Bytes returns the most recent segment generated by a call to Next().
// The underlying array may point to data that will be overwritten by a
// subsequent call to Next(). No allocation is performed.
func (s *Segmenter) Bytes() []byte {
	return s.activeSegment
}

// Text returns the most recent segment generated by a call to Next()
// as a newly allocated string holding its bytes.
func (s *Segmenter) Text() string {
	return string(s.activeSegment)
}

// Position returns the number of bytes read from the input so far.
func (s *Segmenter) Position() int64 {
	return s.pos
}

// isSeparator is a predicate: does r separate words?
func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || (r >= '\x1c' && r <= '\x1f')
}

// setErr() records the first error encountered.
func (s *Segmenter) setErr(err error) {
	if s.err == nil || s.err == io.EOF {
		s.err = err
	}
}

// Words splits text into words. Empty words are never produced; a text
// consisting of whitespace only yields an empty slice.
func Words(text string) []string {
	seg := NewSegmenter()
	seg.Init(strings.NewReader(text))
	words := make([]string, 0, strings.Count(text, " ")+1)
	for seg.Next() {
		words = append(words, seg.Text())
	}
	if err := seg.Err(); err != nil {
		// only ErrTooLong may occur for in-memory input; fall back to
		// the simple split
		CT().Errorf("segmenter: %v", err)
		return strings.FieldsFunc(text, isSeparator)
	}
	return words
}

// Copyright © 2018-2020 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package mdbg

import (
	"bufio"
	"io"
)

// FastqRead is a single 4-line FASTQ record. Only Seq is consumed by
// the assembly pipeline; ID is kept for diagnostics (the read-name
// filter reads raw lines and does not use FastqRead).
type FastqRead struct {
	ID, Seq, Unk, Qual string
}

// FastqField enumerates FASTQ fields to materialize, letting callers
// that only need sequences skip allocating the quality string.
type FastqField uint

const (
	FieldID FastqField = 1 << iota
	FieldSeq
	FieldUnk
	FieldQual
	FieldAll = FieldID | FieldSeq | FieldUnk | FieldQual
)

// FastqScanner reads 4-line FASTQ records from r. Unlike a strict
// parser, a final record truncated by EOF (spec §7) is dropped
// silently rather than reported as an error: Scan simply returns
// false and Err returns nil.
type FastqScanner struct {
	b      *bufio.Scanner
	fields FastqField
	err    error
}

// NewFastqScanner returns a Scanner reading fields from r.
func NewFastqScanner(r io.Reader, fields FastqField) *FastqScanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &FastqScanner{b: sc, fields: fields}
}

// Scan reads the next record into read, returning false at EOF or on
// error; check Err to distinguish the two.
func (s *FastqScanner) Scan(read *FastqRead) bool {
	if s.err != nil {
		return false
	}
	if !s.b.Scan() {
		s.err = s.b.Err()
		return false
	}
	id := s.b.Bytes()
	if len(id) == 0 || id[0] != '@' {
		s.err = ErrInvalidFileFormat
		return false
	}
	if s.fields&FieldID != 0 {
		read.ID = string(id)
	}

	if !s.scanRequired() {
		return false
	}
	if s.fields&FieldSeq != 0 {
		read.Seq = s.b.Text()
	}

	if !s.scanRequired() {
		return false
	}
	unk := s.b.Bytes()
	if len(unk) == 0 || unk[0] != '+' {
		s.err = ErrInvalidFileFormat
		return false
	}
	if s.fields&FieldUnk != 0 {
		read.Unk = string(unk)
	}

	if !s.scanRequired() {
		return false
	}
	if s.fields&FieldQual != 0 {
		read.Qual = s.b.Text()
	}
	return true
}

// scanRequired scans one more line; a clean EOF here means the final
// record was truncated, which spec §7 tolerates by silently dropping
// it rather than surfacing an error.
func (s *FastqScanner) scanRequired() bool {
	if s.b.Scan() {
		return true
	}
	s.err = s.b.Err() // nil on clean EOF: truncated trailing record is not an error
	return false
}

// Err returns the scanning error, if any (never set for a clean or
// truncated-final-record EOF).
func (s *FastqScanner) Err() error {
	return s.err
}

// readAllSeqs buffers every sequence line of r in memory for the
// two-pass Bloom counter, which runs two independent sweeps over the
// same reads.
func readAllSeqs(r io.Reader) ([][]byte, error) {
	sc := NewFastqScanner(r, FieldSeq)
	var reads [][]byte
	var rec FastqRead
	for sc.Scan(&rec) {
		reads = append(reads, []byte(rec.Seq))
	}
	return reads, sc.Err()
}

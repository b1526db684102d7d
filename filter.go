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
	"strings"
)

// ReadNameSet is the external collaborator's set of read names to
// drop, typically derived from an aligner's output (spec §6). Names
// are compared against the header token after "@", up to the first
// whitespace.
type ReadNameSet map[string]struct{}

// FilterReads copies every FASTQ record from r to w whose read name is
// absent from exclude, preserving all four lines verbatim (including
// quality) rather than routing through FastqScanner, since the filter
// must not reinterpret or reformat any field.
func FilterReads(r io.Reader, w io.Writer, exclude ReadNameSet) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	for {
		header, ok := nextLine(sc)
		if !ok {
			break
		}
		seq, ok := nextLine(sc)
		if !ok {
			break // truncated final record: dropped silently, per spec §7
		}
		sep, ok := nextLine(sc)
		if !ok {
			break
		}
		qual, ok := nextLine(sc)
		if !ok {
			break
		}

		if _, excluded := exclude[readName(header)]; !excluded {
			if _, err := bw.WriteString(header); err != nil {
				return err
			}
			if _, err := bw.WriteString(seq); err != nil {
				return err
			}
			if _, err := bw.WriteString(sep); err != nil {
				return err
			}
			if _, err := bw.WriteString(qual); err != nil {
				return err
			}
		}
	}
	return sc.Err()
}

func nextLine(sc *bufio.Scanner) (string, bool) {
	if !sc.Scan() {
		return "", false
	}
	return sc.Text() + "\n", true
}

// readName extracts the token after "@" up to the first whitespace.
func readName(header string) string {
	h := strings.TrimPrefix(strings.TrimSuffix(header, "\n"), "@")
	if i := strings.IndexAny(h, " \t"); i >= 0 {
		h = h[:i]
	}
	return h
}

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
	"fmt"
	"io"
)

// FastaLineWidth is the column width contigs are wrapped at (spec
// §4.9).
const FastaLineWidth = 80

// WriteFasta writes each unitig as ">unitig_<i> length_<len>" followed
// by its sequence wrapped at FastaLineWidth columns. An empty slice is
// a valid outcome (spec §7: zero unitigs is not an error); the output
// file is still created, containing zero records.
func WriteFasta(w io.Writer, unitigs []string) error {
	bw := bufio.NewWriter(w)
	for i, seq := range unitigs {
		if _, err := fmt.Fprintf(bw, ">unitig_%d length_%d\n", i, len(seq)); err != nil {
			return err
		}
		for start := 0; start < len(seq); start += FastaLineWidth {
			end := start + FastaLineWidth
			if end > len(seq) {
				end = len(seq)
			}
			if _, err := bw.WriteString(seq[start:end]); err != nil {
				return err
			}
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

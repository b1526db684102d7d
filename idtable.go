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

// IDTable is the dense canonicalKmer -> minimizerID map built during
// minimizer discovery (pass 1) and read-only during edge extraction
// (pass 2). Assignment is monotonic: the Nth distinct k-mer admitted
// gets ID N-1, in file order.
type IDTable struct {
	K       int
	Density float64

	ids   map[Kmer]uint32
	order []Kmer
}

// NewIDTable returns an empty table for k-mers of size k selected at
// the given density.
func NewIDTable(k int, density float64) *IDTable {
	return &IDTable{
		K:       k,
		Density: density,
		ids:     make(map[Kmer]uint32),
	}
}

// Add assigns code a dense ID the first time it is seen, returning the
// existing ID on subsequent calls. isNew reports whether this call
// performed the assignment.
func (t *IDTable) Add(code Kmer) (id uint32, isNew bool) {
	if id, ok := t.ids[code]; ok {
		return id, false
	}
	id = uint32(len(t.order))
	t.ids[code] = id
	t.order = append(t.order, code)
	return id, true
}

// ID looks up the ID of a previously admitted canonical k-mer.
func (t *IDTable) ID(code Kmer) (uint32, bool) {
	id, ok := t.ids[code]
	return id, ok
}

// Len returns the number of distinct minimizers in the table.
func (t *IDTable) Len() int {
	return len(t.order)
}

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

// Occurrence is a single minimizer hit within one read: id is the
// dense minimizer ID, Position is the 0-based index, in the raw read,
// of the first base of the canonical k-mer.
type Occurrence struct {
	ID       uint32
	Position int
}

// DiscoverMinimizers is pass 1 of minimizer selection (spec §4.4): it
// walks every read once, canonicalizing and hashing each k-mer that
// seenTwice admits, and assigns dense IDs to admitted canonical k-mers
// in first-seen order. Read order must be deterministic (file order)
// for ID assignment to be reproducible.
func DiscoverMinimizers(reads [][]byte, k int, density float64, seen *seenFilters) *IDTable {
	table := NewIDTable(k, density)
	for _, read := range reads {
		for _, run := range SplitRuns(read) {
			it, err := NewRunIterator(run, k)
			if err != nil {
				continue
			}
			for {
				code, _, ok := it.Next()
				if !ok {
					break
				}
				canon := Canonical(code, k)
				if !seen.mightContainTwice(canon) {
					continue
				}
				if !isMinimizer(canon, density) {
					continue
				}
				table.Add(canon)
			}
		}
	}
	return table
}

// OccurrencesInRead is pass 2's per-read step (spec §4.4): re-derive
// the same admitted minimizers, now against the closed table, and list
// them with their raw-read positions in increasing order. Occurrences
// are grouped one slice per Run: a k-mer chain never crosses a
// non-ACGT gap (spec §9), so neither may the edges built from it —
// callers must extract edges within each group, never across groups.
func OccurrencesInRead(read []byte, k int, density float64, seen *seenFilters, table *IDTable) [][]Occurrence {
	var groups [][]Occurrence
	for _, run := range SplitRuns(read) {
		it, err := NewRunIterator(run, k)
		if err != nil {
			continue
		}
		var occs []Occurrence
		for {
			code, pos, ok := it.Next()
			if !ok {
				break
			}
			canon := Canonical(code, k)
			if !seen.mightContainTwice(canon) {
				continue
			}
			if !isMinimizer(canon, density) {
				continue
			}
			id, ok := table.ID(canon)
			if !ok {
				continue // admitted after the table closed: pass-1/pass-2 read sets must match
			}
			occs = append(occs, Occurrence{ID: id, Position: pos})
		}
		if len(occs) > 0 {
			groups = append(groups, occs)
		}
	}
	return groups
}

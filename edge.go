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
	"sort"
)

// Edge is a single mDBG edge: the substring of some read spanning from
// the start of the FromID minimizer through the end of the ToID
// minimizer. Edges carry the nucleotide content; minimizer nodes do
// not.
type Edge struct {
	FromID   uint32
	ToID     uint32
	Sequence string
}

// ExtractEdges converts one read's ordered minimizer occurrences into
// edges (spec §4.6): consecutive occurrences become an edge unless
// they share an ID (a self-loop from tandem-close minimizers, which is
// skipped), with the sequence clamped to the read's length.
func ExtractEdges(read []byte, occs []Occurrence, k int) []Edge {
	if len(occs) < 2 {
		return nil
	}
	edges := make([]Edge, 0, len(occs)-1)
	for i := 0; i+1 < len(occs); i++ {
		from, to := occs[i], occs[i+1]
		if from.ID == to.ID {
			continue
		}
		end := to.Position + k
		if end > len(read) {
			end = len(read)
		}
		edges = append(edges, Edge{
			FromID:   from.ID,
			ToID:     to.ID,
			Sequence: string(read[from.Position:end]),
		})
	}
	return edges
}

// edgeKey identifies an edge for deduplication (spec §3: a set, not a
// multiset, keyed by the full (from, to, sequence) triple).
type edgeKey struct {
	from, to uint32
	seq      string
}

// EdgeSet accumulates the deduplicated edge set and the degree maps
// derived from it, as pass 2's build driver owns them exclusively
// (spec §3 Ownership).
type EdgeSet struct {
	seen       map[edgeKey]struct{}
	InDegrees  map[uint32]int
	OutDegrees map[uint32]int
}

// NewEdgeSet returns an empty set.
func NewEdgeSet() *EdgeSet {
	return &EdgeSet{
		seen:       make(map[edgeKey]struct{}),
		InDegrees:  make(map[uint32]int),
		OutDegrees: make(map[uint32]int),
	}
}

// Add inserts edge if not already present, updating degree maps only
// on first insertion (spec §3: degree maps are computed from the
// deduplicated set).
func (s *EdgeSet) Add(e Edge) {
	key := edgeKey{e.FromID, e.ToID, e.Sequence}
	if _, dup := s.seen[key]; dup {
		return
	}
	s.seen[key] = struct{}{}
	s.OutDegrees[e.FromID]++
	s.InDegrees[e.ToID]++
}

// WriteTo serializes every edge as "<fromId>\t<toId>\t<sequence>\n"
// (spec §4.7's on-disk record format), ordered by (fromId, toId,
// sequence) so that identical input always yields an identical file;
// the external sort stage still performs the fromId ordering that
// assembly relies on.
func (s *EdgeSet) WriteTo(w io.Writer) (int64, error) {
	keys := make([]edgeKey, 0, len(s.seen))
	for key := range s.seen {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].from != keys[j].from {
			return keys[i].from < keys[j].from
		}
		if keys[i].to != keys[j].to {
			return keys[i].to < keys[j].to
		}
		return keys[i].seq < keys[j].seq
	})
	bw := bufio.NewWriter(w)
	var n int64
	for _, key := range keys {
		nn, err := fmt.Fprintf(bw, "%d\t%d\t%s\n", key.from, key.to, key.seq)
		n += int64(nn)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}

// BuildEdges runs pass 2 over every read: rediscover minimizer
// occurrences against the closed table, extract edges, and accumulate
// them (with degree maps) into the returned EdgeSet.
func BuildEdges(reads [][]byte, k int, density float64, seen *seenFilters, table *IDTable) *EdgeSet {
	set := NewEdgeSet()
	for _, read := range reads {
		for _, occs := range OccurrencesInRead(read, k, density, seen, table) {
			for _, e := range ExtractEdges(read, occs, k) {
				set.Add(e)
			}
		}
	}
	return set
}

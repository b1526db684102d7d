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
	"bytes"
	"strings"
	"testing"
)

func TestExtractEdgesFewerThanTwoOccurrences(t *testing.T) {
	if edges := ExtractEdges([]byte("ACGTACGT"), nil, 4); edges != nil {
		t.Errorf("expected no edges for nil occurrences, got %v", edges)
	}
	occs := []Occurrence{{ID: 0, Position: 0}}
	if edges := ExtractEdges([]byte("ACGTACGT"), occs, 4); edges != nil {
		t.Errorf("expected no edges for a single occurrence, got %v", edges)
	}
}

func TestExtractEdgesSkipsSelfLoops(t *testing.T) {
	occs := []Occurrence{{ID: 3, Position: 0}, {ID: 3, Position: 2}}
	if edges := ExtractEdges([]byte("ACGTACGT"), occs, 4); len(edges) != 0 {
		t.Errorf("tandem occurrences of the same minimizer must not yield an edge, got %v", edges)
	}
}

func TestExtractEdgesSequenceSpan(t *testing.T) {
	read := []byte("ACGTACGTACGT")
	occs := []Occurrence{{ID: 1, Position: 0}, {ID: 2, Position: 4}}
	edges := ExtractEdges(read, occs, 4)
	if len(edges) != 1 {
		t.Fatalf("expected 1 edge, got %d", len(edges))
	}
	want := string(read[0:8])
	if edges[0].Sequence != want {
		t.Errorf("edge sequence = %q, want %q", edges[0].Sequence, want)
	}
	if edges[0].FromID != 1 || edges[0].ToID != 2 {
		t.Errorf("edge ids = (%d, %d), want (1, 2)", edges[0].FromID, edges[0].ToID)
	}
}

func TestExtractEdgesClampsToReadLength(t *testing.T) {
	read := []byte("ACGTACGT")
	occs := []Occurrence{{ID: 1, Position: 0}, {ID: 2, Position: 6}}
	edges := ExtractEdges(read, occs, 4)
	if len(edges) != 1 {
		t.Fatalf("expected 1 edge, got %d", len(edges))
	}
	if edges[0].Sequence != string(read) {
		t.Errorf("edge sequence should clamp to read length, got %q", edges[0].Sequence)
	}
}

func TestEdgeSetDeduplicates(t *testing.T) {
	set := NewEdgeSet()
	e := Edge{FromID: 1, ToID: 2, Sequence: "ACGTACGT"}
	set.Add(e)
	set.Add(e)
	if len(set.seen) != 1 {
		t.Fatalf("expected 1 distinct edge, got %d", len(set.seen))
	}
	if set.OutDegrees[1] != 1 || set.InDegrees[2] != 1 {
		t.Errorf("degree maps must reflect the deduplicated set, got out=%d in=%d", set.OutDegrees[1], set.InDegrees[2])
	}
}

func TestEdgeSetWriteToFormat(t *testing.T) {
	set := NewEdgeSet()
	set.Add(Edge{FromID: 5, ToID: 9, Sequence: "ACGTACGT"})

	var buf bytes.Buffer
	if _, err := set.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	line := strings.TrimSuffix(buf.String(), "\n")
	if line != "5\t9\tACGTACGT" {
		t.Errorf("record format = %q, want %q", line, "5\t9\tACGTACGT")
	}
}

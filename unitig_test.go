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
	"os"
	"path/filepath"
	"testing"
)

func writeGraphFile(t *testing.T, lines []string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "edges_sorted")
	content := ""
	for _, l := range lines {
		content += l + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestAssembleUnitigsLinearChain(t *testing.T) {
	lines := []string{
		"0\t1\tACGTACGT",
		"1\t2\tACGTAAAA",
	}
	path := writeGraphFile(t, lines)

	inDeg := map[uint32]int{1: 1, 2: 1}
	outDeg := map[uint32]int{0: 1, 1: 1}

	g, err := LoadGraph(path, inDeg, outDeg, 4)
	if err != nil {
		t.Fatalf("LoadGraph: %v", err)
	}
	unitigs := AssembleUnitigs(g, 4, false)
	if len(unitigs) != 1 {
		t.Fatalf("expected 1 unitig, got %d: %v", len(unitigs), unitigs)
	}
	want := "ACGTACGT" + "AAAA" // second edge's suffix past the k-base overlap
	if unitigs[0] != want {
		t.Errorf("unitig = %q, want %q", unitigs[0], want)
	}
}

func TestAssembleUnitigsPureCycle(t *testing.T) {
	lines := []string{
		"0\t1\tACGT",
		"1\t0\tCGTA",
	}
	path := writeGraphFile(t, lines)

	inDeg := map[uint32]int{0: 1, 1: 1}
	outDeg := map[uint32]int{0: 1, 1: 1}

	g, err := LoadGraph(path, inDeg, outDeg, 4)
	if err != nil {
		t.Fatalf("LoadGraph: %v", err)
	}
	unitigs := AssembleUnitigs(g, 4, false)
	if len(unitigs) != 1 {
		t.Fatalf("expected the pure cycle to be recovered as 1 unitig, got %d: %v", len(unitigs), unitigs)
	}
}

func TestAssembleUnitigsEmptyGraphProducesNoUnitigs(t *testing.T) {
	path := writeGraphFile(t, nil)
	g, err := LoadGraph(path, map[uint32]int{}, map[uint32]int{}, 5)
	if err != nil {
		t.Fatalf("LoadGraph: %v", err)
	}
	unitigs := AssembleUnitigs(g, 5, false)
	if len(unitigs) != 0 {
		t.Errorf("expected 0 unitigs for an empty graph, got %d", len(unitigs))
	}
}

func TestPopBubblesCollapsesParallelPaths(t *testing.T) {
	lines := []string{
		"0\t1\tACGTT",
		"0\t2\tACGTA",
		"1\t3\tTTTTA",
		"2\t3\tAAATA",
	}
	path := writeGraphFile(t, lines)

	inDeg := map[uint32]int{1: 1, 2: 1, 3: 2}
	outDeg := map[uint32]int{0: 2, 1: 1, 2: 1}

	g, err := LoadGraph(path, inDeg, outDeg, 4)
	if err != nil {
		t.Fatalf("LoadGraph: %v", err)
	}
	unitigs := AssembleUnitigs(g, 4, true)
	if len(unitigs) != 1 {
		t.Fatalf("expected bubble popping to leave exactly 1 path, got %d: %v", len(unitigs), unitigs)
	}
}

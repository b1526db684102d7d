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
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestParseEdgeLine(t *testing.T) {
	rec, err := parseEdgeLine("12\t34\tACGTACGT")
	if err != nil {
		t.Fatalf("parseEdgeLine: %v", err)
	}
	if rec.fromID != 12 {
		t.Errorf("fromID = %d, want 12", rec.fromID)
	}
	if _, err := parseEdgeLine("no-tab-here"); err == nil {
		t.Error("expected error for a line with no tab")
	}
}

func TestExternalSortEdgesOrdersByFromID(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "unsorted")
	dst := filepath.Join(dir, "sorted")

	lines := []string{
		"9\t1\tACGTACGT",
		"2\t1\tTTTTACGT",
		"5\t1\tGGGGACGT",
		"2\t9\tCCCCACGT",
	}
	if err := os.WriteFile(src, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := ExternalSortEdges(src, dst, dir); err != nil {
		t.Fatalf("ExternalSortEdges: %v", err)
	}

	f, err := os.Open(dst)
	if err != nil {
		t.Fatalf("open sorted file: %v", err)
	}
	defer f.Close()

	var fromIDs []int
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		rec, err := parseEdgeLine(sc.Text())
		if err != nil {
			t.Fatalf("parseEdgeLine: %v", err)
		}
		fromIDs = append(fromIDs, int(rec.fromID))
	}
	if len(fromIDs) != len(lines) {
		t.Fatalf("expected %d records, got %d", len(lines), len(fromIDs))
	}
	for i := 1; i < len(fromIDs); i++ {
		if fromIDs[i] < fromIDs[i-1] {
			t.Fatalf("output not sorted by fromID: %v", fromIDs)
		}
	}
}

func TestExternalSortEdgesMultipleChunks(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "unsorted")
	dst := filepath.Join(dir, "sorted")

	var sb strings.Builder
	n := chunkLines*2 + 17
	for i := n; i > 0; i-- {
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString("\t0\tACGT\n")
	}
	if err := os.WriteFile(src, []byte(sb.String()), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := ExternalSortEdges(src, dst, dir); err != nil {
		t.Fatalf("ExternalSortEdges: %v", err)
	}

	f, err := os.Open(dst)
	if err != nil {
		t.Fatalf("open sorted file: %v", err)
	}
	defer f.Close()

	prev := -1
	count := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		rec, err := parseEdgeLine(sc.Text())
		if err != nil {
			t.Fatalf("parseEdgeLine: %v", err)
		}
		if int(rec.fromID) < prev {
			t.Fatalf("merge produced out-of-order output at record %d", count)
		}
		prev = int(rec.fromID)
		count++
	}
	if count != n {
		t.Fatalf("expected %d records after merge, got %d", n, count)
	}

	leftover, _ := filepath.Glob(filepath.Join(dir, "edges_chunk_*.lz4"))
	if len(leftover) != 0 {
		t.Errorf("expected temp chunk files to be removed, found %v", leftover)
	}
}

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
	"container/heap"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pierrec/lz4/v4"
	"github.com/pkg/errors"
)

// edgeRecord is one line of the unsorted/sorted edge file, parsed
// enough to sort by fromId (spec §4.7).
type edgeRecord struct {
	fromID uint32
	line   string // full "<fromId>\t<toId>\t<sequence>" line, no trailing newline
}

func parseEdgeLine(line string) (edgeRecord, error) {
	tab := strings.IndexByte(line, '\t')
	if tab < 0 {
		return edgeRecord{}, errors.Errorf("mdbg: malformed edge record %q", line)
	}
	from, err := strconv.ParseUint(line[:tab], 10, 32)
	if err != nil {
		return edgeRecord{}, errors.Wrapf(err, "mdbg: malformed edge record %q", line)
	}
	return edgeRecord{fromID: uint32(from), line: line}, nil
}

type edgeRecordsByFromID []edgeRecord

func (s edgeRecordsByFromID) Len() int           { return len(s) }
func (s edgeRecordsByFromID) Less(i, j int) bool { return s[i].fromID < s[j].fromID }
func (s edgeRecordsByFromID) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// chunkLines bounds how many records accumulate in memory per sort run
// before being flushed to a temp chunk file.
const chunkLines = 200000

// ExternalSortEdges sorts the edge file at srcPath by ascending fromId
// (spec §4.7) via classical external merge sort: fixed-size in-memory
// chunks, each sorted and spilled to an lz4-compressed run file under
// workDir, then merged with a container/heap k-way merge into dstPath.
// Temp run files are removed on success.
func ExternalSortEdges(srcPath, dstPath, workDir string) error {
	chunkFiles, err := spillSortedChunks(srcPath, workDir)
	if err != nil {
		return err
	}
	defer func() {
		for _, f := range chunkFiles {
			os.Remove(f)
		}
	}()

	return mergeChunks(chunkFiles, dstPath)
}

func spillSortedChunks(srcPath, workDir string) ([]string, error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var chunkFiles []string
	buf := make([]edgeRecord, 0, chunkLines)
	chunkIdx := 0

	flush := func() error {
		if len(buf) == 0 {
			return nil
		}
		sort.Sort(edgeRecordsByFromID(buf))
		name := chunkFileName(workDir, chunkIdx)
		chunkIdx++
		if err := writeChunk(name, buf); err != nil {
			return err
		}
		chunkFiles = append(chunkFiles, name)
		buf = buf[:0]
		return nil
	}

	for sc.Scan() {
		rec, err := parseEdgeLine(sc.Text())
		if err != nil {
			return nil, err
		}
		buf = append(buf, rec)
		if len(buf) >= chunkLines {
			if err := flush(); err != nil {
				return nil, err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return chunkFiles, nil
}

func chunkFileName(workDir string, i int) string {
	return filepath.Join(workDir, fmt.Sprintf("edges_chunk_%05d.lz4", i))
}

func writeChunk(path string, recs []edgeRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	lzw := lz4.NewWriter(f)
	defer lzw.Close()
	bw := bufio.NewWriter(lzw)

	for _, r := range recs {
		if _, err := bw.WriteString(r.line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// chunkCursor reads one run file's records in order for the merge.
type chunkCursor struct {
	f  *os.File
	sc *bufio.Scanner
}

func openChunkCursor(path string) (*chunkCursor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	lzr := lz4.NewReader(f)
	sc := bufio.NewScanner(lzr)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &chunkCursor{f: f, sc: sc}, nil
}

func (c *chunkCursor) next() (edgeRecord, bool, error) {
	if !c.sc.Scan() {
		return edgeRecord{}, false, c.sc.Err()
	}
	rec, err := parseEdgeLine(c.sc.Text())
	return rec, true, err
}

func (c *chunkCursor) close() {
	c.f.Close()
}

// heapItem is one run's current head record, tracked in the min-heap
// by fromId (spec §4.7's k-way merge).
type heapItem struct {
	rec       edgeRecord
	cursorIdx int
}

type mergeHeap []heapItem

func (h mergeHeap) Len() int            { return len(h) }
func (h mergeHeap) Less(i, j int) bool  { return h[i].rec.fromID < h[j].rec.fromID }
func (h mergeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *mergeHeap) Push(x interface{}) { *h = append(*h, x.(heapItem)) }
func (h *mergeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

func mergeChunks(chunkFiles []string, dstPath string) error {
	dst, err := os.Create(dstPath)
	if err != nil {
		return err
	}
	defer dst.Close()
	bw := bufio.NewWriter(dst)
	defer bw.Flush()

	cursors := make([]*chunkCursor, len(chunkFiles))
	for i, path := range chunkFiles {
		c, err := openChunkCursor(path)
		if err != nil {
			return err
		}
		cursors[i] = c
	}
	defer func() {
		for _, c := range cursors {
			c.close()
		}
	}()

	h := &mergeHeap{}
	heap.Init(h)
	for i, c := range cursors {
		rec, ok, err := c.next()
		if err != nil {
			return err
		}
		if ok {
			heap.Push(h, heapItem{rec: rec, cursorIdx: i})
		}
	}

	for h.Len() > 0 {
		top := heap.Pop(h).(heapItem)
		if _, err := bw.WriteString(top.rec.line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}

		rec, ok, err := cursors[top.cursorIdx].next()
		if err != nil {
			return err
		}
		if ok {
			heap.Push(h, heapItem{rec: rec, cursorIdx: top.cursorIdx})
		}
	}
	return nil
}

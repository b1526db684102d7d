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
	"sort"
	"strconv"
	"strings"
)

// BubbleMaxDepth and BubbleMaxLength bound the optional bubble resolver
// (spec §4.8 and Design Notes: tunables fixed at 20/1500).
const (
	BubbleMaxDepth  = 20
	BubbleMaxLength = 1500
)

// adjEdge is one outgoing edge in the in-memory adjacency used during
// assembly.
type adjEdge struct {
	to  uint32
	seq string
}

// Graph is the in-memory adjacency loaded from the sorted edge file
// (spec §4.8: "streaming" refers to edges arriving sorted; adjacency
// itself is held in memory during assembly).
type Graph struct {
	adjacency  map[uint32][]adjEdge
	inDegrees  map[uint32]int
	outDegrees map[uint32]int
	traversed  map[uint64]bool
	k          int
}

func edgeTraversalKey(from, to uint32) uint64 {
	return uint64(from)<<32 | uint64(to)
}

// LoadGraph reads the sorted edge file at path and builds the
// adjacency map in a single pass.
func LoadGraph(path string, inDegrees, outDegrees map[uint32]int, k int) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g := &Graph{
		adjacency:  make(map[uint32][]adjEdge),
		inDegrees:  inDegrees,
		outDegrees: outDegrees,
		traversed:  make(map[uint64]bool),
		k:          k,
	}

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := sc.Text()
		parts := strings.SplitN(line, "\t", 3)
		if len(parts) != 3 {
			continue
		}
		from, err := strconv.ParseUint(parts[0], 10, 32)
		if err != nil {
			return nil, err
		}
		to, err := strconv.ParseUint(parts[1], 10, 32)
		if err != nil {
			return nil, err
		}
		fromID := uint32(from)
		g.adjacency[fromID] = append(g.adjacency[fromID], adjEdge{to: uint32(to), seq: parts[2]})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Graph) isSimple(node uint32) bool {
	return g.inDegrees[node] == 1 && g.outDegrees[node] == 1
}

// AssembleUnitigs walks the graph per spec §4.8: from every non-simple
// node, follow each untraversed outgoing edge through a chain of
// simple nodes until a non-simple node, an already-traversed edge, or
// a dead end is reached. If popBubbles is set, parallel simple paths
// between the same pair of non-simple endpoints are collapsed first.
func AssembleUnitigs(g *Graph, k int, popBubbles bool) []string {
	allNodes := make(map[uint32]struct{})
	for n := range g.inDegrees {
		allNodes[n] = struct{}{}
	}
	for n := range g.outDegrees {
		allNodes[n] = struct{}{}
	}

	ordered := make([]uint32, 0, len(allNodes))
	for n := range allNodes {
		ordered = append(ordered, n)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	if popBubbles {
		g.popBubbles(ordered)
	}

	var unitigs []string
	for _, u := range ordered {
		if g.isSimple(u) {
			continue
		}
		for _, e := range g.adjacency[u] {
			if g.traversed[edgeTraversalKey(u, e.to)] {
				continue
			}
			if seq := g.walkPath(u, e, k); len(seq) >= k {
				unitigs = append(unitigs, seq)
			}
		}
	}

	unitigs = append(unitigs, g.recoverPureCycles(k)...)
	return unitigs
}

// walkPath follows one chain starting at firstEdge (spec §4.8 step 3).
func (g *Graph) walkPath(start uint32, firstEdge adjEdge, k int) string {
	seq := firstEdge.seq
	g.traversed[edgeTraversalKey(start, firstEdge.to)] = true
	cur := firstEdge.to

	for g.isSimple(cur) {
		outs := g.adjacency[cur]
		if len(outs) == 0 {
			break
		}
		next := outs[0]
		if g.traversed[edgeTraversalKey(cur, next.to)] {
			break
		}
		if len(next.seq) <= k {
			g.traversed[edgeTraversalKey(cur, next.to)] = true
			break
		}
		seq += next.seq[k:]
		g.traversed[edgeTraversalKey(cur, next.to)] = true
		cur = next.to
	}
	return seq
}

// recoverPureCycles implements the spec §4.8 SHOULD: pure cycles
// (every vertex in=out=1, forming a ring) are invisible to the
// non-simple-starts rule, so a second pass starts a walk from any
// unvisited edge, detects the first revisit, and emits the cycle minus
// the duplicate closing vertex.
func (g *Graph) recoverPureCycles(k int) []string {
	var cycles []string

	froms := make([]uint32, 0, len(g.adjacency))
	for f := range g.adjacency {
		froms = append(froms, f)
	}
	sort.Slice(froms, func(i, j int) bool { return froms[i] < froms[j] })

	for _, start := range froms {
		for _, e := range g.adjacency[start] {
			if g.traversed[edgeTraversalKey(start, e.to)] {
				continue
			}
			if !g.isSimple(start) || !g.isSimple(e.to) {
				continue
			}
			seq := e.seq
			g.traversed[edgeTraversalKey(start, e.to)] = true
			cur := e.to
			closed := false
			for g.isSimple(cur) {
				outs := g.adjacency[cur]
				if len(outs) == 0 {
					break
				}
				next := outs[0]
				key := edgeTraversalKey(cur, next.to)
				if g.traversed[key] {
					break
				}
				if next.to == start {
					closed = true
					g.traversed[key] = true
					break
				}
				if len(next.seq) > k {
					seq += next.seq[k:]
				}
				g.traversed[key] = true
				cur = next.to
			}
			if closed && len(seq) >= k {
				cycles = append(cycles, seq)
			}
		}
	}
	return cycles
}

// popBubbles collapses, for every non-simple node pair with two
// parallel simple paths between them, all but the lexicographically
// smallest path, bounded by BubbleMaxDepth/BubbleMaxLength. Collapsed
// paths' edges are marked traversed so AssembleUnitigs's main loop
// skips them entirely.
func (g *Graph) popBubbles(nonSimpleCandidates []uint32) {
	for _, u := range nonSimpleCandidates {
		if g.isSimple(u) {
			continue
		}
		paths := g.enumerateShortSimplePaths(u)
		byEnd := make(map[uint32][]simplePath)
		for _, p := range paths {
			byEnd[p.end] = append(byEnd[p.end], p)
		}
		for end, group := range byEnd {
			if len(group) < 2 || g.isSimple(end) {
				continue
			}
			sort.Slice(group, func(i, j int) bool { return group[i].seq < group[j].seq })
			for _, loser := range group[1:] {
				for i := 0; i+1 < len(loser.nodes); i++ {
					g.traversed[edgeTraversalKey(loser.nodes[i], loser.nodes[i+1])] = true
				}
			}
		}
	}
}

type simplePath struct {
	end   uint32
	seq   string
	nodes []uint32
}

// enumerateShortSimplePaths walks, from u, every chain of simple nodes
// up to BubbleMaxDepth edges or BubbleMaxLength sequence bytes,
// stopping at the first non-simple node it reaches (a bubble
// endpoint).
func (g *Graph) enumerateShortSimplePaths(u uint32) []simplePath {
	var out []simplePath
	for _, e0 := range g.adjacency[u] {
		nodes := []uint32{u, e0.to}
		seq := e0.seq
		cur := e0.to
		depth := 1
		for g.isSimple(cur) && depth < BubbleMaxDepth && len(seq) < BubbleMaxLength {
			outs := g.adjacency[cur]
			if len(outs) == 0 {
				break
			}
			next := outs[0]
			if len(next.seq) > g.k {
				seq += next.seq[g.k:]
			}
			nodes = append(nodes, next.to)
			cur = next.to
			depth++
		}
		out = append(out, simplePath{end: cur, seq: seq, nodes: nodes})
	}
	return out
}

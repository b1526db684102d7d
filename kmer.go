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

// MaxK is the largest supported k-mer size: a k-mer must fit a 2k-bit
// field inside a uint64.
const MaxK = 31

// Kmer is a k-mer packed into the low 2k bits of a uint64. The first
// (leftmost) base of the k-mer occupies the highest-order two bits of
// the 2k-bit field.
type Kmer uint64

// Reverse returns the code of the reversed (not complemented) k-mer.
func Reverse(code Kmer, k int) (c Kmer) {
	for i := 0; i < k; i++ {
		c <<= 2
		c |= code & 3
		code >>= 2
	}
	return
}

// Complement returns the code of the complemented (not reversed) k-mer:
// each 2-bit pair is XORed with 11.
func Complement(code Kmer, k int) (c Kmer) {
	for i := 0; i < k; i++ {
		c |= (code&3 ^ 3) << uint(i<<1)
		code >>= 2
	}
	return
}

// RevComp returns the reverse complement of a k-mer: pair order is
// reversed and each pair is XORed with 11.
func RevComp(code Kmer, k int) (c Kmer) {
	for i := 0; i < k; i++ {
		c <<= 2
		c |= code&3 ^ 3
		code >>= 2
	}
	return
}

// Canonical returns the lexicographically smaller (numerically smaller,
// since the bit layout preserves lexicographic order) of code and its
// reverse complement. Canonicalization is strand-agnostic: a k-mer and
// its reverse complement always map to the same canonical identity.
func Canonical(code Kmer, k int) Kmer {
	rc := RevComp(code, k)
	if rc < code {
		return rc
	}
	return code
}

// Decode converts a k-mer code back to its ASCII representation.
func Decode(code Kmer, k int) []byte {
	out := make([]byte, k)
	for i := k - 1; i >= 0; i-- {
		out[i] = bit2base[code&3]
		code >>= 2
	}
	return out
}

// String returns the ASCII representation of the k-mer.
func (code Kmer) String(k int) string {
	return string(Decode(code, k))
}

// RunIterator rolls successive k-mers out of a single Run (a maximal
// ACGT stretch of a read): each step shifts the window left two bits,
// ORs in the next base, and masks to 2k bits. It never crosses a Run
// boundary, so every reported position is a true raw-read position.
type RunIterator struct {
	run    Run
	k      int
	mask   Kmer
	idx    int // next base to roll in, within run.Seq
	code   Kmer
	primed bool
}

// NewRunIterator returns an iterator over all k-mers of run, following
// the teacher's NewKmerIterator/NewHashIterator idiom of a sentinel
// error rather than a bare ok bool: ErrEmptySeq if run is empty,
// ErrShortSeq if it is shorter than k.
func NewRunIterator(run Run, k int) (*RunIterator, error) {
	if len(run.Seq) == 0 {
		return nil, ErrEmptySeq
	}
	if len(run.Seq) < k {
		return nil, ErrShortSeq
	}
	return &RunIterator{
		run:  run,
		k:    k,
		mask: (Kmer(1) << uint(2*k)) - 1,
	}, nil
}

// Next returns the next k-mer and the 0-based position, in the original
// raw read, of its first base. ok is false once the run is exhausted.
func (it *RunIterator) Next() (code Kmer, pos int, ok bool) {
	if !it.primed {
		var c Kmer
		for i := 0; i < it.k; i++ {
			c = (c << 2) | Kmer(base2bit[it.run.Seq[i]])
		}
		it.code = c
		it.idx = it.k
		it.primed = true
		return it.code, it.run.Offset, true
	}
	if it.idx >= len(it.run.Seq) {
		return 0, 0, false
	}
	it.code = ((it.code << 2) | Kmer(base2bit[it.run.Seq[it.idx]])) & it.mask
	startPos := it.run.Offset + it.idx - it.k + 1
	it.idx++
	return it.code, startPos, true
}

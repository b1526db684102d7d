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

// base2bit maps an ASCII base to its 2-bit code. Only A/C/G/T (either case)
// are recognized; everything else, including N, is rejected by isACGT.
//
//	A  00
//	C  01
//	G  10
//	T  11
var base2bit = [256]byte{}

var bit2base = [4]byte{'A', 'C', 'G', 'T'}

func init() {
	for i := range base2bit {
		base2bit[i] = 0xff
	}
	base2bit['A'], base2bit['a'] = 0, 0
	base2bit['C'], base2bit['c'] = 1, 1
	base2bit['G'], base2bit['g'] = 2, 2
	base2bit['T'], base2bit['t'] = 3, 3
}

func isACGT(b byte) bool {
	return base2bit[b] != 0xff
}

// EncodedSequence packs ASCII DNA into 2-bit codes, four per byte,
// big-endian within the byte: the base at position i sits at shift
// (3 - i%4)*2. Non-ACGT characters (including N) are silently skipped
// during packing, so validBaseCount may be smaller than len(raw), and
// positions in the encoded form do not correspond 1:1 with raw-string
// positions. Use SplitRuns to recover a decomposition that does preserve raw
// positions.
type EncodedSequence struct {
	packed         []byte
	validBaseCount int
}

// Encode packs raw ASCII DNA into an EncodedSequence, dropping any
// non-ACGT character rather than replacing it.
func Encode(raw []byte) *EncodedSequence {
	packed := make([]byte, 0, (len(raw)+3)/4)
	var cur byte
	var n int
	for _, b := range raw {
		code := base2bit[b]
		if code == 0xff {
			continue
		}
		cur |= code << (uint(3-(n%4)) * 2)
		n++
		if n%4 == 0 {
			packed = append(packed, cur)
			cur = 0
		}
	}
	if n%4 != 0 {
		packed = append(packed, cur)
	}
	return &EncodedSequence{packed: packed, validBaseCount: n}
}

// ValidBaseCount returns the number of bases actually packed.
func (s *EncodedSequence) ValidBaseCount() int {
	return s.validBaseCount
}

// GetBaseAt returns the 2-bit code at encoded position pos, pos in
// [0, ValidBaseCount()).
func (s *EncodedSequence) GetBaseAt(pos int) byte {
	b := s.packed[pos/4]
	shift := uint(3-(pos%4)) * 2
	return (b >> shift) & 3
}

// Decode converts an EncodedSequence back into an ASCII byte slice,
// restricted to the bases that were actually packed in.
func (s *EncodedSequence) Decode() []byte {
	out := make([]byte, s.validBaseCount)
	for i := range out {
		out[i] = bit2base[s.GetBaseAt(i)]
	}
	return out
}

// Run is a maximal substring of raw consisting solely of ACGT characters,
// together with its start offset in raw. K-mers never roll across a Run
// boundary, so a Run's internal positions always equal raw-string
// positions (Offset+i), resolving the N-gap ambiguity from the original
// design (see DESIGN.md).
type Run struct {
	Seq    []byte
	Offset int
}

// SplitRuns decomposes raw into its maximal ACGT runs, in order.
func SplitRuns(raw []byte) []Run {
	var runs []Run
	i := 0
	for i < len(raw) {
		if !isACGT(raw[i]) {
			i++
			continue
		}
		start := i
		for i < len(raw) && isACGT(raw[i]) {
			i++
		}
		runs = append(runs, Run{Seq: raw[start:i], Offset: start})
	}
	return runs
}

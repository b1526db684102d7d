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

import "math"

// bloomMix avalanches a k-mer code before it is handed to blobloom,
// which expects a well-distributed 64-bit hash rather than the raw
// 2-bit-packed integer (whose low bits are highly structured).
//
// https://gist.github.com/badboy/6267743
func bloomMix(key uint64) uint64 {
	key = (^key) + (key << 21)
	key = key ^ (key >> 24)
	key = (key + (key << 3)) + (key << 8)
	key = key ^ (key >> 14)
	key = (key + (key << 2)) + (key << 4)
	key = key ^ (key >> 28)
	key = key + (key << 31)
	return key
}

// optimalBloomParams returns the (nbits, nhashes) blobloom.New
// parameters for n expected entries at the given false-positive rate,
// using the standard Bloom filter sizing formulas.
func optimalBloomParams(n uint64, fpRate float64) (nbits uint64, nhashes int) {
	if n == 0 {
		n = 1
	}
	m := optimalNumBits(n, fpRate)
	k := optimalNumHashes(m, n)
	return m, k
}

func optimalNumBits(n uint64, p float64) uint64 {
	const ln2Squared = 0.4804530139182014 // ln(2)^2
	bits := -float64(n) * math.Log(p) / ln2Squared
	if bits < 64 {
		bits = 64
	}
	return uint64(bits)
}

func optimalNumHashes(m, n uint64) int {
	if n == 0 {
		return 1
	}
	k := int(float64(m) / float64(n) * math.Ln2)
	if k < 1 {
		k = 1
	}
	if k > 30 {
		k = 30
	}
	return k
}

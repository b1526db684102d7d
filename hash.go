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

// fnv1aSeed and fnv1aPrime are the 64-bit FNV-1a parameters used for
// minimizer admission, independent of the Bloom filter's own hash.
const (
	fnv1aSeed  uint64 = 0xcbf29ce484222325
	fnv1aPrime uint64 = 0x100000001b3
)

// fnv1a64 hashes a k-mer's 8 bytes, most-significant byte first, with
// the standard FNV-1a mix: h ^= b; h *= prime.
func fnv1a64(code Kmer) uint64 {
	h := fnv1aSeed
	x := uint64(code)
	for shift := 56; shift >= 0; shift -= 8 {
		b := byte(x >> uint(shift))
		h ^= uint64(b)
		h *= fnv1aPrime
	}
	return h
}

// minimizerMask clears the sign bit so the hash is compared as a
// nonnegative 63-bit value against the density threshold.
const minimizerMask uint64 = 0x7FFF_FFFF_FFFF_FFFF

// minimizerThreshold returns floor(density * 2^63).
func minimizerThreshold(density float64) uint64 {
	return uint64(density * float64(minimizerMask+1))
}

// isMinimizer reports whether canonical k-mer code is admitted as a
// minimizer at the given density.
func isMinimizer(code Kmer, density float64) bool {
	return fnv1a64(code)&minimizerMask < minimizerThreshold(density)
}

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

import "testing"

func TestFnv1a64Deterministic(t *testing.T) {
	code := encodeMer([]byte("ACGTACGTACG"))
	if fnv1a64(code) != fnv1a64(code) {
		t.Fatal("fnv1a64 must be deterministic for the same code")
	}
}

func TestFnv1a64Distinguishes(t *testing.T) {
	a := encodeMer([]byte("ACGTACGTACG"))
	b := encodeMer([]byte("ACGTACGTACT"))
	if fnv1a64(a) == fnv1a64(b) {
		t.Fatal("expected different hashes for different k-mers (collision is possible but astronomically unlikely here)")
	}
}

func TestMinimizerThresholdMonotonic(t *testing.T) {
	if minimizerThreshold(0.1) >= minimizerThreshold(0.5) {
		t.Fatal("threshold must grow with density")
	}
	if minimizerThreshold(1.0) != minimizerMask+1 {
		t.Errorf("density=1.0 threshold = %d, want %d", minimizerThreshold(1.0), minimizerMask+1)
	}
}

func TestIsMinimizerAtDensityOne(t *testing.T) {
	code := encodeMer([]byte("ACGTACGTACG"))
	if !isMinimizer(code, 1.0) {
		t.Fatal("density=1.0 must admit every k-mer")
	}
}

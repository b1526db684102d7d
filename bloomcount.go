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
	"sync"

	"github.com/greatroar/blobloom"
)

// seenFilters is the pair of Bloom filters built by the two-pass k-mer
// frequency counter: seenOnce accumulates every observed canonical
// k-mer, seenTwice accumulates only those already present in seenOnce,
// approximating the set of k-mers with abundance >= 2.
type seenFilters struct {
	once  *blobloom.Filter
	twice *blobloom.Filter
	k     int
}

// mightContainTwice reports whether code has (probably) been observed
// at least twice across the counted dataset. code need not already be
// canonical.
func (s *seenFilters) mightContainTwice(code Kmer) bool {
	return s.twice.Has(bloomMix(uint64(Canonical(code, s.k))))
}

// countKmers runs the two-pass Bloom counter over a batch of reads
// already buffered in memory (the producer side, FASTQ scanning, is
// cheap enough that re-scanning twice from a slice costs far less than
// re-reading the file from disk for each pass).
func countKmers(reads [][]byte, k int, threads int, expectedKmers uint64, fpRate float64) *seenFilters {
	nbits, nhashes := optimalBloomParams(expectedKmers, fpRate)

	seenOnce := runBloomPass(reads, k, threads, nbits, nhashes, nil)
	seenTwice := runBloomPass(reads, k, threads, nbits, nhashes, seenOnce)

	return &seenFilters{once: seenOnce, twice: seenTwice, k: k}
}

// runBloomPass is one producer/threads-consumer sweep over reads. When
// gate is non-nil (pass 2), a k-mer is only inserted into the result
// filter if gate.Has reports it as already seen (the pass-1 result).
func runBloomPass(reads [][]byte, k, threads int, nbits uint64, nhashes int, gate *blobloom.Filter) *blobloom.Filter {
	if threads < 1 {
		threads = 1
	}

	jobs := make(chan []byte, 1000)
	go func() {
		for _, r := range reads {
			jobs <- r
		}
		close(jobs)
	}()

	locals := make([]*blobloom.Filter, threads)
	var wg sync.WaitGroup
	for w := 0; w < threads; w++ {
		local := blobloom.New(nbits, nhashes)
		locals[w] = local
		wg.Add(1)
		go func(local *blobloom.Filter) {
			defer wg.Done()
			for read := range jobs {
				for _, run := range SplitRuns(read) {
					it, err := NewRunIterator(run, k)
					if err != nil {
						continue
					}
					for {
						code, _, ok := it.Next()
						if !ok {
							break
						}
						h := bloomMix(uint64(Canonical(code, k)))
						if gate != nil && !gate.Has(h) {
							continue
						}
						local.Add(h)
					}
				}
			}
		}(local)
	}
	wg.Wait()

	merged := blobloom.New(nbits, nhashes)
	for _, l := range locals {
		merged.Union(l)
	}
	return merged
}

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

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	logging "github.com/shenwei356/go-logging"
)

var log = logging.MustGetLogger("mdbg")

// BuildStats summarizes a completed run. It is returned by Build and
// printed by the `build` CLI command under --verbose; the `stats`
// command reads the output FASTA instead.
type BuildStats struct {
	Minimizers int
	Edges      int
	Unitigs    int
}

// Build runs the full assembly pipeline described in spec.md §2:
// optional read-name filter, two-pass Bloom counting, two-pass
// minimizer selection, edge extraction, external sort, and unitig
// assembly, writing the result as FASTA to cfg.OutputFasta.
func Build(cfg Config) (BuildStats, error) {
	var stats BuildStats
	if err := cfg.Validate(); err != nil {
		return stats, err
	}
	threads := cfg.Threads
	if threads <= 0 {
		threads = 1
	}

	if err := os.MkdirAll(cfg.WorkDir, 0o755); err != nil {
		return stats, errors.Wrap(err, "mdbg: fail to create work dir")
	}

	inputPath := cfg.InputFastq
	if cfg.ReadNameFilter != "" {
		filtered := filepath.Join(cfg.WorkDir, "filtered.fastq")
		if err := runReadNameFilter(cfg.InputFastq, cfg.ReadNameFilter, filtered); err != nil {
			return stats, err
		}
		inputPath = filtered
	}

	reads, err := loadReads(inputPath)
	if err != nil {
		return stats, err
	}
	log.Infof("loaded %s reads", humanize.Comma(int64(len(reads))))

	seen := countKmers(reads, cfg.K, threads, cfg.ExpectedKmers, cfg.FPRate)

	table := DiscoverMinimizers(reads, cfg.K, cfg.Density, seen)
	stats.Minimizers = table.Len()
	log.Infof("discovered %s minimizers", humanize.Comma(int64(stats.Minimizers)))

	edgeSet := BuildEdges(reads, cfg.K, cfg.Density, seen, table)
	stats.Edges = len(edgeSet.seen)
	log.Infof("extracted %s distinct edges", humanize.Comma(int64(stats.Edges)))

	unsortedPath := filepath.Join(cfg.WorkDir, "edges_unsorted")
	sortedPath := filepath.Join(cfg.WorkDir, "edges_sorted")
	if err := writeEdgeFile(edgeSet, unsortedPath); err != nil {
		return stats, err
	}
	if err := ExternalSortEdges(unsortedPath, sortedPath, cfg.WorkDir); err != nil {
		return stats, errors.Wrap(err, "mdbg: external sort failed")
	}

	graph, err := LoadGraph(sortedPath, edgeSet.InDegrees, edgeSet.OutDegrees, cfg.K)
	if err != nil {
		return stats, errors.Wrap(err, "mdbg: fail to load sorted edge graph")
	}
	unitigs := AssembleUnitigs(graph, cfg.K, cfg.PopBubbles)
	stats.Unitigs = len(unitigs)
	log.Infof("assembled %s unitigs", humanize.Comma(int64(stats.Unitigs)))

	out, err := createOutput(cfg.OutputFasta)
	if err != nil {
		return stats, err
	}
	defer out.Close()
	if err := WriteFasta(out, unitigs); err != nil {
		return stats, errors.Wrap(err, "mdbg: fail to write FASTA output")
	}

	os.Remove(unsortedPath)
	os.Remove(sortedPath)
	if cfg.ReadNameFilter != "" {
		os.Remove(filepath.Join(cfg.WorkDir, "filtered.fastq"))
	}

	return stats, nil
}

func runReadNameFilter(inputPath, filterPath, outPath string) error {
	names, err := loadReadNameSet(filterPath)
	if err != nil {
		return err
	}
	in, err := openInput(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := createOutput(outPath)
	if err != nil {
		return err
	}
	defer out.Close()
	return FilterReads(in, out, names)
}

func loadReadNameSet(path string) (ReadNameSet, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	set := make(ReadNameSet)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		set[line] = struct{}{}
	}
	return set, sc.Err()
}

func loadReads(path string) ([][]byte, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readAllSeqs(f)
}

func writeEdgeFile(set *EdgeSet, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "mdbg: fail to create %s", path)
	}
	defer f.Close()
	_, err = set.WriteTo(f)
	return err
}

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

package cmd

import (
	"bufio"
	"os"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize a unitig FASTA file",
	Long: `stats reports the unitig count and a length-distribution summary
(min/median/N50/max) of a FASTA file produced by "mdbgtk build". It
consumes output build already produces and adds no new pipeline
stage.`,
	Run: func(cmd *cobra.Command, args []string) {
		path, _ := cmd.Flags().GetString("input")
		lengths, err := unitigLengths(path)
		checkError(err)

		if len(lengths) == 0 {
			cmd.Println("unitigs: 0")
			return
		}
		sort.Ints(lengths)

		total := 0
		for _, l := range lengths {
			total += l
		}
		n50 := computeN50(lengths, total)

		cmd.Printf("unitigs: %s\n", humanize.Comma(int64(len(lengths))))
		cmd.Printf("total length: %s\n", humanize.Comma(int64(total)))
		cmd.Printf("min: %d  median: %d  max: %d  N50: %d\n",
			lengths[0], lengths[len(lengths)/2], lengths[len(lengths)-1], n50)
	},
}

func unitigLengths(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lengths []int
	var current int
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	seenAny := false
	for sc.Scan() {
		line := sc.Text()
		if len(line) > 0 && line[0] == '>' {
			if seenAny {
				lengths = append(lengths, current)
			}
			seenAny = true
			current = 0
			continue
		}
		current += len(line)
	}
	if seenAny {
		lengths = append(lengths, current)
	}
	return lengths, sc.Err()
}

// computeN50 returns the length L such that the unitigs at least as
// long as L cover at least half of total, the standard assembly
// contiguity statistic. lengths must be sorted ascending.
func computeN50(lengths []int, total int) int {
	sum := 0
	for i := len(lengths) - 1; i >= 0; i-- {
		sum += lengths[i]
		if 2*sum >= total {
			return lengths[i]
		}
	}
	return 0
}

func init() {
	RootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringP("input", "i", "", "unitig FASTA file (required)")
	statsCmd.MarkFlagRequired("input")
}

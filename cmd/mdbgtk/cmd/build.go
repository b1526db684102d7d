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
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/biotools/mdbg"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Assemble unitig contigs from a FASTQ file",
	Long: `build assembles unitig contigs from long reads via a minimizer
de Bruijn graph: two-pass Bloom-filter k-mer frequency filtering,
density-threshold minimizer selection, external-sort edge
materialization, and streaming unitig construction.`,
	Run: func(cmd *cobra.Command, args []string) {
		input, _ := cmd.Flags().GetString("input")
		output, _ := cmd.Flags().GetString("output")
		filter, _ := cmd.Flags().GetString("read-name-filter")
		k, _ := cmd.Flags().GetInt("kmer-size")
		density, _ := cmd.Flags().GetFloat64("density")
		workDir, _ := cmd.Flags().GetString("work-dir")
		expected, _ := cmd.Flags().GetInt64("expected-kmers")

		input, err := homedir.Expand(input)
		checkError(err)
		output, err = homedir.Expand(output)
		checkError(err)
		workDir, err = homedir.Expand(workDir)
		checkError(err)
		if filter != "" {
			filter, err = homedir.Expand(filter)
			checkError(err)
		}
		fpRate, _ := cmd.Flags().GetFloat64("fp-rate")
		popBubbles, _ := cmd.Flags().GetBool("pop-bubbles")
		verbose, _ := cmd.Flags().GetBool("verbose")

		cfg := mdbg.Config{
			InputFastq:     input,
			ReadNameFilter: filter,
			OutputFasta:    output,
			K:              k,
			Density:        density,
			WorkDir:        workDir,
			Threads:        getThreads(cmd),
			ExpectedKmers:  uint64(expected),
			FPRate:         fpRate,
			PopBubbles:     popBubbles,
		}

		stats, err := mdbg.Build(cfg)
		checkError(err)
		if verbose {
			cmd.Printf("minimizers=%d edges=%d unitigs=%d\n", stats.Minimizers, stats.Edges, stats.Unitigs)
		}
	},
}

func init() {
	RootCmd.AddCommand(buildCmd)

	wd, _ := os.Getwd()

	buildCmd.Flags().StringP("input", "i", "", "input FASTQ file (required)")
	buildCmd.Flags().StringP("output", "o", "unitigs.fasta", "output FASTA file")
	buildCmd.Flags().StringP("read-name-filter", "f", "", "optional file of read names to exclude, one per line")
	buildCmd.Flags().IntP("kmer-size", "k", 31, "k-mer size (1-31)")
	buildCmd.Flags().Float64P("density", "d", 0.005, "minimizer density threshold in (0, 1]")
	buildCmd.Flags().StringP("work-dir", "w", wd, "working directory for temporary files")
	buildCmd.Flags().Int64("expected-kmers", 100000000, "expected distinct k-mer count, sizes the Bloom filters")
	buildCmd.Flags().Float64("fp-rate", 0.01, "Bloom filter false-positive rate")
	buildCmd.Flags().Bool("pop-bubbles", true, "collapse parallel simple paths (bubbles) between the same node pair")

	buildCmd.MarkFlagRequired("input")
}

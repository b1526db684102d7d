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
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

// VERSION is the mdbgtk release version.
const VERSION = "0.1.0"

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "mdbgtk",
	Short: "Minimizer de Bruijn graph assembler",
	Long: fmt.Sprintf(`mdbgtk - minimizer de Bruijn graph assembler

Turns noisy long reads (FASTQ) into unitig contigs (FASTA) via a
minimizer de Bruijn graph: two-pass Bloom-filter k-mer frequency
filtering, density-threshold minimizer selection, external-sort edge
materialization, and streaming unitig construction.

Version: %s
`, VERSION),
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	defaultThreads := runtime.NumCPU()
	if defaultThreads > 4 {
		defaultThreads = 4
	}
	RootCmd.PersistentFlags().IntP("threads", "j", defaultThreads, "number of worker threads for the Bloom-filter passes")
	RootCmd.PersistentFlags().BoolP("verbose", "", false, "print verbose progress information")
}

func checkError(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "mdbgtk:", err)
		os.Exit(1)
	}
}

func getThreads(cmd *cobra.Command) int {
	t, _ := cmd.Flags().GetInt("threads")
	if t <= 0 {
		t = 1
	}
	return t
}

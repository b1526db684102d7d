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

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/biotools/mdbg"
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Drop reads whose name appears in a read-name file",
	Long: `filter copies a FASTQ file, omitting every record whose header
token (after "@", up to the first whitespace) appears in the given
read-name file. This is the external collaborator described by the
core's read-name-filter interface, typically fed by an aligner's
output.`,
	Run: func(cmd *cobra.Command, args []string) {
		input, _ := cmd.Flags().GetString("input")
		output, _ := cmd.Flags().GetString("output")
		namesFile, _ := cmd.Flags().GetString("names")

		input, err := homedir.Expand(input)
		checkError(err)
		output, err = homedir.Expand(output)
		checkError(err)
		namesFile, err = homedir.Expand(namesFile)
		checkError(err)

		names, err := loadNames(namesFile)
		checkError(err)

		in, err := os.Open(input)
		checkError(err)
		defer in.Close()

		out, err := os.Create(output)
		checkError(err)
		defer out.Close()

		checkError(mdbg.FilterReads(in, out, names))
	},
}

func loadNames(path string) (mdbg.ReadNameSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	set := make(mdbg.ReadNameSet)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			set[line] = struct{}{}
		}
	}
	return set, sc.Err()
}

func init() {
	RootCmd.AddCommand(filterCmd)

	filterCmd.Flags().StringP("input", "i", "", "input FASTQ file (required)")
	filterCmd.Flags().StringP("output", "o", "", "output FASTQ file (required)")
	filterCmd.Flags().StringP("names", "n", "", "file of read names to exclude, one per line (required)")

	filterCmd.MarkFlagRequired("input")
	filterCmd.MarkFlagRequired("output")
	filterCmd.MarkFlagRequired("names")
}

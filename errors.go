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

import "errors"

// ErrKOverflow means k is outside (0, 31].
var ErrKOverflow = errors.New("mdbg: k (1-31) overflow")

// ErrEmptySeq means the sequence is empty.
var ErrEmptySeq = errors.New("mdbg: empty sequence")

// ErrShortSeq means the sequence is shorter than k.
var ErrShortSeq = errors.New("mdbg: sequence shorter than k")

// ErrInvalidDensity means density is outside (0, 1].
var ErrInvalidDensity = errors.New("mdbg: density must be in (0, 1]")

// ErrMissingInput means the configured input FASTQ file does not exist or
// cannot be read, or the output FASTA or work directory path is empty.
var ErrMissingInput = errors.New("mdbg: missing or unreadable input FASTQ, or empty output/work-dir path")

// ErrInvalidFileFormat means an input file does not match the expected
// record format (e.g. a FASTQ record with a malformed header line).
var ErrInvalidFileFormat = errors.New("mdbg: invalid file format")

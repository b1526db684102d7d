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
	"io"
	"os"

	"github.com/pkg/errors"

	gzip "github.com/klauspost/pgzip"
)

// openInput opens file for reading, transparently wrapping it in a
// gzip reader when its first two bytes carry the gzip magic number —
// FASTQ inputs are routinely gzip-compressed (ambient I/O, not a
// pipeline stage; see SPEC_FULL.md §6).
func openInput(file string) (io.ReadCloser, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, errors.Wrapf(err, "mdbg: fail to read %s", file)
	}
	br := bufio.NewReaderSize(f, os.Getpagesize())

	gzipped, err := isGzipStream(br)
	if err != nil {
		f.Close()
		return nil, err
	}
	if !gzipped {
		return readCloser{Reader: br, Closer: f}, nil
	}

	gr, err := gzip.NewReader(br)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "mdbg: fail to create gzip reader for %s", file)
	}
	return readCloser{Reader: gr, Closer: multiCloser{gr, f}}, nil
}

// createOutput creates file for writing, gzip-compressing it when the
// path ends in ".gz".
func createOutput(file string) (io.WriteCloser, error) {
	f, err := os.Create(file)
	if err != nil {
		return nil, errors.Wrapf(err, "mdbg: fail to write %s", file)
	}
	if len(file) > 3 && file[len(file)-3:] == ".gz" {
		gw := gzip.NewWriter(f)
		return writeCloser{Writer: bufio.NewWriterSize(gw, os.Getpagesize()), Closer: multiCloser{gw, f}}, nil
	}
	return writeCloser{Writer: bufio.NewWriterSize(f, os.Getpagesize()), Closer: f}, nil
}

func isGzipStream(b *bufio.Reader) (bool, error) {
	magic, err := b.Peek(2)
	if err != nil {
		if err == io.EOF {
			return false, nil
		}
		return false, err
	}
	return magic[0] == 0x1f && magic[1] == 0x8b, nil
}

type readCloser struct {
	io.Reader
	io.Closer
}

type writeCloser struct {
	*bufio.Writer
	io.Closer
}

func (w writeCloser) Close() error {
	if err := w.Writer.Flush(); err != nil {
		return err
	}
	return w.Closer.Close()
}

// multiCloser closes every wrapped closer in slice order (callers list
// the outer gzip stream before the underlying file), returning
// the first error encountered.
type multiCloser []io.Closer

func (m multiCloser) Close() error {
	var firstErr error
	for _, c := range m {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

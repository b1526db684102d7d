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

import "os"

// Config holds every parameter of a Build run. There is no
// package-level mutable state (Design Notes §9): every call to Build
// is independent and concurrency-safe as long as WorkDir values don't
// collide.
type Config struct {
	InputFastq     string
	ReadNameFilter string // optional; empty means no pre-filter
	OutputFasta    string

	K       int
	Density float64

	WorkDir string
	Threads int

	ExpectedKmers uint64
	FPRate        float64

	PopBubbles bool
}

// Validate checks the invalid-configuration cases spec §7 requires to
// fail fast at entry.
func (c Config) Validate() error {
	if c.K <= 0 || c.K > MaxK {
		return ErrKOverflow
	}
	if c.Density <= 0 || c.Density > 1 {
		return ErrInvalidDensity
	}
	if c.InputFastq == "" {
		return ErrMissingInput
	}
	if _, err := os.Stat(c.InputFastq); err != nil {
		return ErrMissingInput
	}
	if c.OutputFasta == "" {
		return ErrMissingInput
	}
	if c.WorkDir == "" {
		return ErrMissingInput
	}
	return nil
}

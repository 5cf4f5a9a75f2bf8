// Copyright ©2013 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattice

import (
	"fmt"
	"strings"
)

// Formatted returns a fmt.Formatter for the basis b, adapted from gonum's
// mat.Formatted/FormatOption machinery (mat/format.go) to bignum.Integer
// entries. It replaces the original source's unconditional show_b debug
// print (anti_hash.rs, backend.rs) with an opt-in, loggable representation
// (spec.md §9's "debug basis printing").
func Formatted(b *Basis, options ...FormatOption) fmt.Formatter {
	f := formatter{basis: b, dot: '.'}
	for _, o := range options {
		o(&f)
	}
	return f
}

// FormatOption is a functional option for Formatted.
type FormatOption func(*formatter)

// Prefix sets a string prepended to every line after the first.
func Prefix(p string) FormatOption {
	return func(f *formatter) { f.prefix = p }
}

// Excerpt limits output to the first and last m rows/columns of the
// matrix. m <= 0 prints every element.
func Excerpt(m int) FormatOption {
	return func(f *formatter) { f.margin = m }
}

// Squeeze sizes each column's field width independently instead of using
// one uniform width for the whole matrix.
func Squeeze() FormatOption {
	return func(f *formatter) { f.squeeze = true }
}

type formatter struct {
	basis   *Basis
	prefix  string
	margin  int
	dot     byte
	squeeze bool
}

var _ fmt.Formatter = formatter{}

// Format satisfies fmt.Formatter, supporting %v (and %d, since entries are
// integers).
func (f formatter) Format(fs fmt.State, c rune) {
	switch c {
	case 'v', 'd':
	default:
		fmt.Fprintf(fs, "%%!%c(lattice.Basis)", c)
		return
	}
	rows, cols := f.basis.Dims()
	printed := max(rows, cols)
	if f.margin > 0 && f.margin < printed {
		printed = f.margin
	}

	cells := make([][]string, rows)
	width := 0
	colWidth := make([]int, cols)
	for i := 0; i < rows; i++ {
		cells[i] = make([]string, cols)
		for j := 0; j < cols; j++ {
			s := f.basis.At(i, j).String()
			if s == "0" && fs.Flag(' ') {
				s = string(f.dotByte())
			}
			cells[i][j] = s
			if f.squeeze {
				if len(s) > colWidth[j] {
					colWidth[j] = len(s)
				}
			} else if len(s) > width {
				width = len(s)
			}
		}
	}
	fieldWidth := func(j int) int {
		if f.squeeze {
			return colWidth[j]
		}
		return width
	}

	var sb strings.Builder
	for i := 0; i < rows; i++ {
		if shouldSkipRow(i, rows, printed) {
			if i == printed {
				sb.WriteString(" .\n")
			}
			continue
		}
		if i > 0 {
			sb.WriteByte('\n')
			sb.WriteString(f.prefix)
		}
		sb.WriteByte('[')
		for j := 0; j < cols; j++ {
			if shouldSkipRow(j, cols, printed) {
				if j == printed {
					sb.WriteString(" ... ")
				}
				continue
			}
			if j > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(padLeft(cells[i][j], fieldWidth(j)))
		}
		sb.WriteByte(']')
	}
	fmt.Fprint(fs, sb.String())
}

func (f formatter) dotByte() byte {
	if f.dot == 0 {
		return '.'
	}
	return f.dot
}

func shouldSkipRow(i, total, printed int) bool {
	return printed > 0 && 2*printed < total && i >= printed && i < total-printed
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

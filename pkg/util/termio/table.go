// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package termio

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// TablePrinter is useful for printing tables to the terminal.
type TablePrinter struct {
	widths        []uint
	maxWidths     []uint
	leftAligned   []bool
	rows          [][]string
	escapes       [][]string
	enableEscapes bool
}

// NewTablePrinter constructs a new table with a given number of columns.  Rows
// are added using AddRow.
func NewTablePrinter(width uint) *TablePrinter {
	return &TablePrinter{
		widths:        make([]uint, width),
		maxWidths:     make([]uint, width),
		leftAligned:   make([]bool, width),
		enableEscapes: true,
	}
}

// AddRow appends a row to this table, returning its index.
func (p *TablePrinter) AddRow(vals ...string) uint {
	if len(vals) != len(p.widths) {
		panic("incorrect number of columns")
	}
	// Update column widths
	for i, val := range vals {
		p.widths[i] = max(p.widths[i], uint(utf8.RuneCountInString(val)))
	}
	//
	p.rows = append(p.rows, vals)
	p.escapes = append(p.escapes, make([]string, len(vals)))
	//
	return uint(len(p.rows) - 1)
}

// Get the contents of a given cell in this table
func (p *TablePrinter) Get(col uint, row uint) string {
	return p.rows[row][col]
}

// Height returns the height of this table.
func (p *TablePrinter) Height() uint {
	return uint(len(p.rows))
}

// SetEscape set the colour to use when printing the contents of a given cell
func (p *TablePrinter) SetEscape(col uint, row uint, escape AnsiEscape) {
	p.escapes[row][col] = escape.Build()
}

// SetRowEscape sets the colour to use for every cell in a given row.
func (p *TablePrinter) SetRowEscape(row uint, escape AnsiEscape) {
	for col := range p.escapes[row] {
		p.SetEscape(uint(col), row, escape)
	}
}

// AnsiEscapes enables or disables the use of ANSI escapes (e.g. for showing
// colour).  Disabling escapes is useful in environments that don't support
// escapes as, otherwise, you get a lot of visible excape characters being
// printed.
func (p *TablePrinter) AnsiEscapes(enable bool) {
	p.enableEscapes = enable
}

// AlignLeft determines whether a given column is left (rather than right)
// aligned.
func (p *TablePrinter) AlignLeft(col uint, left bool) {
	p.leftAligned[col] = left
}

// SetMaxWidth puts an upper bound on the width of a given column.  Zero means
// unbounded.
func (p *TablePrinter) SetMaxWidth(col uint, width uint) {
	p.maxWidths[col] = width
}

// Print the table to a given writer.
func (p *TablePrinter) Print(out io.Writer) {
	for i, row := range p.rows {
		var builder strings.Builder
		//
		for j, col := range row {
			width := p.width(uint(j))
			escape := p.escapes[i][j]
			// Print colour (if applicable)
			if p.enableEscapes && escape != "" {
				builder.WriteString(escape)
			}
			//
			builder.WriteString(" ")
			builder.WriteString(p.pad(uint(j), clip(col, width), width))
			// Cancel colour (if applicable)
			if p.enableEscapes && escape != "" {
				builder.WriteString(ResetAnsiEscape().Build())
			}
			//
			if j+1 < len(row) {
				builder.WriteString(" |")
			}
		}
		//
		fmt.Fprintln(out, strings.TrimRight(builder.String(), " "))
	}
}

func (p *TablePrinter) width(col uint) uint {
	if p.maxWidths[col] != 0 {
		return min(p.widths[col], p.maxWidths[col])
	}
	//
	return p.widths[col]
}

func (p *TablePrinter) pad(col uint, text string, width uint) string {
	padding := strings.Repeat(" ", int(width)-utf8.RuneCountInString(text))
	//
	if p.leftAligned[col] {
		return text + padding
	}
	//
	return padding + text
}

// clip some text to fit within a given width, marking it with ".." when it has
// been truncated.
func clip(text string, width uint) string {
	runes := []rune(text)
	//
	if uint(len(runes)) <= width {
		return text
	} else if width <= 2 {
		return string(runes[:width])
	}
	//
	return string(runes[:width-2]) + ".."
}

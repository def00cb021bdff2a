/*
Copyright (C) 2024 The tub-modules Authors

This file is part of the tub-modules project

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

package printer

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

var (
	// StyleKubeCtl renders a Table like kubectl
	StyleKubeCtl = table.Style{
		Name:    "StyleKubeCtl",
		Box:     table.StyleBoxDefault,
		Color:   table.ColorOptionsDefault,
		Format:  table.FormatOptionsDefault,
		HTML:    table.DefaultHTMLOptions,
		Options: table.OptionsNoBordersAndSeparators,
		Title:   table.TitleOptionsDefault,
	}
)

type TablePrinter struct {
	tbl table.Writer
}

func NewTablePrinter(out io.Writer) *TablePrinter {
	t := table.NewWriter()
	t.SetStyle(StyleKubeCtl)
	t.SetOutputMirror(out)
	return &TablePrinter{tbl: t}
}

func (t *TablePrinter) SetHeader(header ...interface{}) {
	t.tbl.AppendHeader(header)
}

func (t *TablePrinter) AddRow(row ...interface{}) {
	rowObj := table.Row{}
	for _, col := range row {
		rowObj = append(rowObj, col)
	}
	t.tbl.AppendRow(rowObj)
}

// SortBy sorts the rows by the given 1-based column numbers.
func (t *TablePrinter) SortBy(columns ...int) {
	sortBy := make([]table.SortBy, 0, len(columns))
	for _, c := range columns {
		sortBy = append(sortBy, table.SortBy{Number: c, Mode: table.Asc})
	}
	t.tbl.SortBy(sortBy)
}

func (t *TablePrinter) Print() {
	t.tbl.Render()
}

func BoldGreen(msg interface{}) string {
	return text.Colors{text.Bold, text.FgGreen}.Sprint(msg)
}

func BoldRed(msg interface{}) string {
	return text.Colors{text.Bold, text.FgRed}.Sprint(msg)
}

func BoldYellow(msg interface{}) string {
	return text.Colors{text.Bold, text.FgYellow}.Sprint(msg)
}

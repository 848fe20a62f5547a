package render

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"linkboard/internal/catalog"
)

// Table renders the records as a rounded terminal table.
func Table(records []catalog.Record) string {
	return newTableWriter(records).Render()
}

// HTMLTable renders the records as an HTML table with cell text escaped.
func HTMLTable(records []catalog.Record) string {
	return newTableWriter(records).RenderHTML()
}

func newTableWriter(records []catalog.Record) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(tableHeaders))
	for i, name := range tableHeaders {
		header[i] = name
	}
	tw.AppendHeader(header)

	for _, row := range Rows(records) {
		r := make(table.Row, len(row))
		for i, cell := range row {
			r[i] = cell
		}
		tw.AppendRow(r)
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft}, // Duration
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft}, // Rating
	})

	return tw
}

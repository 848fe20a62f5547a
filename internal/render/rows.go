package render

import (
	"linkboard/internal/catalog"
)

var tableHeaders = []string{
	"Link",
	"Duration",
	"Rating",
	"Studio",
	"Core Category",
	"Stars",
	"Categories",
	"Positions",
	"Tags",
}

// Rows projects records into the shared display columns. Merged columns
// drop empty and "-" values and join the rest with ", ".
func Rows(records []catalog.Record) [][]string {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.MainLink,
			record.Duration.String(),
			record.Rate.String(),
			record.Studio,
			record.CoreCat,
			catalog.MergeFields(record.Stars()),
			catalog.MergeFields(record.Categories()),
			catalog.MergeFields(record.Positions()),
			record.GeneralTags,
		})
	}
	return rows
}

package convert

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"linkboard/internal/catalog"
	"linkboard/internal/logging"
)

// Read parses the spreadsheet at path into catalog records. The format is
// chosen by file extension.
func Read(path string, logger *slog.Logger) ([]catalog.Record, error) {
	logger = logging.NewComponentLogger(logger, "convert")

	var (
		rows [][]string
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		rows, err = readXLSX(path)
	case ".csv":
		rows, err = readCSV(path)
	default:
		return nil, fmt.Errorf("unsupported spreadsheet extension %q (want .xlsx or .csv)", ext)
	}
	if err != nil {
		return nil, err
	}

	return recordsFromRows(rows, logger), nil
}

func recordsFromRows(rows [][]string, logger *slog.Logger) []catalog.Record {
	if len(rows) == 0 {
		return nil
	}

	headers := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		headers[i] = strings.TrimSpace(header)
	}

	unknown := make(map[string]struct{})
	records := make([]catalog.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		var record catalog.Record
		for i, header := range headers {
			if header == "" {
				continue
			}
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			if !record.SetField(header, cell) {
				unknown[header] = struct{}{}
			}
		}
		records = append(records, record)
	}

	for header := range unknown {
		logger.Warn("dropping unknown spreadsheet column",
			logging.String("column", header))
	}

	return records
}

package convert

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestReadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links.csv")
	content := "main_link,duration,rate,studio,pos_1\n" +
		"https://example.com/a,100,5,Acme,12\n" +
		"https://example.com/b,50,9,Orbit,\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	records, err := Read(path, nil)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].MainLink != "https://example.com/a" {
		t.Errorf("main_link: got %q", records[0].MainLink)
	}
	if records[0].DurationMinutes() != 100 {
		t.Errorf("duration: got %d, want 100", records[0].DurationMinutes())
	}
	if records[0].Pos1 != "12" {
		t.Errorf("pos_1: got %q, want %q", records[0].Pos1, "12")
	}
	if records[1].Studio != "Orbit" {
		t.Errorf("studio: got %q", records[1].Studio)
	}
}

func TestReadCSVDropsUnknownColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links.csv")
	content := "main_link,mystery_column\nhttps://example.com,surprise\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	records, err := Read(path, nil)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].MainLink != "https://example.com" {
		t.Errorf("known column must still map: got %q", records[0].MainLink)
	}
}

func TestReadCSVShortRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links.csv")
	content := "main_link,duration,rate\nhttps://example.com\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	records, err := Read(path, nil)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if records[0].DurationMinutes() != 0 {
		t.Errorf("missing cell should default: got %d", records[0].DurationMinutes())
	}
}

func TestReadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links.xlsx")
	writeWorkbook(t, path)

	records, err := Read(path, nil)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].MainLink != "https://example.com/a" {
		t.Errorf("main_link: got %q", records[0].MainLink)
	}
	if records[0].DurationMinutes() != 140 {
		t.Errorf("duration: got %d, want 140", records[0].DurationMinutes())
	}
	if records[1].CoreCat != "Drama" {
		t.Errorf("core_cat: got %q", records[1].CoreCat)
	}
}

func TestReadUnsupportedExtension(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "links.ods"), nil); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func writeWorkbook(t *testing.T, path string) {
	t.Helper()

	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetList()[0]
	rows := [][]any{
		{"main_link", "duration", "rate", "core_cat"},
		{"https://example.com/a", 140, 8.5, "Action"},
		{"https://example.com/b", "95", "6", "Drama"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := file.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	if err := file.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
}

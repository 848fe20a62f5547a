package testsupport

import (
	"testing"

	"linkboard/internal/catalog"
)

// SampleRecords returns a small fixed catalog covering the field shapes the
// filters and views care about: merged columns with blanks, numeric-looking
// positions, and mixed durations/ratings.
func SampleRecords() []catalog.Record {
	return []catalog.Record{
		{
			MainLink:    "https://example.com/alpha",
			Duration:    "100",
			Rate:        "5",
			Studio:      "Acme",
			CoreCat:     "Action",
			Cat1:        "Classic",
			Cat2:        "-",
			GeneralTags: "Horror Classic 1990s",
			Star1:       "Alice",
			Star2:       "Carol",
			Pos1:        "12",
		},
		{
			MainLink:    "https://example.com/beta",
			Duration:    "100",
			Rate:        "2",
			Studio:      "Acme",
			CoreCat:     "Drama",
			Cat1:        "Indie",
			GeneralTags: "Horror Classic",
			Star1:       "Alice",
			Star2:       "Bob",
			Pos1:        "7",
			Pos2:        "12",
		},
		{
			MainLink:    "https://example.com/gamma",
			Duration:    "50",
			Rate:        "9",
			Studio:      "Orbit",
			CoreCat:     "Action",
			Cat1:        "classic",
			GeneralTags: "slow burn",
			Star1:       "Bob",
			Pos1:        "3",
		},
	}
}

// SeedCatalog writes the sample records to the store and fails the test on
// error.
func SeedCatalog(t *testing.T, store *catalog.Store) []catalog.Record {
	t.Helper()

	records := SampleRecords()
	if err := store.Save(records); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
	return records
}

package main

import (
	"testing"

	"linkboard/internal/testsupport"
)

func TestAddAppendsAndPersists(t *testing.T) {
	env := setupCLITestEnv(t)
	seeded := testsupport.SeedCatalog(t, env.store())

	out, _, err := runCLI(t, []string{"add",
		"--link", "https://www.example.org/movies/42",
		"--duration", "95",
		"--rate", "7",
		"--studio", "Acme",
		"--core-cat", "Action",
		"--cat1", "Classic",
		"--star1", "Alice",
		"--pos1", "12",
		"--tags", "late addition",
	}, env.configPath)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	requireContains(t, out, "Added record")

	records, err := env.store().Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != len(seeded)+1 {
		t.Fatalf("expected %d records, got %d", len(seeded)+1, len(records))
	}

	added := records[len(records)-1]
	if added.MainLink != "https://www.example.org/movies/42" {
		t.Errorf("main_link: got %q", added.MainLink)
	}
	if added.Website != "example.org" {
		t.Errorf("website autofill: got %q, want %q", added.Website, "example.org")
	}
	if added.DurationMinutes() != 95 {
		t.Errorf("duration: got %d", added.DurationMinutes())
	}
	if added.Pos1 != "12" {
		t.Errorf("pos_1: got %q", added.Pos1)
	}
}

func TestAddToMissingCatalogCreatesIt(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"add", "--link", "https://example.com"}, env.configPath); err != nil {
		t.Fatalf("add: %v", err)
	}

	records, err := env.store().Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
}

func TestAddDoesNotValidateFields(t *testing.T) {
	env := setupCLITestEnv(t)

	// Blank and unparseable fields are accepted as-is.
	if _, _, err := runCLI(t, []string{"add", "--duration", "???"}, env.configPath); err != nil {
		t.Fatalf("add: %v", err)
	}

	records, err := env.store().Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if records[0].DurationMinutes() != 0 {
		t.Errorf("unparseable duration should coerce to 0 on read, got %d", records[0].DurationMinutes())
	}
	if records[0].Website != "" {
		t.Errorf("website should stay empty without a link, got %q", records[0].Website)
	}
}

func TestWebsiteFromLink(t *testing.T) {
	cases := []struct {
		link string
		want string
	}{
		{"https://www.example.com/path", "example.com"},
		{"http://example.com", "example.com"},
		{"https://sub.example.com/a/b", "sub.example.com"},
		{"not a url", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := websiteFromLink(tc.link); got != tc.want {
			t.Errorf("websiteFromLink(%q): got %q, want %q", tc.link, got, tc.want)
		}
	}
}

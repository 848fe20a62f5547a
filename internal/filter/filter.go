package filter

import (
	"strings"

	"linkboard/internal/catalog"
)

// Criteria is the set of active filter selections for one query. Range
// bounds always apply; the selection slices and TagQuery are inactive when
// empty.
type Criteria struct {
	DurationMin int
	DurationMax int
	RatingMin   float64
	RatingMax   float64

	CoreCategories  []string // exact match on core_cat
	OtherCategories []string // case-insensitive match on any cat_1..cat_6
	Actors          []string // every selected actor must appear among the stars
	Positions       []string // any selected position must appear among the positions
	Studios         []string // exact match on studio
	TagQuery        string   // comma-separated substring tokens
}

// Apply returns the records matching the criteria, preserving input order.
func Apply(records []catalog.Record, criteria Criteria) []catalog.Record {
	matched := make([]catalog.Record, 0, len(records))
	for _, record := range records {
		if criteria.matches(record) {
			matched = append(matched, record)
		}
	}
	return matched
}

func (c Criteria) matches(record catalog.Record) bool {
	duration := record.DurationMinutes()
	if duration < c.DurationMin || duration > c.DurationMax {
		return false
	}

	rating := record.Rating()
	if rating < c.RatingMin || rating > c.RatingMax {
		return false
	}

	if len(c.CoreCategories) > 0 && !contains(c.CoreCategories, record.CoreCat) {
		return false
	}

	if len(c.OtherCategories) > 0 && !matchesOtherCategories(record, c.OtherCategories) {
		return false
	}

	// Actors are all-of: every selected name must be present.
	if len(c.Actors) > 0 {
		stars := record.Stars()
		for _, actor := range c.Actors {
			if !contains(stars, actor) {
				return false
			}
		}
	}

	// Positions are any-of, compared string-exact.
	if len(c.Positions) > 0 && !containsAny(record.Positions(), c.Positions) {
		return false
	}

	if len(c.Studios) > 0 && !contains(c.Studios, record.Studio) {
		return false
	}

	if tokens := TagTokens(c.TagQuery); len(tokens) > 0 {
		tags := strings.ToLower(record.GeneralTags)
		for _, token := range tokens {
			if !strings.Contains(tags, token) {
				return false
			}
		}
	}

	return true
}

func matchesOtherCategories(record catalog.Record, selected []string) bool {
	recordCats := make([]string, 0, 6)
	for _, cat := range record.Categories() {
		recordCats = append(recordCats, strings.ToLower(strings.TrimSpace(cat)))
	}
	for _, want := range selected {
		if contains(recordCats, strings.ToLower(want)) {
			return true
		}
	}
	return false
}

// TagTokens splits a comma-separated tag query into trimmed, lower-cased
// tokens, dropping empties. An empty result means the query is inactive.
func TagTokens(query string) []string {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	var tokens []string
	for _, part := range strings.Split(query, ",") {
		token := strings.ToLower(strings.TrimSpace(part))
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

func contains(values []string, want string) bool {
	for _, value := range values {
		if value == want {
			return true
		}
	}
	return false
}

func containsAny(values []string, wanted []string) bool {
	for _, want := range wanted {
		if contains(values, want) {
			return true
		}
	}
	return false
}

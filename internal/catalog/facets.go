package catalog

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FacetGroup names a set of record fields whose distinct values feed a
// selector (the filter controls offer these values to pick from).
type FacetGroup string

const (
	FacetCoreCategories FacetGroup = "core-categories"
	FacetCategories     FacetGroup = "categories"
	FacetActors         FacetGroup = "actors"
	FacetStudios        FacetGroup = "studios"
	FacetPositions      FacetGroup = "positions"
)

// FacetGroups lists every selector group in display order.
func FacetGroups() []FacetGroup {
	return []FacetGroup{
		FacetCoreCategories,
		FacetCategories,
		FacetActors,
		FacetStudios,
		FacetPositions,
	}
}

func (g FacetGroup) values(r Record) []string {
	switch g {
	case FacetCoreCategories:
		return []string{r.CoreCat}
	case FacetCategories:
		return r.Categories()
	case FacetActors:
		return r.Stars()
	case FacetStudios:
		return []string{r.Studio}
	case FacetPositions:
		return r.Positions()
	default:
		return nil
	}
}

// Unique returns the distinct trimmed values of the group's fields across
// all records, skipping empty and Blank values, in collated order.
func Unique(records []Record, group FacetGroup) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, record := range records {
		for _, value := range group.values(record) {
			trimmed := strings.TrimSpace(value)
			if trimmed == "" || trimmed == Blank {
				continue
			}
			if _, ok := seen[trimmed]; ok {
				continue
			}
			seen[trimmed] = struct{}{}
			values = append(values, trimmed)
		}
	}

	collate.New(language.Und, collate.IgnoreCase).SortStrings(values)
	return values
}

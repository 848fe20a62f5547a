package ordering

import (
	"fmt"
	"sort"
	"strings"

	"linkboard/internal/catalog"
)

// Field identifies a sortable numeric record field.
type Field int

const (
	FieldNone Field = iota
	FieldDuration
	FieldRating
)

// ParseField maps a flag value onto a Field.
func ParseField(value string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "duration":
		return FieldDuration, nil
	case "rating", "rate":
		return FieldRating, nil
	case "none", "":
		return FieldNone, nil
	default:
		return FieldNone, fmt.Errorf("sort field: unsupported value %q", value)
	}
}

// Direction selects ascending, descending, or no ordering for one field.
type Direction int

const (
	DirNone Direction = iota
	DirAscending
	DirDescending
)

// ParseDirection maps a flag value onto a Direction.
func ParseDirection(value string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "asc", "ascending", "min":
		return DirAscending, nil
	case "desc", "descending", "max":
		return DirDescending, nil
	case "none", "":
		return DirNone, nil
	default:
		return DirNone, fmt.Errorf("sort direction: unsupported value %q", value)
	}
}

type sortKey struct {
	field     Field
	direction Direction
}

// Apply orders the records by the primary field's direction, tie-broken by
// the other field's direction. A field whose direction is DirNone is not
// applied. When primary is FieldNone, any field with a direction is applied
// in the fixed order duration then rating. The input slice is not modified.
func Apply(records []catalog.Record, primary Field, durationDir, ratingDir Direction) []catalog.Record {
	keys := buildKeys(primary, durationDir, ratingDir)

	ordered := make([]catalog.Record, len(records))
	copy(ordered, records)

	// Reverse priority: stable-sort by the weakest key first so the
	// strongest key's pass dominates and earlier passes break its ties.
	for i := len(keys) - 1; i >= 0; i-- {
		key := keys[i]
		sort.SliceStable(ordered, func(a, b int) bool {
			va, vb := fieldValue(ordered[a], key.field), fieldValue(ordered[b], key.field)
			if key.direction == DirDescending {
				return va > vb
			}
			return va < vb
		})
	}

	return ordered
}

func buildKeys(primary Field, durationDir, ratingDir Direction) []sortKey {
	var keys []sortKey
	appendKey := func(field Field, dir Direction) {
		if dir != DirNone {
			keys = append(keys, sortKey{field: field, direction: dir})
		}
	}

	switch primary {
	case FieldDuration:
		appendKey(FieldDuration, durationDir)
		appendKey(FieldRating, ratingDir)
	case FieldRating:
		appendKey(FieldRating, ratingDir)
		appendKey(FieldDuration, durationDir)
	default:
		appendKey(FieldDuration, durationDir)
		appendKey(FieldRating, ratingDir)
	}
	return keys
}

func fieldValue(record catalog.Record, field Field) float64 {
	switch field {
	case FieldDuration:
		return float64(record.DurationMinutes())
	case FieldRating:
		return record.Rating()
	default:
		return 0
	}
}

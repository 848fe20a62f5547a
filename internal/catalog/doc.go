// Package catalog owns the record model and the JSON file store behind it.
//
// Records are flat field/value entries describing one link: URL, duration,
// rating, studio, category tags, stars, positions, and free-text tags. The
// backing catalog is a single JSON array rewritten whole on every save; a
// missing file loads as an empty catalog. Numeric-looking fields may arrive
// as JSON numbers or strings and are normalized to strings on load, with
// typed accessors applying the documented coercion rules (failed parses
// fall back to zero).
//
// Always read and write the catalog through Store so saves stay atomic
// (temp file plus rename) and load semantics stay consistent.
package catalog

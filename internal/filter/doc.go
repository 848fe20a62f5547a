// Package filter evaluates browse criteria against catalog records.
//
// Each criteria category with an empty selection passes every record; a
// record matches only when it passes all active categories. Selection
// semantics differ on purpose: actors require every selected name to appear
// among the record's stars, while positions, categories, and the rest use
// any-of membership. That asymmetry mirrors long-standing catalog behavior
// and is pinned by tests rather than smoothed over.
package filter

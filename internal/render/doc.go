// Package render turns ordered record lists into displayable output: a
// terminal table, an escaped HTML table, or two-column bordered cards.
//
// All views share one row projection (link, duration, rating, studio, core
// category, then the merged stars/categories/positions columns and tags) so
// the table and cards always agree on what a record looks like.
package render

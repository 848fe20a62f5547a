// Package ordering sorts filtered records by duration and rating with an
// explicit priority between the two.
//
// The composite order is produced by stable-sorting in reverse priority:
// the lower-priority field is applied first, then the higher-priority field,
// so the dominant field decides the order and the other field breaks its
// ties. With no priority field and no directions the input order is kept.
package ordering

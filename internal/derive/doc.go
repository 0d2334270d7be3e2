// Package derive turns raw layout records and their definition geometry into
// classified, presentation-ready records.
//
// Derive is pure: the same inputs always produce the same record, and no
// input is modified.
package derive

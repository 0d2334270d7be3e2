// Package layout runs the extraction and derivation pipeline over a deck
// layout file.
//
// Process reads the layout through a domain.LayoutStore, assembles the raw
// records, then loads each record's labware definition and derives the final
// record on a bounded worker pool. Records keep their layout order whatever
// order the workers finish in. Every definition file is read at most once per
// run, even when many records reference it concurrently.
//
// Nothing short of context cancellation aborts a run: missing fields and
// missing definition files degrade to defaults and are reported as
// diagnostics on the result.
package layout

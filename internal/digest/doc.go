// Package digest computes short content fingerprints for deck layouts.
//
// Fingerprints appear in report headers so two reports can be matched to the
// same layout revision, and the watcher uses them to skip rewrites that did
// not change a file's content.
package digest

// Package scan extracts attribute values from deck layout and labware
// definition content.
//
// Both file kinds store dotted keys (for example "Labware.3.TForm.1.X" or
// "Dim.Dx") followed by a run of separator bytes and then the value. The
// separators are whitespace or control characters, and their number varies.
// Document finds the first occurrence of a key whose trailing bytes form a
// valid value and returns that value:
//
//   - Token: any run of non-separator runes
//   - Number, WordNumber, WordInt: runs of digits, '-' and '.'
//   - Count: runs of ASCII digits
//   - Path: a file reference that may contain spaces and drive colons
//
// Matching is done by a hand-written rune scanner, so lookups are linear in
// the content size and deterministic on any input.
package scan

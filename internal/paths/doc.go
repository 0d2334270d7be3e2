// Package paths resolves labware definition references found in deck
// layouts.
//
// Layouts are written on Windows, so references use backslashes and drive
// letters regardless of the host the tool runs on. Rootedness and extension
// detection therefore recognise both separator styles.
package paths

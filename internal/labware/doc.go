// Package labware reads geometry from labware definition files (.rck, .tml,
// .ctr and friends).
package labware

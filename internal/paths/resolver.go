package paths

import (
	"strings"

	"laydeck/internal/domain"
)

// DefaultBaseDir is the labware root of a stock instrument installation.
const DefaultBaseDir = `C:\Program Files (x86)\HAMILTON\LabWare\`

// Resolver joins relative references onto a base directory.
type Resolver struct {
	base    string
	sep     byte
	convert bool
}

// NewResolver returns a Resolver rooted at base. A base that looks like a
// Windows path is joined with backslashes; any other base is joined with
// slashes and backslashes in the relative part are converted.
func NewResolver(base string) *Resolver {
	r := &Resolver{base: base, sep: '/'}
	if isWindowsStyle(base) {
		r.sep = '\\'
	} else {
		r.convert = true
	}
	return r
}

// Base returns the configured base directory.
func (r *Resolver) Base() string { return r.base }

// Resolve returns raw unchanged when it is empty or rooted, otherwise raw
// joined onto the base directory with a single separator between them.
func (r *Resolver) Resolve(raw string) string {
	if raw == "" || IsRooted(raw) {
		return raw
	}
	rel := raw
	if r.convert {
		rel = strings.ReplaceAll(rel, `\`, "/")
	}
	if r.base == "" {
		return rel
	}
	base := strings.TrimRight(r.base, `/\`)
	if base == "" {
		// base was only separators, i.e. the filesystem root
		return string(r.sep) + strings.TrimLeft(rel, `/\`)
	}
	return base + string(r.sep) + strings.TrimLeft(rel, `/\`)
}

// IsRooted reports whether p starts at a root: a leading slash or backslash,
// or a drive designator such as "C:".
func IsRooted(p string) bool {
	if p == "" {
		return false
	}
	if p[0] == '/' || p[0] == '\\' {
		return true
	}
	return hasDrive(p)
}

// Ext returns the extension of the last element of p, including the dot,
// treating both slash styles and drive colons as element boundaries.
func Ext(p string) string {
	for i := len(p) - 1; i >= 0; i-- {
		switch p[i] {
		case '.':
			if i == len(p)-1 {
				return ""
			}
			return p[i:]
		case '/', '\\', ':':
			return ""
		}
	}
	return ""
}

// ChangeExt replaces the extension of p with ext (which includes the dot).
func ChangeExt(p, ext string) string {
	return strings.TrimSuffix(strings.TrimSuffix(p, Ext(p)), ".") + ext
}

func hasDrive(p string) bool {
	if len(p) < 2 || p[1] != ':' {
		return false
	}
	c := p[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isWindowsStyle(p string) bool {
	return hasDrive(p) || (strings.Contains(p, `\`) && !strings.Contains(p, "/"))
}

// Compile-time assertion that Resolver implements domain.PathResolver.
var _ domain.PathResolver = (*Resolver)(nil)

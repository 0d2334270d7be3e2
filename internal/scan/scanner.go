package scan

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"laydeck/internal/domain"
)

var (
	// ErrMissing is returned when no occurrence of the key carries a value.
	ErrMissing = errors.New("attribute not found")
	// ErrUnparsable is returned when a value was found but is not a number.
	ErrUnparsable = errors.New("attribute value unparsable")
)

// valueKind selects which runes make up an attribute value.
type valueKind int

const (
	// tokenValue is a run of non-separator runes.
	tokenValue valueKind = iota
	// numberValue is a run of digits, '-' and '.'.
	numberValue
	// digitValue is a run of ASCII digits.
	digitValue
	// pathValue is one delimiter rune followed by a run of non-control runes.
	pathValue
)

type query struct {
	key      string
	kind     valueKind
	minSep   int
	anchored bool
}

// Document is attribute content (a deck layout or a labware definition)
// prepared for key lookups.
type Document struct {
	text string
}

// New wraps raw file content. Invalid UTF-8 is replaced so that scanning is
// rune-safe.
func New(content []byte) *Document {
	return &Document{text: strings.ToValidUTF8(string(content), "\uFFFD")}
}

// NewString wraps content that is already text.
func NewString(content string) *Document {
	return New([]byte(content))
}

// Token returns the first run of non-separator runes following key and at
// least one separator.
func (d *Document) Token(key string) (string, error) {
	return d.find(query{key: key, kind: tokenValue, minSep: 1})
}

// Number returns the numeric value following key, floored to three decimals.
func (d *Document) Number(key string) (float64, error) {
	raw, err := d.find(query{key: key, kind: numberValue, minSep: 1})
	if err != nil {
		return 0, err
	}
	v, err := parseFloat(key, raw)
	if err != nil {
		return 0, err
	}
	return Floor3(v), nil
}

// Vector reads prefix+".X", ".Y" and ".Z". Separators between key and value
// are optional here. Each axis defaults to 0 on its own; errs[i] reports why.
func (d *Document) Vector(prefix string) (v domain.Vector3, errs [3]error) {
	axes := [3]*float64{&v.X, &v.Y, &v.Z}
	for i, axis := range [3]string{"X", "Y", "Z"} {
		key := prefix + "." + axis
		raw, err := d.find(query{key: key, kind: numberValue})
		if err == nil {
			var f float64
			if f, err = parseFloat(key, raw); err == nil {
				*axes[i] = Floor3(f)
			}
		}
		errs[i] = err
	}
	return v, errs
}

// Path returns the file reference following key. Unlike Token the value may
// contain spaces and colons; it ends at the first control character.
func (d *Document) Path(key string) (string, error) {
	return d.find(query{key: key, kind: pathValue})
}

// Count returns the unsigned integer following key.
func (d *Document) Count(key string) (int, error) {
	raw, err := d.find(query{key: key, kind: digitValue, minSep: 1})
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", key, raw, ErrUnparsable)
	}
	return int(n), nil
}

// WordNumber is Number without flooring, matching key only where it starts a
// word (so "Dim.Dx" does not match inside "OtherDim.Dx").
func (d *Document) WordNumber(key string) (float64, error) {
	raw, err := d.find(query{key: key, kind: numberValue, minSep: 1, anchored: true})
	if err != nil {
		return 0, err
	}
	return parseFloat(key, raw)
}

// WordInt is the integer form of WordNumber. Only an optional leading '-'
// and digits are accepted.
func (d *Document) WordInt(key string) (int, error) {
	raw, err := d.find(query{key: key, kind: numberValue, minSep: 1, anchored: true})
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", key, raw, ErrUnparsable)
	}
	return int(n), nil
}

// Floor3 floors v to three decimals, toward negative infinity.
func Floor3(v float64) float64 {
	return math.Floor(v*1000) / 1000
}

// find scans every occurrence of q.key in order and returns the value of the
// first one that satisfies q.
func (d *Document) find(q query) (string, error) {
	text := d.text
	for from := 0; from <= len(text); {
		i := strings.Index(text[from:], q.key)
		if i < 0 {
			break
		}
		start := from + i
		from = start + 1
		if q.anchored && start > 0 {
			if r, _ := utf8.DecodeLastRuneInString(text[:start]); isWordRune(r) {
				continue
			}
		}
		if v, ok := q.valueAt(text, start+len(q.key)); ok {
			return v, nil
		}
	}
	return "", fmt.Errorf("%s: %w", q.key, ErrMissing)
}

func (q query) valueAt(text string, pos int) (string, bool) {
	if q.kind == pathValue {
		return pathAt(text, pos)
	}

	seps := 0
	for pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if !isSeparator(r) {
			break
		}
		pos += size
		seps++
	}
	if seps < q.minSep {
		return "", false
	}

	accept := isValueRune
	switch q.kind {
	case numberValue:
		accept = isNumberRune
	case digitValue:
		accept = isDigitRune
	}
	end := pos
	for end < len(text) {
		r, size := utf8.DecodeRuneInString(text[end:])
		if !accept(r) {
			break
		}
		end += size
	}
	if end == pos {
		return "", false
	}
	return text[pos:end], true
}

// pathAt consumes the single delimiter rune that follows a File key (any
// rune but a newline), skips further control runes, then takes the run of
// non-control runes.
func pathAt(text string, pos int) (string, bool) {
	if pos >= len(text) {
		return "", false
	}
	r, size := utf8.DecodeRuneInString(text[pos:])
	if r == '\n' {
		return "", false
	}
	pos += size
	for pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if !isControl(r) {
			break
		}
		pos += size
	}
	end := pos
	for end < len(text) {
		r, size := utf8.DecodeRuneInString(text[end:])
		if isControl(r) {
			break
		}
		end += size
	}
	if end == pos {
		return "", false
	}
	return text[pos:end], true
}

func parseFloat(key, raw string) (float64, error) {
	s := raw
	// A trailing sign is accepted the way invariant-culture parsing does.
	if n := len(s); n > 1 && s[n-1] == '-' && s[0] != '-' {
		s = "-" + s[:n-1]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s %q: %w", key, raw, ErrUnparsable)
	}
	return v, nil
}

func isControl(r rune) bool { return r <= 0x1F || r == 0x7F }

func isSeparator(r rune) bool { return isControl(r) || unicode.IsSpace(r) }

func isValueRune(r rune) bool { return !isSeparator(r) }

func isNumberRune(r rune) bool { return r == '-' || r == '.' || isDigitRune(r) }

func isDigitRune(r rune) bool { return r >= '0' && r <= '9' }

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) ||
		unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Pc, r)
}

// Reason maps a lookup error to the diagnostic reason recorded for it.
func Reason(err error) domain.DiagnosticReason {
	if errors.Is(err, ErrUnparsable) {
		return domain.ReasonUnparsable
	}
	return domain.ReasonMissing
}

package labware

import (
	"errors"

	"laydeck/internal/domain"
	"laydeck/internal/scan"
)

// Definition file keys.
const (
	KeyDimDx    = "Dim.Dx"
	KeyDimDy    = "Dim.Dy"
	KeyCntrBase = "Cntr.1.base"
	KeyIxIndex  = "IX.Index"
	KeyRows     = "Rows"
	KeyColumns  = "Columns"
	KeyHoleCnt  = "HoleCnt"
)

// Parse extracts LabwareProperties from definition content. Absent or
// unparsable values stay zero and are reported to sink with path attached.
//
// When neither Rows nor Columns is present, HoleCnt is used as the row count.
func Parse(content []byte, path string, sink domain.DiagnosticSink) domain.LabwareProperties {
	doc := scan.New(content)
	var props domain.LabwareProperties

	report := func(field string, err error) {
		sink.Report(domain.Diagnostic{Field: field, Path: path, Reason: scan.Reason(err)})
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{KeyDimDx, &props.DimDx},
		{KeyDimDy, &props.DimDy},
		{KeyCntrBase, &props.CntrBase},
	}
	for _, f := range floats {
		v, err := doc.WordNumber(f.key)
		if err != nil {
			report(f.key, err)
			continue
		}
		*f.dst = v
	}

	if v, err := doc.WordInt(KeyIxIndex); err != nil {
		report(KeyIxIndex, err)
	} else {
		props.IxIndex = v
	}

	rows, rowsErr := doc.WordInt(KeyRows)
	if rowsErr == nil {
		props.Rows = rows
	}
	cols, colsErr := doc.WordInt(KeyColumns)
	if colsErr == nil {
		props.Columns = cols
	}
	if rowsErr == nil || colsErr == nil {
		return props
	}

	holes, err := doc.WordInt(KeyHoleCnt)
	if err != nil {
		// None of the grid keys are usable.
		report(KeyRows, errors.Join(rowsErr, colsErr, err))
		return props
	}
	props.Rows = holes
	return props
}

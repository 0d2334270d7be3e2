package deck

import (
	"fmt"

	"laydeck/internal/domain"
	"laydeck/internal/scan"
)

// CountKey holds the number of labware instances in a layout.
const CountKey = "Labware.Cnt"

// MaxCount bounds the number of records built from one layout. A larger
// declared count is clamped to it.
const MaxCount = 10000

// Key returns the attribute key of property for the labware at index.
func Key(index int, property string) string {
	return fmt.Sprintf("Labware.%d.%s", index, property)
}

// Assemble builds one RawLabwareRecord per declared labware instance, in
// index order. It returns nil when the count header is missing or not a
// number, and clamps a count above MaxCount. Every field defaults on its own;
// sink receives one Diagnostic per defaulted field.
func Assemble(doc *scan.Document, resolver domain.PathResolver, sink domain.DiagnosticSink) []domain.RawLabwareRecord {
	count, err := doc.Count(CountKey)
	if err != nil {
		sink.Report(domain.Diagnostic{Field: CountKey, Reason: domain.ReasonCountMissing})
		return nil
	}

	if count > MaxCount {
		sink.Report(domain.Diagnostic{Field: CountKey, Reason: domain.ReasonCountClamped})
		count = MaxCount
	}

	var records []domain.RawLabwareRecord
	for i := 1; i <= count; i++ {
		records = append(records, assembleOne(doc, i, resolver, sink))
	}
	return records
}

func assembleOne(doc *scan.Document, i int, resolver domain.PathResolver, sink domain.DiagnosticSink) domain.RawLabwareRecord {
	rec := domain.RawLabwareRecord{Index: i}
	report := func(field string, err error) {
		if err != nil {
			sink.Report(domain.Diagnostic{Index: i, Field: field, Reason: scan.Reason(err)})
		}
	}

	raw, err := doc.Path(Key(i, "File"))
	report("File", err)
	rec.FilePath = resolver.Resolve(raw)

	strs := []struct {
		name string
		dst  *string
	}{
		{"Id", &rec.ID},
		{"SiteId", &rec.SiteID},
		{"Template", &rec.Template},
	}
	for _, f := range strs {
		*f.dst, err = doc.Token(Key(i, f.name))
		report(f.name, err)
	}

	rec.ZTrans, err = doc.Number(Key(i, "ZTrans"))
	report("ZTrans", err)
	rec.ZTransValue, err = doc.Number(Key(i, "ZTransValue"))
	report("ZTransValue", err)

	tforms := [3]*domain.Vector3{&rec.TForm1, &rec.TForm2, &rec.TForm3}
	for m, dst := range tforms {
		prefix := fmt.Sprintf("TForm.%d", m+1)
		v, errs := doc.Vector(Key(i, prefix))
		*dst = v
		for a, axis := range [3]string{"X", "Y", "Z"} {
			report(prefix+"."+axis, errs[a])
		}
	}
	return rec
}

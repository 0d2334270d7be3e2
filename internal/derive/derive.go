package derive

import (
	"strings"

	"laydeck/internal/domain"
	"laydeck/internal/paths"
)

// defaultTemplate marks a labware placed without an explicit template.
const defaultTemplate = "default"

// tipRackBase is the container base offset below which a rack holds tips.
const tipRackBase = -10.0

// Classify maps a definition file's extension to a labware type. A rack
// placed with the default template is a rack carrier.
func Classify(filePath, template string) domain.LabwareType {
	t := domain.Unknown
	switch strings.ToLower(paths.Ext(filePath)) {
	case ".tml":
		t = domain.Carrier
	case ".rck":
		t = domain.Rack
	case ".ctr":
		t = domain.Container
	}
	if t == domain.Rack && template == defaultTemplate {
		t = domain.RackCarrier
	}
	return t
}

// Derive combines raw with props. Only TForm3 contributes to the final X and
// Y; the final Z is ZTrans alone.
func Derive(raw domain.RawLabwareRecord, props domain.LabwareProperties) domain.DerivedLabwareRecord {
	typ := Classify(raw.FilePath, raw.Template)

	column := props.Columns
	if props.Rows > 0 && props.Columns == 0 {
		column = 1
	}

	template := raw.Template
	if template == defaultTemplate {
		template = ""
	}

	return domain.DerivedLabwareRecord{
		Index:       raw.Index,
		ID:          raw.ID,
		FilePath:    raw.FilePath,
		FinalX:      raw.TForm3.X,
		FinalY:      raw.TForm3.Y,
		FinalZ:      raw.ZTrans,
		Template:    template,
		LabwareType: typ,
		Loadable:    typ == domain.Carrier && raw.SiteID != "",
		Dx:          props.DimDx,
		Dy:          props.DimDy,
		Column:      column,
		Row:         props.Rows,
		AlphaIndex:  props.IxIndex == 1,
		TipRack:     props.CntrBase < tipRackBase,
	}
}

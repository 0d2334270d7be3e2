package types

import "fmt"

// Vector3 is one of the three TForm components recorded per labware instance.
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// String formats the vector with three decimals per axis.
func (v Vector3) String() string {
	return fmt.Sprintf("X=%.3f, Y=%.3f, Z=%.3f", v.X, v.Y, v.Z)
}

// RawLabwareRecord is one labware instance as read from the deck layout,
// before any secondary file has been consulted.
//
// Index is 1-based and equals the position of the record in the layout.
type RawLabwareRecord struct {
	Index       int     `json:"index"`
	FilePath    string  `json:"file_path"`
	ID          string  `json:"id"`
	SiteID      string  `json:"site_id"`
	Template    string  `json:"template"`
	ZTrans      float64 `json:"z_trans"`
	ZTransValue float64 `json:"z_trans_value"`
	TForm1      Vector3 `json:"tform1"`
	TForm2      Vector3 `json:"tform2"`
	TForm3      Vector3 `json:"tform3"`
}

// LabwareProperties holds the geometry read from a labware definition file.
// The zero value is what a missing or unreadable definition yields.
type LabwareProperties struct {
	DimDx    float64 `json:"dim_dx"`
	DimDy    float64 `json:"dim_dy"`
	CntrBase float64 `json:"cntr_base"`
	Rows     int     `json:"rows"`
	Columns  int     `json:"columns"`
	IxIndex  int     `json:"ix_index"`
}

// DerivedLabwareRecord is the classified, presentation-ready form of a
// RawLabwareRecord combined with its LabwareProperties.
type DerivedLabwareRecord struct {
	Index       int         `json:"index"`
	ID          string      `json:"id"`
	FilePath    string      `json:"file_path"`
	FinalX      float64     `json:"final_x"`
	FinalY      float64     `json:"final_y"`
	FinalZ      float64     `json:"final_z"`
	Template    string      `json:"template"`
	LabwareType LabwareType `json:"labware_type"`
	Loadable    bool        `json:"loadable"`
	Dx          float64     `json:"dx"`
	Dy          float64     `json:"dy"`
	Column      int         `json:"column"`
	Row         int         `json:"row"`
	AlphaIndex  bool        `json:"alpha_index"`
	TipRack     bool        `json:"tip_rack"`
}

package model

// TLESource indicates where a satellite's two-line element set came from.
type TLESource int

const (
	TLESourceUnknown    TLESource = iota
	TLESourceSpacetrack           // fetched from a Space-Track style catalog
	TLESourceScenario             // embedded in a viewer scenario file
)

// SatelliteDefinition identifies a trackable satellite and carries the TLE
// needed to propagate it. The viewer addresses satellites by Name; NoradID
// is kept for catalog lookups and display.
type SatelliteDefinition struct {
	Name    string
	NoradID uint32

	TLELine1 string
	TLELine2 string
	Source   TLESource
}

// HasTLE reports whether the definition carries a usable element set.
func (s SatelliteDefinition) HasTLE() bool {
	return s.TLELine1 != "" && s.TLELine2 != ""
}

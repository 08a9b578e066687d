package core

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	satellite "github.com/joshuaferrara/go-satellite"

	"github.com/signalsfoundry/space-map/model"
)

// ErrSatelliteUnknown is returned when a position is requested for a
// satellite the provider has no element set for.
var ErrSatelliteUnknown = errors.New("satellite unknown")

// GeodeticCoordinates is the lat/lon/alt triple shown in the viewer overlay.
type GeodeticCoordinates struct {
	LatitudeDeg  float64
	LongitudeDeg float64
	AltitudeKm   float64
}

// EphemerisProvider answers position queries for named satellites. Both
// methods are synchronous and safe for concurrent use.
type EphemerisProvider interface {
	// PositionECEF returns the satellite position in ECEF kilometres.
	PositionECEF(name string, at time.Time) (Vec3, error)
	// Geodetic returns the sub-satellite latitude/longitude and altitude.
	Geodetic(name string, at time.Time) (GeodeticCoordinates, error)
}

// SGP4Ephemeris propagates TLE element sets with SGP4. Element sets are
// loaded from satellite definitions; reloading a name replaces its
// propagator, which is how catalog TLE updates take effect.
type SGP4Ephemeris struct {
	mu   sync.RWMutex
	sats map[string]satellite.Satellite
}

// NewSGP4Ephemeris constructs an empty provider.
func NewSGP4Ephemeris() *SGP4Ephemeris {
	return &SGP4Ephemeris{sats: make(map[string]satellite.Satellite)}
}

// Load registers (or replaces) the propagator for a satellite definition.
func (e *SGP4Ephemeris) Load(def model.SatelliteDefinition) error {
	if def.Name == "" {
		return fmt.Errorf("load satellite: name is required")
	}
	if !def.HasTLE() {
		return fmt.Errorf("load satellite %q: TLE lines are required", def.Name)
	}
	sat := satellite.TLEToSat(def.TLELine1, def.TLELine2, satellite.GravityWGS72)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.sats[def.Name] = sat
	return nil
}

// Names returns the satellites the provider can currently propagate.
func (e *SGP4Ephemeris) Names() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	names := make([]string, 0, len(e.sats))
	for name := range e.sats {
		names = append(names, name)
	}
	return names
}

// PositionECEF propagates the named satellite to the given time and rotates
// the ECI result into the Earth-fixed frame. Implements EphemerisProvider
// and the scene selector's TargetResolver.
func (e *SGP4Ephemeris) PositionECEF(name string, at time.Time) (Vec3, error) {
	sat, ok := e.lookup(name)
	if !ok {
		return Vec3{}, fmt.Errorf("%w: %q", ErrSatelliteUnknown, name)
	}

	posECI, gmst := propagateECI(sat, at)
	posECEF := satellite.ECIToECEF(posECI, gmst)
	return Vec3{X: posECEF.X, Y: posECEF.Y, Z: posECEF.Z}, nil
}

// Geodetic propagates the named satellite and converts to sub-satellite
// latitude/longitude (degrees) and altitude (km).
func (e *SGP4Ephemeris) Geodetic(name string, at time.Time) (GeodeticCoordinates, error) {
	sat, ok := e.lookup(name)
	if !ok {
		return GeodeticCoordinates{}, fmt.Errorf("%w: %q", ErrSatelliteUnknown, name)
	}

	posECI, gmst := propagateECI(sat, at)
	alt, _, lla := satellite.ECIToLLA(posECI, gmst)
	return GeodeticCoordinates{
		LatitudeDeg:  lla.Latitude * 180 / math.Pi,
		LongitudeDeg: lla.Longitude * 180 / math.Pi,
		AltitudeKm:   alt,
	}, nil
}

func (e *SGP4Ephemeris) lookup(name string) (satellite.Satellite, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	sat, ok := e.sats[name]
	return sat, ok
}

// propagateECI runs SGP4 for the given wall-clock instant and returns the
// ECI position (km) along with GMST for frame rotation.
func propagateECI(sat satellite.Satellite, at time.Time) (satellite.Vector3, float64) {
	at = at.UTC()
	year, month, day := at.Date()
	hour, min, sec := at.Clock()

	pos, _ := satellite.Propagate(sat, year, int(month), day, hour, min, sec)
	jd := satellite.JDay(year, int(month), day, hour, min, sec)
	gmst := satellite.ThetaG_JD(jd)
	return pos, gmst
}

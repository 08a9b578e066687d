package core

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/signalsfoundry/space-map/model"
)

const (
	issTLE1 = "1 25544U 98067A   21275.59097222  .00000204  00000-0  10270-4 0  9990"
	issTLE2 = "2 25544  51.6459 115.9059 0001817  61.3028  35.9198 15.49370953257760"
)

func issDefinition() model.SatelliteDefinition {
	return model.SatelliteDefinition{
		Name:     "ISS (ZARYA)",
		NoradID:  25544,
		TLELine1: issTLE1,
		TLELine2: issTLE2,
		Source:   model.TLESourceScenario,
	}
}

func TestSGP4Ephemeris_PositionInLEORange(t *testing.T) {
	eph := NewSGP4Ephemeris()
	if err := eph.Load(issDefinition()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	at := time.Date(2021, 10, 2, 14, 0, 0, 0, time.UTC)
	pos, err := eph.PositionECEF("ISS (ZARYA)", at)
	if err != nil {
		t.Fatalf("PositionECEF returned error: %v", err)
	}

	// The ISS orbits at roughly 420 km altitude.
	r := pos.Norm()
	if r < EarthRadiusKm+200 || r > EarthRadiusKm+1000 {
		t.Errorf("ISS geocentric distance = %v km, want within LEO band", r)
	}
}

func TestSGP4Ephemeris_PositionMovesOverTime(t *testing.T) {
	eph := NewSGP4Ephemeris()
	if err := eph.Load(issDefinition()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	t0 := time.Date(2021, 10, 2, 14, 0, 0, 0, time.UTC)
	p0, err := eph.PositionECEF("ISS (ZARYA)", t0)
	if err != nil {
		t.Fatalf("PositionECEF returned error: %v", err)
	}
	p1, err := eph.PositionECEF("ISS (ZARYA)", t0.Add(time.Minute))
	if err != nil {
		t.Fatalf("PositionECEF returned error: %v", err)
	}

	// At ~7.7 km/s the ISS covers hundreds of kilometres per minute.
	if d := p0.DistanceTo(p1); d < 100 {
		t.Errorf("position moved only %v km in one minute", d)
	}
}

func TestSGP4Ephemeris_Geodetic(t *testing.T) {
	eph := NewSGP4Ephemeris()
	if err := eph.Load(issDefinition()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	geo, err := eph.Geodetic("ISS (ZARYA)", time.Date(2021, 10, 2, 14, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Geodetic returned error: %v", err)
	}

	// The ISS inclination bounds the sub-point latitude.
	if math.Abs(geo.LatitudeDeg) > 52 {
		t.Errorf("sub-point latitude = %v deg, beyond the 51.6 deg inclination", geo.LatitudeDeg)
	}
	if geo.AltitudeKm < 200 || geo.AltitudeKm > 1000 {
		t.Errorf("altitude = %v km, want within LEO band", geo.AltitudeKm)
	}
}

func TestSGP4Ephemeris_UnknownSatellite(t *testing.T) {
	eph := NewSGP4Ephemeris()
	if _, err := eph.PositionECEF("nope", time.Now()); !errors.Is(err, ErrSatelliteUnknown) {
		t.Errorf("PositionECEF error = %v, want ErrSatelliteUnknown", err)
	}
	if _, err := eph.Geodetic("nope", time.Now()); !errors.Is(err, ErrSatelliteUnknown) {
		t.Errorf("Geodetic error = %v, want ErrSatelliteUnknown", err)
	}
}

func TestSGP4Ephemeris_LoadValidation(t *testing.T) {
	eph := NewSGP4Ephemeris()
	if err := eph.Load(model.SatelliteDefinition{TLELine1: issTLE1, TLELine2: issTLE2}); err == nil {
		t.Error("Load accepted a definition with no name")
	}
	if err := eph.Load(model.SatelliteDefinition{Name: "x"}); err == nil {
		t.Error("Load accepted a definition with no TLE")
	}
}

func TestSGP4Ephemeris_Names(t *testing.T) {
	eph := NewSGP4Ephemeris()
	if err := eph.Load(issDefinition()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	names := eph.Names()
	if len(names) != 1 || names[0] != "ISS (ZARYA)" {
		t.Errorf("Names() = %v", names)
	}
}

package core

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/signalsfoundry/space-map/model"
)

// SatelliteStore is the slice of the catalog the loader needs.
type SatelliteStore interface {
	AddSatellite(def model.SatelliteDefinition) error
}

// ViewerScenario summarizes what was loaded and the requested start-up
// state. Mainly useful for logging and for main() to apply.
type ViewerScenario struct {
	SatelliteNames   []string
	InitialScene     Scene
	InitialQuality   RenderQuality
	TrackedSatellite string
	// PlanetRadiusKm overrides the camera's planet radius. Zero keeps
	// EarthRadiusKm.
	PlanetRadiusKm float64
}

// internal JSON shapes — unexported so the file format can evolve freely.
type viewerScenarioJSON struct {
	Satellites       []satelliteJSON `json:"satellites"`
	InitialScene     string          `json:"initial_scene"`
	InitialQuality   string          `json:"initial_quality"`
	TrackedSatellite string          `json:"tracked_satellite"`
	PlanetRadiusKm   float64         `json:"planet_radius_km"`
}

type satelliteJSON struct {
	Name    string `json:"name"`
	NoradID uint32 `json:"norad_id"`
	TLE1    string `json:"tle1"`
	TLE2    string `json:"tle2"`
}

// LoadViewerScenario reads a JSON scenario from r, fills the satellite
// store, and returns the start-up state. It fails on JSON or structural
// errors; a satellite the store rejects (e.g. a duplicate) fails the load
// too, since a scenario that half-applies is worse than one that doesn't.
func LoadViewerScenario(store SatelliteStore, r io.Reader) (*ViewerScenario, error) {
	if store == nil {
		return nil, fmt.Errorf("LoadViewerScenario: store is nil")
	}

	var payload viewerScenarioJSON
	dec := json.NewDecoder(r)
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("LoadViewerScenario: decode failed: %w", err)
	}

	if payload.PlanetRadiusKm < 0 {
		return nil, fmt.Errorf("LoadViewerScenario: planet radius %v must be positive", payload.PlanetRadiusKm)
	}

	result := &ViewerScenario{
		InitialScene:     ExploreView,
		InitialQuality:   QualityLow,
		TrackedSatellite: payload.TrackedSatellite,
		PlanetRadiusKm:   payload.PlanetRadiusKm,
	}

	if payload.InitialScene != "" {
		scene, err := ParseScene(payload.InitialScene)
		if err != nil {
			return nil, fmt.Errorf("LoadViewerScenario: %w", err)
		}
		result.InitialScene = scene
	}
	if payload.InitialQuality != "" {
		quality, err := ParseRenderQuality(payload.InitialQuality)
		if err != nil {
			return nil, fmt.Errorf("LoadViewerScenario: %w", err)
		}
		result.InitialQuality = quality
	}

	for _, js := range payload.Satellites {
		if js.Name == "" {
			return nil, fmt.Errorf("LoadViewerScenario: satellite with empty name")
		}
		if js.TLE1 == "" || js.TLE2 == "" {
			return nil, fmt.Errorf("LoadViewerScenario: satellite %q missing TLE lines", js.Name)
		}
		def := model.SatelliteDefinition{
			Name:     js.Name,
			NoradID:  js.NoradID,
			TLELine1: js.TLE1,
			TLELine2: js.TLE2,
			Source:   model.TLESourceScenario,
		}
		if err := store.AddSatellite(def); err != nil {
			return nil, fmt.Errorf("LoadViewerScenario: add satellite %q: %w", js.Name, err)
		}
		result.SatelliteNames = append(result.SatelliteNames, js.Name)
	}

	return result, nil
}

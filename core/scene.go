package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Scene enumerates the discrete views the application can show.
type Scene int

const (
	// GlobeView is the fixed overview of the planet.
	GlobeView Scene = iota
	// TrackingView follows the selected satellite.
	TrackingView
	// ExploreView gives the user free orbit control.
	ExploreView
)

func (s Scene) String() string {
	switch s {
	case GlobeView:
		return "globe"
	case TrackingView:
		return "tracking"
	case ExploreView:
		return "explore"
	default:
		return "unknown"
	}
}

// ParseScene converts a config/API string into a Scene.
func ParseScene(s string) (Scene, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "globe", "globe_view":
		return GlobeView, nil
	case "tracking", "tracking_view":
		return TrackingView, nil
	case "explore", "explore_view":
		return ExploreView, nil
	default:
		return GlobeView, fmt.Errorf("unknown scene %q", s)
	}
}

// ErrNoTrackedSatellite is returned when a scene needs a live satellite
// position but no satellite has been selected.
var ErrNoTrackedSatellite = errors.New("no tracked satellite selected")

// TargetResolver supplies live target positions; the SGP4 ephemeris provider
// implements it.
type TargetResolver interface {
	PositionECEF(name string, at time.Time) (Vec3, error)
}

// SceneSelector maps the active scene to a camera mode and a target rule.
// Fixed-origin rules resolve immediately; live rules defer to the resolver
// once per frame. It carries no hidden state beyond the scene value, the
// tracked satellite name, and the explore tracking sub-mode flag.
//
// Not internally synchronized; the view engine serializes access.
type SceneSelector struct {
	scene            Scene
	trackedSatellite string
	exploreTracking  bool
	resolver         TargetResolver
}

// NewSceneSelector builds a selector starting in the explore scene, matching
// the viewer's start-up behavior.
func NewSceneSelector(resolver TargetResolver) *SceneSelector {
	return &SceneSelector{
		scene:    ExploreView,
		resolver: resolver,
	}
}

// SetScene selects the active scene.
func (s *SceneSelector) SetScene(scene Scene) { s.scene = scene }

// Scene returns the current scene.
func (s *SceneSelector) Scene() Scene { return s.scene }

// SetTrackedSatellite selects the satellite used by live target rules.
func (s *SceneSelector) SetTrackedSatellite(name string) { s.trackedSatellite = name }

// TrackedSatellite returns the currently selected satellite name.
func (s *SceneSelector) TrackedSatellite() string { return s.trackedSatellite }

// SetExploreTracking toggles the explore sub-mode that orbits the tracked
// satellite instead of the planet.
func (s *SceneSelector) SetExploreTracking(enabled bool) { s.exploreTracking = enabled }

// ExploreTracking reports the explore tracking sub-mode.
func (s *SceneSelector) ExploreTracking() bool { return s.exploreTracking }

// CameraMode returns the camera mode required by the active scene.
func (s *SceneSelector) CameraMode() CameraMode {
	switch s.scene {
	case GlobeView:
		return CameraStatic
	case TrackingView:
		return CameraFollow
	default:
		return CameraOrbit
	}
}

// LiveTarget reports whether the active scene resolves its target from the
// ephemeris provider this frame.
func (s *SceneSelector) LiveTarget() bool {
	switch s.scene {
	case TrackingView:
		return true
	case ExploreView:
		return s.exploreTracking
	default:
		return false
	}
}

// ResolveTarget produces the frame's camera target. Fixed rules yield the
// planet origin; live rules query the resolver for the tracked satellite's
// current position.
func (s *SceneSelector) ResolveTarget(at time.Time) (CameraTarget, error) {
	if !s.LiveTarget() {
		return CameraTarget{Name: "Earth", Position: Vec3{}}, nil
	}
	if s.trackedSatellite == "" {
		return CameraTarget{}, ErrNoTrackedSatellite
	}
	if s.resolver == nil {
		return CameraTarget{}, fmt.Errorf("resolve %q: no target resolver configured", s.trackedSatellite)
	}
	pos, err := s.resolver.PositionECEF(s.trackedSatellite, at)
	if err != nil {
		return CameraTarget{}, fmt.Errorf("resolve %q: %w", s.trackedSatellite, err)
	}
	return CameraTarget{Name: s.trackedSatellite, Position: pos}, nil
}

package core

import (
	"sync"
	"time"
)

// FrameState is the immutable per-frame snapshot the engine publishes: what
// the renderer consumes, and what the status API reports.
type FrameState struct {
	Frame   uint64
	Time    time.Time
	Scene   Scene
	Mode    CameraMode
	Quality RenderQuality
	Target  CameraTarget
	View    ViewTransform
	Matrix  Mat4
	// Geodetic carries the tracked satellite's sub-point for the overlay;
	// nil when the frame's target rule is fixed.
	Geodetic *GeodeticCoordinates
}

// FrameMetricsRecorder receives per-frame observability data. The
// observability package provides the Prometheus-backed implementation.
type FrameMetricsRecorder interface {
	ObserveFrame(d time.Duration)
	SetViewState(scene Scene, mode CameraMode, distanceKm float64)
}

// ViewEngine orchestrates one frame: resolve the scene's target, feed it to
// the camera, compute the view transform, and publish a FrameState. All
// camera and selector access funnels through the engine's mutex because the
// frame clock and the HTTP control surface run on different goroutines.
type ViewEngine struct {
	mu        sync.Mutex
	camera    *Camera
	selector  *SceneSelector
	ephemeris EphemerisProvider
	metrics   FrameMetricsRecorder

	quality   RenderQuality
	frame     uint64
	last      FrameState
	listeners []func(FrameState)
}

// NewViewEngine wires the camera, selector, and ephemeris provider together.
// metrics may be nil.
func NewViewEngine(camera *Camera, selector *SceneSelector, ephemeris EphemerisProvider, metrics FrameMetricsRecorder) *ViewEngine {
	return &ViewEngine{
		camera:    camera,
		selector:  selector,
		ephemeris: ephemeris,
		metrics:   metrics,
		quality:   QualityLow,
	}
}

// RegisterFrameListener adds a callback invoked after every successful
// frame. Listeners run on the frame clock's goroutine.
func (e *ViewEngine) RegisterFrameListener(fn func(FrameState)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, fn)
}

// Step computes one frame at the given simulation time. On a target
// resolution failure the camera holds its last valid state and the previous
// FrameState is returned alongside the error.
func (e *ViewEngine) Step(simTime time.Time) (FrameState, error) {
	start := time.Now()

	e.mu.Lock()
	target, err := e.selector.ResolveTarget(simTime)
	if err != nil {
		last := e.last
		e.mu.Unlock()
		return last, err
	}

	e.camera.SetMode(e.selector.CameraMode())
	e.camera.SetTarget(target.Name, target.Position)

	vt := e.camera.ViewTransform()
	matrix, err := vt.Matrix()
	if err != nil {
		// Degenerate triples are guarded in the camera; if one slips
		// through, keep showing the previous frame rather than NaNs.
		last := e.last
		e.mu.Unlock()
		return last, err
	}

	var geo *GeodeticCoordinates
	if e.selector.LiveTarget() && e.ephemeris != nil {
		if g, gerr := e.ephemeris.Geodetic(target.Name, simTime); gerr == nil {
			geo = &g
		}
	}

	e.frame++
	state := FrameState{
		Frame:    e.frame,
		Time:     simTime,
		Scene:    e.selector.Scene(),
		Mode:     e.camera.Mode(),
		Quality:  e.quality,
		Target:   target,
		View:     vt,
		Matrix:   matrix,
		Geodetic: geo,
	}
	e.last = state
	listeners := e.listeners

	if e.metrics != nil {
		_, _, dist := e.camera.Orbit()
		e.metrics.SetViewState(state.Scene, state.Mode, dist)
	}
	e.mu.Unlock()

	if e.metrics != nil {
		e.metrics.ObserveFrame(time.Since(start))
	}
	for _, fn := range listeners {
		fn(state)
	}
	return state, nil
}

// LastFrame returns the most recently published FrameState.
func (e *ViewEngine) LastFrame() FrameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.last
}

// SetScene switches the active scene. The camera mode changes immediately;
// a live target is resolved on the next Step.
func (e *ViewEngine) SetScene(scene Scene) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.selector.SetScene(scene)
	e.camera.SetMode(e.selector.CameraMode())
}

// Scene returns the active scene.
func (e *ViewEngine) Scene() Scene {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.selector.Scene()
}

// SetExploreTracking toggles the explore scene's satellite-orbit sub-mode.
func (e *ViewEngine) SetExploreTracking(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.selector.SetExploreTracking(enabled)
}

// SetTrackedSatellite selects the satellite used by live target rules.
func (e *ViewEngine) SetTrackedSatellite(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.selector.SetTrackedSatellite(name)
}

// TrackedSatellite returns the currently selected satellite name.
func (e *ViewEngine) TrackedSatellite() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.selector.TrackedSatellite()
}

// SetQuality sets the render quality tier.
func (e *ViewEngine) SetQuality(q RenderQuality) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.quality = q
}

// Quality returns the render quality tier.
func (e *ViewEngine) Quality() RenderQuality {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.quality
}

// ApplyDrag forwards pointer-drag deltas to the camera.
func (e *ViewEngine) ApplyDrag(dx, dy float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.camera.ApplyDrag(dx, dy)
}

// ApplyScroll forwards a scroll delta to the camera.
func (e *ViewEngine) ApplyScroll(delta float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.camera.ApplyScroll(delta)
}

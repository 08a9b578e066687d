package core

import "math"

// CameraMode selects how the view transform is derived each frame.
type CameraMode int

const (
	// CameraStatic issues a fixed eye/center/up triple, independent of the
	// current target. Used by the globe overview scene.
	CameraStatic CameraMode = iota
	// CameraFollow derives the eye from the live target position, offset
	// radially outward, always facing the target.
	CameraFollow
	// CameraOrbit places the eye on a user-controlled sphere around the
	// target (yaw/pitch/distance).
	CameraOrbit
)

func (m CameraMode) String() string {
	switch m {
	case CameraStatic:
		return "static"
	case CameraFollow:
		return "follow"
	case CameraOrbit:
		return "orbit"
	default:
		return "unknown"
	}
}

// CameraTarget is the point the camera is interested in. It is an immutable
// value: SetTarget replaces it wholesale, so a renderer reading the previous
// frame's target never observes a half-updated position.
type CameraTarget struct {
	Name     string
	Position Vec3 // ECEF km
}

// ViewTransform is the eye/center/up triple a renderer feeds into its view
// matrix. Matrix() builds the equivalent 4×4 transform.
type ViewTransform struct {
	Eye    Vec3
	Center Vec3
	Up     Vec3
}

// Matrix returns the right-handed view matrix for the triple.
func (vt ViewTransform) Matrix() (Mat4, error) {
	return LookAt(vt.Eye, vt.Center, vt.Up)
}

// Orbit camera tuning. Distances are kilometres, angles degrees.
const (
	// PitchLimitDeg keeps the orbit camera away from the gimbal flip at the
	// poles.
	PitchLimitDeg = 89.0

	// OrbitDistanceEarthKm is the anchor distance restored whenever the
	// orbit target switches back to Earth.
	OrbitDistanceEarthKm = 20000.0
	// OrbitDistanceSatelliteKm is the closer anchor distance used when the
	// orbit target is a satellite rather than the planet.
	OrbitDistanceSatelliteKm = EarthRadiusKm + 1000.0

	// DefaultDragSensitivityDeg is the yaw/pitch change per pixel of drag.
	DefaultDragSensitivityDeg = 0.5

	// zoomFactorFloor keeps ApplyScroll responsive when the camera is parked
	// at the minimum altitude, where the altitude-proportional factor would
	// otherwise reach zero and pin the camera there.
	zoomFactorFloor = 0.01
)

// CameraConfig carries the values the camera needs up front. The camera
// never reaches back into the rest of the application.
type CameraConfig struct {
	PlanetRadiusKm float64
	// MinDistanceKm / MaxDistanceKm bound the orbit distance. Zero values
	// select the defaults derived from the planet radius.
	MinDistanceKm float64
	MaxDistanceKm float64
	// DragSensitivityDeg scales pointer-drag deltas into angle changes.
	// Zero selects DefaultDragSensitivityDeg.
	DragSensitivityDeg float64
	// FollowOffsetKm is the radial offset of the follow-mode eye beyond the
	// target. Zero selects half the planet radius.
	FollowOffsetKm float64
	// StaticEye/StaticCenter/StaticUp form the fixed static-mode triple.
	// A zero StaticEye selects the default overview triple.
	StaticEye    Vec3
	StaticCenter Vec3
	StaticUp     Vec3
}

// DefaultCameraConfig returns the Earth-viewer configuration.
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		PlanetRadiusKm:     EarthRadiusKm,
		MinDistanceKm:      EarthRadiusKm + 1,
		MaxDistanceKm:      EarthRadiusKm * 50,
		DragSensitivityDeg: DefaultDragSensitivityDeg,
		FollowOffsetKm:     EarthRadiusKm / 2,
		StaticEye:          Vec3{X: 0, Y: 0, Z: 30000},
		StaticCenter:       Vec3{},
		// +Y, not the rotation axis: the static view looks down -Z, so a +Z
		// up hint would be collinear with the view direction.
		StaticUp: Vec3{X: 0, Y: 1, Z: 0},
	}
}

func (c CameraConfig) withDefaults() CameraConfig {
	if c.PlanetRadiusKm == 0 {
		c.PlanetRadiusKm = EarthRadiusKm
	}
	if c.MinDistanceKm == 0 {
		c.MinDistanceKm = c.PlanetRadiusKm + 1
	}
	if c.MaxDistanceKm == 0 {
		c.MaxDistanceKm = c.PlanetRadiusKm * 50
	}
	if c.DragSensitivityDeg == 0 {
		c.DragSensitivityDeg = DefaultDragSensitivityDeg
	}
	if c.FollowOffsetKm == 0 {
		c.FollowOffsetKm = c.PlanetRadiusKm / 2
	}
	if c.StaticEye == (Vec3{}) {
		c.StaticEye = Vec3{X: 0, Y: 0, Z: c.PlanetRadiusKm * 4.7}
		c.StaticCenter = Vec3{}
		c.StaticUp = Vec3{X: 0, Y: 1, Z: 0}
	}
	return c
}

// Camera is the view-state machine. Mode transitions are externally driven;
// yaw/pitch/distance survive mode switches so returning to orbit resumes
// where the user left off.
//
// Camera is not internally synchronized: the view engine serializes all
// access.
type Camera struct {
	cfg    CameraConfig
	mode   CameraMode
	target CameraTarget

	yawDeg     float64
	pitchDeg   float64
	distanceKm float64
}

// NewCamera builds a camera in static mode targeting the planet center.
func NewCamera(cfg CameraConfig) *Camera {
	cfg = cfg.withDefaults()
	return &Camera{
		cfg:        cfg,
		mode:       CameraStatic,
		target:     CameraTarget{Name: "Earth"},
		distanceKm: clampFloat(OrbitDistanceEarthKm, cfg.MinDistanceKm, cfg.MaxDistanceKm),
	}
}

// Mode returns the active camera mode.
func (c *Camera) Mode() CameraMode { return c.mode }

// Target returns the current target value.
func (c *Camera) Target() CameraTarget { return c.target }

// Orbit returns the stored orbit parameters (yaw deg, pitch deg, distance km).
func (c *Camera) Orbit() (yawDeg, pitchDeg, distanceKm float64) {
	return c.yawDeg, c.pitchDeg, c.distanceKm
}

// SetMode switches the camera mode. Stored orbit angles and distance are
// deliberately untouched.
func (c *Camera) SetMode(mode CameraMode) {
	c.mode = mode
}

// SetTarget replaces the current target. When the target identity changes,
// the orbit anchor distance is reset: Earth gets the wide overview distance,
// anything else the closer satellite distance.
func (c *Camera) SetTarget(name string, position Vec3) {
	identityChanged := name != c.target.Name
	c.target = CameraTarget{Name: name, Position: position}
	if identityChanged {
		anchor := OrbitDistanceSatelliteKm
		if name == "Earth" {
			anchor = OrbitDistanceEarthKm
		}
		c.distanceKm = clampFloat(anchor, c.cfg.MinDistanceKm, c.cfg.MaxDistanceKm)
	}
}

// SetOrbit restores stored orbit parameters, applying the usual pitch and
// distance clamps. Used when reloading a saved view.
func (c *Camera) SetOrbit(yawDeg, pitchDeg, distanceKm float64) {
	c.yawDeg = yawDeg
	c.pitchDeg = clampFloat(pitchDeg, -PitchLimitDeg, PitchLimitDeg)
	c.distanceKm = clampFloat(distanceKm, c.cfg.MinDistanceKm, c.cfg.MaxDistanceKm)
}

// ApplyDrag feeds accumulated pointer-drag deltas (pixels) into the orbit
// angles. Horizontal drag turns yaw, vertical drag turns pitch; pitch is
// clamped to ±PitchLimitDeg. A no-op outside orbit mode.
func (c *Camera) ApplyDrag(dx, dy float64) {
	if c.mode != CameraOrbit {
		return
	}
	c.yawDeg -= dx * c.cfg.DragSensitivityDeg
	c.pitchDeg = clampFloat(c.pitchDeg+dy*c.cfg.DragSensitivityDeg, -PitchLimitDeg, PitchLimitDeg)
}

// ApplyScroll feeds a scroll delta into the orbit distance. The step is
// proportional to the normalized altitude, so zooming feels linear near the
// surface and accelerates further out. The result is clamped into
// [MinDistanceKm, MaxDistanceKm]. A no-op outside orbit mode.
func (c *Camera) ApplyScroll(delta float64) {
	if c.mode != CameraOrbit {
		return
	}
	span := c.cfg.MaxDistanceKm - c.cfg.MinDistanceKm
	t := (c.distanceKm - c.cfg.MinDistanceKm) / span
	if t < zoomFactorFloor {
		t = zoomFactorFloor
	}
	c.distanceKm = clampFloat(c.distanceKm-delta*t, c.cfg.MinDistanceKm, c.cfg.MaxDistanceKm)
}

// ViewTransform computes the eye/center/up triple for the active mode. It is
// a pure function of the camera state, called once per rendered frame.
func (c *Camera) ViewTransform() ViewTransform {
	switch c.mode {
	case CameraFollow:
		return c.followTransform()
	case CameraOrbit:
		return c.orbitTransform()
	default:
		return ViewTransform{
			Eye:    c.cfg.StaticEye,
			Center: c.cfg.StaticCenter,
			Up:     c.cfg.StaticUp,
		}
	}
}

// followTransform places the eye radially beyond the target, looking back at
// it, with up along the planet rotation axis. A target over a pole would make
// that up hint collinear with the view direction, so the hint falls back to
// +X there; a target at the origin falls back to the +Z offset direction.
func (c *Camera) followTransform() ViewTransform {
	outward := normalizeOr(c.target.Position, Vec3{X: 0, Y: 0, Z: 1})
	eye := c.target.Position.Add(outward.Scale(c.cfg.FollowOffsetKm))

	up := Vec3{X: 0, Y: 0, Z: 1}
	if outward.Cross(up).Norm() < 1e-9 {
		up = Vec3{X: 1, Y: 0, Z: 0}
	}
	return ViewTransform{Eye: eye, Center: c.target.Position, Up: up}
}

// orbitTransform converts the spherical orbit parameters around the target
// into a Cartesian eye position. Pitch clamping guarantees the up hint is
// never collinear with the view direction here.
func (c *Camera) orbitTransform() ViewTransform {
	yaw := c.yawDeg * math.Pi / 180
	pitch := c.pitchDeg * math.Pi / 180

	eye := Vec3{
		X: c.distanceKm*math.Sin(yaw)*math.Cos(pitch) + c.target.Position.X,
		Y: c.distanceKm*math.Sin(pitch) + c.target.Position.Y,
		Z: c.distanceKm*math.Cos(yaw)*math.Cos(pitch) + c.target.Position.Z,
	}
	return ViewTransform{
		Eye:    eye,
		Center: c.target.Position,
		Up:     Vec3{X: 0, Y: 1, Z: 0},
	}
}

package core

import (
	"math"
	"testing"
)

func TestNewCamera_StartsStatic(t *testing.T) {
	c := NewCamera(DefaultCameraConfig())
	if c.Mode() != CameraStatic {
		t.Errorf("initial mode = %v, want static", c.Mode())
	}
	if c.Target().Name != "Earth" {
		t.Errorf("initial target = %q, want Earth", c.Target().Name)
	}
}

func TestCamera_StaticTransform(t *testing.T) {
	c := NewCamera(DefaultCameraConfig())
	vt := c.ViewTransform()
	if vt.Eye != (Vec3{X: 0, Y: 0, Z: 30000}) {
		t.Errorf("static eye = %v, want (0,0,30000)", vt.Eye)
	}
	if vt.Center != (Vec3{}) {
		t.Errorf("static center = %v, want origin", vt.Center)
	}
	// Up must not be collinear with the view direction, or LookAt degenerates.
	if _, err := vt.Matrix(); err != nil {
		t.Fatalf("static view transform is degenerate: %v", err)
	}
}

func TestCamera_OrbitEyeAtZeroAngles(t *testing.T) {
	c := NewCamera(DefaultCameraConfig())
	c.SetMode(CameraOrbit)
	c.SetOrbit(0, 0, EarthRadiusKm+10)

	vt := c.ViewTransform()
	want := Vec3{X: 0, Y: 0, Z: EarthRadiusKm + 10}
	if !vecApproxEqual(vt.Eye, want, 1e-9) {
		t.Errorf("orbit eye = %v, want %v", vt.Eye, want)
	}
}

func TestCamera_OrbitEyeFollowsTargetOffset(t *testing.T) {
	c := NewCamera(DefaultCameraConfig())
	c.SetMode(CameraOrbit)
	c.SetTarget("sat", Vec3{X: 100, Y: 200, Z: 300})
	c.SetOrbit(0, 0, 8000)

	vt := c.ViewTransform()
	want := Vec3{X: 100, Y: 200, Z: 8300}
	if !vecApproxEqual(vt.Eye, want, 1e-9) {
		t.Errorf("orbit eye = %v, want %v", vt.Eye, want)
	}
	if vt.Center != (Vec3{X: 100, Y: 200, Z: 300}) {
		t.Errorf("orbit center = %v, want target position", vt.Center)
	}
}

func TestCamera_OrbitEyeStaysOnSphere(t *testing.T) {
	c := NewCamera(DefaultCameraConfig())
	c.SetMode(CameraOrbit)
	c.SetOrbit(0, 0, 15000)

	for i := 0; i < 40; i++ {
		c.ApplyDrag(17, -9)
		vt := c.ViewTransform()
		if d := vt.Eye.DistanceTo(vt.Center); math.Abs(d-15000) > 1e-6 {
			t.Fatalf("after %d drags eye left the orbit sphere: distance = %v", i+1, d)
		}
	}
}

func TestCamera_DragClampsPitch(t *testing.T) {
	c := NewCamera(DefaultCameraConfig())
	c.SetMode(CameraOrbit)

	// 1000 px at 0.5 deg/px would be 500 degrees of pitch.
	c.ApplyDrag(0, 1000)
	if _, pitch, _ := c.Orbit(); pitch != PitchLimitDeg {
		t.Errorf("pitch after large upward drag = %v, want %v", pitch, PitchLimitDeg)
	}
	c.ApplyDrag(0, -5000)
	if _, pitch, _ := c.Orbit(); pitch != -PitchLimitDeg {
		t.Errorf("pitch after large downward drag = %v, want %v", pitch, -PitchLimitDeg)
	}
}

func TestCamera_DragSensitivity(t *testing.T) {
	c := NewCamera(DefaultCameraConfig())
	c.SetMode(CameraOrbit)
	c.ApplyDrag(10, 4)
	yaw, pitch, _ := c.Orbit()
	if math.Abs(yaw-(-5)) > 1e-12 {
		t.Errorf("yaw after 10px drag = %v, want -5", yaw)
	}
	if math.Abs(pitch-2) > 1e-12 {
		t.Errorf("pitch after 4px drag = %v, want 2", pitch)
	}
}

func TestCamera_DragIgnoredOutsideOrbit(t *testing.T) {
	c := NewCamera(DefaultCameraConfig())
	c.ApplyDrag(100, 100)
	c.ApplyScroll(5000)
	yaw, pitch, dist := c.Orbit()
	if yaw != 0 || pitch != 0 {
		t.Errorf("static-mode drag changed angles: yaw=%v pitch=%v", yaw, pitch)
	}
	if dist != OrbitDistanceEarthKm {
		t.Errorf("static-mode scroll changed distance: %v", dist)
	}
}

func TestCamera_ScrollClampsAtMinDistance(t *testing.T) {
	cfg := DefaultCameraConfig()
	c := NewCamera(cfg)
	c.SetMode(CameraOrbit)

	for i := 0; i < 10000; i++ {
		c.ApplyScroll(1000)
	}
	if _, _, dist := c.Orbit(); dist != cfg.MinDistanceKm {
		t.Errorf("distance after repeated zoom-in = %v, want min %v", dist, cfg.MinDistanceKm)
	}
}

func TestCamera_ScrollRecoversFromMinDistance(t *testing.T) {
	c := NewCamera(DefaultCameraConfig())
	c.SetMode(CameraOrbit)
	for i := 0; i < 10000; i++ {
		c.ApplyScroll(1000)
	}
	_, _, atMin := c.Orbit()

	// Zooming out from the floor must still move the camera.
	c.ApplyScroll(-1000)
	if _, _, dist := c.Orbit(); dist <= atMin {
		t.Errorf("zoom-out from minimum did not move: %v -> %v", atMin, dist)
	}
}

func TestCamera_ScrollClampsAtMaxDistance(t *testing.T) {
	cfg := DefaultCameraConfig()
	c := NewCamera(cfg)
	c.SetMode(CameraOrbit)

	for i := 0; i < 100; i++ {
		c.ApplyScroll(-1e6)
	}
	if _, _, dist := c.Orbit(); dist != cfg.MaxDistanceKm {
		t.Errorf("distance after repeated zoom-out = %v, want max %v", dist, cfg.MaxDistanceKm)
	}
}

func TestCamera_ScrollStepScalesWithAltitude(t *testing.T) {
	c := NewCamera(DefaultCameraConfig())
	c.SetMode(CameraOrbit)

	c.SetOrbit(0, 0, 300000)
	c.ApplyScroll(100)
	_, _, afterFar := c.Orbit()
	farStep := 300000 - afterFar

	c.SetOrbit(0, 0, 8000)
	c.ApplyScroll(100)
	_, _, afterNear := c.Orbit()
	nearStep := 8000 - afterNear

	if farStep <= nearStep {
		t.Errorf("zoom step should grow with altitude: far=%v near=%v", farStep, nearStep)
	}
	if nearStep <= 0 {
		t.Errorf("near-surface zoom step = %v, want > 0", nearStep)
	}
}

func TestCamera_ModeSwitchPreservesOrbit(t *testing.T) {
	c := NewCamera(DefaultCameraConfig())
	c.SetMode(CameraOrbit)
	c.SetOrbit(33, -21, 12345)

	c.SetMode(CameraStatic)
	c.SetMode(CameraFollow)
	c.SetMode(CameraOrbit)

	yaw, pitch, dist := c.Orbit()
	if yaw != 33 || pitch != -21 || dist != 12345 {
		t.Errorf("orbit params after mode round-trip = (%v,%v,%v), want (33,-21,12345)", yaw, pitch, dist)
	}
}

func TestCamera_TargetSwitchResetsAnchorDistance(t *testing.T) {
	c := NewCamera(DefaultCameraConfig())
	c.SetMode(CameraOrbit)

	c.SetTarget("Satellite-1", Vec3{X: 7000})
	if _, _, dist := c.Orbit(); dist != OrbitDistanceSatelliteKm {
		t.Errorf("distance after switch to satellite = %v, want %v", dist, OrbitDistanceSatelliteKm)
	}

	c.ApplyScroll(-50000)
	c.SetTarget("Earth", Vec3{})
	if _, _, dist := c.Orbit(); dist != OrbitDistanceEarthKm {
		t.Errorf("distance after switch back to Earth = %v, want %v", dist, OrbitDistanceEarthKm)
	}
}

func TestCamera_SameTargetKeepsDistance(t *testing.T) {
	c := NewCamera(DefaultCameraConfig())
	c.SetMode(CameraOrbit)
	c.SetTarget("Satellite-1", Vec3{X: 7000})
	c.ApplyScroll(-3000)
	_, _, before := c.Orbit()

	// Position updates for the same identity must not reset the distance.
	c.SetTarget("Satellite-1", Vec3{X: 6900, Y: 400})
	if _, _, after := c.Orbit(); after != before {
		t.Errorf("distance changed on same-target position update: %v -> %v", before, after)
	}
}

func TestCamera_SetOrbitClamps(t *testing.T) {
	cfg := DefaultCameraConfig()
	c := NewCamera(cfg)
	c.SetOrbit(10, 500, 1)
	if _, pitch, dist := c.Orbit(); pitch != PitchLimitDeg || dist != cfg.MinDistanceKm {
		t.Errorf("SetOrbit did not clamp: pitch=%v dist=%v", pitch, dist)
	}
}

func TestCamera_FollowTransform(t *testing.T) {
	c := NewCamera(DefaultCameraConfig())
	c.SetMode(CameraFollow)
	c.SetTarget("sat", Vec3{X: 7000, Y: 0, Z: 0})

	vt := c.ViewTransform()
	want := Vec3{X: 7000 + EarthRadiusKm/2}
	if !vecApproxEqual(vt.Eye, want, 1e-9) {
		t.Errorf("follow eye = %v, want %v", vt.Eye, want)
	}
	if vt.Center != (Vec3{X: 7000}) {
		t.Errorf("follow center = %v, want target position", vt.Center)
	}
	if _, err := vt.Matrix(); err != nil {
		t.Fatalf("follow view transform is degenerate: %v", err)
	}
}

func TestCamera_FollowPolarTargetNotDegenerate(t *testing.T) {
	c := NewCamera(DefaultCameraConfig())
	c.SetMode(CameraFollow)
	// Target directly over the pole: the default +Z up hint would be
	// collinear with the view direction.
	c.SetTarget("polar", Vec3{X: 0, Y: 0, Z: 7000})

	vt := c.ViewTransform()
	if _, err := vt.Matrix(); err != nil {
		t.Fatalf("polar follow transform is degenerate: %v", err)
	}
}

func TestCamera_FollowOriginTargetNotDegenerate(t *testing.T) {
	c := NewCamera(DefaultCameraConfig())
	c.SetMode(CameraFollow)
	c.SetTarget("origin", Vec3{})

	vt := c.ViewTransform()
	if _, err := vt.Matrix(); err != nil {
		t.Fatalf("origin follow transform is degenerate: %v", err)
	}
}

func TestCamera_OrbitAtPitchLimitNotDegenerate(t *testing.T) {
	c := NewCamera(DefaultCameraConfig())
	c.SetMode(CameraOrbit)
	c.ApplyDrag(0, 1e6)

	vt := c.ViewTransform()
	if _, err := vt.Matrix(); err != nil {
		t.Fatalf("orbit transform at pitch limit is degenerate: %v", err)
	}
}

func TestCamera_YawWrapsContinuously(t *testing.T) {
	c := NewCamera(DefaultCameraConfig())
	c.SetMode(CameraOrbit)

	c.SetOrbit(359.9, 0, 15000)
	a := c.ViewTransform().Eye
	c.SetOrbit(-0.1, 0, 15000)
	b := c.ViewTransform().Eye
	if !vecApproxEqual(a, b, 1e-6) {
		t.Errorf("yaw 359.9 and -0.1 disagree: %v vs %v", a, b)
	}
}

func TestCameraMode_String(t *testing.T) {
	cases := map[CameraMode]string{
		CameraStatic:   "static",
		CameraFollow:   "follow",
		CameraOrbit:    "orbit",
		CameraMode(99): "unknown",
	}
	for mode, want := range cases {
		if got := mode.String(); got != want {
			t.Errorf("CameraMode(%d).String() = %q, want %q", mode, got, want)
		}
	}
}

package observability

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/signalsfoundry/space-map/core"
)

// ViewerCollector bundles Prometheus metrics for the frame loop and the HTTP
// control surface. It implements core.FrameMetricsRecorder.
type ViewerCollector struct {
	gatherer prometheus.Gatherer

	FramesTotal   prometheus.Counter
	FrameDuration prometheus.Histogram

	ActiveScene      *prometheus.GaugeVec
	ActiveCameraMode *prometheus.GaugeVec
	CameraDistanceKm prometheus.Gauge

	APIRequests  *prometheus.CounterVec
	APIDurations *prometheus.HistogramVec
}

var (
	sceneLabels = []string{"globe", "tracking", "explore"}
	modeLabels  = []string{"static", "follow", "orbit"}
)

// NewViewerCollector registers viewer Prometheus metrics against the
// provided registerer, defaulting to the global registry when nil.
// Registration is idempotent: an already-registered collector of the same
// shape is reused.
func NewViewerCollector(reg prometheus.Registerer) (*ViewerCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	frames, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "viewer_frames_total",
		Help: "Total number of rendered view frames.",
	}), "viewer_frames_total")
	if err != nil {
		return nil, err
	}

	frameDur, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "viewer_frame_duration_seconds",
		Help:    "View frame computation latency in seconds.",
		Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.016, 0.033, 0.1},
	}), "viewer_frame_duration_seconds")
	if err != nil {
		return nil, err
	}

	scene := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "viewer_active_scene",
		Help: "1 for the active scene, 0 otherwise.",
	}, []string{"scene"})
	scene, err = registerGaugeVec(reg, scene, "viewer_active_scene")
	if err != nil {
		return nil, err
	}

	mode := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "viewer_camera_mode",
		Help: "1 for the active camera mode, 0 otherwise.",
	}, []string{"mode"})
	mode, err = registerGaugeVec(reg, mode, "viewer_camera_mode")
	if err != nil {
		return nil, err
	}

	distance, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "viewer_camera_distance_km",
		Help: "Current orbit camera distance from its target in kilometres.",
	}), "viewer_camera_distance_km")
	if err != nil {
		return nil, err
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "api_requests_total",
		Help: "Total number of handled control API requests, labeled by method, route, and status code.",
	}, []string{"method", "route", "code"})
	requests, err = registerCounterVec(reg, requests, "api_requests_total")
	if err != nil {
		return nil, err
	}

	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "api_request_duration_seconds",
		Help:    "Control API request latency in seconds.",
		Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"method", "route"})
	durations, err = registerHistogramVec(reg, durations, "api_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	return &ViewerCollector{
		gatherer:         gatherer,
		FramesTotal:      frames,
		FrameDuration:    frameDur,
		ActiveScene:      scene,
		ActiveCameraMode: mode,
		CameraDistanceKm: distance,
		APIRequests:      requests,
		APIDurations:     durations,
	}, nil
}

// ObserveFrame records one completed frame. Implements
// core.FrameMetricsRecorder.
func (c *ViewerCollector) ObserveFrame(d time.Duration) {
	if c == nil {
		return
	}
	if c.FramesTotal != nil {
		c.FramesTotal.Inc()
	}
	if c.FrameDuration != nil {
		c.FrameDuration.Observe(d.Seconds())
	}
}

// SetViewState updates the scene/mode/distance gauges. Implements
// core.FrameMetricsRecorder.
func (c *ViewerCollector) SetViewState(scene core.Scene, mode core.CameraMode, distanceKm float64) {
	if c == nil {
		return
	}
	if c.ActiveScene != nil {
		for _, label := range sceneLabels {
			value := 0.0
			if label == scene.String() {
				value = 1
			}
			c.ActiveScene.WithLabelValues(label).Set(value)
		}
	}
	if c.ActiveCameraMode != nil {
		for _, label := range modeLabels {
			value := 0.0
			if label == mode.String() {
				value = 1
			}
			c.ActiveCameraMode.WithLabelValues(label).Set(value)
		}
	}
	if c.CameraDistanceKm != nil {
		c.CameraDistanceKm.Set(distanceKm)
	}
}

// GinMiddleware records request counts and durations for the control API.
func (c *ViewerCollector) GinMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		if c == nil {
			return
		}
		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := ctx.Request.Method
		code := strconv.Itoa(ctx.Writer.Status())

		if c.APIRequests != nil {
			c.APIRequests.WithLabelValues(method, route, code).Inc()
		}
		if c.APIDurations != nil {
			c.APIDurations.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		}
	}
}

// Handler exposes a ready-to-use /metrics handler.
func (c *ViewerCollector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogram(reg prometheus.Registerer, hist prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(hist); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return hist, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}

func registerGaugeVec(reg prometheus.Registerer, vec *prometheus.GaugeVec, name string) (*prometheus.GaugeVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.GaugeVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

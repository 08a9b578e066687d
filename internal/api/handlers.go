package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/signalsfoundry/space-map/core"
	"github.com/signalsfoundry/space-map/model"
)

type vec3JSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func toVec3JSON(v core.Vec3) vec3JSON { return vec3JSON{X: v.X, Y: v.Y, Z: v.Z} }

type geodeticJSON struct {
	LatitudeDeg  float64 `json:"latitude_deg"`
	LongitudeDeg float64 `json:"longitude_deg"`
	AltitudeKm   float64 `json:"altitude_km"`
}

type statusResponse struct {
	Frame    uint64        `json:"frame"`
	Time     string        `json:"time"`
	Scene    string        `json:"scene"`
	Mode     string        `json:"camera_mode"`
	Quality  string        `json:"quality"`
	Target   string        `json:"target"`
	Position vec3JSON      `json:"target_position_km"`
	Eye      vec3JSON      `json:"eye_km"`
	Center   vec3JSON      `json:"center_km"`
	Up       vec3JSON      `json:"up"`
	Geodetic *geodeticJSON `json:"geodetic,omitempty"`
}

func (s *Server) getStatus(c *gin.Context) {
	state := s.engine.LastFrame()

	resp := statusResponse{
		Frame:    state.Frame,
		Time:     state.Time.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		Scene:    state.Scene.String(),
		Mode:     state.Mode.String(),
		Quality:  state.Quality.String(),
		Target:   state.Target.Name,
		Position: toVec3JSON(state.Target.Position),
		Eye:      toVec3JSON(state.View.Eye),
		Center:   toVec3JSON(state.View.Center),
		Up:       toVec3JSON(state.View.Up),
	}
	if state.Geodetic != nil {
		resp.Geodetic = &geodeticJSON{
			LatitudeDeg:  state.Geodetic.LatitudeDeg,
			LongitudeDeg: state.Geodetic.LongitudeDeg,
			AltitudeKm:   state.Geodetic.AltitudeKm,
		}
	}
	c.JSON(http.StatusOK, resp)
}

type sceneRequest struct {
	Scene           string `json:"scene"`
	ExploreTracking *bool  `json:"explore_tracking,omitempty"`
}

func (s *Server) putScene(c *gin.Context) {
	var req sceneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, fmt.Errorf("%w: %v", ErrInvalidRequest, err))
		return
	}

	scene, err := core.ParseScene(req.Scene)
	if err != nil {
		abortWithError(c, fmt.Errorf("%w: %v", ErrInvalidRequest, err))
		return
	}

	s.engine.SetScene(scene)
	if req.ExploreTracking != nil {
		s.engine.SetExploreTracking(*req.ExploreTracking)
	}
	c.JSON(http.StatusOK, gin.H{"scene": scene.String()})
}

type qualityRequest struct {
	Quality string `json:"quality"`
}

func (s *Server) putQuality(c *gin.Context) {
	var req qualityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, fmt.Errorf("%w: %v", ErrInvalidRequest, err))
		return
	}

	quality, err := core.ParseRenderQuality(req.Quality)
	if err != nil {
		abortWithError(c, fmt.Errorf("%w: %v", ErrInvalidRequest, err))
		return
	}

	s.engine.SetQuality(quality)
	settings := quality.Settings()
	c.JSON(http.StatusOK, gin.H{
		"quality":          quality.String(),
		"sphere_segments":  settings.SphereSegments,
		"smooth_shading":   settings.SmoothShading,
		"lighting_enabled": settings.LightingEnabled,
		"texture_set":      settings.TextureSet,
	})
}

type targetRequest struct {
	Name string `json:"name"`
}

func (s *Server) putTarget(c *gin.Context) {
	var req targetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, fmt.Errorf("%w: %v", ErrInvalidRequest, err))
		return
	}
	if req.Name == "" {
		abortWithError(c, fmt.Errorf("%w: name is required", ErrInvalidRequest))
		return
	}

	if _, err := s.catalog.GetSatellite(req.Name); err != nil {
		abortWithError(c, err)
		return
	}

	s.engine.SetTrackedSatellite(req.Name)
	c.JSON(http.StatusOK, gin.H{"tracked_satellite": req.Name})
}

type dragRequest struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

func (s *Server) postDrag(c *gin.Context) {
	var req dragRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, fmt.Errorf("%w: %v", ErrInvalidRequest, err))
		return
	}
	s.engine.ApplyDrag(req.DX, req.DY)
	c.Status(http.StatusNoContent)
}

type scrollRequest struct {
	Delta float64 `json:"delta"`
}

func (s *Server) postScroll(c *gin.Context) {
	var req scrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, fmt.Errorf("%w: %v", ErrInvalidRequest, err))
		return
	}
	s.engine.ApplyScroll(req.Delta)
	c.Status(http.StatusNoContent)
}

type satelliteJSON struct {
	Name    string `json:"name"`
	NoradID uint32 `json:"norad_id"`
	TLE1    string `json:"tle1,omitempty"`
	TLE2    string `json:"tle2,omitempty"`
}

func (s *Server) listSatellites(c *gin.Context) {
	defs := s.catalog.ListSatellites()
	out := make([]satelliteJSON, 0, len(defs))
	for _, def := range defs {
		out = append(out, satelliteJSON{Name: def.Name, NoradID: def.NoradID})
	}
	c.JSON(http.StatusOK, gin.H{"satellites": out})
}

func (s *Server) addSatellite(c *gin.Context) {
	var req satelliteJSON
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, fmt.Errorf("%w: %v", ErrInvalidRequest, err))
		return
	}
	if req.Name == "" || req.TLE1 == "" || req.TLE2 == "" {
		abortWithError(c, fmt.Errorf("%w: name, tle1, and tle2 are required", ErrInvalidRequest))
		return
	}

	def := model.SatelliteDefinition{
		Name:     req.Name,
		NoradID:  req.NoradID,
		TLELine1: req.TLE1,
		TLELine2: req.TLE2,
		Source:   model.TLESourceSpacetrack,
	}
	if err := s.catalog.AddSatellite(def); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"name": req.Name})
}

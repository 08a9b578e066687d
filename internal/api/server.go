// Package api exposes the viewer's control and status surface over HTTP.
// Scene, quality, and target selection plus raw input deltas come in here;
// the per-frame state and the satellite catalog are read back out.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/signalsfoundry/space-map/catalog"
	"github.com/signalsfoundry/space-map/core"
	"github.com/signalsfoundry/space-map/internal/logging"
	"github.com/signalsfoundry/space-map/internal/observability"
)

// Server owns the HTTP routes of the viewer daemon.
type Server struct {
	engine    *core.ViewEngine
	catalog   *catalog.Catalog
	log       logging.Logger
	collector *observability.ViewerCollector
}

// NewServer wires the view engine and catalog into an HTTP server. log and
// collector may be nil.
func NewServer(engine *core.ViewEngine, cat *catalog.Catalog, log logging.Logger, collector *observability.ViewerCollector) *Server {
	if log == nil {
		log = logging.Noop()
	}
	return &Server{
		engine:    engine,
		catalog:   cat,
		log:       log,
		collector: collector,
	}
}

// Router builds the gin engine with middleware and all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware(s.log))
	router.Use(TracingMiddleware())
	if s.collector != nil {
		router.Use(s.collector.GinMiddleware())
		router.GET("/metrics", gin.WrapH(s.collector.Handler()))
	}

	v1 := router.Group("/v1")
	{
		v1.GET("/status", s.getStatus)
		v1.PUT("/scene", s.putScene)
		v1.PUT("/quality", s.putQuality)
		v1.PUT("/target", s.putTarget)
		v1.POST("/input/drag", s.postDrag)
		v1.POST("/input/scroll", s.postScroll)
		v1.GET("/satellites", s.listSatellites)
		v1.POST("/satellites", s.addSatellite)
	}

	return router
}

// Run serves the router on addr, blocking until the server stops.
func (s *Server) Run(addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Router()}
	return srv.ListenAndServe()
}

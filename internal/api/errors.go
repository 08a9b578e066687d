package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/signalsfoundry/space-map/catalog"
	"github.com/signalsfoundry/space-map/core"
)

// ErrInvalidRequest is the sentinel for client-side validation failures.
var ErrInvalidRequest = errors.New("invalid request")

// statusFromError maps viewer errors onto HTTP status codes.
func statusFromError(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, catalog.ErrSatelliteNotFound),
		errors.Is(err, core.ErrSatelliteUnknown):
		return http.StatusNotFound
	case errors.Is(err, catalog.ErrSatelliteExists):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// abortWithError records the error on the gin context and writes the mapped
// status with a JSON body.
func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(statusFromError(err), gin.H{"error": err.Error()})
}

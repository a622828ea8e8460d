package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"groupbook/internal/ports/input"
	"groupbook/internal/ports/output"
)

// Pinger reports whether a dependency (the database pool) is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewRouter wires the public booking API.
//
//	GET  /health, /ready
//	GET  /api/v1/booking/:users/:slug
//	GET  /api/v1/users/:users/event-types
//	POST /api/v1/links
//	GET  /api/v1/event-types/defaults[/:slug]
func NewRouter(booking input.BookingUseCase, translator output.Translator, db Pinger, publicBaseURL string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	h := &Handler{
		booking:       booking,
		translator:    translator,
		publicBaseURL: publicBaseURL,
	}
	api := r.Group("/api/v1")
	h.RegisterBookingRoutes(api)
	h.RegisterEventTypeRoutes(api)

	return r
}

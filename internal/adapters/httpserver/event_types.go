package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterEventTypeRoutes exposes the default event types. Unknown slugs
// resolve to the first default rather than 404.
func (h *Handler) RegisterEventTypeRoutes(r gin.IRoutes) {
	r.GET("/event-types/defaults", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"eventTypes": toEventTypeResponses(h.booking.DefaultEventTypes())})
	})
	r.GET("/event-types/defaults/:slug", func(c *gin.Context) {
		c.JSON(http.StatusOK, toEventTypeResponse(h.booking.DefaultEventType(c.Param("slug"))))
	})
}

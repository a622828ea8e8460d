package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers the booking-link endpoints.
//
// GET  /booking/:users/:slug     resolves /alice+bob/s1-eg style links
// GET  /users/:users/event-types lists bookable event types for a profile link
// POST /links                    builds a shareable link for usernames + slug
func (h *Handler) RegisterBookingRoutes(r gin.IRoutes) {
	r.GET("/booking/:users/:slug", h.getBookingPage)
	r.GET("/users/:users/event-types", h.listUserEventTypes)
	r.POST("/links", h.createLink)
}

func (h *Handler) getBookingPage(c *gin.Context) {
	page, err := h.booking.ResolveBookingPage(c.Request.Context(), c.Param("users"), c.Param("slug"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookingPageResponse{
		Usernames:   page.Usernames,
		GroupName:   page.GroupName,
		IsDynamic:   page.IsDynamic,
		Title:       page.Title,
		Description: page.Description,
		Path:        page.Path,
		URL:         h.publicBaseURL + page.Path,
		Users:       toUserResponses(page.Users),
		EventType:   toEventTypeResponse(page.EventType),
	})
}

func (h *Handler) listUserEventTypes(c *gin.Context) {
	eventTypes, err := h.booking.ListEventTypes(c.Request.Context(), c.Param("users"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"eventTypes": toEventTypeResponses(eventTypes)})
}

func (h *Handler) createLink(c *gin.Context) {
	var req linkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBadPayload(c)
		return
	}

	path, err := h.booking.ShareLink(c.Request.Context(), req.Usernames, req.Slug)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, linkResponse{Path: path, URL: h.publicBaseURL + path})
}

package httpserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"groupbook/internal/domain"
	"groupbook/internal/ports/input"
	"groupbook/internal/ports/output"
)

// Handler serves the booking API on top of the booking use case.
type Handler struct {
	booking       input.BookingUseCase
	translator    output.Translator
	publicBaseURL string
}

var errStatus = map[string]int{
	domain.CodeEmptyUserList:          http.StatusBadRequest,
	domain.CodeInvalidSlug:            http.StatusBadRequest,
	domain.CodeUserNotFound:           http.StatusNotFound,
	domain.CodeEventTypeNotFound:      http.StatusNotFound,
	domain.CodeDynamicBookingDisabled: http.StatusForbidden,
}

// respondError writes a localized {"code","error"} payload. Errors without a
// domain code are logged and reported as 500.
func (h *Handler) respondError(c *gin.Context, err error) {
	locale := c.GetHeader("Accept-Language")
	code := domain.Code(err)
	status, ok := errStatus[code]
	if !ok {
		requestID, _ := c.Get(requestIDCtxKey)
		log.Printf("❌ %s %s: %v (request_id=%v)", c.Request.Method, c.Request.URL.Path, err, requestID)
		status = http.StatusInternalServerError
		code = "internal"
	}
	c.JSON(status, errorResponse{Code: code, Error: h.translator.Error(locale, err)})
}

var errBadPayload = errors.New("invalid JSON payload")

func (h *Handler) respondBadPayload(c *gin.Context) {
	c.JSON(http.StatusBadRequest, errorResponse{Code: "invalid_payload", Error: errBadPayload.Error()})
}

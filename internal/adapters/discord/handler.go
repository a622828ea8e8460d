package discord

import (
	"groupbook/internal/ports/input"
	"groupbook/internal/ports/output"
)

// Handler handles Discord interactions using the booking use case.
type Handler struct {
	booking       input.BookingUseCase
	translator    output.Translator
	publicBaseURL string
}

// NewHandler creates a Handler.
func NewHandler(
	booking input.BookingUseCase,
	translator output.Translator,
	publicBaseURL string,
) *Handler {
	return &Handler{
		booking:       booking,
		translator:    translator,
		publicBaseURL: publicBaseURL,
	}
}

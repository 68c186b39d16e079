// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"venueplus/internal/ai"
	"venueplus/internal/modules/booking"
	"venueplus/internal/modules/itinerary"
	"venueplus/internal/modules/packages"
	"venueplus/internal/modules/quota"
)

type errorResponse struct {
	Error string `json:"error"`
}

// isValidUserID keeps uids to a sane alphanumeric shape.
func isValidUserID(v string) bool {
	if v == "" || len(v) > 64 {
		return false
	}
	for _, c := range v {
		if (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_' || c == '-' {
			continue
		}
		return false
	}
	return true
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeGenerationError maps pipeline failures for the generation endpoints.
// Parse failures never reach here — the normalizer absorbs them upstream.
func writeGenerationError(c *gin.Context, err error) {
	var quotaErr *ai.QuotaError
	switch {
	case errors.As(err, &quotaErr):
		writeError(c, http.StatusTooManyRequests, quotaErr.Error())
	case errors.Is(err, quota.ErrExhausted):
		writeError(c, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, itinerary.ErrBadRequest), errors.Is(err, packages.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, itinerary.ErrNotFound), errors.Is(err, packages.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusBadGateway, "generation service unavailable")
	}
}

func writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, booking.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, booking.ErrInvalidState), errors.Is(err, booking.ErrConflict):
		writeError(c, http.StatusConflict, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

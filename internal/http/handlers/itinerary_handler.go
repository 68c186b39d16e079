// README: Itinerary generation handlers (quota-guarded).
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"venueplus/internal/modules/itinerary"
)

// generateTimeout bounds one full pipeline pass including retries
// (3 attempts plus 2s+4s+8s of backoff).
const generateTimeout = 90 * time.Second

// ItineraryService is the slice of the itinerary module the handler needs.
type ItineraryService interface {
	Generate(ctx context.Context, req itinerary.TripRequest) (*itinerary.GeneratedItinerary, error)
	Get(ctx context.Context, id string) (*itinerary.GeneratedItinerary, error)
}

// QuotaGuard deducts one generation from a user's monthly allowance.
type QuotaGuard interface {
	Consume(ctx context.Context, uid string) error
}

type ItineraryHandler struct {
	svc   ItineraryService
	quota QuotaGuard
}

func NewItineraryHandler(svc ItineraryService, quota QuotaGuard) *ItineraryHandler {
	return &ItineraryHandler{svc: svc, quota: quota}
}

type generateItineraryReq struct {
	UID  string                `json:"uid"`
	Trip itinerary.TripRequest `json:"trip"`
}

// Generate handles POST /api/itineraries/generate.
func (h *ItineraryHandler) Generate(c *gin.Context) {
	var req generateItineraryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.UID = strings.TrimSpace(req.UID)
	if !isValidUserID(req.UID) {
		writeError(c, http.StatusBadRequest, "invalid uid")
		return
	}
	if strings.TrimSpace(req.Trip.Destination) == "" {
		writeError(c, http.StatusBadRequest, "missing destination")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generateTimeout)
	defer cancel()

	if h.quota != nil {
		if err := h.quota.Consume(ctx, req.UID); err != nil {
			writeGenerationError(c, err)
			return
		}
	}

	it, err := h.svc.Generate(ctx, req.Trip)
	if err != nil {
		writeGenerationError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, it)
}

// Get handles GET /api/itineraries/:id.
func (h *ItineraryHandler) Get(c *gin.Context) {
	id := c.Param("id")
	it, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeGenerationError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, it)
}

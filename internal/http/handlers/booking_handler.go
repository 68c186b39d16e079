// README: Booking handlers for create/get/confirm/cancel/complete.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"venueplus/internal/modules/booking"
	"venueplus/internal/types"
)

type BookingHandler struct {
	booking *booking.Service
}

func NewBookingHandler(svc *booking.Service) *BookingHandler {
	return &BookingHandler{booking: svc}
}

type createBookingReq struct {
	UserID       string `json:"user_id"`
	ItineraryID  string `json:"itinerary_id"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
	Travelers    int    `json:"travelers"`
	TotalAmount  int64  `json:"total_amount"`
	Currency     string `json:"currency"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.UserID == "" || req.ItineraryID == "" {
		writeError(c, http.StatusBadRequest, "missing fields")
		return
	}
	id, err := h.booking.Create(c.Request.Context(), booking.CreateCommand{
		UserID:       types.ID(req.UserID),
		ItineraryID:  req.ItineraryID,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		Travelers:    req.Travelers,
		Total:        types.Money{Amount: req.TotalAmount, Currency: req.Currency},
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, map[string]any{"booking_id": id, "status": booking.StatusDraft})
}

func (h *BookingHandler) Get(c *gin.Context) {
	id := c.Param("id")
	b, err := h.booking.Get(c.Request.Context(), types.ID(id))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{
		"booking_id":   b.ID,
		"itinerary_id": b.ItineraryID,
		"status":       b.Status,
		"travelers":    b.Travelers,
		"total":        b.Total.Amount,
		"currency":     b.Total.Currency,
	})
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	id := c.Param("id")
	if err := h.booking.Confirm(c.Request.Context(), booking.ConfirmCommand{BookingID: types.ID(id)}); err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"status": booking.StatusConfirmed})
}

func (h *BookingHandler) Complete(c *gin.Context) {
	id := c.Param("id")
	if err := h.booking.Complete(c.Request.Context(), booking.CompleteCommand{BookingID: types.ID(id)}); err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"status": booking.StatusCompleted})
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	id := c.Param("id")
	if err := h.booking.Cancel(c.Request.Context(), booking.CancelCommand{
		BookingID: types.ID(id),
		ActorType: "traveler",
		Reason:    "user_cancel",
	}); err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"status": booking.StatusCancelled})
}

// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"venueplus/internal/http/handlers"
	"venueplus/internal/http/middleware"
	"venueplus/internal/modules/booking"
)

type ServerDeps struct {
	Itinerary handlers.ItineraryService
	Packages  handlers.PackageService
	Booking   *booking.Service
	Quota     handlers.QuotaGuard
}

type Server struct {
	deps ServerDeps
}

func NewServer(deps ServerDeps) *Server {
	return &Server{deps: deps}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	itineraryHandler := handlers.NewItineraryHandler(s.deps.Itinerary, s.deps.Quota)
	r.POST("/api/itineraries/generate", itineraryHandler.Generate)
	r.GET("/api/itineraries/:id", itineraryHandler.Get)

	packageHandler := handlers.NewPackageHandler(s.deps.Packages, s.deps.Quota)
	r.POST("/api/packages/generate", packageHandler.Generate)
	r.GET("/api/packages/:id", packageHandler.Get)

	bookingHandler := handlers.NewBookingHandler(s.deps.Booking)
	r.POST("/api/bookings", bookingHandler.Create)
	r.GET("/api/bookings/:id", bookingHandler.Get)
	r.POST("/api/bookings/:id/confirm", bookingHandler.Confirm)
	r.POST("/api/bookings/:id/complete", bookingHandler.Complete)
	r.POST("/api/bookings/:id/cancel", bookingHandler.Cancel)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}

package routes

import (
	"net/http"

	"github.com/aashray-care/aashray-backend/internal/api/handlers"
	"github.com/aashray-care/aashray-backend/internal/api/middleware"
	"github.com/aashray-care/aashray-backend/internal/infrastructure/observability"
)

// Router wires handlers onto the HTTP mux
type Router struct {
	mux *http.ServeMux

	bookingHandler   *handlers.BookingHandler
	providerHandler  *handlers.ProviderHandler
	reviewHandler    *handlers.ReviewHandler
	relativeHandler  *handlers.RelativeHandler
	emergencyHandler *handlers.EmergencyHandler
	userHandler      *handlers.UserHandler
	streamHandler    *handlers.StreamHandler

	jwtSecret string
	metrics   *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	bookingHandler *handlers.BookingHandler,
	providerHandler *handlers.ProviderHandler,
	reviewHandler *handlers.ReviewHandler,
	relativeHandler *handlers.RelativeHandler,
	emergencyHandler *handlers.EmergencyHandler,
	userHandler *handlers.UserHandler,
	streamHandler *handlers.StreamHandler,
	jwtSecret string,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:              http.NewServeMux(),
		bookingHandler:   bookingHandler,
		providerHandler:  providerHandler,
		reviewHandler:    reviewHandler,
		relativeHandler:  relativeHandler,
		emergencyHandler: emergencyHandler,
		userHandler:      userHandler,
		streamHandler:    streamHandler,
		jwtSecret:        jwtSecret,
		metrics:          metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	auth := middleware.AuthMiddleware(r.jwtSecret)
	authed := func(h http.HandlerFunc) http.Handler {
		return auth(h)
	}

	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Service provider catalog, readable without authentication
	r.mux.HandleFunc("GET /api/service-providers", r.providerHandler.ListProviders)
	r.mux.HandleFunc("GET /api/service-providers/{id}", r.providerHandler.GetProvider)
	r.mux.HandleFunc("GET /api/service-providers/{id}/reviews", r.reviewHandler.ListProviderReviews)
	r.mux.Handle("POST /api/service-providers", authed(r.providerHandler.RegisterProvider))

	// Booking endpoints
	r.mux.Handle("POST /api/bookings", authed(r.bookingHandler.CreateBooking))
	r.mux.Handle("GET /api/bookings", authed(r.bookingHandler.ListBookings))
	r.mux.Handle("GET /api/bookings/{id}", authed(r.bookingHandler.GetBooking))
	r.mux.Handle("POST /api/bookings/{id}/cancel", authed(r.bookingHandler.CancelBooking))
	r.mux.Handle("GET /api/bookings/events", authed(r.streamHandler.StreamBookingUpdates))

	// Review endpoints
	r.mux.Handle("POST /api/reviews", authed(r.reviewHandler.CreateReview))

	// Relative link endpoints
	r.mux.Handle("POST /api/relatives", authed(r.relativeHandler.LinkRelative))
	r.mux.Handle("GET /api/relatives", authed(r.relativeHandler.ListRelatives))

	// Emergency endpoints
	r.mux.Handle("POST /api/emergency-contacts", authed(r.emergencyHandler.AddContact))
	r.mux.Handle("GET /api/emergency-contacts", authed(r.emergencyHandler.ListContacts))
	r.mux.Handle("POST /api/emergency/sos", authed(r.emergencyHandler.TriggerSOS))

	// Profile endpoints
	r.mux.Handle("GET /api/auth/user", authed(r.userHandler.GetCurrentUser))
	r.mux.Handle("PUT /api/auth/user", authed(r.userHandler.UpdateCurrentUser))

	// Middleware are applied in reverse order. Logging sits inside the
	// observability layer so log lines carry the active trace ids, and
	// CORS is outermost so its headers are present on every response.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	if r.metrics != nil {
		handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	}
	handler = middleware.CORSMiddleware(handler)

	return handler
}

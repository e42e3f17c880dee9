// Package handler wires the reconciler HTTP surface onto echo.
package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/cryda/reconciler/internal/pkg/middleware"
	"github.com/cryda/reconciler/internal/pkg/models"
	"github.com/cryda/reconciler/services/reconciler"
	httpHandler "github.com/cryda/reconciler/services/reconciler/handler/http"
)

// Handler combines all handlers for the reconciler service.
type Handler struct {
	reconcilerHTTP *httpHandler.ReconcilerHandler
	cfg            *models.Config
}

// NewHandler creates a new combined handler.
func NewHandler(
	reconcilerUC reconciler.ReconcilerUC,
	session reconciler.WalletSession,
	cfg *models.Config,
) *Handler {
	return &Handler{
		reconcilerHTTP: httpHandler.NewReconcilerHandler(reconcilerUC, session),
		cfg:            cfg,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// User-facing routes (JWT required)
	api := e.Group("/api/v1", middleware.JWTAuthMiddleware(h.cfg.JWT))

	rides := api.Group("/rides")
	rides.POST("", h.reconcilerHTTP.CreateRide)
	rides.GET("", h.reconcilerHTTP.OpenRides)
	rides.GET("/mine", h.reconcilerHTTP.MyRides)
	rides.GET("/chain/:chainID", h.reconcilerHTTP.ChainRide)
	rides.POST("/:rideID/cancel", h.reconcilerHTTP.CancelRide)
	rides.POST("/:rideID/complete", h.reconcilerHTTP.CompleteRide)

	bookings := api.Group("/bookings")
	bookings.POST("", h.reconcilerHTTP.BookRide)
	bookings.GET("/mine", h.reconcilerHTTP.MyBookings)
	bookings.GET("/chain/:chainID", h.reconcilerHTTP.ChainBooking)
	bookings.POST("/:bookingID/cancel", h.reconcilerHTTP.CancelBooking)
	bookings.POST("/:bookingID/complete", h.reconcilerHTTP.CompleteBooking)

	wallet := api.Group("/wallet")
	wallet.GET("/balances", h.reconcilerHTTP.Balances)
	wallet.POST("/claim-rewards", h.reconcilerHTTP.ClaimRewards)

	// Operator routes (API key required)
	internal := e.Group("/internal", middleware.APIKeyMiddleware(&h.cfg.APIKey))
	internal.POST("/reconcile/resume", h.reconcilerHTTP.Resume)
	internal.POST("/reconcile/sweep", h.reconcilerHTTP.Sweep)
}

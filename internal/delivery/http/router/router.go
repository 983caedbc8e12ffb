// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"closecart/internal/delivery/http/middleware"
	"closecart/internal/delivery/http/router/handler"
	"closecart/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	ShopHandler      *handler.ShopHandler
	OfferHandler     *handler.OfferHandler
	SettingsHandler  *handler.SettingsHandler
	GeocodingHandler *handler.GeocodingHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Metrics          *metrics.Metrics `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler      *handler.UserHandler
	shopHandler      *handler.ShopHandler
	offerHandler     *handler.OfferHandler
	settingsHandler  *handler.SettingsHandler
	geocodingHandler *handler.GeocodingHandler
	authMiddleware   *middleware.AuthMiddleware
	metrics          *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:      params.UserHandler,
		shopHandler:      params.ShopHandler,
		offerHandler:     params.OfferHandler,
		settingsHandler:  params.SettingsHandler,
		geocodingHandler: params.GeocodingHandler,
		authMiddleware:   params.AuthMiddleware,
		metrics:          params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(
			r.metrics.Registry,
			promhttp.HandlerOpts{Registry: r.metrics.Registry},
		)))
	}

	api := e.Group("/api/v1")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Everything below requires a valid access token.
	authGroup.POST("/change-password", r.userHandler.ChangePassword, r.authMiddleware.Authenticate)
	api.GET("/me", r.userHandler.GetMe, r.authMiddleware.Authenticate)

	// Shop profile routes, one endpoint per savable section
	shopGroup := api.Group("/shop")
	shopGroup.Use(r.authMiddleware.Authenticate)
	{
		shopGroup.GET("", r.shopHandler.GetShop)
		shopGroup.PUT("/basic-info", r.shopHandler.UpdateBasicInfo)
		shopGroup.PUT("/contact", r.shopHandler.UpdateContact)
		shopGroup.PUT("/business-hours", r.shopHandler.UpdateBusinessHours)
		shopGroup.PUT("/location", r.shopHandler.UpdateLocation)
		shopGroup.PUT("/social-links", r.shopHandler.UpdateSocialLinks)
		shopGroup.POST("/logo", r.shopHandler.UploadLogo)
		shopGroup.POST("/cover-image", r.shopHandler.UploadCoverImage)
	}

	// Offer routes
	offerGroup := api.Group("/offers")
	offerGroup.Use(r.authMiddleware.Authenticate)
	{
		offerGroup.GET("", r.offerHandler.ListOffers)
		offerGroup.POST("", r.offerHandler.CreateOffer)
		offerGroup.GET("/catalog", r.offerHandler.GetCatalog)
		offerGroup.GET("/:id", r.offerHandler.GetOffer)
		offerGroup.PUT("/:id", r.offerHandler.UpdateOffer)
		offerGroup.DELETE("/:id", r.offerHandler.DeleteOffer)
		offerGroup.GET("/:id/qr", r.offerHandler.GenerateQR)
	}

	// Settings routes
	settingsGroup := api.Group("/settings")
	settingsGroup.Use(r.authMiddleware.Authenticate)
	{
		settingsGroup.GET("", r.settingsHandler.GetSettings)
		settingsGroup.PUT("/channels", r.settingsHandler.UpdateChannels)
		settingsGroup.PUT("/notifications", r.settingsHandler.UpdateNotifications)
		settingsGroup.PUT("/chat", r.settingsHandler.UpdateChat)
	}

	// Geocoding proxy for the location picker
	geocodeGroup := api.Group("/geocode")
	geocodeGroup.Use(r.authMiddleware.Authenticate)
	{
		geocodeGroup.GET("/search", r.geocodingHandler.Search)
		geocodeGroup.GET("/reverse", r.geocodingHandler.Reverse)
	}
}

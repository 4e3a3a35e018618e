package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateClass(c *ginext.Context)
	GetClass(c *ginext.Context)
	ListClasses(c *ginext.Context)
	GetAvailability(c *ginext.Context)
	GetQuote(c *ginext.Context)
	InitiateCheckout(c *ginext.Context)
	ApproveBooking(c *ginext.Context)
	DenyBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	SettleBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	GetGuestBookings(c *ginext.Context)
	GetClassBookings(c *ginext.Context)
}

type WebhookHandler interface {
	Handle(c *ginext.Context)
}

func InitRouter(mode string, h Handler, wh WebhookHandler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Classes
		api.POST("/classes", h.CreateClass)
		api.GET("/classes", h.ListClasses)
		api.GET("/classes/:id", h.GetClass)
		api.GET("/classes/:id/availability", h.GetAvailability)
		api.GET("/classes/:id/quote", h.GetQuote)
		api.GET("/classes/:id/bookings", h.GetClassBookings)

		// Checkout
		api.POST("/classes/:id/checkout", h.InitiateCheckout)

		// Bookings
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/approve", h.ApproveBooking)
		api.POST("/bookings/:id/deny", h.DenyBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.POST("/bookings/:id/settle", h.SettleBooking)

		// Guests
		api.GET("/guests/:id/bookings", h.GetGuestBookings)
	}

	// Processor callbacks stay outside the /api group: the signature check
	// is the only authentication they get.
	router.POST("/webhooks/payments", wh.Handle)

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}

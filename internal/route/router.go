package router

import (
	"golftrip-service/internal/module/booking/handler"
	"golftrip-service/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

func Initialize(app *fiber.App, handlerBooking *handler.BookingHandler, m *middleware.Middleware) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	Api := app.Group("/api")

	v1 := Api.Group("/v1")
	v1.Post("/bookings", m.ValidateToken, handlerBooking.CreateBooking)
	v1.Get("/bookings", m.ValidateToken, handlerBooking.ShowBookings)
	v1.Patch("/bookings", m.ValidateToken, handlerBooking.VendorDecision)
	v1.Post("/payments/:bookingId", m.ValidateToken, handlerBooking.CreatePayment)

	// inbound gateway callbacks, authenticated by shared token
	private := Api.Group("/private")
	private.Post("/payments/webhook", m.ValidateCallbackToken, handlerBooking.PaymentWebhook)
	private.Get("/payments/webhook", handlerBooking.WebhookCheck)

	return app
}

package handler_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"golftrip-service/internal/module/booking/handler"
	"golftrip-service/internal/module/booking/mocks"
	"golftrip-service/internal/module/booking/models/entity"
	"golftrip-service/internal/module/booking/models/request"
	"golftrip-service/internal/module/booking/models/response"
	"golftrip-service/internal/pkg/errors"
	log_internal "golftrip-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	app         *fiber.App
	ucMock      *mocks.Usecase
	h           *handler.BookingHandler
	pubRecorder *recordingPublisher
)

// recordingPublisher captures published messages so poison-queue routing can
// be asserted without a broker.
type recordingPublisher struct {
	topics []string
}

func (r *recordingPublisher) Publish(topic string, messages ...*message.Message) error {
	r.topics = append(r.topics, topic)
	return nil
}

func (r *recordingPublisher) Close() error {
	return nil
}

func setup() {
	ucMock = new(mocks.Usecase)
	pubRecorder = &recordingPublisher{}
	h = &handler.BookingHandler{
		Log:       log_internal.Setup(),
		Validator: validator.New(),
		Usecase:   ucMock,
		Publish:   pubRecorder,
	}
	app = fiber.New()
}

func withPrincipal(principal entity.Principal) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		ctx.Locals("principal", principal)
		return ctx.Next()
	}
}

func jsonRequest(method, target string, payload interface{}) *http.Request {
	var body io.Reader
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreateBooking(t *testing.T) {
	principal := entity.Principal{UserID: "user-1", Email: "user@test.com", Role: entity.RoleUser}

	t.Run("created", func(t *testing.T) {
		setup()
		app.Post("/api/v1/bookings", withPrincipal(principal), h.CreateBooking)

		payload := request.CreateBooking{
			BookingType: entity.BookingTypeGolf,
			BookingDetails: request.BookingDetails{
				Golf: &request.GolfBooking{CourseID: "course-1", Date: "2026-09-01", Players: 4},
			},
			TotalAmount: 2500000,
		}

		ucMock.On("CreateBooking", mock.Anything, principal, mock.AnythingOfType("*request.CreateBooking")).
			Return(response.Booking{ID: uuid.New().String(), Status: entity.BookingPendingApproval}, nil)

		resp, err := app.Test(jsonRequest(fiber.MethodPost, "/api/v1/bookings", payload))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})

	t.Run("invalid booking type fails validation", func(t *testing.T) {
		setup()
		app.Post("/api/v1/bookings", withPrincipal(principal), h.CreateBooking)

		payload := request.CreateBooking{
			BookingType: "spa",
			TotalAmount: 2500000,
		}

		resp, err := app.Test(jsonRequest(fiber.MethodPost, "/api/v1/bookings", payload))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		ucMock.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestVendorDecision(t *testing.T) {
	principal := entity.Principal{UserID: "V1", Email: "vendor@test.com", Role: entity.RoleGolfVendor}

	t.Run("success", func(t *testing.T) {
		setup()
		app.Patch("/api/v1/bookings", withPrincipal(principal), h.VendorDecision)

		payload := request.VendorDecision{
			BookingID: uuid.New().String(),
			Action:    "approve",
		}

		ucMock.On("VendorDecision", mock.Anything, principal, mock.AnythingOfType("*request.VendorDecision")).
			Return(response.Booking{ID: payload.BookingID, Status: entity.BookingApproved}, nil)

		resp, err := app.Test(jsonRequest(fiber.MethodPatch, "/api/v1/bookings", payload))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("late decision surfaces as unprocessable", func(t *testing.T) {
		setup()
		app.Patch("/api/v1/bookings", withPrincipal(principal), h.VendorDecision)

		payload := request.VendorDecision{
			BookingID: uuid.New().String(),
			Action:    "approve",
		}

		ucMock.On("VendorDecision", mock.Anything, principal, mock.AnythingOfType("*request.VendorDecision")).
			Return(response.Booking{}, errors.UnprocessableEntity("booking is not awaiting approval"))

		resp, err := app.Test(jsonRequest(fiber.MethodPatch, "/api/v1/bookings", payload))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	})
}

func TestCreatePayment(t *testing.T) {
	principal := entity.Principal{UserID: "user-1", Email: "user@test.com", Role: entity.RoleUser}

	t.Run("success", func(t *testing.T) {
		setup()
		app.Post("/api/v1/payments/:bookingId", withPrincipal(principal), h.CreatePayment)

		bookingID := uuid.New().String()
		ucMock.On("CreateInvoice", mock.Anything, principal, bookingID).
			Return(response.InvoiceCreated{
				InvoiceURL: "https://checkout.xendit.co/web/inv-123",
				InvoiceID:  "inv-123",
				PaymentID:  42,
			}, nil)

		resp, err := app.Test(jsonRequest(fiber.MethodPost, "/api/v1/payments/"+bookingID, nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body struct {
			Data response.InvoiceCreated `json:"data"`
		}
		raw, _ := io.ReadAll(resp.Body)
		assert.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, "https://checkout.xendit.co/web/inv-123", body.Data.InvoiceURL)
	})

	t.Run("malformed booking id is rejected before the usecase", func(t *testing.T) {
		setup()
		app.Post("/api/v1/payments/:bookingId", withPrincipal(principal), h.CreatePayment)

		resp, err := app.Test(jsonRequest(fiber.MethodPost, "/api/v1/payments/not-a-uuid", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		ucMock.AssertNotCalled(t, "CreateInvoice", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPaymentWebhook(t *testing.T) {
	t.Run("acknowledged", func(t *testing.T) {
		setup()
		app.Post("/api/private/payments/webhook", h.PaymentWebhook)

		payload := request.PaymentWebhook{
			ID:         "inv-123",
			ExternalID: "GOLF-ABC12345-1700000000000",
			Status:     "PAID",
			Amount:     2500000,
		}

		ucMock.On("ProcessPaymentWebhook", mock.Anything, mock.AnythingOfType("*request.PaymentWebhook")).
			Return(nil)

		resp, err := app.Test(jsonRequest(fiber.MethodPost, "/api/private/payments/webhook", payload))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("unknown external id answers 404", func(t *testing.T) {
		setup()
		app.Post("/api/private/payments/webhook", h.PaymentWebhook)

		payload := request.PaymentWebhook{
			ID:         "inv-999",
			ExternalID: "GOLF-UNKNOWN-1",
			Status:     "PAID",
		}

		ucMock.On("ProcessPaymentWebhook", mock.Anything, mock.AnythingOfType("*request.PaymentWebhook")).
			Return(errors.NotFoundError("payment not found"))

		resp, err := app.Test(jsonRequest(fiber.MethodPost, "/api/private/payments/webhook", payload))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("missing external id fails validation", func(t *testing.T) {
		setup()
		app.Post("/api/private/payments/webhook", h.PaymentWebhook)

		payload := request.PaymentWebhook{ID: "inv-123", Status: "PAID"}

		resp, err := app.Test(jsonRequest(fiber.MethodPost, "/api/private/payments/webhook", payload))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		ucMock.AssertNotCalled(t, "ProcessPaymentWebhook", mock.Anything, mock.Anything)
	})
}

func TestWebhookCheck(t *testing.T) {
	setup()
	app.Get("/api/private/payments/webhook", h.WebhookCheck)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/private/payments/webhook", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestConsumeNotificationQueue(t *testing.T) {
	t.Run("stores the notification", func(t *testing.T) {
		setup()

		payload := request.Notification{
			RecipientID: "user-1",
			Type:        "payment_received",
			Title:       "Payment received",
			Message:     "Your booking is confirmed",
		}
		data, _ := json.Marshal(payload)

		ucMock.On("ConsumeNotificationQueue", mock.Anything, mock.AnythingOfType("*request.Notification")).
			Return(nil)

		err := h.ConsumeNotificationQueue(message.NewMessage("1", data))
		assert.NoError(t, err)
		assert.Empty(t, pubRecorder.topics)
	})

	t.Run("undecodable payload goes to the poison queue", func(t *testing.T) {
		setup()

		err := h.ConsumeNotificationQueue(message.NewMessage("2", []byte("not-json")))
		assert.Error(t, err)
		assert.Equal(t, []string{"poisoned_queue"}, pubRecorder.topics)
		ucMock.AssertNotCalled(t, "ConsumeNotificationQueue", mock.Anything, mock.Anything)
	})

	t.Run("usecase failure goes to the poison queue", func(t *testing.T) {
		setup()

		payload := request.Notification{RecipientID: "user-1", Type: "payment_received"}
		data, _ := json.Marshal(payload)

		ucMock.On("ConsumeNotificationQueue", mock.Anything, mock.AnythingOfType("*request.Notification")).
			Return(errors.InternalServerError("error insert notification"))

		err := h.ConsumeNotificationQueue(message.NewMessage("3", data))
		assert.Error(t, err)
		assert.Equal(t, []string{"poisoned_queue"}, pubRecorder.topics)
	})
}

package handler

import (
	"context"
	"fmt"

	"golftrip-service/internal/module/booking/models/entity"
	"golftrip-service/internal/module/booking/models/request"
	"golftrip-service/internal/module/booking/usecases"
	"golftrip-service/internal/pkg/errors"
	"golftrip-service/internal/pkg/helpers"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type BookingHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
	Publish   message.Publisher
}

func principalFromCtx(ctx *fiber.Ctx) entity.Principal {
	principal, _ := ctx.Locals("principal").(entity.Principal)
	return principal
}

func (h *BookingHandler) CreateBooking(ctx *fiber.Ctx) error {
	var req request.CreateBooking
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	principal := principalFromCtx(ctx)

	resp, err := h.Usecase.CreateBooking(ctx.UserContext(), principal, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success create booking")
}

func (h *BookingHandler) ShowBookings(ctx *fiber.Ctx) error {
	principal := principalFromCtx(ctx)
	status := ctx.Query("status")
	bookingType := ctx.Query("type")

	resp, err := h.Usecase.ShowBookings(ctx.UserContext(), principal, status, bookingType)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show bookings")
}

func (h *BookingHandler) VendorDecision(ctx *fiber.Ctx) error {
	var req request.VendorDecision
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	principal := principalFromCtx(ctx)

	resp, err := h.Usecase.VendorDecision(ctx.UserContext(), principal, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error record vendor decision: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success record vendor decision")
}

func (h *BookingHandler) CreatePayment(ctx *fiber.Ctx) error {
	bookingID := ctx.Params("bookingId")
	if _, err := uuid.Parse(bookingID); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse booking id: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("invalid booking id"))
	}

	principal := principalFromCtx(ctx)

	resp, err := h.Usecase.CreateInvoice(ctx.UserContext(), principal, bookingID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create payment: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success create payment")
}

func (h *BookingHandler) PaymentWebhook(ctx *fiber.Ctx) error {
	var req request.PaymentWebhook
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse webhook payload: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse webhook payload"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate webhook payload: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	if err := h.Usecase.ProcessPaymentWebhook(ctx.UserContext(), &req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error process payment webhook: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success process payment webhook")
}

// WebhookCheck answers the gateway's endpoint verification probe.
func (h *BookingHandler) WebhookCheck(ctx *fiber.Ctx) error {
	return helpers.RespSuccess(ctx, h.Log, nil, "webhook endpoint active")
}

func (h *BookingHandler) ConsumeNotificationQueue(msg *message.Message) error {
	msg.Ack() // acknowledge message
	var req request.Notification
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal message: %v", err))

		// publish to poison queue
		reqPoisoned := request.PoisonedQueue{
			TopicTarget: usecases.TopicNotification,
			ErrorMsg:    err.Error(),
			Payload:     msg.Payload,
		}

		jsonPayload, _ := json.Marshal(reqPoisoned)

		if err := h.Publish.Publish("poisoned_queue", message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
			h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error publish to poison queue: %v", err))
		}

		return err
	}

	ctx := context.Background()

	if err := h.Usecase.ConsumeNotificationQueue(ctx, &req); err != nil {
		reqPoisoned := request.PoisonedQueue{
			TopicTarget: usecases.TopicNotification,
			ErrorMsg:    err.Error(),
			Payload:     msg.Payload,
		}

		jsonPayload, _ := json.Marshal(reqPoisoned)
		if err := h.Publish.Publish("poisoned_queue", message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
			h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error publish to poison queue: %v", err))
		}

		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error consume notification queue: %v", err))

		return err
	}

	return nil
}

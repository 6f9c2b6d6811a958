package helpers

import (
	"fmt"

	"golftrip-service/internal/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return ctx.Status(fiber.StatusOK).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func RespCreated(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return ctx.Status(fiber.StatusCreated).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	code := errors.HTTPCode(err)
	if code == fiber.StatusInternalServerError {
		log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("internal error: %v", err))
		return ctx.Status(code).JSON(Response{
			Success: false,
			Message: "internal server error",
		})
	}
	return ctx.Status(code).JSON(Response{
		Success: false,
		Message: err.Error(),
	})
}

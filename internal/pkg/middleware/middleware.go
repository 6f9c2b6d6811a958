package middleware

import (
	"fmt"
	"strings"

	"golftrip-service/config"
	"golftrip-service/internal/module/booking/models/entity"
	"golftrip-service/internal/module/booking/repositories"
	"golftrip-service/internal/pkg/errors"
	"golftrip-service/internal/pkg/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type Middleware struct {
	Log       *otelzap.Logger
	Repo      repositories.Repositories
	CfgXendit *config.XenditConfig
}

// ValidateToken resolves the caller through the user service and stores a
// Principal for handlers. Role checks happen in the usecases, never here.
func (m *Middleware) ValidateToken(ctx *fiber.Ctx) error {
	auth := ctx.Get("Authorization")
	if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
		m.Log.Ctx(ctx.UserContext()).Error("error get token from header")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error get token from header"))
	}

	token := strings.TrimPrefix(auth, "Bearer ")

	resp, err := m.Repo.ValidateToken(ctx.UserContext(), token)
	if err != nil {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate token: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	if !resp.IsValid {
		m.Log.Ctx(ctx.UserContext()).Error("error validate token")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	ctx.Locals("principal", entity.Principal{
		UserID: resp.UserID,
		Email:  resp.Email,
		Role:   resp.Role,
	})

	return ctx.Next()
}

// ValidateCallbackToken authenticates the payment gateway's webhook delivery
// against the configured shared secret.
func (m *Middleware) ValidateCallbackToken(ctx *fiber.Ctx) error {
	token := ctx.Get("x-callback-token")
	if token == "" || m.CfgXendit.CallbackToken == "" || token != m.CfgXendit.CallbackToken {
		m.Log.Ctx(ctx.UserContext()).Error("invalid webhook callback token")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("invalid callback token"))
	}
	return ctx.Next()
}

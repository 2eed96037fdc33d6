package v1

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/incevents/incevents-api/internal/api/handler/v1/response"
	"github.com/incevents/incevents-api/internal/api/middleware"
	"github.com/incevents/incevents-api/internal/domain"
)

type UserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
}

func getUserFromContext(ctx *gin.Context, svc UserService) (domain.User, *response.Err) {
	v, exists := ctx.Get(middleware.ContextKeyUserID)
	if !exists {
		return domain.User{}, response.ErrUnauthorized(errors.New("missing user in context"))
	}

	userID, ok := v.(uint)
	if !ok {
		return domain.User{}, response.ErrUnauthorized(fmt.Errorf("unexpected user ID type %T", v))
	}

	user, err := svc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		return domain.User{}, response.ErrUnauthorized(fmt.Errorf("svc.GetUser -> %w", err))
	}

	return user, nil
}

package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/incevents/incevents-api/internal/api/handler/v1/request"
	"github.com/incevents/incevents-api/internal/api/handler/v1/response"
	"github.com/incevents/incevents-api/internal/config"
	"github.com/incevents/incevents-api/internal/domain"
	"github.com/incevents/incevents-api/internal/pkg/jwthelper"
	"github.com/incevents/incevents-api/internal/service"
)

type AuthService interface {
	LoginWithPIN(ctx context.Context, pin string) (domain.User, error)
	CurrentMonthVisits(ctx context.Context, userID uint) (domain.VisitSummary, error)
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleLogin godoc
// @Summary      Login with a member PIN
// @Tags         auth
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.LoginResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if req.PIN == "" {
		response.RenderErr(ctx, response.ErrPINRequired())

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.svc.LoginWithPIN(ctx.Request.Context(), req.PIN)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrWrongCredentials(err))

			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.LoginWithPIN -> %w", err)
		response.RenderErr(ctx, response.ErrDatabaseError(err))

		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), user.ID, ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		ID:          user.ID,
		Username:    user.Username,
		Designation: user.Designation,
		PIN:         user.PIN,
		Token:       token,
	})
}

// HandleGetUserVisits godoc
// @Summary      Summarize a user's visits for the current month
// @Tags         auth
// @Produce      json
// @Param        user_id   path       int true "user ID"
// @Success      200      {object}   domain.VisitSummary
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /user_visits/{user_id} [get]
func (h *AuthHandler) HandleGetUserVisits(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("user_id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	summary, err := h.svc.CurrentMonthVisits(ctx.Request.Context(), uint(userID))
	if err != nil {
		err = fmt.Errorf("v1.HandleGetUserVisits -> h.svc.CurrentMonthVisits -> %w", err)
		response.RenderErr(ctx, response.ErrDatabaseError(err))

		return
	}

	ctx.JSON(http.StatusOK, summary)
}

package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/incevents/incevents-api/internal/api/handler/v1/response"
	"github.com/incevents/incevents-api/internal/domain"
	"github.com/incevents/incevents-api/internal/service"
)

type ReportService interface {
	BuildReport(ctx context.Context, eventID uint) (domain.EventReport, error)
}

type LatestUpdateService interface {
	LatestUpdate(ctx context.Context, eventID, userID uint) (domain.EventUpdate, error)
}

type ReportHandler struct {
	svc       ReportService
	updateSvc LatestUpdateService
	uSvc      UserService
}

func NewReportHandler(svc ReportService, updateSvc LatestUpdateService, uSvc UserService) *ReportHandler {
	return &ReportHandler{
		svc:       svc,
		updateSvc: updateSvc,
		uSvc:      uSvc,
	}
}

// HandleGetEventReport godoc
// @Summary      Build a participation report for an event
// @Tags         reports
// @Produce      json
// @Param        event_id  path       int true "event ID"
// @Success      200      {object}   domain.EventReport
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /event_report/{event_id} [get]
// @Security BearerAuth
func (h *ReportHandler) HandleGetEventReport(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	if !user.IsAdmin() {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not an admin", user.ID)))

		return
	}

	eventID, err := strconv.ParseUint(ctx.Param("event_id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	report, err := h.svc.BuildReport(ctx.Request.Context(), uint(eventID))
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrEventNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleGetEventReport -> h.svc.BuildReport -> %w", err)
		response.RenderErr(ctx, response.ErrDatabaseError(err))

		return
	}

	ctx.JSON(http.StatusOK, report)
}

// HandleGetEventUserDetails godoc
// @Summary      Fetch a user's latest update for an event
// @Tags         reports
// @Produce      json
// @Param        event_id  path       int true "event ID"
// @Param        user_id   path       int true "user ID"
// @Success      200      {object}   domain.EventUpdate
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /event_user_details/{event_id}/{user_id} [get]
func (h *ReportHandler) HandleGetEventUserDetails(ctx *gin.Context) {
	eventID, err := strconv.ParseUint(ctx.Param("event_id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	userID, err := strconv.ParseUint(ctx.Param("user_id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	update, err := h.updateSvc.LatestUpdate(ctx.Request.Context(), uint(eventID), uint(userID))
	if err != nil {
		if errors.Is(err, service.ErrUpdateNotFound) {
			ctx.JSON(http.StatusOK, gin.H{})

			return
		}

		err = fmt.Errorf("v1.HandleGetEventUserDetails -> h.updateSvc.LatestUpdate -> %w", err)
		response.RenderErr(ctx, response.ErrDatabaseError(err))

		return
	}

	ctx.JSON(http.StatusOK, update)
}

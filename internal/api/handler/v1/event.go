package v1

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/incevents/incevents-api/internal/api/handler/v1/request"
	"github.com/incevents/incevents-api/internal/api/handler/v1/response"
	"github.com/incevents/incevents-api/internal/domain"
	"github.com/incevents/incevents-api/internal/service"
)

type CatalogService interface {
	CreateEvent(ctx context.Context, sub service.EventSubmission) (domain.Event, error)
	ListEvents(ctx context.Context, status string, viewerID *uint) ([]domain.Event, error)
}

type UpdateService interface {
	Submit(ctx context.Context, sub service.UpdateSubmission) (domain.EventUpdate, error)
	RecordView(ctx context.Context, eventID, userID uint) error
}

type EventHandler struct {
	svc       CatalogService
	updateSvc UpdateService
	uSvc      UserService
}

func NewEventHandler(svc CatalogService, updateSvc UpdateService, uSvc UserService) *EventHandler {
	return &EventHandler{
		svc:       svc,
		updateSvc: updateSvc,
		uSvc:      uSvc,
	}
}

// HandleListEvents godoc
// @Summary      List events by status
// @Tags         events
// @Produce      json
// @Param        status    query      string true  "ongoing or previous"
// @Param        user_id   query      int    false "annotate updates for this viewer"
// @Success      200      {array}    domain.Event
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /events [get]
func (h *EventHandler) HandleListEvents(ctx *gin.Context) {
	var query request.ListEventsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := query.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var viewerID *uint
	if query.UserID != 0 {
		viewerID = &query.UserID
	}

	events, err := h.svc.ListEvents(ctx.Request.Context(), query.Status, viewerID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListEvents -> h.svc.ListEvents -> %w", err)
		response.RenderErr(ctx, response.ErrDatabaseError(err))

		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleRecordView godoc
// @Summary      Mark an event as viewed by a user
// @Tags         events
// @Produce      json
// @Param        request   body      request.EventViewRequest true "request body"
// @Success      200      {object}   response.EventViewResponse
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /event_view [post]
func (h *EventHandler) HandleRecordView(ctx *gin.Context) {
	var req request.EventViewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.updateSvc.RecordView(ctx.Request.Context(), req.EventID, req.UserID); err != nil {
		err = fmt.Errorf("v1.HandleRecordView -> h.updateSvc.RecordView -> %w", err)
		response.RenderErr(ctx, response.ErrDatabaseError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.EventViewResponse{Success: true})
}

// HandleSubmitUpdate godoc
// @Summary      Submit a member update against an event
// @Tags         events
// @Accept       multipart/form-data
// @Produce      json
// @Success      200      {object}   response.EventUpdateResponse
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /event_update [post]
func (h *EventHandler) HandleSubmitUpdate(ctx *gin.Context) {
	var form request.EventUpdateForm
	if err := ctx.ShouldBind(&form); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := form.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	media, respErr := readMediaSubmission(ctx, true)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	created, err := h.updateSvc.Submit(ctx.Request.Context(), service.UpdateSubmission{
		EventID:       form.EventID,
		UserID:        form.UserID,
		Name:          form.Name,
		Description:   form.Description,
		StartDateTime: form.StartDateTime,
		EndDateTime:   form.EndDateTime,
		IssueDate:     form.IssueDate,
		Location:      form.Location,
		Attendees:     form.Attendees,
		Type:          form.Type,
		Media:         media,
	})
	if err != nil {
		renderSubmissionErr(ctx, fmt.Errorf("v1.HandleSubmitUpdate -> h.updateSvc.Submit -> %w", err))

		return
	}

	ctx.JSON(http.StatusOK, response.EventUpdateResponse{
		Success:     true,
		Photos:      nonNil(created.Photos),
		Video:       created.Video,
		MediaPhotos: nonNil(created.MediaPhotos),
	})
}

// HandleCreateEvent godoc
// @Summary      Create an event and broadcast entitlements
// @Tags         events
// @Accept       multipart/form-data
// @Produce      json
// @Success      200      {object}   response.EventAddResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /event_add [post]
// @Security BearerAuth
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	if !user.IsAdmin() {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not an admin", user.ID)))

		return
	}

	var form request.EventAddForm
	if err := ctx.ShouldBind(&form); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := form.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	media, respErr := readMediaSubmission(ctx, false)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	created, err := h.svc.CreateEvent(ctx.Request.Context(), service.EventSubmission{
		Name:            form.Name,
		Description:     form.Description,
		StartDateTime:   form.StartDateTime,
		EndDateTime:     form.EndDateTime,
		IssueDate:       form.IssueDate,
		Location:        form.Location,
		Type:            form.Type,
		BroadcastTarget: form.User,
		Media:           media,
	})
	if err != nil {
		renderSubmissionErr(ctx, fmt.Errorf("v1.HandleCreateEvent -> h.svc.CreateEvent -> %w", err))

		return
	}

	ctx.JSON(http.StatusOK, response.EventAddResponse{
		Success: true,
		EventID: created.ID,
	})
}

// readMediaSubmission decodes this request's multipart files into slot
// groups. The media_photos slot only exists on member submissions.
func readMediaSubmission(ctx *gin.Context, withMediaPhotos bool) (service.MediaSubmission, *response.Err) {
	var sub service.MediaSubmission

	form, err := ctx.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return sub, nil
		}

		return sub, response.ErrBadRequest(err)
	}
	if form == nil {
		return sub, nil
	}

	sub.Photos, err = readMediaFiles(form.File["photos"])
	if err != nil {
		return sub, response.ErrBadRequest(err)
	}

	if videos := form.File["video"]; len(videos) > 0 {
		files, err := readMediaFiles(videos[:1])
		if err != nil {
			return sub, response.ErrBadRequest(err)
		}
		sub.Video = &files[0]
	}

	if withMediaPhotos {
		sub.MediaPhotos, err = readMediaFiles(form.File["media_photos"])
		if err != nil {
			return sub, response.ErrBadRequest(err)
		}
	}

	return sub, nil
}

func readMediaFiles(headers []*multipart.FileHeader) ([]service.MediaFile, error) {
	if len(headers) == 0 {
		return nil, nil
	}

	files := make([]service.MediaFile, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("fh.Open -> %w", err)
		}

		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("io.ReadAll -> %w", err)
		}

		files = append(files, service.MediaFile{
			Name:     fh.Filename,
			MIMEType: fh.Header.Get("Content-Type"),
			Data:     data,
		})
	}

	return files, nil
}

func renderSubmissionErr(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMissingEventID),
		errors.Is(err, service.ErrMissingUserID),
		errors.Is(err, service.ErrInvalidDateTime),
		errors.Is(err, service.ErrTooManyFiles),
		errors.Is(err, service.ErrUnsupportedMediaType),
		errors.Is(err, service.ErrFileTooLarge):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	case errors.Is(err, service.ErrVideoUploadFailed):
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	default:
		response.RenderErr(ctx, response.ErrDatabaseError(err))
	}
}

func nonNil(urls []string) []string {
	if urls == nil {
		return []string{}
	}

	return urls
}

package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/incevents/incevents-api/internal/api/middleware"
	"github.com/incevents/incevents-api/internal/domain"
	"github.com/incevents/incevents-api/internal/service"
)

type fakeCatalogService struct {
	created service.EventSubmission
	events  []domain.Event
}

func (s *fakeCatalogService) CreateEvent(_ context.Context, sub service.EventSubmission) (domain.Event, error) {
	s.created = sub

	return domain.Event{ID: 42}, nil
}

func (s *fakeCatalogService) ListEvents(_ context.Context, status string, viewerID *uint) ([]domain.Event, error) {
	return s.events, nil
}

type fakeUpdateService struct {
	submitted service.UpdateSubmission
	submitErr error
	views     int
}

func (s *fakeUpdateService) Submit(_ context.Context, sub service.UpdateSubmission) (domain.EventUpdate, error) {
	if s.submitErr != nil {
		return domain.EventUpdate{}, s.submitErr
	}

	s.submitted = sub

	return domain.EventUpdate{
		ID:      1,
		EventID: sub.EventID,
		UserID:  sub.UserID,
		Photos:  []string{"https://cdn.example.com/event_photos/p1"},
	}, nil
}

func (s *fakeUpdateService) RecordView(_ context.Context, eventID, userID uint) error {
	s.views++

	return nil
}

type fakeUserService struct {
	users map[uint]domain.User
}

func (s *fakeUserService) GetUser(_ context.Context, id uint) (domain.User, error) {
	user, ok := s.users[id]
	if !ok {
		return domain.User{}, service.ErrUserNotFound
	}

	return user, nil
}

// asUser injects an authenticated user the way the JWT middleware does.
func asUser(id uint) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(middleware.ContextKeyUserID, id)
		ctx.Next()
	}
}

func setupEventRouter(svc CatalogService, updateSvc UpdateService, uSvc UserService, authedAs uint) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewEventHandler(svc, updateSvc, uSvc)

	router := gin.New()
	router.GET("/api/events", handler.HandleListEvents)
	router.POST("/api/event_view", handler.HandleRecordView)
	router.POST("/api/event_update", handler.HandleSubmitUpdate)
	router.POST("/api/event_add", asUser(authedAs), handler.HandleCreateEvent)

	return router
}

func writeFilePart(t *testing.T, w *multipart.Writer, field, filename, contentType, content string) {
	t.Helper()

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
}

func TestHandleListEvents(t *testing.T) {
	catalog := &fakeCatalogService{events: []domain.Event{{ID: 1, Name: "Annual Meet"}}}
	router := setupEventRouter(catalog, &fakeUpdateService{}, &fakeUserService{}, 0)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events?status=ongoing&user_id=7", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var events []domain.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	require.Len(t, events, 1)
}

func TestHandleListEventsRejectsBadStatus(t *testing.T) {
	router := setupEventRouter(&fakeCatalogService{}, &fakeUpdateService{}, &fakeUserService{}, 0)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events?status=archived", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleRecordView(t *testing.T) {
	updates := &fakeUpdateService{}
	router := setupEventRouter(&fakeCatalogService{}, updates, &fakeUserService{}, 0)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/event_view", strings.NewReader(`{"event_id":1,"user_id":7}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, updates.views)
	require.Contains(t, w.Body.String(), `"success":true`)
}

func TestHandleRecordViewMissingFields(t *testing.T) {
	router := setupEventRouter(&fakeCatalogService{}, &fakeUpdateService{}, &fakeUserService{}, 0)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/event_view", strings.NewReader(`{"event_id":1}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleSubmitUpdate(t *testing.T) {
	updates := &fakeUpdateService{}
	router := setupEventRouter(&fakeCatalogService{}, updates, &fakeUserService{}, 0)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("event_id", "1"))
	require.NoError(t, mw.WriteField("user_id", "7"))
	require.NoError(t, mw.WriteField("name", "cleanup drive"))
	writeFilePart(t, mw, "photos", "p1.jpg", "image/jpeg", "jpeg bytes")
	writeFilePart(t, mw, "photos", "p2.jpg", "image/jpeg", "more jpeg bytes")
	writeFilePart(t, mw, "video", "clip.mp4", "video/mp4", "mp4 bytes")
	writeFilePart(t, mw, "media_photos", "m1.jpg", "image/jpeg", "media jpeg")
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/event_update", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	require.Equal(t, uint(1), updates.submitted.EventID)
	require.Equal(t, uint(7), updates.submitted.UserID)
	require.Len(t, updates.submitted.Media.Photos, 2)
	require.Equal(t, "image/jpeg", updates.submitted.Media.Photos[0].MIMEType)
	require.NotNil(t, updates.submitted.Media.Video)
	require.Equal(t, "clip.mp4", updates.submitted.Media.Video.Name)
	require.Len(t, updates.submitted.Media.MediaPhotos, 1)
}

func TestHandleSubmitUpdateMissingEventID(t *testing.T) {
	router := setupEventRouter(&fakeCatalogService{}, &fakeUpdateService{}, &fakeUserService{}, 0)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("user_id", "7"))
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/event_update", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleSubmitUpdateVideoFailure(t *testing.T) {
	updates := &fakeUpdateService{submitErr: service.ErrVideoUploadFailed}
	router := setupEventRouter(&fakeCatalogService{}, updates, &fakeUserService{}, 0)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("event_id", "1"))
	require.NoError(t, mw.WriteField("user_id", "7"))
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/event_update", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandleCreateEventAsAdmin(t *testing.T) {
	catalog := &fakeCatalogService{}
	users := &fakeUserService{users: map[uint]domain.User{
		1: {ID: 1, Username: "root", Designation: domain.DesignationAdmin},
	}}
	router := setupEventRouter(catalog, &fakeUpdateService{}, users, 1)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("name", "Annual Meet"))
	require.NoError(t, mw.WriteField("user", "all"))
	writeFilePart(t, mw, "photos", "poster.jpg", "image/jpeg", "poster bytes")
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/event_add", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"event_id":42`)

	require.Equal(t, "Annual Meet", catalog.created.Name)
	require.Equal(t, "all", catalog.created.BroadcastTarget)
	require.Len(t, catalog.created.Media.Photos, 1)
}

func TestHandleCreateEventRejectsNonAdmin(t *testing.T) {
	users := &fakeUserService{users: map[uint]domain.User{
		7: {ID: 7, Username: "asha", Designation: "Member"},
	}}
	router := setupEventRouter(&fakeCatalogService{}, &fakeUpdateService{}, users, 7)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("name", "Annual Meet"))
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/event_add", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
	require.Contains(t, w.Body.String(), "अनुमति नहीं है")
}

func TestHandleCreateEventRequiresName(t *testing.T) {
	users := &fakeUserService{users: map[uint]domain.User{
		1: {ID: 1, Designation: domain.DesignationAdmin},
	}}
	router := setupEventRouter(&fakeCatalogService{}, &fakeUpdateService{}, users, 1)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("user", "all"))
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/event_add", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/incevents/incevents-api/internal/domain"
	"github.com/incevents/incevents-api/internal/repository"
)

var (
	ErrMissingEventID = errors.New("event_id is required")
	ErrMissingUserID  = errors.New("user_id is required")
	ErrUpdateNotFound = repository.ErrUpdateNotFound
)

type UpdateTrackingRepository interface {
	AppendUpdate(ctx context.Context, update domain.EventUpdate) (domain.EventUpdate, error)
	FindLatestUpdate(ctx context.Context, eventID, userID uint) (domain.EventUpdate, error)
	RecordView(ctx context.Context, eventID, userID uint, viewDateTime string) error
}

type MediaIngestor interface {
	Ingest(ctx context.Context, sub MediaSubmission) (domain.MediaResult, error)
}

// UpdateSubmission is one member submission against an event. Date-time
// fields are raw client inputs, normalized on the way in.
type UpdateSubmission struct {
	EventID       uint
	UserID        uint
	Name          string
	Description   string
	StartDateTime string
	EndDateTime   string
	IssueDate     string
	Location      string
	Attendees     string
	Type          string
	Media         MediaSubmission
}

type UpdateService struct {
	repo  UpdateTrackingRepository
	media MediaIngestor
}

func NewUpdateService(repo UpdateTrackingRepository, media MediaIngestor) *UpdateService {
	return &UpdateService{
		repo:  repo,
		media: media,
	}
}

// Submit validates the required fields, uploads the submission's media
// and appends one event_updates row. Field validation runs before any
// upload so a rejected submission never orphans blobs. A failed video
// upload aborts the submission; no row is written.
func (s *UpdateService) Submit(ctx context.Context, sub UpdateSubmission) (domain.EventUpdate, error) {
	if sub.EventID == 0 {
		return domain.EventUpdate{}, ErrMissingEventID
	}
	if sub.UserID == 0 {
		return domain.EventUpdate{}, ErrMissingUserID
	}

	start, err := normalizeDateTime(sub.StartDateTime)
	if err != nil {
		return domain.EventUpdate{}, err
	}
	end, err := normalizeDateTime(sub.EndDateTime)
	if err != nil {
		return domain.EventUpdate{}, err
	}
	issue, err := normalizeDateTime(sub.IssueDate)
	if err != nil {
		return domain.EventUpdate{}, err
	}

	media, err := s.media.Ingest(ctx, sub.Media)
	if err != nil {
		return domain.EventUpdate{}, fmt.Errorf("s.media.Ingest -> %w", err)
	}

	update := domain.EventUpdate{
		EventID:       sub.EventID,
		UserID:        sub.UserID,
		Name:          sub.Name,
		Description:   sub.Description,
		StartDateTime: start,
		EndDateTime:   end,
		IssueDate:     issue,
		Location:      sub.Location,
		Attendees:     sub.Attendees,
		Type:          sub.Type,
		UpdateDate:    time.Now().UTC().Format(dateLayout),
		Photos:        media.Photos,
		Video:         media.Video,
		MediaPhotos:   media.MediaPhotos,
	}

	created, err := s.repo.AppendUpdate(ctx, update)
	if err != nil {
		return domain.EventUpdate{}, fmt.Errorf("s.repo.AppendUpdate -> %w", err)
	}

	return created, nil
}

// LatestUpdate returns the greatest (update_date, id) row for the pair.
func (s *UpdateService) LatestUpdate(ctx context.Context, eventID, userID uint) (domain.EventUpdate, error) {
	update, err := s.repo.FindLatestUpdate(ctx, eventID, userID)
	if err != nil {
		return domain.EventUpdate{}, fmt.Errorf("s.repo.FindLatestUpdate -> %w", err)
	}

	return update, nil
}

// RecordView marks the event as viewed by the user. Idempotent: repeat
// calls succeed without adding rows.
func (s *UpdateService) RecordView(ctx context.Context, eventID, userID uint) error {
	viewDateTime := time.Now().UTC().Format(dateTimeLayout)

	if err := s.repo.RecordView(ctx, eventID, userID, viewDateTime); err != nil {
		return fmt.Errorf("s.repo.RecordView -> %w", err)
	}

	return nil
}

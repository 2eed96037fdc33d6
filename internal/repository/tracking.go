package repository

import (
	"context"
	"fmt"

	"github.com/incevents/incevents-api/internal/domain"
	"github.com/incevents/incevents-api/internal/repository/dao"
)

var (
	ErrUpdateNotFound = dao.ErrUpdateNotFound
)

type EventUpdateDAO interface {
	Insert(ctx context.Context, update dao.EventUpdate) (dao.EventUpdate, error)
	FindLatest(ctx context.Context, eventID, userID uint) (dao.EventUpdate, error)
	FindUpdatedEventIDs(ctx context.Context, userID uint, eventIDs []uint) ([]uint, error)
	CountForUser(ctx context.Context, eventID, userID uint) (int64, error)
}

type EventViewDAO interface {
	InsertIfAbsent(ctx context.Context, view dao.EventView) error
	CountForUser(ctx context.Context, eventID, userID uint) (int64, error)
}

// TrackingRepository owns the event_updates and event_views relations:
// the append-only submission trail and the idempotent first-view marks.
type TrackingRepository struct {
	updateDAO EventUpdateDAO
	viewDAO   EventViewDAO
}

func NewTrackingRepository(updateDAO EventUpdateDAO, viewDAO EventViewDAO) *TrackingRepository {
	return &TrackingRepository{
		updateDAO: updateDAO,
		viewDAO:   viewDAO,
	}
}

// AppendUpdate always inserts a new row; prior submissions are never
// touched.
func (r *TrackingRepository) AppendUpdate(ctx context.Context, update domain.EventUpdate) (domain.EventUpdate, error) {
	created, err := r.updateDAO.Insert(ctx, r.domainToDAO(update))
	if err != nil {
		return domain.EventUpdate{}, fmt.Errorf("r.updateDAO.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *TrackingRepository) FindLatestUpdate(ctx context.Context, eventID, userID uint) (domain.EventUpdate, error) {
	found, err := r.updateDAO.FindLatest(ctx, eventID, userID)
	if err != nil {
		return domain.EventUpdate{}, fmt.Errorf("r.updateDAO.FindLatest -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *TrackingRepository) RecordView(ctx context.Context, eventID, userID uint, viewDateTime string) error {
	err := r.viewDAO.InsertIfAbsent(ctx, dao.EventView{
		EventID:      eventID,
		UserID:       userID,
		ViewDateTime: viewDateTime,
	})
	if err != nil {
		return fmt.Errorf("r.viewDAO.InsertIfAbsent -> %w", err)
	}

	return nil
}

func (r *TrackingRepository) CountViews(ctx context.Context, eventID, userID uint) (int64, error) {
	count, err := r.viewDAO.CountForUser(ctx, eventID, userID)
	if err != nil {
		return 0, fmt.Errorf("r.viewDAO.CountForUser -> %w", err)
	}

	return count, nil
}

func (r *TrackingRepository) CountUpdates(ctx context.Context, eventID, userID uint) (int64, error) {
	count, err := r.updateDAO.CountForUser(ctx, eventID, userID)
	if err != nil {
		return 0, fmt.Errorf("r.updateDAO.CountForUser -> %w", err)
	}

	return count, nil
}

func (r *TrackingRepository) domainToDAO(u domain.EventUpdate) dao.EventUpdate {
	return dao.EventUpdate{
		EventID:       u.EventID,
		UserID:        u.UserID,
		Name:          u.Name,
		Description:   u.Description,
		StartDateTime: u.StartDateTime,
		EndDateTime:   u.EndDateTime,
		IssueDate:     u.IssueDate,
		Location:      u.Location,
		Attendees:     u.Attendees,
		Type:          u.Type,
		UpdateDate:    u.UpdateDate,
		Photos:        dao.URLList(u.Photos),
		Video:         u.Video,
		MediaPhotos:   dao.URLList(u.MediaPhotos),
	}
}

func (r *TrackingRepository) daoToDomain(u dao.EventUpdate) domain.EventUpdate {
	return domain.EventUpdate{
		ID:            u.ID,
		EventID:       u.EventID,
		UserID:        u.UserID,
		Name:          u.Name,
		Description:   u.Description,
		StartDateTime: u.StartDateTime,
		EndDateTime:   u.EndDateTime,
		IssueDate:     u.IssueDate,
		Location:      u.Location,
		Attendees:     u.Attendees,
		Type:          u.Type,
		UpdateDate:    u.UpdateDate,
		Photos:        []string(u.Photos),
		Video:         u.Video,
		MediaPhotos:   []string(u.MediaPhotos),
		CreatedAt:     u.CreatedAt,
	}
}

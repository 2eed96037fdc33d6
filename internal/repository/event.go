package repository

import (
	"context"
	"fmt"

	"github.com/incevents/incevents-api/internal/domain"
	"github.com/incevents/incevents-api/internal/repository/dao"
)

var (
	ErrEventNotFound = dao.ErrEventNotFound
)

type EventDAO interface {
	InsertWithEntitlements(ctx context.Context, event dao.Event, userIDs []uint) (dao.Event, error)
	FindByStatus(ctx context.Context, status string) ([]dao.Event, error)
	FindByID(ctx context.Context, id uint) (dao.Event, error)
	CountEntitlements(ctx context.Context, eventID uint) (int64, error)
}

type EventRepository struct {
	eventDAO  EventDAO
	updateDAO EventUpdateDAO
}

func NewEventRepository(eventDAO EventDAO, updateDAO EventUpdateDAO) *EventRepository {
	return &EventRepository{
		eventDAO:  eventDAO,
		updateDAO: updateDAO,
	}
}

// CreateWithEntitlements persists the event and fans out one entitlement
// per user atomically.
func (r *EventRepository) CreateWithEntitlements(ctx context.Context, event domain.Event, userIDs []uint) (domain.Event, error) {
	created, err := r.eventDAO.InsertWithEntitlements(ctx, r.domainToDAO(event), userIDs)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.eventDAO.InsertWithEntitlements -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *EventRepository) FindByStatus(ctx context.Context, status string) ([]domain.Event, error) {
	found, err := r.eventDAO.FindByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("r.eventDAO.FindByStatus -> %w", err)
	}

	events := make([]domain.Event, 0, len(found))
	for _, e := range found {
		events = append(events, r.daoToDomain(e))
	}

	return events, nil
}

// FindByStatusForViewer lists events in the given status and annotates
// each with whether the viewer has already submitted an update, resolved
// with one batched membership query.
func (r *EventRepository) FindByStatusForViewer(ctx context.Context, status string, viewerID uint) ([]domain.Event, error) {
	events, err := r.FindByStatus(ctx, status)
	if err != nil {
		return nil, err
	}

	if len(events) == 0 {
		return events, nil
	}

	eventIDs := make([]uint, 0, len(events))
	for _, e := range events {
		eventIDs = append(eventIDs, e.ID)
	}

	updatedIDs, err := r.updateDAO.FindUpdatedEventIDs(ctx, viewerID, eventIDs)
	if err != nil {
		return nil, fmt.Errorf("r.updateDAO.FindUpdatedEventIDs -> %w", err)
	}

	updated := make(map[uint]bool, len(updatedIDs))
	for _, id := range updatedIDs {
		updated[id] = true
	}

	for i := range events {
		hasUpdated := updated[events[i].ID]
		events[i].UserHasUpdated = &hasUpdated
	}

	return events, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (domain.Event, error) {
	found, err := r.eventDAO.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.eventDAO.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EventRepository) CountEntitlements(ctx context.Context, eventID uint) (int64, error) {
	count, err := r.eventDAO.CountEntitlements(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("r.eventDAO.CountEntitlements -> %w", err)
	}

	return count, nil
}

func (r *EventRepository) domainToDAO(e domain.Event) dao.Event {
	return dao.Event{
		ID:            e.ID,
		Name:          e.Name,
		Description:   e.Description,
		StartDateTime: e.StartDateTime,
		EndDateTime:   e.EndDateTime,
		IssueDate:     e.IssueDate,
		Location:      e.Location,
		Type:          e.Type,
		Status:        e.Status,
		Photos:        dao.URLList(e.Photos),
		Video:         e.Video,
	}
}

func (r *EventRepository) daoToDomain(e dao.Event) domain.Event {
	return domain.Event{
		ID:            e.ID,
		Name:          e.Name,
		Description:   e.Description,
		StartDateTime: e.StartDateTime,
		EndDateTime:   e.EndDateTime,
		IssueDate:     e.IssueDate,
		Location:      e.Location,
		Type:          e.Type,
		Status:        e.Status,
		Photos:        []string(e.Photos),
		Video:         e.Video,
		CreatedAt:     e.CreatedAt,
	}
}

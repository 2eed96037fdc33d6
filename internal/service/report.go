package service

import (
	"context"
	"fmt"

	"github.com/incevents/incevents-api/internal/domain"
)

type ReportParticipantRepository interface {
	FindParticipants(ctx context.Context, eventID uint) ([]domain.Participant, error)
}

type ReportEventRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Event, error)
}

// ReportService joins catalog, entitlement, view and update data into a
// per-event participation summary for administrators.
type ReportService struct {
	repo      ReportParticipantRepository
	eventRepo ReportEventRepository
}

func NewReportService(repo ReportParticipantRepository, eventRepo ReportEventRepository) *ReportService {
	return &ReportService{
		repo:      repo,
		eventRepo: eventRepo,
	}
}

// BuildReport summarizes participation for one event. The participant
// set is every entitled user except admins; counts are per-user row
// counts, not booleans. An unknown event surfaces ErrEventNotFound.
func (s *ReportService) BuildReport(ctx context.Context, eventID uint) (domain.EventReport, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return domain.EventReport{}, fmt.Errorf("s.eventRepo.FindByID -> %w", err)
	}

	participants, err := s.repo.FindParticipants(ctx, eventID)
	if err != nil {
		return domain.EventReport{}, fmt.Errorf("s.repo.FindParticipants -> %w", err)
	}

	return domain.EventReport{
		Event:        event,
		Participants: participants,
	}, nil
}

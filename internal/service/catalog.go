package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/incevents/incevents-api/internal/domain"
	"github.com/incevents/incevents-api/internal/repository"
)

// BroadcastAll selects the all-non-admin cohort at event creation.
const BroadcastAll = "all"

var (
	ErrEventNotFound = repository.ErrEventNotFound
)

type CatalogEventRepository interface {
	CreateWithEntitlements(ctx context.Context, event domain.Event, userIDs []uint) (domain.Event, error)
	FindByStatus(ctx context.Context, status string) ([]domain.Event, error)
	FindByStatusForViewer(ctx context.Context, status string, viewerID uint) ([]domain.Event, error)
	FindByID(ctx context.Context, id uint) (domain.Event, error)
}

type CatalogUserRepository interface {
	ListNonAdmins(ctx context.Context) ([]domain.User, error)
}

// EventSubmission is the admin-side payload for creating an event.
type EventSubmission struct {
	Name            string
	Description     string
	StartDateTime   string
	EndDateTime     string
	IssueDate       string
	Location        string
	Type            string
	BroadcastTarget string
	Media           MediaSubmission
}

type CatalogService struct {
	repo     CatalogEventRepository
	userRepo CatalogUserRepository
	media    MediaIngestor
}

func NewCatalogService(repo CatalogEventRepository, userRepo CatalogUserRepository, media MediaIngestor) *CatalogService {
	return &CatalogService{
		repo:     repo,
		userRepo: userRepo,
		media:    media,
	}
}

// CreateEvent persists a new event with a status frozen at creation time
// and, when the broadcast target selects the whole cohort, fans out one
// entitlement per non-admin user. Event and entitlements commit together.
func (s *CatalogService) CreateEvent(ctx context.Context, sub EventSubmission) (domain.Event, error) {
	start, err := normalizeDateTime(sub.StartDateTime)
	if err != nil {
		return domain.Event{}, err
	}
	end, err := normalizeDateTime(sub.EndDateTime)
	if err != nil {
		return domain.Event{}, err
	}
	issue, err := normalizeDateTime(sub.IssueDate)
	if err != nil {
		return domain.Event{}, err
	}

	// Frozen classification: never recomputed after creation.
	status := domain.StatusPrevious
	if sub.StartDateTime != "" {
		if t, err := parseDateTime(sub.StartDateTime); err == nil && t.After(time.Now()) {
			status = domain.StatusOngoing
		}
	}

	media, err := s.media.Ingest(ctx, sub.Media)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.media.Ingest -> %w", err)
	}

	var userIDs []uint
	if strings.EqualFold(sub.BroadcastTarget, BroadcastAll) {
		users, err := s.userRepo.ListNonAdmins(ctx)
		if err != nil {
			return domain.Event{}, fmt.Errorf("s.userRepo.ListNonAdmins -> %w", err)
		}
		for _, u := range users {
			userIDs = append(userIDs, u.ID)
		}
	}

	event := domain.Event{
		Name:          sub.Name,
		Description:   sub.Description,
		StartDateTime: start,
		EndDateTime:   end,
		IssueDate:     issue,
		Location:      sub.Location,
		Type:          sub.Type,
		Status:        status,
		Photos:        media.Photos,
		Video:         media.Video,
	}

	created, err := s.repo.CreateWithEntitlements(ctx, event, userIDs)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.CreateWithEntitlements -> %w", err)
	}

	return created, nil
}

// ListEvents returns all events in the given status. When a viewer is
// supplied each event carries the userHasUpdated annotation.
func (s *CatalogService) ListEvents(ctx context.Context, status string, viewerID *uint) ([]domain.Event, error) {
	var (
		events []domain.Event
		err    error
	)

	if viewerID != nil {
		events, err = s.repo.FindByStatusForViewer(ctx, status, *viewerID)
	} else {
		events, err = s.repo.FindByStatus(ctx, status)
	}
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByStatus -> %w", err)
	}

	return events, nil
}

func (s *CatalogService) GetEvent(ctx context.Context, id uint) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return event, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/incevents/incevents-api/internal/domain"
	"github.com/incevents/incevents-api/internal/repository"
)

var (
	ErrUserNotFound = repository.ErrUserNotFound
)

type AuthUserRepository interface {
	FindByPIN(ctx context.Context, pin string) (domain.User, error)
	FindByID(ctx context.Context, id uint) (domain.User, error)
	LogVisit(ctx context.Context, userID uint, visitDateTime, month string) error
	SummarizeMonthVisits(ctx context.Context, userID uint, month string) (domain.VisitSummary, error)
}

type AuthService struct {
	repo AuthUserRepository
}

func NewAuthService(repo AuthUserRepository) *AuthService {
	return &AuthService{
		repo: repo,
	}
}

// LoginWithPIN resolves the user holding the given PIN and appends a
// visit-log row. A failed visit insert is logged and swallowed: login
// success is not contingent on the audit trail.
func (s *AuthService) LoginWithPIN(ctx context.Context, pin string) (domain.User, error) {
	user, err := s.repo.FindByPIN(ctx, pin)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}

		return domain.User{}, fmt.Errorf("s.repo.FindByPIN -> %w", err)
	}

	now := time.Now().UTC()
	if err := s.repo.LogVisit(ctx, user.ID, now.Format(dateTimeLayout), now.Format(monthLayout)); err != nil {
		zap.L().Warn("failed to log user visit", zap.Uint("user_id", user.ID), zap.Error(err))
	}

	return user, nil
}

func (s *AuthService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

// CurrentMonthVisits summarizes the user's visits for the current
// calendar month.
func (s *AuthService) CurrentMonthVisits(ctx context.Context, userID uint) (domain.VisitSummary, error) {
	month := time.Now().UTC().Format(monthLayout)

	summary, err := s.repo.SummarizeMonthVisits(ctx, userID, month)
	if err != nil {
		return domain.VisitSummary{}, fmt.Errorf("s.repo.SummarizeMonthVisits -> %w", err)
	}

	return summary, nil
}

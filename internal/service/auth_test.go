package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/incevents/incevents-api/internal/domain"
	"github.com/incevents/incevents-api/internal/repository"
)

type fakeAuthRepository struct {
	byPIN    map[string]domain.User
	byID     map[uint]domain.User
	visits   []string
	visitErr error
	summary  domain.VisitSummary
}

func (r *fakeAuthRepository) FindByPIN(_ context.Context, pin string) (domain.User, error) {
	user, ok := r.byPIN[pin]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}

func (r *fakeAuthRepository) FindByID(_ context.Context, id uint) (domain.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}

func (r *fakeAuthRepository) LogVisit(_ context.Context, userID uint, visitDateTime, month string) error {
	if r.visitErr != nil {
		return r.visitErr
	}

	r.visits = append(r.visits, visitDateTime+"|"+month)

	return nil
}

func (r *fakeAuthRepository) SummarizeMonthVisits(_ context.Context, userID uint, month string) (domain.VisitSummary, error) {
	return r.summary, nil
}

func TestAuthServiceLoginWithPIN(t *testing.T) {
	repo := &fakeAuthRepository{byPIN: map[string]domain.User{
		"4321": {ID: 7, Username: "asha", Designation: "Member", PIN: "4321"},
	}}
	svc := NewAuthService(repo)

	user, err := svc.LoginWithPIN(context.Background(), "4321")
	require.NoError(t, err)
	require.Equal(t, uint(7), user.ID)

	// One visit row, bucketed into the current month.
	require.Len(t, repo.visits, 1)
	require.Contains(t, repo.visits[0], "|"+time.Now().UTC().Format("2006-01"))
}

func TestAuthServiceLoginUnknownPIN(t *testing.T) {
	svc := NewAuthService(&fakeAuthRepository{byPIN: map[string]domain.User{}})

	_, err := svc.LoginWithPIN(context.Background(), "0000")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthServiceLoginSurvivesVisitLogFailure(t *testing.T) {
	repo := &fakeAuthRepository{
		byPIN:    map[string]domain.User{"4321": {ID: 7, PIN: "4321"}},
		visitErr: errors.New("db down"),
	}
	svc := NewAuthService(repo)

	user, err := svc.LoginWithPIN(context.Background(), "4321")
	require.NoError(t, err)
	require.Equal(t, uint(7), user.ID)
}

func TestAuthServiceCurrentMonthVisits(t *testing.T) {
	last := "2026-09-01 08:00:00"
	repo := &fakeAuthRepository{summary: domain.VisitSummary{LastVisit: &last, MonthlyCount: 3}}
	svc := NewAuthService(repo)

	summary, err := svc.CurrentMonthVisits(context.Background(), 7)
	require.NoError(t, err)
	require.EqualValues(t, 3, summary.MonthlyCount)
	require.Equal(t, &last, summary.LastVisit)
}

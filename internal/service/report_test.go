package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/incevents/incevents-api/internal/domain"
)

type fakeParticipantRepository struct {
	participants []domain.Participant
}

func (r *fakeParticipantRepository) FindParticipants(_ context.Context, eventID uint) ([]domain.Participant, error) {
	return r.participants, nil
}

func TestReportServiceBuildReport(t *testing.T) {
	events := &fakeEventRepository{byID: map[uint]domain.Event{
		1: {ID: 1, Name: "Annual Meet"},
	}}
	participants := &fakeParticipantRepository{participants: []domain.Participant{
		{UserID: 3, Name: "asha", ViewedCount: 1, UpdatedCount: 2},
		{UserID: 4, Name: "ravi"},
	}}
	svc := NewReportService(participants, events)

	report, err := svc.BuildReport(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "Annual Meet", report.Event.Name)
	require.Len(t, report.Participants, 2)
	require.EqualValues(t, 2, report.Participants[0].UpdatedCount)
}

func TestReportServiceBuildReportUnknownEvent(t *testing.T) {
	events := &fakeEventRepository{byID: map[uint]domain.Event{}}
	svc := NewReportService(&fakeParticipantRepository{}, events)

	_, err := svc.BuildReport(context.Background(), 99)
	require.ErrorIs(t, err, ErrEventNotFound)
}

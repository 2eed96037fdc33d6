package repository

import (
	"context"
	"fmt"

	"github.com/incevents/incevents-api/internal/domain"
	"github.com/incevents/incevents-api/internal/repository/dao"
)

type ReportDAO interface {
	FindParticipants(ctx context.Context, eventID uint, adminDesignation string) ([]dao.ParticipantRow, error)
}

type ReportRepository struct {
	dao ReportDAO
}

func NewReportRepository(dao ReportDAO) *ReportRepository {
	return &ReportRepository{
		dao: dao,
	}
}

func (r *ReportRepository) FindParticipants(ctx context.Context, eventID uint) ([]domain.Participant, error) {
	rows, err := r.dao.FindParticipants(ctx, eventID, domain.DesignationAdmin)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindParticipants -> %w", err)
	}

	participants := make([]domain.Participant, 0, len(rows))
	for _, row := range rows {
		participants = append(participants, domain.Participant{
			UserID:       row.UserID,
			Name:         row.Name,
			Designation:  row.Designation,
			ViewedCount:  row.ViewedCount,
			UpdatedCount: row.UpdatedCount,
		})
	}

	return participants, nil
}

package dao

import (
	"context"

	"gorm.io/gorm"
)

// ParticipantRow is one entitled user with per-event view/update counts.
type ParticipantRow struct {
	UserID       uint
	Name         string
	Designation  string
	ViewedCount  int64
	UpdatedCount int64
}

type ReportDAO struct {
	db *gorm.DB
}

func NewReportDAO(db *gorm.DB) *ReportDAO {
	return &ReportDAO{
		db: db,
	}
}

// FindParticipants joins entitled users with their view and update counts
// for one event, excluding the given admin designation.
func (d *ReportDAO) FindParticipants(ctx context.Context, eventID uint, adminDesignation string) ([]ParticipantRow, error) {
	var rows []ParticipantRow

	result := d.db.WithContext(ctx).
		Table("users").
		Select(`users.id AS user_id, users.username AS name, users.designation,
			(SELECT COUNT(*) FROM event_views ev WHERE ev.user_id = users.id AND ev.event_id = ?) AS viewed_count,
			(SELECT COUNT(*) FROM event_updates eu WHERE eu.user_id = users.id AND eu.event_id = ?) AS updated_count`,
			eventID, eventID).
		Joins("JOIN event_users ON event_users.user_id = users.id").
		Where("event_users.event_id = ? AND users.designation <> ?", eventID, adminDesignation).
		Order("users.id").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

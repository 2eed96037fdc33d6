package dao

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EventView marks a user's first view of an event. At most one row per
// (event, user); repeated inserts are absorbed.
type EventView struct {
	ID           uint   `gorm:"primaryKey"`
	EventID      uint   `gorm:"not null;uniqueIndex:idx_event_views_event_user"`
	UserID       uint   `gorm:"not null;uniqueIndex:idx_event_views_event_user"`
	ViewDateTime string `gorm:"not null"`
}

type EventViewDAO struct {
	db *gorm.DB
}

func NewEventViewDAO(db *gorm.DB) *EventViewDAO {
	return &EventViewDAO{
		db: db,
	}
}

func (d *EventViewDAO) InsertIfAbsent(ctx context.Context, view EventView) error {
	result := d.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(&view)
	if result.Error != nil {
		// A concurrent duplicate can still surface as a unique
		// violation; that is the idempotent success case.
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil
		}

		return result.Error
	}

	return nil
}

func (d *EventViewDAO) CountForUser(ctx context.Context, eventID, userID uint) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&EventView{}).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

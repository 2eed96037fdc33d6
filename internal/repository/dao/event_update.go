package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrUpdateNotFound = errors.New("event update not found")
)

// EventUpdate is append-only: Insert is the only write, and a user may
// hold any number of rows per event.
type EventUpdate struct {
	ID uint `gorm:"primaryKey"`

	EventID uint `gorm:"not null;index:idx_event_updates_event_user"`
	UserID  uint `gorm:"not null;index:idx_event_updates_event_user"`

	Name          string
	Description   string
	StartDateTime *string
	EndDateTime   *string
	IssueDate     *string
	Location      string
	Attendees     string
	Type          string
	UpdateDate    string `gorm:"not null"` // YYYY-MM-DD, day of submission

	Photos      URLList `gorm:"type:text"`
	Video       *string
	MediaPhotos URLList `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null"`
}

type EventUpdateDAO struct {
	db *gorm.DB
}

func NewEventUpdateDAO(db *gorm.DB) *EventUpdateDAO {
	return &EventUpdateDAO{
		db: db,
	}
}

func (d *EventUpdateDAO) Insert(ctx context.Context, update EventUpdate) (EventUpdate, error) {
	result := d.db.WithContext(ctx).Create(&update)
	if result.Error != nil {
		return EventUpdate{}, result.Error
	}

	return update, nil
}

// FindLatest returns the most recent submission for (event, user),
// ordered by update_date then row id descending.
func (d *EventUpdateDAO) FindLatest(ctx context.Context, eventID, userID uint) (EventUpdate, error) {
	var update EventUpdate

	result := d.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Order("update_date DESC").
		Order("id DESC").
		First(&update)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return EventUpdate{}, ErrUpdateNotFound
		}

		return EventUpdate{}, result.Error
	}

	return update, nil
}

// FindUpdatedEventIDs reports which of the given events the user has at
// least one update row for, in one batched query.
func (d *EventUpdateDAO) FindUpdatedEventIDs(ctx context.Context, userID uint, eventIDs []uint) ([]uint, error) {
	if len(eventIDs) == 0 {
		return nil, nil
	}

	var updated []uint
	result := d.db.WithContext(ctx).
		Model(&EventUpdate{}).
		Distinct("event_id").
		Where("user_id = ? AND event_id IN ?", userID, eventIDs).
		Pluck("event_id", &updated)
	if result.Error != nil {
		return nil, result.Error
	}

	return updated, nil
}

func (d *EventUpdateDAO) CountForUser(ctx context.Context, eventID, userID uint) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&EventUpdate{}).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrEventNotFound = errors.New("event not found")
)

type Event struct {
	ID uint `gorm:"primaryKey"`

	Name          string `gorm:"not null"`
	Description   string
	StartDateTime *string
	EndDateTime   *string
	IssueDate     *string
	Location      string
	Type          string
	Status        string  `gorm:"not null;index"`
	Photos        URLList `gorm:"type:text"`
	Video         *string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// EventEntitlement grants a user visibility of an event. Append-only,
// at most one row per (event, user).
type EventEntitlement struct {
	ID        uint `gorm:"primaryKey"`
	EventID   uint `gorm:"not null;uniqueIndex:idx_event_users_event_user"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_event_users_event_user"`
	CreatedAt time.Time
}

func (EventEntitlement) TableName() string {
	return "event_users"
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

// InsertWithEntitlements creates the event and one entitlement row per
// user in a single transaction, so a failed fan-out never leaves an
// orphan event behind.
func (d *EventDAO) InsertWithEntitlements(ctx context.Context, event Event, userIDs []uint) (Event, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&event).Error; err != nil {
			return err
		}

		if len(userIDs) == 0 {
			return nil
		}

		entitlements := make([]EventEntitlement, 0, len(userIDs))
		for _, userID := range userIDs {
			entitlements = append(entitlements, EventEntitlement{
				EventID: event.ID,
				UserID:  userID,
			})
		}

		return tx.Create(&entitlements).Error
	})
	if err != nil {
		return Event{}, err
	}

	return event, nil
}

func (d *EventDAO) FindByStatus(ctx context.Context, status string) ([]Event, error) {
	var events []Event

	result := d.db.WithContext(ctx).Where("status = ?", status).Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) FindByID(ctx context.Context, id uint) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) CountEntitlements(ctx context.Context, eventID uint) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&EventEntitlement{}).
		Where("event_id = ?", eventID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

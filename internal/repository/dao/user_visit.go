package dao

import (
	"context"

	"gorm.io/gorm"
)

// UserVisit is an append-only audit row written once per successful login.
type UserVisit struct {
	ID            uint   `gorm:"primaryKey"`
	UserID        uint   `gorm:"not null;index"`
	VisitDateTime string `gorm:"not null"`
	Month         string `gorm:"not null;index"` // YYYY-MM bucket
}

type UserVisitDAO struct {
	db *gorm.DB
}

func NewUserVisitDAO(db *gorm.DB) *UserVisitDAO {
	return &UserVisitDAO{
		db: db,
	}
}

func (d *UserVisitDAO) Insert(ctx context.Context, visit UserVisit) (UserVisit, error) {
	result := d.db.WithContext(ctx).Create(&visit)
	if result.Error != nil {
		return UserVisit{}, result.Error
	}

	return visit, nil
}

type MonthSummary struct {
	LastVisit    *string
	MonthlyCount int64
}

func (d *UserVisitDAO) SummarizeMonth(ctx context.Context, userID uint, month string) (MonthSummary, error) {
	var summary MonthSummary

	result := d.db.WithContext(ctx).
		Model(&UserVisit{}).
		Select("MAX(visit_date_time) AS last_visit, COUNT(*) AS monthly_count").
		Where("user_id = ? AND month = ?", userID, month).
		Scan(&summary)
	if result.Error != nil {
		return MonthSummary{}, result.Error
	}

	return summary, nil
}

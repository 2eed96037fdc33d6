package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

type User struct {
	ID uint `gorm:"primaryKey"`

	Username    string `gorm:"not null"`
	Designation string `gorm:"not null"`
	PIN         string `gorm:"column:pin;unique;not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		db: db,
	}
}

func (d *UserDAO) Insert(ctx context.Context, user User) (User, error) {
	result := d.db.WithContext(ctx).Create(&user)
	if result.Error != nil {
		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByPIN(ctx context.Context, pin string) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, "pin = ?", pin)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByID(ctx context.Context, id uint) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

// FindNonAdmins returns every user whose designation is not the given
// sentinel. Used to fan out entitlements when an event is broadcast.
func (d *UserDAO) FindNonAdmins(ctx context.Context, adminDesignation string) ([]User, error) {
	var users []User

	result := d.db.WithContext(ctx).Where("designation <> ?", adminDesignation).Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}

	return users, nil
}

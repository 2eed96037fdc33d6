package repository

import (
	"context"
	"fmt"

	"github.com/incevents/incevents-api/internal/domain"
	"github.com/incevents/incevents-api/internal/repository/dao"
)

var (
	ErrUserNotFound = dao.ErrUserNotFound
)

type UserDAO interface {
	Insert(ctx context.Context, user dao.User) (dao.User, error)
	FindByPIN(ctx context.Context, pin string) (dao.User, error)
	FindByID(ctx context.Context, id uint) (dao.User, error)
	FindNonAdmins(ctx context.Context, adminDesignation string) ([]dao.User, error)
}

type UserVisitDAO interface {
	Insert(ctx context.Context, visit dao.UserVisit) (dao.UserVisit, error)
	SummarizeMonth(ctx context.Context, userID uint, month string) (dao.MonthSummary, error)
}

type UserRepository struct {
	userDAO  UserDAO
	visitDAO UserVisitDAO
}

func NewUserRepository(userDAO UserDAO, visitDAO UserVisitDAO) *UserRepository {
	return &UserRepository{
		userDAO:  userDAO,
		visitDAO: visitDAO,
	}
}

func (r *UserRepository) FindByPIN(ctx context.Context, pin string) (domain.User, error) {
	found, err := r.userDAO.FindByPIN(ctx, pin)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.userDAO.FindByPIN -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	found, err := r.userDAO.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.userDAO.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) ListNonAdmins(ctx context.Context) ([]domain.User, error) {
	found, err := r.userDAO.FindNonAdmins(ctx, domain.DesignationAdmin)
	if err != nil {
		return nil, fmt.Errorf("r.userDAO.FindNonAdmins -> %w", err)
	}

	users := make([]domain.User, 0, len(found))
	for _, u := range found {
		users = append(users, r.daoToDomain(u))
	}

	return users, nil
}

func (r *UserRepository) LogVisit(ctx context.Context, userID uint, visitDateTime, month string) error {
	_, err := r.visitDAO.Insert(ctx, dao.UserVisit{
		UserID:        userID,
		VisitDateTime: visitDateTime,
		Month:         month,
	})
	if err != nil {
		return fmt.Errorf("r.visitDAO.Insert -> %w", err)
	}

	return nil
}

func (r *UserRepository) SummarizeMonthVisits(ctx context.Context, userID uint, month string) (domain.VisitSummary, error) {
	summary, err := r.visitDAO.SummarizeMonth(ctx, userID, month)
	if err != nil {
		return domain.VisitSummary{}, fmt.Errorf("r.visitDAO.SummarizeMonth -> %w", err)
	}

	return domain.VisitSummary{
		LastVisit:    summary.LastVisit,
		MonthlyCount: summary.MonthlyCount,
	}, nil
}

func (r *UserRepository) daoToDomain(u dao.User) domain.User {
	return domain.User{
		ID:          u.ID,
		Username:    u.Username,
		Designation: u.Designation,
		PIN:         u.PIN,
		CreatedAt:   u.CreatedAt,
	}
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/model"
)

// LoginLogRepository defines login history persistence operations.
type LoginLogRepository interface {
	Create(ctx context.Context, log *model.LoginLog) error
	ListByUser(ctx context.Context, userID uint, limit int) ([]model.LoginLog, error)
}

type loginLogRepository struct {
	db *gorm.DB
}

// NewLoginLogRepository creates a new login log repository.
func NewLoginLogRepository(db *gorm.DB) LoginLogRepository {
	return &loginLogRepository{db: db}
}

// Create records a login.
func (r *loginLogRepository) Create(ctx context.Context, log *model.LoginLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// ListByUser lists a user's most recent logins.
func (r *loginLogRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]model.LoginLog, error) {
	if limit <= 0 {
		limit = 50
	}
	var logs []model.LoginLog
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

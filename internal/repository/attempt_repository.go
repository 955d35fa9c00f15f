package repository

import (
	"context"
	"recon_backend/internal/model"

	"gorm.io/gorm"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

func (r *AttemptRepository) Create(ctx context.Context, attempt *model.Attempt) error {
	return r.DB.WithContext(ctx).Create(attempt).Error
}

func (r *AttemptRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Attempt{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// ListByUser 按提交时间倒序分页
func (r *AttemptRepository) ListByUser(ctx context.Context, userID string, page, limit int) ([]model.Attempt, error) {
	var attempts []model.Attempt
	offset := (page - 1) * limit
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&attempts).Error
	return attempts, err
}

package repository

import (
	"context"
	"errors"
	"recon_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Question{}).Count(&count).Error
	return count, err
}

// FindAtOffset 按 id 排序取第 offset 条，不存在时返回 nil, nil
func (r *QuestionRepository) FindAtOffset(ctx context.Context, offset int64) (*model.Question, error) {
	var questions []model.Question
	err := r.DB.WithContext(ctx).
		Order("id ASC").
		Offset(int(offset)).
		Limit(1).
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, nil
	}
	return &questions[0], nil
}

// FindByID 不存在时返回 nil, nil
func (r *QuestionRepository) FindByID(ctx context.Context, id string) (*model.Question, error) {
	var question model.Question
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&question).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *QuestionRepository) Create(ctx context.Context, question *model.Question) error {
	return r.DB.WithContext(ctx).Create(question).Error
}

// Upsert 按 id 覆盖写入，供导入流程重复执行
func (r *QuestionRepository) Upsert(ctx context.Context, question *model.Question) error {
	if question.ID == "" {
		return r.Create(ctx, question)
	}
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Question
		err := tx.Where("id = ?", question.ID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(question).Error
		}
		if err != nil {
			return err
		}
		question.CreatedAt = existing.CreatedAt
		return tx.Save(question).Error
	})
}

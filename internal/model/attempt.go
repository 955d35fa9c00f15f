package model

import (
	"time"

	"gorm.io/gorm"
)

// Attempt 一次答题提交记录，只追加不修改
// swagger:model Attempt
type Attempt struct {
	ID         string  `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID     string  `gorm:"type:varchar(36);not null;index" json:"userId"`
	QuestionID string  `gorm:"type:varchar(36);not null;index" json:"questionId"`
	Selected   *string `gorm:"type:text" json:"selected"`
	// nil 表示无法自动判分，等待人工批改
	IsCorrect *bool     `json:"isCorrect"`
	Score     *float64  `json:"score"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

func (Attempt) TableName() string {
	return "attempts"
}

func (a *Attempt) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = GenerateUUID()
	}
	return
}

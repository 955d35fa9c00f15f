package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type QuestionType string

const (
	QuestionMCQ   QuestionType = "MCQ"
	QuestionShort QuestionType = "SHORT"
	QuestionEssay QuestionType = "ESSAY"
	QuestionData  QuestionType = "DATA"
)

func (t QuestionType) Valid() bool {
	switch t {
	case QuestionMCQ, QuestionShort, QuestionEssay, QuestionData:
		return true
	}
	return false
}

// Question 题目，由导入流程写入，核心流程只读
// swagger:model Question
type Question struct {
	ID            string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Number        *string        `gorm:"size:32" json:"number"`
	Type          QuestionType   `gorm:"size:16;not null;index" json:"type"`
	QuestionText  string         `gorm:"type:text;not null" json:"questionText"`
	Topic         string         `gorm:"size:255;not null;index" json:"topic"`
	SpecPoint     *string        `gorm:"size:255" json:"specPoint"`
	Options       datatypes.JSON `json:"-"`
	CorrectAnswer *string        `gorm:"type:text" json:"correctAnswer"`
	MarkScheme    *string        `gorm:"type:text" json:"markScheme"`
	Marks         *int           `json:"marks"`
	ImageURL      *string        `gorm:"column:image_url;size:512" json:"imageUrl"`
	DataExtract   *string        `gorm:"type:text" json:"dataExtract"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

func (Question) TableName() string {
	return "questions"
}

func (q *Question) BeforeCreate(tx *gorm.DB) (err error) {
	if q.ID == "" {
		q.ID = GenerateUUID()
	}
	return
}

// OptionList 将 JSON 列转换为有序字符串列表，无选项时返回 nil
func (q *Question) OptionList() []string {
	if len(q.Options) == 0 || string(q.Options) == "null" {
		return nil
	}
	var raw []interface{}
	if err := json.Unmarshal(q.Options, &raw); err != nil {
		return nil
	}
	opts := make([]string, 0, len(raw))
	for _, v := range raw {
		switch val := v.(type) {
		case string:
			opts = append(opts, val)
		case nil:
			opts = append(opts, "")
		default:
			b, _ := json.Marshal(val)
			opts = append(opts, string(b))
		}
	}
	return opts
}

// SetOptions 写入选项，nil 表示无选项
func (q *Question) SetOptions(opts []string) {
	if opts == nil {
		q.Options = nil
		return
	}
	b, _ := json.Marshal(opts)
	q.Options = datatypes.JSON(b)
}

// Gradable 仅设置了标准答案的选择题可以自动判分
func (q *Question) Gradable() bool {
	return q.Type == QuestionMCQ && q.CorrectAnswer != nil
}

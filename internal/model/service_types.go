package model

import "time"

// QuestionResponse 对外返回的题目，options 为有序字符串列表或 null
// swagger:model QuestionResponse
type QuestionResponse struct {
	ID            string       `json:"id"`
	Number        *string      `json:"number"`
	Type          QuestionType `json:"type"`
	QuestionText  string       `json:"questionText"`
	Topic         string       `json:"topic"`
	SpecPoint     *string      `json:"specPoint"`
	Options       []string     `json:"options"`
	CorrectAnswer *string      `json:"correctAnswer"`
	MarkScheme    *string      `json:"markScheme"`
	Marks         *int         `json:"marks"`
	ImageURL      *string      `json:"imageUrl"`
	DataExtract   *string      `json:"dataExtract"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

func NewQuestionResponse(q *Question) *QuestionResponse {
	return &QuestionResponse{
		ID:            q.ID,
		Number:        q.Number,
		Type:          q.Type,
		QuestionText:  q.QuestionText,
		Topic:         q.Topic,
		SpecPoint:     q.SpecPoint,
		Options:       q.OptionList(),
		CorrectAnswer: q.CorrectAnswer,
		MarkScheme:    q.MarkScheme,
		Marks:         q.Marks,
		ImageURL:      q.ImageURL,
		DataExtract:   q.DataExtract,
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
	}
}

// AttemptResult 提交答案的返回结果
// swagger:model AttemptResult
type AttemptResult struct {
	Success       bool     `json:"success"`
	IsCorrect     *bool    `json:"isCorrect"`
	CorrectAnswer *string  `json:"correctAnswer"`
	Attempt       *Attempt `json:"attempt"`
}

// AttemptPage 答题记录分页
type AttemptPage struct {
	List  []Attempt `json:"list"`
	Total int64     `json:"total"`
	Page  int       `json:"page"`
	Limit int       `json:"limit"`
}

// Identity 当前登录用户
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

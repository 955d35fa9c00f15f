package service

import (
	"context"
	"fmt"
	"recon_backend/internal/model"
	"recon_backend/internal/util"
	"recon_backend/pkg/logger"
	"recon_backend/pkg/monitoring"
	"recon_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type AttemptStore interface {
	Create(ctx context.Context, attempt *model.Attempt) error
	CountByUser(ctx context.Context, userID string) (int64, error)
	ListByUser(ctx context.Context, userID string, page, limit int) ([]model.Attempt, error)
}

type AttemptService struct {
	Questions QuestionStore
	Attempts  AttemptStore
}

func NewAttemptService(questions QuestionStore, attempts AttemptStore) *AttemptService {
	return &AttemptService{
		Questions: questions,
		Attempts:  attempts,
	}
}

// SubmitAttempt 校验、判分并追加一条答题记录。同一题重复提交会产生多条记录。
func (s *AttemptService) SubmitAttempt(ctx context.Context, userID, questionID, selected string) (*model.AttemptResult, error) {
	ctx, span := tracing.Tracer.Start(ctx, "AttemptService.SubmitAttempt")
	defer span.End()

	if userID == "" {
		return nil, util.ErrUnauthorized
	}
	if questionID == "" || selected == "" {
		return nil, util.ErrBadRequest
	}
	span.SetAttributes(attribute.String("question.id", questionID))

	question, err := s.Questions.FindByID(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("find question %s: %w", questionID, err)
	}
	if question == nil {
		return nil, util.ErrQuestionNotFound
	}

	isCorrect := Grade(question, selected)

	attempt := &model.Attempt{
		UserID:     userID,
		QuestionID: question.ID,
		Selected:   &selected,
		IsCorrect:  isCorrect,
	}
	if err := s.Attempts.Create(ctx, attempt); err != nil {
		return nil, fmt.Errorf("create attempt: %w", err)
	}

	result := monitoring.AttemptResult(isCorrect)
	monitoring.AttemptsTotal.WithLabelValues(string(question.Type), result).Inc()
	logger.Log.Debug("attempt recorded",
		zap.String("attempt_id", attempt.ID),
		zap.String("user_id", userID),
		zap.String("question_id", question.ID),
		zap.String("result", result),
	)

	return &model.AttemptResult{
		Success:       true,
		IsCorrect:     isCorrect,
		CorrectAnswer: question.CorrectAnswer,
		Attempt:       attempt,
	}, nil
}

// ListAttempts 当前用户的答题记录，最新的在前
func (s *AttemptService) ListAttempts(ctx context.Context, userID string, page, limit int) (*model.AttemptPage, error) {
	if userID == "" {
		return nil, util.ErrUnauthorized
	}

	total, err := s.Attempts.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count attempts: %w", err)
	}

	attempts, err := s.Attempts.ListByUser(ctx, userID, page, limit)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	if attempts == nil {
		attempts = []model.Attempt{}
	}

	return &model.AttemptPage{
		List:  attempts,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

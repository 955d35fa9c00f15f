package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"recon_backend/internal/model"
	"recon_backend/internal/util"
	"recon_backend/pkg/monitoring"
	"recon_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// QuestionStore 题库的只读访问
type QuestionStore interface {
	Count(ctx context.Context) (int64, error)
	FindAtOffset(ctx context.Context, offset int64) (*model.Question, error)
	FindByID(ctx context.Context, id string) (*model.Question, error)
}

type QuestionService struct {
	Store QuestionStore
	// RandInt64N 返回 [0, n) 的均匀随机数
	RandInt64N func(n int64) int64
}

func NewQuestionService(store QuestionStore) *QuestionService {
	return &QuestionService{
		Store:      store,
		RandInt64N: rand.Int64N,
	}
}

// GetRandomQuestion 先计数再按随机偏移取一题，不记录历史，连续调用可能重复
func (s *QuestionService) GetRandomQuestion(ctx context.Context) (*model.QuestionResponse, error) {
	ctx, span := tracing.Tracer.Start(ctx, "QuestionService.GetRandomQuestion")
	defer span.End()

	count, err := s.Store.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count questions: %w", err)
	}
	if count == 0 {
		return nil, util.ErrNoQuestions
	}

	offset := s.RandInt64N(count)
	span.SetAttributes(attribute.Int64("question.count", count), attribute.Int64("question.offset", offset))

	question, err := s.Store.FindAtOffset(ctx, offset)
	if err != nil {
		return nil, fmt.Errorf("find question at offset %d: %w", offset, err)
	}
	// 计数与读取之间题库被缩减
	if question == nil {
		return nil, util.ErrQuestionNotFound
	}

	monitoring.QuestionsServed.Inc()
	return model.NewQuestionResponse(question), nil
}

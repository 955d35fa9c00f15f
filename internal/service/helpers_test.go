package service

import (
	"context"
	"testing"

	"recon_backend/internal/config"
	"recon_backend/internal/model"
	"recon_backend/internal/repository"
	"recon_backend/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.InitDB(&config.DatabaseConfig{Driver: "sqlite", Path: ":memory:", LogLevel: "silent"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func strPtr(s string) *string { return &s }

func seedQuestion(t *testing.T, repo *repository.QuestionRepository, q *model.Question) *model.Question {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), q))
	return q
}

func mcq(id string, options []string, answer string) *model.Question {
	q := &model.Question{
		ID:            id,
		Type:          model.QuestionMCQ,
		QuestionText:  "Question " + id,
		Topic:         "Geography",
		CorrectAnswer: strPtr(answer),
	}
	q.SetOptions(options)
	return q
}

func short(id string) *model.Question {
	return &model.Question{
		ID:           id,
		Type:         model.QuestionShort,
		QuestionText: "Explain " + id,
		Topic:        "Economics",
	}
}

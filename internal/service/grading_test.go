package service

import (
	"testing"

	"recon_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestGrade(t *testing.T) {
	tests := []struct {
		name     string
		question *model.Question
		selected string
		want     *bool
	}{
		{"exact match", mcq("q", []string{"Paris"}, "Paris"), "Paris", boolPtr(true)},
		{"trimmed match", mcq("q", []string{"Paris"}, "Paris"), " Paris ", boolPtr(true)},
		{"stored answer trimmed", mcq("q", []string{"Paris"}, " Paris\n"), "Paris", boolPtr(true)},
		{"case sensitive", mcq("q", []string{"Paris"}, "Paris"), "paris", boolPtr(false)},
		{"wrong option", mcq("q", []string{"Paris", "Rome"}, "Paris"), "Rome", boolPtr(false)},
		{"short answer deferred", short("s"), "anything", nil},
		{"essay deferred", &model.Question{Type: model.QuestionEssay, CorrectAnswer: strPtr("x")}, "x", nil},
		{"mcq without answer deferred", &model.Question{Type: model.QuestionMCQ}, "A", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Grade(tt.question, tt.selected))
		})
	}
}

func boolPtr(b bool) *bool { return &b }

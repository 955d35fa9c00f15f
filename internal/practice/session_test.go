package practice

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"recon_backend/internal/model"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type submission struct {
	questionID string
	selected   string
}

type fakeAPI struct {
	identity    *model.Identity
	meErr       error
	question    *model.QuestionResponse
	questionErr error
	result      *model.AttemptResult
	submitErr   error

	fetches   int
	submitted []submission
}

func (f *fakeAPI) Me(context.Context) (*model.Identity, error) {
	if f.meErr != nil {
		return nil, f.meErr
	}
	return f.identity, nil
}

func (f *fakeAPI) RandomQuestion(context.Context) (*model.QuestionResponse, error) {
	f.fetches++
	if f.questionErr != nil {
		return nil, f.questionErr
	}
	return f.question, nil
}

func (f *fakeAPI) SubmitAttempt(_ context.Context, questionID, selected string) (*model.AttemptResult, error) {
	f.submitted = append(f.submitted, submission{questionID: questionID, selected: selected})
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return f.result, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func mcqQuestion() *model.QuestionResponse {
	return &model.QuestionResponse{
		ID:            "q1",
		Type:          model.QuestionMCQ,
		QuestionText:  "Pick the first letter",
		Topic:         "Alphabet",
		Options:       []string{"A", "B"},
		CorrectAnswer: strPtr("A"),
	}
}

func shortQuestion() *model.QuestionResponse {
	return &model.QuestionResponse{
		ID:           "q2",
		Type:         model.QuestionShort,
		QuestionText: "Define inflation",
		Topic:        "Economics",
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return nm, cmd
}

// exec runs cmd and feeds the resulting message back into the model.
func exec(t *testing.T, m Model, cmd tea.Cmd) (Model, tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	return update(t, m, cmd())
}

// ready walks a fresh session up to AwaitingAnswer.
func ready(t *testing.T, api *fakeAPI) Model {
	t.Helper()
	m := NewModel(context.Background(), api)
	require.Equal(t, StateCheckingAuth, m.State())

	m, cmd := exec(t, m, m.Init())
	require.Equal(t, StateLoadingQuestion, m.State())

	m, _ = exec(t, m, cmd)
	require.Equal(t, StateAwaitingAnswer, m.State())
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestSessionRedirectsWhenIdentityAbsent(t *testing.T) {
	for name, err := range map[string]error{
		"unauthorized": &APIError{StatusCode: http.StatusUnauthorized, Message: "Unauthorized"},
		"network":      ErrServiceUnavailable,
	} {
		t.Run(name, func(t *testing.T) {
			api := &fakeAPI{meErr: err}
			m := NewModel(context.Background(), api)

			m, cmd := exec(t, m, m.Init())
			assert.Equal(t, StateRedirecting, m.State())
			assert.True(t, m.LoginRequired())
			assert.True(t, isQuit(cmd))
			assert.Zero(t, api.fetches)
		})
	}
}

func TestSessionMultipleChoiceFlow(t *testing.T) {
	api := &fakeAPI{
		identity: &model.Identity{ID: "u1", Name: "Ada"},
		question: mcqQuestion(),
		result:   &model.AttemptResult{Success: true, IsCorrect: boolPtr(false), CorrectAnswer: strPtr("A")},
	}
	m := ready(t, api)

	// 未选择时提交无效
	m, cmd := update(t, m, specialKey(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, StateAwaitingAnswer, m.State())

	m, _ = update(t, m, keyPress('2'))
	assert.Equal(t, "B", m.Selection())

	m, cmd = update(t, m, specialKey(tea.KeyEnter))
	assert.Equal(t, StateSubmitting, m.State())

	// 提交中再次回车不会发起第二次请求
	m, again := update(t, m, specialKey(tea.KeyEnter))
	assert.Nil(t, again)

	m, _ = exec(t, m, cmd)
	assert.Equal(t, StateShowingResult, m.State())
	require.Len(t, api.submitted, 1)
	assert.Equal(t, submission{questionID: "q1", selected: "B"}, api.submitted[0])
	assert.Contains(t, m.render(), "Incorrect. The correct answer is: A")

	// 结果页不可再修改选择
	m, _ = update(t, m, keyPress('1'))
	assert.Equal(t, "B", m.Selection())

	m, cmd = update(t, m, keyPress('n'))
	assert.Equal(t, StateLoadingQuestion, m.State())
	m, _ = exec(t, m, cmd)
	assert.Equal(t, StateAwaitingAnswer, m.State())
	assert.Empty(t, m.Selection())
	assert.Equal(t, 2, api.fetches)
}

func TestSessionCursorSelection(t *testing.T) {
	api := &fakeAPI{identity: &model.Identity{ID: "u1"}, question: mcqQuestion()}
	m := ready(t, api)

	m, _ = update(t, m, specialKey(tea.KeyDown))
	m, _ = update(t, m, specialKey(tea.KeyDown))
	assert.Empty(t, m.Selection())

	m, _ = update(t, m, specialKey(tea.KeySpace))
	assert.Equal(t, "B", m.Selection())

	m, _ = update(t, m, specialKey(tea.KeyUp))
	m, _ = update(t, m, specialKey(tea.KeySpace))
	assert.Equal(t, "A", m.Selection())
}

func TestSessionSubmitFailurePreservesSelection(t *testing.T) {
	api := &fakeAPI{
		identity:  &model.Identity{ID: "u1"},
		question:  mcqQuestion(),
		submitErr: &APIError{StatusCode: http.StatusInternalServerError, Message: "Internal server error"},
	}
	m := ready(t, api)

	m, _ = update(t, m, keyPress('1'))
	m, cmd := update(t, m, specialKey(tea.KeyEnter))
	m, _ = exec(t, m, cmd)

	assert.Equal(t, StateAwaitingAnswer, m.State())
	assert.Equal(t, "A", m.Selection())
	assert.Contains(t, m.notice, "Internal server error")

	m, _ = update(t, m, specialKey(tea.KeyEscape))
	assert.Empty(t, m.notice)

	// 允许重新提交
	api.submitErr = nil
	api.result = &model.AttemptResult{Success: true, IsCorrect: boolPtr(true), CorrectAnswer: strPtr("A")}
	m, cmd = update(t, m, specialKey(tea.KeyEnter))
	m, _ = exec(t, m, cmd)
	assert.Equal(t, StateShowingResult, m.State())
	assert.Len(t, api.submitted, 2)
}

func TestSessionSubmitUnauthorizedRedirects(t *testing.T) {
	api := &fakeAPI{
		identity:  &model.Identity{ID: "u1"},
		question:  mcqQuestion(),
		submitErr: &APIError{StatusCode: http.StatusUnauthorized},
	}
	m := ready(t, api)

	m, _ = update(t, m, keyPress('1'))
	m, cmd := update(t, m, specialKey(tea.KeyEnter))
	m, cmd = exec(t, m, cmd)

	assert.Equal(t, StateRedirecting, m.State())
	assert.True(t, isQuit(cmd))
}

func TestSessionQuestionLoadFailureWaitsForRetry(t *testing.T) {
	api := &fakeAPI{
		identity:    &model.Identity{ID: "u1"},
		questionErr: &APIError{StatusCode: http.StatusNotFound, Message: "No questions available"},
	}
	m := NewModel(context.Background(), api)
	m, cmd := exec(t, m, m.Init())
	m, cmd = exec(t, m, cmd)

	assert.Equal(t, StateLoadingQuestion, m.State())
	assert.Nil(t, cmd)
	assert.Contains(t, m.notice, "No questions available")
	assert.Equal(t, 1, api.fetches)

	api.questionErr = nil
	api.question = shortQuestion()
	m, cmd = update(t, m, keyPress('r'))
	require.NotNil(t, cmd)
	m, _ = exec(t, m, cmd)
	assert.Equal(t, StateAwaitingAnswer, m.State())
	assert.Equal(t, 2, api.fetches)
	assert.Empty(t, m.notice)
}

func TestSessionFreeTextAnswer(t *testing.T) {
	api := &fakeAPI{
		identity: &model.Identity{ID: "u1"},
		question: shortQuestion(),
		result:   &model.AttemptResult{Success: true},
	}
	m := ready(t, api)

	m.input.SetValue("   ")
	m, cmd := update(t, m, specialKey(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, StateAwaitingAnswer, m.State())

	m.input.SetValue("  rising prices ")
	m, cmd = update(t, m, specialKey(tea.KeyEnter))
	m, _ = exec(t, m, cmd)

	assert.Equal(t, StateShowingResult, m.State())
	require.Len(t, api.submitted, 1)
	assert.Equal(t, "rising prices", api.submitted[0].selected)
	assert.Contains(t, m.render(), "Answer submitted for review")
}

func TestSessionMCQWithoutOptionsUsesText(t *testing.T) {
	q := mcqQuestion()
	q.Options = nil
	api := &fakeAPI{identity: &model.Identity{ID: "u1"}, question: q}
	m := ready(t, api)

	assert.False(t, m.choiceMode())
	m.input.SetValue("A")
	assert.Equal(t, "A", m.Selection())
}

func TestSessionIgnoresStaleMessages(t *testing.T) {
	api := &fakeAPI{identity: &model.Identity{ID: "u1"}, question: mcqQuestion()}
	m := ready(t, api)

	m, cmd := update(t, m, attemptMsg{err: errors.New("late")})
	assert.Nil(t, cmd)
	assert.Equal(t, StateAwaitingAnswer, m.State())
	assert.Empty(t, m.notice)
}

func TestResultMessage(t *testing.T) {
	tests := []struct {
		name   string
		result *model.AttemptResult
		want   string
	}{
		{"correct", &model.AttemptResult{IsCorrect: boolPtr(true), CorrectAnswer: strPtr("A")}, "Correct!"},
		{"incorrect", &model.AttemptResult{IsCorrect: boolPtr(false), CorrectAnswer: strPtr("A")}, "Incorrect. The correct answer is: A"},
		{"incorrect without answer", &model.AttemptResult{IsCorrect: boolPtr(false)}, "Incorrect. The correct answer is: N/A"},
		{"review", &model.AttemptResult{}, "Answer submitted for review"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResultMessage(tt.result))
		})
	}
}

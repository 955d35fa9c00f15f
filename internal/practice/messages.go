package practice

import (
	"context"
	"recon_backend/internal/model"

	tea "charm.land/bubbletea/v2"
)

// identityMsg carries the result of the identity check.
type identityMsg struct {
	identity *model.Identity
	err      error
}

// questionMsg carries a fetched question or the fetch error.
type questionMsg struct {
	question *model.QuestionResponse
	err      error
}

// attemptMsg carries the graded attempt or the submit error.
type attemptMsg struct {
	result *model.AttemptResult
	err    error
}

func checkAuthCmd(ctx context.Context, api API) tea.Cmd {
	return func() tea.Msg {
		identity, err := api.Me(ctx)
		return identityMsg{identity: identity, err: err}
	}
}

func fetchQuestionCmd(ctx context.Context, api API) tea.Cmd {
	return func() tea.Msg {
		question, err := api.RandomQuestion(ctx)
		return questionMsg{question: question, err: err}
	}
}

func submitAttemptCmd(ctx context.Context, api API, questionID, selected string) tea.Cmd {
	return func() tea.Msg {
		result, err := api.SubmitAttempt(ctx, questionID, selected)
		return attemptMsg{result: result, err: err}
	}
}

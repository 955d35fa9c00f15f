package practice

import (
	"context"
	"recon_backend/internal/model"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// State is a step of the practice workflow.
type State int

const (
	StateCheckingAuth State = iota
	StateLoadingQuestion
	StateAwaitingAnswer
	StateSubmitting
	StateShowingResult
	// StateRedirecting is terminal: the program exits and asks the user to log in.
	StateRedirecting
)

func (s State) String() string {
	switch s {
	case StateCheckingAuth:
		return "checking-auth"
	case StateLoadingQuestion:
		return "loading-question"
	case StateAwaitingAnswer:
		return "awaiting-answer"
	case StateSubmitting:
		return "submitting"
	case StateShowingResult:
		return "showing-result"
	case StateRedirecting:
		return "redirecting"
	}
	return "unknown"
}

// API is the subset of the practice service the session talks to.
type API interface {
	Me(ctx context.Context) (*model.Identity, error)
	RandomQuestion(ctx context.Context) (*model.QuestionResponse, error)
	SubmitAttempt(ctx context.Context, questionID, selected string) (*model.AttemptResult, error)
}

// Model drives one practice session.
type Model struct {
	ctx context.Context
	api API

	state    State
	inFlight bool
	identity *model.Identity
	question *model.QuestionResponse
	result   *model.AttemptResult
	notice   string

	// multiple choice
	cursor int
	chosen int

	// free text
	input textinput.Model
}

func NewModel(ctx context.Context, api API) Model {
	ti := textinput.New()
	ti.Placeholder = "Type your answer"
	ti.CharLimit = 4000

	return Model{
		ctx:    ctx,
		api:    api,
		state:  StateCheckingAuth,
		chosen: -1,
		input:  ti,
	}
}

func (m Model) State() State {
	return m.state
}

// LoginRequired reports whether the session ended because no identity was present.
func (m Model) LoginRequired() bool {
	return m.state == StateRedirecting
}

// Selection returns the current answer with surrounding whitespace removed.
func (m Model) Selection() string {
	if m.choiceMode() {
		if m.chosen < 0 {
			return ""
		}
		return strings.TrimSpace(m.question.Options[m.chosen])
	}
	return strings.TrimSpace(m.input.Value())
}

// choiceMode is true for MCQ questions that carry options; everything else is answered as text.
func (m Model) choiceMode() bool {
	return m.question != nil && m.question.Type == model.QuestionMCQ && len(m.question.Options) > 0
}

func (m Model) Init() tea.Cmd {
	return checkAuthCmd(m.ctx, m.api)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case identityMsg:
		return m.handleIdentity(msg)
	case questionMsg:
		return m.handleQuestion(msg)
	case attemptMsg:
		return m.handleAttempt(msg)
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) redirect() (tea.Model, tea.Cmd) {
	m.state = StateRedirecting
	m.inFlight = false
	return m, tea.Quit
}

func (m Model) loadQuestion() (tea.Model, tea.Cmd) {
	m.state = StateLoadingQuestion
	m.inFlight = true
	m.notice = ""
	return m, fetchQuestionCmd(m.ctx, m.api)
}

func (m Model) handleIdentity(msg identityMsg) (tea.Model, tea.Cmd) {
	if m.state != StateCheckingAuth {
		return m, nil
	}
	if msg.err != nil || msg.identity == nil {
		return m.redirect()
	}
	m.identity = msg.identity
	return m.loadQuestion()
}

func (m Model) handleQuestion(msg questionMsg) (tea.Model, tea.Cmd) {
	if m.state != StateLoadingQuestion || !m.inFlight {
		return m, nil
	}
	m.inFlight = false
	if msg.err != nil {
		if IsUnauthorized(msg.err) {
			return m.redirect()
		}
		// 停留在当前状态，由用户按 r 重试
		m.notice = "Could not load a question: " + msg.err.Error()
		return m, nil
	}

	m.state = StateAwaitingAnswer
	m.question = msg.question
	m.result = nil
	m.cursor = 0
	m.chosen = -1
	m.input.SetValue("")
	if m.choiceMode() {
		m.input.Blur()
		return m, nil
	}
	return m, m.input.Focus()
}

func (m Model) handleAttempt(msg attemptMsg) (tea.Model, tea.Cmd) {
	if m.state != StateSubmitting {
		return m, nil
	}
	m.inFlight = false
	if msg.err != nil {
		if IsUnauthorized(msg.err) {
			return m.redirect()
		}
		// 选择保留，可重新提交
		m.state = StateAwaitingAnswer
		m.notice = "Could not submit your answer: " + msg.err.Error()
		return m, nil
	}

	m.state = StateShowingResult
	m.result = msg.result
	m.input.Blur()
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.notice = ""
		return m, nil
	}

	switch m.state {
	case StateLoadingQuestion:
		if key == "r" && !m.inFlight {
			return m.loadQuestion()
		}
		if key == "q" {
			return m, tea.Quit
		}
	case StateAwaitingAnswer:
		return m.handleAnswerKey(msg)
	case StateShowingResult:
		switch key {
		case "n":
			return m.loadQuestion()
		case "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) handleAnswerKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "enter" {
		return m.submit()
	}

	if !m.choiceMode() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.question.Options)-1 {
			m.cursor++
		}
	case "space", " ":
		m.chosen = m.cursor
	case "q":
		return m, tea.Quit
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.question.Options) {
			m.cursor = n - 1
			m.chosen = n - 1
		}
	}
	return m, nil
}

// submit is a no-op until a non-empty selection exists.
func (m Model) submit() (tea.Model, tea.Cmd) {
	selected := m.Selection()
	if selected == "" || m.inFlight {
		return m, nil
	}
	m.state = StateSubmitting
	m.inFlight = true
	m.notice = ""
	return m, submitAttemptCmd(m.ctx, m.api, m.question.ID, selected)
}

func (m Model) View() tea.View {
	return tea.NewView(m.render())
}

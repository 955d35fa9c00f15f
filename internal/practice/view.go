package practice

import (
	"fmt"
	"recon_backend/internal/model"
	"strings"

	"charm.land/lipgloss/v2"
)

var (
	primary = lipgloss.Color("#8B5CF6")
	success = lipgloss.Color("#22C55E")
	failure = lipgloss.Color("#F43F5E")
	warning = lipgloss.Color("#F97316")
	text    = lipgloss.Color("#F8FAFC")
	dim     = lipgloss.Color("#94A3B8")
	border  = lipgloss.Color("#334155")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(primary)
	metaStyle     = lipgloss.NewStyle().Foreground(dim)
	bodyStyle     = lipgloss.NewStyle().Foreground(text)
	selectedStyle = lipgloss.NewStyle().Foreground(primary).Bold(true)
	correctStyle  = lipgloss.NewStyle().Foreground(success).Bold(true)
	wrongStyle    = lipgloss.NewStyle().Foreground(failure).Bold(true)
	reviewStyle   = lipgloss.NewStyle().Foreground(warning).Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(dim).Italic(true)
	noticeStyle   = lipgloss.NewStyle().
			Foreground(failure).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(failure).
			Padding(0, 1)
	extractStyle = lipgloss.NewStyle().
			Foreground(text).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(border).
			PaddingLeft(1)
)

func (m Model) render() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Recon practice"))
	if m.identity != nil {
		b.WriteString(metaStyle.Render("  " + m.identity.Name))
	}
	b.WriteString("\n\n")

	switch m.state {
	case StateCheckingAuth:
		b.WriteString(hintStyle.Render("Checking your session..."))
	case StateRedirecting:
		b.WriteString(wrongStyle.Render("You are not logged in."))
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("Run `practice login` and try again."))
	case StateLoadingQuestion:
		if m.inFlight {
			b.WriteString(hintStyle.Render("Loading question..."))
		} else {
			b.WriteString(hintStyle.Render("r retry • q quit"))
		}
	default:
		b.WriteString(m.renderQuestion())
	}

	if m.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("esc dismiss"))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderQuestion() string {
	q := m.question
	var b strings.Builder

	meta := []string{string(q.Type), q.Topic}
	if q.Number != nil {
		meta = append([]string{"#" + *q.Number}, meta...)
	}
	if q.SpecPoint != nil {
		meta = append(meta, *q.SpecPoint)
	}
	if q.Marks != nil {
		meta = append(meta, fmt.Sprintf("%d marks", *q.Marks))
	}
	b.WriteString(metaStyle.Render(strings.Join(meta, " · ")))
	b.WriteString("\n\n")

	if q.DataExtract != nil {
		b.WriteString(extractStyle.Render(*q.DataExtract))
		b.WriteString("\n\n")
	}
	if q.ImageURL != nil {
		b.WriteString(metaStyle.Render("Image: " + *q.ImageURL))
		b.WriteString("\n\n")
	}
	b.WriteString(bodyStyle.Render(q.QuestionText))
	b.WriteString("\n\n")

	if m.choiceMode() {
		b.WriteString(m.renderOptions())
	} else {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch m.state {
	case StateAwaitingAnswer:
		if m.choiceMode() {
			b.WriteString(hintStyle.Render("↑↓ move • space/1-9 select • enter submit • q quit"))
		} else {
			b.WriteString(hintStyle.Render("enter submit • ctrl+c quit"))
		}
	case StateSubmitting:
		b.WriteString(hintStyle.Render("Submitting..."))
	case StateShowingResult:
		b.WriteString(m.renderResult())
		b.WriteString("\n\n")
		b.WriteString(hintStyle.Render("n next question • q quit"))
	}
	return b.String()
}

func (m Model) renderOptions() string {
	var b strings.Builder
	for i, opt := range m.question.Options {
		prefix := "  "
		if i == m.cursor && m.state == StateAwaitingAnswer {
			prefix = "▸ "
		}
		mark := "( )"
		if i == m.chosen {
			mark = "(•)"
		}
		line := fmt.Sprintf("%s%s %d. %s", prefix, mark, i+1, opt)
		if i == m.chosen {
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(bodyStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// ResultMessage returns the feedback line for a graded attempt.
func ResultMessage(result *model.AttemptResult) string {
	switch {
	case result == nil || result.IsCorrect == nil:
		return "Answer submitted for review"
	case *result.IsCorrect:
		return "Correct!"
	}
	answer := "N/A"
	if result.CorrectAnswer != nil {
		answer = *result.CorrectAnswer
	}
	return "Incorrect. The correct answer is: " + answer
}

func (m Model) renderResult() string {
	msg := ResultMessage(m.result)
	switch {
	case m.result == nil || m.result.IsCorrect == nil:
		return reviewStyle.Render(msg)
	case *m.result.IsCorrect:
		return correctStyle.Render(msg)
	}
	s := wrongStyle.Render(msg)
	if m.question.MarkScheme != nil {
		s += "\n\n" + metaStyle.Render("Mark scheme: ") + bodyStyle.Render(*m.question.MarkScheme)
	}
	return s
}

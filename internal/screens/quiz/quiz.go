// Package quiz renders one question at a time and collects answers.
package quiz

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/perfily/perfily-cli/internal/api"
	"github.com/perfily/perfily-cli/internal/catalog"
	"github.com/perfily/perfily-cli/internal/screen"
	"github.com/perfily/perfily-cli/internal/ui/components"
	"github.com/perfily/perfily-cli/internal/ui/layout"
	"github.com/perfily/perfily-cli/internal/ui/theme"
)

// AnsweredMsg is emitted after every confirmed answer. Final marks the
// answer to the last question, which triggers scoring.
type AnsweredMsg struct {
	QuestionID int
	Option     string
	Final      bool
}

// BackMsg is emitted when the visitor backs out of the first question.
type BackMsg struct{}

// QuizScreen steps through the questions of the active test.
type QuizScreen struct {
	test      catalog.Test
	questions []api.Question
	answers   map[int]string
	index     int
	list      components.OptionList
	spin      components.Spinner
	waiting   bool
}

var _ screen.Screen = (*QuizScreen)(nil)

// New creates a quiz over the given questions. answers carries any
// previously stored choices so revisited questions preselect them.
func New(test catalog.Test, questions []api.Question, answers map[int]string) *QuizScreen {
	q := &QuizScreen{
		test:      test,
		questions: questions,
		answers:   make(map[int]string, len(answers)),
		spin:      components.NewSpinner("Calculando seu perfil..."),
	}
	for id, opt := range answers {
		q.answers[id] = opt
	}

	// Resume at the first unanswered question.
	for i, question := range questions {
		if _, ok := q.answers[question.ID]; !ok {
			q.index = i
			break
		}
		if i == len(questions)-1 {
			q.index = i
		}
	}
	q.list = q.buildList()
	return q
}

func (q *QuizScreen) buildList() components.OptionList {
	question := q.questions[q.index]
	opts := make([]components.Option, 0, len(question.Options))
	for _, o := range question.Options {
		opts = append(opts, components.Option{Code: o.Value, Label: o.Label})
	}
	label := fmt.Sprintf("%d. %s", q.index+1, question.Text)
	return components.NewOptionList(label, opts, q.answers[question.ID])
}

func (q *QuizScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if q.waiting {
		var cmd tea.Cmd
		q.spin, cmd = q.spin.Update(msg)
		return q, cmd
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		if q.index > 0 {
			q.index--
			q.list = q.buildList()
			return q, nil
		}
		return q, func() tea.Msg { return BackMsg{} }
	}

	var cmd tea.Cmd
	q.list, cmd = q.list.Update(msg)
	if q.list.Chosen == "" {
		return q, cmd
	}

	question := q.questions[q.index]
	chosen := q.list.Chosen
	q.answers[question.ID] = chosen
	final := q.index == len(q.questions)-1

	answered := func() tea.Msg {
		return AnsweredMsg{QuestionID: question.ID, Option: chosen, Final: final}
	}

	if final {
		q.waiting = true
		return q, tea.Batch(answered, q.spin.Init())
	}

	q.index++
	q.list = q.buildList()
	return q, answered
}

func (q *QuizScreen) View(width, height int) string {
	if q.waiting {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center).
			AlignVertical(lipgloss.Center).
			Render(q.spin.View())
	}

	progress := components.NewProgressBar(
		fmt.Sprintf("Pergunta %d de %d", q.index+1, len(q.questions)),
		float64(q.index)/float64(len(q.questions)),
		false,
		min(width-4, 60),
	)

	var sections []string
	sections = append(sections,
		progress.View(),
		"",
		q.list.View(),
		"",
		theme.Hint.Render("Digite o número da opção para responder direto."),
	)

	content := lipgloss.NewStyle().Width(min(width, 80)).Render(strings.Join(sections, "\n"))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		PaddingLeft(2).
		Render(content)
}

func (q *QuizScreen) Title() string {
	return q.test.Title
}

// Index returns the zero-based position of the current question.
func (q *QuizScreen) Index() int {
	return q.index
}

// KeyHints implements screen.KeyHintProvider.
func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.waiting {
		return []layout.KeyHint{{Key: "ctrl+c", Description: "sair"}}
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "navegar"},
		{Key: "enter", Description: "responder"},
		{Key: "esc", Description: "anterior"},
		{Key: "ctrl+c", Description: "sair"},
	}
}

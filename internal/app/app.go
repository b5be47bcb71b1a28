// Package app wires the funnel controller, location, API client, and
// screens into the root Bubble Tea model. It is the only place user
// intent messages from screens are translated into funnel mutations and
// network commands.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/perfily/perfily-cli/internal/api"
	"github.com/perfily/perfily-cli/internal/catalog"
	"github.com/perfily/perfily-cli/internal/config"
	"github.com/perfily/perfily-cli/internal/funnel"
	"github.com/perfily/perfily-cli/internal/route"
	"github.com/perfily/perfily-cli/internal/router"
	"github.com/perfily/perfily-cli/internal/screen"
	"github.com/perfily/perfily-cli/internal/screens/home"
	"github.com/perfily/perfily-cli/internal/screens/landing"
	"github.com/perfily/perfily-cli/internal/screens/payment"
	"github.com/perfily/perfily-cli/internal/screens/preview"
	"github.com/perfily/perfily-cli/internal/screens/quiz"
	"github.com/perfily/perfily-cli/internal/screens/result"
	"github.com/perfily/perfily-cli/internal/ui/layout"
	"github.com/perfily/perfily-cli/internal/ui/theme"
)

const requestTimeout = 15 * time.Second

// routeChangedMsg signals that the location changed and the funnel must
// be reconciled with it.
type routeChangedMsg struct{}

// loadDoneMsg carries the outcome of a start-test call.
type loadDoneMsg struct {
	slug    string
	started *api.StartSession
	err     error
}

// submitDoneMsg carries the outcome of the initial scoring call.
type submitDoneMsg struct {
	res *api.Result
	err error
}

// unlockDoneMsg carries the outcome of an unlock poll.
type unlockDoneMsg struct {
	res    *api.Result
	err    error
	manual bool
}

// Model is the root Bubble Tea model.
type Model struct {
	cfg    *config.Config
	log    zerolog.Logger
	ctrl   *funnel.Controller
	scorer funnel.Scorer
	loc    route.Location
	router *router.Router

	lastStep funnel.Step
	width    int
	height   int
}

// NewModel builds the root model, reconciles the funnel with the
// initial location, and mounts the matching screen.
func NewModel(cfg *config.Config, ctrl *funnel.Controller, scorer funnel.Scorer, loc route.Location, log zerolog.Logger) Model {
	ctrl.SyncRoute(loc.Current())
	m := Model{
		cfg:      cfg,
		log:      log,
		ctrl:     ctrl,
		scorer:   scorer,
		loc:      loc,
		router:   router.New(nil),
		lastStep: ctrl.Step(),
	}
	m.router.Replace(m.buildScreen())
	return m
}

func (m Model) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "x":
			if m.ctrl.ErrorMessage() != "" {
				m.ctrl.DismissError()
				return m, nil
			}
		}

	case router.NavigateMsg:
		// The location notifies its subscriber, which queues a
		// routeChangedMsg; reconciliation happens there.
		m.loc.Navigate(msg.Path)
		return m, nil

	case routeChangedMsg:
		m.ctrl.SyncRoute(m.loc.Current())
		cmd := m.refreshScreen(false)
		return m, cmd

	case home.SelectMsg:
		// The loader runs before any navigation; a failed load keeps
		// the user on HOME with the error banner.
		test, ok := m.ctrl.BeginLoad(msg.Slug)
		if !ok {
			return m, nil
		}
		return m, m.startTestCmd(msg.Slug, test.APICode)

	case landing.StartMsg:
		if m.ctrl.StartQuiz() {
			cmd := m.refreshScreen(false)
			return m, cmd
		}
		test, ok := m.ctrl.BeginLoad(msg.Slug)
		if !ok {
			cmd := m.refreshScreen(true)
			return m, cmd
		}
		return m, m.startTestCmd(msg.Slug, test.APICode)

	case loadDoneMsg:
		m.ctrl.FinishLoad(msg.slug, msg.started, msg.err)
		if msg.err == nil && m.loc.Current() != "/"+msg.slug {
			// A load begun on HOME reaches the test's path only now.
			// Loads begun on the test's own path stay put, so the
			// same-path renavigation never knocks a fresh quiz back
			// to its landing page.
			m.loc.Navigate("/" + msg.slug)
		}
		// Rebuild even on an unchanged step so the landing spinner
		// resets after a failure.
		cmd := m.refreshScreen(msg.err != nil)
		return m, cmd

	case quiz.AnsweredMsg:
		m.ctrl.RecordAnswer(msg.QuestionID, msg.Option)
		if !msg.Final {
			return m, nil
		}
		req, ok := m.ctrl.BeginSubmit()
		if !ok {
			return m, nil
		}
		return m, m.submitCmd(req)

	case submitDoneMsg:
		m.ctrl.FinishSubmit(msg.res, msg.err)
		cmd := m.refreshScreen(msg.err != nil)
		return m, cmd

	case quiz.BackMsg:
		m.ctrl.GoBack()
		cmd := m.refreshScreen(false)
		return m, cmd

	case preview.UnlockMsg:
		m.ctrl.RequestUnlock()
		cmd := m.refreshScreen(false)
		return m, cmd

	case preview.BackMsg:
		m.ctrl.GoBack()
		cmd := m.refreshScreen(false)
		return m, cmd

	case payment.CheckMsg:
		req, ok := m.ctrl.BeginSubmit()
		if !ok {
			return m, statusCmd("Aguardando pagamento...")
		}
		return m, m.unlockCmd(req, msg.Manual)

	case unlockDoneMsg:
		unlocked := m.ctrl.FinishUnlockCheck(msg.res, msg.err)
		if unlocked {
			cmd := m.refreshScreen(false)
			return m, cmd
		}
		switch {
		case msg.err != nil:
			return m, statusCmd("Não foi possível verificar. Tentando de novo em instantes.")
		case msg.manual:
			return m, statusCmd("Pagamento ainda não identificado.")
		default:
			return m, statusCmd("Aguardando pagamento...")
		}

	case payment.CancelMsg:
		m.ctrl.CancelPayment()
		cmd := m.refreshScreen(false)
		return m, cmd
	}

	return m, m.router.Update(msg)
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.ctrl.Session().ID, m.width)

	footerHints := []layout.KeyHint{
		{Key: "ctrl+c", Description: "sair"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	banner := ""
	if errMsg := m.ctrl.ErrorMessage(); errMsg != "" {
		banner = theme.ErrorBanner.Width(m.width).
			Render(errMsg + "  (x para fechar)")
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	bannerHeight := 0
	if banner != "" {
		bannerHeight = lipgloss.Height(banner)
	}

	contentHeight := m.height - headerHeight - footerHeight - bannerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	if banner != "" {
		content = banner + "\n" + content
	}

	frame := layout.RenderFrame(header, content, footer, m.width, m.height)
	v.SetContent(frame)
	return v
}

// refreshScreen swaps the active screen when the funnel step moved. force
// rebuilds even on an unchanged step, used after failures that must reset
// screen-local state like spinners.
func (m *Model) refreshScreen(force bool) tea.Cmd {
	step := m.ctrl.Step()
	if step == m.lastStep && !force {
		return nil
	}
	m.lastStep = step
	return m.router.Replace(m.buildScreen())
}

// buildScreen constructs the screen for the current funnel step. Any
// state the step requires but the session lacks degrades toward HOME
// rather than rendering a broken page.
func (m *Model) buildScreen() screen.Screen {
	sess := m.ctrl.Session()
	test, haveTest := catalog.Lookup(sess.TestType)

	switch m.ctrl.Step() {
	case funnel.StepLanding:
		if haveTest {
			return landing.New(test)
		}
	case funnel.StepQuiz:
		if questions := m.ctrl.Questions(); haveTest && len(questions) > 0 {
			return quiz.New(test, questions, sess.Answers)
		}
		if haveTest {
			return landing.New(test)
		}
	case funnel.StepPreview:
		if haveTest && sess.Result != nil {
			return preview.New(test, *sess.Result)
		}
		if haveTest {
			return landing.New(test)
		}
	case funnel.StepPayment:
		if haveTest && sess.Result != nil {
			return payment.New(test, sess.ID, m.cfg.PaymentExpiry, m.cfg.PollInterval)
		}
	case funnel.StepResult:
		if haveTest && sess.Result != nil {
			return resultScreen(test, *sess.Result)
		}
	}

	return home.New()
}

// resultScreen renders the full report only for an unlocked result; a
// result that is still a teaser falls back to the paywall preview.
func resultScreen(test catalog.Test, res api.Result) screen.Screen {
	if res.Complete {
		return result.New(test, res)
	}
	return preview.New(test, res)
}

func (m Model) startTestCmd(slug, apiCode string) tea.Cmd {
	scorer := m.scorer
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		started, err := scorer.StartTest(ctx, apiCode)
		return loadDoneMsg{slug: slug, started: started, err: err}
	}
}

func (m Model) submitCmd(req api.ResultRequest) tea.Cmd {
	scorer := m.scorer
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		res, err := scorer.GetResult(ctx, req)
		return submitDoneMsg{res: res, err: err}
	}
}

func (m Model) unlockCmd(req api.ResultRequest, manual bool) tea.Cmd {
	scorer := m.scorer
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		res, err := scorer.GetResult(ctx, req)
		return unlockDoneMsg{res: res, err: err, manual: manual}
	}
}

func statusCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return payment.StatusMsg{Text: text}
	}
}

// Options bundles the dependencies Run needs.
type Options struct {
	Config *config.Config
	Ctrl   *funnel.Controller
	Scorer funnel.Scorer
	// InitialPath is where the funnel starts, "/" or "/<slug>".
	InitialPath string
	Log         zerolog.Logger
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	loc := route.NewMemory(opts.InitialPath)
	model := NewModel(opts.Config, opts.Ctrl, opts.Scorer, loc, opts.Log)

	p := tea.NewProgram(model)
	unsubscribe := loc.Subscribe(func() {
		p.Send(routeChangedMsg{})
	})
	defer unsubscribe()

	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

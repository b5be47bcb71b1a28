package funnel

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/perfily/perfily-cli/internal/api"
)

// GenericErrorMessage is the only failure text ever shown to the user. Raw
// error detail goes to the log.
const GenericErrorMessage = "Não foi possível se conectar à API ou carregar o teste. Tente novamente."

// Scorer is the slice of the API client the funnel's async commands need.
// Network calls run outside the controller; only their outcomes are applied
// to it.
type Scorer interface {
	StartTest(ctx context.Context, testCode string) (*api.StartSession, error)
	GetResult(ctx context.Context, req api.ResultRequest) (*api.Result, error)
}

// SaveFunc persists a committed session change. Best-effort: failures are
// the saver's problem to log, never the funnel's to surface.
type SaveFunc func(Session)

// Controller owns the Session and the current Step. It is the sole catcher
// of collaborator errors and the single writer of session state: screens
// render from it and report user intent back to it, nothing else mutates it.
//
// The controller is synchronous. Network work happens outside, bracketed by
// a Begin*/Finish* pair; the Begin side holds the in-flight guard, so a
// second call while one is outstanding is a silent no-op and the state
// written by Finish always belongs to the most recently issued request.
type Controller struct {
	save SaveFunc
	log  zerolog.Logger

	sess Session
	step Step

	// questions is the loader-only transient cache; questionsFor records
	// which test the cache belongs to. Intentionally not persisted.
	questions    []api.Question
	questionsFor string

	loading    bool
	submitting bool

	errMsg string
}

// NewController builds a controller around a previously loaded session.
func NewController(sess Session, save SaveFunc, log zerolog.Logger) *Controller {
	sess.Normalize()
	return &Controller{
		save: save,
		log:  log,
		sess: sess,
		step: StepHome,
	}
}

// Session returns a copy of the current session.
func (c *Controller) Session() Session { return c.sess }

// Step returns the current funnel step.
func (c *Controller) Step() Step { return c.step }

// Questions returns the cached question set for the active test, or nil when
// none is loaded.
func (c *Controller) Questions() []api.Question {
	if c.questionsFor == "" || c.questionsFor != c.sess.TestType {
		return nil
	}
	return c.questions
}

// Loading reports whether a session load is in flight.
func (c *Controller) Loading() bool { return c.loading }

// Submitting reports whether a scoring submission is in flight.
func (c *Controller) Submitting() bool { return c.submitting }

// ErrorMessage returns the current user-facing error, or empty.
func (c *Controller) ErrorMessage() string { return c.errMsg }

// DismissError clears the error slot.
func (c *Controller) DismissError() { c.errMsg = "" }

// RecordAnswer stores one answer in the session ledger and persists.
func (c *Controller) RecordAnswer(questionID int, option string) {
	c.sess.RecordAnswer(questionID, option)
	c.persist()
}

// StartQuiz moves LANDING to QUIZ when the question cache is warm. Returns
// false when a load is still needed first.
func (c *Controller) StartQuiz() bool {
	if c.step != StepLanding || c.NeedsLoad() {
		return false
	}
	c.step = Next(c.step, QuizStarted{})
	return true
}

// NeedsLoad reports whether the question cache is missing or stale for the
// session's test.
func (c *Controller) NeedsLoad() bool {
	return len(c.questions) == 0 || c.questionsFor != c.sess.TestType
}

// RequestUnlock moves PREVIEW to PAYMENT.
func (c *Controller) RequestUnlock() {
	c.step = Next(c.step, UnlockRequested{})
}

// CancelPayment returns from PAYMENT to PREVIEW.
func (c *Controller) CancelPayment() {
	c.step = Next(c.step, PaymentCancelled{})
}

// GoBack handles the recoverable-error fallback action.
func (c *Controller) GoBack() {
	c.step = Next(c.step, BackRequested{})
}

func (c *Controller) persist() {
	if c.save != nil {
		c.save(c.sess)
	}
}

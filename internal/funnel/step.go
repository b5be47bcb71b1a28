package funnel

// Step is the current screen of the funnel.
type Step int

const (
	StepHome Step = iota
	StepLanding
	StepQuiz
	StepPreview
	StepPayment
	StepResult
)

func (s Step) String() string {
	switch s {
	case StepHome:
		return "HOME"
	case StepLanding:
		return "LANDING"
	case StepQuiz:
		return "QUIZ"
	case StepPreview:
		return "PREVIEW"
	case StepPayment:
		return "PAYMENT"
	case StepResult:
		return "RESULT"
	}
	return "UNKNOWN"
}

// Event is something that may move the funnel to another step. Guards that
// depend on mutable state (questions loaded, answers recorded, in-flight
// operations) are evaluated by the Controller before it emits an event; Next
// itself is a pure transition table.
type Event interface{ isEvent() }

// RouteHome fires when the route changes to the root or an unknown path.
type RouteHome struct{}

// RouteTest fires when the route changes to a known test slug.
type RouteTest struct{}

// LoadFinished fires when a session load completes.
type LoadFinished struct{ Err error }

// QuizStarted fires when the user starts an already-loaded quiz.
type QuizStarted struct{}

// SubmitFinished fires when an initial scoring submission completes.
type SubmitFinished struct {
	Complete bool
	Err      error
}

// UnlockRequested fires when the user asks to unlock the full report.
type UnlockRequested struct{}

// UnlockChecked fires when a payment-state unlock poll completes.
type UnlockChecked struct {
	Complete bool
	Err      error
}

// PaymentCancelled fires when the user leaves the payment screen.
type PaymentCancelled struct{}

// BackRequested fires from a recoverable-error fallback (missing questions
// or result) when the user asks to go back one step.
type BackRequested struct{}

func (RouteHome) isEvent()        {}
func (RouteTest) isEvent()        {}
func (LoadFinished) isEvent()     {}
func (QuizStarted) isEvent()      {}
func (SubmitFinished) isEvent()   {}
func (UnlockRequested) isEvent()  {}
func (UnlockChecked) isEvent()    {}
func (PaymentCancelled) isEvent() {}
func (BackRequested) isEvent()    {}

// Next is the transition table. Events that do not apply to the current
// step leave it unchanged.
func Next(cur Step, ev Event) Step {
	switch ev := ev.(type) {
	case RouteHome:
		return StepHome

	case RouteTest:
		return StepLanding

	case LoadFinished:
		if ev.Err != nil {
			// Error shown; stay where the load was requested from.
			return cur
		}
		switch cur {
		case StepHome:
			return StepLanding
		case StepLanding:
			return StepQuiz
		}
		return cur

	case QuizStarted:
		if cur == StepLanding {
			return StepQuiz
		}
		return cur

	case SubmitFinished:
		if cur != StepQuiz {
			return cur
		}
		if ev.Err != nil {
			return StepLanding
		}
		if ev.Complete {
			return StepResult
		}
		return StepPreview

	case UnlockRequested:
		if cur == StepPreview {
			return StepPayment
		}
		return cur

	case UnlockChecked:
		// Never leaves PAYMENT unless the report is unlocked.
		if cur == StepPayment && ev.Err == nil && ev.Complete {
			return StepResult
		}
		return cur

	case PaymentCancelled:
		if cur == StepPayment {
			return StepPreview
		}
		return cur

	case BackRequested:
		switch cur {
		case StepQuiz, StepPreview:
			return StepLanding
		case StepResult:
			return StepHome
		}
		return cur
	}

	return cur
}

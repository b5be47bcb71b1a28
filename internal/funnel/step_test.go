package funnel

import (
	"errors"
	"testing"
)

func TestNextTransitions(t *testing.T) {
	loadErr := errors.New("boom")

	tests := []struct {
		name string
		cur  Step
		ev   Event
		want Step
	}{
		{"route home from anywhere", StepPayment, RouteHome{}, StepHome},
		{"route test from anywhere", StepResult, RouteTest{}, StepLanding},

		{"load ok from home", StepHome, LoadFinished{}, StepLanding},
		{"load ok from landing", StepLanding, LoadFinished{}, StepQuiz},
		{"load ok elsewhere stays", StepPreview, LoadFinished{}, StepPreview},
		{"load error stays put", StepLanding, LoadFinished{Err: loadErr}, StepLanding},

		{"quiz start from landing", StepLanding, QuizStarted{}, StepQuiz},
		{"quiz start elsewhere stays", StepHome, QuizStarted{}, StepHome},

		{"submit incomplete goes preview", StepQuiz, SubmitFinished{}, StepPreview},
		{"submit complete goes result", StepQuiz, SubmitFinished{Complete: true}, StepResult},
		{"submit error falls back to landing", StepQuiz, SubmitFinished{Err: loadErr}, StepLanding},
		{"submit outside quiz stays", StepPayment, SubmitFinished{Complete: true}, StepPayment},

		{"unlock request from preview", StepPreview, UnlockRequested{}, StepPayment},
		{"unlock request elsewhere stays", StepQuiz, UnlockRequested{}, StepQuiz},

		{"unlock check complete leaves payment", StepPayment, UnlockChecked{Complete: true}, StepResult},
		{"unlock check incomplete stays", StepPayment, UnlockChecked{}, StepPayment},
		{"unlock check error stays", StepPayment, UnlockChecked{Complete: true, Err: loadErr}, StepPayment},
		{"unlock check outside payment stays", StepPreview, UnlockChecked{Complete: true}, StepPreview},

		{"cancel payment", StepPayment, PaymentCancelled{}, StepPreview},
		{"cancel elsewhere stays", StepQuiz, PaymentCancelled{}, StepQuiz},

		{"back from quiz", StepQuiz, BackRequested{}, StepLanding},
		{"back from preview", StepPreview, BackRequested{}, StepLanding},
		{"back from result", StepResult, BackRequested{}, StepHome},
		{"back from home stays", StepHome, BackRequested{}, StepHome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Next(tt.cur, tt.ev); got != tt.want {
				t.Errorf("Next(%v, %T) = %v, want %v", tt.cur, tt.ev, got, tt.want)
			}
		})
	}
}

func TestStepString(t *testing.T) {
	steps := map[Step]string{
		StepHome:    "HOME",
		StepLanding: "LANDING",
		StepQuiz:    "QUIZ",
		StepPreview: "PREVIEW",
		StepPayment: "PAYMENT",
		StepResult:  "RESULT",
		Step(99):    "UNKNOWN",
	}
	for step, want := range steps {
		if got := step.String(); got != want {
			t.Errorf("Step(%d).String() = %q, want %q", int(step), got, want)
		}
	}
}

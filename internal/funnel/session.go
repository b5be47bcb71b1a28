// Package funnel is the session/navigation core of the quiz funnel: a single
// mutable Session driven through a finite set of steps, kept in sync with a
// route path and reconciled against the scoring API. It has no rendering
// concerns and no bubbletea imports; screens talk to it through the
// Controller.
package funnel

import (
	"sort"
	"strings"

	"github.com/perfily/perfily-cli/internal/api"
)

// Session is the single persisted record: which test, what answers, and what
// result are currently active. Answers is a cumulative ledger keyed by
// question id; whenever TestType or ID changes, Answers and Result are
// cleared in the same update.
type Session struct {
	// ID is the API-assigned session identifier. Empty means no active API
	// session.
	ID string `json:"id"`

	// TestType is the slug of the selected test, or empty.
	TestType string `json:"testType,omitempty"`

	// Answers maps question id to the selected option code (uppercase).
	Answers map[int]string `json:"answers"`

	// Result is the last-fetched scoring result, if any.
	Result *api.Result `json:"result,omitempty"`

	// APIVersion and APIStatus are opaque echoes of the API session
	// metadata, carried for display only.
	APIVersion int    `json:"apiVersion,omitempty"`
	APIStatus  string `json:"apiStatus,omitempty"`
}

// NewSession returns the empty default session.
func NewSession() Session {
	return Session{Answers: make(map[int]string)}
}

// Normalize repairs structural defaults after deserialization so the rest of
// the core never sees a nil answer map.
func (s *Session) Normalize() {
	if s.Answers == nil {
		s.Answers = make(map[int]string)
	}
}

// RecordAnswer inserts or overwrites the answer for a question. The option
// code is normalized to uppercase; the last write for a given id wins.
func (s *Session) RecordAnswer(questionID int, option string) {
	s.Normalize()
	s.Answers[questionID] = strings.ToUpper(option)
}

// Submission produces the answer pairs sorted ascending by question id, one
// entry per distinct question. The ordering keeps request bodies
// deterministic.
func (s *Session) Submission() []api.Answer {
	if len(s.Answers) == 0 {
		return nil
	}
	answers := make([]api.Answer, 0, len(s.Answers))
	for id, option := range s.Answers {
		answers = append(answers, api.Answer{
			QuestionID: id,
			Option:     strings.ToUpper(option),
		})
	}
	sort.Slice(answers, func(i, j int) bool {
		return answers[i].QuestionID < answers[j].QuestionID
	})
	return answers
}

// resetForTest rebinds the session to a test with no API session yet,
// clearing answers, result, and the API echo fields atomically.
func (s *Session) resetForTest(slug string) {
	s.ID = ""
	s.TestType = slug
	s.Answers = make(map[int]string)
	s.Result = nil
	s.APIVersion = 0
	s.APIStatus = ""
}

// clearAPISession drops the API session identity after a failed load while
// preserving TestType, so a retry for the same slug needs no re-navigation.
func (s *Session) clearAPISession() {
	s.ID = ""
	s.APIVersion = 0
	s.APIStatus = ""
}

package funnel

import (
	"encoding/json"
	"testing"

	"github.com/perfily/perfily-cli/internal/api"
)

func TestRecordAnswerUppercasesAndOverwrites(t *testing.T) {
	s := NewSession()
	s.RecordAnswer(3, "a")
	s.RecordAnswer(3, "c")

	if got := s.Answers[3]; got != "C" {
		t.Fatalf("expected last write to win uppercased, got %q", got)
	}
}

func TestSubmissionSortedByQuestionID(t *testing.T) {
	s := NewSession()
	s.RecordAnswer(10, "B")
	s.RecordAnswer(2, "a")
	s.RecordAnswer(7, "D")

	got := s.Submission()
	want := []api.Answer{
		{QuestionID: 2, Option: "A"},
		{QuestionID: 7, Option: "D"},
		{QuestionID: 10, Option: "B"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d answers, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("answer %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSubmissionEmpty(t *testing.T) {
	s := NewSession()
	if got := s.Submission(); got != nil {
		t.Fatalf("expected nil submission for no answers, got %v", got)
	}
}

func TestNormalizeRepairsNilMap(t *testing.T) {
	var s Session
	if err := json.Unmarshal([]byte(`{"id":"x"}`), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	s.Normalize()
	if s.Answers == nil {
		t.Fatal("expected non-nil answers after Normalize")
	}
	s.RecordAnswer(1, "a")
	if s.Answers[1] != "A" {
		t.Fatal("expected RecordAnswer to work after Normalize")
	}
}

func TestResetForTestClearsEverything(t *testing.T) {
	s := NewSession()
	s.ID = "old"
	s.TestType = "carreira"
	s.RecordAnswer(1, "A")
	s.Result = &api.Result{Profile: "X"}
	s.APIVersion = 2
	s.APIStatus = "EM_ANDAMENTO"

	s.resetForTest("qi")

	if s.ID != "" || s.TestType != "qi" || len(s.Answers) != 0 || s.Result != nil {
		t.Fatalf("reset left state behind: %+v", s)
	}
	if s.APIVersion != 0 || s.APIStatus != "" {
		t.Fatalf("reset left API echo fields: %+v", s)
	}
}

func TestClearAPISessionKeepsTestType(t *testing.T) {
	s := NewSession()
	s.ID = "old"
	s.TestType = "personalidade"
	s.RecordAnswer(1, "B")
	s.APIVersion = 1

	s.clearAPISession()

	if s.ID != "" || s.APIVersion != 0 {
		t.Fatalf("API identity not cleared: %+v", s)
	}
	if s.TestType != "personalidade" {
		t.Fatal("TestType must survive a failed load")
	}
}

func TestSessionJSONRoundTrip(t *testing.T) {
	s := NewSession()
	s.ID = "abc"
	s.TestType = "qi"
	s.RecordAnswer(1, "A")
	s.Result = &api.Result{Complete: true, Profile: "Lógico", Phrase: "f", FullText: "t"}

	raw, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back Session
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.ID != "abc" || back.TestType != "qi" || back.Answers[1] != "A" {
		t.Fatalf("round trip lost data: %+v", back)
	}
	if back.Result == nil || !back.Result.Complete {
		t.Fatalf("round trip lost result: %+v", back.Result)
	}
}

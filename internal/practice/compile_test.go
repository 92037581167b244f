package practice

import (
	"testing"

	"github.com/meera/lingodrill/internal/ledger"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		answer Answer
		want   ledger.Class
	}{
		{"skipped", Answer{SelectedIndex: NoSelection, Skipped: true}, ledger.ClassWrong},
		{"never answered", Answer{SelectedIndex: NoSelection}, ledger.ClassWrong},
		{"doubt", Answer{SelectedIndex: 1, Doubt: true}, ledger.ClassDoubt},
		{"doubt on correct pick", Answer{SelectedIndex: 0, Doubt: true, Verdict: VerdictNone}, ledger.ClassDoubt},
		{"correct", Answer{SelectedIndex: 0, Verdict: VerdictCorrect}, ledger.ClassCorrect},
		{"wrong", Answer{SelectedIndex: 2, Verdict: VerdictWrong}, ledger.ClassWrong},
	}
	for _, tt := range tests {
		if got := Classify(tt.answer); got != tt.want {
			t.Errorf("%s: Classify() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCompile(t *testing.T) {
	s := testState(4, immediateConfig())

	SelectAnswer(s, 0) // correct
	Advance(s)
	SelectAnswer(s, 3) // wrong
	Advance(s)
	ToggleDoubt(s)
	SelectAnswer(s, 0) // doubt
	Advance(s)
	s.Answers[3].Skipped = true
	s.Answers[3].SelectedIndex = NoSelection

	out := Compile(s)

	if out.Result.ID != s.SessionID || out.Result.LessonID != s.LessonID {
		t.Errorf("result identity = %s/%s, want %s/%s",
			out.Result.ID, out.Result.LessonID, s.SessionID, s.LessonID)
	}
	if out.Result.Score != 1 {
		t.Errorf("Score = %d, want 1", out.Result.Score)
	}
	if out.Result.TotalQuestions != 4 {
		t.Errorf("TotalQuestions = %d, want 4", out.Result.TotalQuestions)
	}
	if len(out.Updates) != 4 {
		t.Fatalf("got %d updates, want one per question", len(out.Updates))
	}

	wantClasses := []ledger.Class{
		ledger.ClassCorrect,
		ledger.ClassWrong,
		ledger.ClassDoubt,
		ledger.ClassWrong, // skip counts against the wrong bucket
	}
	for i, u := range out.Updates {
		if u.QuestionID != s.Questions[i].ID {
			t.Errorf("update %d for %s, want %s", i, u.QuestionID, s.Questions[i].ID)
		}
		if u.Class != wantClasses[i] {
			t.Errorf("update %d class = %v, want %v", i, u.Class, wantClasses[i])
		}
	}

	if s.Phase != PhaseExecution {
		t.Error("Compile must not change the phase")
	}
}

func TestCompileLedgerRoundTrip(t *testing.T) {
	s := testState(3, immediateConfig())
	SelectAnswer(s, 0)
	Advance(s)
	SelectAnswer(s, 1)
	Advance(s)
	SelectAnswer(s, 0)

	out := Compile(s)

	records := ledger.Map{}
	for _, u := range out.Updates {
		r := records[u.QuestionID]
		r.Apply(u.Class)
		records[u.QuestionID] = r
	}

	for id, r := range records {
		if !r.Consistent() {
			t.Errorf("record %s inconsistent after applying updates: %+v", id, r)
		}
		if r.TotalAttempts != 1 {
			t.Errorf("record %s attempts = %d, want 1", id, r.TotalAttempts)
		}
	}
}

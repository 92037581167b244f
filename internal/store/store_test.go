package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/meera/lingodrill/internal/ledger"
	"github.com/meera/lingodrill/internal/practice"
	"github.com/meera/lingodrill/internal/selection"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testResult(id string, completedAt time.Time) practice.Result {
	return practice.Result{
		ID:          id,
		LessonID:    "l1",
		Config:      practice.DefaultConfig(),
		QuestionIDs: []string{"q1", "q2"},
		Answers: []practice.Answer{
			{SelectedIndex: 0, Verdict: practice.VerdictCorrect},
			{SelectedIndex: practice.NoSelection, Skipped: true},
		},
		Score:          1,
		TotalQuestions: 2,
		CompletedAt:    completedAt,
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil database handle")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestLastConfigEmpty(t *testing.T) {
	s := openTestStore(t)

	cfg, err := s.Configs().LastConfig(context.Background(), "meera")
	if err != nil {
		t.Fatalf("LastConfig (empty): %v", err)
	}
	if cfg != nil {
		t.Fatal("expected nil config for a fresh profile")
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Configs()

	want := practice.Config{
		QuestionCount:     25,
		Scope:             selection.ScopeIncludePrevious,
		PreviousLessonIDs: []string{"l0", "l1"},
		Mixture:           selection.MixtureCombined,
		TimeLimitEnabled:  true,
		Feedback:          practice.FeedbackEnd,
	}
	if err := repo.SaveConfig(ctx, "meera", want); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	got, err := repo.LastConfig(ctx, "meera")
	if err != nil {
		t.Fatalf("LastConfig: %v", err)
	}
	if got == nil {
		t.Fatal("expected saved config")
	}
	if got.QuestionCount != 25 || got.Scope != want.Scope || got.Mixture != want.Mixture ||
		!got.TimeLimitEnabled || got.Feedback != want.Feedback || len(got.PreviousLessonIDs) != 2 {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestSaveConfigOverwrites(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Configs()

	first := practice.DefaultConfig()
	if err := repo.SaveConfig(ctx, "meera", first); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	second := first
	second.QuestionCount = 42
	if err := repo.SaveConfig(ctx, "meera", second); err != nil {
		t.Fatalf("SaveConfig (second): %v", err)
	}

	got, err := repo.LastConfig(ctx, "meera")
	if err != nil {
		t.Fatalf("LastConfig: %v", err)
	}
	if got.QuestionCount != 42 {
		t.Errorf("QuestionCount = %d, want 42 (latest save wins)", got.QuestionCount)
	}
}

func TestLedgerAccumulates(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Ledger()

	first := []ledger.Update{
		{QuestionID: "q1", Class: ledger.ClassCorrect},
		{QuestionID: "q2", Class: ledger.ClassWrong},
	}
	if err := repo.ApplyUpdates(ctx, "meera", first); err != nil {
		t.Fatalf("ApplyUpdates: %v", err)
	}

	second := []ledger.Update{
		{QuestionID: "q1", Class: ledger.ClassDoubt},
		{QuestionID: "q2", Class: ledger.ClassWrong},
	}
	if err := repo.ApplyUpdates(ctx, "meera", second); err != nil {
		t.Fatalf("ApplyUpdates (second): %v", err)
	}

	m, err := repo.Ledger(ctx, "meera")
	if err != nil {
		t.Fatalf("Ledger: %v", err)
	}

	q1 := m["q1"]
	if q1.TotalAttempts != 2 || q1.Correct != 1 || q1.Doubt != 1 {
		t.Errorf("q1 = %+v, want 2 attempts, 1 correct, 1 doubt", q1)
	}
	q2 := m["q2"]
	if q2.TotalAttempts != 2 || q2.Wrong != 2 {
		t.Errorf("q2 = %+v, want 2 attempts, 2 wrong", q2)
	}
	for id, r := range m {
		if !r.Consistent() {
			t.Errorf("record %s violates attempts invariant: %+v", id, r)
		}
	}
}

func TestLedgerProfileIsolation(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Ledger()

	updates := []ledger.Update{{QuestionID: "q1", Class: ledger.ClassCorrect}}
	if err := repo.ApplyUpdates(ctx, "meera", updates); err != nil {
		t.Fatalf("ApplyUpdates: %v", err)
	}

	other, err := repo.Ledger(ctx, "ravi")
	if err != nil {
		t.Fatalf("Ledger (other profile): %v", err)
	}
	if len(other) != 0 {
		t.Errorf("profile ravi sees %d records, want 0", len(other))
	}
}

func TestResultsAppendAndList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Results()

	base := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"r1", "r2", "r3"} {
		r := testResult(id, base.Add(time.Duration(i)*time.Minute))
		if err := repo.Append(ctx, "meera", r); err != nil {
			t.Fatalf("Append %s: %v", id, err)
		}
	}

	got, err := repo.List(ctx, "meera", 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d results, want 3", len(got))
	}
	if got[0].ID != "r3" || got[2].ID != "r1" {
		t.Errorf("order = [%s %s %s], want newest first", got[0].ID, got[1].ID, got[2].ID)
	}

	limited, err := repo.List(ctx, "meera", 2)
	if err != nil {
		t.Fatalf("List (limited): %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limited list returned %d, want 2", len(limited))
	}

	// Round-trip of nested fields.
	r3 := got[0]
	if len(r3.Answers) != 2 || !r3.Answers[1].Skipped || r3.Answers[0].Verdict != practice.VerdictCorrect {
		t.Errorf("answers did not survive the round trip: %+v", r3.Answers)
	}
	if !r3.CompletedAt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("CompletedAt = %v, want %v", r3.CompletedAt, base.Add(2*time.Minute))
	}
}

func TestSaveOutcomeWritesBoth(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	updates := []ledger.Update{
		{QuestionID: "q1", Class: ledger.ClassCorrect},
		{QuestionID: "q2", Class: ledger.ClassWrong},
	}
	result := testResult("r1", time.Now().UTC())

	if err := s.SaveOutcome(ctx, "meera", updates, result); err != nil {
		t.Fatalf("SaveOutcome: %v", err)
	}

	m, err := s.Ledger().Ledger(ctx, "meera")
	if err != nil {
		t.Fatalf("Ledger: %v", err)
	}
	if len(m) != 2 {
		t.Errorf("ledger has %d records, want 2", len(m))
	}

	results, err := s.Results().List(ctx, "meera", 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(results) != 1 || results[0].ID != "r1" {
		t.Errorf("results = %v, want [r1]", results)
	}
}

func TestSaveOutcomeAtomic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	result := testResult("dup", time.Now().UTC())
	updates := []ledger.Update{{QuestionID: "q1", Class: ledger.ClassCorrect}}

	if err := s.SaveOutcome(ctx, "meera", updates, result); err != nil {
		t.Fatalf("SaveOutcome: %v", err)
	}

	// Second save with the same result ID violates the primary key. The
	// ledger increment in the same transaction must roll back with it.
	if err := s.SaveOutcome(ctx, "meera", updates, result); err == nil {
		t.Fatal("expected duplicate result ID to fail")
	}

	m, err := s.Ledger().Ledger(ctx, "meera")
	if err != nil {
		t.Fatalf("Ledger: %v", err)
	}
	if got := m["q1"].TotalAttempts; got != 1 {
		t.Errorf("q1 attempts = %d, want 1 (failed save must not leak increments)", got)
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Configs().SaveConfig(ctx, "meera", practice.DefaultConfig()); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	err := s.SaveOutcome(ctx, "meera",
		[]ledger.Update{{QuestionID: "q1", Class: ledger.ClassCorrect}},
		testResult("r1", time.Now().UTC()))
	if err != nil {
		t.Fatalf("SaveOutcome: %v", err)
	}
	if err := s.Configs().SaveConfig(ctx, "ravi", practice.DefaultConfig()); err != nil {
		t.Fatalf("SaveConfig (other profile): %v", err)
	}

	if err := s.Reset(ctx, "meera"); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	cfg, err := s.Configs().LastConfig(ctx, "meera")
	if err != nil || cfg != nil {
		t.Errorf("config after reset = %v, %v; want nil, nil", cfg, err)
	}
	m, _ := s.Ledger().Ledger(ctx, "meera")
	if len(m) != 0 {
		t.Errorf("ledger after reset has %d records, want 0", len(m))
	}
	results, _ := s.Results().List(ctx, "meera", 0)
	if len(results) != 0 {
		t.Errorf("results after reset = %d, want 0", len(results))
	}

	// Other profiles stay untouched.
	otherCfg, err := s.Configs().LastConfig(ctx, "ravi")
	if err != nil || otherCfg == nil {
		t.Errorf("other profile lost its config: %v, %v", otherCfg, err)
	}
}

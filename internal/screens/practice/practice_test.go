package practice

import (
	"path/filepath"
	"testing"

	"github.com/meera/lingodrill/internal/bank"
	"github.com/meera/lingodrill/internal/practice"
	"github.com/meera/lingodrill/internal/router"
	"github.com/meera/lingodrill/internal/store"
)

func testDeps(t *testing.T) Deps {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return Deps{Store: st, Profile: "test"}
}

func testSession(n int) *practice.State {
	qs := make([]bank.Question, n)
	for i := range qs {
		qs[i] = bank.Question{
			ID:           string(rune('a' + i)),
			Text:         "q",
			Options:      []string{"right", "wrong", "wrong", "wrong"},
			CorrectIndex: 0,
		}
	}
	return practice.NewState("sid", "l1", practice.DefaultConfig(), qs)
}

func TestCompletionPersistsAndShowsResults(t *testing.T) {
	deps := testDeps(t)
	p := New(deps, testSession(1))

	p.selectAnswer(0)
	_, cmd := p.advance()
	if cmd == nil {
		t.Fatal("completing the last question should trigger persistence")
	}

	msg := cmd()
	done, ok := msg.(persistDoneMsg)
	if !ok {
		t.Fatalf("cmd produced %T, want persistDoneMsg", msg)
	}
	if done.Err != nil {
		t.Fatalf("persist failed: %v", done.Err)
	}

	_, cmd = p.Update(done)
	if p.state.Phase != practice.PhaseResults {
		t.Errorf("Phase = %v, want PhaseResults after successful persist", p.state.Phase)
	}
	if cmd == nil {
		t.Fatal("expected navigation command to the results screen")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected a push to the results screen")
	}

	// The outcome really landed.
	results, err := deps.Store.Results().List(t.Context(), "test", 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("persisted %d results, want 1", len(results))
	}
}

func TestPersistFailureKeepsSessionRetryable(t *testing.T) {
	deps := testDeps(t)
	p := New(deps, testSession(1))

	p.selectAnswer(0)
	_, cmd := p.advance()
	if cmd == nil {
		t.Fatal("completing the last question should trigger persistence")
	}
	firstOutcome := p.outcome

	// First write succeeds; replaying the same command simulates a failed
	// write (duplicate result ID) for the retry path.
	first := cmd()
	if done := first.(persistDoneMsg); done.Err != nil {
		t.Fatalf("first persist failed: %v", done.Err)
	}

	replay := cmd()
	done := replay.(persistDoneMsg)
	if done.Err == nil {
		t.Fatal("replayed write should fail on the duplicate result ID")
	}

	_, navCmd := p.Update(done)
	if navCmd != nil {
		t.Error("failed persist must not navigate anywhere")
	}
	if p.persistErr == "" {
		t.Error("failure should surface to the learner")
	}
	if p.state.Phase == practice.PhaseResults {
		t.Error("failed persist must keep the session out of results")
	}
	if p.outcome != firstOutcome {
		t.Error("retry must reuse the compiled outcome")
	}
}

package ledger

import "testing"

func TestRecordApply(t *testing.T) {
	var r Record

	r.Apply(ClassCorrect)
	r.Apply(ClassWrong)
	r.Apply(ClassWrong)
	r.Apply(ClassDoubt)

	if r.TotalAttempts != 4 {
		t.Errorf("TotalAttempts = %d, want 4", r.TotalAttempts)
	}
	if r.Correct != 1 || r.Wrong != 2 || r.Doubt != 1 {
		t.Errorf("counters = %d/%d/%d, want 1/2/1", r.Correct, r.Wrong, r.Doubt)
	}
	if !r.Consistent() {
		t.Error("record should be consistent after applies")
	}
}

func TestRecordConsistent(t *testing.T) {
	tests := []struct {
		name string
		r    Record
		want bool
	}{
		{"zero", Record{}, true},
		{"balanced", Record{TotalAttempts: 3, Correct: 1, Wrong: 1, Doubt: 1}, true},
		{"drifted", Record{TotalAttempts: 5, Correct: 1, Wrong: 1, Doubt: 1}, false},
	}
	for _, tt := range tests {
		if got := tt.r.Consistent(); got != tt.want {
			t.Errorf("%s: Consistent() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMapMissingKeyIsZero(t *testing.T) {
	m := Map{}
	r := m["never-seen"]
	if r.TotalAttempts != 0 || !r.Consistent() {
		t.Errorf("missing key should be a zero record, got %+v", r)
	}
}

func TestClassString(t *testing.T) {
	tests := []struct {
		c    Class
		want string
	}{
		{ClassCorrect, "correct"},
		{ClassWrong, "wrong"},
		{ClassDoubt, "doubt"},
		{Class(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("Class(%d).String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

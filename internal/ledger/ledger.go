package ledger

// Class is the performance bucket an attempt falls into.
type Class int

const (
	ClassCorrect Class = iota
	ClassWrong
	ClassDoubt
)

// String returns the stable storage name of the class.
func (c Class) String() string {
	switch c {
	case ClassCorrect:
		return "correct"
	case ClassWrong:
		return "wrong"
	case ClassDoubt:
		return "doubt"
	}
	return "unknown"
}

// Record holds the per-question aggregate counters for one learner profile.
// Invariant: TotalAttempts == Correct + Wrong + Doubt.
type Record struct {
	TotalAttempts int
	Correct       int
	Wrong         int
	Doubt         int
}

// Apply increments the counter for class and the attempt total.
func (r *Record) Apply(c Class) {
	r.TotalAttempts++
	switch c {
	case ClassCorrect:
		r.Correct++
	case ClassWrong:
		r.Wrong++
	case ClassDoubt:
		r.Doubt++
	}
}

// Consistent reports whether the attempt total matches the bucket sum.
func (r Record) Consistent() bool {
	return r.TotalAttempts == r.Correct+r.Wrong+r.Doubt
}

// Map is a profile's full ledger, keyed by question ID. A missing key is
// equivalent to a zero Record (never attempted).
type Map map[string]Record

// Update is one pending ledger increment, produced by result compilation.
type Update struct {
	QuestionID string
	Class      Class
}

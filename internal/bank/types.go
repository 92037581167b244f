package bank

// OptionCount is the fixed number of answer options per question.
const OptionCount = 4

// Question is a single multiple-choice question. Immutable once loaded.
type Question struct {
	ID           string   `json:"id"`
	Text         string   `json:"text"`
	Image        string   `json:"image,omitempty"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation,omitempty"`
}

// Lesson is an ordered set of questions within a course. Immutable.
type Lesson struct {
	ID        string     `json:"id"`
	CourseID  string     `json:"-"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Course groups lessons in teaching order.
type Course struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Lessons []Lesson `json:"lessons"`
}

// PreviousLessons returns the lessons that come before lessonID in course
// order. Returns nil if lessonID is the first lesson or is not in the course.
func (c Course) PreviousLessons(lessonID string) []Lesson {
	for i, l := range c.Lessons {
		if l.ID == lessonID {
			return c.Lessons[:i]
		}
	}
	return nil
}

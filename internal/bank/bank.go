package bank

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed content
var embeddedContent embed.FS

// Bank provides read-only access to courses, lessons, and questions.
type Bank interface {
	// Courses returns all loaded courses in stable order.
	Courses() []Course

	// ListLessons returns the lessons of a course in teaching order.
	ListLessons(courseID string) ([]Lesson, error)

	// Lesson returns a single lesson by ID.
	Lesson(lessonID string) (Lesson, error)

	// Course returns the course containing the given lesson.
	Course(lessonID string) (Course, error)

	// Questions returns the questions of a single lesson.
	Questions(lessonID string) ([]Question, error)
}

// FileBank is a Bank backed by JSON course files.
type FileBank struct {
	courses []Course
	lessons map[string]*Lesson
}

var _ Bank = (*FileBank)(nil)

// LoadDefault loads the embedded sample content, or the directory named by
// the LINGODRILL_CONTENT environment variable when set.
func LoadDefault() (*FileBank, error) {
	if dir := os.Getenv("LINGODRILL_CONTENT"); dir != "" {
		return LoadDir(dir)
	}
	sub, err := fs.Sub(embeddedContent, "content")
	if err != nil {
		return nil, fmt.Errorf("embedded content: %w", err)
	}
	return LoadFS(sub)
}

// LoadDir loads every *.json course file in dir.
func LoadDir(dir string) (*FileBank, error) {
	return LoadFS(os.DirFS(filepath.Clean(dir)))
}

// LoadFS loads every *.json course file from fsys, validating each against
// the course schema before accepting it.
func LoadFS(fsys fs.FS) (*FileBank, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read content dir: %w", err)
	}

	b := &FileBank{lessons: make(map[string]*Lesson)}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		raw, err := fs.ReadFile(fsys, e.Name())
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}
		course, err := parseCourse(raw)
		if err != nil {
			return nil, fmt.Errorf("course file %s: %w", e.Name(), err)
		}
		b.courses = append(b.courses, course)
	}

	sort.Slice(b.courses, func(i, j int) bool {
		return b.courses[i].ID < b.courses[j].ID
	})

	for ci := range b.courses {
		course := &b.courses[ci]
		for li := range course.Lessons {
			l := &course.Lessons[li]
			l.CourseID = course.ID
			if _, dup := b.lessons[l.ID]; dup {
				return nil, fmt.Errorf("duplicate lesson id %q", l.ID)
			}
			b.lessons[l.ID] = l
		}
	}

	return b, nil
}

// parseCourse validates and decodes one course file.
func parseCourse(raw []byte) (Course, error) {
	if err := validateCourse(raw); err != nil {
		return Course{}, err
	}
	var c Course
	if err := json.Unmarshal(raw, &c); err != nil {
		return Course{}, fmt.Errorf("decode: %w", err)
	}
	return c, nil
}

func (b *FileBank) Courses() []Course {
	return b.courses
}

func (b *FileBank) ListLessons(courseID string) ([]Lesson, error) {
	for _, c := range b.courses {
		if c.ID == courseID {
			return c.Lessons, nil
		}
	}
	return nil, fmt.Errorf("unknown course %q", courseID)
}

func (b *FileBank) Lesson(lessonID string) (Lesson, error) {
	l, ok := b.lessons[lessonID]
	if !ok {
		return Lesson{}, fmt.Errorf("unknown lesson %q", lessonID)
	}
	return *l, nil
}

func (b *FileBank) Questions(lessonID string) ([]Question, error) {
	l, ok := b.lessons[lessonID]
	if !ok {
		return nil, fmt.Errorf("unknown lesson %q", lessonID)
	}
	return l.Questions, nil
}

// Course returns the course containing the given lesson.
func (b *FileBank) Course(lessonID string) (Course, error) {
	l, ok := b.lessons[lessonID]
	if !ok {
		return Course{}, fmt.Errorf("unknown lesson %q", lessonID)
	}
	for _, c := range b.courses {
		if c.ID == l.CourseID {
			return c, nil
		}
	}
	return Course{}, fmt.Errorf("lesson %q has no course", lessonID)
}

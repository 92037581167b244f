package bank

import (
	"fmt"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCourseJSON(courseID, lessonID string) []byte {
	return []byte(fmt.Sprintf(`{
		"id": %q,
		"title": "Test Course",
		"lessons": [
			{
				"id": %q,
				"title": "Test Lesson",
				"questions": [
					{
						"id": "q1",
						"text": "Pick the first option",
						"options": ["one", "two", "three", "four"],
						"correct_index": 0,
						"explanation": "It is the first one."
					}
				]
			}
		]
	}`, courseID, lessonID))
}

func TestLoadDefaultEmbedded(t *testing.T) {
	b, err := LoadDefault()
	require.NoError(t, err)

	courses := b.Courses()
	require.Len(t, courses, 1)
	assert.Equal(t, "spanish-basics", courses[0].ID)
	assert.Len(t, courses[0].Lessons, 3)

	for _, l := range courses[0].Lessons {
		qs, err := b.Questions(l.ID)
		require.NoError(t, err)
		assert.NotEmpty(t, qs)
		for _, q := range qs {
			assert.Len(t, q.Options, OptionCount, "question %s", q.ID)
			assert.GreaterOrEqual(t, q.CorrectIndex, 0)
			assert.Less(t, q.CorrectIndex, OptionCount)
		}
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"course.json": {Data: validCourseJSON("c1", "l1")},
		"notes.txt":   {Data: []byte("ignored")},
	}

	b, err := LoadFS(fsys)
	require.NoError(t, err)

	lessons, err := b.ListLessons("c1")
	require.NoError(t, err)
	require.Len(t, lessons, 1)
	assert.Equal(t, "c1", lessons[0].CourseID)

	lesson, err := b.Lesson("l1")
	require.NoError(t, err)
	assert.Equal(t, "Test Lesson", lesson.Title)

	course, err := b.Course("l1")
	require.NoError(t, err)
	assert.Equal(t, "c1", course.ID)
}

func TestLoadFSDuplicateLessonID(t *testing.T) {
	fsys := fstest.MapFS{
		"a.json": {Data: validCourseJSON("c1", "shared")},
		"b.json": {Data: validCourseJSON("c2", "shared")},
	}

	_, err := LoadFS(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate lesson id")
}

func TestLoadFSRejectsBadContent(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			"three options",
			`{"id":"c","title":"t","lessons":[{"id":"l","title":"t","questions":[
				{"id":"q","text":"t","options":["a","b","c"],"correct_index":0}]}]}`,
		},
		{
			"correct index out of range",
			`{"id":"c","title":"t","lessons":[{"id":"l","title":"t","questions":[
				{"id":"q","text":"t","options":["a","b","c","d"],"correct_index":4}]}]}`,
		},
		{
			"missing questions",
			`{"id":"c","title":"t","lessons":[{"id":"l","title":"t"}]}`,
		},
		{
			"unknown field",
			`{"id":"c","title":"t","difficulty":9,"lessons":[{"id":"l","title":"t","questions":[
				{"id":"q","text":"t","options":["a","b","c","d"],"correct_index":0}]}]}`,
		},
		{
			"not json",
			`hola`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"course.json": {Data: []byte(tt.data)}}
			_, err := LoadFS(fsys)
			require.Error(t, err)
		})
	}
}

func TestUnknownLookups(t *testing.T) {
	b, err := LoadFS(fstest.MapFS{"course.json": {Data: validCourseJSON("c1", "l1")}})
	require.NoError(t, err)

	_, err = b.Questions("nope")
	assert.Error(t, err)
	_, err = b.Lesson("nope")
	assert.Error(t, err)
	_, err = b.Course("nope")
	assert.Error(t, err)
	_, err = b.ListLessons("nope")
	assert.Error(t, err)
}

func TestPreviousLessons(t *testing.T) {
	course := Course{
		ID: "c1",
		Lessons: []Lesson{
			{ID: "l1"}, {ID: "l2"}, {ID: "l3"},
		},
	}

	assert.Empty(t, course.PreviousLessons("l1"))
	assert.Len(t, course.PreviousLessons("l3"), 2)
	assert.Equal(t, "l1", course.PreviousLessons("l2")[0].ID)
	assert.Nil(t, course.PreviousLessons("unknown"))
}

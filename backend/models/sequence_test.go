package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func lessonWithID(id uint, title string) Lesson {
	return Lesson{Model: gorm.Model{ID: id}, Title: title}
}

// A(L1, L2), B(empty), C(L3)
func buildCourse() Course {
	return Course{
		Modules: []Module{
			{Model: gorm.Model{ID: 10}, Title: "A", Lessons: []Lesson{
				lessonWithID(1, "L1"),
				lessonWithID(2, "L2"),
			}},
			{Model: gorm.Model{ID: 20}, Title: "B"},
			{Model: gorm.Model{ID: 30}, Title: "C", Lessons: []Lesson{
				lessonWithID(3, "L3"),
			}},
		},
	}
}

func TestNeighborLessonsWithinModule(t *testing.T) {
	course := buildCourse()

	prev, next := NeighborLessons(&course, 1)
	assert.Nil(t, prev)
	if assert.NotNil(t, next) {
		assert.Equal(t, uint(2), next.ID)
	}

	prev, next = NeighborLessons(&course, 2)
	if assert.NotNil(t, prev) {
		assert.Equal(t, uint(1), prev.ID)
	}
	// The adjacent module B has no lessons: the traversal ends there, it
	// does not scan on to C.
	assert.Nil(t, next)
}

func TestNeighborLessonsAcrossModules(t *testing.T) {
	course := Course{
		Modules: []Module{
			{Lessons: []Lesson{lessonWithID(1, "L1"), lessonWithID(2, "L2")}},
			{Lessons: []Lesson{lessonWithID(3, "L3")}},
		},
	}

	prev, next := NeighborLessons(&course, 2)
	if assert.NotNil(t, prev) {
		assert.Equal(t, uint(1), prev.ID)
	}
	if assert.NotNil(t, next) {
		assert.Equal(t, uint(3), next.ID)
	}

	prev, next = NeighborLessons(&course, 3)
	if assert.NotNil(t, prev) {
		assert.Equal(t, uint(2), prev.ID)
	}
	assert.Nil(t, next)
}

func TestNeighborLessonsBackwardOverEmptyModule(t *testing.T) {
	course := buildCourse()

	// L3's preceding module is the empty B: no previous lesson.
	prev, next := NeighborLessons(&course, 3)
	assert.Nil(t, prev)
	assert.Nil(t, next)
}

func TestNeighborLessonsUnknownLesson(t *testing.T) {
	course := buildCourse()

	prev, next := NeighborLessons(&course, 99)
	assert.Nil(t, prev)
	assert.Nil(t, next)
}

func TestFindLesson(t *testing.T) {
	course := buildCourse()

	lesson, module := FindLesson(&course, 3)
	if assert.NotNil(t, lesson) {
		assert.Equal(t, "L3", lesson.Title)
	}
	if assert.NotNil(t, module) {
		assert.Equal(t, "C", module.Title)
	}

	lesson, module = FindLesson(&course, 99)
	assert.Nil(t, lesson)
	assert.Nil(t, module)
}

func TestLessonCount(t *testing.T) {
	course := buildCourse()
	assert.Equal(t, 3, LessonCount(&course))
	assert.Equal(t, 0, LessonCount(&Course{}))
}

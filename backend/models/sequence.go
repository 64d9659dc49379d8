package models

// Lesson navigation walks the course as one flat sequence: every module
// in order, every lesson within its module in order. The functions below
// expect Modules and Lessons to be loaded already sorted by Position
// (see utils.PreloadCourseContent).

// FindLesson locates a lesson inside a loaded course and returns it with
// its module. Returns nils when the lesson does not belong to the course.
func FindLesson(course *Course, lessonID uint) (*Lesson, *Module) {
	for mi := range course.Modules {
		module := &course.Modules[mi]
		for li := range module.Lessons {
			if module.Lessons[li].ID == lessonID {
				return &module.Lessons[li], module
			}
		}
	}
	return nil, nil
}

// NeighborLessons returns the lessons immediately before and after the
// given one in the flattened traversal. Crossing a module boundary steps
// into the adjacent module only: when that module has no lessons the
// traversal ends there, it never scans further.
func NeighborLessons(course *Course, lessonID uint) (prev, next *Lesson) {
	mi, li := -1, -1
	for m := range course.Modules {
		for l := range course.Modules[m].Lessons {
			if course.Modules[m].Lessons[l].ID == lessonID {
				mi, li = m, l
				break
			}
		}
		if mi >= 0 {
			break
		}
	}
	if mi < 0 {
		return nil, nil
	}

	lessons := course.Modules[mi].Lessons

	if li+1 < len(lessons) {
		next = &lessons[li+1]
	} else if mi+1 < len(course.Modules) {
		following := course.Modules[mi+1].Lessons
		if len(following) > 0 {
			next = &following[0]
		}
	}

	if li > 0 {
		prev = &lessons[li-1]
	} else if mi > 0 {
		preceding := course.Modules[mi-1].Lessons
		if len(preceding) > 0 {
			prev = &preceding[len(preceding)-1]
		}
	}

	return prev, next
}

// LessonCount returns the number of lessons across all modules of a
// loaded course.
func LessonCount(course *Course) int {
	total := 0
	for i := range course.Modules {
		total += len(course.Modules[i].Lessons)
	}
	return total
}

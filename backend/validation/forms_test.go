package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCheckRegisterInput(t *testing.T) {
	fields := Check(RegisterInput{
		Username:        "ana",
		Email:           "ana@x.com",
		Password:        "abcdef",
		ConfirmPassword: "abcdef",
	})
	assert.Empty(t, fields)

	fields = Check(RegisterInput{
		Username:        "an",
		Email:           "not-an-email",
		Password:        "abc",
		ConfirmPassword: "xyz",
	})
	assert.Contains(t, fields, "username")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields, "confirm_password")
}

func TestCheckReportsJSONFieldNames(t *testing.T) {
	fields := Check(PasswordChangeInput{CurrentPassword: "x", NewPassword: "longenough", ConfirmPassword: "different"})
	assert.Contains(t, fields, "confirm_password")
	assert.NotContains(t, fields, "ConfirmPassword")
}

func TestCheckCourseInput(t *testing.T) {
	fields := Check(CourseInput{
		Title:       "Intro",
		Description: "A course",
		Price:       0,
		Level:       "iniciante",
		Duration:    10,
	})
	assert.Empty(t, fields, "a free course is valid")

	fields = Check(CourseInput{Title: "Intro", Description: "A course", Level: "expert", Duration: 0, Price: -1})
	assert.Contains(t, fields, "level")
	assert.Contains(t, fields, "duration")
	assert.Contains(t, fields, "price")
}

func TestMentorshipDate(t *testing.T) {
	_, msg := MentorshipDate("not a date")
	assert.NotEmpty(t, msg)

	_, msg = MentorshipDate(time.Now().Add(-24 * time.Hour).Format(ScheduledDateLayout))
	assert.Equal(t, "must be a future date", msg)

	_, msg = MentorshipDate(time.Now().Add(40 * 24 * time.Hour).Format(ScheduledDateLayout))
	assert.Equal(t, "must be within the next 30 days", msg)

	scheduled, msg := MentorshipDate(time.Now().Add(48 * time.Hour).Format(ScheduledDateLayout))
	assert.Empty(t, msg)
	assert.False(t, scheduled.IsZero())
}

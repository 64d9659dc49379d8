// Package validation holds the input shapes for every submitted form and
// validates them into a structured result: a field->message map that the
// handlers surface as a 422. Validation is decoupled from rendering and
// from the database; uniqueness is the handlers' concern.
package validation

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors under the json field names the client submitted.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type RegisterInput struct {
	Username        string `json:"username" validate:"required,min=3,max=80"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Remember bool   `json:"remember"`
}

type ProfileInput struct {
	Username string `json:"username" validate:"required,min=3,max=80"`
	Email    string `json:"email" validate:"required,email"`
	Bio      string `json:"bio" validate:"max=500"`
}

type PasswordChangeInput struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}

type CourseInput struct {
	Title       string  `json:"title" validate:"required,max=100"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Level       string  `json:"level" validate:"required,oneof=iniciante intermediario avancado"`
	Duration    int     `json:"duration" validate:"required,min=1"`
	IsFeatured  bool    `json:"is_featured"`
}

type ModuleInput struct {
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description"`
	Position    int    `json:"position" validate:"gte=0"`
}

type LessonInput struct {
	Title    string `json:"title" validate:"required,max=100"`
	Content  string `json:"content" validate:"required"`
	VideoURL string `json:"video_url" validate:"omitempty,url"`
	Position int    `json:"position" validate:"gte=0"`
	Duration int    `json:"duration" validate:"gte=0"`
}

type MentorshipInput struct {
	Subject       string `json:"subject" validate:"required,max=100"`
	Description   string `json:"description" validate:"required"`
	ScheduledDate string `json:"scheduled_date" validate:"required"`
	Notes         string `json:"notes"`
}

type MentorshipStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

// Check validates in and returns a field->message map, empty when valid.
func Check(in interface{}) map[string]string {
	fields := map[string]string{}
	err := validate.Struct(in)
	if err == nil {
		return fields
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		fields["_"] = err.Error()
		return fields
	}

	for _, e := range errs {
		fields[e.Field()] = message(e)
	}
	return fields
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", e.Param())
		}
		return fmt.Sprintf("must be at least %s", e.Param())
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", e.Param())
		}
		return fmt.Sprintf("must be at most %s", e.Param())
	case "eqfield":
		return "does not match"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	case "gte":
		return fmt.Sprintf("must be %s or greater", e.Param())
	case "url":
		return "must be a valid URL"
	default:
		return "is invalid"
	}
}

// ScheduledDateLayout is the wire format for mentoring session dates.
const ScheduledDateLayout = "2006-01-02 15:04"

// MentorshipDate parses and validates a requested session date: it must
// be in the future and within the next 30 days. Returns a zero time and
// a message when invalid.
func MentorshipDate(raw string) (time.Time, string) {
	t, err := time.Parse(ScheduledDateLayout, raw)
	if err != nil {
		return time.Time{}, "must be a date in the format " + ScheduledDateLayout
	}
	now := time.Now()
	if t.Before(now) {
		return time.Time{}, "must be a future date"
	}
	if t.After(now.Add(30 * 24 * time.Hour)) {
		return time.Time{}, "must be within the next 30 days"
	}
	return t, ""
}

package course

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"NYCU-SDC/course-catalog-backend/internal"

	"github.com/go-playground/validator/v10"
)

const (
	MaxSubjectLength     = 10
	MaxDescriptionLength = 50
)

var courseNumberPattern = regexp.MustCompile(`^[0-9]{3}$`)

// Fields is a course candidate after normalization, ready to be persisted.
type Fields struct {
	Subject      string `validate:"max=10"`
	CourseNumber string
	Description  string `validate:"max=50"`
}

// Validate trims the raw input and checks it in order: presence of every field,
// storable text, the course number format, then the length limits. The first
// failure is returned.
func Validate(v *validator.Validate, subject, courseNumber, description string) (Fields, error) {
	fields := Fields{
		Subject:      strings.TrimSpace(subject),
		CourseNumber: strings.TrimSpace(courseNumber),
		Description:  strings.TrimSpace(description),
	}

	var missing []string
	if fields.Subject == "" {
		missing = append(missing, "subject")
	}
	if fields.CourseNumber == "" {
		missing = append(missing, "courseNumber")
	}
	if fields.Description == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return Fields{}, fmt.Errorf("%w: %s", internal.ErrMissingField, strings.Join(missing, ", "))
	}

	for _, field := range []struct{ name, value string }{
		{"subject", fields.Subject},
		{"courseNumber", fields.CourseNumber},
		{"description", fields.Description},
	} {
		if !storable(field.value) {
			return Fields{}, fmt.Errorf("%w: %s", internal.ErrInvalidCharacter, field.name)
		}
	}

	if !courseNumberPattern.MatchString(fields.CourseNumber) {
		return Fields{}, fmt.Errorf("%w: %q", internal.ErrInvalidCourseNumber, fields.CourseNumber)
	}

	err := internal.ValidateStruct(v, fields)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
			return Fields{}, err
		}

		switch validationErrors[0].Field() {
		case "Subject":
			return Fields{}, fmt.Errorf("%w: %d characters allowed", internal.ErrSubjectTooLong, MaxSubjectLength)
		case "Description":
			return Fields{}, fmt.Errorf("%w: %d characters allowed", internal.ErrDescriptionTooLong, MaxDescriptionLength)
		}
		return Fields{}, err
	}

	return fields, nil
}

// storable reports whether PostgreSQL text columns accept value.
func storable(value string) bool {
	return utf8.ValidString(value) && !strings.ContainsRune(value, 0)
}

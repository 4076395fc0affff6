package internal

import (
	"context"
	"errors"
	"net/http"

	handlerutil "github.com/NYCU-SDC/summer/pkg/handler"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var (
	// Request Errors
	ErrInvalidRequestBody = errors.New("invalid request body")
	ErrInvalidID          = errors.New("invalid course id")

	// Course Validation Errors
	ErrMissingField        = errors.New("missing required field")
	ErrInvalidCourseNumber = errors.New("invalid course number format")
	ErrSubjectTooLong      = errors.New("subject exceeds maximum length")
	ErrDescriptionTooLong  = errors.New("description exceeds maximum length")
	ErrInvalidCharacter    = errors.New("field contains a character the store cannot hold")

	// Course Search Errors
	ErrSearchTooLong = errors.New("search string exceeds maximum length")

	// Course Store Errors
	ErrCourseNotFound  = errors.New("course not found")
	ErrDuplicateCourse = errors.New("duplicate course")
)

// Message is the JSON body of every error response.
type Message struct {
	Message string `json:"message"`
}

type Mapping struct {
	Status  int
	Message string
}

func ErrorHandler(err error) Mapping {
	switch {
	// Request Errors
	case errors.Is(err, ErrInvalidRequestBody):
		return Mapping{http.StatusBadRequest, "Request body must be a JSON object with subject, courseNumber, and description."}
	case errors.Is(err, ErrInvalidID):
		return Mapping{http.StatusBadRequest, "Invalid course ID."}

	// Course Validation Errors
	case errors.Is(err, ErrMissingField):
		return Mapping{http.StatusBadRequest, "Missing required fields: subject, courseNumber, and description are required."}
	case errors.Is(err, ErrInvalidCourseNumber):
		return Mapping{http.StatusBadRequest, `courseNumber must be a three-digit, zero-padded integer like "033".`}
	case errors.Is(err, ErrSubjectTooLong):
		return Mapping{http.StatusBadRequest, "Subject must be 10 characters or less."}
	case errors.Is(err, ErrDescriptionTooLong):
		return Mapping{http.StatusBadRequest, "Description must be 50 characters or less."}
	case errors.Is(err, ErrInvalidCharacter):
		return Mapping{http.StatusBadRequest, "Fields must be valid UTF-8 text without NUL characters."}

	// Course Search Errors
	case errors.Is(err, ErrSearchTooLong):
		return Mapping{http.StatusBadRequest, "Search string exceeds maximum length."}

	// Course Store Errors
	case errors.Is(err, ErrCourseNotFound):
		return Mapping{http.StatusNotFound, "Course not found."}
	case errors.Is(err, ErrDuplicateCourse):
		return Mapping{http.StatusBadRequest, "Duplicate course. The combination of subject and courseNumber must be unique."}
	}

	return Mapping{http.StatusInternalServerError, "An unexpected error occurred."}
}

type MessageWriter struct {
	mapping func(error) Mapping
}

func NewMessageWriter() *MessageWriter {
	return &MessageWriter{mapping: ErrorHandler}
}

// WriteError maps err to a status code and writes a {"message": ...} body. Details of
// unexpected errors only reach the log, never the client.
func (m *MessageWriter) WriteError(ctx context.Context, w http.ResponseWriter, err error, logger *zap.Logger) {
	mapped := m.mapping(err)

	span := trace.SpanFromContext(ctx)
	span.RecordError(err)

	if mapped.Status >= http.StatusInternalServerError {
		logger.Error("Unexpected error while handling request", zap.Error(err), zap.Int("status", mapped.Status))
	} else {
		logger.Warn("Request rejected", zap.Error(err), zap.Int("status", mapped.Status))
	}

	handlerutil.WriteJSONResponse(w, mapped.Status, Message{Message: mapped.Message})
}

package internal

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type contextKey string

var (
	CourseIDContextKey contextKey = "course-id"
)

// ParseUUID parses a path identifier, reporting ErrInvalidID for anything that is
// not a well-formed UUID.
func ParseUUID(value string) (uuid.UUID, error) {
	parsedUUID, err := uuid.Parse(value)
	if err != nil {
		return parsedUUID, fmt.Errorf("%w: %q: %v", ErrInvalidID, value, err)
	}

	return parsedUUID, nil
}

func WithCourseID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, CourseIDContextKey, id.String())
}

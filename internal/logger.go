package internal

import (
	"context"

	logutil "github.com/NYCU-SDC/summer/pkg/log"
	"go.uber.org/zap"
)

// WithContext parses the context and adds the course ID to the logger if available
func WithContext(ctx context.Context, logger *zap.Logger) *zap.Logger {
	logger = logutil.WithContext(ctx, logger)
	if ctx == nil {
		return logger
	}

	courseID, ok := ctx.Value(CourseIDContextKey).(string)
	if ok && courseID != "" {
		logger = logger.With(zap.String("course_id", courseID))
	}

	return logger
}

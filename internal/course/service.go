package course

import (
	"context"
	"errors"
	"fmt"

	"NYCU-SDC/course-catalog-backend/internal"

	databaseutil "github.com/NYCU-SDC/summer/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	uniqueViolationCode           = "23505"
	subjectCourseNumberConstraint = "courses_subject_course_number_key"
)

//go:generate mockery --name Querier --inpackage --testonly --structname mockQuerier --filename mock_querier_test.go
type Querier interface {
	Create(ctx context.Context, arg CreateParams) (Course, error)
	GetByID(ctx context.Context, id uuid.UUID) (Course, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (int64, error)
	Search(ctx context.Context, arg SearchParams) ([]Course, error)
}

type Service struct {
	logger  *zap.Logger
	tracer  trace.Tracer
	queries Querier
}

func NewService(logger *zap.Logger, db DBTX) *Service {
	return &Service{
		logger:  logger,
		tracer:  otel.Tracer("course/service"),
		queries: New(db),
	}
}

func (s *Service) Create(ctx context.Context, fields Fields) (Course, error) {
	traceCtx, span := s.tracer.Start(ctx, "Create")
	defer span.End()
	logger := internal.WithContext(traceCtx, s.logger)

	course, err := s.queries.Create(traceCtx, CreateParams{
		Subject:      fields.Subject,
		CourseNumber: fields.CourseNumber,
		Description:  fields.Description,
	})
	if err != nil {
		if isDuplicateCourse(err) {
			err = fmt.Errorf("%w: subject %q, course number %q", internal.ErrDuplicateCourse, fields.Subject, fields.CourseNumber)
			span.RecordError(err)
			return Course{}, err
		}

		err = databaseutil.WrapDBError(err, logger, "create course")
		span.RecordError(err)
		return Course{}, err
	}

	return course, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (Course, error) {
	traceCtx, span := s.tracer.Start(ctx, "GetByID")
	defer span.End()
	logger := internal.WithContext(traceCtx, s.logger)

	course, err := s.queries.GetByID(traceCtx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf("%w: %s", internal.ErrCourseNotFound, id)
			span.RecordError(err)
			return Course{}, err
		}

		err = databaseutil.WrapDBError(err, logger, "get course by id")
		span.RecordError(err)
		return Course{}, err
	}

	return course, nil
}

func (s *Service) DeleteByID(ctx context.Context, id uuid.UUID) error {
	traceCtx, span := s.tracer.Start(ctx, "DeleteByID")
	defer span.End()
	logger := internal.WithContext(traceCtx, s.logger)

	deleted, err := s.queries.DeleteByID(traceCtx, id)
	if err != nil {
		err = databaseutil.WrapDBError(err, logger, "delete course by id")
		span.RecordError(err)
		return err
	}

	if deleted == 0 {
		err = fmt.Errorf("%w: %s", internal.ErrCourseNotFound, id)
		span.RecordError(err)
		return err
	}

	return nil
}

// Find returns every course matching the filter. It never returns a nil slice.
func (s *Service) Find(ctx context.Context, filter Filter) ([]Course, error) {
	traceCtx, span := s.tracer.Start(ctx, "Find")
	defer span.End()
	logger := internal.WithContext(traceCtx, s.logger)

	courses, err := s.queries.Search(traceCtx, filter.Params())
	if err != nil {
		err = databaseutil.WrapDBError(err, logger, "search courses")
		span.RecordError(err)
		return nil, err
	}

	if courses == nil {
		return []Course{}, nil
	}

	return courses, nil
}

func (s *Service) GetAll(ctx context.Context) ([]Course, error) {
	return s.Find(ctx, Filter{})
}

func isDuplicateCourse(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode && pgErr.ConstraintName == subjectCourseNumberConstraint
}

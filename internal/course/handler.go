package course

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"NYCU-SDC/course-catalog-backend/internal"

	handlerutil "github.com/NYCU-SDC/summer/pkg/handler"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const deletedMessage = "Course deleted"

type CreateRequest struct {
	Subject      string `json:"subject"`
	CourseNumber string `json:"courseNumber"`
	Description  string `json:"description"`
}

type Response struct {
	ID           string `json:"id"`
	Subject      string `json:"subject"`
	CourseNumber string `json:"courseNumber"`
	Description  string `json:"description"`
	CreatedAt    string `json:"createdAt"`
}

type Store interface {
	GetAll(ctx context.Context) ([]Course, error)
	Find(ctx context.Context, filter Filter) ([]Course, error)
	GetByID(ctx context.Context, id uuid.UUID) (Course, error)
	Create(ctx context.Context, fields Fields) (Course, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type Handler struct {
	logger        *zap.Logger
	validator     *validator.Validate
	messageWriter *internal.MessageWriter
	tracer        trace.Tracer

	store Store
}

func NewHandler(logger *zap.Logger, validator *validator.Validate, messageWriter *internal.MessageWriter, store Store) *Handler {
	return &Handler{
		logger:        logger,
		validator:     validator,
		messageWriter: messageWriter,
		tracer:        otel.Tracer("course/handler"),
		store:         store,
	}
}

func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	traceCtx, span := h.tracer.Start(r.Context(), "ListHandler")
	defer span.End()
	logger := internal.WithContext(traceCtx, h.logger)

	courses, err := h.store.GetAll(traceCtx)
	if err != nil {
		h.messageWriter.WriteError(traceCtx, w, err, logger)
		return
	}

	handlerutil.WriteJSONResponse(w, http.StatusOK, GenerateResponses(courses))
}

func (h *Handler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	traceCtx, span := h.tracer.Start(r.Context(), "SearchHandler")
	defer span.End()
	logger := internal.WithContext(traceCtx, h.logger)

	query := r.URL.Query()
	filter, err := BuildFilter(query.Get(FieldDescription), query.Get(FieldSubject), query.Get(FieldCourseNumber))
	if err != nil {
		h.messageWriter.WriteError(traceCtx, w, err, logger)
		return
	}

	courses, err := h.store.Find(traceCtx, filter)
	if err != nil {
		h.messageWriter.WriteError(traceCtx, w, err, logger)
		return
	}

	logger.Debug("Courses searched", zap.Int("filters", len(filter)), zap.Int("matches", len(courses)))

	handlerutil.WriteJSONResponse(w, http.StatusOK, GenerateResponses(courses))
}

func (h *Handler) GetHandler(w http.ResponseWriter, r *http.Request) {
	traceCtx, span := h.tracer.Start(r.Context(), "GetHandler")
	defer span.End()
	logger := internal.WithContext(traceCtx, h.logger)

	courseID, err := internal.ParseUUID(r.PathValue("id"))
	if err != nil {
		h.messageWriter.WriteError(traceCtx, w, err, logger)
		return
	}
	traceCtx = internal.WithCourseID(traceCtx, courseID)
	logger = internal.WithContext(traceCtx, h.logger)

	course, err := h.store.GetByID(traceCtx, courseID)
	if err != nil {
		h.messageWriter.WriteError(traceCtx, w, err, logger)
		return
	}

	handlerutil.WriteJSONResponse(w, http.StatusOK, GenerateResponse(course))
}

func (h *Handler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	traceCtx, span := h.tracer.Start(r.Context(), "CreateHandler")
	defer span.End()
	logger := internal.WithContext(traceCtx, h.logger)

	var req CreateRequest
	err := handlerutil.ParseAndValidateRequestBody(traceCtx, h.validator, r, &req)
	if err != nil {
		h.messageWriter.WriteError(traceCtx, w, fmt.Errorf("%w: %v", internal.ErrInvalidRequestBody, err), logger)
		return
	}

	fields, err := Validate(h.validator, req.Subject, req.CourseNumber, req.Description)
	if err != nil {
		h.messageWriter.WriteError(traceCtx, w, err, logger)
		return
	}

	course, err := h.store.Create(traceCtx, fields)
	if err != nil {
		h.messageWriter.WriteError(traceCtx, w, err, logger)
		return
	}

	logger.Info("Course created", zap.String("id", course.ID.String()), zap.String("subject", course.Subject), zap.String("course_number", course.CourseNumber))

	handlerutil.WriteJSONResponse(w, http.StatusCreated, GenerateResponse(course))
}

func (h *Handler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	traceCtx, span := h.tracer.Start(r.Context(), "DeleteHandler")
	defer span.End()
	logger := internal.WithContext(traceCtx, h.logger)

	courseID, err := internal.ParseUUID(r.PathValue("id"))
	if err != nil {
		h.messageWriter.WriteError(traceCtx, w, err, logger)
		return
	}
	traceCtx = internal.WithCourseID(traceCtx, courseID)
	logger = internal.WithContext(traceCtx, h.logger)

	err = h.store.DeleteByID(traceCtx, courseID)
	if err != nil {
		h.messageWriter.WriteError(traceCtx, w, err, logger)
		return
	}

	logger.Info("Course deleted")

	handlerutil.WriteJSONResponse(w, http.StatusOK, internal.Message{Message: deletedMessage})
}

func GenerateResponse(course Course) Response {
	return Response{
		ID:           course.ID.String(),
		Subject:      course.Subject,
		CourseNumber: course.CourseNumber,
		Description:  course.Description,
		CreatedAt:    course.CreatedAt.Time.Format(time.RFC3339),
	}
}

func GenerateResponses(courses []Course) []Response {
	response := make([]Response, len(courses))
	for index, course := range courses {
		response[index] = GenerateResponse(course)
	}
	return response
}

package course

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Course struct {
	ID           uuid.UUID
	Subject      string
	CourseNumber string
	Description  string
	CreatedAt    pgtype.Timestamptz
}

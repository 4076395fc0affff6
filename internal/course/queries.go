package course

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

const create = `-- name: Create :one
INSERT INTO courses (subject, course_number, description)
VALUES ($1, $2, $3)
RETURNING id, subject, course_number, description, created_at
`

type CreateParams struct {
	Subject      string
	CourseNumber string
	Description  string
}

func (q *Queries) Create(ctx context.Context, arg CreateParams) (Course, error) {
	row := q.db.QueryRow(ctx, create, arg.Subject, arg.CourseNumber, arg.Description)
	var i Course
	err := row.Scan(
		&i.ID,
		&i.Subject,
		&i.CourseNumber,
		&i.Description,
		&i.CreatedAt,
	)
	return i, err
}

const deleteByID = `-- name: DeleteByID :execrows
DELETE FROM courses WHERE id = $1
`

func (q *Queries) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	result, err := q.db.Exec(ctx, deleteByID, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getByID = `-- name: GetByID :one
SELECT id, subject, course_number, description, created_at FROM courses WHERE id = $1
`

func (q *Queries) GetByID(ctx context.Context, id uuid.UUID) (Course, error) {
	row := q.db.QueryRow(ctx, getByID, id)
	var i Course
	err := row.Scan(
		&i.ID,
		&i.Subject,
		&i.CourseNumber,
		&i.Description,
		&i.CreatedAt,
	)
	return i, err
}

const search = `-- name: Search :many
SELECT id, subject, course_number, description, created_at FROM courses
WHERE ($1::text = '' OR description ~* $1::text)
  AND ($2::text = '' OR subject ~* $2::text)
  AND ($3::text = '' OR course_number ~* $3::text)
ORDER BY subject, course_number
`

// SearchParams holds one case-insensitive regular expression per column. An empty
// pattern leaves that column unfiltered.
type SearchParams struct {
	Description  string
	Subject      string
	CourseNumber string
}

func (q *Queries) Search(ctx context.Context, arg SearchParams) ([]Course, error) {
	rows, err := q.db.Query(ctx, search, arg.Description, arg.Subject, arg.CourseNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Course
	for rows.Next() {
		var i Course
		if err := rows.Scan(
			&i.ID,
			&i.Subject,
			&i.CourseNumber,
			&i.Description,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

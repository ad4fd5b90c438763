package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationColumns = `id, animal_name, animal_type, owner_first_name, owner_last_name, start_date, end_date, notes, status, created_at`

const listReservations = `-- name: ListReservations :many
SELECT ` + reservationColumns + `
FROM reservations
ORDER BY start_date ASC, created_at ASC
`

func (q *Queries) ListReservations(ctx context.Context, db DBTX) ([]Reservations, error) {
	rows, err := db.Query(ctx, listReservations)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Reservations{}
	for rows.Next() {
		var i Reservations
		if err := scanReservation(rows, &i); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createReservation = `-- name: CreateReservation :one
INSERT INTO reservations (
    animal_name, animal_type, owner_first_name, owner_last_name,
    start_date, end_date, notes, status
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8
)
RETURNING ` + reservationColumns + `
`

type CreateReservationParams struct {
	AnimalName     string      `json:"animal_name"`
	AnimalType     string      `json:"animal_type"`
	OwnerFirstName string      `json:"owner_first_name"`
	OwnerLastName  string      `json:"owner_last_name"`
	StartDate      pgtype.Date `json:"start_date"`
	EndDate        pgtype.Date `json:"end_date"`
	Notes          pgtype.Text `json:"notes"`
	Status         string      `json:"status"`
}

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) (Reservations, error) {
	row := db.QueryRow(ctx, createReservation,
		arg.AnimalName,
		arg.AnimalType,
		arg.OwnerFirstName,
		arg.OwnerLastName,
		arg.StartDate,
		arg.EndDate,
		arg.Notes,
		arg.Status,
	)
	var i Reservations
	err := scanReservation(row, &i)
	return i, err
}

const updateReservation = `-- name: UpdateReservation :one
UPDATE reservations SET
    animal_name = $2,
    animal_type = $3,
    owner_first_name = $4,
    owner_last_name = $5,
    start_date = $6,
    end_date = $7,
    notes = $8,
    status = $9
WHERE id = $1
RETURNING ` + reservationColumns + `
`

type UpdateReservationParams struct {
	ID             uuid.UUID   `json:"id"`
	AnimalName     string      `json:"animal_name"`
	AnimalType     string      `json:"animal_type"`
	OwnerFirstName string      `json:"owner_first_name"`
	OwnerLastName  string      `json:"owner_last_name"`
	StartDate      pgtype.Date `json:"start_date"`
	EndDate        pgtype.Date `json:"end_date"`
	Notes          pgtype.Text `json:"notes"`
	Status         string      `json:"status"`
}

func (q *Queries) UpdateReservation(ctx context.Context, db DBTX, arg UpdateReservationParams) (Reservations, error) {
	row := db.QueryRow(ctx, updateReservation,
		arg.ID,
		arg.AnimalName,
		arg.AnimalType,
		arg.OwnerFirstName,
		arg.OwnerLastName,
		arg.StartDate,
		arg.EndDate,
		arg.Notes,
		arg.Status,
	)
	var i Reservations
	err := scanReservation(row, &i)
	return i, err
}

const deleteReservation = `-- name: DeleteReservation :exec
DELETE FROM reservations WHERE id = $1
`

func (q *Queries) DeleteReservation(ctx context.Context, db DBTX, id uuid.UUID) error {
	_, err := db.Exec(ctx, deleteReservation, id)
	return err
}

const countReservations = `-- name: CountReservations :one
SELECT count(*) FROM reservations
`

func (q *Queries) CountReservations(ctx context.Context, db DBTX) (int64, error) {
	row := db.QueryRow(ctx, countReservations)
	var count int64
	err := row.Scan(&count)
	return count, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReservation(row scanner, i *Reservations) error {
	return row.Scan(
		&i.ID,
		&i.AnimalName,
		&i.AnimalType,
		&i.OwnerFirstName,
		&i.OwnerLastName,
		&i.StartDate,
		&i.EndDate,
		&i.Notes,
		&i.Status,
		&i.CreatedAt,
	)
}

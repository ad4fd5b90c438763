package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Reservations struct {
	ID             uuid.UUID          `json:"id"`
	AnimalName     string             `json:"animal_name"`
	AnimalType     string             `json:"animal_type"`
	OwnerFirstName string             `json:"owner_first_name"`
	OwnerLastName  string             `json:"owner_last_name"`
	StartDate      pgtype.Date        `json:"start_date"`
	EndDate        pgtype.Date        `json:"end_date"`
	Notes          pgtype.Text        `json:"notes"`
	Status         string             `json:"status"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
}

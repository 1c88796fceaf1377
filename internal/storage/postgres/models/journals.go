package models

import (
	"context"

	"github.com/Shuon777/course-work-master/internal/domain/models"
	"github.com/Shuon777/course-work-master/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type JournalModel struct {
	DB *pgxpool.Pool
}

func (m *JournalModel) Insert(ctx context.Context, journal *models.Journal) (*models.Journal, error) {
	rows, _ := m.DB.Query(
		ctx,
		`INSERT INTO journal (film_id, client_id, journal_date_issue, journal_date_return, journal_refund)
		VALUES ($1, $2, $3, $4, $5) RETURNING *`,
		journal.FilmID,
		journal.ClientID,
		journal.DateIssue,
		journal.DateReturn,
		journal.Refund,
	)
	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Journal])
	if err != nil {
		return nil, mapError(err)
	}
	return &created, nil
}

func (m *JournalModel) List(ctx context.Context, skip, limit int) ([]models.Journal, error) {
	rows, _ := m.DB.Query(
		ctx,
		"SELECT * FROM journal ORDER BY journal_id LIMIT $1 OFFSET $2",
		limit,
		skip,
	)
	journals, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Journal])
	if err != nil {
		return nil, mapError(err)
	}
	return journals, nil
}

func (m *JournalModel) Update(ctx context.Context, journal *models.Journal) (*models.Journal, error) {
	rows, _ := m.DB.Query(
		ctx,
		`UPDATE journal SET film_id = $1, client_id = $2, journal_date_issue = $3,
		journal_date_return = $4, journal_refund = $5 WHERE journal_id = $6 RETURNING *`,
		journal.FilmID,
		journal.ClientID,
		journal.DateIssue,
		journal.DateReturn,
		journal.Refund,
		journal.ID,
	)
	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Journal])
	if err != nil {
		return nil, mapError(err)
	}
	return &updated, nil
}

func (m *JournalModel) Delete(ctx context.Context, id int) error {
	status, err := m.DB.Exec(ctx, "DELETE FROM journal WHERE journal_id = $1", id)
	if err != nil {
		return mapError(err)
	}
	if status.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (m *JournalModel) ListDetailed(ctx context.Context, skip, limit int) ([]models.JournalDetails, error) {
	rows, _ := m.DB.Query(
		ctx,
		`SELECT j.journal_id, f.film_name,
		concat(c.client_first_name, ' ', c.client_last_name) AS client_full_name,
		j.journal_date_issue, j.journal_date_return, j.journal_refund
		FROM journal j
		JOIN film f ON j.film_id = f.film_id
		JOIN client c ON j.client_id = c.client_id
		ORDER BY j.journal_id LIMIT $1 OFFSET $2`,
		limit,
		skip,
	)
	details, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JournalDetails])
	if err != nil {
		return nil, mapError(err)
	}
	return details, nil
}

// ListActive returns unsettled rows only: refund IS FALSE, so rows with a
// NULL refund flag are excluded on purpose.
func (m *JournalModel) ListActive(ctx context.Context) ([]models.RentalRow, error) {
	rows, _ := m.DB.Query(
		ctx,
		`SELECT concat(c.client_last_name, ' ', c.client_first_name) AS full_name,
		c.client_phone_number, f.film_name, j.journal_date_issue, j.journal_date_return
		FROM journal j
		JOIN client c ON j.client_id = c.client_id
		JOIN film f ON j.film_id = f.film_id
		WHERE j.journal_refund IS FALSE`,
	)
	rentals, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.RentalRow])
	if err != nil {
		return nil, mapError(err)
	}
	return rentals, nil
}

package models

import (
	"context"

	"github.com/Shuon777/course-work-master/internal/domain/models"
	"github.com/Shuon777/course-work-master/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ClientModel struct {
	DB *pgxpool.Pool
}

func (m *ClientModel) Insert(ctx context.Context, client *models.Client) (*models.Client, error) {
	rows, _ := m.DB.Query(
		ctx,
		`INSERT INTO client (client_first_name, client_last_name, client_address, client_passport, client_phone_number)
		VALUES ($1, $2, $3, $4, $5) RETURNING *`,
		client.FirstName,
		client.LastName,
		client.Address,
		client.Passport,
		client.PhoneNumber,
	)
	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Client])
	if err != nil {
		return nil, mapError(err)
	}
	return &created, nil
}

func (m *ClientModel) List(ctx context.Context, skip, limit int) ([]models.Client, error) {
	rows, _ := m.DB.Query(
		ctx,
		"SELECT * FROM client ORDER BY client_id LIMIT $1 OFFSET $2",
		limit,
		skip,
	)
	clients, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Client])
	if err != nil {
		return nil, mapError(err)
	}
	return clients, nil
}

func (m *ClientModel) Update(ctx context.Context, client *models.Client) (*models.Client, error) {
	rows, _ := m.DB.Query(
		ctx,
		`UPDATE client SET client_first_name = $1, client_last_name = $2, client_address = $3,
		client_passport = $4, client_phone_number = $5 WHERE client_id = $6 RETURNING *`,
		client.FirstName,
		client.LastName,
		client.Address,
		client.Passport,
		client.PhoneNumber,
		client.ID,
	)
	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Client])
	if err != nil {
		return nil, mapError(err)
	}
	return &updated, nil
}

func (m *ClientModel) Delete(ctx context.Context, id int) error {
	status, err := m.DB.Exec(ctx, "DELETE FROM client WHERE client_id = $1", id)
	if err != nil {
		return mapError(err)
	}
	if status.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (m *ClientModel) HasJournals(ctx context.Context, clientID int) (bool, error) {
	return exists(ctx, m.DB, "SELECT EXISTS (SELECT 1 FROM journal WHERE client_id = $1)", clientID)
}

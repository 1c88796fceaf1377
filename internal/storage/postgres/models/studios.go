package models

import (
	"context"

	"github.com/Shuon777/course-work-master/internal/domain/models"
	"github.com/Shuon777/course-work-master/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StudioModel struct {
	DB *pgxpool.Pool
}

func (m *StudioModel) Insert(ctx context.Context, name, country string) (*models.Studio, error) {
	rows, _ := m.DB.Query(
		ctx,
		"INSERT INTO studio (studio_name, studio_country) VALUES ($1, $2) RETURNING *",
		name,
		country,
	)
	studio, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Studio])
	if err != nil {
		return nil, mapError(err)
	}
	return &studio, nil
}

func (m *StudioModel) List(ctx context.Context, skip, limit int) ([]models.Studio, error) {
	rows, _ := m.DB.Query(
		ctx,
		"SELECT * FROM studio ORDER BY studio_id LIMIT $1 OFFSET $2",
		limit,
		skip,
	)
	studios, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Studio])
	if err != nil {
		return nil, mapError(err)
	}
	return studios, nil
}

func (m *StudioModel) Update(ctx context.Context, studio *models.Studio) (*models.Studio, error) {
	rows, _ := m.DB.Query(
		ctx,
		"UPDATE studio SET studio_name = $1, studio_country = $2 WHERE studio_id = $3 RETURNING *",
		studio.Name,
		studio.Country,
		studio.ID,
	)
	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Studio])
	if err != nil {
		return nil, mapError(err)
	}
	return &updated, nil
}

func (m *StudioModel) Delete(ctx context.Context, id int) error {
	status, err := m.DB.Exec(ctx, "DELETE FROM studio WHERE studio_id = $1", id)
	if err != nil {
		return mapError(err)
	}
	if status.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (m *StudioModel) HasFilms(ctx context.Context, studioID int) (bool, error) {
	return exists(ctx, m.DB, "SELECT EXISTS (SELECT 1 FROM film WHERE studio_id = $1)", studioID)
}

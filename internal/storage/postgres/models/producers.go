package models

import (
	"context"

	"github.com/Shuon777/course-work-master/internal/domain/models"
	"github.com/Shuon777/course-work-master/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProducerModel struct {
	DB *pgxpool.Pool
}

func (m *ProducerModel) Insert(ctx context.Context, name string) (*models.Producer, error) {
	rows, _ := m.DB.Query(ctx, "INSERT INTO producer (producer_name) VALUES ($1) RETURNING *", name)
	producer, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Producer])
	if err != nil {
		return nil, mapError(err)
	}
	return &producer, nil
}

func (m *ProducerModel) List(ctx context.Context, skip, limit int) ([]models.Producer, error) {
	rows, _ := m.DB.Query(
		ctx,
		"SELECT * FROM producer ORDER BY producer_id LIMIT $1 OFFSET $2",
		limit,
		skip,
	)
	producers, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Producer])
	if err != nil {
		return nil, mapError(err)
	}
	return producers, nil
}

func (m *ProducerModel) Update(ctx context.Context, producer *models.Producer) (*models.Producer, error) {
	rows, _ := m.DB.Query(
		ctx,
		"UPDATE producer SET producer_name = $1 WHERE producer_id = $2 RETURNING *",
		producer.Name,
		producer.ID,
	)
	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Producer])
	if err != nil {
		return nil, mapError(err)
	}
	return &updated, nil
}

func (m *ProducerModel) Delete(ctx context.Context, id int) error {
	status, err := m.DB.Exec(ctx, "DELETE FROM producer WHERE producer_id = $1", id)
	if err != nil {
		return mapError(err)
	}
	if status.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (m *ProducerModel) HasFilms(ctx context.Context, producerID int) (bool, error) {
	return exists(ctx, m.DB, "SELECT EXISTS (SELECT 1 FROM film WHERE producer_id = $1)", producerID)
}

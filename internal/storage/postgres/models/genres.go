package models

import (
	"context"

	"github.com/Shuon777/course-work-master/internal/domain/models"
	"github.com/Shuon777/course-work-master/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GenreModel struct {
	DB *pgxpool.Pool
}

func (m *GenreModel) Insert(ctx context.Context, name string) (*models.Genre, error) {
	rows, _ := m.DB.Query(ctx, "INSERT INTO genre (genre_name) VALUES ($1) RETURNING *", name)
	genre, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Genre])
	if err != nil {
		return nil, mapError(err)
	}
	return &genre, nil
}

func (m *GenreModel) List(ctx context.Context, skip, limit int) ([]models.Genre, error) {
	rows, _ := m.DB.Query(
		ctx,
		"SELECT * FROM genre ORDER BY genre_id LIMIT $1 OFFSET $2",
		limit,
		skip,
	)
	genres, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Genre])
	if err != nil {
		return nil, mapError(err)
	}
	return genres, nil
}

func (m *GenreModel) Update(ctx context.Context, genre *models.Genre) (*models.Genre, error) {
	rows, _ := m.DB.Query(
		ctx,
		"UPDATE genre SET genre_name = $1 WHERE genre_id = $2 RETURNING *",
		genre.Name,
		genre.ID,
	)
	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Genre])
	if err != nil {
		return nil, mapError(err)
	}
	return &updated, nil
}

func (m *GenreModel) Delete(ctx context.Context, id int) error {
	status, err := m.DB.Exec(ctx, "DELETE FROM genre WHERE genre_id = $1", id)
	if err != nil {
		return mapError(err)
	}
	if status.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (m *GenreModel) HasFilms(ctx context.Context, genreID int) (bool, error) {
	return exists(ctx, m.DB, "SELECT EXISTS (SELECT 1 FROM film WHERE genre_id = $1)", genreID)
}

package models

import (
	"context"

	"github.com/Shuon777/course-work-master/internal/domain/models"
	"github.com/Shuon777/course-work-master/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FilmographyModel struct {
	DB *pgxpool.Pool
}

func (m *FilmographyModel) Insert(ctx context.Context, filmID, actorID int) (*models.Filmography, error) {
	rows, _ := m.DB.Query(
		ctx,
		"INSERT INTO filmography (film_id, actor_id) VALUES ($1, $2) RETURNING *",
		filmID,
		actorID,
	)
	credit, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Filmography])
	if err != nil {
		return nil, mapError(err)
	}
	return &credit, nil
}

func (m *FilmographyModel) List(ctx context.Context, skip, limit int) ([]models.Filmography, error) {
	rows, _ := m.DB.Query(
		ctx,
		"SELECT * FROM filmography ORDER BY filmography_id LIMIT $1 OFFSET $2",
		limit,
		skip,
	)
	credits, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Filmography])
	if err != nil {
		return nil, mapError(err)
	}
	return credits, nil
}

func (m *FilmographyModel) Update(ctx context.Context, credit *models.Filmography) (*models.Filmography, error) {
	rows, _ := m.DB.Query(
		ctx,
		"UPDATE filmography SET film_id = $1, actor_id = $2 WHERE filmography_id = $3 RETURNING *",
		credit.FilmID,
		credit.ActorID,
		credit.ID,
	)
	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Filmography])
	if err != nil {
		return nil, mapError(err)
	}
	return &updated, nil
}

func (m *FilmographyModel) Delete(ctx context.Context, id int) error {
	status, err := m.DB.Exec(ctx, "DELETE FROM filmography WHERE filmography_id = $1", id)
	if err != nil {
		return mapError(err)
	}
	if status.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (m *FilmographyModel) ListDetailed(ctx context.Context, skip, limit int) ([]models.FilmographyDetails, error) {
	rows, _ := m.DB.Query(
		ctx,
		`SELECT fg.filmography_id, f.film_name, a.actor_name
		FROM filmography fg
		JOIN film f ON fg.film_id = f.film_id
		JOIN actor a ON fg.actor_id = a.actor_id
		ORDER BY fg.filmography_id LIMIT $1 OFFSET $2`,
		limit,
		skip,
	)
	details, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.FilmographyDetails])
	if err != nil {
		return nil, mapError(err)
	}
	return details, nil
}

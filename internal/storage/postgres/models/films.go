package models

import (
	"context"

	"github.com/Shuon777/course-work-master/internal/domain/models"
	"github.com/Shuon777/course-work-master/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FilmModel struct {
	DB *pgxpool.Pool
}

func (m *FilmModel) Insert(ctx context.Context, film *models.Film) (*models.Film, error) {
	rows, _ := m.DB.Query(
		ctx,
		`INSERT INTO film (studio_id, genre_id, producer_id, film_name, film_date_release, film_rental, film_annotation)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING *`,
		film.StudioID,
		film.GenreID,
		film.ProducerID,
		film.Name,
		film.DateRelease,
		film.Rental,
		film.Annotation,
	)
	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Film])
	if err != nil {
		return nil, mapError(err)
	}
	return &created, nil
}

func (m *FilmModel) List(ctx context.Context, skip, limit int) ([]models.Film, error) {
	rows, _ := m.DB.Query(
		ctx,
		"SELECT * FROM film ORDER BY film_id LIMIT $1 OFFSET $2",
		limit,
		skip,
	)
	films, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Film])
	if err != nil {
		return nil, mapError(err)
	}
	return films, nil
}

func (m *FilmModel) Update(ctx context.Context, film *models.Film) (*models.Film, error) {
	rows, _ := m.DB.Query(
		ctx,
		`UPDATE film SET studio_id = $1, genre_id = $2, producer_id = $3, film_name = $4,
		film_date_release = $5, film_rental = $6, film_annotation = $7 WHERE film_id = $8 RETURNING *`,
		film.StudioID,
		film.GenreID,
		film.ProducerID,
		film.Name,
		film.DateRelease,
		film.Rental,
		film.Annotation,
		film.ID,
	)
	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Film])
	if err != nil {
		return nil, mapError(err)
	}
	return &updated, nil
}

func (m *FilmModel) Delete(ctx context.Context, id int) error {
	status, err := m.DB.Exec(ctx, "DELETE FROM film WHERE film_id = $1", id)
	if err != nil {
		return mapError(err)
	}
	if status.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (m *FilmModel) HasJournals(ctx context.Context, filmID int) (bool, error) {
	return exists(ctx, m.DB, "SELECT EXISTS (SELECT 1 FROM journal WHERE film_id = $1)", filmID)
}

func (m *FilmModel) ListDetailed(ctx context.Context, skip, limit int) ([]models.FilmDetails, error) {
	rows, _ := m.DB.Query(
		ctx,
		`SELECT f.film_id, s.studio_name, g.genre_name, p.producer_name,
		f.film_name, f.film_date_release, f.film_rental, f.film_annotation
		FROM film f
		JOIN studio s ON f.studio_id = s.studio_id
		JOIN genre g ON f.genre_id = g.genre_id
		JOIN producer p ON f.producer_id = p.producer_id
		ORDER BY f.film_id LIMIT $1 OFFSET $2`,
		limit,
		skip,
	)
	details, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.FilmDetails])
	if err != nil {
		return nil, mapError(err)
	}
	return details, nil
}

// ListByProducer matches the producer name exactly, case-sensitively.
func (m *FilmModel) ListByProducer(ctx context.Context, producerName string) ([]models.ProducerFilm, error) {
	rows, _ := m.DB.Query(
		ctx,
		`SELECT p.producer_name, f.film_name, s.studio_name, f.film_date_release, f.film_rental
		FROM film f
		JOIN producer p ON f.producer_id = p.producer_id
		JOIN studio s ON f.studio_id = s.studio_id
		WHERE p.producer_name = $1`,
		producerName,
	)
	films, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ProducerFilm])
	if err != nil {
		return nil, mapError(err)
	}
	return films, nil
}

// ListGroupedByGenre orders by genre name only; row order within one genre
// follows the join and is not guaranteed stable between calls.
func (m *FilmModel) ListGroupedByGenre(ctx context.Context) ([]models.GenreFilm, error) {
	rows, _ := m.DB.Query(
		ctx,
		`SELECT g.genre_name, f.film_name, p.producer_name, s.studio_name, f.film_date_release, f.film_rental
		FROM film f
		JOIN genre g ON f.genre_id = g.genre_id
		JOIN producer p ON f.producer_id = p.producer_id
		JOIN studio s ON f.studio_id = s.studio_id
		ORDER BY g.genre_name`,
	)
	films, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.GenreFilm])
	if err != nil {
		return nil, mapError(err)
	}
	return films, nil
}

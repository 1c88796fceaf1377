package models

import (
	"context"
	"errors"

	"github.com/Shuon777/course-work-master/internal/storage"
	"github.com/Shuon777/course-work-master/internal/storage/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Models struct {
	Studios       *StudioModel
	Genres        *GenreModel
	Producers     *ProducerModel
	Actors        *ActorModel
	Clients       *ClientModel
	Films         *FilmModel
	Filmographies *FilmographyModel
	Journals      *JournalModel
	Moderators    *ModeratorModel
}

func New(db *postgres.Storage) *Models {
	return &Models{
		Studios:       &StudioModel{db.Conn},
		Genres:        &GenreModel{db.Conn},
		Producers:     &ProducerModel{db.Conn},
		Actors:        &ActorModel{db.Conn},
		Clients:       &ClientModel{db.Conn},
		Films:         &FilmModel{db.Conn},
		Filmographies: &FilmographyModel{db.Conn},
		Journals:      &JournalModel{db.Conn},
		Moderators:    &ModeratorModel{db.Conn},
	}
}

func mapError(err error) error {
	var pgxErr *pgconn.PgError
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return storage.ErrNotFound
	case errors.As(err, &pgxErr) && pgxErr.Code == postgres.UniqueViolationCode:
		return storage.ErrConflict
	case errors.As(err, &pgxErr) && pgxErr.Code == postgres.ForeignKeyViolationCode:
		return storage.ErrInvalidReference
	}
	return err
}

func exists(ctx context.Context, db *pgxpool.Pool, query string, args ...any) (bool, error) {
	var found bool
	if err := db.QueryRow(ctx, query, args...).Scan(&found); err != nil {
		return false, err
	}
	return found, nil
}

package films

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Shuon777/course-work-master/internal/domain/models"
	"github.com/Shuon777/course-work-master/internal/storage"
)

type FilmStorage interface {
	Insert(ctx context.Context, film *models.Film) (*models.Film, error)
	List(ctx context.Context, skip, limit int) ([]models.Film, error)
	Update(ctx context.Context, film *models.Film) (*models.Film, error)
	Delete(ctx context.Context, id int) error
	HasJournals(ctx context.Context, filmID int) (bool, error)
	ListDetailed(ctx context.Context, skip, limit int) ([]models.FilmDetails, error)
	ListByProducer(ctx context.Context, producerName string) ([]models.ProducerFilm, error)
	ListGroupedByGenre(ctx context.Context) ([]models.GenreFilm, error)
}

type FilmographyStorage interface {
	Insert(ctx context.Context, filmID, actorID int) (*models.Filmography, error)
	List(ctx context.Context, skip, limit int) ([]models.Filmography, error)
	Update(ctx context.Context, credit *models.Filmography) (*models.Filmography, error)
	Delete(ctx context.Context, id int) error
	ListDetailed(ctx context.Context, skip, limit int) ([]models.FilmographyDetails, error)
}

type Service struct {
	log           *slog.Logger
	films         FilmStorage
	filmographies FilmographyStorage
}

func New(log *slog.Logger, films FilmStorage, filmographies FilmographyStorage) *Service {
	return &Service{
		log:           log,
		films:         films,
		filmographies: filmographies,
	}
}

func (s *Service) CreateFilm(ctx context.Context, film *models.Film) (*models.Film, error) {
	const op = "films.Service.CreateFilm"
	log := s.log.With("op", op, "name", film.Name)
	created, err := s.films.Insert(ctx, film)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidReference) {
			log.Info("insert rejected by a foreign key")
			return nil, ErrBadReference
		}
		log.Error(err.Error())
		return nil, err
	}
	return created, nil
}

func (s *Service) ListFilms(ctx context.Context, skip, limit int) ([]models.Film, error) {
	const op = "films.Service.ListFilms"
	films, err := s.films.List(ctx, skip, limit)
	if err != nil {
		s.log.With("op", op).Error(err.Error())
		return nil, err
	}
	return films, nil
}

func (s *Service) UpdateFilm(ctx context.Context, film *models.Film) (*models.Film, error) {
	const op = "films.Service.UpdateFilm"
	log := s.log.With("op", op, "id", film.ID)
	updated, err := s.films.Update(ctx, film)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			log.Info("film not found")
			return nil, ErrFilmNotFound
		case errors.Is(err, storage.ErrInvalidReference):
			log.Info("update rejected by a foreign key")
			return nil, ErrBadReference
		}
		log.Error(err.Error())
		return nil, err
	}
	return updated, nil
}

func (s *Service) DeleteFilm(ctx context.Context, id int) error {
	const op = "films.Service.DeleteFilm"
	log := s.log.With("op", op, "id", id)
	rented, err := s.films.HasJournals(ctx, id)
	if err != nil {
		log.Error(err.Error())
		return err
	}
	if rented {
		log.Info("delete blocked by dependent journal rows")
		return ErrFilmHasRentals
	}
	if err := s.films.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("film not found")
			return ErrFilmNotFound
		}
		log.Error(err.Error())
		return err
	}
	return nil
}

func (s *Service) ListFilmsDetailed(ctx context.Context, skip, limit int) ([]models.FilmDetails, error) {
	const op = "films.Service.ListFilmsDetailed"
	details, err := s.films.ListDetailed(ctx, skip, limit)
	if err != nil {
		s.log.With("op", op).Error(err.Error())
		return nil, err
	}
	return details, nil
}

// FilmsByProducer is an exact, case-sensitive name lookup; zero matches is
// reported as not-found rather than an empty list.
func (s *Service) FilmsByProducer(ctx context.Context, producerName string) ([]models.ProducerFilm, error) {
	const op = "films.Service.FilmsByProducer"
	log := s.log.With("op", op, "producer", producerName)
	films, err := s.films.ListByProducer(ctx, producerName)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	if len(films) == 0 {
		log.Info("no films for producer")
		return nil, ErrNoFilmsForProducer
	}
	return films, nil
}

func (s *Service) FilmsGroupedByGenre(ctx context.Context) ([]models.GenreFilm, error) {
	const op = "films.Service.FilmsGroupedByGenre"
	films, err := s.films.ListGroupedByGenre(ctx)
	if err != nil {
		s.log.With("op", op).Error(err.Error())
		return nil, err
	}
	return films, nil
}

func (s *Service) CreateFilmography(ctx context.Context, filmID, actorID int) (*models.Filmography, error) {
	const op = "films.Service.CreateFilmography"
	log := s.log.With("op", op, "film_id", filmID, "actor_id", actorID)
	credit, err := s.filmographies.Insert(ctx, filmID, actorID)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidReference) {
			log.Info("insert rejected by a foreign key")
			return nil, ErrBadReference
		}
		log.Error(err.Error())
		return nil, err
	}
	return credit, nil
}

func (s *Service) ListFilmographies(ctx context.Context, skip, limit int) ([]models.Filmography, error) {
	const op = "films.Service.ListFilmographies"
	credits, err := s.filmographies.List(ctx, skip, limit)
	if err != nil {
		s.log.With("op", op).Error(err.Error())
		return nil, err
	}
	return credits, nil
}

func (s *Service) UpdateFilmography(ctx context.Context, credit *models.Filmography) (*models.Filmography, error) {
	const op = "films.Service.UpdateFilmography"
	log := s.log.With("op", op, "id", credit.ID)
	updated, err := s.filmographies.Update(ctx, credit)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			log.Info("filmography not found")
			return nil, ErrFilmographyNotFound
		case errors.Is(err, storage.ErrInvalidReference):
			log.Info("update rejected by a foreign key")
			return nil, ErrBadReference
		}
		log.Error(err.Error())
		return nil, err
	}
	return updated, nil
}

func (s *Service) DeleteFilmography(ctx context.Context, id int) error {
	const op = "films.Service.DeleteFilmography"
	log := s.log.With("op", op, "id", id)
	if err := s.filmographies.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("filmography not found")
			return ErrFilmographyNotFound
		}
		log.Error(err.Error())
		return err
	}
	return nil
}

func (s *Service) ListFilmographyDetailed(ctx context.Context, skip, limit int) ([]models.FilmographyDetails, error) {
	const op = "films.Service.ListFilmographyDetailed"
	details, err := s.filmographies.ListDetailed(ctx, skip, limit)
	if err != nil {
		s.log.With("op", op).Error(err.Error())
		return nil, err
	}
	return details, nil
}

package catalog

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Shuon777/course-work-master/internal/domain/models"
	"github.com/Shuon777/course-work-master/internal/storage"
)

type StudioStorage interface {
	Insert(ctx context.Context, name, country string) (*models.Studio, error)
	List(ctx context.Context, skip, limit int) ([]models.Studio, error)
	Update(ctx context.Context, studio *models.Studio) (*models.Studio, error)
	Delete(ctx context.Context, id int) error
	HasFilms(ctx context.Context, studioID int) (bool, error)
}

type GenreStorage interface {
	Insert(ctx context.Context, name string) (*models.Genre, error)
	List(ctx context.Context, skip, limit int) ([]models.Genre, error)
	Update(ctx context.Context, genre *models.Genre) (*models.Genre, error)
	Delete(ctx context.Context, id int) error
	HasFilms(ctx context.Context, genreID int) (bool, error)
}

type ProducerStorage interface {
	Insert(ctx context.Context, name string) (*models.Producer, error)
	List(ctx context.Context, skip, limit int) ([]models.Producer, error)
	Update(ctx context.Context, producer *models.Producer) (*models.Producer, error)
	Delete(ctx context.Context, id int) error
	HasFilms(ctx context.Context, producerID int) (bool, error)
}

type ActorStorage interface {
	Insert(ctx context.Context, name string) (*models.Actor, error)
	List(ctx context.Context, skip, limit int) ([]models.Actor, error)
	Update(ctx context.Context, actor *models.Actor) (*models.Actor, error)
	Delete(ctx context.Context, id int) error
	HasCredits(ctx context.Context, actorID int) (bool, error)
}

// Service covers the four reference tables films point at: studios, genres,
// producers and actors. None of them may be deleted while a dependent row
// still references them.
type Service struct {
	log       *slog.Logger
	studios   StudioStorage
	genres    GenreStorage
	producers ProducerStorage
	actors    ActorStorage
}

func New(log *slog.Logger, studios StudioStorage, genres GenreStorage, producers ProducerStorage, actors ActorStorage) *Service {
	return &Service{
		log:       log,
		studios:   studios,
		genres:    genres,
		producers: producers,
		actors:    actors,
	}
}

func (s *Service) CreateStudio(ctx context.Context, name, country string) (*models.Studio, error) {
	const op = "catalog.Service.CreateStudio"
	studio, err := s.studios.Insert(ctx, name, country)
	if err != nil {
		s.log.With("op", op).Error(err.Error())
		return nil, err
	}
	return studio, nil
}

func (s *Service) ListStudios(ctx context.Context, skip, limit int) ([]models.Studio, error) {
	const op = "catalog.Service.ListStudios"
	studios, err := s.studios.List(ctx, skip, limit)
	if err != nil {
		s.log.With("op", op).Error(err.Error())
		return nil, err
	}
	return studios, nil
}

func (s *Service) UpdateStudio(ctx context.Context, id int, name, country string) (*models.Studio, error) {
	const op = "catalog.Service.UpdateStudio"
	log := s.log.With("op", op, "id", id)
	studio, err := s.studios.Update(ctx, &models.Studio{ID: id, Name: name, Country: country})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("studio not found")
			return nil, ErrStudioNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return studio, nil
}

func (s *Service) DeleteStudio(ctx context.Context, id int) error {
	const op = "catalog.Service.DeleteStudio"
	log := s.log.With("op", op, "id", id)
	inUse, err := s.studios.HasFilms(ctx, id)
	if err != nil {
		log.Error(err.Error())
		return err
	}
	if inUse {
		log.Info("delete blocked by dependent films")
		return ErrStudioInUse
	}
	if err := s.studios.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("studio not found")
			return ErrStudioNotFound
		}
		log.Error(err.Error())
		return err
	}
	return nil
}

func (s *Service) CreateGenre(ctx context.Context, name string) (*models.Genre, error) {
	const op = "catalog.Service.CreateGenre"
	genre, err := s.genres.Insert(ctx, name)
	if err != nil {
		s.log.With("op", op).Error(err.Error())
		return nil, err
	}
	return genre, nil
}

func (s *Service) ListGenres(ctx context.Context, skip, limit int) ([]models.Genre, error) {
	const op = "catalog.Service.ListGenres"
	genres, err := s.genres.List(ctx, skip, limit)
	if err != nil {
		s.log.With("op", op).Error(err.Error())
		return nil, err
	}
	return genres, nil
}

func (s *Service) UpdateGenre(ctx context.Context, id int, name string) (*models.Genre, error) {
	const op = "catalog.Service.UpdateGenre"
	log := s.log.With("op", op, "id", id)
	genre, err := s.genres.Update(ctx, &models.Genre{ID: id, Name: name})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("genre not found")
			return nil, ErrGenreNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return genre, nil
}

func (s *Service) DeleteGenre(ctx context.Context, id int) error {
	const op = "catalog.Service.DeleteGenre"
	log := s.log.With("op", op, "id", id)
	inUse, err := s.genres.HasFilms(ctx, id)
	if err != nil {
		log.Error(err.Error())
		return err
	}
	if inUse {
		log.Info("delete blocked by dependent films")
		return ErrGenreInUse
	}
	if err := s.genres.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("genre not found")
			return ErrGenreNotFound
		}
		log.Error(err.Error())
		return err
	}
	return nil
}

func (s *Service) CreateProducer(ctx context.Context, name string) (*models.Producer, error) {
	const op = "catalog.Service.CreateProducer"
	producer, err := s.producers.Insert(ctx, name)
	if err != nil {
		s.log.With("op", op).Error(err.Error())
		return nil, err
	}
	return producer, nil
}

func (s *Service) ListProducers(ctx context.Context, skip, limit int) ([]models.Producer, error) {
	const op = "catalog.Service.ListProducers"
	producers, err := s.producers.List(ctx, skip, limit)
	if err != nil {
		s.log.With("op", op).Error(err.Error())
		return nil, err
	}
	return producers, nil
}

func (s *Service) UpdateProducer(ctx context.Context, id int, name string) (*models.Producer, error) {
	const op = "catalog.Service.UpdateProducer"
	log := s.log.With("op", op, "id", id)
	producer, err := s.producers.Update(ctx, &models.Producer{ID: id, Name: name})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("producer not found")
			return nil, ErrProducerNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return producer, nil
}

func (s *Service) DeleteProducer(ctx context.Context, id int) error {
	const op = "catalog.Service.DeleteProducer"
	log := s.log.With("op", op, "id", id)
	inUse, err := s.producers.HasFilms(ctx, id)
	if err != nil {
		log.Error(err.Error())
		return err
	}
	if inUse {
		log.Info("delete blocked by dependent films")
		return ErrProducerInUse
	}
	if err := s.producers.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("producer not found")
			return ErrProducerNotFound
		}
		log.Error(err.Error())
		return err
	}
	return nil
}

func (s *Service) CreateActor(ctx context.Context, name string) (*models.Actor, error) {
	const op = "catalog.Service.CreateActor"
	actor, err := s.actors.Insert(ctx, name)
	if err != nil {
		s.log.With("op", op).Error(err.Error())
		return nil, err
	}
	return actor, nil
}

func (s *Service) ListActors(ctx context.Context, skip, limit int) ([]models.Actor, error) {
	const op = "catalog.Service.ListActors"
	actors, err := s.actors.List(ctx, skip, limit)
	if err != nil {
		s.log.With("op", op).Error(err.Error())
		return nil, err
	}
	return actors, nil
}

func (s *Service) UpdateActor(ctx context.Context, id int, name string) (*models.Actor, error) {
	const op = "catalog.Service.UpdateActor"
	log := s.log.With("op", op, "id", id)
	actor, err := s.actors.Update(ctx, &models.Actor{ID: id, Name: name})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("actor not found")
			return nil, ErrActorNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return actor, nil
}

func (s *Service) DeleteActor(ctx context.Context, id int) error {
	const op = "catalog.Service.DeleteActor"
	log := s.log.With("op", op, "id", id)
	inUse, err := s.actors.HasCredits(ctx, id)
	if err != nil {
		log.Error(err.Error())
		return err
	}
	if inUse {
		log.Info("delete blocked by dependent credits")
		return ErrActorInUse
	}
	if err := s.actors.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("actor not found")
			return ErrActorNotFound
		}
		log.Error(err.Error())
		return err
	}
	return nil
}

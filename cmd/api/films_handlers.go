package main

import (
	"errors"
	"net/http"

	"github.com/Shuon777/course-work-master/internal/domain/fields"
	"github.com/Shuon777/course-work-master/internal/domain/models"
	"github.com/Shuon777/course-work-master/internal/lib/validator"
	"github.com/Shuon777/course-work-master/internal/services/films"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type filmInput struct {
	StudioID    int         `json:"studio_id" validate:"required,gt=0"`
	GenreID     int         `json:"genre_id" validate:"required,gt=0"`
	ProducerID  int         `json:"producer_id" validate:"required,gt=0"`
	Name        string      `json:"film_name" validate:"required,max=255"`
	DateRelease fields.Date `json:"film_date_release" validate:"required"`
	Rental      float64     `json:"film_rental" validate:"required,gt=0" errorMsg:"Rental price must be greater than zero"`
	Annotation  string      `json:"film_annotation" validate:"required"`
}

type filmographyInput struct {
	FilmID  int `json:"film_id" validate:"required,gt=0"`
	ActorID int `json:"actor_id" validate:"required,gt=0"`
}

func (input *filmInput) toModel(id int) *models.Film {
	return &models.Film{
		ID:          id,
		StudioID:    input.StudioID,
		GenreID:     input.GenreID,
		ProducerID:  input.ProducerID,
		Name:        input.Name,
		DateRelease: input.DateRelease,
		Rental:      input.Rental,
		Annotation:  input.Annotation,
	}
}

func (app *Application) createFilm(w http.ResponseWriter, r *http.Request) {
	var input filmInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	film, err := app.services.Films.CreateFilm(r.Context(), input.toModel(0))
	if err != nil {
		if errors.Is(err, films.ErrBadReference) {
			app.Http.BadRequest(w, r, "Referenced studio, genre or producer does not exist")
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, film)
}

func (app *Application) getFilms(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := app.readListParams(r, defaultListLimit)
	if err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	list, err := app.services.Films.ListFilms(r.Context(), skip, limit)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	render.JSON(w, r, list)
}

func (app *Application) updateFilm(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	var input filmInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	film, err := app.services.Films.UpdateFilm(r.Context(), input.toModel(id))
	if err != nil {
		switch {
		case errors.Is(err, films.ErrFilmNotFound):
			app.Http.NotFound(w, r, "Film not found")
		case errors.Is(err, films.ErrBadReference):
			app.Http.BadRequest(w, r, "Referenced studio, genre or producer does not exist")
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	render.JSON(w, r, film)
}

func (app *Application) deleteFilm(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	if err := app.services.Films.DeleteFilm(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, films.ErrFilmNotFound):
			app.Http.NotFound(w, r, "Film not found")
		case errors.Is(err, films.ErrFilmHasRentals):
			app.Http.BadRequest(w, r, "Cannot delete film: journal rows reference it")
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	render.JSON(w, r, envelop{"detail": "Film deleted successfully"})
}

func (app *Application) getFilmsDetailed(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := app.readListParams(r, defaultDetailedLimit)
	if err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	list, err := app.services.Films.ListFilmsDetailed(r.Context(), skip, limit)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	render.JSON(w, r, list)
}

func (app *Application) getFilmsByProducer(w http.ResponseWriter, r *http.Request) {
	producerName := chi.URLParam(r, "producerName")
	list, err := app.services.Films.FilmsByProducer(r.Context(), producerName)
	if err != nil {
		if errors.Is(err, films.ErrNoFilmsForProducer) {
			app.Http.NotFound(w, r, "Films not found for this producer")
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	render.JSON(w, r, list)
}

func (app *Application) getFilmsGroupedByGenre(w http.ResponseWriter, r *http.Request) {
	list, err := app.services.Films.FilmsGroupedByGenre(r.Context())
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	render.JSON(w, r, list)
}

func (app *Application) createFilmography(w http.ResponseWriter, r *http.Request) {
	var input filmographyInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	credit, err := app.services.Films.CreateFilmography(r.Context(), input.FilmID, input.ActorID)
	if err != nil {
		if errors.Is(err, films.ErrBadReference) {
			app.Http.BadRequest(w, r, "Referenced film or actor does not exist")
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, credit)
}

func (app *Application) getFilmographies(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := app.readListParams(r, defaultListLimit)
	if err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	list, err := app.services.Films.ListFilmographies(r.Context(), skip, limit)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	render.JSON(w, r, list)
}

func (app *Application) updateFilmography(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	var input filmographyInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	credit, err := app.services.Films.UpdateFilmography(r.Context(), &models.Filmography{
		ID:      id,
		FilmID:  input.FilmID,
		ActorID: input.ActorID,
	})
	if err != nil {
		switch {
		case errors.Is(err, films.ErrFilmographyNotFound):
			app.Http.NotFound(w, r, "Filmography not found")
		case errors.Is(err, films.ErrBadReference):
			app.Http.BadRequest(w, r, "Referenced film or actor does not exist")
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	render.JSON(w, r, credit)
}

func (app *Application) deleteFilmography(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	if err := app.services.Films.DeleteFilmography(r.Context(), id); err != nil {
		if errors.Is(err, films.ErrFilmographyNotFound) {
			app.Http.NotFound(w, r, "Filmography not found")
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	render.JSON(w, r, envelop{"detail": "Filmography deleted successfully"})
}

func (app *Application) getFilmographyDetailed(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := app.readListParams(r, defaultDetailedLimit)
	if err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	list, err := app.services.Films.ListFilmographyDetailed(r.Context(), skip, limit)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	render.JSON(w, r, list)
}

package main

import (
	"errors"
	"net/http"

	"github.com/Shuon777/course-work-master/internal/lib/validator"
	"github.com/Shuon777/course-work-master/internal/services/catalog"

	"github.com/go-chi/render"
)

type studioInput struct {
	Name    string `json:"studio_name" validate:"required,max=50"`
	Country string `json:"studio_country" validate:"required,max=50"`
}

type genreInput struct {
	Name string `json:"genre_name" validate:"required,max=30"`
}

type producerInput struct {
	Name string `json:"producer_name" validate:"required,max=50"`
}

type actorInput struct {
	Name string `json:"actor_name" validate:"required,max=50"`
}

func (app *Application) createStudio(w http.ResponseWriter, r *http.Request) {
	var input studioInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	studio, err := app.services.Catalog.CreateStudio(r.Context(), input.Name, input.Country)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, studio)
}

func (app *Application) getStudios(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := app.readListParams(r, defaultListLimit)
	if err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	studios, err := app.services.Catalog.ListStudios(r.Context(), skip, limit)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	render.JSON(w, r, studios)
}

func (app *Application) updateStudio(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	var input studioInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	studio, err := app.services.Catalog.UpdateStudio(r.Context(), id, input.Name, input.Country)
	if err != nil {
		if errors.Is(err, catalog.ErrStudioNotFound) {
			app.Http.NotFound(w, r, "Studio not found")
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	render.JSON(w, r, studio)
}

func (app *Application) deleteStudio(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	if err := app.services.Catalog.DeleteStudio(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, catalog.ErrStudioNotFound):
			app.Http.NotFound(w, r, "Studio not found")
		case errors.Is(err, catalog.ErrStudioInUse):
			app.Http.BadRequest(w, r, "Cannot delete studio: films reference it")
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	render.JSON(w, r, envelop{"detail": "Studio deleted successfully"})
}

func (app *Application) createGenre(w http.ResponseWriter, r *http.Request) {
	var input genreInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	genre, err := app.services.Catalog.CreateGenre(r.Context(), input.Name)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, genre)
}

func (app *Application) getGenres(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := app.readListParams(r, defaultListLimit)
	if err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	genres, err := app.services.Catalog.ListGenres(r.Context(), skip, limit)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	render.JSON(w, r, genres)
}

func (app *Application) updateGenre(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	var input genreInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	genre, err := app.services.Catalog.UpdateGenre(r.Context(), id, input.Name)
	if err != nil {
		if errors.Is(err, catalog.ErrGenreNotFound) {
			app.Http.NotFound(w, r, "Genre not found")
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	render.JSON(w, r, genre)
}

func (app *Application) deleteGenre(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	if err := app.services.Catalog.DeleteGenre(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, catalog.ErrGenreNotFound):
			app.Http.NotFound(w, r, "Genre not found")
		case errors.Is(err, catalog.ErrGenreInUse):
			app.Http.BadRequest(w, r, "Cannot delete genre: films reference it")
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	render.JSON(w, r, envelop{"detail": "Genre deleted successfully"})
}

func (app *Application) createProducer(w http.ResponseWriter, r *http.Request) {
	var input producerInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	producer, err := app.services.Catalog.CreateProducer(r.Context(), input.Name)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, producer)
}

func (app *Application) getProducers(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := app.readListParams(r, defaultListLimit)
	if err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	producers, err := app.services.Catalog.ListProducers(r.Context(), skip, limit)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	render.JSON(w, r, producers)
}

func (app *Application) updateProducer(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	var input producerInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	producer, err := app.services.Catalog.UpdateProducer(r.Context(), id, input.Name)
	if err != nil {
		if errors.Is(err, catalog.ErrProducerNotFound) {
			app.Http.NotFound(w, r, "Producer not found")
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	render.JSON(w, r, producer)
}

func (app *Application) deleteProducer(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	if err := app.services.Catalog.DeleteProducer(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, catalog.ErrProducerNotFound):
			app.Http.NotFound(w, r, "Producer not found")
		case errors.Is(err, catalog.ErrProducerInUse):
			app.Http.BadRequest(w, r, "Cannot delete producer: films reference it")
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	render.JSON(w, r, envelop{"detail": "Producer deleted successfully"})
}

func (app *Application) createActor(w http.ResponseWriter, r *http.Request) {
	var input actorInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	actor, err := app.services.Catalog.CreateActor(r.Context(), input.Name)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, actor)
}

func (app *Application) getActors(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := app.readListParams(r, defaultListLimit)
	if err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	actors, err := app.services.Catalog.ListActors(r.Context(), skip, limit)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	render.JSON(w, r, actors)
}

func (app *Application) updateActor(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	var input actorInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	actor, err := app.services.Catalog.UpdateActor(r.Context(), id, input.Name)
	if err != nil {
		if errors.Is(err, catalog.ErrActorNotFound) {
			app.Http.NotFound(w, r, "Actor not found")
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	render.JSON(w, r, actor)
}

func (app *Application) deleteActor(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	if err := app.services.Catalog.DeleteActor(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, catalog.ErrActorNotFound):
			app.Http.NotFound(w, r, "Actor not found")
		case errors.Is(err, catalog.ErrActorInUse):
			app.Http.BadRequest(w, r, "Cannot delete actor: filmography credits reference it")
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	render.JSON(w, r, envelop{"detail": "Actor deleted successfully"})
}

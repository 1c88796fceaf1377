package main

import (
	"errors"
	"net/http"

	"github.com/Shuon777/course-work-master/internal/domain/fields"
	"github.com/Shuon777/course-work-master/internal/domain/models"
	"github.com/Shuon777/course-work-master/internal/lib/validator"
	"github.com/Shuon777/course-work-master/internal/services/rentals"

	"github.com/go-chi/render"
)

type journalInput struct {
	FilmID     int                 `json:"film_id" validate:"required,gt=0"`
	ClientID   int                 `json:"client_id" validate:"required,gt=0"`
	DateIssue  fields.DayMonthDate `json:"journal_date_issue" validate:"required"`
	DateReturn fields.DayMonthDate `json:"journal_date_return" validate:"required"`
	Refund     *bool               `json:"journal_refund"`
}

func (input *journalInput) toModel(id int) *models.Journal {
	return &models.Journal{
		ID:         id,
		FilmID:     input.FilmID,
		ClientID:   input.ClientID,
		DateIssue:  input.DateIssue,
		DateReturn: input.DateReturn,
		Refund:     input.Refund,
	}
}

func (app *Application) createJournal(w http.ResponseWriter, r *http.Request) {
	var input journalInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	journal, err := app.services.Rentals.CreateJournal(r.Context(), input.toModel(0))
	if err != nil {
		switch {
		case errors.Is(err, rentals.ErrDuplicateRental):
			app.Http.BadRequest(w, r, "Journal row for this film and client already exists")
		case errors.Is(err, rentals.ErrBadReference):
			app.Http.BadRequest(w, r, "Referenced film or client does not exist")
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, journal)
}

func (app *Application) getJournals(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := app.readListParams(r, defaultListLimit)
	if err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	list, err := app.services.Rentals.ListJournals(r.Context(), skip, limit)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	render.JSON(w, r, list)
}

func (app *Application) updateJournal(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	var input journalInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	journal, err := app.services.Rentals.UpdateJournal(r.Context(), input.toModel(id))
	if err != nil {
		switch {
		case errors.Is(err, rentals.ErrJournalNotFound):
			app.Http.NotFound(w, r, "Journal not found")
		case errors.Is(err, rentals.ErrDuplicateRental):
			app.Http.BadRequest(w, r, "Journal row for this film and client already exists")
		case errors.Is(err, rentals.ErrBadReference):
			app.Http.BadRequest(w, r, "Referenced film or client does not exist")
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	render.JSON(w, r, journal)
}

func (app *Application) deleteJournal(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	if err := app.services.Rentals.DeleteJournal(r.Context(), id); err != nil {
		if errors.Is(err, rentals.ErrJournalNotFound) {
			app.Http.NotFound(w, r, "Journal not found")
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	render.JSON(w, r, envelop{"detail": "Journal deleted successfully"})
}

func (app *Application) getJournalsDetailed(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := app.readListParams(r, defaultDetailedLimit)
	if err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	list, err := app.services.Rentals.ListJournalsDetailed(r.Context(), skip, limit)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	render.JSON(w, r, list)
}

func (app *Application) getRentals(w http.ResponseWriter, r *http.Request) {
	list, err := app.services.Rentals.ActiveRentals(r.Context())
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	render.JSON(w, r, list)
}

func (app *Application) getRentalDebtors(w http.ResponseWriter, r *http.Request) {
	list, err := app.services.Rentals.RentalDebtors(r.Context())
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	render.JSON(w, r, list)
}

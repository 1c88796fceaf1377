package main

import (
	"errors"
	"net/http"

	"github.com/Shuon777/course-work-master/internal/domain/models"
	"github.com/Shuon777/course-work-master/internal/lib/validator"
	"github.com/Shuon777/course-work-master/internal/services/rentals"

	"github.com/go-chi/render"
)

type clientInput struct {
	FirstName   string `json:"client_first_name" validate:"required,max=25"`
	LastName    string `json:"client_last_name" validate:"required,max=25"`
	Address     string `json:"client_address" validate:"required,max=60"`
	Passport    string `json:"client_passport" validate:"required,max=30" errorMsg:"Passport must be unique and at most 30 characters"`
	PhoneNumber string `json:"client_phone_number" validate:"required,max=20"`
}

func (app *Application) createClient(w http.ResponseWriter, r *http.Request) {
	var input clientInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	client, err := app.services.Rentals.CreateClient(r.Context(), &models.Client{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Address:     input.Address,
		Passport:    input.Passport,
		PhoneNumber: input.PhoneNumber,
	})
	if err != nil {
		if errors.Is(err, rentals.ErrPassportTaken) {
			app.Http.BadRequest(w, r, "Client with this passport already exists")
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, client)
}

func (app *Application) getClients(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := app.readListParams(r, defaultListLimit)
	if err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	clients, err := app.services.Rentals.ListClients(r.Context(), skip, limit)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	render.JSON(w, r, clients)
}

func (app *Application) updateClient(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	var input clientInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	client, err := app.services.Rentals.UpdateClient(r.Context(), &models.Client{
		ID:          id,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Address:     input.Address,
		Passport:    input.Passport,
		PhoneNumber: input.PhoneNumber,
	})
	if err != nil {
		switch {
		case errors.Is(err, rentals.ErrClientNotFound):
			app.Http.NotFound(w, r, "Client not found")
		case errors.Is(err, rentals.ErrPassportTaken):
			app.Http.BadRequest(w, r, "Client with this passport already exists")
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	render.JSON(w, r, client)
}

func (app *Application) deleteClient(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	if err := app.services.Rentals.DeleteClient(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, rentals.ErrClientNotFound):
			app.Http.NotFound(w, r, "Client not found")
		case errors.Is(err, rentals.ErrClientHasRentals):
			app.Http.BadRequest(w, r, "Cannot delete client: journal rows reference it")
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	render.JSON(w, r, envelop{"detail": "Client deleted successfully"})
}

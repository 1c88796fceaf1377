package main

import (
	"errors"
	"net/http"

	"github.com/Shuon777/course-work-master/internal/lib/validator"
	"github.com/Shuon777/course-work-master/internal/services/auth"

	"github.com/go-chi/render"
)

type loginInput struct {
	Email    string `json:"moderator_email" validate:"required,email,max=50"`
	Password string `json:"password" validate:"required,min=6,max=255"`
}

type registerInput struct {
	Name      string `json:"moderator_name" validate:"required,max=25"`
	Email     string `json:"moderator_email" validate:"required,email,max=50"`
	Password  string `json:"password" validate:"required,min=6,max=255"`
	IsUser    *bool  `json:"is_user"`
	IsCashier bool   `json:"is_cashier"`
	IsAdmin   bool   `json:"is_admin"`
}

func (app *Application) login(w http.ResponseWriter, r *http.Request) {
	var input loginInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	profile, err := app.services.Auth.Login(r.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			app.Http.BadRequest(w, r, "Invalid credentials")
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	render.JSON(w, r, profile)
}

func (app *Application) register(w http.ResponseWriter, r *http.Request) {
	var input registerInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	isUser := true
	if input.IsUser != nil {
		isUser = *input.IsUser
	}
	moderator, err := app.services.Auth.Register(
		r.Context(),
		input.Name,
		input.Email,
		input.Password,
		isUser,
		input.IsCashier,
		input.IsAdmin,
	)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			app.Http.BadRequest(w, r, "Could not create moderator")
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, moderator)
}

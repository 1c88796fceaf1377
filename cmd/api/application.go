package main

import (
	"log/slog"

	"github.com/Shuon777/course-work-master/internal/api/tasks"
	"github.com/Shuon777/course-work-master/internal/config"
	"github.com/Shuon777/course-work-master/internal/services"
	pgmodels "github.com/Shuon777/course-work-master/internal/storage/postgres/models"

	govalidator "github.com/go-playground/validator/v10"
)

type Application struct {
	cfg       *config.Config
	log       *slog.Logger
	Http      *Http
	services  *services.Services
	validator *govalidator.Validate
	bgTasks   *tasks.BackgroundTasks
}

func NewApplication(cfg *config.Config, log *slog.Logger, repos *pgmodels.Models, bgTasks *tasks.BackgroundTasks) *Application {
	return &Application{
		cfg:       cfg,
		log:       log,
		validator: govalidator.New(govalidator.WithRequiredStructEnabled()),
		services:  services.New(log, cfg, repos, bgTasks),
		bgTasks:   bgTasks,
		Http: &Http{
			log: log,
			cfg: cfg,
		},
	}
}

package services

import (
	"log/slog"

	"github.com/Shuon777/course-work-master/internal/config"
	"github.com/Shuon777/course-work-master/internal/mails"
	"github.com/Shuon777/course-work-master/internal/services/auth"
	"github.com/Shuon777/course-work-master/internal/services/catalog"
	"github.com/Shuon777/course-work-master/internal/services/films"
	"github.com/Shuon777/course-work-master/internal/services/rentals"
	pgmodels "github.com/Shuon777/course-work-master/internal/storage/postgres/models"
)

type Services struct {
	Catalog *catalog.Service
	Films   *films.Service
	Rentals *rentals.Service
	Auth    *auth.Service
}

func New(log *slog.Logger, cfg *config.Config, repos *pgmodels.Models, taskExecutor auth.TaskExecutor) *Services {
	var mailer auth.MailProvider
	if cfg.SMTPServer.Host != "" {
		mailer = mails.New(
			cfg.SMTPServer.Host,
			cfg.SMTPServer.Port,
			cfg.SMTPServer.Timeout,
			cfg.SMTPServer.Username,
			cfg.SMTPServer.Password,
			cfg.SMTPServer.Sender,
			cfg.SMTPServer.RetriesCount,
		)
	}
	return &Services{
		Catalog: catalog.New(log, repos.Studios, repos.Genres, repos.Producers, repos.Actors),
		Films:   films.New(log, repos.Films, repos.Filmographies),
		Rentals: rentals.New(log, repos.Clients, repos.Journals),
		Auth:    auth.New(log, repos.Moderators, mailer, taskExecutor, cfg.Auth.TokenSecret, cfg.Auth.TokenTTL),
	}
}

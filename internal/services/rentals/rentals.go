package rentals

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Shuon777/course-work-master/internal/domain/models"
	"github.com/Shuon777/course-work-master/internal/storage"
)

// A rental counts as a debt once it has been out strictly longer than this
// many days. The cutoff is an absolute duration, not an offset from any
// due date: there is no due-date column to measure against.
const debtThresholdDays = 10

type ClientStorage interface {
	Insert(ctx context.Context, client *models.Client) (*models.Client, error)
	List(ctx context.Context, skip, limit int) ([]models.Client, error)
	Update(ctx context.Context, client *models.Client) (*models.Client, error)
	Delete(ctx context.Context, id int) error
	HasJournals(ctx context.Context, clientID int) (bool, error)
}

type JournalStorage interface {
	Insert(ctx context.Context, journal *models.Journal) (*models.Journal, error)
	List(ctx context.Context, skip, limit int) ([]models.Journal, error)
	Update(ctx context.Context, journal *models.Journal) (*models.Journal, error)
	Delete(ctx context.Context, id int) error
	ListDetailed(ctx context.Context, skip, limit int) ([]models.JournalDetails, error)
	ListActive(ctx context.Context) ([]models.RentalRow, error)
}

type Service struct {
	log      *slog.Logger
	clients  ClientStorage
	journals JournalStorage
}

func New(log *slog.Logger, clients ClientStorage, journals JournalStorage) *Service {
	return &Service{
		log:      log,
		clients:  clients,
		journals: journals,
	}
}

func (s *Service) CreateClient(ctx context.Context, client *models.Client) (*models.Client, error) {
	const op = "rentals.Service.CreateClient"
	log := s.log.With("op", op, "passport", client.Passport)
	created, err := s.clients.Insert(ctx, client)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			log.Info("duplicate passport")
			return nil, ErrPassportTaken
		}
		log.Error(err.Error())
		return nil, err
	}
	return created, nil
}

func (s *Service) ListClients(ctx context.Context, skip, limit int) ([]models.Client, error) {
	const op = "rentals.Service.ListClients"
	clients, err := s.clients.List(ctx, skip, limit)
	if err != nil {
		s.log.With("op", op).Error(err.Error())
		return nil, err
	}
	return clients, nil
}

func (s *Service) UpdateClient(ctx context.Context, client *models.Client) (*models.Client, error) {
	const op = "rentals.Service.UpdateClient"
	log := s.log.With("op", op, "id", client.ID)
	updated, err := s.clients.Update(ctx, client)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			log.Info("client not found")
			return nil, ErrClientNotFound
		case errors.Is(err, storage.ErrConflict):
			log.Info("duplicate passport")
			return nil, ErrPassportTaken
		}
		log.Error(err.Error())
		return nil, err
	}
	return updated, nil
}

func (s *Service) DeleteClient(ctx context.Context, id int) error {
	const op = "rentals.Service.DeleteClient"
	log := s.log.With("op", op, "id", id)
	hasRentals, err := s.clients.HasJournals(ctx, id)
	if err != nil {
		log.Error(err.Error())
		return err
	}
	if hasRentals {
		log.Info("delete blocked by dependent journal rows")
		return ErrClientHasRentals
	}
	if err := s.clients.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("client not found")
			return ErrClientNotFound
		}
		log.Error(err.Error())
		return err
	}
	return nil
}

func (s *Service) CreateJournal(ctx context.Context, journal *models.Journal) (*models.Journal, error) {
	const op = "rentals.Service.CreateJournal"
	log := s.log.With("op", op, "film_id", journal.FilmID, "client_id", journal.ClientID)
	created, err := s.journals.Insert(ctx, journal)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrConflict):
			log.Info("duplicate (film, client) pair")
			return nil, ErrDuplicateRental
		case errors.Is(err, storage.ErrInvalidReference):
			log.Info("insert rejected by a foreign key")
			return nil, ErrBadReference
		}
		log.Error(err.Error())
		return nil, err
	}
	return created, nil
}

func (s *Service) ListJournals(ctx context.Context, skip, limit int) ([]models.Journal, error) {
	const op = "rentals.Service.ListJournals"
	journals, err := s.journals.List(ctx, skip, limit)
	if err != nil {
		s.log.With("op", op).Error(err.Error())
		return nil, err
	}
	return journals, nil
}

func (s *Service) UpdateJournal(ctx context.Context, journal *models.Journal) (*models.Journal, error) {
	const op = "rentals.Service.UpdateJournal"
	log := s.log.With("op", op, "id", journal.ID)
	updated, err := s.journals.Update(ctx, journal)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			log.Info("journal not found")
			return nil, ErrJournalNotFound
		case errors.Is(err, storage.ErrConflict):
			log.Info("duplicate (film, client) pair")
			return nil, ErrDuplicateRental
		case errors.Is(err, storage.ErrInvalidReference):
			log.Info("update rejected by a foreign key")
			return nil, ErrBadReference
		}
		log.Error(err.Error())
		return nil, err
	}
	return updated, nil
}

func (s *Service) DeleteJournal(ctx context.Context, id int) error {
	const op = "rentals.Service.DeleteJournal"
	log := s.log.With("op", op, "id", id)
	if err := s.journals.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("journal not found")
			return ErrJournalNotFound
		}
		log.Error(err.Error())
		return err
	}
	return nil
}

func (s *Service) ListJournalsDetailed(ctx context.Context, skip, limit int) ([]models.JournalDetails, error) {
	const op = "rentals.Service.ListJournalsDetailed"
	details, err := s.journals.ListDetailed(ctx, skip, limit)
	if err != nil {
		s.log.With("op", op).Error(err.Error())
		return nil, err
	}
	return details, nil
}

// ActiveRentals lists unsettled journal rows with the rental duration in
// whole days derived from the issue and return dates.
func (s *Service) ActiveRentals(ctx context.Context) ([]models.Rental, error) {
	const op = "rentals.Service.ActiveRentals"
	rows, err := s.journals.ListActive(ctx)
	if err != nil {
		s.log.With("op", op).Error(err.Error())
		return nil, err
	}
	rentals := make([]models.Rental, 0, len(rows))
	for _, row := range rows {
		rentals = append(rentals, models.Rental{
			RentalRow:    row,
			DurationDays: daysBetween(row.DateIssue.Time(), row.DateReturn.Time()),
		})
	}
	return rentals, nil
}

// RentalDebtors reports the active rentals held out longer than the debt
// threshold. The day count it carries is the same raw duration the active
// listing reports, just under the rental_debt label.
func (s *Service) RentalDebtors(ctx context.Context) ([]models.RentalDebt, error) {
	const op = "rentals.Service.RentalDebtors"
	rows, err := s.journals.ListActive(ctx)
	if err != nil {
		s.log.With("op", op).Error(err.Error())
		return nil, err
	}
	debtors := make([]models.RentalDebt, 0)
	for _, row := range rows {
		days := daysBetween(row.DateIssue.Time(), row.DateReturn.Time())
		if days > debtThresholdDays {
			debtors = append(debtors, models.RentalDebt{RentalRow: row, DebtDays: days})
		}
	}
	return debtors, nil
}

// daysBetween counts whole calendar days from one date to another. Both
// values are plain dates (midnight, no zone offset), so dividing by 24h
// is exact.
func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

package rentals

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/Shuon777/course-work-master/internal/domain/fields"
	"github.com/Shuon777/course-work-master/internal/domain/models"
	"github.com/Shuon777/course-work-master/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClients struct {
	items       []models.Client
	nextID      int
	hasJournals map[int]bool
}

func (f *fakeClients) Insert(_ context.Context, client *models.Client) (*models.Client, error) {
	for _, c := range f.items {
		if c.Passport == client.Passport {
			return nil, storage.ErrConflict
		}
	}
	f.nextID++
	created := *client
	created.ID = f.nextID
	f.items = append(f.items, created)
	return &created, nil
}

func (f *fakeClients) List(_ context.Context, skip, limit int) ([]models.Client, error) {
	return f.items, nil
}

func (f *fakeClients) Update(_ context.Context, client *models.Client) (*models.Client, error) {
	for i, c := range f.items {
		if c.ID == client.ID {
			f.items[i] = *client
			return client, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *fakeClients) Delete(_ context.Context, id int) error {
	for i, c := range f.items {
		if c.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

func (f *fakeClients) HasJournals(_ context.Context, clientID int) (bool, error) {
	return f.hasJournals[clientID], nil
}

type fakeJournals struct {
	items  []models.Journal
	nextID int
	active []models.RentalRow
}

func (f *fakeJournals) Insert(_ context.Context, journal *models.Journal) (*models.Journal, error) {
	for _, j := range f.items {
		if j.FilmID == journal.FilmID && j.ClientID == journal.ClientID {
			return nil, storage.ErrConflict
		}
	}
	f.nextID++
	created := *journal
	created.ID = f.nextID
	f.items = append(f.items, created)
	return &created, nil
}

func (f *fakeJournals) List(_ context.Context, skip, limit int) ([]models.Journal, error) {
	return f.items, nil
}

func (f *fakeJournals) Update(_ context.Context, journal *models.Journal) (*models.Journal, error) {
	for i, j := range f.items {
		if j.ID == journal.ID {
			f.items[i] = *journal
			return journal, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *fakeJournals) Delete(_ context.Context, id int) error {
	for i, j := range f.items {
		if j.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

func (f *fakeJournals) ListDetailed(_ context.Context, skip, limit int) ([]models.JournalDetails, error) {
	return []models.JournalDetails{}, nil
}

func (f *fakeJournals) ListActive(_ context.Context) ([]models.RentalRow, error) {
	return f.active, nil
}

func newTestService(clients *fakeClients, journals *fakeJournals) *Service {
	return New(slog.Default(), clients, journals)
}

func day(y int, m time.Month, d int) fields.Date {
	return fields.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func rentalRow(name string, issue, ret fields.Date) models.RentalRow {
	return models.RentalRow{
		FullName:    name,
		PhoneNumber: "555-0100",
		FilmName:    "The Matrix",
		DateIssue:   issue,
		DateReturn:  ret,
	}
}

func TestActiveRentalsDuration(t *testing.T) {
	journals := &fakeJournals{active: []models.RentalRow{
		rentalRow("Doe John", day(2024, 1, 1), day(2024, 1, 5)),
	}}
	svc := newTestService(&fakeClients{hasJournals: map[int]bool{}}, journals)

	rentals, err := svc.ActiveRentals(context.Background())
	require.NoError(t, err)
	require.Len(t, rentals, 1)
	assert.Equal(t, 4, rentals[0].DurationDays)
	assert.Equal(t, "Doe John", rentals[0].FullName)
}

func TestDebtorCutoff(t *testing.T) {
	journals := &fakeJournals{active: []models.RentalRow{
		rentalRow("Short Loan", day(2024, 1, 1), day(2024, 1, 11)),   // 10 days, on the line
		rentalRow("Long Loan", day(2024, 1, 1), day(2024, 1, 20)),    // 19 days
		rentalRow("Longer Loan", day(2024, 1, 1), day(2024, 2, 1)),   // 31 days
	}}
	svc := newTestService(&fakeClients{hasJournals: map[int]bool{}}, journals)
	ctx := context.Background()

	rentals, err := svc.ActiveRentals(ctx)
	require.NoError(t, err)
	assert.Len(t, rentals, 3)

	debtors, err := svc.RentalDebtors(ctx)
	require.NoError(t, err)
	require.Len(t, debtors, 2)
	assert.Equal(t, "Long Loan", debtors[0].FullName)
	assert.Equal(t, 19, debtors[0].DebtDays)
	assert.Equal(t, 31, debtors[1].DebtDays)
}

func TestNineteenDayRowAppearsInBothReports(t *testing.T) {
	journals := &fakeJournals{active: []models.RentalRow{
		rentalRow("Long Loan", day(2024, 1, 1), day(2024, 1, 20)),
	}}
	svc := newTestService(&fakeClients{hasJournals: map[int]bool{}}, journals)
	ctx := context.Background()

	rentals, err := svc.ActiveRentals(ctx)
	require.NoError(t, err)
	require.Len(t, rentals, 1)
	assert.Equal(t, 19, rentals[0].DurationDays)

	debtors, err := svc.RentalDebtors(ctx)
	require.NoError(t, err)
	require.Len(t, debtors, 1)
	assert.Equal(t, 19, debtors[0].DebtDays)
}

func TestDaysBetween(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, daysBetween(from, from))
	assert.Equal(t, 4, daysBetween(from, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 31, daysBetween(from, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
}

func TestCreateJournalDuplicatePair(t *testing.T) {
	journals := &fakeJournals{}
	svc := newTestService(&fakeClients{hasJournals: map[int]bool{}}, journals)
	ctx := context.Background()

	journal := &models.Journal{FilmID: 1, ClientID: 2}
	_, err := svc.CreateJournal(ctx, journal)
	require.NoError(t, err)

	_, err = svc.CreateJournal(ctx, journal)
	assert.ErrorIs(t, err, ErrDuplicateRental)
}

func TestDeleteClientGuardedByJournals(t *testing.T) {
	clients := &fakeClients{hasJournals: map[int]bool{}}
	svc := newTestService(clients, &fakeJournals{})
	ctx := context.Background()

	client, err := svc.CreateClient(ctx, &models.Client{FirstName: "John", LastName: "Doe", Passport: "AB123"})
	require.NoError(t, err)

	clients.hasJournals[client.ID] = true
	assert.ErrorIs(t, svc.DeleteClient(ctx, client.ID), ErrClientHasRentals)

	clients.hasJournals[client.ID] = false
	require.NoError(t, svc.DeleteClient(ctx, client.ID))
	assert.ErrorIs(t, svc.DeleteClient(ctx, client.ID), ErrClientNotFound)
}

func TestDuplicatePassport(t *testing.T) {
	svc := newTestService(&fakeClients{hasJournals: map[int]bool{}}, &fakeJournals{})
	ctx := context.Background()

	_, err := svc.CreateClient(ctx, &models.Client{FirstName: "John", LastName: "Doe", Passport: "AB123"})
	require.NoError(t, err)
	_, err = svc.CreateClient(ctx, &models.Client{FirstName: "Jane", LastName: "Roe", Passport: "AB123"})
	assert.ErrorIs(t, err, ErrPassportTaken)
}

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/Shuon777/course-work-master/internal/config"
	"github.com/Shuon777/course-work-master/internal/domain/fields"
	"github.com/Shuon777/course-work-master/internal/domain/models"
	"github.com/Shuon777/course-work-master/internal/services"
	"github.com/Shuon777/course-work-master/internal/services/auth"
	"github.com/Shuon777/course-work-master/internal/services/catalog"
	"github.com/Shuon777/course-work-master/internal/services/films"
	"github.com/Shuon777/course-work-master/internal/services/rentals"
	"github.com/Shuon777/course-work-master/internal/storage"

	govalidator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory stand-in for the postgres repositories. It keeps
// the same referential rules the database enforces: FK checks on insert and
// the unique (film, client) journal pair.
type fakeStore struct {
	seq        int
	studios    []models.Studio
	genres     []models.Genre
	producers  []models.Producer
	actors     []models.Actor
	clients    []models.Client
	films      []models.Film
	credits    []models.Filmography
	journals   []models.Journal
	moderators []models.Moderator
}

func (s *fakeStore) nextID() int {
	s.seq++
	return s.seq
}

func itoa(i int) string { return strconv.Itoa(i) }

func toDayMonth(d fields.Date) fields.DayMonthDate { return fields.DayMonthDate(d.Time()) }

func toDate(d fields.DayMonthDate) fields.Date { return fields.Date(d.Time()) }

func page[T any](items []T, skip, limit int) []T {
	if skip >= len(items) {
		return []T{}
	}
	end := skip + limit
	if end > len(items) {
		end = len(items)
	}
	return items[skip:end]
}

func (s *fakeStore) studioByID(id int) *models.Studio {
	for i := range s.studios {
		if s.studios[i].ID == id {
			return &s.studios[i]
		}
	}
	return nil
}

func (s *fakeStore) genreByID(id int) *models.Genre {
	for i := range s.genres {
		if s.genres[i].ID == id {
			return &s.genres[i]
		}
	}
	return nil
}

func (s *fakeStore) producerByID(id int) *models.Producer {
	for i := range s.producers {
		if s.producers[i].ID == id {
			return &s.producers[i]
		}
	}
	return nil
}

func (s *fakeStore) actorByID(id int) *models.Actor {
	for i := range s.actors {
		if s.actors[i].ID == id {
			return &s.actors[i]
		}
	}
	return nil
}

func (s *fakeStore) clientByID(id int) *models.Client {
	for i := range s.clients {
		if s.clients[i].ID == id {
			return &s.clients[i]
		}
	}
	return nil
}

func (s *fakeStore) filmByID(id int) *models.Film {
	for i := range s.films {
		if s.films[i].ID == id {
			return &s.films[i]
		}
	}
	return nil
}

type fakeStudioRepo struct{ s *fakeStore }

func (r fakeStudioRepo) Insert(_ context.Context, name, country string) (*models.Studio, error) {
	studio := models.Studio{ID: r.s.nextID(), Name: name, Country: country}
	r.s.studios = append(r.s.studios, studio)
	return &studio, nil
}

func (r fakeStudioRepo) List(_ context.Context, skip, limit int) ([]models.Studio, error) {
	return page(r.s.studios, skip, limit), nil
}

func (r fakeStudioRepo) Update(_ context.Context, studio *models.Studio) (*models.Studio, error) {
	existing := r.s.studioByID(studio.ID)
	if existing == nil {
		return nil, storage.ErrNotFound
	}
	*existing = *studio
	return studio, nil
}

func (r fakeStudioRepo) Delete(_ context.Context, id int) error {
	for i := range r.s.studios {
		if r.s.studios[i].ID == id {
			r.s.studios = append(r.s.studios[:i], r.s.studios[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

func (r fakeStudioRepo) HasFilms(_ context.Context, studioID int) (bool, error) {
	for _, f := range r.s.films {
		if f.StudioID == studioID {
			return true, nil
		}
	}
	return false, nil
}

type fakeGenreRepo struct{ s *fakeStore }

func (r fakeGenreRepo) Insert(_ context.Context, name string) (*models.Genre, error) {
	genre := models.Genre{ID: r.s.nextID(), Name: name}
	r.s.genres = append(r.s.genres, genre)
	return &genre, nil
}

func (r fakeGenreRepo) List(_ context.Context, skip, limit int) ([]models.Genre, error) {
	return page(r.s.genres, skip, limit), nil
}

func (r fakeGenreRepo) Update(_ context.Context, genre *models.Genre) (*models.Genre, error) {
	existing := r.s.genreByID(genre.ID)
	if existing == nil {
		return nil, storage.ErrNotFound
	}
	*existing = *genre
	return genre, nil
}

func (r fakeGenreRepo) Delete(_ context.Context, id int) error {
	for i := range r.s.genres {
		if r.s.genres[i].ID == id {
			r.s.genres = append(r.s.genres[:i], r.s.genres[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

func (r fakeGenreRepo) HasFilms(_ context.Context, genreID int) (bool, error) {
	for _, f := range r.s.films {
		if f.GenreID == genreID {
			return true, nil
		}
	}
	return false, nil
}

type fakeProducerRepo struct{ s *fakeStore }

func (r fakeProducerRepo) Insert(_ context.Context, name string) (*models.Producer, error) {
	producer := models.Producer{ID: r.s.nextID(), Name: name}
	r.s.producers = append(r.s.producers, producer)
	return &producer, nil
}

func (r fakeProducerRepo) List(_ context.Context, skip, limit int) ([]models.Producer, error) {
	return page(r.s.producers, skip, limit), nil
}

func (r fakeProducerRepo) Update(_ context.Context, producer *models.Producer) (*models.Producer, error) {
	existing := r.s.producerByID(producer.ID)
	if existing == nil {
		return nil, storage.ErrNotFound
	}
	*existing = *producer
	return producer, nil
}

func (r fakeProducerRepo) Delete(_ context.Context, id int) error {
	for i := range r.s.producers {
		if r.s.producers[i].ID == id {
			r.s.producers = append(r.s.producers[:i], r.s.producers[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

func (r fakeProducerRepo) HasFilms(_ context.Context, producerID int) (bool, error) {
	for _, f := range r.s.films {
		if f.ProducerID == producerID {
			return true, nil
		}
	}
	return false, nil
}

type fakeActorRepo struct{ s *fakeStore }

func (r fakeActorRepo) Insert(_ context.Context, name string) (*models.Actor, error) {
	actor := models.Actor{ID: r.s.nextID(), Name: name}
	r.s.actors = append(r.s.actors, actor)
	return &actor, nil
}

func (r fakeActorRepo) List(_ context.Context, skip, limit int) ([]models.Actor, error) {
	return page(r.s.actors, skip, limit), nil
}

func (r fakeActorRepo) Update(_ context.Context, actor *models.Actor) (*models.Actor, error) {
	existing := r.s.actorByID(actor.ID)
	if existing == nil {
		return nil, storage.ErrNotFound
	}
	*existing = *actor
	return actor, nil
}

func (r fakeActorRepo) Delete(_ context.Context, id int) error {
	for i := range r.s.actors {
		if r.s.actors[i].ID == id {
			r.s.actors = append(r.s.actors[:i], r.s.actors[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

func (r fakeActorRepo) HasCredits(_ context.Context, actorID int) (bool, error) {
	for _, c := range r.s.credits {
		if c.ActorID == actorID {
			return true, nil
		}
	}
	return false, nil
}

type fakeClientRepo struct{ s *fakeStore }

func (r fakeClientRepo) Insert(_ context.Context, client *models.Client) (*models.Client, error) {
	for _, c := range r.s.clients {
		if c.Passport == client.Passport {
			return nil, storage.ErrConflict
		}
	}
	created := *client
	created.ID = r.s.nextID()
	r.s.clients = append(r.s.clients, created)
	return &created, nil
}

func (r fakeClientRepo) List(_ context.Context, skip, limit int) ([]models.Client, error) {
	return page(r.s.clients, skip, limit), nil
}

func (r fakeClientRepo) Update(_ context.Context, client *models.Client) (*models.Client, error) {
	existing := r.s.clientByID(client.ID)
	if existing == nil {
		return nil, storage.ErrNotFound
	}
	for _, c := range r.s.clients {
		if c.Passport == client.Passport && c.ID != client.ID {
			return nil, storage.ErrConflict
		}
	}
	*existing = *client
	return client, nil
}

func (r fakeClientRepo) Delete(_ context.Context, id int) error {
	for i := range r.s.clients {
		if r.s.clients[i].ID == id {
			r.s.clients = append(r.s.clients[:i], r.s.clients[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

func (r fakeClientRepo) HasJournals(_ context.Context, clientID int) (bool, error) {
	for _, j := range r.s.journals {
		if j.ClientID == clientID {
			return true, nil
		}
	}
	return false, nil
}

type fakeFilmRepo struct{ s *fakeStore }

func (r fakeFilmRepo) checkRefs(film *models.Film) error {
	if r.s.studioByID(film.StudioID) == nil ||
		r.s.genreByID(film.GenreID) == nil ||
		r.s.producerByID(film.ProducerID) == nil {
		return storage.ErrInvalidReference
	}
	return nil
}

func (r fakeFilmRepo) Insert(_ context.Context, film *models.Film) (*models.Film, error) {
	if err := r.checkRefs(film); err != nil {
		return nil, err
	}
	created := *film
	created.ID = r.s.nextID()
	r.s.films = append(r.s.films, created)
	return &created, nil
}

func (r fakeFilmRepo) List(_ context.Context, skip, limit int) ([]models.Film, error) {
	return page(r.s.films, skip, limit), nil
}

func (r fakeFilmRepo) Update(_ context.Context, film *models.Film) (*models.Film, error) {
	existing := r.s.filmByID(film.ID)
	if existing == nil {
		return nil, storage.ErrNotFound
	}
	if err := r.checkRefs(film); err != nil {
		return nil, err
	}
	*existing = *film
	return film, nil
}

func (r fakeFilmRepo) Delete(_ context.Context, id int) error {
	for i := range r.s.films {
		if r.s.films[i].ID == id {
			r.s.films = append(r.s.films[:i], r.s.films[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

func (r fakeFilmRepo) HasJournals(_ context.Context, filmID int) (bool, error) {
	for _, j := range r.s.journals {
		if j.FilmID == filmID {
			return true, nil
		}
	}
	return false, nil
}

func (r fakeFilmRepo) ListDetailed(_ context.Context, skip, limit int) ([]models.FilmDetails, error) {
	details := make([]models.FilmDetails, 0, len(r.s.films))
	for _, f := range r.s.films {
		details = append(details, models.FilmDetails{
			FilmID:       f.ID,
			StudioName:   r.s.studioByID(f.StudioID).Name,
			GenreName:    r.s.genreByID(f.GenreID).Name,
			ProducerName: r.s.producerByID(f.ProducerID).Name,
			FilmName:     f.Name,
			DateRelease:  toDayMonth(f.DateRelease),
			Rental:       f.Rental,
			Annotation:   f.Annotation,
		})
	}
	return page(details, skip, limit), nil
}

func (r fakeFilmRepo) ListByProducer(_ context.Context, producerName string) ([]models.ProducerFilm, error) {
	rows := []models.ProducerFilm{}
	for _, f := range r.s.films {
		producer := r.s.producerByID(f.ProducerID)
		if producer.Name != producerName {
			continue
		}
		rows = append(rows, models.ProducerFilm{
			ProducerName: producer.Name,
			FilmName:     f.Name,
			StudioName:   r.s.studioByID(f.StudioID).Name,
			DateRelease:  f.DateRelease,
			Rental:       f.Rental,
		})
	}
	return rows, nil
}

func (r fakeFilmRepo) ListGroupedByGenre(_ context.Context) ([]models.GenreFilm, error) {
	rows := []models.GenreFilm{}
	for _, g := range r.s.genres {
		for _, f := range r.s.films {
			if f.GenreID != g.ID {
				continue
			}
			rows = append(rows, models.GenreFilm{
				GenreName:    g.Name,
				FilmName:     f.Name,
				ProducerName: r.s.producerByID(f.ProducerID).Name,
				StudioName:   r.s.studioByID(f.StudioID).Name,
				DateRelease:  f.DateRelease,
				Rental:       f.Rental,
			})
		}
	}
	return rows, nil
}

type fakeFilmographyRepo struct{ s *fakeStore }

func (r fakeFilmographyRepo) Insert(_ context.Context, filmID, actorID int) (*models.Filmography, error) {
	if r.s.filmByID(filmID) == nil || r.s.actorByID(actorID) == nil {
		return nil, storage.ErrInvalidReference
	}
	credit := models.Filmography{ID: r.s.nextID(), FilmID: filmID, ActorID: actorID}
	r.s.credits = append(r.s.credits, credit)
	return &credit, nil
}

func (r fakeFilmographyRepo) List(_ context.Context, skip, limit int) ([]models.Filmography, error) {
	return page(r.s.credits, skip, limit), nil
}

func (r fakeFilmographyRepo) Update(_ context.Context, credit *models.Filmography) (*models.Filmography, error) {
	for i := range r.s.credits {
		if r.s.credits[i].ID == credit.ID {
			if r.s.filmByID(credit.FilmID) == nil || r.s.actorByID(credit.ActorID) == nil {
				return nil, storage.ErrInvalidReference
			}
			r.s.credits[i] = *credit
			return credit, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (r fakeFilmographyRepo) Delete(_ context.Context, id int) error {
	for i := range r.s.credits {
		if r.s.credits[i].ID == id {
			r.s.credits = append(r.s.credits[:i], r.s.credits[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

func (r fakeFilmographyRepo) ListDetailed(_ context.Context, skip, limit int) ([]models.FilmographyDetails, error) {
	details := make([]models.FilmographyDetails, 0, len(r.s.credits))
	for _, c := range r.s.credits {
		details = append(details, models.FilmographyDetails{
			FilmographyID: c.ID,
			FilmName:      r.s.filmByID(c.FilmID).Name,
			ActorName:     r.s.actorByID(c.ActorID).Name,
		})
	}
	return page(details, skip, limit), nil
}

type fakeJournalRepo struct{ s *fakeStore }

func (r fakeJournalRepo) check(journal *models.Journal) error {
	if r.s.filmByID(journal.FilmID) == nil || r.s.clientByID(journal.ClientID) == nil {
		return storage.ErrInvalidReference
	}
	for _, j := range r.s.journals {
		if j.FilmID == journal.FilmID && j.ClientID == journal.ClientID && j.ID != journal.ID {
			return storage.ErrConflict
		}
	}
	return nil
}

func (r fakeJournalRepo) Insert(_ context.Context, journal *models.Journal) (*models.Journal, error) {
	if err := r.check(journal); err != nil {
		return nil, err
	}
	created := *journal
	created.ID = r.s.nextID()
	r.s.journals = append(r.s.journals, created)
	return &created, nil
}

func (r fakeJournalRepo) List(_ context.Context, skip, limit int) ([]models.Journal, error) {
	return page(r.s.journals, skip, limit), nil
}

func (r fakeJournalRepo) Update(_ context.Context, journal *models.Journal) (*models.Journal, error) {
	for i := range r.s.journals {
		if r.s.journals[i].ID == journal.ID {
			if err := r.check(journal); err != nil {
				return nil, err
			}
			r.s.journals[i] = *journal
			return journal, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (r fakeJournalRepo) Delete(_ context.Context, id int) error {
	for i := range r.s.journals {
		if r.s.journals[i].ID == id {
			r.s.journals = append(r.s.journals[:i], r.s.journals[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

func (r fakeJournalRepo) ListDetailed(_ context.Context, skip, limit int) ([]models.JournalDetails, error) {
	details := make([]models.JournalDetails, 0, len(r.s.journals))
	for _, j := range r.s.journals {
		client := r.s.clientByID(j.ClientID)
		details = append(details, models.JournalDetails{
			JournalID:      j.ID,
			FilmName:       r.s.filmByID(j.FilmID).Name,
			ClientFullName: client.FirstName + " " + client.LastName,
			DateIssue:      j.DateIssue,
			DateReturn:     j.DateReturn,
			Refund:         j.Refund,
		})
	}
	return page(details, skip, limit), nil
}

func (r fakeJournalRepo) ListActive(_ context.Context) ([]models.RentalRow, error) {
	rows := []models.RentalRow{}
	for _, j := range r.s.journals {
		if j.Refund == nil || *j.Refund {
			continue
		}
		client := r.s.clientByID(j.ClientID)
		rows = append(rows, models.RentalRow{
			FullName:    client.LastName + " " + client.FirstName,
			PhoneNumber: client.PhoneNumber,
			FilmName:    r.s.filmByID(j.FilmID).Name,
			DateIssue:   toDate(j.DateIssue),
			DateReturn:  toDate(j.DateReturn),
		})
	}
	return rows, nil
}

type fakeModeratorRepo struct{ s *fakeStore }

func (r fakeModeratorRepo) Insert(_ context.Context, name, email, passwordHash string, isUser, isCashier, isAdmin bool) (*models.Moderator, error) {
	for _, m := range r.s.moderators {
		if m.Email == email {
			return nil, storage.ErrConflict
		}
	}
	moderator := models.Moderator{
		ID:           r.s.nextID(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		IsUser:       isUser,
		IsCashier:    isCashier,
		IsAdmin:      isAdmin,
	}
	r.s.moderators = append(r.s.moderators, moderator)
	return &moderator, nil
}

func (r fakeModeratorRepo) GetByEmail(_ context.Context, email string) (*models.Moderator, error) {
	for i := range r.s.moderators {
		if r.s.moderators[i].Email == email {
			return &r.s.moderators[i], nil
		}
	}
	return nil, storage.ErrNotFound
}

func newTestApplication(t *testing.T) (*Application, *fakeStore) {
	t.Helper()
	cfg := &config.Config{
		Debug: false,
		CORS:  config.CORS{AllowedOrigin: "http://localhost:3000"},
		Auth:  config.Auth{TokenSecret: "test-secret", TokenTTL: 30 * time.Minute},
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := &fakeStore{}
	svcs := &services.Services{
		Catalog: catalog.New(log, fakeStudioRepo{store}, fakeGenreRepo{store}, fakeProducerRepo{store}, fakeActorRepo{store}),
		Films:   films.New(log, fakeFilmRepo{store}, fakeFilmographyRepo{store}),
		Rentals: rentals.New(log, fakeClientRepo{store}, fakeJournalRepo{store}),
		Auth:    auth.New(log, fakeModeratorRepo{store}, nil, nil, cfg.Auth.TokenSecret, cfg.Auth.TokenTTL),
	}
	app := &Application{
		cfg:       cfg,
		log:       log,
		validator: govalidator.New(govalidator.WithRequiredStructEnabled()),
		services:  svcs,
		Http:      &Http{log: log, cfg: cfg},
	}
	return app, store
}

func (app *Application) testRequest(t *testing.T, method, path string, body any) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}
	request := httptest.NewRequest(method, path, reader)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	app.routes().ServeHTTP(recorder, request)
	return recorder.Code, recorder.Body.Bytes()
}

func decodeBody[T any](t *testing.T, body []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

// seedCatalog inserts one studio, genre, producer and actor and returns their ids.
func seedCatalog(t *testing.T, app *Application) (studioID, genreID, producerID, actorID int) {
	t.Helper()
	code, body := app.testRequest(t, http.MethodPost, "/studios/", map[string]any{
		"studio_name": "Warner Bros.", "studio_country": "USA",
	})
	require.Equal(t, http.StatusCreated, code, string(body))
	studioID = int(decodeBody[map[string]any](t, body)["studio_id"].(float64))

	code, body = app.testRequest(t, http.MethodPost, "/genres/", map[string]any{"genre_name": "Sci-Fi"})
	require.Equal(t, http.StatusCreated, code, string(body))
	genreID = int(decodeBody[map[string]any](t, body)["genre_id"].(float64))

	code, body = app.testRequest(t, http.MethodPost, "/producers/", map[string]any{"producer_name": "Lana Wachowski"})
	require.Equal(t, http.StatusCreated, code, string(body))
	producerID = int(decodeBody[map[string]any](t, body)["producer_id"].(float64))

	code, body = app.testRequest(t, http.MethodPost, "/actors/", map[string]any{"actor_name": "Keanu Reeves"})
	require.Equal(t, http.StatusCreated, code, string(body))
	actorID = int(decodeBody[map[string]any](t, body)["actor_id"].(float64))
	return
}

func seedFilm(t *testing.T, app *Application, studioID, genreID, producerID int, name string) int {
	t.Helper()
	code, body := app.testRequest(t, http.MethodPost, "/films/", map[string]any{
		"studio_id":         studioID,
		"genre_id":          genreID,
		"producer_id":       producerID,
		"film_name":         name,
		"film_date_release": "1999-03-31",
		"film_rental":       4.99,
		"film_annotation":   "a hacker learns the truth",
	})
	require.Equal(t, http.StatusCreated, code, string(body))
	return int(decodeBody[map[string]any](t, body)["film_id"].(float64))
}

func seedClient(t *testing.T, app *Application, passport string) int {
	t.Helper()
	code, body := app.testRequest(t, http.MethodPost, "/clients/", map[string]any{
		"client_first_name":   "John",
		"client_last_name":    "Doe",
		"client_address":      "1 Main St",
		"client_passport":     passport,
		"client_phone_number": "555-0100",
	})
	require.Equal(t, http.StatusCreated, code, string(body))
	return int(decodeBody[map[string]any](t, body)["client_id"].(float64))
}

func seedJournal(t *testing.T, app *Application, filmID, clientID int, issue, ret string, refund bool) int {
	t.Helper()
	code, body := app.testRequest(t, http.MethodPost, "/journals/", map[string]any{
		"film_id":             filmID,
		"client_id":           clientID,
		"journal_date_issue":  issue,
		"journal_date_return": ret,
		"journal_refund":      refund,
	})
	require.Equal(t, http.StatusCreated, code, string(body))
	return int(decodeBody[map[string]any](t, body)["journal_id"].(float64))
}

package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (app *Application) routes() http.Handler {
	router := chi.NewRouter()
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		app.Http.NotFound(w, r, "Page not found")
	})
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(app.Recoverer)
	router.Use(app.RateLimiter)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{app.cfg.CORS.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	router.Get("/healthcheck", app.healthcheck)

	router.Route("/studios", func(r chi.Router) {
		r.Post("/", app.createStudio)
		r.Get("/", app.getStudios)
		r.Put("/{id}", app.updateStudio)
		r.Delete("/{id}", app.deleteStudio)
	})
	router.Route("/genres", func(r chi.Router) {
		r.Post("/", app.createGenre)
		r.Get("/", app.getGenres)
		r.Put("/{id}", app.updateGenre)
		r.Delete("/{id}", app.deleteGenre)
	})
	router.Route("/producers", func(r chi.Router) {
		r.Post("/", app.createProducer)
		r.Get("/", app.getProducers)
		r.Put("/{id}", app.updateProducer)
		r.Delete("/{id}", app.deleteProducer)
	})
	router.Route("/actors", func(r chi.Router) {
		r.Post("/", app.createActor)
		r.Get("/", app.getActors)
		r.Put("/{id}", app.updateActor)
		r.Delete("/{id}", app.deleteActor)
	})
	router.Route("/clients", func(r chi.Router) {
		r.Post("/", app.createClient)
		r.Get("/", app.getClients)
		r.Put("/{id}", app.updateClient)
		r.Delete("/{id}", app.deleteClient)
	})
	router.Route("/films", func(r chi.Router) {
		r.Post("/", app.createFilm)
		r.Get("/", app.getFilms)
		r.Get("/grouped_by_genre", app.getFilmsGroupedByGenre)
		r.Get("/by_producer/{producerName}", app.getFilmsByProducer)
		r.Put("/{id}", app.updateFilm)
		r.Delete("/{id}", app.deleteFilm)
	})
	router.Route("/filmographies", func(r chi.Router) {
		r.Post("/", app.createFilmography)
		r.Get("/", app.getFilmographies)
		r.Put("/{id}", app.updateFilmography)
		r.Delete("/{id}", app.deleteFilmography)
	})
	router.Route("/journals", func(r chi.Router) {
		r.Post("/", app.createJournal)
		r.Get("/", app.getJournals)
		r.Put("/{id}", app.updateJournal)
		r.Delete("/{id}", app.deleteJournal)
	})

	router.Get("/journals_detailed/", app.getJournalsDetailed)
	router.Get("/films_detailed/", app.getFilmsDetailed)
	router.Get("/filmography_detailed/", app.getFilmographyDetailed)
	router.Get("/rentals", app.getRentals)
	router.Get("/rental_debtors", app.getRentalDebtors)

	router.Post("/login", app.login)
	router.Post("/register", app.register)

	return router
}

package models

import (
	"time"

	"github.com/Shuon777/course-work-master/internal/domain/fields"
)

type Moderator struct {
	ID           int       `json:"moderator_id" db:"moderator_id"`
	Name         string    `json:"moderator_name" db:"moderator_name"`
	Email        string    `json:"moderator_email" db:"moderator_email"`
	PasswordHash string    `json:"-" db:"hashed_password"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	IsUser       bool      `json:"is_user" db:"is_user"`
	IsCashier    bool      `json:"is_cashier" db:"is_cashier"`
	IsAdmin      bool      `json:"is_admin" db:"is_admin"`
}

type Studio struct {
	ID      int    `json:"studio_id" db:"studio_id"`
	Name    string `json:"studio_name" db:"studio_name"`
	Country string `json:"studio_country" db:"studio_country"`
}

type Genre struct {
	ID   int    `json:"genre_id" db:"genre_id"`
	Name string `json:"genre_name" db:"genre_name"`
}

type Producer struct {
	ID   int    `json:"producer_id" db:"producer_id"`
	Name string `json:"producer_name" db:"producer_name"`
}

type Actor struct {
	ID   int    `json:"actor_id" db:"actor_id"`
	Name string `json:"actor_name" db:"actor_name"`
}

type Client struct {
	ID          int       `json:"client_id" db:"client_id"`
	FirstName   string    `json:"client_first_name" db:"client_first_name"`
	LastName    string    `json:"client_last_name" db:"client_last_name"`
	Address     string    `json:"client_address" db:"client_address"`
	Passport    string    `json:"client_passport" db:"client_passport"`
	PhoneNumber string    `json:"client_phone_number" db:"client_phone_number"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type Film struct {
	ID          int         `json:"film_id" db:"film_id"`
	StudioID    int         `json:"studio_id" db:"studio_id"`
	GenreID     int         `json:"genre_id" db:"genre_id"`
	ProducerID  int         `json:"producer_id" db:"producer_id"`
	Name        string      `json:"film_name" db:"film_name"`
	DateRelease fields.Date `json:"film_date_release" db:"film_date_release"`
	Rental      float64     `json:"film_rental" db:"film_rental"`
	Annotation  string      `json:"film_annotation" db:"film_annotation"`
}

// Filmography is one credit instance linking an actor to a film. The same
// (film, actor) pair may appear more than once.
type Filmography struct {
	ID      int `json:"filmography_id" db:"filmography_id"`
	FilmID  int `json:"film_id" db:"film_id"`
	ActorID int `json:"actor_id" db:"actor_id"`
}

// Journal is a rental transaction. Refund is nil until the row is settled
// one way or the other; a client may hold at most one journal row per film.
type Journal struct {
	ID         int                 `json:"journal_id" db:"journal_id"`
	FilmID     int                 `json:"film_id" db:"film_id"`
	ClientID   int                 `json:"client_id" db:"client_id"`
	DateIssue  fields.DayMonthDate `json:"journal_date_issue" db:"journal_date_issue"`
	DateReturn fields.DayMonthDate `json:"journal_date_return" db:"journal_date_return"`
	Refund     *bool               `json:"journal_refund" db:"journal_refund"`
}

// Read-only report projections.

type JournalDetails struct {
	JournalID      int                 `json:"journal_id" db:"journal_id"`
	FilmName       string              `json:"film_name" db:"film_name"`
	ClientFullName string              `json:"client_full_name" db:"client_full_name"`
	DateIssue      fields.DayMonthDate `json:"journal_date_issue" db:"journal_date_issue"`
	DateReturn     fields.DayMonthDate `json:"journal_date_return" db:"journal_date_return"`
	Refund         *bool               `json:"journal_refund" db:"journal_refund"`
}

type FilmDetails struct {
	FilmID       int                 `json:"film_id" db:"film_id"`
	StudioName   string              `json:"studio_name" db:"studio_name"`
	GenreName    string              `json:"genre_name" db:"genre_name"`
	ProducerName string              `json:"producer_name" db:"producer_name"`
	FilmName     string              `json:"film_name" db:"film_name"`
	DateRelease  fields.DayMonthDate `json:"film_date_release" db:"film_date_release"`
	Rental       float64             `json:"film_rental" db:"film_rental"`
	Annotation   string              `json:"film_annotation" db:"film_annotation"`
}

type FilmographyDetails struct {
	FilmographyID int    `json:"filmography_id" db:"filmography_id"`
	FilmName      string `json:"film_name" db:"film_name"`
	ActorName     string `json:"actor_name" db:"actor_name"`
}

// RentalRow is an unsettled journal row joined with its client and film.
// The day counts derived from it are added by the rentals service.
type RentalRow struct {
	FullName    string      `json:"full_name" db:"full_name"`
	PhoneNumber string      `json:"client_phone_number" db:"client_phone_number"`
	FilmName    string      `json:"film_name" db:"film_name"`
	DateIssue   fields.Date `json:"journal_date_issue" db:"journal_date_issue"`
	DateReturn  fields.Date `json:"journal_date_return" db:"journal_date_return"`
}

type Rental struct {
	RentalRow
	DurationDays int `json:"rental_duration"`
}

type RentalDebt struct {
	RentalRow
	DebtDays int `json:"rental_debt"`
}

type ProducerFilm struct {
	ProducerName string      `json:"producer_name" db:"producer_name"`
	FilmName     string      `json:"film_name" db:"film_name"`
	StudioName   string      `json:"studio_name" db:"studio_name"`
	DateRelease  fields.Date `json:"film_date_release" db:"film_date_release"`
	Rental       float64     `json:"film_rental" db:"film_rental"`
}

type GenreFilm struct {
	GenreName    string      `json:"genre_name" db:"genre_name"`
	FilmName     string      `json:"film_name" db:"film_name"`
	ProducerName string      `json:"producer_name" db:"producer_name"`
	StudioName   string      `json:"studio_name" db:"studio_name"`
	DateRelease  fields.Date `json:"film_date_release" db:"film_date_release"`
	Rental       float64     `json:"film_rental" db:"film_rental"`
}

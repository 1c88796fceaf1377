package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Storage struct {
	Conn *pgxpool.Pool
}

const (
	UniqueViolationCode     = "23505"
	ForeignKeyViolationCode = "23503"
)

func New(ctx context.Context, dsn string, maxConns int, maxConnIdleTime time.Duration) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = int32(maxConns)
	cfg.MaxConnIdleTime = maxConnIdleTime
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}
	return &Storage{Conn: pool}, nil
}

// Bootstrap creates the schema on first start. Foreign keys are declared
// ON DELETE CASCADE at the storage level, but the services never let the
// cascade fire: every guarded delete is preceded by an explicit
// dependent-row check and rejected while dependents exist.
func (s *Storage) Bootstrap(ctx context.Context) error {
	_, err := s.Conn.Exec(ctx, schemaDDL)
	return err
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS moderator (
	moderator_id serial PRIMARY KEY,
	moderator_name varchar(25) NOT NULL,
	moderator_email varchar(50) NOT NULL UNIQUE,
	hashed_password varchar(255) NOT NULL,
	created_at timestamp NOT NULL DEFAULT now(),
	is_user boolean NOT NULL DEFAULT false,
	is_cashier boolean NOT NULL DEFAULT false,
	is_admin boolean NOT NULL DEFAULT false
);

CREATE TABLE IF NOT EXISTS studio (
	studio_id serial PRIMARY KEY,
	studio_name varchar(50) NOT NULL,
	studio_country varchar(50) NOT NULL
);

CREATE TABLE IF NOT EXISTS genre (
	genre_id serial PRIMARY KEY,
	genre_name varchar(30) NOT NULL
);

CREATE TABLE IF NOT EXISTS producer (
	producer_id serial PRIMARY KEY,
	producer_name varchar(50) NOT NULL
);

CREATE TABLE IF NOT EXISTS actor (
	actor_id serial PRIMARY KEY,
	actor_name varchar(50) NOT NULL
);

CREATE TABLE IF NOT EXISTS client (
	client_id serial PRIMARY KEY,
	client_first_name varchar(25) NOT NULL,
	client_last_name varchar(25) NOT NULL,
	client_address varchar(60) NOT NULL,
	client_passport varchar(30) NOT NULL UNIQUE,
	client_phone_number varchar(20) NOT NULL,
	created_at timestamp NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS film (
	film_id serial PRIMARY KEY,
	studio_id integer NOT NULL REFERENCES studio (studio_id) ON DELETE CASCADE ON UPDATE CASCADE,
	genre_id integer NOT NULL REFERENCES genre (genre_id) ON DELETE CASCADE ON UPDATE CASCADE,
	producer_id integer NOT NULL REFERENCES producer (producer_id) ON DELETE CASCADE ON UPDATE CASCADE,
	film_name varchar(255) NOT NULL,
	film_date_release date NOT NULL,
	film_rental numeric(10, 2) NOT NULL,
	film_annotation text NOT NULL
);

CREATE TABLE IF NOT EXISTS filmography (
	filmography_id serial PRIMARY KEY,
	film_id integer NOT NULL REFERENCES film (film_id) ON DELETE CASCADE ON UPDATE CASCADE,
	actor_id integer NOT NULL REFERENCES actor (actor_id) ON DELETE CASCADE ON UPDATE CASCADE
);

CREATE TABLE IF NOT EXISTS journal (
	journal_id serial PRIMARY KEY,
	film_id integer NOT NULL REFERENCES film (film_id) ON DELETE CASCADE ON UPDATE CASCADE,
	client_id integer NOT NULL REFERENCES client (client_id) ON DELETE CASCADE ON UPDATE CASCADE,
	journal_date_issue date NOT NULL,
	journal_date_return date NOT NULL,
	journal_refund boolean,
	CONSTRAINT uq_journal_film_client UNIQUE (film_id, client_id)
);
`

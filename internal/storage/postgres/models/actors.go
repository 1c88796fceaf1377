package models

import (
	"context"

	"github.com/Shuon777/course-work-master/internal/domain/models"
	"github.com/Shuon777/course-work-master/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ActorModel struct {
	DB *pgxpool.Pool
}

func (m *ActorModel) Insert(ctx context.Context, name string) (*models.Actor, error) {
	rows, _ := m.DB.Query(ctx, "INSERT INTO actor (actor_name) VALUES ($1) RETURNING *", name)
	actor, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Actor])
	if err != nil {
		return nil, mapError(err)
	}
	return &actor, nil
}

func (m *ActorModel) List(ctx context.Context, skip, limit int) ([]models.Actor, error) {
	rows, _ := m.DB.Query(
		ctx,
		"SELECT * FROM actor ORDER BY actor_id LIMIT $1 OFFSET $2",
		limit,
		skip,
	)
	actors, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Actor])
	if err != nil {
		return nil, mapError(err)
	}
	return actors, nil
}

func (m *ActorModel) Update(ctx context.Context, actor *models.Actor) (*models.Actor, error) {
	rows, _ := m.DB.Query(
		ctx,
		"UPDATE actor SET actor_name = $1 WHERE actor_id = $2 RETURNING *",
		actor.Name,
		actor.ID,
	)
	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Actor])
	if err != nil {
		return nil, mapError(err)
	}
	return &updated, nil
}

func (m *ActorModel) Delete(ctx context.Context, id int) error {
	status, err := m.DB.Exec(ctx, "DELETE FROM actor WHERE actor_id = $1", id)
	if err != nil {
		return mapError(err)
	}
	if status.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (m *ActorModel) HasCredits(ctx context.Context, actorID int) (bool, error) {
	return exists(ctx, m.DB, "SELECT EXISTS (SELECT 1 FROM filmography WHERE actor_id = $1)", actorID)
}

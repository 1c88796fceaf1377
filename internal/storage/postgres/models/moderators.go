package models

import (
	"context"

	"github.com/Shuon777/course-work-master/internal/domain/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ModeratorModel struct {
	DB *pgxpool.Pool
}

func (m *ModeratorModel) Insert(ctx context.Context, name, email, passwordHash string, isUser, isCashier, isAdmin bool) (*models.Moderator, error) {
	rows, _ := m.DB.Query(
		ctx,
		`INSERT INTO moderator (moderator_name, moderator_email, hashed_password, is_user, is_cashier, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING *`,
		name,
		email,
		passwordHash,
		isUser,
		isCashier,
		isAdmin,
	)
	moderator, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Moderator])
	if err != nil {
		return nil, mapError(err)
	}
	return &moderator, nil
}

func (m *ModeratorModel) GetByEmail(ctx context.Context, email string) (*models.Moderator, error) {
	rows, _ := m.DB.Query(ctx, "SELECT * FROM moderator WHERE moderator_email = $1", email)
	moderator, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Moderator])
	if err != nil {
		return nil, mapError(err)
	}
	return &moderator, nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type StatsRepository interface {
	Snapshot(ctx context.Context) (*Stats, error)
}

// Stats is a small admin-facing aggregate over the whole datastore.
type Stats struct {
	Accounts       int `json:"accounts" db:"accounts"`
	Posts          int `json:"posts" db:"posts"`
	Comments       int `json:"comments" db:"comments"`
	PendingReports int `json:"pendingReports" db:"pending_reports"`
}

type statsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Snapshot(ctx context.Context) (*Stats, error) {
	var stats Stats

	err := r.db.GetContext(ctx, &stats, `
			SELECT
				(SELECT COUNT(*) FROM accounts) AS accounts,
				(SELECT COUNT(*) FROM posts) AS posts,
				(SELECT COUNT(*) FROM comments) AS comments,
				(SELECT COUNT(*) FROM reports WHERE status = 'Pending') AS pending_reports
		`)

	if err != nil {
		return nil, fmt.Errorf("ошибка при сборе статистики базы данных: %w", err)
	}

	return &stats, nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"animeverse/internal/models"
)

type banRepository struct {
	db *sqlx.DB
}

func NewBanRepository(db *sqlx.DB) BanRepository {
	return &banRepository{db: db}
}

// Create appends a temporary-ban audit record. There is no Update or Delete:
// the history of suspensions is immutable.
func (r *banRepository) Create(ctx context.Context, ban *models.TemporaryBan) (int64, error) {
	query := `
		INSERT INTO temporary_bans (account_id, reason, duration_hours)
		VALUES ($1, $2, $3)
		RETURNING ban_id
	`

	var banID int64
	err := r.db.GetContext(ctx, &banID, query, ban.AccountID, ban.Reason, ban.DurationHours)
	if err != nil {
		return 0, fmt.Errorf("ошибка при записи временного бана: %w", err)
	}

	ban.BanID = banID
	return banID, nil
}

func (r *banRepository) GetByAccountID(ctx context.Context, accountID int64) ([]models.TemporaryBan, error) {
	query := `SELECT * FROM temporary_bans WHERE account_id = $1 ORDER BY created_at DESC`

	var bans []models.TemporaryBan
	err := r.db.SelectContext(ctx, &bans, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении банов аккаунта: %w", err)
	}

	return bans, nil
}

func (r *banRepository) GetAll(ctx context.Context) ([]models.TemporaryBan, error) {
	query := `SELECT * FROM temporary_bans ORDER BY created_at DESC`

	var bans []models.TemporaryBan
	err := r.db.SelectContext(ctx, &bans, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка банов: %w", err)
	}

	return bans, nil
}

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"animeverse/internal/models"
)

type ratingRepository struct {
	db *sqlx.DB
}

func NewRatingRepository(db *sqlx.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert writes the rating of one author for one post; rating the same post
// again replaces the previous value instead of adding a second row.
func (r *ratingRepository) Upsert(ctx context.Context, rating *models.Rating) error {
	query := `
		INSERT INTO ratings (post_id, author_id, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (post_id, author_id) DO UPDATE SET value = EXCLUDED.value
		RETURNING rating_id
	`

	var ratingID int64
	err := r.db.GetContext(ctx, &ratingID, query, rating.PostID, rating.AuthorID, rating.Value)
	if err != nil {
		return fmt.Errorf("ошибка при сохранении оценки: %w", err)
	}

	rating.RatingID = ratingID
	return nil
}

// AverageForPost returns the arithmetic mean of all rating values for the post,
// or nil when the post has no ratings. AVG over zero rows yields SQL NULL, so
// there is no division by zero to guard against.
func (r *ratingRepository) AverageForPost(ctx context.Context, postID int64) (*float64, error) {
	query := `SELECT AVG(value) FROM ratings WHERE post_id = $1`

	var avg sql.NullFloat64
	err := r.db.GetContext(ctx, &avg, query, postID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при вычислении средней оценки: %w", err)
	}

	if !avg.Valid {
		return nil, nil
	}

	return &avg.Float64, nil
}

func (r *ratingRepository) CountForPost(ctx context.Context, postID int64) (int, error) {
	var count int

	query := `SELECT COUNT(*) FROM ratings WHERE post_id = $1`

	err := r.db.GetContext(ctx, &count, query, postID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте оценок: %w", err)
	}

	return count, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"animeverse/internal/models"
)

type topicRepository struct {
	db *sqlx.DB
}

func NewTopicRepository(db *sqlx.DB) TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) GetAll(ctx context.Context) ([]models.Topic, error) {
	query := `SELECT * FROM topics ORDER BY topic_id`

	var topics []models.Topic
	err := r.db.SelectContext(ctx, &topics, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка тем: %w", err)
	}

	return topics, nil
}

func (r *topicRepository) GetByID(ctx context.Context, topicID int64) (*models.Topic, error) {
	query := `SELECT * FROM topics WHERE topic_id = $1`

	var topic models.Topic
	err := r.db.GetContext(ctx, &topic, query, topicID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("тема с ID %d: %w", topicID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении темы: %w", err)
	}

	return &topic, nil
}

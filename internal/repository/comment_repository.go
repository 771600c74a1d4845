package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"animeverse/internal/models"
)

type commentRepository struct {
	db *sqlx.DB
}

type CreateCommentRequest struct {
	PostID   int64  `json:"postId"`
	AuthorID int64  `json:"authorId"`
	Content  string `json:"content"`
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) (int64, error) {
	query := `
		INSERT INTO comments (post_id, author_id, content)
		VALUES ($1, $2, $3)
		RETURNING comment_id
	`

	var commentID int64
	err := r.db.GetContext(ctx, &commentID, query, comment.PostID, comment.AuthorID, comment.Content)
	if err != nil {
		return 0, fmt.Errorf("ошибка при создании комментария: %w", err)
	}

	comment.CommentID = commentID
	return commentID, nil
}

func (r *commentRepository) GetByID(ctx context.Context, commentID int64) (*models.Comment, error) {
	query := `SELECT * FROM comments WHERE comment_id = $1`

	var comment models.Comment
	err := r.db.GetContext(ctx, &comment, query, commentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("комментарий с ID %d: %w", commentID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении комментария: %w", err)
	}

	return &comment, nil
}

func (r *commentRepository) GetByPostID(ctx context.Context, postID int64) ([]models.Comment, error) {
	query := `SELECT * FROM comments WHERE post_id = $1 ORDER BY created_at`

	var comments []models.Comment
	err := r.db.SelectContext(ctx, &comments, query, postID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении комментариев поста: %w", err)
	}

	return comments, nil
}

func (r *commentRepository) Delete(ctx context.Context, commentID int64) error {
	query := `DELETE FROM comments WHERE comment_id = $1`

	result, err := r.db.ExecContext(ctx, query, commentID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении комментария: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("комментарий с ID %d: %w", commentID, ErrNotFound)
	}

	return nil
}

func (r *commentRepository) SetBanMeta(ctx context.Context, commentID int64, reason string) error {
	query := `UPDATE comments SET banned_at = CURRENT_TIMESTAMP, ban_reason = $2 WHERE comment_id = $1`

	result, err := r.db.ExecContext(ctx, query, commentID, reason)
	if err != nil {
		return fmt.Errorf("ошибка при блокировке комментария: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("комментарий с ID %d: %w", commentID, ErrNotFound)
	}

	return nil
}

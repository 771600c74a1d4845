package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"animeverse/internal/models"
)

type postRepository struct {
	db *sqlx.DB
}

type CreatePostRequest struct {
	AuthorID int64  `json:"authorId"`
	TopicID  int64  `json:"topicId"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}

type UpdatePostRequest struct {
	PostID  int64  `json:"postId"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) (int64, error) {
	query := `
		INSERT INTO posts (author_id, topic_id, title, content, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING post_id
	`

	post.CreatedAt = time.Now()

	var postID int64
	err := r.db.GetContext(ctx, &postID, query,
		post.AuthorID, post.TopicID, post.Title, post.Content, post.ImageURL)
	if err != nil {
		return 0, fmt.Errorf("ошибка при создании поста: %w", err)
	}

	post.PostID = postID
	return postID, nil
}

func (r *postRepository) GetByID(ctx context.Context, postID int64) (*models.Post, error) {
	query := `SELECT * FROM posts WHERE post_id = $1`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пост с ID %d: %w", postID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

func (r *postRepository) GetByAuthorID(ctx context.Context, authorID int64) ([]models.Post, error) {
	query := `SELECT * FROM posts WHERE author_id = $1 ORDER BY created_at DESC`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов автора: %w", err)
	}

	return posts, nil
}

func (r *postRepository) GetByTopicID(ctx context.Context, topicID int64) ([]models.Post, error) {
	query := `SELECT * FROM posts WHERE topic_id = $1 ORDER BY created_at DESC`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, topicID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов темы: %w", err)
	}

	return posts, nil
}

func (r *postRepository) GetAll(ctx context.Context, limit, offset int) ([]models.Post, error) {
	query := `SELECT * FROM posts ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении ленты постов: %w", err)
	}

	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	existingPost, err := r.GetByID(ctx, post.PostID)
	if err != nil {
		return err
	}

	if existingPost.AuthorID != post.AuthorID {
		return errors.New("нельзя изменить автора поста")
	}

	query := `
		UPDATE posts SET
			title = :title,
			content = :content,
			topic_id = :topic_id
		WHERE post_id = :post_id AND author_id = :author_id
	`

	result, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост с ID %d: %w", post.PostID, ErrNotFound)
	}

	return nil
}

// Delete removes the post row; comments and ratings follow by ON DELETE CASCADE.
func (r *postRepository) Delete(ctx context.Context, postID int64) error {
	query := `DELETE FROM posts WHERE post_id = $1`

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост с ID %d: %w", postID, ErrNotFound)
	}

	return nil
}

func (r *postRepository) IncrementLikes(ctx context.Context, postID int64) error {
	query := `UPDATE posts SET like_count = like_count + 1 WHERE post_id = $1`

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("ошибка при увеличении счётчика лайков: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост с ID %d: %w", postID, ErrNotFound)
	}

	return nil
}

// IncrementComments shifts the denormalized comment counter by delta
// (+1 on comment create, -1 on comment delete). The counter never drops
// below zero.
func (r *postRepository) IncrementComments(ctx context.Context, postID int64, delta int) error {
	query := `UPDATE posts SET comment_count = GREATEST(comment_count + $2, 0) WHERE post_id = $1`

	result, err := r.db.ExecContext(ctx, query, postID, delta)
	if err != nil {
		return fmt.Errorf("ошибка при изменении счётчика комментариев: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост с ID %d: %w", postID, ErrNotFound)
	}

	return nil
}

func (r *postRepository) SetImageURL(ctx context.Context, postID int64, imageURL *string) error {
	query := `UPDATE posts SET image_url = $2 WHERE post_id = $1`

	result, err := r.db.ExecContext(ctx, query, postID, imageURL)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении изображения поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост с ID %d: %w", postID, ErrNotFound)
	}

	return nil
}

func (r *postRepository) SetBanMeta(ctx context.Context, postID int64, reason string) error {
	query := `UPDATE posts SET banned_at = CURRENT_TIMESTAMP, ban_reason = $2 WHERE post_id = $1`

	result, err := r.db.ExecContext(ctx, query, postID, reason)
	if err != nil {
		return fmt.Errorf("ошибка при блокировке поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост с ID %d: %w", postID, ErrNotFound)
	}

	return nil
}

func (r *postRepository) Count(ctx context.Context) (int, error) {
	var count int

	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM posts`)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте постов: %w", err)
	}

	return count, nil
}

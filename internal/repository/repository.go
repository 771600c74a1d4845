package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"animeverse/internal/models"
)

type AccountRepository interface {
	Create(ctx context.Context, account *models.Account, password string) (int64, error)
	GetByID(ctx context.Context, accountID int64) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetByHandle(ctx context.Context, handle string) (*models.Account, error)
	GetAll(ctx context.Context) ([]models.Account, error)
	Update(ctx context.Context, account *models.Account) error
	SetBanned(ctx context.Context, accountID int64, banned bool) error
	Delete(ctx context.Context, accountID int64) error
	VerifyPassword(ctx context.Context, email, password string) (*models.Account, error)
	Count(ctx context.Context) (int, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) (int64, error)
	GetByID(ctx context.Context, postID int64) (*models.Post, error)
	GetByAuthorID(ctx context.Context, authorID int64) ([]models.Post, error)
	GetByTopicID(ctx context.Context, topicID int64) ([]models.Post, error)
	GetAll(ctx context.Context, limit, offset int) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, postID int64) error
	IncrementLikes(ctx context.Context, postID int64) error
	IncrementComments(ctx context.Context, postID int64, delta int) error
	SetImageURL(ctx context.Context, postID int64, imageURL *string) error
	SetBanMeta(ctx context.Context, postID int64, reason string) error
	Count(ctx context.Context) (int, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) (int64, error)
	GetByID(ctx context.Context, commentID int64) (*models.Comment, error)
	GetByPostID(ctx context.Context, postID int64) ([]models.Comment, error)
	Delete(ctx context.Context, commentID int64) error
	SetBanMeta(ctx context.Context, commentID int64, reason string) error
}

type RatingRepository interface {
	Upsert(ctx context.Context, rating *models.Rating) error
	AverageForPost(ctx context.Context, postID int64) (*float64, error)
	CountForPost(ctx context.Context, postID int64) (int, error)
}

type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) (int64, error)
	GetByID(ctx context.Context, reportID int64) (*models.Report, error)
	GetAll(ctx context.Context) ([]models.Report, error)
	GetByStatus(ctx context.Context, status string) ([]models.Report, error)
	Resolve(ctx context.Context, reportID int64, status string) error
	CountPending(ctx context.Context) (int, error)
}

type BanRepository interface {
	Create(ctx context.Context, ban *models.TemporaryBan) (int64, error)
	GetByAccountID(ctx context.Context, accountID int64) ([]models.TemporaryBan, error)
	GetAll(ctx context.Context) ([]models.TemporaryBan, error)
}

type TopicRepository interface {
	GetAll(ctx context.Context) ([]models.Topic, error)
	GetByID(ctx context.Context, topicID int64) (*models.Topic, error)
}

type Repository struct {
	Account AccountRepository
	Post    PostRepository
	Comment CommentRepository
	Rating  RatingRepository
	Report  ReportRepository
	Ban     BanRepository
	Topic   TopicRepository
	Stats   StatsRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Account: NewAccountRepository(db),
		Post:    NewPostRepository(db),
		Comment: NewCommentRepository(db),
		Rating:  NewRatingRepository(db),
		Report:  NewReportRepository(db),
		Ban:     NewBanRepository(db),
		Topic:   NewTopicRepository(db),
		Stats:   NewStatsRepository(db),
	}
}

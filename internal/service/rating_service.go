package service

import (
	"context"

	"animeverse/internal/models"
	"animeverse/internal/repository"
	"animeverse/internal/validation"
)

type RatingService interface {
	RatePost(ctx context.Context, postID, authorID int64, value int) error
	AverageRating(ctx context.Context, postID int64) (*float64, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	postRepo   repository.PostRepository
}

func NewRatingService(ratingRepo repository.RatingRepository, postRepo repository.PostRepository) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		postRepo:   postRepo,
	}
}

// RatePost stores the author's rating of the post; the value is constrained
// to [1,5]. Rating the same post twice replaces the earlier value.
func (s *ratingService) RatePost(ctx context.Context, postID, authorID int64, value int) error {
	if value < 1 || value > 5 {
		return validation.FieldErrors{{Field: "value", Reason: validation.ReasonInvalidFormat}}
	}

	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return err
	}

	rating := &models.Rating{
		PostID:   postID,
		AuthorID: authorID,
		Value:    value,
	}

	return s.ratingRepo.Upsert(ctx, rating)
}

// AverageRating returns nil for a post with no ratings.
func (s *ratingService) AverageRating(ctx context.Context, postID int64) (*float64, error) {
	return s.ratingRepo.AverageForPost(ctx, postID)
}

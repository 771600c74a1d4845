package service

import (
	"context"

	"animeverse/internal/models"
	"animeverse/internal/repository"
	"animeverse/internal/validation"
)

type CommentService interface {
	AddComment(ctx context.Context, req repository.CreateCommentRequest) (*models.Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]models.Comment, error)
	DeleteComment(ctx context.Context, actorID int64, actorRole string, commentID int64) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

func (s *commentService) AddComment(ctx context.Context, req repository.CreateCommentRequest) (*models.Comment, error) {
	if errs := validation.Collect(
		validation.Required("content", req.Content),
	); errs != nil {
		return nil, errs
	}

	if _, err := s.postRepo.GetByID(ctx, req.PostID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:   req.PostID,
		AuthorID: req.AuthorID,
		Content:  req.Content,
	}

	_, err := s.commentRepo.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	if err := s.postRepo.IncrementComments(ctx, req.PostID, 1); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *commentService) ListByPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	return s.commentRepo.GetByPostID(ctx, postID)
}

func (s *commentService) DeleteComment(ctx context.Context, actorID int64, actorRole string, commentID int64) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if comment.AuthorID != actorID && !canModerate(actorRole) {
		return ErrForbidden
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return err
	}

	return s.postRepo.IncrementComments(ctx, comment.PostID, -1)
}

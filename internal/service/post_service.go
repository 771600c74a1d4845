package service

import (
	"context"
	"fmt"
	"io"

	"animeverse/internal/config"
	"animeverse/internal/models"
	"animeverse/internal/repository"
	"animeverse/internal/storage"
	"animeverse/internal/validation"
)

type PostService interface {
	CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error)
	GetPost(ctx context.Context, postID int64) (*models.Post, error)
	ListPosts(ctx context.Context, limit, offset int) ([]models.Post, error)
	ListByTopic(ctx context.Context, topicID int64) ([]models.Post, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]models.Post, error)
	UpdatePost(ctx context.Context, authorID int64, req repository.UpdatePostRequest) error
	DeletePost(ctx context.Context, actorID int64, actorRole string, postID int64) error
	LikePost(ctx context.Context, postID int64) error
	AttachImage(ctx context.Context, actorID int64, actorRole string, postID int64, fileName string, file io.Reader, size int64) (string, error)
	RemoveImage(ctx context.Context, actorID int64, actorRole string, postID int64) error
}

type postService struct {
	postRepo  repository.PostRepository
	topicRepo repository.TopicRepository
	storage   storage.Storage
	cfg       *config.Config
}

func NewPostService(postRepo repository.PostRepository, topicRepo repository.TopicRepository, storage storage.Storage, cfg *config.Config) PostService {
	return &postService{
		postRepo:  postRepo,
		topicRepo: topicRepo,
		storage:   storage,
		cfg:       cfg,
	}
}

func (p *postService) CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error) {
	if errs := validation.Collect(
		validation.Required("title", req.Title),
		validation.Required("content", req.Content),
	); errs != nil {
		return nil, errs
	}

	// the topic reference must point at an existing lookup row
	if _, err := p.topicRepo.GetByID(ctx, req.TopicID); err != nil {
		return nil, err
	}

	post := &models.Post{
		AuthorID: req.AuthorID,
		TopicID:  req.TopicID,
		Title:    req.Title,
		Content:  req.Content,
	}

	_, err := p.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) GetPost(ctx context.Context, postID int64) (*models.Post, error) {
	return p.postRepo.GetByID(ctx, postID)
}

func (p *postService) ListPosts(ctx context.Context, limit, offset int) ([]models.Post, error) {
	return p.postRepo.GetAll(ctx, limit, offset)
}

func (p *postService) ListByTopic(ctx context.Context, topicID int64) ([]models.Post, error) {
	return p.postRepo.GetByTopicID(ctx, topicID)
}

func (p *postService) ListByAuthor(ctx context.Context, authorID int64) ([]models.Post, error) {
	return p.postRepo.GetByAuthorID(ctx, authorID)
}

func (p *postService) UpdatePost(ctx context.Context, authorID int64, req repository.UpdatePostRequest) error {
	if errs := validation.Collect(
		validation.Required("title", req.Title),
		validation.Required("content", req.Content),
	); errs != nil {
		return errs
	}

	post, err := p.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return err
	}

	// editing is author-only, moderators ban content instead of rewriting it
	if post.AuthorID != authorID {
		return ErrForbidden
	}

	post.Title = req.Title
	post.Content = req.Content

	err = p.postRepo.Update(ctx, post)
	if err != nil {
		return err
	}

	return nil
}

func (p *postService) DeletePost(ctx context.Context, actorID int64, actorRole string, postID int64) error {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.AuthorID != actorID && !canModerate(actorRole) {
		return ErrForbidden
	}

	if err := p.postRepo.Delete(ctx, postID); err != nil {
		return err
	}

	// comments and ratings go away by cascade, the stored image does not
	if post.ImageURL != nil {
		objectName := storage.ObjectNameFromURL(*post.ImageURL, p.cfg.MinIO.BucketName)
		if err := p.storage.DeleteImage(ctx, objectName); err != nil {
			fmt.Printf("Предупреждение: не удалось удалить изображение поста: %v\n", err)
		}
	}

	return nil
}

func (p *postService) LikePost(ctx context.Context, postID int64) error {
	return p.postRepo.IncrementLikes(ctx, postID)
}

func (p *postService) AttachImage(ctx context.Context, actorID int64, actorRole string, postID int64, fileName string, file io.Reader, size int64) (string, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return "", err
	}

	if post.AuthorID != actorID && !canModerate(actorRole) {
		return "", ErrForbidden
	}

	scope := fmt.Sprintf("posts/%d", postID)
	objectName, imageURL, err := p.storage.UploadImage(ctx, scope, fileName, file, size)
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки изображения: %w", err)
	}

	if err := p.postRepo.SetImageURL(ctx, postID, &imageURL); err != nil {
		p.storage.DeleteImage(ctx, objectName)
		return "", err
	}

	return imageURL, nil
}

func (p *postService) RemoveImage(ctx context.Context, actorID int64, actorRole string, postID int64) error {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.AuthorID != actorID && !canModerate(actorRole) {
		return ErrForbidden
	}

	if post.ImageURL == nil {
		return nil
	}

	objectName := storage.ObjectNameFromURL(*post.ImageURL, p.cfg.MinIO.BucketName)
	if err := p.storage.DeleteImage(ctx, objectName); err != nil {
		fmt.Printf("Предупреждение: не удалось удалить из MinIO: %v\n", err)
	}

	return p.postRepo.SetImageURL(ctx, postID, nil)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"animeverse/internal/config"
	"animeverse/internal/models"
	"animeverse/internal/repository"
	"animeverse/internal/storage"
	"animeverse/internal/validation"
)

type AccountService interface {
	Get(ctx context.Context, accountID int64) (*models.Account, error)
	UpdateProfile(ctx context.Context, req repository.UpdateProfileRequest) error
	UploadAvatar(ctx context.Context, accountID int64, fileName string, file io.Reader, size int64) (string, error)
	Delete(ctx context.Context, accountID int64) error
}

type accountService struct {
	accountRepo repository.AccountRepository
	storage     storage.Storage
	cfg         *config.Config
}

func NewAccountService(accountRepo repository.AccountRepository, storage storage.Storage, cfg *config.Config) AccountService {
	return &accountService{
		accountRepo: accountRepo,
		storage:     storage,
		cfg:         cfg,
	}
}

func (s *accountService) Get(ctx context.Context, accountID int64) (*models.Account, error) {
	return s.accountRepo.GetByID(ctx, accountID)
}

// UpdateProfile validates the new values, re-checks email uniqueness only when
// the email actually changed, then replaces the whole mutable record. Role,
// status, ban flag and credential stay as they were.
func (s *accountService) UpdateProfile(ctx context.Context, req repository.UpdateProfileRequest) error {
	if errs := validation.Collect(
		validation.FullName("fullName", req.FullName),
		validation.Email("email", req.Email),
	); errs != nil {
		return errs
	}

	account, err := s.accountRepo.GetByID(ctx, req.AccountID)
	if err != nil {
		return err
	}

	if req.Email != account.Email {
		other, err := s.accountRepo.GetByEmail(ctx, req.Email)
		if err == nil && other != nil && other.AccountID != req.AccountID {
			return &ConflictError{Field: "email"}
		}
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}
	}

	account.FullName = req.FullName
	account.Email = req.Email
	account.AvatarURL = req.AvatarURL

	err = s.accountRepo.Update(ctx, account)
	if err != nil {
		return err
	}

	return nil
}

func (s *accountService) UploadAvatar(ctx context.Context, accountID int64, fileName string, file io.Reader, size int64) (string, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return "", err
	}

	objectName, avatarURL, err := s.storage.UploadImage(ctx, "avatars", fileName, file, size)
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки аватара: %w", err)
	}

	// the previous avatar is replaced, not accumulated
	oldURL := account.AvatarURL

	account.AvatarURL = &avatarURL
	if err := s.accountRepo.Update(ctx, account); err != nil {
		s.storage.DeleteImage(ctx, objectName)
		return "", err
	}

	if oldURL != nil {
		oldObject := storage.ObjectNameFromURL(*oldURL, s.cfg.MinIO.BucketName)
		if err := s.storage.DeleteImage(ctx, oldObject); err != nil {
			fmt.Printf("Предупреждение: не удалось удалить старый аватар: %v\n", err)
		}
	}

	return avatarURL, nil
}

// Delete removes the account; dependent posts, comments and ratings disappear
// through the cascade contract of the datastore.
func (s *accountService) Delete(ctx context.Context, accountID int64) error {
	err := s.accountRepo.Delete(ctx, accountID)
	if err != nil {
		return err
	}

	return nil
}

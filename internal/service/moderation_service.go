package service

import (
	"context"
	"fmt"

	"animeverse/internal/models"
	"animeverse/internal/repository"
	"animeverse/internal/validation"
)

type ModerationService interface {
	SetAccountBanned(ctx context.Context, accountID int64, banned bool) error
	IssueTemporaryBan(ctx context.Context, accountID int64, reason string, durationHours int) (*models.TemporaryBan, error)
	ListBans(ctx context.Context, accountID int64) ([]models.TemporaryBan, error)
	BanPost(ctx context.Context, postID int64, reason string) error
	BanComment(ctx context.Context, commentID int64, reason string) error
	ReportPost(ctx context.Context, postID, reporterID int64, reason string) (*models.Report, error)
	ListReports(ctx context.Context, status string) ([]models.Report, error)
	ReviewReport(ctx context.Context, reportID int64) error
	DismissReport(ctx context.Context, reportID int64) error
	PendingReportCount(ctx context.Context) (int, error)
}

type moderationService struct {
	accountRepo repository.AccountRepository
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	reportRepo  repository.ReportRepository
	banRepo     repository.BanRepository
}

func NewModerationService(
	accountRepo repository.AccountRepository,
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	reportRepo repository.ReportRepository,
	banRepo repository.BanRepository,
) ModerationService {
	return &moderationService{
		accountRepo: accountRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		reportRepo:  reportRepo,
		banRepo:     banRepo,
	}
}

// SetAccountBanned sets or clears the ban flag. Banning an already-banned
// account is a no-op with an ok result.
func (s *moderationService) SetAccountBanned(ctx context.Context, accountID int64, banned bool) error {
	return s.accountRepo.SetBanned(ctx, accountID, banned)
}

// IssueTemporaryBan appends an immutable audit record with the reason and
// duration, then sets the ban flag. Lifting the ban later does not touch the
// record.
func (s *moderationService) IssueTemporaryBan(ctx context.Context, accountID int64, reason string, durationHours int) (*models.TemporaryBan, error) {
	if errs := validation.Collect(
		validation.Required("reason", reason),
	); errs != nil {
		return nil, errs
	}
	if durationHours <= 0 {
		return nil, validation.FieldErrors{{Field: "durationHours", Reason: validation.ReasonInvalidFormat}}
	}

	ban := &models.TemporaryBan{
		AccountID:     accountID,
		Reason:        reason,
		DurationHours: durationHours,
	}

	// the audit row goes first: a failed flag update leaves a record that
	// never took effect, never a ban without a record
	_, err := s.banRepo.Create(ctx, ban)
	if err != nil {
		return nil, fmt.Errorf("ошибка при записи бана: %w", err)
	}

	if err := s.accountRepo.SetBanned(ctx, accountID, true); err != nil {
		return nil, err
	}

	return ban, nil
}

func (s *moderationService) ListBans(ctx context.Context, accountID int64) ([]models.TemporaryBan, error) {
	if accountID == 0 {
		return s.banRepo.GetAll(ctx)
	}
	return s.banRepo.GetByAccountID(ctx, accountID)
}

func (s *moderationService) BanPost(ctx context.Context, postID int64, reason string) error {
	if errs := validation.Collect(
		validation.Required("reason", reason),
	); errs != nil {
		return errs
	}

	return s.postRepo.SetBanMeta(ctx, postID, reason)
}

func (s *moderationService) BanComment(ctx context.Context, commentID int64, reason string) error {
	if errs := validation.Collect(
		validation.Required("reason", reason),
	); errs != nil {
		return errs
	}

	return s.commentRepo.SetBanMeta(ctx, commentID, reason)
}

// ReportPost snapshots the post title and author handle at report time, so
// the report stays meaningful after the post is deleted.
func (s *moderationService) ReportPost(ctx context.Context, postID, reporterID int64, reason string) (*models.Report, error) {
	if errs := validation.Collect(
		validation.Required("reason", reason),
	); errs != nil {
		return nil, errs
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	author, err := s.accountRepo.GetByID(ctx, post.AuthorID)
	if err != nil {
		return nil, err
	}

	report := &models.Report{
		PostID:     postID,
		PostTitle:  post.Title,
		PostAuthor: author.Handle,
		ReporterID: reporterID,
		Reason:     reason,
	}

	_, err = s.reportRepo.Create(ctx, report)
	if err != nil {
		return nil, err
	}

	return report, nil
}

func (s *moderationService) ListReports(ctx context.Context, status string) ([]models.Report, error) {
	if status == "" {
		return s.reportRepo.GetAll(ctx)
	}

	parsed, err := models.ParseReportStatus(status)
	if err != nil {
		return nil, err
	}

	return s.reportRepo.GetByStatus(ctx, parsed)
}

func (s *moderationService) ReviewReport(ctx context.Context, reportID int64) error {
	return s.reportRepo.Resolve(ctx, reportID, models.ReportReviewed)
}

func (s *moderationService) DismissReport(ctx context.Context, reportID int64) error {
	return s.reportRepo.Resolve(ctx, reportID, models.ReportDismissed)
}

func (s *moderationService) PendingReportCount(ctx context.Context) (int, error) {
	return s.reportRepo.CountPending(ctx)
}

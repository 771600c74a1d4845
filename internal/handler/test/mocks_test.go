package test

import (
	"context"
	"io"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"

	"animeverse/internal/models"
	"animeverse/internal/repository"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req repository.CreateAccountRequest) (*models.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.Account, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.Account), args.String(1), args.Error(2)
}

func (m *MockAuthService) Logout() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*jwt.Token, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jwt.Token), args.Error(1)
}

func (m *MockAuthService) AccountFromToken(tokenString string) (*models.Account, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Get(ctx context.Context, accountID int64) (*models.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountService) UpdateProfile(ctx context.Context, req repository.UpdateProfileRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockAccountService) UploadAvatar(ctx context.Context, accountID int64, fileName string, file io.Reader, size int64) (string, error) {
	args := m.Called(ctx, accountID, fileName, file, size)
	return args.String(0), args.Error(1)
}

func (m *MockAccountService) Delete(ctx context.Context, accountID int64) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

type MockModerationService struct {
	mock.Mock
}

func (m *MockModerationService) SetAccountBanned(ctx context.Context, accountID int64, banned bool) error {
	args := m.Called(ctx, accountID, banned)
	return args.Error(0)
}

func (m *MockModerationService) IssueTemporaryBan(ctx context.Context, accountID int64, reason string, durationHours int) (*models.TemporaryBan, error) {
	args := m.Called(ctx, accountID, reason, durationHours)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TemporaryBan), args.Error(1)
}

func (m *MockModerationService) ListBans(ctx context.Context, accountID int64) ([]models.TemporaryBan, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).([]models.TemporaryBan), args.Error(1)
}

func (m *MockModerationService) BanPost(ctx context.Context, postID int64, reason string) error {
	args := m.Called(ctx, postID, reason)
	return args.Error(0)
}

func (m *MockModerationService) BanComment(ctx context.Context, commentID int64, reason string) error {
	args := m.Called(ctx, commentID, reason)
	return args.Error(0)
}

func (m *MockModerationService) ReportPost(ctx context.Context, postID, reporterID int64, reason string) (*models.Report, error) {
	args := m.Called(ctx, postID, reporterID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Report), args.Error(1)
}

func (m *MockModerationService) ListReports(ctx context.Context, status string) ([]models.Report, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Report), args.Error(1)
}

func (m *MockModerationService) ReviewReport(ctx context.Context, reportID int64) error {
	args := m.Called(ctx, reportID)
	return args.Error(0)
}

func (m *MockModerationService) DismissReport(ctx context.Context, reportID int64) error {
	args := m.Called(ctx, reportID)
	return args.Error(0)
}

func (m *MockModerationService) PendingReportCount(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockRatingService struct {
	mock.Mock
}

func (m *MockRatingService) RatePost(ctx context.Context, postID, authorID int64, value int) error {
	args := m.Called(ctx, postID, authorID, value)
	return args.Error(0)
}

func (m *MockRatingService) AverageRating(ctx context.Context, postID int64) (*float64, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*float64), args.Error(1)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) GetPost(ctx context.Context, postID int64) (*models.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) ListPosts(ctx context.Context, limit, offset int) ([]models.Post, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostService) ListByTopic(ctx context.Context, topicID int64) ([]models.Post, error) {
	args := m.Called(ctx, topicID)
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostService) ListByAuthor(ctx context.Context, authorID int64) ([]models.Post, error) {
	args := m.Called(ctx, authorID)
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostService) UpdatePost(ctx context.Context, authorID int64, req repository.UpdatePostRequest) error {
	args := m.Called(ctx, authorID, req)
	return args.Error(0)
}

func (m *MockPostService) DeletePost(ctx context.Context, actorID int64, actorRole string, postID int64) error {
	args := m.Called(ctx, actorID, actorRole, postID)
	return args.Error(0)
}

func (m *MockPostService) LikePost(ctx context.Context, postID int64) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *MockPostService) AttachImage(ctx context.Context, actorID int64, actorRole string, postID int64, fileName string, file io.Reader, size int64) (string, error) {
	args := m.Called(ctx, actorID, actorRole, postID, fileName, file, size)
	return args.String(0), args.Error(1)
}

func (m *MockPostService) RemoveImage(ctx context.Context, actorID int64, actorRole string, postID int64) error {
	args := m.Called(ctx, actorID, actorRole, postID)
	return args.Error(0)
}

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) AddComment(ctx context.Context, req repository.CreateCommentRequest) (*models.Comment, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentService) ListByPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentService) DeleteComment(ctx context.Context, actorID int64, actorRole string, commentID int64) error {
	args := m.Called(ctx, actorID, actorRole, commentID)
	return args.Error(0)
}

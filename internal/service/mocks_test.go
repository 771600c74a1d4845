package service

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"animeverse/internal/models"
)

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, account *models.Account, password string) (int64, error) {
	args := m.Called(ctx, account, password)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountRepository) GetByID(ctx context.Context, accountID int64) (*models.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByHandle(ctx context.Context, handle string) (*models.Account, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountRepository) GetAll(ctx context.Context) ([]models.Account, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Account), args.Error(1)
}

func (m *MockAccountRepository) Update(ctx context.Context, account *models.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) SetBanned(ctx context.Context, accountID int64, banned bool) error {
	args := m.Called(ctx, accountID, banned)
	return args.Error(0)
}

func (m *MockAccountRepository) Delete(ctx context.Context, accountID int64) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockAccountRepository) VerifyPassword(ctx context.Context, email, password string) (*models.Account, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) (int64, error) {
	args := m.Called(ctx, post)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) GetByID(ctx context.Context, postID int64) (*models.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) GetByAuthorID(ctx context.Context, authorID int64) ([]models.Post, error) {
	args := m.Called(ctx, authorID)
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) GetByTopicID(ctx context.Context, topicID int64) ([]models.Post, error) {
	args := m.Called(ctx, topicID)
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) GetAll(ctx context.Context, limit, offset int) ([]models.Post, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, postID int64) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *MockPostRepository) IncrementLikes(ctx context.Context, postID int64) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *MockPostRepository) IncrementComments(ctx context.Context, postID int64, delta int) error {
	args := m.Called(ctx, postID, delta)
	return args.Error(0)
}

func (m *MockPostRepository) SetImageURL(ctx context.Context, postID int64, imageURL *string) error {
	args := m.Called(ctx, postID, imageURL)
	return args.Error(0)
}

func (m *MockPostRepository) SetBanMeta(ctx context.Context, postID int64, reason string) error {
	args := m.Called(ctx, postID, reason)
	return args.Error(0)
}

func (m *MockPostRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) (int64, error) {
	args := m.Called(ctx, comment)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, commentID int64) (*models.Comment, error) {
	args := m.Called(ctx, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) GetByPostID(ctx context.Context, postID int64) ([]models.Comment, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, commentID int64) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

func (m *MockCommentRepository) SetBanMeta(ctx context.Context, commentID int64, reason string) error {
	args := m.Called(ctx, commentID, reason)
	return args.Error(0)
}

type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Upsert(ctx context.Context, rating *models.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *MockRatingRepository) AverageForPost(ctx context.Context, postID int64) (*float64, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*float64), args.Error(1)
}

func (m *MockRatingRepository) CountForPost(ctx context.Context, postID int64) (int, error) {
	args := m.Called(ctx, postID)
	return args.Int(0), args.Error(1)
}

type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) Create(ctx context.Context, report *models.Report) (int64, error) {
	args := m.Called(ctx, report)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportRepository) GetByID(ctx context.Context, reportID int64) (*models.Report, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Report), args.Error(1)
}

func (m *MockReportRepository) GetAll(ctx context.Context) ([]models.Report, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Report), args.Error(1)
}

func (m *MockReportRepository) GetByStatus(ctx context.Context, status string) ([]models.Report, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]models.Report), args.Error(1)
}

func (m *MockReportRepository) Resolve(ctx context.Context, reportID int64, status string) error {
	args := m.Called(ctx, reportID, status)
	return args.Error(0)
}

func (m *MockReportRepository) CountPending(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockBanRepository struct {
	mock.Mock
}

func (m *MockBanRepository) Create(ctx context.Context, ban *models.TemporaryBan) (int64, error) {
	args := m.Called(ctx, ban)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBanRepository) GetByAccountID(ctx context.Context, accountID int64) ([]models.TemporaryBan, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).([]models.TemporaryBan), args.Error(1)
}

func (m *MockBanRepository) GetAll(ctx context.Context) ([]models.TemporaryBan, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.TemporaryBan), args.Error(1)
}

type MockTopicRepository struct {
	mock.Mock
}

func (m *MockTopicRepository) GetAll(ctx context.Context) ([]models.Topic, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Topic), args.Error(1)
}

func (m *MockTopicRepository) GetByID(ctx context.Context, topicID int64) (*models.Topic, error) {
	args := m.Called(ctx, topicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Topic), args.Error(1)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadImage(ctx context.Context, scope string, fileName string, file io.Reader, size int64) (string, string, error) {
	args := m.Called(ctx, scope, fileName, file, size)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockStorage) DeleteImage(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}

func (m *MockStorage) GetImageURL(ctx context.Context, objectName string) (string, error) {
	args := m.Called(ctx, objectName)
	return args.String(0), args.Error(1)
}

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Save(accountID int64) error {
	args := m.Called(accountID)
	return args.Error(0)
}

func (m *MockSessionStore) AccountID() (int64, bool) {
	args := m.Called()
	return args.Get(0).(int64), args.Bool(1)
}

func (m *MockSessionStore) IsActive() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockSessionStore) Clear() error {
	args := m.Called()
	return args.Error(0)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"animeverse/internal/config"
	"animeverse/internal/models"
	"animeverse/internal/repository"
	"animeverse/internal/session"
	"animeverse/internal/validation"
)

type AuthService interface {
	Register(ctx context.Context, req repository.CreateAccountRequest) (*models.Account, error)
	Login(ctx context.Context, email, password string) (*models.Account, string, error)
	Logout() error
	ValidateToken(tokenString string) (*jwt.Token, error)
	AccountFromToken(tokenString string) (*models.Account, error)
}

type authService struct {
	accountRepo repository.AccountRepository
	sessions    session.Store
	cfg         *config.Config
}

func NewAuthService(accountRepo repository.AccountRepository, sessions session.Store, cfg *config.Config) AuthService {
	return &authService{
		accountRepo: accountRepo,
		sessions:    sessions,
		cfg:         cfg,
	}
}

// Register validates the whole form first and reaches the datastore only when
// every field passed: a rejected registration performs no write. Field errors
// are collected in aggregate, so a form with a bad email and a short password
// reports both.
func (s *authService) Register(ctx context.Context, req repository.CreateAccountRequest) (*models.Account, error) {
	if errs := validation.Collect(
		validation.FullName("fullName", req.FullName),
		validation.Email("email", req.Email),
		validation.Required("handle", req.Handle),
		validation.Password("password", req.Password),
		validation.Match("confirmPassword", req.Password, req.ConfirmPassword),
	); errs != nil {
		return nil, errs
	}

	existing, err := s.accountRepo.GetByEmail(ctx, req.Email)
	if err == nil && existing != nil {
		return nil, &ConflictError{Field: "email"}
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	existing, err = s.accountRepo.GetByHandle(ctx, req.Handle)
	if err == nil && existing != nil {
		return nil, &ConflictError{Field: "handle"}
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	account := &models.Account{
		FullName: req.FullName,
		Email:    req.Email,
		Handle:   req.Handle,
		Role:     models.RoleUser,
		Status:   models.StatusActive,
		IsBanned: false,
	}

	// exactly one insert
	_, err = s.accountRepo.Create(ctx, account, req.Password)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании аккаунта: %w", err)
	}

	return account, nil
}

// Login checks the account in order: existence, credential, ban flag. On
// success it issues an access token and records the account in the session
// store. No rate limiting and no retry live at this layer.
func (s *authService) Login(ctx context.Context, email, password string) (*models.Account, string, error) {
	account, err := s.accountRepo.VerifyPassword(ctx, email, password)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", &AuthError{Reason: AuthNotFound}
		}
		if errors.Is(err, repository.ErrInvalidCredentials) {
			return nil, "", &AuthError{Reason: AuthInvalidCredentials}
		}
		return nil, "", fmt.Errorf("ошибка аутентификации: %w", err)
	}

	if account.IsBanned {
		return nil, "", &AuthError{Reason: AuthBanned}
	}

	accessToken, err := s.generateAccessToken(account)
	if err != nil {
		return nil, "", fmt.Errorf("ошибка генерации access token: %w", err)
	}

	if err := s.sessions.Save(account.AccountID); err != nil {
		return nil, "", fmt.Errorf("ошибка сохранения сессии: %w", err)
	}

	return account, accessToken, nil
}

func (s *authService) Logout() error {
	return s.sessions.Clear()
}

func (s *authService) generateAccessToken(account *models.Account) (string, error) {
	claims := jwt.MapClaims{
		"accountId": account.AccountID,
		"email":     account.Email,
		"role":      account.Role,
		"exp":       time.Now().Add(s.cfg.AccessTokenDuration).Unix(),
		"iat":       time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, nil
}

func (s *authService) ValidateToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})

	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга токена: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("недействительный токен")
	}

	return token, nil
}

func (s *authService) AccountFromToken(tokenString string) (*models.Account, error) {
	token, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("неверный формат claims")
	}

	accountID, ok1 := claims["accountId"].(float64)
	email, ok2 := claims["email"].(string)
	rawRole, ok3 := claims["role"].(string)
	if !ok1 || !ok2 || !ok3 {
		return nil, fmt.Errorf("неверный формат claims")
	}

	role, err := models.ParseRole(rawRole)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		AccountID: int64(accountID),
		Email:     email,
		Role:      role,
	}

	return account, nil
}

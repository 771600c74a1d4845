package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"animeverse/internal/models"
)

type accountRepository struct {
	db *sqlx.DB
}

type CreateAccountRequest struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Handle          string `json:"handle"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type UpdateProfileRequest struct {
	AccountID int64   `json:"accountId"`
	FullName  string  `json:"fullName"`
	Email     string  `json:"email"`
	AvatarURL *string `json:"avatarUrl"`
}

func NewAccountRepository(db *sqlx.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, account *models.Account, password string) (int64, error) {
	// create password hash
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("ошибка при хешировании пароля: %w", err)
	}

	account.PasswordHash = string(hashedPassword)

	query := `
		INSERT INTO accounts (full_name, email, handle, password_hash, avatar_url, role, status, is_banned)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING account_id
	`

	var accountID int64
	err = r.db.GetContext(ctx, &accountID, query,
		account.FullName,
		account.Email,
		account.Handle,
		account.PasswordHash,
		account.AvatarURL,
		account.Role,
		account.Status,
		account.IsBanned,
	)
	if err != nil {
		return 0, fmt.Errorf("ошибка при создании аккаунта: %w", err)
	}

	account.AccountID = accountID
	return accountID, nil
}

func (r *accountRepository) GetByID(ctx context.Context, accountID int64) (*models.Account, error) {
	var account models.Account

	query := `SELECT * FROM accounts WHERE account_id = $1`

	err := r.db.GetContext(ctx, &account, query, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("аккаунт с ID %d: %w", accountID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении аккаунта: %w", err)
	}

	return &account, nil
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account

	query := `SELECT * FROM accounts WHERE email = $1`

	err := r.db.GetContext(ctx, &account, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("аккаунт с email %s: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении аккаунта по email: %w", err)
	}

	return &account, nil
}

func (r *accountRepository) GetByHandle(ctx context.Context, handle string) (*models.Account, error) {
	var account models.Account

	query := `SELECT * FROM accounts WHERE handle = $1`

	err := r.db.GetContext(ctx, &account, query, handle)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("аккаунт с ником %s: %w", handle, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении аккаунта по нику: %w", err)
	}

	return &account, nil
}

func (r *accountRepository) GetAll(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account

	query := `SELECT * FROM accounts ORDER BY created_at`

	err := r.db.SelectContext(ctx, &accounts, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка аккаунтов: %w", err)
	}

	return accounts, nil
}

func (r *accountRepository) VerifyPassword(ctx context.Context, email, password string) (*models.Account, error) {
	account, err := r.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	// checking that the password hash is the same
	err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return account, nil
}

// Update replaces the whole mutable record: full name, email, avatar, role,
// status. The password hash and creation timestamp are preserved.
func (r *accountRepository) Update(ctx context.Context, account *models.Account) error {
	query := `
		UPDATE accounts
		SET full_name = :full_name, email = :email, handle = :handle,
		    avatar_url = :avatar_url, role = :role, status = :status
		WHERE account_id = :account_id
	`

	result, err := r.db.NamedExecContext(ctx, query, account)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении аккаунта: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("аккаунт с ID %d: %w", account.AccountID, ErrNotFound)
	}

	return nil
}

// SetBanned is idempotent: setting an already-set flag affects the row and
// reports success.
func (r *accountRepository) SetBanned(ctx context.Context, accountID int64, banned bool) error {
	query := `UPDATE accounts SET is_banned = $2 WHERE account_id = $1`

	result, err := r.db.ExecContext(ctx, query, accountID, banned)
	if err != nil {
		return fmt.Errorf("ошибка при изменении флага бана: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("аккаунт с ID %d: %w", accountID, ErrNotFound)
	}

	return nil
}

// Delete removes the account row; posts, comments and ratings of the account
// go away through ON DELETE CASCADE, the domain layer does not re-implement it.
func (r *accountRepository) Delete(ctx context.Context, accountID int64) error {
	query := `DELETE FROM accounts WHERE account_id = $1`

	result, err := r.db.ExecContext(ctx, query, accountID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении аккаунта: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("аккаунт с ID %d: %w", accountID, ErrNotFound)
	}

	return nil
}

func (r *accountRepository) Count(ctx context.Context) (int, error) {
	var count int

	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM accounts`)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте аккаунтов: %w", err)
	}

	return count, nil
}

package service

import (
	"errors"
	"fmt"

	"animeverse/internal/models"
)

// ErrForbidden is returned when the actor is neither the author of the
// content nor a moderator.
var ErrForbidden = errors.New("нет прав на это действие")

func canModerate(role string) bool {
	return role == models.RoleAdmin || role == models.RoleModerator
}

// AuthError reasons
const (
	AuthNotFound           = "NotFound"
	AuthInvalidCredentials = "InvalidCredentials"
	AuthBanned             = "Banned"
)

// AuthError is the tagged failure of a login attempt.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	switch e.Reason {
	case AuthNotFound:
		return "аккаунт не найден"
	case AuthInvalidCredentials:
		return "неверный email или пароль"
	case AuthBanned:
		return "аккаунт заблокирован"
	}
	return fmt.Sprintf("ошибка аутентификации: %s", e.Reason)
}

// ConflictError reports a uniqueness violation on the named field.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("значение поля %s уже занято", e.Field)
}

package repository

import "errors"

// ErrNotFound is wrapped into every "row does not exist" error so that the
// service layer can classify lookups without matching message text.
var ErrNotFound = errors.New("запись не найдена")

// ErrInvalidCredentials is returned by VerifyPassword on hash mismatch.
var ErrInvalidCredentials = errors.New("неверный пароль")

// Package session persists the last authenticated account between launches.
// It is a simple key-value file, not part of the domain core: only the account
// id and an active flag are recorded.
package session

import (
	"fmt"
	"sync"

	"github.com/go-ini/ini"
)

type Store interface {
	Save(accountID int64) error
	AccountID() (int64, bool)
	IsActive() bool
	Clear() error
}

const sectionName = "session"

type fileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) Store {
	return &fileStore{path: path}
}

func (s *fileStore) Save(accountID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := ini.LooseLoad(s.path)
	if err != nil {
		return fmt.Errorf("ошибка при чтении файла сессии: %w", err)
	}

	section := file.Section(sectionName)
	section.Key("account_id").SetValue(fmt.Sprintf("%d", accountID))
	section.Key("active").SetValue("true")

	if err := file.SaveTo(s.path); err != nil {
		return fmt.Errorf("ошибка при сохранении сессии: %w", err)
	}

	return nil
}

func (s *fileStore) AccountID() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := ini.LooseLoad(s.path)
	if err != nil {
		return 0, false
	}

	section := file.Section(sectionName)
	if !section.Key("active").MustBool(false) {
		return 0, false
	}

	accountID, err := section.Key("account_id").Int64()
	if err != nil {
		return 0, false
	}

	return accountID, true
}

func (s *fileStore) IsActive() bool {
	_, ok := s.AccountID()
	return ok
}

func (s *fileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := ini.LooseLoad(s.path)
	if err != nil {
		return fmt.Errorf("ошибка при чтении файла сессии: %w", err)
	}

	file.DeleteSection(sectionName)

	if err := file.SaveTo(s.path); err != nil {
		return fmt.Errorf("ошибка при очистке сессии: %w", err)
	}

	return nil
}

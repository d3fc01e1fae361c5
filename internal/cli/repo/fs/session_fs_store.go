package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
)

// SessionFSStore — файловое хранилище сессии и контекста пользователя для CLI.
type SessionFSStore struct{}

func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "PantryTracker")
	if err := os.MkdirAll(p, 0o700); err != nil {
		return "", err
	}
	return p, nil
}

func tokenPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "session_token"), nil
}

func currentUserPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "current_user"), nil
}

// Save сохраняет сессионный токен в файл.
func (SessionFSStore) Save(token string) error {
	p, err := tokenPath()
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(token), 0o600)
}

// Load читает сессионный токен из файла.
func (SessionFSStore) Load() (string, error) {
	p, err := tokenPath()
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	s := trimTrailing(b)
	if s == "" {
		return "", errors.New("empty token file")
	}
	return s, nil
}

// SaveUserID сохраняет идентификатор активного пользователя.
func (SessionFSStore) SaveUserID(id int64) error {
	if id <= 0 {
		return errors.New("invalid user id")
	}
	p, err := currentUserPath()
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(strconv.FormatInt(id, 10)), 0o600)
}

// LoadUserID читает идентификатор активного пользователя.
func (SessionFSStore) LoadUserID() (int64, error) {
	p, err := currentUserPath()
	if err != nil {
		return 0, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return 0, err
	}
	s := trimTrailing(b)
	if s == "" {
		return 0, errors.New("no stored user")
	}
	return strconv.ParseInt(s, 10, 64)
}

// trimTrailing обрезает завершающие переводы строки/пробелы.
func trimTrailing(b []byte) string {
	for len(b) > 0 {
		c := b[len(b)-1]
		if c == '\n' || c == '\r' || c == ' ' || c == '\t' {
			b = b[:len(b)-1]
			continue
		}
		break
	}
	return string(b)
}

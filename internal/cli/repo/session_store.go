package repo

// SessionStore описывает абстракцию хранилища сессионного токена на клиенте.
type SessionStore interface {
	Save(token string) error
	Load() (string, error)
}

// UserContextStore — хранилище контекста активного пользователя.
type UserContextStore interface {
	SaveUserID(id int64) error
	LoadUserID() (int64, error)
}

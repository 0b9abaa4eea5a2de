package session

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Session is the server-side identity record referenced by the opaque
// cookie. It is created at login, read-only inside request handlers and
// removed at logout.
type Session struct {
	ID       string `json:"id"`
	UserID   uint   `json:"user_id"`
	UserName string `json:"user_name"`
	Role     string `json:"role"`
}

var ErrNotFound = errors.New("session not found")

type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}

func New(userID uint, userName, role string) *Session {
	return &Session{
		ID:       uuid.NewString(),
		UserID:   userID,
		UserName: userName,
		Role:     role,
	}
}

package domain

import (
	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Actor - пользователь, от имени которого выполняется запрос.
type Actor struct {
	UserID uuid.UUID
	Role   string
}

func NewActor(userID, role string) (Actor, error) {
	id, err := uuid.Parse(userID)
	if err != nil || id == uuid.Nil {
		return Actor{}, ErrNoActor
	}
	return Actor{UserID: id, Role: role}, nil
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanEdit - админ и владелец курса.
func (a Actor) CanEdit(c *Course) error {
	if !a.IsAdmin() {
		return ErrNotAdmin
	}
	if c.UserID != a.UserID {
		return ErrNotOwner
	}
	return nil
}

package coursetree

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	SessionPrefix = "session-"
	LessonPrefix  = "lesson-"
)

var ErrInvalidID = errors.New("invalid structure id")

// ID - либо сохранённый в БД ключ (uuid), либо временный клиентский
// идентификатор вида "session-<token>" / "lesson-<token>".
// Нулевое значение не является ни тем, ни другим.
type ID struct {
	persisted uuid.UUID
	pending   string
}

func Persisted(id uuid.UUID) ID {
	return ID{persisted: id}
}

func NewSessionID(token string) ID {
	return ID{pending: SessionPrefix + token}
}

func NewLessonID(token string) ID {
	return ID{pending: LessonPrefix + token}
}

func ParseID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	for _, prefix := range []string{SessionPrefix, LessonPrefix} {
		if strings.HasPrefix(s, prefix) {
			if len(s) == len(prefix) {
				return ID{}, fmt.Errorf("%w: empty placeholder token in %q", ErrInvalidID, s)
			}
			return ID{pending: s}, nil
		}
	}
	u, err := uuid.Parse(s)
	if err != nil || u == uuid.Nil {
		return ID{}, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return ID{persisted: u}, nil
}

func MustParseID(s string) ID {
	id, err := ParseID(s)
	if err != nil {
		panic(err)
	}
	return id
}

func (id ID) IsPending() bool {
	return id.pending != ""
}

func (id ID) IsZero() bool {
	return id.pending == "" && id.persisted == uuid.Nil
}

// UUID возвращает ключ БД; ok == false для временных и пустых идентификаторов.
func (id ID) UUID() (uuid.UUID, bool) {
	if id.pending != "" || id.persisted == uuid.Nil {
		return uuid.Nil, false
	}
	return id.persisted, true
}

func (id ID) String() string {
	if id.pending != "" {
		return id.pending
	}
	if id.persisted == uuid.Nil {
		return ""
	}
	return id.persisted.String()
}

func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *ID) UnmarshalText(data []byte) error {
	parsed, err := ParseID(string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

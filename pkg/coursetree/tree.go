package coursetree

import (
	"fmt"
	"strings"
)

type LessonType string

const (
	LessonVideo   LessonType = "VIDEO"
	LessonReading LessonType = "READING"
)

// ParseLessonType принимает значения в любом регистре, пустая строка -> VIDEO.
func ParseLessonType(s string) (LessonType, error) {
	switch LessonType(strings.ToUpper(strings.TrimSpace(s))) {
	case "", LessonVideo:
		return LessonVideo, nil
	case LessonReading:
		return LessonReading, nil
	}
	return "", fmt.Errorf("unknown lesson type %q", s)
}

func (t *LessonType) UnmarshalText(data []byte) error {
	parsed, err := ParseLessonType(string(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

type Lesson struct {
	ID       ID         `json:"id"`
	Title    string     `json:"title"`
	Type     LessonType `json:"type"`
	Duration *int       `json:"duration"` // минуты
	Order    int        `json:"order"`
}

type Session struct {
	ID      ID       `json:"id"`
	Title   string   `json:"title"`
	Order   int      `json:"order"`
	Lessons []Lesson `json:"lessons"`

	// Только состояние редактора, в снимок не попадает.
	Expanded bool `json:"-"`
}

// Snapshot - полное дерево курса, которое отправляется на сохранение.
type Snapshot struct {
	Sessions []Session `json:"sessions"`
}

// Validate проверяет идентификаторы узлов: пустой id недопустим, временный id
// секции начинается с session-, урока - с lesson-.
func (s Snapshot) Validate() error {
	for i, sess := range s.Sessions {
		if err := checkNodeID("session", i, sess.ID, SessionPrefix); err != nil {
			return err
		}
		for j, l := range sess.Lessons {
			if err := checkNodeID("lesson", j, l.ID, LessonPrefix); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkNodeID(kind string, pos int, id ID, prefix string) error {
	if id.IsZero() {
		return fmt.Errorf("%w: %s #%d without id", ErrInvalidID, kind, pos+1)
	}
	if id.IsPending() && !strings.HasPrefix(id.pending, prefix) {
		return fmt.Errorf("%w: %s id %q must start with %q", ErrInvalidID, kind, id.pending, prefix)
	}
	return nil
}

type State struct {
	Sessions []Session
}

func (s State) clone() State {
	out := State{Sessions: make([]Session, len(s.Sessions))}
	for i, sess := range s.Sessions {
		out.Sessions[i] = sess.clone()
	}
	return out
}

func (s Session) clone() Session {
	lessons := make([]Lesson, len(s.Lessons))
	for i, l := range s.Lessons {
		lessons[i] = l.clone()
	}
	s.Lessons = lessons
	return s
}

func (l Lesson) clone() Lesson {
	if l.Duration != nil {
		d := *l.Duration
		l.Duration = &d
	}
	return l
}

func (s State) sessionIndex(id ID) int {
	for i, sess := range s.Sessions {
		if sess.ID == id {
			return i
		}
	}
	return -1
}

func (s Session) lessonIndex(id ID) int {
	for i, l := range s.Lessons {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// Snapshot отдаёт копию дерева без состояния редактора.
func (s State) Snapshot() Snapshot {
	c := s.clone()
	for i := range c.Sessions {
		c.Sessions[i].Expanded = false
	}
	return Snapshot{Sessions: c.Sessions}
}

func FromSnapshot(snap Snapshot) State {
	return State{Sessions: snap.Sessions}.clone()
}

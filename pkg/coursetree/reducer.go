package coursetree

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownSession = errors.New("session not found in tree")
	ErrUnknownLesson  = errors.New("lesson not found in session")
)

// Action - переход состояния редактора. Все переходы синхронные и
// не трогают хранилище.
type Action interface {
	apply(State) (State, error)
}

// Reduce применяет действие к копии состояния. При ошибке возвращается
// исходное состояние без изменений.
func Reduce(s State, a Action) (State, error) {
	next, err := a.apply(s.clone())
	if err != nil {
		return s, err
	}
	return next, nil
}

type AddSession struct {
	ID    ID
	Title string
}

func (a AddSession) apply(s State) (State, error) {
	s.Sessions = append(s.Sessions, Session{
		ID:       a.ID,
		Title:    a.Title,
		Order:    len(s.Sessions),
		Lessons:  []Lesson{},
		Expanded: true,
	})
	return s, nil
}

type SessionPatch struct {
	Title *string
}

type UpdateSession struct {
	ID    ID
	Patch SessionPatch
}

func (a UpdateSession) apply(s State) (State, error) {
	i := s.sessionIndex(a.ID)
	if i < 0 {
		return s, fmt.Errorf("%w: %s", ErrUnknownSession, a.ID)
	}
	if a.Patch.Title != nil {
		s.Sessions[i].Title = *a.Patch.Title
	}
	return s, nil
}

// DeleteSession убирает сессию вместе с уроками. Порядок оставшихся
// не перенумеровывается: это сделает сервер при сохранении.
type DeleteSession struct {
	ID ID
}

func (a DeleteSession) apply(s State) (State, error) {
	i := s.sessionIndex(a.ID)
	if i < 0 {
		return s, fmt.Errorf("%w: %s", ErrUnknownSession, a.ID)
	}
	s.Sessions = append(s.Sessions[:i], s.Sessions[i+1:]...)
	return s, nil
}

type ToggleExpand struct {
	ID ID
}

func (a ToggleExpand) apply(s State) (State, error) {
	i := s.sessionIndex(a.ID)
	if i < 0 {
		return s, fmt.Errorf("%w: %s", ErrUnknownSession, a.ID)
	}
	s.Sessions[i].Expanded = !s.Sessions[i].Expanded
	return s, nil
}

type AddLesson struct {
	SessionID ID
	ID        ID
	Title     string
}

func (a AddLesson) apply(s State) (State, error) {
	i := s.sessionIndex(a.SessionID)
	if i < 0 {
		return s, fmt.Errorf("%w: %s", ErrUnknownSession, a.SessionID)
	}
	sess := &s.Sessions[i]
	sess.Lessons = append(sess.Lessons, Lesson{
		ID:    a.ID,
		Title: a.Title,
		Type:  LessonVideo,
		Order: len(sess.Lessons),
	})
	return s, nil
}

type LessonPatch struct {
	Title    *string
	Type     *LessonType
	Duration *int
	// ClearDuration сбрасывает длительность в null.
	ClearDuration bool
}

type UpdateLesson struct {
	SessionID ID
	LessonID  ID
	Patch     LessonPatch
}

func (a UpdateLesson) apply(s State) (State, error) {
	i := s.sessionIndex(a.SessionID)
	if i < 0 {
		return s, fmt.Errorf("%w: %s", ErrUnknownSession, a.SessionID)
	}
	j := s.Sessions[i].lessonIndex(a.LessonID)
	if j < 0 {
		return s, fmt.Errorf("%w: %s", ErrUnknownLesson, a.LessonID)
	}
	l := &s.Sessions[i].Lessons[j]
	if a.Patch.Title != nil {
		l.Title = *a.Patch.Title
	}
	if a.Patch.Type != nil {
		l.Type = *a.Patch.Type
	}
	switch {
	case a.Patch.ClearDuration:
		l.Duration = nil
	case a.Patch.Duration != nil:
		d := *a.Patch.Duration
		l.Duration = &d
	}
	return s, nil
}

type DeleteLesson struct {
	SessionID ID
	LessonID  ID
}

func (a DeleteLesson) apply(s State) (State, error) {
	i := s.sessionIndex(a.SessionID)
	if i < 0 {
		return s, fmt.Errorf("%w: %s", ErrUnknownSession, a.SessionID)
	}
	j := s.Sessions[i].lessonIndex(a.LessonID)
	if j < 0 {
		return s, fmt.Errorf("%w: %s", ErrUnknownLesson, a.LessonID)
	}
	lessons := s.Sessions[i].Lessons
	s.Sessions[i].Lessons = append(lessons[:j], lessons[j+1:]...)
	return s, nil
}

type MoveSession struct {
	From int
	To   DropTarget
}

func (a MoveSession) apply(s State) (State, error) {
	s.Sessions = Move(s.Sessions, a.From, a.To)
	return s, nil
}

// MoveLesson переставляет уроки только внутри одной сессии.
type MoveLesson struct {
	SessionID ID
	From      int
	To        DropTarget
}

func (a MoveLesson) apply(s State) (State, error) {
	i := s.sessionIndex(a.SessionID)
	if i < 0 {
		return s, fmt.Errorf("%w: %s", ErrUnknownSession, a.SessionID)
	}
	s.Sessions[i].Lessons = Move(s.Sessions[i].Lessons, a.From, a.To)
	return s, nil
}

package coursetree

import (
	"strconv"
	"sync"
	"time"
)

// TokenSource выдаёт уникальные токены для временных идентификаторов.
type TokenSource func() string

// ClockTokens возвращает миллисекунды now(); при совпадении значений
// токен сдвигается вперёд, чтобы два быстрых добавления не получили один id.
func ClockTokens(now func() time.Time) TokenSource {
	var (
		mu   sync.Mutex
		last int64
	)
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		ms := now().UnixMilli()
		if ms <= last {
			ms = last + 1
		}
		last = ms
		return strconv.FormatInt(ms, 10)
	}
}

func SequenceTokens(start int64) TokenSource {
	next := start
	return func() string {
		v := next
		next++
		return strconv.FormatInt(v, 10)
	}
}

// Tree - контейнер состояния редактора структуры одного курса.
type Tree struct {
	state  State
	tokens TokenSource
}

// New открывает редактор над сохранённым деревом; все сессии свёрнуты.
func New(snap Snapshot, tokens TokenSource) *Tree {
	if tokens == nil {
		tokens = ClockTokens(time.Now)
	}
	return &Tree{state: FromSnapshot(snap), tokens: tokens}
}

func (t *Tree) State() State {
	return t.state.clone()
}

func (t *Tree) Snapshot() Snapshot {
	return t.state.Snapshot()
}

func (t *Tree) Dispatch(a Action) error {
	next, err := Reduce(t.state, a)
	if err != nil {
		return err
	}
	t.state = next
	return nil
}

func (t *Tree) AddSession(title string) ID {
	id := NewSessionID(t.tokens())
	_ = t.Dispatch(AddSession{ID: id, Title: title})
	return id
}

func (t *Tree) AddLesson(sessionID ID, title string) (ID, error) {
	id := NewLessonID(t.tokens())
	if err := t.Dispatch(AddLesson{SessionID: sessionID, ID: id, Title: title}); err != nil {
		return ID{}, err
	}
	return id, nil
}

func (t *Tree) RenameSession(id ID, title string) error {
	return t.Dispatch(UpdateSession{ID: id, Patch: SessionPatch{Title: &title}})
}

func (t *Tree) UpdateLesson(sessionID, lessonID ID, patch LessonPatch) error {
	return t.Dispatch(UpdateLesson{SessionID: sessionID, LessonID: lessonID, Patch: patch})
}

func (t *Tree) DeleteSession(id ID) error {
	return t.Dispatch(DeleteSession{ID: id})
}

func (t *Tree) DeleteLesson(sessionID, lessonID ID) error {
	return t.Dispatch(DeleteLesson{SessionID: sessionID, LessonID: lessonID})
}

func (t *Tree) ToggleExpand(id ID) error {
	return t.Dispatch(ToggleExpand{ID: id})
}

func (t *Tree) MoveSession(from int, to DropTarget) {
	_ = t.Dispatch(MoveSession{From: from, To: to})
}

func (t *Tree) MoveLesson(sessionID ID, from int, to DropTarget) error {
	return t.Dispatch(MoveLesson{SessionID: sessionID, From: from, To: to})
}

package coursepb

import (
	"fmt"

	"courseplatform/pkg/coursetree"
)

// FromSnapshot переводит дерево редактора в сообщение для CourseService.
func FromSnapshot(snap coursetree.Snapshot) *Structure {
	out := &Structure{Sessions: make([]*StructureSession, 0, len(snap.Sessions))}
	for _, s := range snap.Sessions {
		ps := &StructureSession{
			Id:      s.ID.String(),
			Title:   s.Title,
			Order:   int32(s.Order),
			Lessons: make([]*StructureLesson, 0, len(s.Lessons)),
		}
		for _, l := range s.Lessons {
			pl := &StructureLesson{
				Id:    l.ID.String(),
				Title: l.Title,
				Type:  string(l.Type),
				Order: int32(l.Order),
			}
			if l.Duration != nil {
				d := int32(*l.Duration)
				pl.Duration = &d
			}
			ps.Lessons = append(ps.Lessons, pl)
		}
		out.Sessions = append(out.Sessions, ps)
	}
	return out
}

// ToSnapshot разбирает идентификаторы и типы уроков. Пустой или чужой по
// префиксу id даёт ошибку с coursetree.ErrInvalidID.
func (x *Structure) ToSnapshot() (coursetree.Snapshot, error) {
	snap := coursetree.Snapshot{Sessions: make([]coursetree.Session, 0, len(x.GetSessions()))}
	for i, ps := range x.GetSessions() {
		id, err := coursetree.ParseID(ps.GetId())
		if err != nil {
			return coursetree.Snapshot{}, fmt.Errorf("session #%d: %w", i+1, err)
		}
		s := coursetree.Session{
			ID:      id,
			Title:   ps.GetTitle(),
			Order:   int(ps.GetOrder()),
			Lessons: make([]coursetree.Lesson, 0, len(ps.GetLessons())),
		}
		for j, pl := range ps.GetLessons() {
			lid, err := coursetree.ParseID(pl.GetId())
			if err != nil {
				return coursetree.Snapshot{}, fmt.Errorf("session #%d lesson #%d: %w", i+1, j+1, err)
			}
			typ, err := coursetree.ParseLessonType(pl.GetType())
			if err != nil {
				return coursetree.Snapshot{}, fmt.Errorf("session #%d lesson #%d: %w", i+1, j+1, err)
			}
			l := coursetree.Lesson{ID: lid, Title: pl.GetTitle(), Type: typ, Order: int(pl.GetOrder())}
			if pl.Duration != nil {
				d := int(pl.GetDuration())
				l.Duration = &d
			}
			s.Lessons = append(s.Lessons, l)
		}
		snap.Sessions = append(snap.Sessions, s)
	}
	if err := snap.Validate(); err != nil {
		return coursetree.Snapshot{}, err
	}
	return snap, nil
}

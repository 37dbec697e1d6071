package usecase

import (
	"sort"
	"strings"

	"courseplatform/pkg/coursetree"
	"courseplatform/services/course-service/internal/domain"

	"github.com/google/uuid"
)

// Diff сравнивает присланное дерево с сохранённым и строит упорядоченный план:
// удаления сессий -> сессии в порядке снимка -> внутри сессии удаления уроков
// раньше созданий и обновлений. Сам Diff хранилище не трогает.
//
// Порядок сессий и уроков существующих сессий нормализуется: стабильная
// сортировка по присланному order и перенумерация 0..n-1. Уроки новой сессии
// получают order по позиции в списке.
func Diff(courseID uuid.UUID, persisted []domain.CourseSession, snap coursetree.Snapshot, newID func() uuid.UUID) (domain.StructurePlan, error) {
	plan := domain.StructurePlan{CourseID: courseID}

	if err := checkSnapshot(snap); err != nil {
		return plan, err
	}

	stored := make(map[uuid.UUID]*domain.CourseSession, len(persisted))
	for i := range persisted {
		stored[persisted[i].ID] = &persisted[i]
	}

	kept := make(map[uuid.UUID]bool, len(snap.Sessions))
	for _, s := range snap.Sessions {
		id, ok := s.ID.UUID()
		if !ok {
			continue
		}
		if _, known := stored[id]; !known {
			return plan, domain.Validationf("session %s does not belong to this course", id)
		}
		kept[id] = true
	}

	for _, p := range persisted {
		if !kept[p.ID] {
			plan.Ops = append(plan.Ops, domain.StructureOp{Kind: domain.OpDeleteSession, TargetID: p.ID})
		}
	}

	sessionOrder := denseOrder(len(snap.Sessions), func(i int) int { return snap.Sessions[i].Order })

	for i, s := range snap.Sessions {
		id, existing := s.ID.UUID()
		if !existing {
			plan.Ops = append(plan.Ops, newSessionOps(courseID, s, sessionOrder[i], newID)...)
			continue
		}

		plan.Ops = append(plan.Ops, domain.StructureOp{
			Kind: domain.OpUpdateSession,
			Session: &domain.CourseSession{
				ID:       id,
				CourseID: courseID,
				Title:    strings.TrimSpace(s.Title),
				Order:    sessionOrder[i],
			},
		})

		ops, err := lessonOps(stored[id], s.Lessons, newID)
		if err != nil {
			return domain.StructurePlan{CourseID: courseID}, err
		}
		plan.Ops = append(plan.Ops, ops...)
	}

	return plan, nil
}

func newSessionOps(courseID uuid.UUID, s coursetree.Session, order int, newID func() uuid.UUID) []domain.StructureOp {
	session := &domain.CourseSession{
		ID:       newID(),
		CourseID: courseID,
		Title:    strings.TrimSpace(s.Title),
		Order:    order,
	}
	ops := []domain.StructureOp{{Kind: domain.OpCreateSession, Session: session}}

	// Новая сессия не может ссылаться на сохранённый урок.
	var lessons []domain.Lesson
	for _, l := range s.Lessons {
		if !l.ID.IsPending() {
			continue
		}
		lessons = append(lessons, toLesson(l, newID(), session.ID, len(lessons)))
	}
	if len(lessons) > 0 {
		ops = append(ops, domain.StructureOp{Kind: domain.OpCreateLessons, Lessons: lessons})
	}
	return ops
}

func lessonOps(stored *domain.CourseSession, incoming []coursetree.Lesson, newID func() uuid.UUID) ([]domain.StructureOp, error) {
	known := make(map[uuid.UUID]bool, len(stored.Lessons))
	for _, l := range stored.Lessons {
		known[l.ID] = true
	}

	kept := make(map[uuid.UUID]bool, len(incoming))
	for _, l := range incoming {
		id, ok := l.ID.UUID()
		if !ok {
			continue
		}
		if !known[id] {
			// Перенос урока между сессиями не поддерживается.
			return nil, domain.Validationf("lesson %s is not part of session %s", id, stored.ID)
		}
		kept[id] = true
	}

	var ops []domain.StructureOp
	for _, l := range stored.Lessons {
		if !kept[l.ID] {
			ops = append(ops, domain.StructureOp{Kind: domain.OpDeleteLesson, TargetID: l.ID})
		}
	}

	order := denseOrder(len(incoming), func(i int) int { return incoming[i].Order })
	for i, l := range incoming {
		if id, ok := l.ID.UUID(); ok {
			ops = append(ops, domain.StructureOp{
				Kind:    domain.OpUpdateLesson,
				Lessons: []domain.Lesson{toLesson(l, id, stored.ID, order[i])},
			})
			continue
		}
		ops = append(ops, domain.StructureOp{
			Kind:    domain.OpCreateLessons,
			Lessons: []domain.Lesson{toLesson(l, newID(), stored.ID, order[i])},
		})
	}
	return ops, nil
}

func toLesson(l coursetree.Lesson, id, sessionID uuid.UUID, order int) domain.Lesson {
	lessonType := string(l.Type)
	if lessonType == "" {
		lessonType = domain.LessonVideo
	}
	var duration *int
	if l.Duration != nil {
		d := *l.Duration
		duration = &d
	}
	return domain.Lesson{
		ID:        id,
		SessionID: sessionID,
		Title:     strings.TrimSpace(l.Title),
		Type:      lessonType,
		Duration:  duration,
		Order:     order,
	}
}

// denseOrder возвращает для каждого элемента его место после стабильной
// сортировки по присланному order.
func denseOrder(n int, orderOf func(int) int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return orderOf(idx[a]) < orderOf(idx[b]) })

	rank := make([]int, n)
	for pos, i := range idx {
		rank[i] = pos
	}
	return rank
}

func checkSnapshot(snap coursetree.Snapshot) error {
	if err := snap.Validate(); err != nil {
		return domain.Validationf("%v", err)
	}

	seen := make(map[coursetree.ID]bool)
	visit := func(kind string, id coursetree.ID) error {
		if seen[id] {
			return domain.Validationf("duplicate %s id %s", kind, id)
		}
		seen[id] = true
		return nil
	}

	for _, s := range snap.Sessions {
		if err := visit("session", s.ID); err != nil {
			return err
		}
		if err := validateStruct(structureNode{Title: s.Title}); err != nil {
			return err
		}
		for _, l := range s.Lessons {
			if err := visit("lesson", l.ID); err != nil {
				return err
			}
			if err := validateStruct(structureNode{Title: l.Title, Type: string(l.Type), Duration: l.Duration}); err != nil {
				return err
			}
		}
	}
	return nil
}

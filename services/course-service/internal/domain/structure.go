package domain

import (
	"github.com/google/uuid"
)

type OpKind string

const (
	OpDeleteSession OpKind = "delete_session"
	OpCreateSession OpKind = "create_session"
	OpUpdateSession OpKind = "update_session"
	OpDeleteLesson  OpKind = "delete_lesson"
	OpCreateLessons OpKind = "create_lessons"
	OpUpdateLesson  OpKind = "update_lesson"
)

// StructureOp - одна операция над хранилищем при сохранении структуры курса.
// Для delete_* заполнен TargetID, для create_session/update_session - Session,
// для create_lessons - Lessons (пачкой), для update_lesson - Lessons[0].
type StructureOp struct {
	Kind     OpKind
	TargetID uuid.UUID
	Session  *CourseSession
	Lessons  []Lesson
}

// StructurePlan - упорядоченный список операций. Выполняется целиком в одной транзакции.
type StructurePlan struct {
	CourseID uuid.UUID
	Ops      []StructureOp
}

type PlanCounts struct {
	Created int
	Updated int
	Deleted int
}

func (p StructurePlan) Counts() PlanCounts {
	var c PlanCounts
	for _, op := range p.Ops {
		switch op.Kind {
		case OpCreateSession:
			c.Created++
		case OpCreateLessons:
			c.Created += len(op.Lessons)
		case OpUpdateSession, OpUpdateLesson:
			c.Updated++
		case OpDeleteSession, OpDeleteLesson:
			c.Deleted++
		}
	}
	return c
}

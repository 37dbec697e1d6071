package usecase

import (
	"context"

	"courseplatform/pkg/coursetree"
	"courseplatform/pkg/logger"
	"courseplatform/services/course-service/internal/domain"
	"courseplatform/services/course-service/internal/infrastructure/repository"

	"github.com/google/uuid"
)

type StructureUseCase struct {
	courses   *repository.CourseRepository
	structure *repository.StructureRepository
	log       *logger.Logger
	newID     func() uuid.UUID
}

func NewStructureUseCase(cr *repository.CourseRepository, sr *repository.StructureRepository, log *logger.Logger) *StructureUseCase {
	return &StructureUseCase{
		courses:   cr,
		structure: sr,
		log:       log.With("component", "structure"),
		newID:     uuid.New,
	}
}

type SaveResult struct {
	Counts    domain.PlanCounts
	Structure coursetree.Snapshot
}

func (uc *StructureUseCase) authorize(ctx context.Context, actor domain.Actor, courseID uuid.UUID) error {
	if !actor.IsAdmin() {
		return domain.ErrNotAdmin
	}
	course, err := uc.courses.GetByID(ctx, courseID)
	if err != nil {
		return err
	}
	return actor.CanEdit(course)
}

func (uc *StructureUseCase) Get(ctx context.Context, actor domain.Actor, courseID uuid.UUID) (coursetree.Snapshot, error) {
	if err := uc.authorize(ctx, actor, courseID); err != nil {
		return coursetree.Snapshot{}, err
	}
	sessions, err := uc.structure.LoadSessions(ctx, courseID)
	if err != nil {
		return coursetree.Snapshot{}, err
	}
	return ToSnapshot(sessions), nil
}

// Save приводит сохранённую структуру курса к присланному снимку.
// Временные id в ответе заменены на выданные хранилищем.
func (uc *StructureUseCase) Save(ctx context.Context, actor domain.Actor, courseID uuid.UUID, snap coursetree.Snapshot) (*SaveResult, error) {
	if err := uc.authorize(ctx, actor, courseID); err != nil {
		return nil, err
	}

	persisted, err := uc.structure.LoadSessions(ctx, courseID)
	if err != nil {
		return nil, err
	}

	plan, err := Diff(courseID, persisted, snap, uc.newID)
	if err != nil {
		return nil, err
	}

	if err := uc.structure.Apply(ctx, plan); err != nil {
		uc.log.Error("structure save failed", "course_id", courseID, "ops", len(plan.Ops), "error", err)
		return nil, err
	}
	uc.courses.Invalidate(ctx, courseID)

	counts := plan.Counts()
	uc.log.Info("structure saved",
		"course_id", courseID,
		"created", counts.Created,
		"updated", counts.Updated,
		"deleted", counts.Deleted,
	)

	sessions, err := uc.structure.LoadSessions(ctx, courseID)
	if err != nil {
		return nil, err
	}
	return &SaveResult{Counts: counts, Structure: ToSnapshot(sessions)}, nil
}

func ToSnapshot(sessions []domain.CourseSession) coursetree.Snapshot {
	snap := coursetree.Snapshot{Sessions: make([]coursetree.Session, 0, len(sessions))}
	for _, s := range sessions {
		sess := coursetree.Session{
			ID:      coursetree.Persisted(s.ID),
			Title:   s.Title,
			Order:   s.Order,
			Lessons: make([]coursetree.Lesson, 0, len(s.Lessons)),
		}
		for _, l := range s.Lessons {
			lessonType, err := coursetree.ParseLessonType(l.Type)
			if err != nil {
				lessonType = coursetree.LessonVideo
			}
			var duration *int
			if l.Duration != nil {
				d := *l.Duration
				duration = &d
			}
			sess.Lessons = append(sess.Lessons, coursetree.Lesson{
				ID:       coursetree.Persisted(l.ID),
				Title:    l.Title,
				Type:     lessonType,
				Duration: duration,
				Order:    l.Order,
			})
		}
		snap.Sessions = append(snap.Sessions, sess)
	}
	return snap
}

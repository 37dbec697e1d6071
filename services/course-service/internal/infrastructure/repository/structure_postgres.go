package repository

import (
	"context"
	"fmt"

	"courseplatform/services/course-service/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StructureRepository struct {
	db *gorm.DB
}

func NewStructureRepository(db *gorm.DB) *StructureRepository {
	return &StructureRepository{db: db}
}

// LoadSessions отдаёт сохранённые сессии курса с уроками, обе выборки по order.
func (r *StructureRepository) LoadSessions(ctx context.Context, courseID uuid.UUID) ([]domain.CourseSession, error) {
	var sessions []domain.CourseSession
	err := r.db.WithContext(ctx).
		Preload("Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("\"order\" asc")
		}).
		Where("course_id = ?", courseID).
		Order("\"order\" asc").
		Find(&sessions).Error
	if err != nil {
		return nil, domain.Persistence("load sessions", err)
	}
	return sessions, nil
}

// Apply выполняет план в одной транзакции: при любой ошибке структура остаётся прежней.
func (r *StructureRepository) Apply(ctx context.Context, plan domain.StructurePlan) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, op := range plan.Ops {
			if err := applyOp(tx, plan.CourseID, op); err != nil {
				return fmt.Errorf("op %d (%s): %w", i, op.Kind, err)
			}
		}
		return nil
	})
	if err != nil {
		return domain.Persistence("apply structure", err)
	}
	return nil
}

func applyOp(tx *gorm.DB, courseID uuid.UUID, op domain.StructureOp) error {
	switch op.Kind {
	case domain.OpDeleteSession:
		if err := tx.Where("session_id = ?", op.TargetID).Delete(&domain.Lesson{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ? AND course_id = ?", op.TargetID, courseID).Delete(&domain.CourseSession{}).Error

	case domain.OpCreateSession:
		return tx.Omit("Lessons").Create(op.Session).Error

	case domain.OpUpdateSession:
		return tx.Model(&domain.CourseSession{}).
			Where("id = ? AND course_id = ?", op.Session.ID, courseID).
			Updates(map[string]interface{}{
				"title": op.Session.Title,
				"order": op.Session.Order,
			}).Error

	case domain.OpDeleteLesson:
		return tx.Delete(&domain.Lesson{}, "id = ?", op.TargetID).Error

	case domain.OpCreateLessons:
		if len(op.Lessons) == 0 {
			return nil
		}
		return tx.Create(&op.Lessons).Error

	case domain.OpUpdateLesson:
		l := op.Lessons[0]
		return tx.Model(&domain.Lesson{}).
			Where("id = ? AND session_id = ?", l.ID, l.SessionID).
			Updates(map[string]interface{}{
				"title":    l.Title,
				"type":     l.Type,
				"duration": l.Duration,
				"order":    l.Order,
			}).Error
	}
	return fmt.Errorf("unknown structure op %q", op.Kind)
}

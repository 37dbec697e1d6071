package repository

import (
	"context"
	"errors"
	"time"

	"courseplatform/services/course-service/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

var userLessonConflict = []clause.Column{{Name: "user_id"}, {Name: "lesson_id"}}

// SaveSeconds обновляет позицию видео. Флаг completed не трогается.
func (r *ProgressRepository) SaveSeconds(ctx context.Context, userID, lessonID uuid.UUID, seconds int) error {
	row := domain.LessonProgress{UserID: userID, LessonID: lessonID, ProgressSeconds: seconds}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   userLessonConflict,
		DoUpdates: clause.AssignmentColumns([]string{"progress_seconds", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return domain.Persistence("save progress", err)
	}
	return nil
}

// Повторное завершение не сдвигает completed_at: остаётся время первого.
func (r *ProgressRepository) MarkCompleted(ctx context.Context, userID, lessonID uuid.UUID, at time.Time) error {
	row := domain.LessonProgress{UserID: userID, LessonID: lessonID, Completed: true, CompletedAt: &at}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: userLessonConflict,
		DoUpdates: clause.Assignments(map[string]interface{}{
			"completed":    true,
			"completed_at": gorm.Expr("COALESCE(lesson_progress.completed_at, excluded.completed_at)"),
			"updated_at":   gorm.Expr("excluded.updated_at"),
		}),
	}).Create(&row).Error
	if err != nil {
		return domain.Persistence("mark lesson complete", err)
	}
	return nil
}

// Get возвращает нулевой прогресс, если пользователь урок ещё не открывал.
func (r *ProgressRepository) Get(ctx context.Context, userID, lessonID uuid.UUID) (*domain.LessonProgress, error) {
	var p domain.LessonProgress
	err := r.db.WithContext(ctx).Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &domain.LessonProgress{UserID: userID, LessonID: lessonID}, nil
	}
	if err != nil {
		return nil, domain.Persistence("get progress", err)
	}
	return &p, nil
}

// CompletedInCourse - id завершённых пользователем уроков, которые сейчас входят в курс.
func (r *ProgressRepository) CompletedInCourse(ctx context.Context, userID, courseID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&domain.LessonProgress{}).
		Joins("JOIN lessons ON lessons.id = lesson_progress.lesson_id").
		Joins("JOIN course_sessions ON course_sessions.id = lessons.session_id").
		Where("lesson_progress.user_id = ? AND lesson_progress.completed = ? AND course_sessions.course_id = ?", userID, true, courseID).
		Pluck("lesson_progress.lesson_id", &ids).Error
	if err != nil {
		return nil, domain.Persistence("list completed lessons", err)
	}
	return ids, nil
}

func (r *ProgressRepository) CountCourseLessons(ctx context.Context, courseID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Lesson{}).
		Joins("JOIN course_sessions ON course_sessions.id = lessons.session_id").
		Where("course_sessions.course_id = ?", courseID).
		Count(&count).Error
	if err != nil {
		return 0, domain.Persistence("count course lessons", err)
	}
	return count, nil
}

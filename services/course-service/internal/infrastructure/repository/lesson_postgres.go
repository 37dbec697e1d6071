package repository

import (
	"context"
	"errors"

	"courseplatform/services/course-service/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LessonRepository struct {
	db *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{db: db}
}

func lessonErr(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrLessonNotFound
	}
	return domain.Persistence(op, err)
}

// GetDetail поднимает цепочку урок -> сессия -> курс.
func (r *LessonRepository) GetDetail(ctx context.Context, id uuid.UUID) (*domain.LessonDetail, error) {
	var d domain.LessonDetail
	db := r.db.WithContext(ctx)

	if err := db.First(&d.Lesson, "id = ?", id).Error; err != nil {
		return nil, lessonErr("get lesson", err)
	}
	if err := db.First(&d.Session, "id = ?", d.Lesson.SessionID).Error; err != nil {
		return nil, lessonErr("get lesson session", err)
	}
	if err := db.First(&d.Course, "id = ?", d.Session.CourseID).Error; err != nil {
		return nil, lessonErr("get lesson course", err)
	}
	return &d, nil
}

// Update сохраняет поля редактора урока. Тип, порядок и сессия меняются только через структуру.
func (r *LessonRepository) Update(ctx context.Context, l *domain.Lesson) error {
	res := r.db.WithContext(ctx).Model(&domain.Lesson{}).
		Where("id = ?", l.ID).
		Updates(map[string]interface{}{
			"title":         l.Title,
			"duration":      l.Duration,
			"thumbnail_key": l.ThumbnailKey,
			"video_key":     l.VideoKey,
			"content":       l.Content,
		})
	if res.Error != nil {
		return lessonErr("update lesson", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrLessonNotFound
	}
	return nil
}

// BelongsToCourse проверяет, что урок входит в курс.
func (r *LessonRepository) BelongsToCourse(ctx context.Context, lessonID, courseID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Lesson{}).
		Joins("JOIN course_sessions ON course_sessions.id = lessons.session_id").
		Where("lessons.id = ? AND course_sessions.course_id = ?", lessonID, courseID).
		Count(&count).Error
	if err != nil {
		return false, domain.Persistence("check lesson course", err)
	}
	return count > 0, nil
}

func (r *LessonRepository) Exists(ctx context.Context, lessonID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Lesson{}).Where("id = ?", lessonID).Count(&count).Error; err != nil {
		return false, domain.Persistence("check lesson", err)
	}
	return count > 0, nil
}

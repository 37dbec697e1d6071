package repository

import (
	"context"
	"errors"
	"time"

	"courseplatform/services/course-service/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

func (r *EnrollmentRepository) Get(ctx context.Context, userID, courseID uuid.UUID) (*domain.CourseEnrollment, error) {
	var e domain.CourseEnrollment
	err := r.db.WithContext(ctx).Where("user_id = ? AND course_id = ?", userID, courseID).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotEnrolled
	}
	if err != nil {
		return nil, domain.Persistence("get enrollment", err)
	}
	return &e, nil
}

// Enroll идемпотентен: повторный вызов вернёт существующую запись.
func (r *EnrollmentRepository) Enroll(ctx context.Context, userID, courseID uuid.UUID) (*domain.CourseEnrollment, error) {
	e := domain.CourseEnrollment{UserID: userID, CourseID: courseID}
	err := r.db.WithContext(ctx).
		Where(domain.CourseEnrollment{UserID: userID, CourseID: courseID}).
		FirstOrCreate(&e).Error
	if err != nil {
		return nil, domain.Persistence("enroll", err)
	}
	return &e, nil
}

// StampCompleted проставляет completed_at только если он ещё пуст.
// Возвращает true, если отметка поставлена этим вызовом.
func (r *EnrollmentRepository) StampCompleted(ctx context.Context, userID, courseID uuid.UUID, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&domain.CourseEnrollment{}).
		Where("user_id = ? AND course_id = ? AND completed_at IS NULL", userID, courseID).
		Update("completed_at", at)
	if res.Error != nil {
		return false, domain.Persistence("complete enrollment", res.Error)
	}
	return res.RowsAffected > 0, nil
}

package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompletionThreshold - доля просмотренного видео, после которой урок засчитывается.
const CompletionThreshold = 0.90

// LessonProgress - одна запись на пару (пользователь, урок). Строки не удаляются,
// даже если урок убрали из структуры курса.
type LessonProgress struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_progress_user_lesson"`
	LessonID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_progress_user_lesson"`
	Completed       bool      `gorm:"not null;default:false"`
	CompletedAt     *time.Time
	ProgressSeconds int `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LessonProgress) TableName() string {
	return "lesson_progress"
}

func (p *LessonProgress) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type CourseEnrollment struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_enrollment_user_course"`
	CourseID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_enrollment_user_course"`
	EnrolledAt  time.Time
	CompletedAt *time.Time
}

func (CourseEnrollment) TableName() string {
	return "course_enrollments"
}

func (e *CourseEnrollment) BeforeCreate(*gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.EnrolledAt.IsZero() {
		e.EnrolledAt = time.Now().UTC()
	}
	return nil
}

// CourseProgress - сводка прохождения курса пользователем.
type CourseProgress struct {
	Percent          int
	CompletedLessons int
	TotalLessons     int
	CompletedIDs     []uuid.UUID
	NextLessonID     uuid.UUID // uuid.Nil, если в курсе нет уроков
	CompletedAt      *time.Time
}

package usecase_test

import (
	"testing"

	"courseplatform/pkg/logger"
	"courseplatform/services/course-service/internal/application/usecase"
	"courseplatform/services/course-service/internal/domain"
	"courseplatform/services/course-service/internal/infrastructure/repository"
	"courseplatform/services/course-service/internal/testutil"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type env struct {
	db        *gorm.DB
	courses   *usecase.CourseUseCase
	structure *usecase.StructureUseCase
	progress  *usecase.ProgressUseCase
	owner     domain.Actor
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db := testutil.NewDB(t)
	log := logger.Nop()

	courseRepo := repository.NewCourseRepository(db, nil)
	lessonRepo := repository.NewLessonRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)

	return &env{
		db:        db,
		courses:   usecase.NewCourseUseCase(courseRepo, lessonRepo, enrollmentRepo, log),
		structure: usecase.NewStructureUseCase(courseRepo, repository.NewStructureRepository(db), log),
		progress:  usecase.NewProgressUseCase(repository.NewProgressRepository(db), lessonRepo, courseRepo, enrollmentRepo, log),
		owner:     domain.Actor{UserID: uuid.New(), Role: domain.RoleAdmin},
	}
}

func (e *env) sessionIDs(t *testing.T, courseID uuid.UUID) []uuid.UUID {
	t.Helper()
	var ids []uuid.UUID
	if err := e.db.Model(&domain.CourseSession{}).Where("course_id = ?", courseID).Pluck("id", &ids).Error; err != nil {
		t.Fatalf("pluck sessions: %v", err)
	}
	return ids
}

func (e *env) lessonsOf(t *testing.T, sessionID uuid.UUID) []domain.Lesson {
	t.Helper()
	var lessons []domain.Lesson
	if err := e.db.Where("session_id = ?", sessionID).Order("\"order\" asc").Find(&lessons).Error; err != nil {
		t.Fatalf("find lessons: %v", err)
	}
	return lessons
}

package usecase

import (
	"context"
	"errors"
	"math"
	"time"

	"courseplatform/pkg/logger"
	"courseplatform/services/course-service/internal/domain"
	"courseplatform/services/course-service/internal/infrastructure/repository"

	"github.com/google/uuid"
)

type ProgressUseCase struct {
	progress    *repository.ProgressRepository
	lessons     *repository.LessonRepository
	courses     *repository.CourseRepository
	enrollments *repository.EnrollmentRepository
	log         *logger.Logger
	now         func() time.Time
}

func NewProgressUseCase(
	pr *repository.ProgressRepository,
	lr *repository.LessonRepository,
	cr *repository.CourseRepository,
	er *repository.EnrollmentRepository,
	log *logger.Logger,
) *ProgressUseCase {
	return &ProgressUseCase{
		progress:    pr,
		lessons:     lr,
		courses:     cr,
		enrollments: er,
		log:         log.With("component", "progress"),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// UpdateProgress запоминает позицию видео. Завершённость урока не меняется.
func (uc *ProgressUseCase) UpdateProgress(ctx context.Context, userID, lessonID uuid.UUID, seconds int) error {
	if seconds < 0 {
		return domain.Validationf("progress seconds must not be negative")
	}
	ok, err := uc.lessons.Exists(ctx, lessonID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrLessonNotFound
	}
	return uc.progress.SaveSeconds(ctx, userID, lessonID, seconds)
}

// MarkComplete отмечает урок пройденным и, если пройдены все уроки курса,
// закрывает запись на курс. Возвращает true, когда курс пройден целиком.
func (uc *ProgressUseCase) MarkComplete(ctx context.Context, userID, lessonID, courseID uuid.UUID) (bool, error) {
	ok, err := uc.lessons.BelongsToCourse(ctx, lessonID, courseID)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, domain.ErrLessonNotFound
	}

	if err := uc.progress.MarkCompleted(ctx, userID, lessonID, uc.now()); err != nil {
		return false, err
	}
	return uc.checkCourseCompletion(ctx, userID, courseID)
}

func (uc *ProgressUseCase) checkCourseCompletion(ctx context.Context, userID, courseID uuid.UUID) (bool, error) {
	total, err := uc.progress.CountCourseLessons(ctx, courseID)
	if err != nil {
		return false, err
	}
	if total == 0 {
		return false, nil
	}
	completed, err := uc.progress.CompletedInCourse(ctx, userID, courseID)
	if err != nil {
		return false, err
	}
	if int64(len(completed)) < total {
		return false, nil
	}

	stamped, err := uc.enrollments.StampCompleted(ctx, userID, courseID, uc.now())
	if err != nil {
		return true, err
	}
	if stamped {
		uc.log.Info("course completed", "user_id", userID, "course_id", courseID)
	}
	return true, nil
}

// CheckVideoCompletion засчитывает урок, когда просмотрено не меньше 90% видео.
// Нулевая или отрицательная длительность - урок пока нельзя завершить.
func (uc *ProgressUseCase) CheckVideoCompletion(ctx context.Context, userID, lessonID, courseID uuid.UUID, current, total float64) (bool, error) {
	if total <= 0 || math.IsNaN(current) {
		return false, nil
	}
	if current/total < domain.CompletionThreshold {
		return false, nil
	}
	if _, err := uc.MarkComplete(ctx, userID, lessonID, courseID); err != nil {
		return false, err
	}
	return true, nil
}

func (uc *ProgressUseCase) GetLessonProgress(ctx context.Context, userID, lessonID uuid.UUID) (*domain.LessonProgress, error) {
	return uc.progress.Get(ctx, userID, lessonID)
}

func (uc *ProgressUseCase) GetCourseProgress(ctx context.Context, userID, courseID uuid.UUID) (*domain.CourseProgress, error) {
	course, err := uc.courses.GetWithStructure(ctx, courseID)
	if err != nil {
		return nil, err
	}
	completedIDs, err := uc.progress.CompletedInCourse(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	done := make(map[uuid.UUID]bool, len(completedIDs))
	for _, id := range completedIDs {
		done[id] = true
	}

	lessons := course.OrderedLessons()
	out := &domain.CourseProgress{
		CompletedLessons: len(completedIDs),
		TotalLessons:     len(lessons),
		CompletedIDs:     completedIDs,
	}
	if len(lessons) > 0 {
		out.Percent = int(math.Round(float64(len(completedIDs)) / float64(len(lessons)) * 100))
		out.NextLessonID = lessons[0].ID
		for _, l := range lessons {
			if !done[l.ID] {
				out.NextLessonID = l.ID
				break
			}
		}
	}

	enrollment, err := uc.enrollments.Get(ctx, userID, courseID)
	switch {
	case err == nil:
		out.CompletedAt = enrollment.CompletedAt
	case !errors.Is(err, domain.ErrNotEnrolled):
		return nil, err
	}
	return out, nil
}

package usecase

import (
	"context"
	"errors"
	"strings"

	"courseplatform/pkg/logger"
	"courseplatform/services/course-service/internal/domain"
	"courseplatform/services/course-service/internal/infrastructure/repository"

	"github.com/google/uuid"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type CourseUseCase struct {
	courses     *repository.CourseRepository
	lessons     *repository.LessonRepository
	enrollments *repository.EnrollmentRepository
	log         *logger.Logger
}

func NewCourseUseCase(
	cr *repository.CourseRepository,
	lr *repository.LessonRepository,
	er *repository.EnrollmentRepository,
	log *logger.Logger,
) *CourseUseCase {
	return &CourseUseCase{
		courses:     cr,
		lessons:     lr,
		enrollments: er,
		log:         log.With("component", "course"),
	}
}

func (f CourseForm) normalized() CourseForm {
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)
	f.SmallDescription = strings.TrimSpace(f.SmallDescription)
	f.Slug = strings.TrimSpace(f.Slug)
	return f
}

func (f CourseForm) apply(c *domain.Course) {
	c.Title = f.Title
	c.Description = f.Description
	c.SmallDescription = f.SmallDescription
	c.FileKey = f.FileKey
	c.Price = f.Price
	c.Duration = f.Duration
	c.Level = f.Level
	c.Category = f.Category
	c.Slug = f.Slug
	c.Status = f.Status
}

// === Админка ===

func (uc *CourseUseCase) Create(ctx context.Context, actor domain.Actor, form CourseForm) (*domain.Course, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrNotAdmin
	}
	form = form.normalized()
	if err := validateStruct(form); err != nil {
		return nil, err
	}

	course := &domain.Course{ID: uuid.New(), UserID: actor.UserID}
	form.apply(course)
	if err := uc.courses.Create(ctx, course); err != nil {
		return nil, err
	}
	uc.log.Info("course created", "course_id", course.ID, "owner", actor.UserID)
	return course, nil
}

func (uc *CourseUseCase) editable(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Course, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrNotAdmin
	}
	course, err := uc.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := actor.CanEdit(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (uc *CourseUseCase) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, form CourseForm) (*domain.Course, error) {
	course, err := uc.editable(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	form = form.normalized()
	if err := validateStruct(form); err != nil {
		return nil, err
	}
	form.apply(course)
	if err := uc.courses.Update(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (uc *CourseUseCase) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	if _, err := uc.editable(ctx, actor, id); err != nil {
		return err
	}
	if err := uc.courses.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info("course deleted", "course_id", id, "by", actor.UserID)
	return nil
}

func (uc *CourseUseCase) ListOwn(ctx context.Context, actor domain.Actor) ([]domain.Course, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrNotAdmin
	}
	return uc.courses.ListByOwner(ctx, actor.UserID)
}

func (uc *CourseUseCase) GetOwn(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Course, error) {
	if _, err := uc.editable(ctx, actor, id); err != nil {
		return nil, err
	}
	return uc.courses.GetWithStructure(ctx, id)
}

// === Редактор урока ===

func (uc *CourseUseCase) GetLesson(ctx context.Context, actor domain.Actor, lessonID uuid.UUID) (*domain.LessonDetail, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrNotAdmin
	}
	detail, err := uc.lessons.GetDetail(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	if err := actor.CanEdit(&detail.Course); err != nil {
		return nil, err
	}
	return detail, nil
}

func (uc *CourseUseCase) UpdateLesson(ctx context.Context, actor domain.Actor, lessonID uuid.UUID, form LessonForm) (*domain.Lesson, error) {
	detail, err := uc.GetLesson(ctx, actor, lessonID)
	if err != nil {
		return nil, err
	}
	form.Title = strings.TrimSpace(form.Title)
	if err := validateStruct(form); err != nil {
		return nil, err
	}

	lesson := detail.Lesson
	lesson.Title = form.Title
	lesson.Duration = form.Duration
	lesson.ThumbnailKey = form.ThumbnailKey
	lesson.VideoKey = form.VideoKey
	lesson.Content = form.Content

	if err := uc.lessons.Update(ctx, &lesson); err != nil {
		return nil, err
	}
	uc.courses.Invalidate(ctx, detail.Course.ID)
	return &lesson, nil
}

// === Каталог ===

func (uc *CourseUseCase) ListPublished(ctx context.Context, search, category string, limit, offset int) ([]domain.Course, int64, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return uc.courses.List(ctx, strings.TrimSpace(search), category, limit, offset)
}

// GetPublished отдаёт курс и признак записи на него. userID может быть uuid.Nil для гостя.
func (uc *CourseUseCase) GetPublished(ctx context.Context, userID, courseID uuid.UUID) (*domain.Course, bool, error) {
	course, err := uc.courses.GetPublished(ctx, courseID)
	if err != nil {
		return nil, false, err
	}
	if userID == uuid.Nil {
		return course, false, nil
	}
	_, err = uc.enrollments.Get(ctx, userID, courseID)
	switch {
	case err == nil:
		return course, true, nil
	case errors.Is(err, domain.ErrNotEnrolled):
		return course, false, nil
	default:
		return nil, false, err
	}
}

// Enroll записывает на бесплатный курс. Платные курсы здесь не оформляются.
func (uc *CourseUseCase) Enroll(ctx context.Context, userID, courseID uuid.UUID) (*domain.CourseEnrollment, error) {
	course, err := uc.courses.GetPublished(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course.Price > 0 {
		return nil, domain.ErrCourseIsPaid
	}
	enrollment, err := uc.enrollments.Enroll(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	uc.log.Debug("enrolled", "user_id", userID, "course_id", courseID)
	return enrollment, nil
}

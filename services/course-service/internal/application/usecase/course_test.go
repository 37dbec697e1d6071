package usecase_test

import (
	"context"
	"errors"
	"testing"

	"courseplatform/services/course-service/internal/application/usecase"
	"courseplatform/services/course-service/internal/domain"
	"courseplatform/services/course-service/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() usecase.CourseForm {
	return usecase.CourseForm{
		Title:            "Web Application Security",
		Description:      "From injection to broken access control, with labs.",
		SmallDescription: "Break and fix real web apps",
		FileKey:          "a1b2-cover.png",
		Price:            0,
		Duration:         12,
		Level:            domain.LevelIntermediate,
		Category:         "Web Application Security",
		Slug:             "web-app-sec",
		Status:           domain.StatusDraft,
	}
}

func TestCreateCourse(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	course, err := e.courses.Create(ctx, e.owner, validForm())
	require.NoError(t, err)
	assert.Equal(t, e.owner.UserID, course.UserID)

	own, err := e.courses.ListOwn(ctx, e.owner)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, course.ID, own[0].ID)

	_, err = e.courses.Create(ctx, e.owner, validForm())
	assert.ErrorIs(t, err, domain.ErrSlugTaken)

	_, err = e.courses.Create(ctx, domain.Actor{UserID: uuid.New(), Role: domain.RoleUser}, validForm())
	assert.ErrorIs(t, err, domain.ErrNotAdmin)
}

func TestCreateCourse_Validation(t *testing.T) {
	e := newEnv(t)
	form := validForm()
	form.Title = "ab"
	form.Category = "Cooking"
	form.Duration = 0

	_, err := e.courses.Create(context.Background(), e.owner, form)
	require.Error(t, err)

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Fields, "title")
	assert.Contains(t, ve.Fields, "duration")
	assert.Equal(t, "unknown course category", ve.Fields["category"])
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateAndDeleteCourse_OwnerOnly(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	course := testutil.SeedCourse(t, e.db, e.owner.UserID)
	s := testutil.SeedSession(t, e.db, course.ID, "Intro", 0, "l1")
	other := domain.Actor{UserID: uuid.New(), Role: domain.RoleAdmin}

	form := validForm()
	form.Title = "Renamed course"
	_, err := e.courses.Update(ctx, other, course.ID, form)
	assert.ErrorIs(t, err, domain.ErrNotOwner)

	updated, err := e.courses.Update(ctx, e.owner, course.ID, form)
	require.NoError(t, err)
	assert.Equal(t, "Renamed course", updated.Title)

	assert.ErrorIs(t, e.courses.Delete(ctx, other, course.ID), domain.ErrNotOwner)
	require.NoError(t, e.courses.Delete(ctx, e.owner, course.ID))

	var lessons int64
	require.NoError(t, e.db.Model(&domain.Lesson{}).Where("session_id = ?", s.ID).Count(&lessons).Error)
	assert.Zero(t, lessons)

	_, err = e.courses.GetOwn(ctx, e.owner, course.ID)
	assert.ErrorIs(t, err, domain.ErrCourseNotFound)
}

func TestLessonEditor(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	course := testutil.SeedCourse(t, e.db, e.owner.UserID)
	s := testutil.SeedSession(t, e.db, course.ID, "Intro", 0, "Welcome")
	lessonID := s.Lessons[0].ID

	detail, err := e.courses.GetLesson(ctx, e.owner, lessonID)
	require.NoError(t, err)
	assert.Equal(t, "Intro", detail.Session.Title)
	assert.Equal(t, course.ID, detail.Course.ID)

	lesson, err := e.courses.UpdateLesson(ctx, e.owner, lessonID, usecase.LessonForm{
		Title:    "  Welcome aboard ",
		Duration: testutil.IntPtr(7),
		VideoKey: "v-123.mp4",
		Content:  `{"type":"doc"}`,
	})
	require.NoError(t, err)
	assert.Equal(t, "Welcome aboard", lesson.Title)

	var stored domain.Lesson
	require.NoError(t, e.db.First(&stored, "id = ?", lessonID).Error)
	assert.Equal(t, "v-123.mp4", stored.VideoKey)
	require.NotNil(t, stored.Duration)
	assert.Equal(t, 7, *stored.Duration)
	assert.Equal(t, 0, stored.Order)

	_, err = e.courses.UpdateLesson(ctx, e.owner, lessonID, usecase.LessonForm{Title: ""})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = e.courses.GetLesson(ctx, domain.Actor{UserID: uuid.New(), Role: domain.RoleAdmin}, lessonID)
	assert.ErrorIs(t, err, domain.ErrNotOwner)

	_, err = e.courses.GetLesson(ctx, e.owner, uuid.New())
	assert.ErrorIs(t, err, domain.ErrLessonNotFound)
}

func TestCatalogueAndEnroll(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	free := testutil.SeedCourse(t, e.db, e.owner.UserID, func(c *domain.Course) { c.Title = "Free OSINT" })
	paid := testutil.SeedCourse(t, e.db, e.owner.UserID, func(c *domain.Course) {
		c.Title = "Paid Red Teaming"
		c.Price = 4900
	})
	draft := testutil.SeedCourse(t, e.db, e.owner.UserID, func(c *domain.Course) {
		c.Title = "Hidden draft"
		c.Status = domain.StatusDraft
	})
	learner := uuid.New()

	courses, total, err := e.courses.ListPublished(ctx, "", "", 0, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, courses, 2)

	courses, total, err = e.courses.ListPublished(ctx, "osint", "", 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, free.ID, courses[0].ID)

	_, _, err = e.courses.GetPublished(ctx, learner, draft.ID)
	assert.ErrorIs(t, err, domain.ErrCourseNotFound)

	_, enrolled, err := e.courses.GetPublished(ctx, learner, free.ID)
	require.NoError(t, err)
	assert.False(t, enrolled)

	first, err := e.courses.Enroll(ctx, learner, free.ID)
	require.NoError(t, err)
	second, err := e.courses.Enroll(ctx, learner, free.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	_, enrolled, err = e.courses.GetPublished(ctx, learner, free.ID)
	require.NoError(t, err)
	assert.True(t, enrolled)

	_, err = e.courses.Enroll(ctx, learner, paid.ID)
	assert.ErrorIs(t, err, domain.ErrCourseIsPaid)
}

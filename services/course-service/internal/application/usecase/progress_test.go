package usecase_test

import (
	"context"
	"testing"

	"courseplatform/services/course-service/internal/domain"
	"courseplatform/services/course-service/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckVideoCompletion_Threshold(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	course := testutil.SeedCourse(t, e.db, e.owner.UserID)
	s := testutil.SeedSession(t, e.db, course.ID, "Intro", 0, "video")
	lessonID := s.Lessons[0].ID
	learner := uuid.New()

	done, err := e.progress.CheckVideoCompletion(ctx, learner, lessonID, course.ID, 539, 600)
	require.NoError(t, err)
	assert.False(t, done)

	p, err := e.progress.GetLessonProgress(ctx, learner, lessonID)
	require.NoError(t, err)
	assert.False(t, p.Completed)

	done, err = e.progress.CheckVideoCompletion(ctx, learner, lessonID, course.ID, 540, 600)
	require.NoError(t, err)
	assert.True(t, done)

	p, err = e.progress.GetLessonProgress(ctx, learner, lessonID)
	require.NoError(t, err)
	assert.True(t, p.Completed)
	assert.NotNil(t, p.CompletedAt)
}

func TestCheckVideoCompletion_UnknownDuration(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	for _, total := range []float64{0, -10} {
		done, err := e.progress.CheckVideoCompletion(ctx, uuid.New(), uuid.New(), uuid.New(), 100, total)
		require.NoError(t, err)
		assert.False(t, done)
	}
}

func TestMarkComplete_StampsEnrollmentOnce(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	course := testutil.SeedCourse(t, e.db, e.owner.UserID)
	s1 := testutil.SeedSession(t, e.db, course.ID, "One", 0, "l1", "l2")
	s2 := testutil.SeedSession(t, e.db, course.ID, "Two", 1, "l3")
	learner := uuid.New()

	_, err := e.courses.Enroll(ctx, learner, course.ID)
	require.NoError(t, err)

	enrollment := func() domain.CourseEnrollment {
		var en domain.CourseEnrollment
		require.NoError(t, e.db.Where("user_id = ? AND course_id = ?", learner, course.ID).First(&en).Error)
		return en
	}

	for _, l := range s1.Lessons {
		done, err := e.progress.MarkComplete(ctx, learner, l.ID, course.ID)
		require.NoError(t, err)
		assert.False(t, done)
		assert.Nil(t, enrollment().CompletedAt)
	}

	done, err := e.progress.MarkComplete(ctx, learner, s2.Lessons[0].ID, course.ID)
	require.NoError(t, err)
	assert.True(t, done)
	stamped := enrollment().CompletedAt
	require.NotNil(t, stamped)

	// повторная отметка не переписывает дату завершения
	done, err = e.progress.MarkComplete(ctx, learner, s1.Lessons[0].ID, course.ID)
	require.NoError(t, err)
	assert.True(t, done)
	assert.True(t, stamped.Equal(*enrollment().CompletedAt))
}

func TestMarkComplete_LessonOutsideCourse(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	a := testutil.SeedCourse(t, e.db, e.owner.UserID)
	b := testutil.SeedCourse(t, e.db, e.owner.UserID)
	s := testutil.SeedSession(t, e.db, b.ID, "B", 0, "foreign")

	_, err := e.progress.MarkComplete(ctx, uuid.New(), s.Lessons[0].ID, a.ID)
	assert.ErrorIs(t, err, domain.ErrLessonNotFound)
}

func TestUpdateProgress_KeepsCompletion(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	course := testutil.SeedCourse(t, e.db, e.owner.UserID)
	s := testutil.SeedSession(t, e.db, course.ID, "Intro", 0, "video")
	lessonID := s.Lessons[0].ID
	learner := uuid.New()

	require.NoError(t, e.progress.UpdateProgress(ctx, learner, lessonID, 42))
	p, err := e.progress.GetLessonProgress(ctx, learner, lessonID)
	require.NoError(t, err)
	assert.Equal(t, 42, p.ProgressSeconds)
	assert.False(t, p.Completed)

	_, err = e.progress.MarkComplete(ctx, learner, lessonID, course.ID)
	require.NoError(t, err)

	require.NoError(t, e.progress.UpdateProgress(ctx, learner, lessonID, 10))
	p, err = e.progress.GetLessonProgress(ctx, learner, lessonID)
	require.NoError(t, err)
	assert.Equal(t, 10, p.ProgressSeconds)
	assert.True(t, p.Completed)

	assert.ErrorIs(t, e.progress.UpdateProgress(ctx, learner, lessonID, -1), domain.ErrValidation)
	assert.ErrorIs(t, e.progress.UpdateProgress(ctx, learner, uuid.New(), 1), domain.ErrLessonNotFound)
}

func TestGetCourseProgress(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	course := testutil.SeedCourse(t, e.db, e.owner.UserID)
	s1 := testutil.SeedSession(t, e.db, course.ID, "One", 0, "l1", "l2")
	s2 := testutil.SeedSession(t, e.db, course.ID, "Two", 1, "l3")
	learner := uuid.New()

	p, err := e.progress.GetCourseProgress(ctx, learner, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Percent)
	assert.Equal(t, 3, p.TotalLessons)
	assert.Equal(t, s1.Lessons[0].ID, p.NextLessonID)
	assert.Nil(t, p.CompletedAt)

	_, err = e.progress.MarkComplete(ctx, learner, s1.Lessons[0].ID, course.ID)
	require.NoError(t, err)

	p, err = e.progress.GetCourseProgress(ctx, learner, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 33, p.Percent)
	assert.Equal(t, 1, p.CompletedLessons)
	assert.Equal(t, []uuid.UUID{s1.Lessons[0].ID}, p.CompletedIDs)
	assert.Equal(t, s1.Lessons[1].ID, p.NextLessonID)

	_, err = e.progress.MarkComplete(ctx, learner, s1.Lessons[1].ID, course.ID)
	require.NoError(t, err)
	p, err = e.progress.GetCourseProgress(ctx, learner, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 67, p.Percent)
	assert.Equal(t, s2.Lessons[0].ID, p.NextLessonID)
}

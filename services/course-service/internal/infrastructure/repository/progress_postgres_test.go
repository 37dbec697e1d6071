package repository_test

import (
	"context"
	"testing"
	"time"

	"courseplatform/services/course-service/internal/domain"
	"courseplatform/services/course-service/internal/infrastructure/repository"
	"courseplatform/services/course-service/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressRepository_UpsertKeepsOneRow(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewProgressRepository(db)
	ctx := context.Background()
	user, lesson := uuid.New(), uuid.New()

	require.NoError(t, repo.SaveSeconds(ctx, user, lesson, 30))
	require.NoError(t, repo.SaveSeconds(ctx, user, lesson, 90))
	require.NoError(t, repo.MarkCompleted(ctx, user, lesson, time.Now().UTC()))
	require.NoError(t, repo.SaveSeconds(ctx, user, lesson, 15))

	var rows int64
	require.NoError(t, db.Model(&domain.LessonProgress{}).Count(&rows).Error)
	assert.EqualValues(t, 1, rows)

	p, err := repo.Get(ctx, user, lesson)
	require.NoError(t, err)
	assert.Equal(t, 15, p.ProgressSeconds)
	assert.True(t, p.Completed)
}

func TestProgressRepository_MarkCompletedKeepsFirstStamp(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewProgressRepository(db)
	ctx := context.Background()
	user, lesson := uuid.New(), uuid.New()
	first := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, repo.SaveSeconds(ctx, user, lesson, 40))
	require.NoError(t, repo.MarkCompleted(ctx, user, lesson, first))
	require.NoError(t, repo.MarkCompleted(ctx, user, lesson, first.Add(time.Hour)))

	p, err := repo.Get(ctx, user, lesson)
	require.NoError(t, err)
	assert.True(t, p.Completed)
	require.NotNil(t, p.CompletedAt)
	assert.WithinDuration(t, first, *p.CompletedAt, time.Second)
}

func TestProgressRepository_CompletedInCourseIgnoresOrphans(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewProgressRepository(db)
	ctx := context.Background()
	user := uuid.New()

	course := testutil.SeedCourse(t, db, uuid.New())
	s := testutil.SeedSession(t, db, course.ID, "S", 0, "a", "b")

	require.NoError(t, repo.MarkCompleted(ctx, user, s.Lessons[0].ID, time.Now().UTC()))
	// прогресс по уроку, которого в курсе уже нет
	require.NoError(t, repo.MarkCompleted(ctx, user, uuid.New(), time.Now().UTC()))

	ids, err := repo.CompletedInCourse(ctx, user, course.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{s.Lessons[0].ID}, ids)

	total, err := repo.CountCourseLessons(ctx, course.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}

func TestEnrollmentRepository_StampOnce(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewEnrollmentRepository(db)
	ctx := context.Background()
	user, course := uuid.New(), uuid.New()

	stamped, err := repo.StampCompleted(ctx, user, course, time.Now().UTC())
	require.NoError(t, err)
	assert.False(t, stamped, "no enrollment yet")

	_, err = repo.Enroll(ctx, user, course)
	require.NoError(t, err)

	stamped, err = repo.StampCompleted(ctx, user, course, time.Now().UTC())
	require.NoError(t, err)
	assert.True(t, stamped)

	stamped, err = repo.StampCompleted(ctx, user, course, time.Now().UTC())
	require.NoError(t, err)
	assert.False(t, stamped)

	_, err = repo.Get(ctx, uuid.New(), course)
	assert.ErrorIs(t, err, domain.ErrNotEnrolled)
}

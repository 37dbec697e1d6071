package repository_test

import (
	"context"
	"sync"
	"testing"

	"courseplatform/services/course-service/internal/domain"
	"courseplatform/services/course-service/internal/infrastructure/cache"
	"courseplatform/services/course-service/internal/infrastructure/repository"
	"courseplatform/services/course-service/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyCache - кеш в памяти, считающий обращения.
type spyCache struct {
	mu          sync.Mutex
	courses     map[uuid.UUID]*domain.Course
	pages       map[string]*cache.CoursePage
	hits        int
	invalidated []uuid.UUID
}

func newSpyCache() *spyCache {
	return &spyCache{courses: map[uuid.UUID]*domain.Course{}, pages: map[string]*cache.CoursePage{}}
}

func (c *spyCache) GetCourse(_ context.Context, id uuid.UUID) (*domain.Course, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.courses[id]
	if ok {
		c.hits++
	}
	return v, ok
}

func (c *spyCache) SetCourse(_ context.Context, course *domain.Course) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.courses[course.ID] = course
}

func (c *spyCache) GetPage(_ context.Context, q string) (*cache.CoursePage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.pages[q]
	if ok {
		c.hits++
	}
	return v, ok
}

func (c *spyCache) SetPage(_ context.Context, q string, p *cache.CoursePage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pages[q] = p
}

func (c *spyCache) Invalidate(_ context.Context, id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.courses, id)
	c.pages = map[string]*cache.CoursePage{}
	c.invalidated = append(c.invalidated, id)
}

func TestCourseRepository_GetPublishedCachesOrderedTree(t *testing.T) {
	db := testutil.NewDB(t)
	spy := newSpyCache()
	repo := repository.NewCourseRepository(db, spy)
	ctx := context.Background()

	course := testutil.SeedCourse(t, db, uuid.New())
	testutil.SeedSession(t, db, course.ID, "Second", 1, "b1")
	testutil.SeedSession(t, db, course.ID, "First", 0, "a1", "a2")

	got, err := repo.GetPublished(ctx, course.ID)
	require.NoError(t, err)
	require.Len(t, got.Sessions, 2)
	assert.Equal(t, "First", got.Sessions[0].Title)
	assert.Equal(t, []string{"a1", "a2"}, []string{got.Sessions[0].Lessons[0].Title, got.Sessions[0].Lessons[1].Title})
	assert.Equal(t, 0, spy.hits)

	_, err = repo.GetPublished(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, spy.hits)

	repo.Invalidate(ctx, course.ID)
	_, err = repo.GetPublished(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, spy.hits)
}

func TestCourseRepository_WritesInvalidate(t *testing.T) {
	db := testutil.NewDB(t)
	spy := newSpyCache()
	repo := repository.NewCourseRepository(db, spy)
	ctx := context.Background()

	c := &domain.Course{UserID: uuid.New(), Title: "Cryptography 101", Slug: "crypto-101", Status: domain.StatusPublished}
	require.NoError(t, repo.Create(ctx, c))

	_, _, err := repo.List(ctx, "", "", 10, 0)
	require.NoError(t, err)
	_, _, err = repo.List(ctx, "", "", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, spy.hits)

	c.Title = "Cryptography 102"
	require.NoError(t, repo.Update(ctx, c))

	courses, total, err := repo.List(ctx, "", "", 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "Cryptography 102", courses[0].Title)

	require.NoError(t, repo.Delete(ctx, c.ID))
	assert.Equal(t, []uuid.UUID{c.ID, c.ID, c.ID}, spy.invalidated)

	_, err = repo.GetByID(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrCourseNotFound)
}

func TestCourseRepository_ListByCategory(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewCourseRepository(db, nil)
	ctx := context.Background()
	owner := uuid.New()

	testutil.SeedCourse(t, db, owner, func(c *domain.Course) { c.Category = "Cryptography" })
	testutil.SeedCourse(t, db, owner, func(c *domain.Course) { c.Category = "Malware Analysis" })
	testutil.SeedCourse(t, db, owner, func(c *domain.Course) { c.Category = "Cryptography" })

	courses, total, err := repo.List(ctx, "", "Cryptography", 1, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, courses, 1)
}

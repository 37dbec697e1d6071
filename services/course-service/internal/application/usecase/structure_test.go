package usecase_test

import (
	"context"
	"errors"
	"testing"

	"courseplatform/pkg/coursetree"
	"courseplatform/services/course-service/internal/domain"
	"courseplatform/services/course-service/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSaveStructure_NewSessionWithLesson(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	course := testutil.SeedCourse(t, e.db, e.owner.UserID)
	s1 := testutil.SeedSession(t, e.db, course.ID, "Intro", 0)

	snap := coursetree.Snapshot{Sessions: []coursetree.Session{
		{ID: coursetree.Persisted(s1.ID), Title: "Intro (updated)", Order: 0},
		{
			ID:    coursetree.MustParseID("session-1700000000000"),
			Title: "Advanced",
			Order: 1,
			Lessons: []coursetree.Lesson{
				{ID: coursetree.MustParseID("lesson-1700000000001"), Title: "Deep dive", Type: coursetree.LessonVideo},
			},
		},
	}}

	res, err := e.structure.Save(ctx, e.owner, course.ID, snap)
	require.NoError(t, err)
	assert.Equal(t, domain.PlanCounts{Created: 2, Updated: 1}, res.Counts)

	ids := e.sessionIDs(t, course.ID)
	require.Len(t, ids, 2)
	assert.Contains(t, ids, s1.ID)

	var intro domain.CourseSession
	require.NoError(t, e.db.First(&intro, "id = ?", s1.ID).Error)
	assert.Equal(t, "Intro (updated)", intro.Title)

	require.Len(t, res.Structure.Sessions, 2)
	advanced := res.Structure.Sessions[1]
	assert.False(t, advanced.ID.IsPending())
	assert.Equal(t, "Advanced", advanced.Title)
	require.Len(t, advanced.Lessons, 1)
	assert.False(t, advanced.Lessons[0].ID.IsPending())
	assert.Equal(t, 0, advanced.Lessons[0].Order)
}

func TestSaveStructure_DeletesDroppedLesson(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	course := testutil.SeedCourse(t, e.db, e.owner.UserID)
	s1 := testutil.SeedSession(t, e.db, course.ID, "Intro", 0, "l1", "l2")
	l1, l2 := s1.Lessons[0], s1.Lessons[1]

	snap := coursetree.Snapshot{Sessions: []coursetree.Session{{
		ID:    coursetree.Persisted(s1.ID),
		Title: "Intro",
		Lessons: []coursetree.Lesson{
			{ID: coursetree.Persisted(l2.ID), Title: "l2", Type: coursetree.LessonVideo, Order: 0},
		},
	}}}

	_, err := e.structure.Save(ctx, e.owner, course.ID, snap)
	require.NoError(t, err)

	lessons := e.lessonsOf(t, s1.ID)
	require.Len(t, lessons, 1)
	assert.Equal(t, l2.ID, lessons[0].ID)
	assert.Equal(t, 0, lessons[0].Order)

	var count int64
	require.NoError(t, e.db.Model(&domain.Lesson{}).Where("id = ?", l1.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSaveStructure_SecondSaveIsIdempotent(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	course := testutil.SeedCourse(t, e.db, e.owner.UserID)

	tree := coursetree.New(coursetree.Snapshot{}, coursetree.SequenceTokens(1700000000000))
	first := tree.AddSession("Basics")
	_, err := tree.AddLesson(first, "Hello")
	require.NoError(t, err)
	_, err = tree.AddLesson(first, "World")
	require.NoError(t, err)
	tree.AddSession("Extras")

	res, err := e.structure.Save(ctx, e.owner, course.ID, tree.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, 4, res.Counts.Created)

	again, err := e.structure.Save(ctx, e.owner, course.ID, res.Structure)
	require.NoError(t, err)
	assert.Zero(t, again.Counts.Created)
	assert.Zero(t, again.Counts.Deleted)
	assert.Equal(t, 4, again.Counts.Updated)
	assert.Equal(t, res.Structure, again.Structure)
}

func TestSaveStructure_SessionSetMatchesSnapshot(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	course := testutil.SeedCourse(t, e.db, e.owner.UserID)
	a := testutil.SeedSession(t, e.db, course.ID, "A", 0, "a1")
	b := testutil.SeedSession(t, e.db, course.ID, "B", 1)
	c := testutil.SeedSession(t, e.db, course.ID, "C", 2, "c1", "c2")

	snaps := []struct {
		name    string
		keep    []uuid.UUID
		pending int
	}{
		{name: "keep all", keep: []uuid.UUID{a.ID, b.ID, c.ID}},
		{name: "drop middle and add", keep: []uuid.UUID{c.ID, a.ID}, pending: 1},
		{name: "replace everything", keep: nil, pending: 2},
	}

	for _, tc := range snaps {
		t.Run(tc.name, func(t *testing.T) {
			var snap coursetree.Snapshot
			for i, id := range tc.keep {
				snap.Sessions = append(snap.Sessions, coursetree.Session{ID: coursetree.Persisted(id), Title: "kept", Order: i})
			}
			for i := 0; i < tc.pending; i++ {
				snap.Sessions = append(snap.Sessions, coursetree.Session{
					ID:    coursetree.NewSessionID(uuid.NewString()),
					Title: "new",
					Order: len(tc.keep) + i,
				})
			}

			before := e.sessionIDs(t, course.ID)
			_, err := e.structure.Save(ctx, e.owner, course.ID, snap)
			require.NoError(t, err)
			after := e.sessionIDs(t, course.ID)

			assert.Len(t, after, len(tc.keep)+tc.pending)
			for _, id := range tc.keep {
				assert.Contains(t, after, id)
			}
			for _, id := range before {
				if !containsID(tc.keep, id) {
					assert.NotContains(t, after, id)
				}
			}
		})
	}
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

func TestSaveStructure_RollsBackOnFailure(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	course := testutil.SeedCourse(t, e.db, e.owner.UserID)
	keep := testutil.SeedSession(t, e.db, course.ID, "Keep", 0, "k1")
	doomed := testutil.SeedSession(t, e.db, course.ID, "Doomed", 1, "d1")

	require.NoError(t, e.db.Callback().Create().Before("gorm:create").Register("test:fail_lessons", func(tx *gorm.DB) {
		if tx.Statement.Schema != nil && tx.Statement.Schema.Table == "lessons" {
			_ = tx.AddError(errors.New("disk full"))
		}
	}))

	snap := coursetree.Snapshot{Sessions: []coursetree.Session{{
		ID:    coursetree.Persisted(keep.ID),
		Title: "Keep",
		Lessons: []coursetree.Lesson{
			{ID: coursetree.Persisted(keep.Lessons[0].ID), Title: "k1", Order: 0},
			{ID: coursetree.NewLessonID("1"), Title: "new", Order: 1},
		},
	}}}

	_, err := e.structure.Save(ctx, e.owner, course.ID, snap)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPersistence))

	ids := e.sessionIDs(t, course.ID)
	assert.ElementsMatch(t, []uuid.UUID{keep.ID, doomed.ID}, ids)
	assert.Len(t, e.lessonsOf(t, doomed.ID), 1)
}

func TestSaveStructure_Authorization(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	course := testutil.SeedCourse(t, e.db, e.owner.UserID)
	testutil.SeedSession(t, e.db, course.ID, "Intro", 0)

	learner := domain.Actor{UserID: e.owner.UserID, Role: domain.RoleUser}
	otherAdmin := domain.Actor{UserID: uuid.New(), Role: domain.RoleAdmin}
	empty := coursetree.Snapshot{}

	_, err := e.structure.Save(ctx, learner, course.ID, empty)
	assert.ErrorIs(t, err, domain.ErrNotAdmin)

	_, err = e.structure.Save(ctx, otherAdmin, course.ID, empty)
	assert.ErrorIs(t, err, domain.ErrNotOwner)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = e.structure.Save(ctx, e.owner, uuid.New(), empty)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// ничего не удалено
	assert.Len(t, e.sessionIDs(t, course.ID), 1)
}

func TestGetStructure_Ordered(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	course := testutil.SeedCourse(t, e.db, e.owner.UserID)
	second := testutil.SeedSession(t, e.db, course.ID, "Second", 1, "x", "y")
	first := testutil.SeedSession(t, e.db, course.ID, "First", 0)

	snap, err := e.structure.Get(ctx, e.owner, course.ID)
	require.NoError(t, err)
	require.Len(t, snap.Sessions, 2)
	assert.Equal(t, coursetree.Persisted(first.ID), snap.Sessions[0].ID)
	assert.Equal(t, coursetree.Persisted(second.ID), snap.Sessions[1].ID)
	assert.Equal(t, []string{"x", "y"}, []string{snap.Sessions[1].Lessons[0].Title, snap.Sessions[1].Lessons[1].Title})
}

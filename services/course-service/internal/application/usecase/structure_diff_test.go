package usecase

import (
	"errors"
	"testing"

	"courseplatform/pkg/coursetree"
	"courseplatform/services/course-service/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedIDs выдаёт заранее известные uuid по порядку.
func fixedIDs(t *testing.T, ids ...uuid.UUID) func() uuid.UUID {
	i := 0
	return func() uuid.UUID {
		require.Less(t, i, len(ids), "newID called more times than expected")
		id := ids[i]
		i++
		return id
	}
}

func kinds(plan domain.StructurePlan) []domain.OpKind {
	out := make([]domain.OpKind, 0, len(plan.Ops))
	for _, op := range plan.Ops {
		out = append(out, op.Kind)
	}
	return out
}

func TestDiff_NewSessionNextToExisting(t *testing.T) {
	courseID := uuid.New()
	s1 := uuid.New()
	persisted := []domain.CourseSession{{ID: s1, CourseID: courseID, Title: "Intro", Order: 0}}

	snap := coursetree.Snapshot{Sessions: []coursetree.Session{
		{ID: coursetree.Persisted(s1), Title: "Intro", Order: 0},
		{
			ID:    coursetree.NewSessionID("1700000000000"),
			Title: "Advanced",
			Order: 1,
			Lessons: []coursetree.Lesson{
				{ID: coursetree.NewLessonID("1700000000001"), Title: "Deep dive", Type: coursetree.LessonVideo},
			},
		},
	}}

	newSession, newLesson := uuid.New(), uuid.New()
	plan, err := Diff(courseID, persisted, snap, fixedIDs(t, newSession, newLesson))
	require.NoError(t, err)

	assert.Equal(t, []domain.OpKind{domain.OpUpdateSession, domain.OpCreateSession, domain.OpCreateLessons}, kinds(plan))

	update := plan.Ops[0].Session
	assert.Equal(t, s1, update.ID)
	assert.Equal(t, 0, update.Order)

	created := plan.Ops[1].Session
	assert.Equal(t, newSession, created.ID)
	assert.Equal(t, courseID, created.CourseID)
	assert.Equal(t, "Advanced", created.Title)
	assert.Equal(t, 1, created.Order)

	require.Len(t, plan.Ops[2].Lessons, 1)
	lesson := plan.Ops[2].Lessons[0]
	assert.Equal(t, newLesson, lesson.ID)
	assert.Equal(t, newSession, lesson.SessionID)
	assert.Equal(t, domain.LessonVideo, lesson.Type)
	assert.Equal(t, 0, lesson.Order)

	assert.Equal(t, domain.PlanCounts{Created: 2, Updated: 1, Deleted: 0}, plan.Counts())
}

func TestDiff_DropsLessonAndReordersRest(t *testing.T) {
	courseID := uuid.New()
	s1, l1, l2 := uuid.New(), uuid.New(), uuid.New()
	persisted := []domain.CourseSession{{
		ID: s1, CourseID: courseID, Title: "Intro",
		Lessons: []domain.Lesson{
			{ID: l1, SessionID: s1, Title: "One", Type: domain.LessonVideo, Order: 0},
			{ID: l2, SessionID: s1, Title: "Two", Type: domain.LessonVideo, Order: 1},
		},
	}}

	snap := coursetree.Snapshot{Sessions: []coursetree.Session{{
		ID:    coursetree.Persisted(s1),
		Title: "Intro",
		Lessons: []coursetree.Lesson{
			{ID: coursetree.Persisted(l2), Title: "Two", Type: coursetree.LessonVideo, Order: 0},
		},
	}}}

	plan, err := Diff(courseID, persisted, snap, fixedIDs(t))
	require.NoError(t, err)

	assert.Equal(t, []domain.OpKind{domain.OpUpdateSession, domain.OpDeleteLesson, domain.OpUpdateLesson}, kinds(plan))
	assert.Equal(t, l1, plan.Ops[1].TargetID)
	assert.Equal(t, l2, plan.Ops[2].Lessons[0].ID)
	assert.Equal(t, 0, plan.Ops[2].Lessons[0].Order)
}

func TestDiff_DeletesMissingSessionsFirst(t *testing.T) {
	courseID := uuid.New()
	keep, drop := uuid.New(), uuid.New()
	persisted := []domain.CourseSession{
		{ID: drop, CourseID: courseID, Order: 0},
		{ID: keep, CourseID: courseID, Order: 1},
	}

	snap := coursetree.Snapshot{Sessions: []coursetree.Session{
		{ID: coursetree.NewSessionID("1"), Title: "Fresh", Order: 0},
		{ID: coursetree.Persisted(keep), Title: "Kept", Order: 1},
	}}

	plan, err := Diff(courseID, persisted, snap, fixedIDs(t, uuid.New()))
	require.NoError(t, err)

	require.NotEmpty(t, plan.Ops)
	assert.Equal(t, domain.OpDeleteSession, plan.Ops[0].Kind)
	assert.Equal(t, drop, plan.Ops[0].TargetID)
	assert.Equal(t, []domain.OpKind{domain.OpDeleteSession, domain.OpCreateSession, domain.OpUpdateSession}, kinds(plan))
}

func TestDiff_PersistedLessonInNewSessionIsDropped(t *testing.T) {
	courseID := uuid.New()
	snap := coursetree.Snapshot{Sessions: []coursetree.Session{{
		ID:    coursetree.NewSessionID("1"),
		Title: "New",
		Lessons: []coursetree.Lesson{
			{ID: coursetree.Persisted(uuid.New()), Title: "Stale"},
			{ID: coursetree.NewLessonID("2"), Title: "First", Order: 5},
			{ID: coursetree.NewLessonID("3"), Title: "Second", Order: 1},
		},
	}}}

	sessionID, a, b := uuid.New(), uuid.New(), uuid.New()
	plan, err := Diff(courseID, nil, snap, fixedIDs(t, sessionID, a, b))
	require.NoError(t, err)

	require.Len(t, plan.Ops, 2)
	lessons := plan.Ops[1].Lessons
	require.Len(t, lessons, 2)
	assert.Equal(t, "First", lessons[0].Title)
	assert.Equal(t, 0, lessons[0].Order)
	assert.Equal(t, "Second", lessons[1].Title)
	assert.Equal(t, 1, lessons[1].Order)
}

func TestDiff_NormalisesSloppyOrder(t *testing.T) {
	courseID := uuid.New()
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	persisted := []domain.CourseSession{{ID: a}, {ID: b}, {ID: c}}

	snap := coursetree.Snapshot{Sessions: []coursetree.Session{
		{ID: coursetree.Persisted(a), Title: "A", Order: 10},
		{ID: coursetree.Persisted(b), Title: "B", Order: 3},
		{ID: coursetree.Persisted(c), Title: "C", Order: 3},
	}}

	plan, err := Diff(courseID, persisted, snap, fixedIDs(t))
	require.NoError(t, err)

	got := map[uuid.UUID]int{}
	for _, op := range plan.Ops {
		got[op.Session.ID] = op.Session.Order
	}
	assert.Equal(t, map[uuid.UUID]int{a: 2, b: 0, c: 1}, got)
}

func TestDiff_Rejects(t *testing.T) {
	courseID := uuid.New()
	s1, s2, l1 := uuid.New(), uuid.New(), uuid.New()
	persisted := []domain.CourseSession{
		{ID: s1, Lessons: []domain.Lesson{{ID: l1, SessionID: s1}}},
		{ID: s2},
	}

	cases := []struct {
		name string
		snap coursetree.Snapshot
	}{
		{
			name: "foreign session",
			snap: coursetree.Snapshot{Sessions: []coursetree.Session{{ID: coursetree.Persisted(uuid.New()), Title: "X"}}},
		},
		{
			name: "lesson moved across sessions",
			snap: coursetree.Snapshot{Sessions: []coursetree.Session{
				{ID: coursetree.Persisted(s1), Title: "A"},
				{ID: coursetree.Persisted(s2), Title: "B", Lessons: []coursetree.Lesson{{ID: coursetree.Persisted(l1), Title: "L"}}},
			}},
		},
		{
			name: "duplicate id",
			snap: coursetree.Snapshot{Sessions: []coursetree.Session{
				{ID: coursetree.NewSessionID("1"), Title: "A"},
				{ID: coursetree.NewSessionID("1"), Title: "B"},
			}},
		},
		{
			name: "missing id",
			snap: coursetree.Snapshot{Sessions: []coursetree.Session{{Title: "A"}}},
		},
		{
			name: "session with lesson placeholder",
			snap: coursetree.Snapshot{Sessions: []coursetree.Session{{ID: coursetree.MustParseID("lesson-1"), Title: "A"}}},
		},
		{
			name: "lesson with session placeholder",
			snap: coursetree.Snapshot{Sessions: []coursetree.Session{{
				ID:      coursetree.NewSessionID("1"),
				Title:   "A",
				Lessons: []coursetree.Lesson{{ID: coursetree.MustParseID("session-2"), Title: "L"}},
			}}},
		},
		{
			name: "negative duration",
			snap: coursetree.Snapshot{Sessions: []coursetree.Session{{
				ID:      coursetree.NewSessionID("1"),
				Lessons: []coursetree.Lesson{{ID: coursetree.NewLessonID("2"), Duration: func() *int { v := -1; return &v }()}},
			}}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plan, err := Diff(courseID, persisted, tc.snap, uuid.New)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation), "got %v", err)
			assert.Empty(t, plan.Ops)
		})
	}
}

func TestDiff_UnchangedTreeOnlyUpdates(t *testing.T) {
	courseID := uuid.New()
	s1, l1, l2 := uuid.New(), uuid.New(), uuid.New()
	persisted := []domain.CourseSession{{
		ID: s1, Title: "Intro",
		Lessons: []domain.Lesson{
			{ID: l1, SessionID: s1, Title: "One", Type: domain.LessonVideo, Order: 0},
			{ID: l2, SessionID: s1, Title: "Two", Type: domain.LessonReading, Order: 1},
		},
	}}

	plan, err := Diff(courseID, persisted, ToSnapshot(persisted), fixedIDs(t))
	require.NoError(t, err)
	assert.Equal(t, domain.PlanCounts{Updated: 3}, plan.Counts())
}

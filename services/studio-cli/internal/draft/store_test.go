package draft

import (
	"os"
	"path/filepath"
	"testing"

	"courseplatform/pkg/coursetree"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "drafts"))
	course := uuid.NewString()

	_, err := s.Load(course)
	assert.ErrorIs(t, err, ErrNoDraft)

	tree := coursetree.New(coursetree.Snapshot{}, coursetree.SequenceTokens(7))
	sid := tree.AddSession("Malware triage")
	_, err = tree.AddLesson(sid, "Static analysis")
	require.NoError(t, err)
	require.NoError(t, s.Save(course, tree.Snapshot()))

	got, err := s.Load(course)
	require.NoError(t, err)
	assert.Equal(t, tree.Snapshot(), got)

	require.NoError(t, s.Remove(course))
	require.NoError(t, s.Remove(course))
	_, err = s.Load(course)
	assert.ErrorIs(t, err, ErrNoDraft)
}

func TestStoreRejectsPathLikeCourseID(t *testing.T) {
	s := NewStore(t.TempDir())
	assert.Error(t, s.Save("../../etc/passwd", coursetree.Snapshot{}))
	_, err := s.Load("not-a-uuid")
	assert.Error(t, err)
}

func TestStoreCorruptDraft(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)
	course := uuid.New()
	require.NoError(t, os.WriteFile(filepath.Join(dir, course.String()+".json"), []byte(`{"sessions":[{"id":"7"}]}`), 0o644))

	_, err := s.Load(course.String())
	assert.ErrorContains(t, err, "corrupt draft")
}

func TestToken(t *testing.T) {
	s := NewStore(t.TempDir())
	assert.Empty(t, s.Token())
	require.NoError(t, s.SaveToken("abc.def.ghi"))
	assert.Equal(t, "abc.def.ghi", s.Token())
}

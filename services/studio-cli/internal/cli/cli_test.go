package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"courseplatform/pkg/coursetree"
	"courseplatform/services/studio-cli/internal/api"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gateway имитирует шлюз: хранит дерево одного курса и выдаёт uuid новым элементам.
type gateway struct {
	t        *testing.T
	courseID string
	tree     coursetree.Snapshot
	saved    []coursetree.Snapshot
	role     string
	deny     bool
}

func newGateway(t *testing.T) *gateway {
	sessionID := uuid.New()
	dur := 20
	return &gateway{
		t:        t,
		courseID: uuid.NewString(),
		role:     "admin",
		tree: coursetree.Snapshot{Sessions: []coursetree.Session{{
			ID:    coursetree.Persisted(sessionID),
			Title: "Reconnaissance",
			Lessons: []coursetree.Lesson{{
				ID: coursetree.Persisted(uuid.New()), Title: "Passive DNS", Type: coursetree.LessonVideo, Duration: &dur,
			}},
		}}},
	}
}

func (g *gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	reply := func(code int, body interface{}) {
		w.WriteHeader(code)
		assert.NoError(g.t, json.NewEncoder(w).Encode(body))
	}

	structurePath := "/api/v1/admin/courses/" + g.courseID + "/structure"
	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/api/v1/auth/login":
		reply(http.StatusOK, map[string]string{"access_token": "tok", "role": g.role})
	case r.Header.Get("Authorization") != "Bearer tok":
		reply(http.StatusUnauthorized, map[string]string{"status": "error", "message": "Authorization header is required"})
	case r.URL.Path != structurePath:
		reply(http.StatusNotFound, map[string]string{"status": "error", "message": "course not found"})
	case r.Method == http.MethodGet:
		reply(http.StatusOK, g.tree)
	case r.Method == http.MethodPut && g.deny:
		reply(http.StatusForbidden, map[string]string{"status": "error", "message": "not the course owner"})
	case r.Method == http.MethodPut:
		var snap coursetree.Snapshot
		assert.NoError(g.t, json.NewDecoder(r.Body).Decode(&snap))
		g.saved = append(g.saved, snap)
		g.tree = persist(snap)
		reply(http.StatusOK, api.SaveResult{Status: "success", Message: "Course structure saved successfully", Created: 2, Structure: g.tree})
	default:
		reply(http.StatusMethodNotAllowed, map[string]string{"status": "error", "message": "method not allowed"})
	}
}

func persist(snap coursetree.Snapshot) coursetree.Snapshot {
	out := coursetree.Snapshot{}
	for i, s := range snap.Sessions {
		if s.ID.IsPending() {
			s.ID = coursetree.Persisted(uuid.New())
		}
		s.Order = i
		lessons := make([]coursetree.Lesson, 0, len(s.Lessons))
		for j, l := range s.Lessons {
			if l.ID.IsPending() {
				l.ID = coursetree.Persisted(uuid.New())
			}
			l.Order = j
			lessons = append(lessons, l)
		}
		s.Lessons = lessons
		out.Sessions = append(out.Sessions, s)
	}
	return out
}

type harness struct {
	t      *testing.T
	srv    *httptest.Server
	gw     *gateway
	drafts string
	tokens coursetree.TokenSource
}

func newHarness(t *testing.T) *harness {
	gw := newGateway(t)
	srv := httptest.NewServer(gw)
	t.Cleanup(srv.Close)
	t.Setenv("STUDIO_TOKEN", "")
	return &harness{t: t, srv: srv, gw: gw, drafts: t.TempDir(), tokens: coursetree.SequenceTokens(1)}
}

func (h *harness) run(args ...string) (string, error) {
	h.t.Helper()
	cmd := NewRootCmd(&App{Tokens: h.tokens})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--api-url", h.srv.URL, "--drafts", h.drafts, "--config-dir", h.t.TempDir()))
	err := cmd.Execute()
	return out.String(), err
}

func (h *harness) mustRun(args ...string) string {
	h.t.Helper()
	out, err := h.run(args...)
	require.NoError(h.t, err, out)
	return out
}

func TestEditAndSaveRoundTrip(t *testing.T) {
	h := newHarness(t)
	course := h.gw.courseID

	h.mustRun("login", "--email", "admin@academy.io", "--password", "secret")
	out := h.mustRun("structure", "pull", course)
	assert.Contains(t, out, "0. Reconnaissance")
	assert.Contains(t, out, "Passive DNS  VIDEO 20m")

	h.mustRun("structure", "add-session", course, "Post-exploitation")
	h.mustRun("structure", "add-lesson", course, "1", "Pivoting", "--type", "reading", "--duration", "15")
	h.mustRun("structure", "add-lesson", course, "session-1", "Persistence")
	out = h.mustRun("structure", "move-session", course, "1", "0")
	assert.True(t, strings.HasPrefix(out, "0. Post-exploitation  [session-1]"), out)

	out = h.mustRun("structure", "save", course)
	assert.Contains(t, out, "Course structure saved successfully (created 2, updated 0, deleted 0)")

	require.Len(t, h.gw.saved, 1)
	sent := h.gw.saved[0].Sessions
	require.Len(t, sent, 2)
	assert.Equal(t, "session-1", sent[0].ID.String())
	assert.Equal(t, 0, sent[0].Order)
	assert.Equal(t, 1, sent[1].Order)
	require.Len(t, sent[0].Lessons, 2)
	assert.Equal(t, "lesson-2", sent[0].Lessons[0].ID.String())
	assert.Equal(t, coursetree.LessonReading, sent[0].Lessons[0].Type)
	require.NotNil(t, sent[0].Lessons[0].Duration)
	assert.Equal(t, 15, *sent[0].Lessons[0].Duration)
	assert.Nil(t, sent[0].Lessons[1].Duration)

	// черновик заменён сохранённым деревом без временных id
	out = h.mustRun("structure", "show", course)
	assert.NotContains(t, out, "session-")
	assert.NotContains(t, out, "lesson-")
}

func TestRenameAndDelete(t *testing.T) {
	h := newHarness(t)
	course := h.gw.courseID
	h.mustRun("login", "--email", "admin@academy.io", "--password", "secret")
	h.mustRun("structure", "pull", course)

	out := h.mustRun("structure", "rename", course, "0", "Passive DNS and WHOIS", "--lesson", "0")
	assert.Contains(t, out, "0.0 Passive DNS and WHOIS")

	out = h.mustRun("structure", "delete-lesson", course, "0", "0")
	assert.NotContains(t, out, "WHOIS")

	out = h.mustRun("structure", "delete-session", course, "0")
	assert.Contains(t, out, "(no sessions)")

	_, err := h.run("structure", "delete-session", course, "0")
	assert.ErrorContains(t, err, "no session at position 0")
}

func TestPullKeepsExistingDraft(t *testing.T) {
	h := newHarness(t)
	course := h.gw.courseID
	h.mustRun("login", "--email", "admin@academy.io", "--password", "secret")
	h.mustRun("structure", "pull", course)
	h.mustRun("structure", "add-session", course, "Draft only")

	_, err := h.run("structure", "pull", course)
	assert.ErrorContains(t, err, "--force")

	out := h.mustRun("structure", "pull", course, "--force")
	assert.NotContains(t, out, "Draft only")
}

func TestGatewayErrorsSurface(t *testing.T) {
	h := newHarness(t)
	course := h.gw.courseID

	_, err := h.run("structure", "pull", course)
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Code)

	h.mustRun("login", "--email", "admin@academy.io", "--password", "secret")
	h.mustRun("structure", "pull", course)
	h.gw.deny = true
	_, err = h.run("structure", "save", course)
	assert.EqualError(t, err, "gateway returned 403: not the course owner")

	_, err = h.run("structure", "show", uuid.NewString())
	assert.ErrorContains(t, err, "structure pull")
}

func TestLoginRejectsLearner(t *testing.T) {
	h := newHarness(t)
	h.gw.role = "user"

	_, err := h.run("login", "--email", "learner@academy.io", "--password", "secret")
	assert.ErrorContains(t, err, "is not an admin")
}

func TestMoveRejectsOutOfRange(t *testing.T) {
	h := newHarness(t)
	course := h.gw.courseID
	h.mustRun("login", "--email", "admin@academy.io", "--password", "secret")
	h.mustRun("structure", "pull", course)

	_, err := h.run("structure", "move-session", course, "0", "3")
	assert.ErrorContains(t, err, "positions must be below 1")

	_, err = h.run("structure", "move-lesson", course, "0", "0", "-1")
	assert.Error(t, err)
}

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"courseplatform/pkg/authpb"
	"courseplatform/pkg/coursepb"
	"courseplatform/pkg/coursetree"
	"courseplatform/pkg/logger"
	"courseplatform/services/api-gateway/internal/middleware"
	"courseplatform/services/api-gateway/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	adminToken = "admin-token"
	userToken  = "user-token"
)

var (
	adminID = uuid.NewString()
	userID  = uuid.NewString()
)

type fakeAuth struct {
	authpb.AuthServiceClient
}

func (fakeAuth) Validate(_ context.Context, in *authpb.ValidateRequest, _ ...grpc.CallOption) (*authpb.ValidateResponse, error) {
	switch in.AccessToken {
	case adminToken:
		return &authpb.ValidateResponse{UserId: adminID, Role: "admin"}, nil
	case userToken:
		return &authpb.ValidateResponse{UserId: userID, Role: "user"}, nil
	}
	return nil, status.Error(codes.Unauthenticated, "invalid token")
}

func (fakeAuth) Login(_ context.Context, in *authpb.LoginRequest, _ ...grpc.CallOption) (*authpb.LoginResponse, error) {
	if in.Password != "correct-horse" {
		return nil, status.Error(codes.Unauthenticated, "invalid email or password")
	}
	return &authpb.LoginResponse{AccessToken: "access", RefreshToken: "refresh", Role: "admin"}, nil
}

// fakeCourses запоминает последний запрос; err подменяет ответ любого метода.
type fakeCourses struct {
	coursepb.CourseServiceClient
	err error

	saved    *coursepb.SaveStructureRequest
	tick     *coursepb.CheckVideoCompletionRequest
	progress *coursepb.UpdateProgressRequest
	getReq   *coursepb.GetCourseRequest
}

func (f *fakeCourses) SaveStructure(_ context.Context, in *coursepb.SaveStructureRequest, _ ...grpc.CallOption) (*coursepb.SaveStructureResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.saved = in
	return &coursepb.SaveStructureResponse{
		Status:    "success",
		Message:   "Course structure saved successfully",
		Created:   1,
		Structure: in.Structure,
	}, nil
}

func (f *fakeCourses) GetCourse(_ context.Context, in *coursepb.GetCourseRequest, _ ...grpc.CallOption) (*coursepb.GetCourseResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.getReq = in
	return &coursepb.GetCourseResponse{Course: &coursepb.Course{Id: in.CourseId, Title: "Network Basics"}}, nil
}

func (f *fakeCourses) CheckVideoCompletion(_ context.Context, in *coursepb.CheckVideoCompletionRequest, _ ...grpc.CallOption) (*coursepb.CheckVideoCompletionResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tick = in
	return &coursepb.CheckVideoCompletionResponse{Completed: in.TotalSeconds > 0 && in.CurrentSeconds/in.TotalSeconds >= 0.9}, nil
}

func (f *fakeCourses) UpdateProgress(_ context.Context, in *coursepb.UpdateProgressRequest, _ ...grpc.CallOption) (*coursepb.UpdateProgressResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.progress = in
	return &coursepb.UpdateProgressResponse{Success: true}, nil
}

type fakeMedia struct {
	deleted []string
}

func (m *fakeMedia) PresignUpload(_ context.Context, fileName, _ string, _ int64) (*storage.Upload, error) {
	key, err := storage.ObjectKey(fileName)
	if err != nil {
		return nil, err
	}
	return &storage.Upload{URL: "https://s3.local/media/" + key + "?X-Amz-Signature=abc", Key: key}, nil
}

func (m *fakeMedia) Delete(_ context.Context, key string) error {
	m.deleted = append(m.deleted, key)
	return nil
}

func (m *fakeMedia) PublicURL(key string) string {
	return "https://cdn.local/" + key
}

func newTestRouter(courses *fakeCourses, media MediaStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	auth := fakeAuth{}
	return NewRouter(Handlers{
		Auth:     NewAuthHandler(auth, CookieConfig{Domain: "localhost"}),
		Course:   NewCourseHandler(courses),
		Progress: NewProgressHandler(courses),
		Media:    NewMediaHandler(media),
	}, auth, middleware.NewRateLimiter(nil), []string{"http://localhost:3000"}, logger.Nop())
}

func do(t *testing.T, r http.Handler, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]interface{}
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &out)
	}
	return w, out
}

func TestSaveStructure_ForwardsSnapshot(t *testing.T) {
	courses := &fakeCourses{}
	r := newTestRouter(courses, nil)
	courseID := uuid.NewString()
	existing := uuid.NewString()

	body := `{"sessions":[
		{"id":"` + existing + `","title":"Recon","order":0,"lessons":[]},
		{"id":"session-1700000000000","title":"Exploitation","order":1,"lessons":[
			{"id":"lesson-1700000000001","title":"Buffer overflows","type":"VIDEO","duration":null,"order":0}
		]}
	]}`
	w, out := do(t, r, http.MethodPut, "/api/v1/admin/courses/"+courseID+"/structure", adminToken, body)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "success", out["status"])
	assert.Equal(t, "Course structure saved successfully", out["message"])

	require.NotNil(t, courses.saved)
	assert.Equal(t, adminID, courses.saved.UserId)
	assert.Equal(t, "admin", courses.saved.Role)
	assert.Equal(t, courseID, courses.saved.CourseId)

	sessions := courses.saved.GetStructure().GetSessions()
	require.Len(t, sessions, 2)
	assert.Equal(t, existing, sessions[0].GetId())
	assert.Equal(t, "session-1700000000000", sessions[1].GetId())
	require.Len(t, sessions[1].GetLessons(), 1)
	assert.Equal(t, string(coursetree.LessonVideo), sessions[1].GetLessons()[0].GetType())
	assert.Nil(t, sessions[1].GetLessons()[0].Duration)

	structure, ok := out["structure"].(map[string]interface{})
	require.True(t, ok, w.Body.String())
	echoed, _ := structure["sessions"].([]interface{})
	assert.Len(t, echoed, 2)
}

func TestSaveStructure_RejectsMissingOrMisplacedID(t *testing.T) {
	bodies := map[string]string{
		"session without id": `{"sessions":[{"title":"no id","order":0,"lessons":[]}]}`,
		"lesson without id":  `{"sessions":[{"id":"session-1","title":"A","order":0,"lessons":[{"title":"no id","type":"VIDEO","order":0}]}]}`,
		"session as lesson":  `{"sessions":[{"id":"lesson-1","title":"A","order":0,"lessons":[]}]}`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			courses := &fakeCourses{}
			r := newTestRouter(courses, nil)

			w, out := do(t, r, http.MethodPut, "/api/v1/admin/courses/"+uuid.NewString()+"/structure", adminToken, body)

			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.Equal(t, "error", out["status"])
			assert.Nil(t, courses.saved)
		})
	}
}

func TestSaveStructure_RejectsMalformedID(t *testing.T) {
	courses := &fakeCourses{}
	r := newTestRouter(courses, nil)

	body := `{"sessions":[{"id":"42","title":"Recon","order":0,"lessons":[]}]}`
	w, out := do(t, r, http.MethodPut, "/api/v1/admin/courses/"+uuid.NewString()+"/structure", adminToken, body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error", out["status"])
	assert.Nil(t, courses.saved)
}

func TestAdminRoutes_Guarded(t *testing.T) {
	courses := &fakeCourses{}
	r := newTestRouter(courses, nil)
	path := "/api/v1/admin/courses/" + uuid.NewString() + "/structure"

	w, out := do(t, r, http.MethodPut, path, "", `{"sessions":[]}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "error", out["status"])

	w, _ = do(t, r, http.MethodPut, path, "forged", `{"sessions":[]}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, out = do(t, r, http.MethodPut, path, userToken, `{"sessions":[]}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Access denied: admins only", out["message"])

	assert.Nil(t, courses.saved)
}

func TestServiceErrorsMapToUniformBody(t *testing.T) {
	cases := []struct {
		err     error
		code    int
		message string
	}{
		{status.Error(codes.PermissionDenied, "not the course owner"), http.StatusForbidden, "not the course owner"},
		{status.Error(codes.NotFound, "course not found"), http.StatusNotFound, "course not found"},
		{status.Error(codes.InvalidArgument, "validation failed: lesson moved between sessions"), http.StatusBadRequest, "validation failed: lesson moved between sessions"},
		{status.Error(codes.Internal, "internal error"), http.StatusInternalServerError, "internal error"},
		{status.Error(codes.Unavailable, "connection refused"), http.StatusServiceUnavailable, "service unavailable"},
		{errors.New("pq: relation does not exist"), http.StatusInternalServerError, "internal error"},
	}

	for _, tc := range cases {
		t.Run(tc.message, func(t *testing.T) {
			r := newTestRouter(&fakeCourses{err: tc.err}, nil)
			w, out := do(t, r, http.MethodPut, "/api/v1/admin/courses/"+uuid.NewString()+"/structure", adminToken, `{"sessions":[]}`)

			assert.Equal(t, tc.code, w.Code)
			assert.Equal(t, map[string]interface{}{"status": "error", "message": tc.message}, out)
		})
	}
}

func TestGetCourse_GuestAndMember(t *testing.T) {
	courses := &fakeCourses{}
	r := newTestRouter(courses, nil)
	id := uuid.NewString()

	w, out := do(t, r, http.MethodGet, "/api/v1/courses/"+id, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, courses.getReq.UserId)
	course, ok := out["course"].(map[string]interface{})
	require.True(t, ok, w.Body.String())
	assert.Equal(t, "Network Basics", course["title"])
	assert.Contains(t, course, "smallDescription")
	assert.Equal(t, false, out["enrolled"])

	w, _ = do(t, r, http.MethodGet, "/api/v1/courses/"+id, "forged", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, courses.getReq.UserId)

	w, _ = do(t, r, http.MethodGet, "/api/v1/courses/"+id, userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, courses.getReq.UserId)
}

func TestProgressRoutes(t *testing.T) {
	courses := &fakeCourses{}
	r := newTestRouter(courses, nil)
	courseID, lessonID := uuid.NewString(), uuid.NewString()

	w, _ := do(t, r, http.MethodPost, "/api/v1/learn/lessons/"+lessonID+"/progress", "", map[string]int{"progressSeconds": 10})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = do(t, r, http.MethodPost, "/api/v1/learn/lessons/"+lessonID+"/progress", userToken, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, courses.progress)

	w, _ = do(t, r, http.MethodPost, "/api/v1/learn/lessons/"+lessonID+"/progress", userToken, map[string]int{"progressSeconds": 0})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int32(0), courses.progress.ProgressSeconds)
	assert.Equal(t, userID, courses.progress.UserId)

	tick := "/api/v1/learn/courses/" + courseID + "/lessons/" + lessonID + "/video-tick"
	w, out := do(t, r, http.MethodPost, tick, userToken, map[string]float64{"currentSeconds": 540, "totalSeconds": 600})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, out["completed"])
	assert.Equal(t, courseID, courses.tick.CourseId)
	assert.Equal(t, lessonID, courses.tick.LessonId)

	w, out = do(t, r, http.MethodPost, tick, userToken, map[string]float64{"currentSeconds": 30, "totalSeconds": 0})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, out["completed"])
}

func TestMediaUpload(t *testing.T) {
	w, out := do(t, newTestRouter(&fakeCourses{}, nil), http.MethodPost, "/api/v1/admin/media/upload-url", adminToken,
		map[string]interface{}{"fileName": "cover.png", "contentType": "image/png", "size": 1024})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "error", out["status"])

	media := &fakeMedia{}
	r := newTestRouter(&fakeCourses{}, media)

	w, out = do(t, r, http.MethodPost, "/api/v1/admin/media/upload-url", adminToken,
		map[string]interface{}{"fileName": "cover.png", "contentType": "image/png", "size": 1024, "isImage": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	key, _ := out["key"].(string)
	assert.True(t, strings.HasSuffix(key, "-cover.png"))
	assert.Equal(t, "https://cdn.local/"+key, out["publicUrl"])

	w, _ = do(t, r, http.MethodPost, "/api/v1/admin/media/upload-url", adminToken,
		map[string]interface{}{"fileName": "clip.mp4", "contentType": "video/mp4", "size": 1024, "isImage": true})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, r, http.MethodPost, "/api/v1/admin/media/upload-url", adminToken,
		map[string]interface{}{"fileName": "..", "contentType": "video/mp4", "size": 1024})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, r, http.MethodDelete, "/api/v1/admin/media/"+key, adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{key}, media.deleted)

	w, _ = do(t, r, http.MethodDelete, "/api/v1/admin/media/"+key, userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLoginSetsRefreshCookie(t *testing.T) {
	r := newTestRouter(&fakeCourses{}, nil)

	w, out := do(t, r, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": "a@b.io", "password": "correct-horse"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "access", out["access_token"])
	assert.Equal(t, "admin", out["role"])
	assert.Contains(t, w.Header().Get("Set-Cookie"), "refresh_token=refresh")
	assert.Contains(t, w.Header().Get("Set-Cookie"), "HttpOnly")

	w, out = do(t, r, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": "a@b.io", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "error", out["status"])

	w, _ = do(t, r, http.MethodPost, "/api/v1/auth/refresh", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

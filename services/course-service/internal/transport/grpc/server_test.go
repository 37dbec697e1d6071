package grpc_server_test

import (
	"context"
	"net"
	"testing"

	"courseplatform/pkg/coursepb"
	"courseplatform/pkg/coursetree"
	"courseplatform/pkg/logger"
	"courseplatform/pkg/rpc"
	"courseplatform/services/course-service/internal/application/usecase"
	"courseplatform/services/course-service/internal/domain"
	"courseplatform/services/course-service/internal/infrastructure/repository"
	"courseplatform/services/course-service/internal/testutil"
	grpc_server "courseplatform/services/course-service/internal/transport/grpc"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"gorm.io/gorm"
)

func startServer(t *testing.T) (coursepb.CourseServiceClient, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	log := logger.Nop()

	courseRepo := repository.NewCourseRepository(db, nil)
	lessonRepo := repository.NewLessonRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	srv := grpc_server.NewCourseServer(
		usecase.NewCourseUseCase(courseRepo, lessonRepo, enrollmentRepo, log),
		usecase.NewStructureUseCase(courseRepo, repository.NewStructureRepository(db), log),
		usecase.NewProgressUseCase(repository.NewProgressRepository(db), lessonRepo, courseRepo, enrollmentRepo, log),
		log,
	)

	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer(grpc.UnaryInterceptor(rpc.UnaryLogger(log)))
	coursepb.RegisterCourseServiceServer(s, srv)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := rpc.Dial("passthrough:///bufnet", grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return coursepb.NewCourseServiceClient(conn), db
}

func TestSaveStructureOverGRPC(t *testing.T) {
	client, db := startServer(t)
	ctx := context.Background()
	owner := uuid.New()
	course := testutil.SeedCourse(t, db, owner)

	tree := coursetree.New(coursetree.Snapshot{}, coursetree.SequenceTokens(1700000000000))
	sid := tree.AddSession("Recon")
	_, err := tree.AddLesson(sid, "Passive DNS")
	require.NoError(t, err)

	resp, err := client.SaveStructure(ctx, &coursepb.SaveStructureRequest{
		UserId:    owner.String(),
		Role:      domain.RoleAdmin,
		CourseId:  course.ID.String(),
		Structure: coursepb.FromSnapshot(tree.Snapshot()),
	})
	require.NoError(t, err)
	assert.Equal(t, "success", resp.GetStatus())
	assert.EqualValues(t, 2, resp.GetCreated())

	saved, err := resp.GetStructure().ToSnapshot()
	require.NoError(t, err)
	require.Len(t, saved.Sessions, 1)
	assert.False(t, saved.Sessions[0].ID.IsPending())

	got, err := client.GetStructure(ctx, &coursepb.GetStructureRequest{
		UserId: owner.String(), Role: domain.RoleAdmin, CourseId: course.ID.String(),
	})
	require.NoError(t, err)
	assert.True(t, proto.Equal(resp.GetStructure(), got.GetStructure()))
}

func TestSaveStructureRejectsMissingIDs(t *testing.T) {
	client, db := startServer(t)
	ctx := context.Background()
	owner := uuid.New()
	course := testutil.SeedCourse(t, db, owner)

	cases := map[string]*coursepb.Structure{
		"session without id": {Sessions: []*coursepb.StructureSession{{Title: "no id"}}},
		"lesson without id": {Sessions: []*coursepb.StructureSession{{
			Id: "session-1", Title: "A", Lessons: []*coursepb.StructureLesson{{Title: "no id"}},
		}}},
		"session with lesson prefix": {Sessions: []*coursepb.StructureSession{{Id: "lesson-1", Title: "A"}}},
	}
	for name, structure := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := client.SaveStructure(ctx, &coursepb.SaveStructureRequest{
				UserId:    owner.String(),
				Role:      domain.RoleAdmin,
				CourseId:  course.ID.String(),
				Structure: structure,
			})
			assert.Equal(t, codes.InvalidArgument, status.Code(err))
		})
	}

	got, err := client.GetStructure(ctx, &coursepb.GetStructureRequest{
		UserId: owner.String(), Role: domain.RoleAdmin, CourseId: course.ID.String(),
	})
	require.NoError(t, err)
	assert.Empty(t, got.GetStructure().GetSessions())
}

func TestErrorCodes(t *testing.T) {
	client, db := startServer(t)
	ctx := context.Background()
	owner := uuid.New()
	course := testutil.SeedCourse(t, db, owner)

	_, err := client.SaveStructure(ctx, &coursepb.SaveStructureRequest{
		UserId: uuid.NewString(), Role: domain.RoleAdmin, CourseId: course.ID.String(),
	})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	_, err = client.SaveStructure(ctx, &coursepb.SaveStructureRequest{
		Role: domain.RoleAdmin, CourseId: course.ID.String(),
	})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = client.GetStructure(ctx, &coursepb.GetStructureRequest{
		UserId: owner.String(), Role: domain.RoleAdmin, CourseId: "not-a-uuid",
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.GetCourse(ctx, &coursepb.GetCourseRequest{CourseId: uuid.NewString()})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.SaveStructure(ctx, &coursepb.SaveStructureRequest{
		UserId:   owner.String(),
		Role:     domain.RoleAdmin,
		CourseId: course.ID.String(),
		Structure: &coursepb.Structure{Sessions: []*coursepb.StructureSession{
			{Id: uuid.NewString(), Title: "stranger"},
		}},
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestProgressOverGRPC(t *testing.T) {
	client, db := startServer(t)
	ctx := context.Background()
	course := testutil.SeedCourse(t, db, uuid.New())
	s := testutil.SeedSession(t, db, course.ID, "Only", 0, "clip")
	learner := uuid.NewString()

	_, err := client.Enroll(ctx, &coursepb.EnrollRequest{UserId: learner, CourseId: course.ID.String()})
	require.NoError(t, err)

	tick, err := client.CheckVideoCompletion(ctx, &coursepb.CheckVideoCompletionRequest{
		UserId: learner, LessonId: s.Lessons[0].ID.String(), CourseId: course.ID.String(),
		CurrentSeconds: 100, TotalSeconds: 600,
	})
	require.NoError(t, err)
	assert.False(t, tick.GetCompleted())

	tick, err = client.CheckVideoCompletion(ctx, &coursepb.CheckVideoCompletionRequest{
		UserId: learner, LessonId: s.Lessons[0].ID.String(), CourseId: course.ID.String(),
		CurrentSeconds: 590, TotalSeconds: 600,
	})
	require.NoError(t, err)
	assert.True(t, tick.GetCompleted())

	progress, err := client.GetCourseProgress(ctx, &coursepb.GetCourseProgressRequest{UserId: learner, CourseId: course.ID.String()})
	require.NoError(t, err)
	assert.EqualValues(t, 100, progress.GetPercent())
	assert.NotNil(t, progress.GetCompletedAt())
	assert.Equal(t, []string{s.Lessons[0].ID.String()}, progress.GetCompletedLessonIds())
}

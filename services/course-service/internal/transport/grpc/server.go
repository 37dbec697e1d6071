package grpc_server

import (
	"context"
	"errors"
	"time"

	"courseplatform/pkg/coursepb"
	"courseplatform/pkg/logger"
	"courseplatform/services/course-service/internal/application/usecase"
	"courseplatform/services/course-service/internal/domain"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type CourseServer struct {
	coursepb.UnimplementedCourseServiceServer
	courses   *usecase.CourseUseCase
	structure *usecase.StructureUseCase
	progress  *usecase.ProgressUseCase
	log       *logger.Logger
}

func NewCourseServer(cu *usecase.CourseUseCase, su *usecase.StructureUseCase, pu *usecase.ProgressUseCase, log *logger.Logger) *CourseServer {
	return &CourseServer{courses: cu, structure: su, progress: pu, log: log}
}

// toStatus переводит доменную ошибку в gRPC-статус. Текст внутренних ошибок наружу не уходит.
func (s *CourseServer) toStatus(err error) error {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return status.Error(codes.InvalidArgument, ve.Error())
	case errors.Is(err, domain.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, domain.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	}
	s.log.Error("request failed", "error", err)
	return status.Error(codes.Internal, "internal error")
}

func parseID(raw, what string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid %s id", what)
	}
	return id, nil
}

func actorOf(userID, role string) (domain.Actor, error) {
	actor, err := domain.NewActor(userID, role)
	if err != nil {
		return domain.Actor{}, status.Error(codes.Unauthenticated, err.Error())
	}
	return actor, nil
}

func formOf(in *coursepb.CourseInput) usecase.CourseForm {
	return usecase.CourseForm{
		Title:            in.GetTitle(),
		Description:      in.GetDescription(),
		SmallDescription: in.GetSmallDescription(),
		FileKey:          in.GetFileKey(),
		Price:            int(in.GetPrice()),
		Duration:         int(in.GetDuration()),
		Level:            in.GetLevel(),
		Category:         in.GetCategory(),
		Slug:             in.GetSlug(),
		Status:           in.GetStatus(),
	}
}

func timestampOrNil(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

func toPbLesson(l domain.Lesson) *coursepb.Lesson {
	var duration *int32
	if l.Duration != nil {
		d := int32(*l.Duration)
		duration = &d
	}
	return &coursepb.Lesson{
		Id:           l.ID.String(),
		SessionId:    l.SessionID.String(),
		Title:        l.Title,
		Type:         l.Type,
		Duration:     duration,
		Order:        int32(l.Order),
		Content:      l.Content,
		ThumbnailKey: l.ThumbnailKey,
		VideoKey:     l.VideoKey,
	}
}

func toPbCourse(c *domain.Course) *coursepb.Course {
	out := &coursepb.Course{
		Id:               c.ID.String(),
		UserId:           c.UserID.String(),
		Title:            c.Title,
		Description:      c.Description,
		SmallDescription: c.SmallDescription,
		FileKey:          c.FileKey,
		Price:            int32(c.Price),
		Duration:         int32(c.Duration),
		Level:            c.Level,
		Category:         c.Category,
		Slug:             c.Slug,
		Status:           c.Status,
		CreatedAt:        timestamppb.New(c.CreatedAt),
	}
	for _, s := range c.Sessions {
		ps := &coursepb.Session{
			Id:          s.ID.String(),
			Title:       s.Title,
			Description: s.Description,
			Order:       int32(s.Order),
			Lessons:     make([]*coursepb.Lesson, 0, len(s.Lessons)),
		}
		for _, l := range s.Lessons {
			ps.Lessons = append(ps.Lessons, toPbLesson(l))
		}
		out.Sessions = append(out.Sessions, ps)
	}
	return out
}

// === Админка курсов ===

func (s *CourseServer) CreateCourse(ctx context.Context, req *coursepb.CreateCourseRequest) (*coursepb.CreateCourseResponse, error) {
	actor, err := actorOf(req.UserId, req.Role)
	if err != nil {
		return nil, err
	}
	course, err := s.courses.Create(ctx, actor, formOf(req.GetCourse()))
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &coursepb.CreateCourseResponse{Id: course.ID.String()}, nil
}

func (s *CourseServer) UpdateCourse(ctx context.Context, req *coursepb.UpdateCourseRequest) (*coursepb.UpdateCourseResponse, error) {
	actor, err := actorOf(req.UserId, req.Role)
	if err != nil {
		return nil, err
	}
	id, err := parseID(req.CourseId, "course")
	if err != nil {
		return nil, err
	}
	course, err := s.courses.Update(ctx, actor, id, formOf(req.GetCourse()))
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &coursepb.UpdateCourseResponse{Course: toPbCourse(course)}, nil
}

func (s *CourseServer) DeleteCourse(ctx context.Context, req *coursepb.DeleteCourseRequest) (*coursepb.DeleteCourseResponse, error) {
	actor, err := actorOf(req.UserId, req.Role)
	if err != nil {
		return nil, err
	}
	id, err := parseID(req.CourseId, "course")
	if err != nil {
		return nil, err
	}
	if err := s.courses.Delete(ctx, actor, id); err != nil {
		return nil, s.toStatus(err)
	}
	return &coursepb.DeleteCourseResponse{Success: true}, nil
}

func (s *CourseServer) ListAdminCourses(ctx context.Context, req *coursepb.ListAdminCoursesRequest) (*coursepb.ListCoursesResponse, error) {
	actor, err := actorOf(req.UserId, req.Role)
	if err != nil {
		return nil, err
	}
	courses, err := s.courses.ListOwn(ctx, actor)
	if err != nil {
		return nil, s.toStatus(err)
	}
	resp := &coursepb.ListCoursesResponse{Courses: []*coursepb.Course{}, TotalCount: int32(len(courses))}
	for i := range courses {
		resp.Courses = append(resp.Courses, toPbCourse(&courses[i]))
	}
	return resp, nil
}

func (s *CourseServer) GetAdminCourse(ctx context.Context, req *coursepb.GetAdminCourseRequest) (*coursepb.GetCourseResponse, error) {
	actor, err := actorOf(req.UserId, req.Role)
	if err != nil {
		return nil, err
	}
	id, err := parseID(req.CourseId, "course")
	if err != nil {
		return nil, err
	}
	course, err := s.courses.GetOwn(ctx, actor, id)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &coursepb.GetCourseResponse{Course: toPbCourse(course)}, nil
}

// === Структура ===

func (s *CourseServer) GetStructure(ctx context.Context, req *coursepb.GetStructureRequest) (*coursepb.GetStructureResponse, error) {
	actor, err := actorOf(req.UserId, req.Role)
	if err != nil {
		return nil, err
	}
	id, err := parseID(req.CourseId, "course")
	if err != nil {
		return nil, err
	}
	snap, err := s.structure.Get(ctx, actor, id)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &coursepb.GetStructureResponse{Structure: coursepb.FromSnapshot(snap)}, nil
}

func (s *CourseServer) SaveStructure(ctx context.Context, req *coursepb.SaveStructureRequest) (*coursepb.SaveStructureResponse, error) {
	actor, err := actorOf(req.UserId, req.Role)
	if err != nil {
		return nil, err
	}
	id, err := parseID(req.CourseId, "course")
	if err != nil {
		return nil, err
	}
	snap, err := req.GetStructure().ToSnapshot()
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	res, err := s.structure.Save(ctx, actor, id, snap)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &coursepb.SaveStructureResponse{
		Status:    "success",
		Message:   "Course structure saved successfully",
		Created:   int32(res.Counts.Created),
		Updated:   int32(res.Counts.Updated),
		Deleted:   int32(res.Counts.Deleted),
		Structure: coursepb.FromSnapshot(res.Structure),
	}, nil
}

// === Уроки ===

func (s *CourseServer) GetLesson(ctx context.Context, req *coursepb.GetLessonRequest) (*coursepb.GetLessonResponse, error) {
	actor, err := actorOf(req.UserId, req.Role)
	if err != nil {
		return nil, err
	}
	id, err := parseID(req.LessonId, "lesson")
	if err != nil {
		return nil, err
	}
	d, err := s.courses.GetLesson(ctx, actor, id)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &coursepb.GetLessonResponse{
		Lesson:       toPbLesson(d.Lesson),
		CourseId:     d.Course.ID.String(),
		CourseTitle:  d.Course.Title,
		SessionTitle: d.Session.Title,
	}, nil
}

func (s *CourseServer) UpdateLesson(ctx context.Context, req *coursepb.UpdateLessonRequest) (*coursepb.UpdateLessonResponse, error) {
	actor, err := actorOf(req.UserId, req.Role)
	if err != nil {
		return nil, err
	}
	id, err := parseID(req.LessonId, "lesson")
	if err != nil {
		return nil, err
	}
	form := usecase.LessonForm{
		Title:        req.Title,
		ThumbnailKey: req.ThumbnailKey,
		VideoKey:     req.VideoKey,
		Content:      req.Content,
	}
	if req.Duration != nil {
		d := int(*req.Duration)
		form.Duration = &d
	}
	lesson, err := s.courses.UpdateLesson(ctx, actor, id, form)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &coursepb.UpdateLessonResponse{Lesson: toPbLesson(*lesson)}, nil
}

// === Каталог ===

func (s *CourseServer) ListCourses(ctx context.Context, req *coursepb.ListCoursesRequest) (*coursepb.ListCoursesResponse, error) {
	courses, total, err := s.courses.ListPublished(ctx, req.Search, req.Category, int(req.Limit), int(req.Offset))
	if err != nil {
		return nil, s.toStatus(err)
	}
	resp := &coursepb.ListCoursesResponse{Courses: []*coursepb.Course{}, TotalCount: int32(total)}
	for i := range courses {
		resp.Courses = append(resp.Courses, toPbCourse(&courses[i]))
	}
	return resp, nil
}

func (s *CourseServer) GetCourse(ctx context.Context, req *coursepb.GetCourseRequest) (*coursepb.GetCourseResponse, error) {
	courseID, err := parseID(req.CourseId, "course")
	if err != nil {
		return nil, err
	}
	userID := uuid.Nil
	if req.UserId != "" {
		if userID, err = parseID(req.UserId, "user"); err != nil {
			return nil, err
		}
	}
	course, enrolled, err := s.courses.GetPublished(ctx, userID, courseID)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &coursepb.GetCourseResponse{Course: toPbCourse(course), Enrolled: enrolled}, nil
}

func (s *CourseServer) Enroll(ctx context.Context, req *coursepb.EnrollRequest) (*coursepb.EnrollResponse, error) {
	actor, err := actorOf(req.UserId, "")
	if err != nil {
		return nil, err
	}
	courseID, err := parseID(req.CourseId, "course")
	if err != nil {
		return nil, err
	}
	e, err := s.courses.Enroll(ctx, actor.UserID, courseID)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &coursepb.EnrollResponse{CourseId: e.CourseID.String(), EnrolledAt: timestamppb.New(e.EnrolledAt), CompletedAt: timestampOrNil(e.CompletedAt)}, nil
}

// === Прогресс ===

func (s *CourseServer) UpdateProgress(ctx context.Context, req *coursepb.UpdateProgressRequest) (*coursepb.UpdateProgressResponse, error) {
	actor, err := actorOf(req.UserId, "")
	if err != nil {
		return nil, err
	}
	lessonID, err := parseID(req.LessonId, "lesson")
	if err != nil {
		return nil, err
	}
	if err := s.progress.UpdateProgress(ctx, actor.UserID, lessonID, int(req.ProgressSeconds)); err != nil {
		return nil, s.toStatus(err)
	}
	return &coursepb.UpdateProgressResponse{Success: true}, nil
}

func (s *CourseServer) MarkComplete(ctx context.Context, req *coursepb.MarkCompleteRequest) (*coursepb.MarkCompleteResponse, error) {
	actor, err := actorOf(req.UserId, "")
	if err != nil {
		return nil, err
	}
	lessonID, err := parseID(req.LessonId, "lesson")
	if err != nil {
		return nil, err
	}
	courseID, err := parseID(req.CourseId, "course")
	if err != nil {
		return nil, err
	}
	done, err := s.progress.MarkComplete(ctx, actor.UserID, lessonID, courseID)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &coursepb.MarkCompleteResponse{CourseCompleted: done}, nil
}

func (s *CourseServer) CheckVideoCompletion(ctx context.Context, req *coursepb.CheckVideoCompletionRequest) (*coursepb.CheckVideoCompletionResponse, error) {
	actor, err := actorOf(req.UserId, "")
	if err != nil {
		return nil, err
	}
	lessonID, err := parseID(req.LessonId, "lesson")
	if err != nil {
		return nil, err
	}
	courseID, err := parseID(req.CourseId, "course")
	if err != nil {
		return nil, err
	}
	completed, err := s.progress.CheckVideoCompletion(ctx, actor.UserID, lessonID, courseID, req.CurrentSeconds, req.TotalSeconds)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &coursepb.CheckVideoCompletionResponse{Completed: completed}, nil
}

func (s *CourseServer) GetLessonProgress(ctx context.Context, req *coursepb.GetLessonProgressRequest) (*coursepb.LessonProgress, error) {
	actor, err := actorOf(req.UserId, "")
	if err != nil {
		return nil, err
	}
	lessonID, err := parseID(req.LessonId, "lesson")
	if err != nil {
		return nil, err
	}
	p, err := s.progress.GetLessonProgress(ctx, actor.UserID, lessonID)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &coursepb.LessonProgress{ProgressSeconds: int32(p.ProgressSeconds), Completed: p.Completed}, nil
}

func (s *CourseServer) GetCourseProgress(ctx context.Context, req *coursepb.GetCourseProgressRequest) (*coursepb.CourseProgress, error) {
	actor, err := actorOf(req.UserId, "")
	if err != nil {
		return nil, err
	}
	courseID, err := parseID(req.CourseId, "course")
	if err != nil {
		return nil, err
	}
	p, err := s.progress.GetCourseProgress(ctx, actor.UserID, courseID)
	if err != nil {
		return nil, s.toStatus(err)
	}
	resp := &coursepb.CourseProgress{
		Percent:            int32(p.Percent),
		CompletedLessons:   int32(p.CompletedLessons),
		TotalLessons:       int32(p.TotalLessons),
		CompletedLessonIds: make([]string, 0, len(p.CompletedIDs)),
		CompletedAt:        timestampOrNil(p.CompletedAt),
	}
	for _, id := range p.CompletedIDs {
		resp.CompletedLessonIds = append(resp.CompletedLessonIds, id.String())
	}
	if p.NextLessonID != uuid.Nil {
		resp.NextLessonId = p.NextLessonID.String()
	}
	return resp, nil
}

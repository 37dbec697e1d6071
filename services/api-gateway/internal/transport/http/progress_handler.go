package handlers

import (
	"net/http"

	"courseplatform/pkg/coursepb"

	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	client coursepb.CourseServiceClient
}

func NewProgressHandler(client coursepb.CourseServiceClient) *ProgressHandler {
	return &ProgressHandler{client: client}
}

type progressReq struct {
	ProgressSeconds *int32 `json:"progressSeconds" binding:"required,min=0"`
}

type videoTickReq struct {
	CurrentSeconds float64 `json:"currentSeconds" binding:"min=0"`
	TotalSeconds   float64 `json:"totalSeconds"`
}

// POST /api/v1/learn/lessons/:lessonId/progress
func (h *ProgressHandler) Update(c *gin.Context) {
	var req progressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := identity(c)
	_, err := h.client.UpdateProgress(c, &coursepb.UpdateProgressRequest{
		UserId:          userID,
		LessonId:        c.Param("lessonId"),
		ProgressSeconds: *req.ProgressSeconds,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Progress saved"})
}

// GET /api/v1/learn/lessons/:lessonId/progress
func (h *ProgressHandler) Get(c *gin.Context) {
	userID, _ := identity(c)
	res, err := h.client.GetLessonProgress(c, &coursepb.GetLessonProgressRequest{
		UserId:   userID,
		LessonId: c.Param("lessonId"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	renderProto(c, http.StatusOK, res)
}

// POST /api/v1/learn/courses/:courseId/lessons/:lessonId/complete
func (h *ProgressHandler) Complete(c *gin.Context) {
	userID, _ := identity(c)
	res, err := h.client.MarkComplete(c, &coursepb.MarkCompleteRequest{
		UserId:   userID,
		LessonId: c.Param("lessonId"),
		CourseId: c.Param("courseId"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":          "success",
		"message":         "Lesson marked as complete",
		"courseCompleted": res.GetCourseCompleted(),
	})
}

// POST /api/v1/learn/courses/:courseId/lessons/:lessonId/video-tick
// Плеер шлёт позицию; при 90% просмотра урок засчитывается.
func (h *ProgressHandler) VideoTick(c *gin.Context) {
	var req videoTickReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := identity(c)
	res, err := h.client.CheckVideoCompletion(c, &coursepb.CheckVideoCompletionRequest{
		UserId:         userID,
		LessonId:       c.Param("lessonId"),
		CourseId:       c.Param("courseId"),
		CurrentSeconds: req.CurrentSeconds,
		TotalSeconds:   req.TotalSeconds,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	renderProto(c, http.StatusOK, res)
}

// GET /api/v1/learn/courses/:courseId/progress
func (h *ProgressHandler) Course(c *gin.Context) {
	userID, _ := identity(c)
	res, err := h.client.GetCourseProgress(c, &coursepb.GetCourseProgressRequest{
		UserId:   userID,
		CourseId: c.Param("courseId"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	renderProto(c, http.StatusOK, res)
}

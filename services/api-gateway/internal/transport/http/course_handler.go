package handlers

import (
	"net/http"
	"strconv"

	"courseplatform/pkg/coursepb"
	"courseplatform/pkg/coursetree"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	client coursepb.CourseServiceClient
}

func NewCourseHandler(client coursepb.CourseServiceClient) *CourseHandler {
	return &CourseHandler{client: client}
}

type courseReq struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	SmallDescription string `json:"smallDescription"`
	FileKey          string `json:"fileKey"`
	Price            int32  `json:"price" binding:"min=0"`
	Duration         int32  `json:"duration" binding:"min=0"`
	Level            string `json:"level"`
	Category         string `json:"category"`
	Slug             string `json:"slug"`
	Status           string `json:"status"`
}

func (r courseReq) input() *coursepb.CourseInput {
	return &coursepb.CourseInput{
		Title:            r.Title,
		Description:      r.Description,
		SmallDescription: r.SmallDescription,
		FileKey:          r.FileKey,
		Price:            r.Price,
		Duration:         r.Duration,
		Level:            r.Level,
		Category:         r.Category,
		Slug:             r.Slug,
		Status:           r.Status,
	}
}

func queryInt(c *gin.Context, key string, def, max int) int {
	v, err := strconv.Atoi(c.DefaultQuery(key, strconv.Itoa(def)))
	if err != nil || v < 0 {
		return def
	}
	if max > 0 && v > max {
		return max
	}
	return v
}

// === Каталог ===

// GET /api/v1/courses
func (h *CourseHandler) List(c *gin.Context) {
	res, err := h.client.ListCourses(c, &coursepb.ListCoursesRequest{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Limit:    int32(queryInt(c, "limit", 20, 100)),
		Offset:   int32(queryInt(c, "offset", 0, 0)),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	renderProto(c, http.StatusOK, res)
}

// GET /api/v1/courses/:id
func (h *CourseHandler) GetOne(c *gin.Context) {
	userID, _ := identity(c)
	res, err := h.client.GetCourse(c, &coursepb.GetCourseRequest{
		CourseId: c.Param("id"),
		UserId:   userID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	renderProto(c, http.StatusOK, res)
}

// POST /api/v1/courses/:id/enroll
func (h *CourseHandler) Enroll(c *gin.Context) {
	userID, _ := identity(c)
	res, err := h.client.Enroll(c, &coursepb.EnrollRequest{
		UserId:   userID,
		CourseId: c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	renderProto(c, http.StatusOK, res)
}

// === Админка ===

// GET /api/v1/admin/courses
func (h *CourseHandler) AdminList(c *gin.Context) {
	userID, role := identity(c)
	res, err := h.client.ListAdminCourses(c, &coursepb.ListAdminCoursesRequest{UserId: userID, Role: role})
	if err != nil {
		respondError(c, err)
		return
	}
	renderProto(c, http.StatusOK, res)
}

// GET /api/v1/admin/courses/:id
func (h *CourseHandler) AdminGet(c *gin.Context) {
	userID, role := identity(c)
	res, err := h.client.GetAdminCourse(c, &coursepb.GetAdminCourseRequest{
		UserId:   userID,
		Role:     role,
		CourseId: c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	renderProto(c, http.StatusOK, res)
}

// POST /api/v1/admin/courses
func (h *CourseHandler) Create(c *gin.Context) {
	var req courseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, role := identity(c)
	res, err := h.client.CreateCourse(c, &coursepb.CreateCourseRequest{UserId: userID, Role: role, Course: req.input()})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "message": "Course created successfully", "id": res.GetId()})
}

// PUT /api/v1/admin/courses/:id
func (h *CourseHandler) Update(c *gin.Context) {
	var req courseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, role := identity(c)
	res, err := h.client.UpdateCourse(c, &coursepb.UpdateCourseRequest{
		UserId:   userID,
		Role:     role,
		CourseId: c.Param("id"),
		Course:   req.input(),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Course updated successfully", "course": embedProto(res.GetCourse())})
}

// DELETE /api/v1/admin/courses/:id
func (h *CourseHandler) Delete(c *gin.Context) {
	userID, role := identity(c)
	_, err := h.client.DeleteCourse(c, &coursepb.DeleteCourseRequest{
		UserId:   userID,
		Role:     role,
		CourseId: c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Course deleted successfully"})
}

// === Структура курса ===

// GET /api/v1/admin/courses/:id/structure
func (h *CourseHandler) GetStructure(c *gin.Context) {
	userID, role := identity(c)
	res, err := h.client.GetStructure(c, &coursepb.GetStructureRequest{
		UserId:   userID,
		Role:     role,
		CourseId: c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	snap, err := res.GetStructure().ToSnapshot()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// PUT /api/v1/admin/courses/:id/structure
// Тело - снимок дерева редактора: {sessions:[{id,title,order,lessons:[...]}]}.
func (h *CourseHandler) SaveStructure(c *gin.Context) {
	var snap coursetree.Snapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		fail(c, http.StatusBadRequest, "invalid structure: "+err.Error())
		return
	}
	if err := snap.Validate(); err != nil {
		fail(c, http.StatusBadRequest, "invalid structure: "+err.Error())
		return
	}

	userID, role := identity(c)
	res, err := h.client.SaveStructure(c, &coursepb.SaveStructureRequest{
		UserId:    userID,
		Role:      role,
		CourseId:  c.Param("id"),
		Structure: coursepb.FromSnapshot(snap),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	saved, err := res.GetStructure().ToSnapshot()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    res.GetStatus(),
		"message":   res.GetMessage(),
		"created":   res.GetCreated(),
		"updated":   res.GetUpdated(),
		"deleted":   res.GetDeleted(),
		"structure": saved,
	})
}

// === Редактор урока ===

type lessonReq struct {
	Title        string `json:"title" binding:"required,min=1,max=200"`
	Duration     *int32 `json:"duration" binding:"omitempty,min=0"`
	ThumbnailKey string `json:"thumbnailKey"`
	VideoKey     string `json:"videoKey"`
	Content      string `json:"content"`
}

// GET /api/v1/admin/lessons/:lessonId
func (h *CourseHandler) GetLesson(c *gin.Context) {
	userID, role := identity(c)
	res, err := h.client.GetLesson(c, &coursepb.GetLessonRequest{
		UserId:   userID,
		Role:     role,
		LessonId: c.Param("lessonId"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	renderProto(c, http.StatusOK, res)
}

// PUT /api/v1/admin/lessons/:lessonId
func (h *CourseHandler) UpdateLesson(c *gin.Context) {
	var req lessonReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, role := identity(c)
	res, err := h.client.UpdateLesson(c, &coursepb.UpdateLessonRequest{
		UserId:       userID,
		Role:         role,
		LessonId:     c.Param("lessonId"),
		Title:        req.Title,
		Duration:     req.Duration,
		ThumbnailKey: req.ThumbnailKey,
		VideoKey:     req.VideoKey,
		Content:      req.Content,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Lesson updated successfully", "lesson": embedProto(res.GetLesson())})
}

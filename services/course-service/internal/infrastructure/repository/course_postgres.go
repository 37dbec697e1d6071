package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"courseplatform/services/course-service/internal/domain"
	"courseplatform/services/course-service/internal/infrastructure/cache"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseRepository struct {
	db    *gorm.DB
	cache cache.CourseCache
}

func NewCourseRepository(db *gorm.DB, c cache.CourseCache) *CourseRepository {
	if c == nil {
		c = cache.NopCache{}
	}
	return &CourseRepository{db: db, cache: c}
}

func orderedTree(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Sessions", func(db *gorm.DB) *gorm.DB {
			return db.Order("\"order\" asc")
		}).
		Preload("Sessions.Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("\"order\" asc")
		})
}

func courseErr(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrCourseNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrSlugTaken
	}
	return domain.Persistence(op, err)
}

// === Публичный каталог, кешируется ===
func (r *CourseRepository) List(ctx context.Context, search, category string, limit, offset int) ([]domain.Course, int64, error) {
	key := fmt.Sprintf("%s:%s:%d:%d", strings.ToLower(search), category, limit, offset)
	if page, ok := r.cache.GetPage(ctx, key); ok {
		return page.Courses, page.Total, nil
	}

	var courses []domain.Course
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Course{}).Where("status = ?", domain.StatusPublished)
	if search != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, courseErr("count courses", err)
	}
	err := query.Limit(limit).Offset(offset).Order("created_at desc").Find(&courses).Error
	if err != nil {
		return nil, 0, courseErr("list courses", err)
	}

	r.cache.SetPage(ctx, key, &cache.CoursePage{Courses: courses, Total: total})
	return courses, total, nil
}

// GetPublished отдаёт опубликованный курс с упорядоченными сессиями и уроками.
func (r *CourseRepository) GetPublished(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	if c, ok := r.cache.GetCourse(ctx, id); ok {
		return c, nil
	}

	var course domain.Course
	err := orderedTree(r.db.WithContext(ctx)).
		Where("status = ?", domain.StatusPublished).
		First(&course, "id = ?", id).Error
	if err != nil {
		return nil, courseErr("get course", err)
	}

	r.cache.SetCourse(ctx, &course)
	return &course, nil
}

func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	var course domain.Course
	if err := r.db.WithContext(ctx).First(&course, "id = ?", id).Error; err != nil {
		return nil, courseErr("get course", err)
	}
	return &course, nil
}

// GetWithStructure - для админки, мимо кеша.
func (r *CourseRepository) GetWithStructure(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	var course domain.Course
	if err := orderedTree(r.db.WithContext(ctx)).First(&course, "id = ?", id).Error; err != nil {
		return nil, courseErr("get course", err)
	}
	return &course, nil
}

func (r *CourseRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Course, error) {
	var courses []domain.Course
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at desc").
		Find(&courses).Error
	if err != nil {
		return nil, courseErr("list own courses", err)
	}
	return courses, nil
}

func (r *CourseRepository) Create(ctx context.Context, c *domain.Course) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return courseErr("create course", err)
	}
	r.cache.Invalidate(ctx, c.ID)
	return nil
}

func (r *CourseRepository) Update(ctx context.Context, c *domain.Course) error {
	err := r.db.WithContext(ctx).Model(&domain.Course{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"title":             c.Title,
			"description":       c.Description,
			"small_description": c.SmallDescription,
			"file_key":          c.FileKey,
			"price":             c.Price,
			"duration":          c.Duration,
			"level":             c.Level,
			"category":          c.Category,
			"slug":              c.Slug,
			"status":            c.Status,
		}).Error
	if err != nil {
		return courseErr("update course", err)
	}
	r.cache.Invalidate(ctx, c.ID)
	return nil
}

// Delete удаляет курс вместе с сессиями, уроками и записями на курс.
// Каскад выполняется явно, чтобы не зависеть от FK в конкретной СУБД.
func (r *CourseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sessionIDs []uuid.UUID
		if err := tx.Model(&domain.CourseSession{}).Where("course_id = ?", id).Pluck("id", &sessionIDs).Error; err != nil {
			return err
		}
		if len(sessionIDs) > 0 {
			if err := tx.Where("session_id IN ?", sessionIDs).Delete(&domain.Lesson{}).Error; err != nil {
				return err
			}
			if err := tx.Where("course_id = ?", id).Delete(&domain.CourseSession{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("course_id = ?", id).Delete(&domain.CourseEnrollment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Course{}, "id = ?", id).Error
	})
	if err != nil {
		return courseErr("delete course", err)
	}
	r.cache.Invalidate(ctx, id)
	return nil
}

// Invalidate вызывается после изменений структуры и уроков.
func (r *CourseRepository) Invalidate(ctx context.Context, id uuid.UUID) {
	r.cache.Invalidate(ctx, id)
}

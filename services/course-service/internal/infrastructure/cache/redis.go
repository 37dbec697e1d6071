package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"courseplatform/services/course-service/internal/domain"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	detailTTL = time.Hour
	listTTL   = 10 * time.Minute

	listVersionKey = "courses:list:version"
)

type CoursePage struct {
	Courses []domain.Course
	Total   int64
}

// CourseCache - cache-aside для публичного каталога.
type CourseCache interface {
	GetCourse(ctx context.Context, id uuid.UUID) (*domain.Course, bool)
	SetCourse(ctx context.Context, c *domain.Course)
	GetPage(ctx context.Context, query string) (*CoursePage, bool)
	SetPage(ctx context.Context, query string, page *CoursePage)
	// Invalidate сбрасывает карточку курса и все закешированные страницы списка.
	Invalidate(ctx context.Context, id uuid.UUID)
}

type RedisCourseCache struct {
	rdb *redis.Client
}

func NewRedisCourseCache(rdb *redis.Client) *RedisCourseCache {
	return &RedisCourseCache{rdb: rdb}
}

func detailKey(id uuid.UUID) string {
	return "course:detail:" + id.String()
}

// Страницы списка ключуются версией: инкремент версии делает все старые ключи
// недостижимыми, дальше их убирает TTL.
func (c *RedisCourseCache) pageKey(ctx context.Context, query string) string {
	version, err := c.rdb.Get(ctx, listVersionKey).Int64()
	if err != nil {
		version = 0
	}
	return fmt.Sprintf("courses:list:v%d:%s", version, query)
}

func (c *RedisCourseCache) GetCourse(ctx context.Context, id uuid.UUID) (*domain.Course, bool) {
	val, err := c.rdb.Get(ctx, detailKey(id)).Bytes()
	if err != nil {
		return nil, false
	}
	var course domain.Course
	if json.Unmarshal(val, &course) != nil {
		return nil, false
	}
	return &course, true
}

func (c *RedisCourseCache) SetCourse(ctx context.Context, course *domain.Course) {
	if data, err := json.Marshal(course); err == nil {
		c.rdb.Set(ctx, detailKey(course.ID), data, detailTTL)
	}
}

func (c *RedisCourseCache) GetPage(ctx context.Context, query string) (*CoursePage, bool) {
	val, err := c.rdb.Get(ctx, c.pageKey(ctx, query)).Bytes()
	if err != nil {
		return nil, false
	}
	var page CoursePage
	if json.Unmarshal(val, &page) != nil {
		return nil, false
	}
	return &page, true
}

func (c *RedisCourseCache) SetPage(ctx context.Context, query string, page *CoursePage) {
	if data, err := json.Marshal(page); err == nil {
		c.rdb.Set(ctx, c.pageKey(ctx, query), data, listTTL)
	}
}

func (c *RedisCourseCache) Invalidate(ctx context.Context, id uuid.UUID) {
	pipe := c.rdb.TxPipeline()
	pipe.Del(ctx, detailKey(id))
	pipe.Incr(ctx, listVersionKey)
	_, _ = pipe.Exec(ctx)
}

// NopCache используется без Redis и в тестах.
type NopCache struct{}

func (NopCache) GetCourse(context.Context, uuid.UUID) (*domain.Course, bool) { return nil, false }
func (NopCache) SetCourse(context.Context, *domain.Course) {}
func (NopCache) GetPage(context.Context, string) (*CoursePage, bool) { return nil, false }
func (NopCache) SetPage(context.Context, string, *CoursePage) {}
func (NopCache) Invalidate(context.Context, uuid.UUID) {}

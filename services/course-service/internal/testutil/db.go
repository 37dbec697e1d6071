package testutil

import (
	"testing"

	"courseplatform/services/course-service/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB открывает отдельную in-memory базу SQLite с мигрированной схемой.
// Одно соединение: все запросы теста идут в одну и ту же базу.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&domain.Course{},
		&domain.CourseSession{},
		&domain.Lesson{},
		&domain.LessonProgress{},
		&domain.CourseEnrollment{},
	))
	return db
}

func IntPtr(v int) *int { return &v }

// SeedCourse создаёт опубликованный бесплатный курс владельца без структуры.
func SeedCourse(t *testing.T, db *gorm.DB, owner uuid.UUID, mutate ...func(*domain.Course)) *domain.Course {
	t.Helper()
	c := &domain.Course{
		UserID:           owner,
		Title:            "Network Security Basics",
		Description:      "Packets, ports and the tools to watch them.",
		SmallDescription: "Learn how networks get attacked",
		FileKey:          "cover.png",
		Duration:         10,
		Level:            domain.LevelBeginner,
		Category:         "Network Security",
		Slug:             "net-sec-" + uuid.NewString()[:8],
		Status:           domain.StatusPublished,
	}
	for _, m := range mutate {
		m(c)
	}
	require.NoError(t, db.Create(c).Error)
	return c
}

// SeedSession создаёт сессию с уроками; порядок уроков - порядок аргументов.
func SeedSession(t *testing.T, db *gorm.DB, courseID uuid.UUID, title string, order int, lessons ...string) *domain.CourseSession {
	t.Helper()
	s := &domain.CourseSession{CourseID: courseID, Title: title, Order: order}
	require.NoError(t, db.Omit("Lessons").Create(s).Error)
	for i, lt := range lessons {
		l := domain.Lesson{SessionID: s.ID, Title: lt, Type: domain.LessonVideo, Order: i}
		require.NoError(t, db.Create(&l).Error)
		s.Lessons = append(s.Lessons, l)
	}
	return s
}

package main

import (
	"context"
	"errors"

	"courseplatform/services/course-service/internal/domain"
	"courseplatform/services/course-service/internal/infrastructure/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func intPtr(v int) *int { return &v }

// seedDemo наполняет пустую базу одним опубликованным курсом со структурой.
func seedDemo(ctx context.Context, db *gorm.DB, repo *repository.CourseRepository, owner string) error {
	ownerID, err := uuid.Parse(owner)
	if err != nil {
		return errors.New("SEED_OWNER_ID must be a user uuid")
	}

	var count int64
	if err := db.WithContext(ctx).Model(&domain.Course{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return repo.Create(ctx, &domain.Course{
		UserID:           ownerID,
		Title:            "Secure Python Web Development",
		Description:      "Writing Django applications that survive real attacks, from threat modelling to deployment.",
		SmallDescription: "Secure web development with Python",
		FileKey:          "demo-python-cover.jpg",
		Duration:         45,
		Level:            domain.LevelBeginner,
		Category:         "Secure Coding",
		Slug:             "secure-python-web",
		Status:           domain.StatusPublished,
		Sessions: []domain.CourseSession{
			{
				Title: "Getting started",
				Order: 0,
				Lessons: []domain.Lesson{
					{Title: "Course overview", Type: domain.LessonVideo, Duration: intPtr(5), Order: 0},
					{Title: "Setting up Python", Type: domain.LessonReading, Order: 1},
				},
			},
			{
				Title: "Django hardening",
				Order: 1,
				Lessons: []domain.Lesson{
					{Title: "CSRF and session handling", Type: domain.LessonVideo, Duration: intPtr(18), Order: 0},
				},
			},
		},
	})
}

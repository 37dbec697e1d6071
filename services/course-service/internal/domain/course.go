package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	LevelBeginner     = "BEGINNER"
	LevelIntermediate = "INTERMEDIATE"
	LevelAdvanced     = "ADVANCED"

	StatusDraft     = "DRAFT"
	StatusPublished = "PUBLISHED"
	StatusArchived  = "ARCHIVED"

	LessonVideo   = "VIDEO"
	LessonReading = "READING"
)

var Categories = []string{
	"Introduction to Cybersecurity",
	"Network Security",
	"Web Application Security",
	"Operating System Security",
	"Cryptography",
	"Penetration Testing",
	"Ethical Hacking",
	"Digital Forensics",
	"Incident Response",
	"Malware Analysis",
	"Reverse Engineering",
	"Cloud Security",
	"Mobile Security",
	"Threat Intelligence",
	"Security Operations (SOC)",
	"Red Teaming",
	"Blue Teaming",
	"OSINT (Open Source Intelligence)",
	"Privilege Escalation",
	"Vulnerability Assessment",
	"Exploit Development",
	"Wireless Security",
	"Social Engineering",
	"Security Governance & Compliance",
	"Secure Coding",
}

type Course struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID `gorm:"type:uuid;index;not null"` // владелец
	Title            string    `gorm:"index;not null"`
	Description      string    `gorm:"type:text"`
	SmallDescription string
	FileKey          string
	Price            int
	Duration         int // часы
	Level            string
	Category         string `gorm:"index"`
	Slug             string `gorm:"uniqueIndex;not null"`
	Status           string `gorm:"index"`

	Sessions []CourseSession `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE;"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type CourseSession struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourseID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Title       string
	Description string
	Order       int

	Lessons []Lesson `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE;"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Lesson struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Title        string
	Type         string
	Duration     *int // минуты, null - не указана
	Order        int
	Content      string `gorm:"type:text"`
	ThumbnailKey string
	VideoKey     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Course) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (s *CourseSession) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (l *Lesson) BeforeCreate(*gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// OrderedLessons возвращает уроки курса в порядке прохождения: по сессиям, затем внутри сессии.
// Ожидает, что Sessions и Lessons уже отсортированы по order.
func (c *Course) OrderedLessons() []Lesson {
	var out []Lesson
	for _, s := range c.Sessions {
		out = append(out, s.Lessons...)
	}
	return out
}

// LessonDetail - урок вместе с родительскими сессией и курсом, для редактора урока.
type LessonDetail struct {
	Lesson  Lesson
	Session CourseSession
	Course  Course
}

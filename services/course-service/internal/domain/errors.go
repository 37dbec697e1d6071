package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Категории ошибок, по ним транспорт выбирает код ответа.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("not authorized")
	ErrValidation   = errors.New("validation failed")
	ErrPersistence  = errors.New("persistence failure")
)

var (
	ErrCourseNotFound = fmt.Errorf("course %w", ErrNotFound)
	ErrLessonNotFound = fmt.Errorf("lesson %w", ErrNotFound)
	ErrNotEnrolled    = fmt.Errorf("enrollment %w", ErrNotFound)

	ErrNotAdmin     = fmt.Errorf("admin role required: %w", ErrUnauthorized)
	ErrNotOwner     = fmt.Errorf("course belongs to another user: %w", ErrUnauthorized)
	ErrNoActor      = fmt.Errorf("no authenticated user: %w", ErrUnauthorized)
	ErrSlugTaken    = fmt.Errorf("slug already taken: %w", ErrValidation)
	ErrCourseIsPaid = fmt.Errorf("course is not free: %w", ErrValidation)
)

// ValidationError перечисляет поля, не прошедшие проверку.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, e.Fields[k])
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}

func Persistence(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, ErrPersistence, err)
}

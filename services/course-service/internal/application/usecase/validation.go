package usecase

import (
	"errors"
	"reflect"
	"slices"
	"strings"

	"courseplatform/services/course-service/internal/domain"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

const categoryTag = "coursecategory"

var (
	validate   *validator.Validate
	translator ut.Translator
)

func init() {
	validate = validator.New()

	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// В ошибках - имена из json-тегов.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(categoryTag, func(fl validator.FieldLevel) bool {
		return slices.Contains(domain.Categories, fl.Field().String())
	})
	_ = validate.RegisterTranslation(categoryTag, translator,
		func(ut.Translator) error { return nil },
		func(ut.Translator, validator.FieldError) string { return "unknown course category" },
	)
}

// CourseForm - поля курса из админки.
type CourseForm struct {
	Title            string `json:"title" validate:"required,min=3,max=100"`
	Description      string `json:"description" validate:"required,min=10,max=1000"`
	SmallDescription string `json:"smallDescription" validate:"required,min=10,max=255"`
	FileKey          string `json:"fileKey" validate:"required"`
	Price            int    `json:"price" validate:"gte=0"`
	Duration         int    `json:"duration" validate:"min=1,max=50"`
	Level            string `json:"level" validate:"required,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	Category         string `json:"category" validate:"required,coursecategory"`
	Slug             string `json:"slug" validate:"required,min=3,max=100"`
	Status           string `json:"status" validate:"required,oneof=DRAFT PUBLISHED ARCHIVED"`
}

// LessonForm - поля редактора урока.
type LessonForm struct {
	Title        string `json:"title" validate:"required,max=200"`
	Duration     *int   `json:"duration" validate:"omitempty,gte=0"`
	ThumbnailKey string `json:"thumbnailKey"`
	VideoKey     string `json:"videoKey"`
	Content      string `json:"content"`
}

// structureNode - проверки одного узла снимка структуры.
type structureNode struct {
	Title    string `json:"title" validate:"max=200"`
	Type     string `json:"type" validate:"omitempty,oneof=VIDEO READING"`
	Duration *int   `json:"duration" validate:"omitempty,gte=0"`
}

func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.Validationf("%v", err)
	}
	ve := &domain.ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		ve.Fields[fe.Field()] = fe.Translate(translator)
	}
	return ve
}

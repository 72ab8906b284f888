package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/org-directory/internal/pkg/errors"
	"github.com/org-directory/internal/pkg/utils"
)

var validate *validator.Validate

var phonePattern = regexp.MustCompile(`^\+?\d{1,4}?[-.\s]?\(?\d{1,3}?\)?[-.\s]?\d{1,4}[-.\s]?\d{1,4}[-.\s]?\d{1,9}$`)

func init() {
	validate = validator.New()

	// Имена полей в ошибках берём из json-тегов
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("coord_lat", func(fl validator.FieldLevel) bool {
		return utils.ValidLatitude(fl.Field().String())
	})
	_ = validate.RegisterValidation("coord_lon", func(fl validator.FieldLevel) bool {
		return utils.ValidLongitude(fl.Field().String())
	})
	_ = validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
}

// Validate - валидация структуры; ошибки переводятся в AppError c полями
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.ErrInvalidRequest
	}

	fields := make([]errors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, errors.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return errors.Validation(fields...)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "coord_lat":
		return "Latitude should be in format 00.0000"
	case "coord_lon":
		return "Longitude should be in format 000.0000"
	case "phone":
		return fmt.Sprintf("Phone %v not valid", fe.Value())
	case "required":
		return fmt.Sprintf("Field %s is required", fe.Field())
	default:
		return fmt.Sprintf("Field %s failed on the %s rule", fe.Field(), fe.Tag())
	}
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}

// Package validate turns go-playground/validator failures into
// apperrors.ValidationError values keyed by JSON field name.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/linskybing/property-portal/internal/domain/property"
	"github.com/linskybing/property-portal/internal/domain/ticket"
	"github.com/linskybing/property-portal/internal/domain/user"
	"github.com/linskybing/property-portal/pkg/apperrors"
)

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
			return user.Role(fl.Field().String()).Valid()
		})
		_ = v.RegisterValidation("property_status", func(fl validator.FieldLevel) bool {
			return property.Status(fl.Field().String()).Valid()
		})
		_ = v.RegisterValidation("property_type", func(fl validator.FieldLevel) bool {
			return property.Type(fl.Field().String()).Valid()
		})
		_ = v.RegisterValidation("ticket_status", func(fl validator.FieldLevel) bool {
			return ticket.Status(fl.Field().String()).Valid()
		})
		_ = v.RegisterValidation("ticket_priority", func(fl validator.FieldLevel) bool {
			return ticket.Priority(fl.Field().String()).Valid()
		})
		instance = v
	})
	return instance
}

// Struct validates s and returns nil or a *apperrors.ValidationError listing
// every offending field.
func Struct(s any) error {
	err := get().Struct(s)
	if err == nil {
		return nil
	}

	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return err
	}

	issues := make([]apperrors.ValidationIssue, 0, len(verr))
	for _, fe := range verr {
		issues = append(issues, apperrors.ValidationIssue{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: message(fe),
		})
	}
	return &apperrors.ValidationError{Issues: issues}
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "user_role":
		return fmt.Sprintf("%s must be one of [admin agent landlord tenant]", field)
	case "property_status":
		return fmt.Sprintf("%s must be one of [%s]", field, joinValues(property.Statuses))
	case "property_type":
		return fmt.Sprintf("%s must be one of [%s]", field, joinValues(property.Types))
	case "ticket_status":
		return fmt.Sprintf("%s must be one of [%s]", field, joinValues(ticket.Statuses))
	case "ticket_priority":
		return fmt.Sprintf("%s must be one of [%s]", field, joinValues(ticket.Priorities))
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

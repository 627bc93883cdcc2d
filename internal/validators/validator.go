// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/MKhiriev/ergo/models"
	"github.com/go-playground/validator/v10"
)

// RequestValidator implements [Validator] for the request and domain models
// of the ergo API. Structural rules live in `validate` struct tags and are
// checked by go-playground/validator; rules spanning several fields are
// checked here.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a RequestValidator with the custom
// "weekday" and "hhmm" rules registered.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json names so messages match what the client sent
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	// registration only fails on empty tags or nil funcs
	_ = v.RegisterValidation("weekday", isWeekday)
	_ = v.RegisterValidation("hhmm", isHHMM)

	return &RequestValidator{validate: v}
}

// Validate dispatches validation to the appropriate type-specific rules.
// When fields are given, only those struct fields (Go names) are checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateStruct(ctx, value, fields...)
	case *models.User:
		return v.validateStruct(ctx, value, fields...)

	case models.LoginRequest:
		return v.validateStruct(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateStruct(ctx, value, fields...)

	case models.Tag:
		return v.validateStruct(ctx, value, fields...)
	case *models.Tag:
		return v.validateStruct(ctx, value, fields...)

	case models.TagUpdate:
		return v.validateTagUpdate(ctx, value)
	case *models.TagUpdate:
		return v.validateTagUpdate(ctx, *value)

	case models.CreateTaskRequest:
		return v.validateCreateTask(ctx, value)
	case *models.CreateTaskRequest:
		return v.validateCreateTask(ctx, *value)

	case models.UpdateTaskRequest:
		return v.validateUpdateTask(ctx, value)
	case *models.UpdateTaskRequest:
		return v.validateUpdateTask(ctx, *value)

	case models.Task:
		return v.validateTask(ctx, value)
	case *models.Task:
		return v.validateTask(ctx, *value)

	case models.TaskFilter:
		return v.validateTaskFilter(ctx, value)
	case *models.TaskFilter:
		return v.validateTaskFilter(ctx, *value)

	case models.TaskCompletion:
		return v.validateStruct(ctx, value, fields...)
	case *models.TaskCompletion:
		return v.validateStruct(ctx, value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}

	return describe(err)
}

func (v *RequestValidator) validateTagUpdate(ctx context.Context, update models.TagUpdate) error {
	if update.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	return v.validateStruct(ctx, update)
}

func (v *RequestValidator) validateCreateTask(ctx context.Context, req models.CreateTaskRequest) error {
	if err := v.validateStruct(ctx, req); err != nil {
		return err
	}

	if !hasDates(req.IsRecursive, req.TaskDate, req.RecTaskDate) {
		return ErrMissingDateFields
	}

	return nil
}

func (v *RequestValidator) validateUpdateTask(ctx context.Context, req models.UpdateTaskRequest) error {
	if req.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	return v.validateStruct(ctx, req)
}

// validateTask checks a task after an update has been applied to it.
func (v *RequestValidator) validateTask(ctx context.Context, task models.Task) error {
	for _, rec := range task.RecTaskDate {
		if err := v.validateStruct(ctx, rec); err != nil {
			return err
		}
	}

	if !task.HasDates() {
		return ErrMissingDateFields
	}

	return nil
}

func (v *RequestValidator) validateTaskFilter(ctx context.Context, filter models.TaskFilter) error {
	if err := v.validateStruct(ctx, filter); err != nil {
		return err
	}

	if filter.From != nil && filter.To != nil && *filter.From > *filter.To {
		return ErrInvalidDateRange
	}

	return nil
}

func hasDates(isRecursive bool, taskDate *int64, schedule models.Schedule) bool {
	if isRecursive {
		return len(schedule) > 0
	}
	return taskDate != nil
}

// describe converts validator errors into an ErrInvalidData-wrapped error
// listing every violated field.
func describe(err error) error {
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return ErrUnsupportedType
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidData, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fieldMessage(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalidData, strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "uuid":
		return field + " must be a valid id"
	case "weekday":
		return field + " must be one of MONDAY..SUNDAY"
	case "hhmm":
		return field + " must be a time in HHMM format"
	case "datetime":
		return fmt.Sprintf("%s must match %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed on %s", field, fe.Tag())
	}
}

func isWeekday(fl validator.FieldLevel) bool {
	return slices.Contains(models.DaysOfTheWeek, models.DayOfWeek(fl.Field().String()))
}

// isHHMM accepts integers 0..2359 whose last two digits are a valid minute.
func isHHMM(fl validator.FieldLevel) bool {
	var value int64
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		value = fl.Field().Int()
	default:
		return false
	}

	return value >= 0 && value/100 <= 23 && value%100 <= 59
}

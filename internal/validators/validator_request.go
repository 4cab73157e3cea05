// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	nonstandard "github.com/go-playground/validator/v10/non-standard/validators"
)

const (
	tagName        = "name"
	tagEmail       = "email_shape"
	tagPassword    = "password"
	tagPasswordMax = "password_max"
	tagNotBlank    = "notblank"
	tagTaskStatus  = "task_status"
)

var tagMessages = map[string]string{
	tagName:        MsgInvalidName,
	tagEmail:       MsgInvalidEmail,
	tagPassword:    MsgInvalidPassword,
	tagPasswordMax: MsgPasswordTooLong,
	tagTaskStatus:  MsgInvalidStatus,
}

// RequestValidator validates request DTOs declared in models using
// `validate` struct tags.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator returns a Validator with the application's custom
// tags registered. Field names in messages are taken from json tags.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	must(v.RegisterValidation(tagName, stringRule(IsValidName)))
	must(v.RegisterValidation(tagEmail, stringRule(IsValidEmail)))
	must(v.RegisterValidation(tagPassword, stringRule(IsValidPassword)))
	must(v.RegisterValidation(tagPasswordMax, stringRule(IsPasswordWithinLimit)))
	must(v.RegisterValidation(tagTaskStatus, stringRule(IsValidTaskStatus)))
	must(v.RegisterValidation(tagNotBlank, nonstandard.NotBlank))

	return &RequestValidator{validate: v}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	value := reflect.ValueOf(obj)
	if value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return ErrUnsupportedType
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return ErrUnsupportedType
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("error validating %T: %w", obj, err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, messageFor(fe))
	}

	return NewValidationError(messages...)
}

func messageFor(fe validator.FieldError) string {
	if msg, ok := tagMessages[fe.Tag()]; ok {
		return msg
	}

	field := fe.Field()
	if field != "" {
		field = strings.ToUpper(field[:1]) + field[1:]
	}

	switch fe.Tag() {
	case tagNotBlank, "required":
		return field + " is required"
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func stringRule(rule func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() != reflect.String {
			return false
		}
		return rule(field.String())
	}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

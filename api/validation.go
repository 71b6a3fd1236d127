package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "aws-recommender/internal/errors"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// getValidator returns the shared validator. Field errors use JSON names.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

var errorMessageTemplates = map[string]string{
	"required": "%s is required",
}

// validateStruct returns an input error listing every failed field
func validateStruct(s interface{}) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return apperrors.Wrap(apperrors.TypeInput, "invalid request", err)
	}

	messages := make([]string, 0, len(validationErrs))
	fields := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, fe.Field())
		if template, ok := errorMessageTemplates[fe.Tag()]; ok {
			messages = append(messages, fmt.Sprintf(template, fe.Field()))
		} else {
			messages = append(messages, fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
		}
	}

	return apperrors.New(apperrors.TypeInput, strings.Join(messages, "; ")).
		WithContext("fields", fields)
}

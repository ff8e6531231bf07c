package service

import (
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/timelog/internal/error_values"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		// Rejects empty and whitespace-only strings
		validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		// YYYY-MM-DD or a full RFC 3339 timestamp
		validate.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			_, err := ParseDay(fl.Field().String(), time.UTC)
			return err == nil
		})
		// Every element of a string slice fits into param characters
		validate.RegisterValidation("tagsize", func(fl validator.FieldLevel) bool {
			limit, err := strconv.Atoi(fl.Param())
			if err != nil {
				return false
			}
			tags, ok := fl.Field().Interface().([]string)
			if !ok {
				return false
			}
			for _, tag := range tags {
				if utf8.RuneCountInString(tag) > limit {
					return false
				}
			}
			return true
		})
	})
}

func validateStruct(s any) error {
	InitValidator()
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.New("validation error: " + err.Error())
	}
	verr := &errorvalues.ValidationError{}
	for _, fe := range fieldErrs {
		verr.Fields = append(verr.Fields, errorvalues.FieldError{
			Field:   jsonName(fe.Field()),
			Message: fieldMessage(fe),
		})
	}
	return verr
}

func jsonName(field string) string {
	if field == "" {
		return field
	}
	r, size := utf8.DecodeRuneInString(field)
	return string(unicode.ToLower(r)) + field[size:]
}

func fieldMessage(fe validator.FieldError) string {
	name := jsonName(fe.Field())
	switch fe.Tag() {
	case "notblank", "required":
		return name + " is required"
	case "isodate":
		return name + " must be a valid ISO 8601 date"
	case "tagsize":
		return "each tag must be at most " + fe.Param() + " characters"
	case "min", "max":
		if name == "minutes" {
			return "minutes must be between 1 and 1440"
		}
		if fe.Tag() == "min" {
			return name + " must be at least " + fe.Param() + " characters"
		}
		return name + " must be at most " + fe.Param() + " characters"
	}
	return name + " is invalid"
}

package validator

import (
	"context"

	"github.com/go-playground/validator/v10"
)

// Validator validates structs against their `validate` tags
type Validator interface {
	// Struct validates a struct
	Struct(s any) error

	// StructCtx validates a struct with a context
	StructCtx(ctx context.Context, s any) error

	// GetValidator returns the underlying go-playground validator
	GetValidator() *validator.Validate
}

// ValidationErrors is returned when one or more fields fail validation
type ValidationErrors interface {
	error
	// Errors returns the failed fields
	Errors() []FieldError
	// HasErrors reports whether any field failed
	HasErrors() bool
}

// FieldError describes one failed field
type FieldError interface {
	// Field is the field name
	Field() string
	// Tag is the failed validation tag
	Tag() string
	// Value is the field value
	Value() any
	// Message is the message translated to the default language
	Message() string
	// Translate returns the message in lang, or Message if lang is unknown
	Translate(lang string) string
}

// ValidationOption configures a validator
type ValidationOption func(*validatorImpl)

// WithTagName sets the struct tag name, "validate" by default
func WithTagName(tagName string) ValidationOption {
	return func(v *validatorImpl) {
		v.validator.SetTagName(tagName)
	}
}

// WithTranslator enables message translations for langs ("en", "zh")
func WithTranslator(langs ...string) ValidationOption {
	return func(v *validatorImpl) {
		v.enabledLangs = langs
	}
}

// WithDefaultLang sets the language of Message
func WithDefaultLang(lang string) ValidationOption {
	return func(v *validatorImpl) {
		v.defaultLang = lang
	}
}

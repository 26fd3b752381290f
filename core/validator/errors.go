package validator

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

type validationErrorsImpl struct {
	fieldErrors []FieldError
	message     string
}

func (ve *validationErrorsImpl) Error() string {
	return ve.message
}

func (ve *validationErrorsImpl) Errors() []FieldError {
	return ve.fieldErrors
}

func (ve *validationErrorsImpl) HasErrors() bool {
	return len(ve.fieldErrors) > 0
}

type fieldErrorImpl struct {
	fieldError  validator.FieldError
	message     string
	translators map[string]ut.Translator
}

func (fe *fieldErrorImpl) Field() string {
	return fe.fieldError.Field()
}

func (fe *fieldErrorImpl) Tag() string {
	return fe.fieldError.Tag()
}

func (fe *fieldErrorImpl) Value() any {
	return fe.fieldError.Value()
}

func (fe *fieldErrorImpl) Message() string {
	return fe.message
}

func (fe *fieldErrorImpl) Translate(lang string) string {
	if trans, ok := fe.translators[lang]; ok {
		return fe.fieldError.Translate(trans)
	}
	return fe.message
}

// HasFieldError reports whether err is a ValidationErrors containing field
func HasFieldError(err error, field string) bool {
	return FieldErrorTag(err, field) != ""
}

// FieldErrorTag returns the failed tag of field, or "" if field did not fail
func FieldErrorTag(err error, field string) string {
	validationErr, ok := err.(ValidationErrors)
	if !ok {
		return ""
	}
	for _, fieldErr := range validationErr.Errors() {
		if fieldErr.Field() == field {
			return fieldErr.Tag()
		}
	}
	return ""
}

package validator

import (
	"context"
	"encoding/pem"
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
)

type validatorImpl struct {
	validator    *validator.Validate
	uni          *ut.UniversalTranslator
	translators  map[string]ut.Translator
	enabledLangs []string
	defaultLang  string
}

// Validate is the shared validator instance
var (
	Validate Validator
	once     sync.Once
)

func init() {
	once.Do(func() {
		Validate = New()
	})
}

// New creates a validator with English and Chinese translations and the
// custom tags registered by registerValidations.
func New(opts ...ValidationOption) Validator {
	v := &validatorImpl{
		validator:    validator.New(),
		translators:  make(map[string]ut.Translator),
		enabledLangs: []string{"en", "zh"},
		defaultLang:  "en",
	}

	enLocale := en.New()
	v.uni = ut.New(enLocale, enLocale, zh.New())

	for _, opt := range opts {
		opt(v)
	}

	v.initTranslators()
	v.registerValidations()

	return v
}

func (v *validatorImpl) initTranslators() {
	for _, lang := range v.enabledLangs {
		trans, found := v.uni.GetTranslator(lang)
		if !found {
			continue
		}
		switch lang {
		case "en":
			_ = en_translations.RegisterDefaultTranslations(v.validator, trans)
		case "zh":
			_ = zh_translations.RegisterDefaultTranslations(v.validator, trans)
		default:
			continue
		}
		v.translators[lang] = trans
	}
}

// registerValidations adds the custom tags:
//
//	pem  the string holds at least one PEM block
func (v *validatorImpl) registerValidations() {
	_ = v.validator.RegisterValidation("pem", func(fl validator.FieldLevel) bool {
		block, _ := pem.Decode([]byte(fl.Field().String()))
		return block != nil
	})

	for lang, trans := range v.translators {
		text := "{0} must contain a PEM encoded block"
		if lang == "zh" {
			text = "{0}必须包含PEM编码块"
		}
		_ = v.validator.RegisterTranslation("pem", trans,
			func(ut ut.Translator) error {
				return ut.Add("pem", text, true)
			},
			func(ut ut.Translator, fe validator.FieldError) string {
				msg, _ := ut.T("pem", fe.Field())
				return msg
			},
		)
	}
}

// Struct validates s
func (v *validatorImpl) Struct(s any) error {
	return v.StructCtx(context.Background(), s)
}

// StructCtx validates s with ctx
func (v *validatorImpl) StructCtx(ctx context.Context, s any) error {
	if s == nil {
		return errors.New("validation target cannot be nil")
	}

	if err := v.validator.StructCtx(ctx, s); err != nil {
		return v.translateError(err)
	}
	return nil
}

// GetValidator returns the underlying go-playground validator
func (v *validatorImpl) GetValidator() *validator.Validate {
	return v.validator
}

func (v *validatorImpl) translateError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	trans, ok := v.translators[v.defaultLang]
	if !ok {
		return err
	}

	fieldErrors := make([]FieldError, 0, len(validationErrors))
	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fieldError := &fieldErrorImpl{
			fieldError:  fe,
			message:     fe.Translate(trans),
			translators: v.translators,
		}
		fieldErrors = append(fieldErrors, fieldError)
		messages = append(messages, fieldError.message)
	}

	return &validationErrorsImpl{
		fieldErrors: fieldErrors,
		message:     strings.Join(messages, "; "),
	}
}

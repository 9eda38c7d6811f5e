package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/samber/lo"
)

var (
	// NIST 800-63B length bounds; bcrypt ignores bytes after 72.
	rePassword = regexp.MustCompile(`^.{8,72}$`)

	// E.164 digits without the leading '+'.
	rePhone = regexp.MustCompile(`^[1-9][0-9]{6,14}$`)
)

// ErrTranslatorNotFound indicates the requested translator is unavailable.
var ErrTranslatorNotFound = errors.New("translator not found")

// Validator validates a struct.
type Validator interface {
	Validate(data any) error
}

type V10Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// V10ValidationError maps a JSON field name to a human readable message.
type V10ValidationError map[string]string

func (vs V10ValidationError) Error() string {
	if len(vs) == 0 {
		return "validation error"
	}

	b, err := json.Marshal(vs)
	if err != nil {
		return fmt.Sprintf("validation error (failed to marshal: %v)", err)
	}
	return string(b)
}

func (vs V10ValidationError) Values() map[string]string {
	return vs
}

// NewV10Validator constructs a V10Validator with English messages and the
// password and phone rules.
func NewV10Validator() (*V10Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(fieldName)

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	enTrans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, ErrTranslatorNotFound
	}

	if err := enTranslations.RegisterDefaultTranslations(validate, enTrans); err != nil {
		return nil, err
	}

	if err := registerCustom(validate, enTrans); err != nil {
		return nil, err
	}

	return &V10Validator{validate: validate, translator: enTrans}, nil
}

func (v *V10Validator) Validate(data any) error {
	err := v.validate.Struct(data)
	if err == nil {
		return nil
	}

	var validateErrs validator.ValidationErrors
	if !errors.As(err, &validateErrs) {
		return err
	}

	errV10 := make(V10ValidationError, len(validateErrs))
	for _, fe := range validateErrs {
		errV10[fe.Field()] = fe.Translate(v.translator)
	}

	return errV10
}

// fieldName prefers the json tag so messages match the request body.
func fieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return lo.SnakeCase(fld.Name)
	}
	return name
}

func registerCustom(validate *validator.Validate, enTrans ut.Translator) error {
	rules := []struct {
		tag string
		re  *regexp.Regexp
		msg string
	}{
		{tag: "password", re: rePassword, msg: "{0} must be 8-72 characters"},
		{tag: "phone", re: rePhone, msg: "{0} must be an international phone number without '+'"},
	}

	for _, rule := range rules {
		re := rule.re
		err := validate.RegisterValidation(rule.tag, func(fl validator.FieldLevel) bool {
			s, ok := fl.Field().Interface().(string)
			return ok && re.MatchString(s)
		})
		if err != nil {
			return err
		}

		msg := rule.msg
		err = validate.RegisterTranslation(rule.tag, enTrans,
			func(trans ut.Translator) error { return trans.Add(rule.tag, msg, false) },
			translate,
		)
		if err != nil {
			return err
		}
	}

	return nil
}

func translate(trans ut.Translator, fe validator.FieldError) string {
	t, err := trans.T(fe.Tag(), fe.Field())
	if err != nil {
		slog.Warn("failed to translate validation error", "tag", fe.Tag(), "error", err)
		return fe.Error()
	}
	return t
}

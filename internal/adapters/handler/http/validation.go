package http

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._]+$`)
	phonePattern    = regexp.MustCompile(`^\+?1?\d{9,15}$`)
)

const passwordSpecials = "@$!%*?&"

// fieldErrors is the {"field": ["message"]} body of a 400 response.
type fieldErrors map[string][]string

func (fieldErrors) Error() string { return "invalid request payload" }

type requestValidator struct {
	validate *validator.Validate
}

func newRequestValidator() *requestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	must := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	must("username_chars", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	must("username_sequence", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return !strings.Contains(s, "..") && !strings.Contains(s, "__")
	})
	must("has_letter", func(fl validator.FieldLevel) bool {
		return strings.IndexFunc(fl.Field().String(), unicode.IsLetter) >= 0
	})
	must("has_digit", func(fl validator.FieldLevel) bool {
		return strings.IndexFunc(fl.Field().String(), unicode.IsDigit) >= 0
	})
	must("has_special", func(fl validator.FieldLevel) bool {
		return strings.ContainsAny(fl.Field().String(), passwordSpecials)
	})
	must("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	return &requestValidator{validate: v}
}

// Struct validates req and returns fieldErrors describing the first failed
// rule of each field.
func (rv *requestValidator) Struct(req any) error {
	err := rv.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := fieldErrors{}
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		out[field] = []string{fieldMessage(field, fe.Tag(), fe.Param())}
	}
	return out
}

var fieldMessages = map[string]string{
	"username.min":               "Username must be between 3 and 30 characters.",
	"username.max":               "Username must be between 3 and 30 characters.",
	"username.username_chars":    "Username can only contain letters, numbers, dots, and underscores.",
	"username.username_sequence": "Username cannot contain consecutive dots or underscores.",
	"email.email":                "Please provide a valid email address.",
	"password.min":               "Password must be at least 8 characters long.",
	"password.has_letter":        "Password must contain at least one letter.",
	"password.has_digit":         "Password must contain at least one digit.",
	"password.has_special":       "Password must contain at least one special character.",
	"phone.phone":                "Phone number must be entered in the format: '+999999999'. Up to 15 digits allowed.",
	"phone.min":                  "Phone number is too short.",
}

func fieldMessage(field, tag, param string) string {
	if msg, ok := fieldMessages[field+"."+tag]; ok {
		return msg
	}
	switch tag {
	case "required":
		return "This field is required."
	case "max":
		return "Ensure this field has no more than " + param + " characters."
	case "min":
		return "Ensure this field has at least " + param + " characters."
	case "uuid":
		return "Must be a valid UUID."
	case "gt":
		return "A valid integer is required."
	}
	return "Invalid value."
}

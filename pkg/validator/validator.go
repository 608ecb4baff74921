package validator

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var (
	validate  *validator.Validate
	sanitizer *bluemonday.Policy
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	// Accepts international and Brazilian formats: optional +country code,
	// separators and 8-15 digits.
	phoneRegex = regexp.MustCompile(`^\+?[0-9(][0-9\s().\-]{7,18}$`)
)

func Init() {
	validate = validator.New()

	sanitizer = bluemonday.UGCPolicy()

	registerCustomValidations(validate)

	if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerCustomValidations(engine)
	}
}

func registerCustomValidations(v *validator.Validate) {
	v.RegisterValidation("phone", validatePhone)
	v.RegisterValidation("no_html", validateNoHTML)
}

func Validate(s interface{}) error {
	return validate.Struct(s)
}

// SanitizeHTML cleans user-authored markup, keeping common formatting tags.
func SanitizeHTML(html string) string {
	return sanitizer.Sanitize(html)
}

// SanitizeString strips every tag from the input.
func SanitizeString(s string) string {
	return bluemonday.StrictPolicy().Sanitize(s)
}

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

func ValidatePhone(phone string) bool {
	trimmed := strings.TrimSpace(phone)
	if trimmed == "" {
		return false
	}
	digits := 0
	for _, r := range trimmed {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 8 && digits <= 15 && phoneRegex.MatchString(trimmed)
}

func validatePhone(fl validator.FieldLevel) bool {
	return ValidatePhone(fl.Field().String())
}

func validateNoHTML(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return !strings.Contains(value, "<") && !strings.Contains(value, ">")
}

func TrimSpaces(s string) string {
	return strings.TrimSpace(s)
}

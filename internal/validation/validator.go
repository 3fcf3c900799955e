// Package validation provides struct validation using go-playground/validator
// v10. A thread-safe singleton validator carries the catalog's custom rules
// (magnet URIs, SHA-256 hashes, IMDB ids) and translates failures into a
// per-field error list; every violated constraint is surfaced, not just the
// first.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

var (
	magnetPattern = regexp.MustCompile(`^magnet:\?xt=urn:[a-z0-9]+:[a-z0-9]{32,40}&dn=.+&tr=.+$`)
	imdbPattern   = regexp.MustCompile(`^tt\d{7,8}$`)
	sha256Pattern = regexp.MustCompile(`^[a-fA-F0-9]{64}$`)
)

// FieldError is a single violated constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error carries every violated constraint of one candidate record.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return "Validation failed. " + strings.Join(msgs, ", ")
}

func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Report JSON field names, not Go struct field names.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})

		mustRegister("magnet", magnetPattern)
		mustRegister("imdbid", imdbPattern)
		mustRegister("sha256hex", sha256Pattern)
	})
	return validate
}

func mustRegister(tag string, pattern *regexp.Regexp) {
	err := validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("register %q validator: %v", tag, err))
	}
}

// Struct validates v and returns nil or an *Error listing every violation.
func Struct(v any) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// InvalidValidationError: the candidate was not a struct at all.
		return &Error{Fields: []FieldError{{Field: "_", Message: err.Error()}}}
	}

	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "magnet":
		return "Invalid magnet link format"
	case "imdbid":
		return "Invalid IMDB ID format"
	case "sha256hex":
		return "Invalid SHA256 hash"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be %s or greater", fe.Field(), fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be %s characters or less", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be %s or less", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

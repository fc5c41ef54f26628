package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ghuser/orderdesk/pkg/httpx"
)

// maxBodyBytes caps request bodies; the largest payload is an order or
// invoice with its lines.
const maxBodyBytes = 1 << 20

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON name so messages match the payload.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate runs struct-level validation using go-playground/validator tags.
func Validate(s any) error {
	return validate.Struct(s)
}

// FormatValidationErrors maps each failing field path to a readable message.
// Nested fields keep their path, e.g. "lines[0].quantity". Errors that are
// not validation errors yield an empty map.
func FormatValidationErrors(err error) map[string]string {
	out := make(map[string]string)
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return out
	}
	for _, e := range ve {
		out[fieldPath(e)] = message(e)
	}
	return out
}

// fieldPath drops the root struct name from the error namespace.
func fieldPath(e validator.FieldError) string {
	if _, rest, ok := strings.Cut(e.Namespace(), "."); ok {
		return rest
	}
	return e.Field()
}

var messages = map[string]string{
	"required": "This field is required",
	"min":      "Minimum length is %s",
	"max":      "Maximum length is %s",
	"email":    "Must be a valid email address",
	"url":      "Must be a valid URL",
	"numeric":  "Must be a numeric value",
	"alpha":    "Must contain only letters",
	"alphanum": "Must contain only letters and numbers",
	"gt":       "Must be greater than %s",
	"gte":      "Must be greater than or equal to %s",
	"lte":      "Must be less than or equal to %s",
}

func message(e validator.FieldError) string {
	if e.Tag() == "min" && e.Kind() == reflect.Slice {
		return fmt.Sprintf("Must contain at least %s entries", e.Param())
	}
	format, ok := messages[e.Tag()]
	if !ok {
		return fmt.Sprintf("Validation failed on '%s'", e.Tag())
	}
	if strings.Contains(format, "%s") {
		return fmt.Sprintf(format, e.Param())
	}
	return format
}

// ValidateRequest decodes the JSON body into T and validates it. On failure
// it writes a 400 and returns false; handlers return immediately.
func ValidateRequest[T any](w http.ResponseWriter, r *http.Request) (*T, bool) {
	var req T
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpx.JSONError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return nil, false
		}
		httpx.JSONError(w, http.StatusBadRequest, "Invalid JSON")
		return nil, false
	}
	if err := Validate(&req); err != nil {
		httpx.JSON(w, http.StatusBadRequest, httpx.ErrorResponse{
			Error:  "Validation failed",
			Fields: FormatValidationErrors(err),
		})
		return nil, false
	}
	return &req, true
}

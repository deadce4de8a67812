// AngelaMos | 2026
// validation.go

package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

// Colors is the closed set accepted for presentation color categories.
var Colors = []string{"primary", "secondary", "accent"}

// NewValidator returns a validator that reports fields by their JSON names
// and understands the "color" tag.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	//nolint:errcheck // tag name is static and valid
	_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
		return IsColor(fl.Field().String())
	})

	return v
}

func IsColor(s string) bool {
	for _, c := range Colors {
		if s == c {
			return true
		}
	}
	return false
}

// FormatValidationError flattens err into a single log-friendly line.
func FormatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" is required")
		case "min":
			msgs = append(msgs, fmt.Sprintf(
				"%s must be at least %s characters", fe.Field(), fe.Param(),
			))
		case "email":
			msgs = append(msgs, fe.Field()+" must be a valid email address")
		case "oneof":
			msgs = append(msgs, fmt.Sprintf(
				"%s must be one of [%s]", fe.Field(), fe.Param(),
			))
		case "color":
			msgs = append(msgs, fmt.Sprintf(
				"%s must be one of [%s]", fe.Field(), strings.Join(Colors, " "),
			))
		default:
			msgs = append(msgs, fmt.Sprintf(
				"%s failed %s validation", fe.Field(), fe.Tag(),
			))
		}
	}
	return strings.Join(msgs, "; ")
}

// DecodeJSON reads a single JSON value from the request body into dst.
// Unknown fields are ignored; anything after the value is rejected.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: decode body: %w", ErrInvalidInput, err)
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: body must contain a single JSON value", ErrInvalidInput)
	}
	return nil
}

// DecodePartial decodes a partial-update body into dst. The body must be a
// JSON object; a field explicitly set to null is rejected unless its JSON
// name is listed in nullable.
func DecodePartial(
	w http.ResponseWriter,
	r *http.Request,
	dst any,
	nullable ...string,
) error {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: read body: %w", ErrInvalidInput, err)
	}
	return UnmarshalPartial(raw, dst, nullable...)
}

func UnmarshalPartial(raw []byte, dst any, nullable ...string) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return fmt.Errorf("%w: body must be a JSON object", ErrInvalidInput)
	}

	for name, value := range fields {
		if !bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			continue
		}
		if !contains(nullable, name) {
			return fmt.Errorf("%w: %s must not be null", ErrInvalidInput, name)
		}
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: decode body: %w", ErrInvalidInput, err)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// ParseID reads a positive integer path parameter. ok is false for anything
// that cannot identify a row.
func ParseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Package schemaval validates config values against user-supplied
// JSON Schema documents.
package schemaval

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"

	apperrors "replane.io/replane/internal/pkg/errors"
)

// Schema is a compiled, reusable schema document.
type Schema struct {
	inner *openapi3.Schema
}

// Compile parses raw as a JSON Schema document and checks it is
// well-formed. A null or empty document compiles to nil, meaning
// validation is disabled.
func Compile(raw json.RawMessage) (*Schema, error) {
	if IsEmpty(raw) {
		return nil, nil
	}

	var s openapi3.Schema
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeValidationFailed,
			"schema is not a valid JSON Schema document", http.StatusBadRequest)
	}
	if err := s.Validate(context.Background()); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeValidationFailed,
			"schema is not a valid JSON Schema document", http.StatusBadRequest)
	}
	return &Schema{inner: &s}, nil
}

// Validate checks a raw JSON value against the schema. The nil schema
// accepts everything.
func (s *Schema) Validate(value json.RawMessage) error {
	if s == nil || s.inner == nil {
		return nil
	}

	var v any
	if err := json.Unmarshal(value, &v); err != nil {
		return apperrors.Wrap(err, apperrors.CodeValidationFailed,
			"value is not valid JSON", http.StatusBadRequest)
	}

	if err := s.inner.VisitJSON(v, openapi3.MultiErrors()); err != nil {
		return apperrors.BadRequest(apperrors.CodeSchemaValidationFailed,
			"value does not conform to the config schema").
			WithParams(map[string]interface{}{"errors": describe(err)})
	}
	return nil
}

// Check is the one-shot form: compile schema, then validate value.
func Check(schema, value json.RawMessage) error {
	s, err := Compile(schema)
	if err != nil {
		return err
	}
	return s.Validate(value)
}

// IsEmpty reports whether raw carries no schema at all: absent, empty,
// or JSON null.
func IsEmpty(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// describe flattens kin-openapi validation errors into human-readable
// strings with JSON pointer paths.
func describe(err error) []string {
	var multi openapi3.MultiError
	errs := []error{err}
	if errors.As(err, &multi) {
		errs = multi
	}

	out := make([]string, 0, len(errs))
	for _, e := range errs {
		var schemaErr *openapi3.SchemaError
		if errors.As(e, &schemaErr) {
			ptr := "/"
			if p := schemaErr.JSONPointer(); len(p) > 0 {
				ptr = ""
				for _, seg := range p {
					ptr += "/" + seg
				}
			}
			out = append(out, fmt.Sprintf("%s: %s", ptr, schemaErr.Reason))
			continue
		}
		out = append(out, e.Error())
	}
	return out
}

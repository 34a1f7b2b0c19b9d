package schemaval

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "replane.io/replane/internal/pkg/errors"
)

func TestCheck_ObjectSchema(t *testing.T) {
	schema := json.RawMessage(`{
		"type": "object",
		"properties": {
			"timeoutMs": {"type": "integer", "minimum": 0},
			"retries":   {"type": "integer", "maximum": 10}
		},
		"required": ["timeoutMs"]
	}`)

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid", `{"timeoutMs": 500, "retries": 3}`, false},
		{"missing required", `{"retries": 3}`, true},
		{"wrong type", `{"timeoutMs": "soon"}`, true},
		{"above maximum", `{"timeoutMs": 1, "retries": 99}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(schema, json.RawMessage(tt.value))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsCode(err, apperrors.CodeSchemaValidationFailed))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheck_EnumAndScalar(t *testing.T) {
	schema := json.RawMessage(`{"type": "string", "enum": ["on", "off", "auto"]}`)

	assert.NoError(t, Check(schema, json.RawMessage(`"auto"`)))
	assert.Error(t, Check(schema, json.RawMessage(`"maybe"`)))
	assert.Error(t, Check(schema, json.RawMessage(`42`)))
}

func TestCheck_NullSchemaDisablesValidation(t *testing.T) {
	assert.NoError(t, Check(nil, json.RawMessage(`{"anything": true}`)))
	assert.NoError(t, Check(json.RawMessage(`null`), json.RawMessage(`"free-form"`)))
	assert.NoError(t, Check(json.RawMessage(`  null `), json.RawMessage(`[1,2,3]`)))
}

func TestCompile_RejectsMalformedSchema(t *testing.T) {
	_, err := Compile(json.RawMessage(`{"type": ["not", "a", "valid", "schema"`))
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidationFailed))
}

func TestCompile_ReusableSchema(t *testing.T) {
	s, err := Compile(json.RawMessage(`{"type": "number"}`))
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.NoError(t, s.Validate(json.RawMessage(`3.14`)))
	assert.Error(t, s.Validate(json.RawMessage(`"pi"`)))
}

func TestValidate_RejectsInvalidJSONValue(t *testing.T) {
	s, err := Compile(json.RawMessage(`{"type": "object"}`))
	require.NoError(t, err)

	err = s.Validate(json.RawMessage(`{not json`))
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidationFailed))
}

func TestValidate_ErrorCarriesPointerParams(t *testing.T) {
	schema := json.RawMessage(`{
		"type": "object",
		"properties": {"limits": {"type": "object", "properties": {"cpu": {"type": "integer"}}}}
	}`)

	err := Check(schema, json.RawMessage(`{"limits": {"cpu": "lots"}}`))
	require.Error(t, err)

	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.NotNil(t, appErr.Params)
	assert.NotEmpty(t, appErr.Params["errors"])
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(nil))
	assert.True(t, IsEmpty(json.RawMessage(``)))
	assert.True(t, IsEmpty(json.RawMessage(`null`)))
	assert.True(t, IsEmpty(json.RawMessage("\n null\t")))
	assert.False(t, IsEmpty(json.RawMessage(`{}`)))
	assert.False(t, IsEmpty(json.RawMessage(`false`)))
}

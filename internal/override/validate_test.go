package override

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_StructuralRules(t *testing.T) {
	tests := []struct {
		name      string
		overrides []Override
		wantErr   string
	}{
		{
			name: "valid comparison",
			overrides: []Override{{
				Name:  "beta",
				Value: raw(`true`),
				Conditions: []Condition{
					{Operator: OpEquals, Property: "cohort", Value: Literal(raw(`"beta"`))},
				},
			}},
		},
		{
			name:      "missing name",
			overrides: []Override{{Value: raw(`true`)}},
			wantErr:   "name is required",
		},
		{
			name: "duplicate name",
			overrides: []Override{
				{Name: "a", Value: raw(`1`)},
				{Name: "a", Value: raw(`2`)},
			},
			wantErr: "duplicate name",
		},
		{
			name:      "missing value",
			overrides: []Override{{Name: "a"}},
			wantErr:   "value is required",
		},
		{
			name:      "malformed value",
			overrides: []Override{{Name: "a", Value: raw(`{broken`)}},
			wantErr:   "not valid JSON",
		},
		{
			name: "unknown operator",
			overrides: []Override{{
				Name:  "a",
				Value: raw(`1`),
				Conditions: []Condition{
					{Operator: "regex", Property: "v", Value: Literal(raw(`"x"`))},
				},
			}},
			wantErr: "unknown operator",
		},
		{
			name: "comparison without property",
			overrides: []Override{{
				Name:       "a",
				Value:      raw(`1`),
				Conditions: []Condition{{Operator: OpEquals, Value: Literal(raw(`"x"`))}},
			}},
			wantErr: "requires a property",
		},
		{
			name: "comparison without operand",
			overrides: []Override{{
				Name:       "a",
				Value:      raw(`1`),
				Conditions: []Condition{{Operator: OpEquals, Property: "v"}},
			}},
			wantErr: "requires a value",
		},
		{
			name: "composite must not carry a property",
			overrides: []Override{{
				Name:       "a",
				Value:      raw(`1`),
				Conditions: []Condition{{Operator: OpAnd, Property: "v"}},
			}},
			wantErr: "must not carry property or value",
		},
		{
			name: "in requires an array literal",
			overrides: []Override{{
				Name:       "a",
				Value:      raw(`1`),
				Conditions: []Condition{{Operator: OpIn, Property: "v", Value: Literal(raw(`"x"`))}},
			}},
			wantErr: "requires an array operand",
		},
		{
			name: "segmentation requires a property",
			overrides: []Override{{
				Name:       "a",
				Value:      raw(`1`),
				Conditions: []Condition{{Operator: OpSegmentation, FromPercentage: 0, ToPercentage: 50}},
			}},
			wantErr: "requires a property",
		},
		{
			name: "segmentation range out of bounds",
			overrides: []Override{{
				Name:       "a",
				Value:      raw(`1`),
				Conditions: []Condition{{Operator: OpSegmentation, Property: "id", FromPercentage: 20, ToPercentage: 110}},
			}},
			wantErr: "not within [0, 100]",
		},
		{
			name: "segmentation inverted range",
			overrides: []Override{{
				Name:       "a",
				Value:      raw(`1`),
				Conditions: []Condition{{Operator: OpSegmentation, Property: "id", FromPercentage: 60, ToPercentage: 40}},
			}},
			wantErr: "not within [0, 100]",
		},
		{
			name: "reference to another project",
			overrides: []Override{{
				Name:  "a",
				Value: raw(`1`),
				Conditions: []Condition{
					{Operator: OpEquals, Property: "v", Value: ReferenceTo("other-project", "limits")},
				},
			}},
			wantErr: "in project other-project",
		},
		{
			name: "reference without config name",
			overrides: []Override{{
				Name:  "a",
				Value: raw(`1`),
				Conditions: []Condition{
					{Operator: OpEquals, Property: "v", Value: &Operand{Type: OperandReference, ProjectID: "proj-1"}},
				},
			}},
			wantErr: "requires configName",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.overrides, "proj-1")
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidate_DepthCap(t *testing.T) {
	leaf := Condition{Operator: OpEquals, Property: "v", Value: Literal(raw(`1`))}
	nest := func(depth int) Condition {
		c := leaf
		for i := 0; i < depth; i++ {
			c = Condition{Operator: OpAnd, Conditions: []Condition{c}}
		}
		return c
	}

	ok := []Override{{Name: "deep", Value: raw(`1`), Conditions: []Condition{nest(MaxDepth - 1)}}}
	assert.NoError(t, Validate(ok, "proj-1"))

	tooDeep := []Override{{Name: "deep", Value: raw(`1`), Conditions: []Condition{nest(MaxDepth)}}}
	err := Validate(tooDeep, "proj-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max depth")
}

func TestValidateReferences_WalksNestedConditions(t *testing.T) {
	overrides := []Override{{
		Name:  "a",
		Value: raw(`1`),
		Conditions: []Condition{{
			Operator: OpOr,
			Conditions: []Condition{
				{Operator: OpEquals, Property: "v", Value: ReferenceTo("proj-1", "limits")},
				{Operator: OpEquals, Property: "w", Value: ReferenceTo("proj-2", "limits")},
			},
		}},
	}}

	assert.Error(t, Validate(overrides, "proj-1"))
	err := ValidateReferences(overrides, "proj-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "proj-2")

	assert.NoError(t, ValidateReferences(overrides[:0], "proj-1"))
}

func TestResolveReferences(t *testing.T) {
	res := ResolverFunc(func(configName string, path []PathSegment) (json.RawMessage, bool) {
		if configName == "limits" {
			return raw(`42`), true
		}
		return nil, false
	})

	overrides := []Override{{
		Name:  "a",
		Value: raw(`"on"`),
		Conditions: []Condition{{
			Operator: OpAnd,
			Conditions: []Condition{
				{Operator: OpEquals, Property: "quota", Value: ReferenceTo("proj-1", "limits")},
				{Operator: OpEquals, Property: "quota", Value: ReferenceTo("proj-1", "gone")},
				{Operator: OpEquals, Property: "plan", Value: Literal(raw(`"pro"`))},
			},
		}},
	}}

	resolved := ResolveReferences(overrides, res)

	inner := resolved[0].Conditions[0].Conditions
	require.Len(t, inner, 3)
	assert.Equal(t, OperandLiteral, inner[0].Value.Type)
	assert.Equal(t, `42`, string(inner[0].Value.Value))
	// Dangling references collapse to null so evaluation stays total.
	assert.Equal(t, OperandLiteral, inner[1].Value.Type)
	assert.Equal(t, `null`, string(inner[1].Value.Value))
	assert.Equal(t, `"pro"`, string(inner[2].Value.Value))

	// The input is left untouched.
	assert.Equal(t, OperandReference, overrides[0].Conditions[0].Conditions[0].Value.Type)

	// A nil resolver resolves nothing.
	noRes := ResolveReferences(overrides, nil)
	assert.Equal(t, `null`, string(noRes[0].Conditions[0].Conditions[0].Value.Value))
}

func TestValueAtPath(t *testing.T) {
	doc := raw(`{"limits": {"daily": 100, "tiers": [10, 20, 30]}, "name": "acme"}`)

	got, ok := ValueAtPath(doc, nil)
	require.True(t, ok)
	assert.JSONEq(t, string(doc), string(got))

	got, ok = ValueAtPath(doc, []PathSegment{K("limits"), K("daily")})
	require.True(t, ok)
	assert.Equal(t, `100`, string(got))

	got, ok = ValueAtPath(doc, []PathSegment{K("limits"), K("tiers"), I(1)})
	require.True(t, ok)
	assert.Equal(t, `20`, string(got))

	_, ok = ValueAtPath(doc, []PathSegment{K("missing")})
	assert.False(t, ok)

	_, ok = ValueAtPath(doc, []PathSegment{K("limits"), K("tiers"), I(9)})
	assert.False(t, ok)

	// Index into an object and key into an array both fail.
	_, ok = ValueAtPath(doc, []PathSegment{I(0)})
	assert.False(t, ok)
	_, ok = ValueAtPath(doc, []PathSegment{K("limits"), K("tiers"), K("first")})
	assert.False(t, ok)

	// Scalar nodes terminate the walk.
	_, ok = ValueAtPath(doc, []PathSegment{K("name"), K("more")})
	assert.False(t, ok)

	_, ok = ValueAtPath(raw(`{broken`), []PathSegment{K("x")})
	assert.False(t, ok)

	_, ok = ValueAtPath(nil, nil)
	assert.False(t, ok)
}

func TestPathSegment_JSONRoundTrip(t *testing.T) {
	in := []PathSegment{K("limits"), I(2), K("daily")}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, `["limits",2,"daily"]`, string(data))

	var out []PathSegment
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)

	var bad PathSegment
	assert.Error(t, json.Unmarshal([]byte(`-1`), &bad))
	assert.Error(t, json.Unmarshal([]byte(`{"k":1}`), &bad))
}

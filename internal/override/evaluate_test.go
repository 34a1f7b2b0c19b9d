package override

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func raw(s string) json.RawMessage { return json.RawMessage(s) }

func TestApply_FirstMatchWins(t *testing.T) {
	overrides := []Override{
		{
			Name:  "beta",
			Value: raw(`"beta-value"`),
			Conditions: []Condition{
				{Operator: OpEquals, Property: "cohort", Value: Literal(raw(`"beta"`))},
			},
		},
		{
			Name:  "everyone in eu",
			Value: raw(`"eu-value"`),
			Conditions: []Condition{
				{Operator: OpEquals, Property: "region", Value: Literal(raw(`"eu"`))},
			},
		},
	}

	// Both match; declaration order decides.
	val, ok := Apply(overrides, Attributes{"cohort": "beta", "region": "eu"}, nil)
	require.True(t, ok)
	assert.JSONEq(t, `"beta-value"`, string(val))

	// Only the second matches.
	val, ok = Apply(overrides, Attributes{"region": "eu"}, nil)
	require.True(t, ok)
	assert.JSONEq(t, `"eu-value"`, string(val))

	// Nothing matches: the caller falls back to the base value.
	_, ok = Apply(overrides, Attributes{"region": "us"}, nil)
	assert.False(t, ok)
}

func TestApply_EmptyConditionsMatchEveryone(t *testing.T) {
	overrides := []Override{
		{Name: "kill switch", Value: raw(`false`)},
	}

	val, ok := Apply(overrides, Attributes{}, nil)
	require.True(t, ok)
	assert.Equal(t, `false`, string(val))

	val, ok = Apply(overrides, nil, nil)
	require.True(t, ok)
	assert.Equal(t, `false`, string(val))
}

func TestEval_Equals(t *testing.T) {
	tests := []struct {
		name  string
		attrs Attributes
		value json.RawMessage
		want  bool
	}{
		{"string match", Attributes{"plan": "pro"}, raw(`"pro"`), true},
		{"string mismatch", Attributes{"plan": "free"}, raw(`"pro"`), false},
		{"missing attribute", Attributes{}, raw(`"pro"`), false},
		{"int vs float compare numerically", Attributes{"n": 1}, raw(`1.0`), true},
		{"float vs int compare numerically", Attributes{"n": float64(2)}, raw(`2`), true},
		{"number vs string never match", Attributes{"n": float64(1)}, raw(`"1"`), false},
		{"bool match", Attributes{"on": true}, raw(`true`), true},
		{"null match", Attributes{"x": nil}, raw(`null`), true},
		{"array deep equal", Attributes{"tags": []any{"a", "b"}}, raw(`["a","b"]`), true},
		{"array order matters", Attributes{"tags": []any{"b", "a"}}, raw(`["a","b"]`), false},
		{"object deep equal", Attributes{"o": map[string]any{"k": "v"}}, raw(`{"k":"v"}`), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Condition{Operator: OpEquals, Property: firstKey(tt.attrs, "plan"), Value: Literal(tt.value)}
			assert.Equal(t, tt.want, Eval(c, tt.attrs, nil))
		})
	}
}

// firstKey returns the single attribute key, or fallback for the empty bag.
func firstKey(attrs Attributes, fallback string) string {
	for k := range attrs {
		return k
	}
	return fallback
}

func TestEval_InAndNotIn(t *testing.T) {
	in := Condition{Operator: OpIn, Property: "country", Value: Literal(raw(`["de","fr","nl"]`))}
	assert.True(t, Eval(in, Attributes{"country": "fr"}, nil))
	assert.False(t, Eval(in, Attributes{"country": "us"}, nil))
	assert.False(t, Eval(in, Attributes{}, nil))

	notIn := Condition{Operator: OpNotIn, Property: "country", Value: Literal(raw(`["de","fr"]`))}
	assert.True(t, Eval(notIn, Attributes{"country": "us"}, nil))
	assert.False(t, Eval(notIn, Attributes{"country": "de"}, nil))
	// Missing attribute is a non-match even for the negated form.
	assert.False(t, Eval(notIn, Attributes{}, nil))

	// Numeric membership compares numerically.
	nums := Condition{Operator: OpIn, Property: "tier", Value: Literal(raw(`[1, 2, 3]`))}
	assert.True(t, Eval(nums, Attributes{"tier": 2.0}, nil))

	// A non-array operand never matches either way.
	scalar := Condition{Operator: OpIn, Property: "country", Value: Literal(raw(`"de"`))}
	assert.False(t, Eval(scalar, Attributes{"country": "de"}, nil))
	scalarNot := Condition{Operator: OpNotIn, Property: "country", Value: Literal(raw(`"de"`))}
	assert.False(t, Eval(scalarNot, Attributes{"country": "us"}, nil))
}

func TestEval_OrderedComparisons(t *testing.T) {
	tests := []struct {
		name string
		op   Operator
		got  any
		want string
		res  bool
	}{
		{"lt numbers", OpLessThan, 3.0, `5`, true},
		{"lt equal is false", OpLessThan, 5.0, `5`, false},
		{"lte equal", OpLessThanOrEqual, 5.0, `5`, true},
		{"gt numbers", OpGreaterThan, 7.0, `5`, true},
		{"gte equal", OpGreaterThanOrEqual, 5.0, `5`, true},
		{"strings order lexicographically", OpLessThan, "apple", `"banana"`, true},
		{"string gt", OpGreaterThan, "pear", `"banana"`, true},
		{"mixed types do not order", OpLessThan, "3", `5`, false},
		{"mixed types do not order reversed", OpGreaterThan, 3.0, `"5"`, false},
		{"bool does not order", OpLessThan, true, `5`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Condition{Operator: tt.op, Property: "v", Value: Literal(raw(tt.want))}
			assert.Equal(t, tt.res, Eval(c, Attributes{"v": tt.got}, nil))
		})
	}
}

func TestEval_CompositeOperators(t *testing.T) {
	euPro := Condition{
		Operator: OpAnd,
		Conditions: []Condition{
			{Operator: OpEquals, Property: "region", Value: Literal(raw(`"eu"`))},
			{Operator: OpEquals, Property: "plan", Value: Literal(raw(`"pro"`))},
		},
	}
	assert.True(t, Eval(euPro, Attributes{"region": "eu", "plan": "pro"}, nil))
	assert.False(t, Eval(euPro, Attributes{"region": "eu", "plan": "free"}, nil))

	anyOf := Condition{
		Operator: OpOr,
		Conditions: []Condition{
			{Operator: OpEquals, Property: "plan", Value: Literal(raw(`"pro"`))},
			{Operator: OpEquals, Property: "plan", Value: Literal(raw(`"enterprise"`))},
		},
	}
	assert.True(t, Eval(anyOf, Attributes{"plan": "enterprise"}, nil))
	assert.False(t, Eval(anyOf, Attributes{"plan": "free"}, nil))

	not := Condition{
		Operator: OpNot,
		Conditions: []Condition{
			{Operator: OpEquals, Property: "plan", Value: Literal(raw(`"free"`))},
		},
	}
	assert.False(t, Eval(not, Attributes{"plan": "free"}, nil))
	// Not over a missing attribute matches: the inner condition is a non-match.
	assert.True(t, Eval(not, Attributes{}, nil))

	// Empty composites: and/not match, or does not.
	assert.True(t, Eval(Condition{Operator: OpAnd}, Attributes{}, nil))
	assert.False(t, Eval(Condition{Operator: OpOr}, Attributes{}, nil))
	assert.True(t, Eval(Condition{Operator: OpNot}, Attributes{}, nil))
}

func TestEval_Segmentation(t *testing.T) {
	full := Condition{
		Operator:       OpSegmentation,
		Property:       "userId",
		FromPercentage: 0,
		ToPercentage:   100,
		Seed:           "rollout-1",
	}
	assert.True(t, Eval(full, Attributes{"userId": "user-42"}, nil))

	empty := full
	empty.FromPercentage, empty.ToPercentage = 0, 0
	assert.False(t, Eval(empty, Attributes{"userId": "user-42"}, nil))

	// Missing attribute never falls into any bucket.
	assert.False(t, Eval(full, Attributes{}, nil))

	// The split at a boundary is exhaustive and disjoint.
	b := Bucket("rollout-1", "user-42")
	low := full
	low.ToPercentage = b
	high := full
	high.FromPercentage = b
	assert.False(t, Eval(low, Attributes{"userId": "user-42"}, nil), "half-open range excludes the upper bound")
	assert.True(t, Eval(high, Attributes{"userId": "user-42"}, nil), "half-open range includes the lower bound")
}

func TestEval_UnknownOperator(t *testing.T) {
	c := Condition{Operator: "matches_regex", Property: "v", Value: Literal(raw(`"x"`))}
	assert.False(t, Eval(c, Attributes{"v": "x"}, nil))
}

func TestEval_ReferenceOperand(t *testing.T) {
	res := ResolverFunc(func(configName string, path []PathSegment) (json.RawMessage, bool) {
		if configName == "rollout-settings" && len(path) == 1 && path[0].Key == "allowedPlan" {
			return raw(`"pro"`), true
		}
		return nil, false
	})

	c := Condition{
		Operator: OpEquals,
		Property: "plan",
		Value:    ReferenceTo("proj-1", "rollout-settings", K("allowedPlan")),
	}
	assert.True(t, Eval(c, Attributes{"plan": "pro"}, res))
	assert.False(t, Eval(c, Attributes{"plan": "free"}, res))

	// Unresolvable reference and missing resolver are non-matches, not errors.
	dangling := Condition{
		Operator: OpEquals,
		Property: "plan",
		Value:    ReferenceTo("proj-1", "deleted-config"),
	}
	assert.False(t, Eval(dangling, Attributes{"plan": "pro"}, res))
	assert.False(t, Eval(c, Attributes{"plan": "pro"}, nil))
}

func TestBucket_DeterministicAndBounded(t *testing.T) {
	seen := make(map[float64]bool)
	for _, id := range []string{"a", "b", "user-1", "user-2", "user-3", "x@y.z"} {
		b := Bucket("seed", id)
		assert.GreaterOrEqual(t, b, 0.0)
		assert.Less(t, b, 100.0)
		assert.Equal(t, b, Bucket("seed", id), "bucketing must be stable")
		seen[b] = true
	}
	assert.Greater(t, len(seen), 1, "distinct values should spread across buckets")

	// Distinct seeds reshuffle the population.
	assert.NotEqual(t, Bucket("seed-a", "user-1"), Bucket("seed-b", "user-1"))

	// Non-string attribute values bucket by their canonical rendering.
	assert.Equal(t, Bucket("s", float64(7)), Bucket("s", "7"))
	assert.Equal(t, Bucket("s", true), Bucket("s", "true"))
	assert.Equal(t, Bucket("s", nil), Bucket("s", "null"))
}

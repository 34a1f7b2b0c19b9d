package override

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
)

// Attributes is the request-attribute bag supplied by an SDK call. Values
// follow encoding/json conventions: string, float64, bool, nil, []any,
// map[string]any.
type Attributes map[string]any

// Resolver resolves a reference operand to the referenced config's value at
// the requested path. ok is false when the config or path does not exist;
// evaluation treats that as a non-match, never an error.
type Resolver interface {
	Resolve(configName string, path []PathSegment) (json.RawMessage, bool)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(configName string, path []PathSegment) (json.RawMessage, bool)

// Resolve implements Resolver.
func (f ResolverFunc) Resolve(configName string, path []PathSegment) (json.RawMessage, bool) {
	return f(configName, path)
}

// Apply walks overrides in declared order and returns the value of the
// first override whose condition conjunction matches. ok is false when no
// override matches and the variant's base value should be used.
func Apply(overrides []Override, attrs Attributes, res Resolver) (value json.RawMessage, ok bool) {
	for _, o := range overrides {
		if MatchAll(o.Conditions, attrs, res) {
			return o.Value, true
		}
	}
	return nil, false
}

// MatchAll evaluates conditions as a conjunction. An empty list matches.
func MatchAll(conds []Condition, attrs Attributes, res Resolver) bool {
	for _, c := range conds {
		if !Eval(c, attrs, res) {
			return false
		}
	}
	return true
}

// Eval evaluates a single condition node. Evaluation is total: unknown
// properties, unresolvable references and type mismatches count as
// non-matches.
func Eval(c Condition, attrs Attributes, res Resolver) bool {
	switch c.Operator {
	case OpAnd:
		for _, child := range c.Conditions {
			if !Eval(child, attrs, res) {
				return false
			}
		}
		return true
	case OpOr:
		for _, child := range c.Conditions {
			if Eval(child, attrs, res) {
				return true
			}
		}
		return false
	case OpNot:
		for _, child := range c.Conditions {
			if Eval(child, attrs, res) {
				return false
			}
		}
		return true
	case OpSegmentation:
		got, present := attrs[c.Property]
		if !present {
			return false
		}
		b := Bucket(c.Seed, got)
		return b >= c.FromPercentage && b < c.ToPercentage
	default:
		return evalComparison(c, attrs, res)
	}
}

func evalComparison(c Condition, attrs Attributes, res Resolver) bool {
	got, present := attrs[c.Property]
	if !present || c.Value == nil {
		return false
	}
	want, ok := operandValue(c.Value, res)
	if !ok {
		return false
	}

	switch c.Operator {
	case OpEquals:
		return jsonEqual(got, want)
	case OpIn:
		return containedIn(got, want)
	case OpNotIn:
		items, ok := want.([]any)
		if !ok {
			return false
		}
		for _, item := range items {
			if jsonEqual(got, item) {
				return false
			}
		}
		return true
	case OpLessThan:
		cmp, ok := ordered(got, want)
		return ok && cmp < 0
	case OpLessThanOrEqual:
		cmp, ok := ordered(got, want)
		return ok && cmp <= 0
	case OpGreaterThan:
		cmp, ok := ordered(got, want)
		return ok && cmp > 0
	case OpGreaterThanOrEqual:
		cmp, ok := ordered(got, want)
		return ok && cmp >= 0
	default:
		return false
	}
}

// operandValue materializes the RHS: literal payloads decode directly,
// references resolve through the replica-provided resolver (one hop).
func operandValue(op *Operand, res Resolver) (any, bool) {
	switch op.Type {
	case OperandLiteral:
		return decodeJSON(op.Value)
	case OperandReference:
		if res == nil {
			return nil, false
		}
		raw, ok := res.Resolve(op.ConfigName, op.Path)
		if !ok {
			return nil, false
		}
		return decodeJSON(raw)
	default:
		return nil, false
	}
}

func decodeJSON(raw json.RawMessage) (any, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, false
	}
	return v, true
}

func containedIn(got, want any) bool {
	items, ok := want.([]any)
	if !ok {
		return false
	}
	for _, item := range items {
		if jsonEqual(got, item) {
			return true
		}
	}
	return false
}

// jsonEqual compares two decoded JSON values. Numbers compare numerically
// so that 1 and 1.0 match regardless of the SDK's encoder.
func jsonEqual(a, b any) bool {
	an, aIsNum := asFloat(a)
	bn, bIsNum := asFloat(b)
	if aIsNum || bIsNum {
		return aIsNum && bIsNum && an == bn
	}
	return reflect.DeepEqual(a, b)
}

// ordered compares numerically when both sides are numbers, else
// lexicographically when both sides are strings. Mixed types do not order.
func ordered(a, b any) (int, bool) {
	an, aIsNum := asFloat(a)
	bn, bIsNum := asFloat(b)
	if aIsNum && bIsNum {
		switch {
		case an < bn:
			return -1, true
		case an > bn:
			return 1, true
		default:
			return 0, true
		}
	}
	as, aIsStr := a.(string)
	bs, bIsStr := b.(string)
	if aIsStr && bIsStr {
		switch {
		case as < bs:
			return -1, true
		case as > bs:
			return 1, true
		default:
			return 0, true
		}
	}
	return 0, false
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// Bucket hashes (seed ∥ propertyValue) into [0,100) with two-decimal
// resolution. The mapping is deterministic across processes and releases:
// SDKs that evaluate client-side must agree with the server.
func Bucket(seed string, value any) float64 {
	sum := sha256.Sum256([]byte(seed + segmentationKey(value)))
	n := binary.BigEndian.Uint64(sum[:8])
	return float64(n%10000) / 100
}

func segmentationKey(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%v", s)
	}
}

package override

import (
	"encoding/json"
	"fmt"
)

// Validate checks the structural shape of a set of overrides: known
// operators, leaf/composite field consistency, segmentation bounds and the
// depth cap. projectID is the id of the containing config's project; every
// reference operand must point inside it.
func Validate(overrides []Override, projectID string) error {
	seen := make(map[string]bool, len(overrides))
	for i, o := range overrides {
		if o.Name == "" {
			return fmt.Errorf("override %d: name is required", i)
		}
		if seen[o.Name] {
			return fmt.Errorf("override %q: duplicate name", o.Name)
		}
		seen[o.Name] = true
		if len(o.Value) == 0 {
			return fmt.Errorf("override %q: value is required", o.Name)
		}
		if !json.Valid(o.Value) {
			return fmt.Errorf("override %q: value is not valid JSON", o.Name)
		}
		for _, c := range o.Conditions {
			if err := validateCondition(c, o.Name, projectID, 1); err != nil {
				return err
			}
		}
	}
	return nil
}

// ValidateReferences checks only the same-project invariant for reference
// operands. It is re-run on every write that changes overrides.
func ValidateReferences(overrides []Override, projectID string) error {
	for _, o := range overrides {
		for _, c := range o.Conditions {
			if err := walkRefs(c, func(op *Operand) error {
				if op.ProjectID != projectID {
					return fmt.Errorf("override %q references config %q in project %s, want %s",
						o.Name, op.ConfigName, op.ProjectID, projectID)
				}
				return nil
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateCondition(c Condition, overrideName, projectID string, depth int) error {
	if depth > MaxDepth {
		return fmt.Errorf("override %q: condition tree exceeds max depth %d", overrideName, MaxDepth)
	}

	switch {
	case compositeOps[c.Operator]:
		if c.Property != "" || c.Value != nil {
			return fmt.Errorf("override %q: %s must not carry property or value", overrideName, c.Operator)
		}
		for _, child := range c.Conditions {
			if err := validateCondition(child, overrideName, projectID, depth+1); err != nil {
				return err
			}
		}
		return nil

	case c.Operator == OpSegmentation:
		if c.Property == "" {
			return fmt.Errorf("override %q: segmentation requires a property", overrideName)
		}
		if c.FromPercentage < 0 || c.ToPercentage > 100 || c.FromPercentage > c.ToPercentage {
			return fmt.Errorf("override %q: segmentation range [%v, %v) is not within [0, 100]",
				overrideName, c.FromPercentage, c.ToPercentage)
		}
		return nil

	case comparisonOps[c.Operator]:
		if c.Property == "" {
			return fmt.Errorf("override %q: %s requires a property", overrideName, c.Operator)
		}
		if c.Value == nil {
			return fmt.Errorf("override %q: %s requires a value", overrideName, c.Operator)
		}
		return validateOperand(c.Value, overrideName, c.Operator, projectID)

	default:
		return fmt.Errorf("override %q: unknown operator %q", overrideName, c.Operator)
	}
}

func validateOperand(op *Operand, overrideName string, operator Operator, projectID string) error {
	switch op.Type {
	case OperandLiteral:
		if len(op.Value) == 0 || !json.Valid(op.Value) {
			return fmt.Errorf("override %q: %s literal is not valid JSON", overrideName, operator)
		}
	case OperandReference:
		if op.ConfigName == "" {
			return fmt.Errorf("override %q: reference requires configName", overrideName)
		}
		if op.ProjectID != projectID {
			return fmt.Errorf("override %q references config %q in project %s, want %s",
				overrideName, op.ConfigName, op.ProjectID, projectID)
		}
	default:
		return fmt.Errorf("override %q: operand type must be literal or reference, got %q", overrideName, op.Type)
	}

	if (operator == OpIn || operator == OpNotIn) && op.Type == OperandLiteral {
		var arr []any
		if err := json.Unmarshal(op.Value, &arr); err != nil {
			return fmt.Errorf("override %q: %s requires an array operand", overrideName, operator)
		}
	}
	return nil
}

func walkRefs(c Condition, fn func(*Operand) error) error {
	if c.Value != nil && c.Value.Type == OperandReference {
		if err := fn(c.Value); err != nil {
			return err
		}
	}
	for _, child := range c.Conditions {
		if err := walkRefs(child, fn); err != nil {
			return err
		}
	}
	return nil
}

// ResolveReferences returns a deep copy of overrides with every reference
// operand replaced by the literal it resolves to (one hop). Unresolvable
// references become the JSON null literal so that downstream evaluation
// still treats the condition as a non-match.
func ResolveReferences(overrides []Override, res Resolver) []Override {
	out := make([]Override, len(overrides))
	for i, o := range overrides {
		out[i] = Override{Name: o.Name, Value: o.Value, Conditions: resolveConditions(o.Conditions, res)}
	}
	return out
}

func resolveConditions(conds []Condition, res Resolver) []Condition {
	if conds == nil {
		return nil
	}
	out := make([]Condition, len(conds))
	for i, c := range conds {
		rc := c
		if c.Value != nil && c.Value.Type == OperandReference {
			raw, ok := json.RawMessage(nil), false
			if res != nil {
				raw, ok = res.Resolve(c.Value.ConfigName, c.Value.Path)
			}
			if !ok {
				raw = json.RawMessage("null")
			}
			rc.Value = Literal(raw)
		}
		rc.Conditions = resolveConditions(c.Conditions, res)
		out[i] = rc
	}
	return out
}

// ValueAtPath walks a raw JSON document along path. ok is false when a
// segment is missing or addresses the wrong container kind.
func ValueAtPath(raw json.RawMessage, path []PathSegment) (json.RawMessage, bool) {
	if len(path) == 0 {
		return raw, len(raw) > 0
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, false
	}
	for _, seg := range path {
		switch node := v.(type) {
		case map[string]any:
			if seg.IsIndex {
				return nil, false
			}
			child, ok := node[seg.Key]
			if !ok {
				return nil, false
			}
			v = child
		case []any:
			if !seg.IsIndex || seg.Index >= len(node) {
				return nil, false
			}
			v = node[seg.Index]
		default:
			return nil, false
		}
	}
	out, err := json.Marshal(v)
	if err != nil {
		return nil, false
	}
	return out, true
}

// Package override defines the conditional-override model for config values:
// a named override carries a condition tree and a replacement value. The
// first override whose conditions match the caller's attribute bag wins.
package override

import (
	"encoding/json"
	"fmt"
)

// MaxDepth bounds the condition tree depth accepted at validation time.
// Evaluation cost is linear in node count; depth is capped to keep
// pathological payloads cheap to reject.
const MaxDepth = 32

// Operator enumerates the condition node types.
type Operator string

const (
	OpEquals             Operator = "equals"
	OpIn                 Operator = "in"
	OpNotIn              Operator = "not_in"
	OpLessThan           Operator = "less_than"
	OpLessThanOrEqual    Operator = "less_than_or_equal"
	OpGreaterThan        Operator = "greater_than"
	OpGreaterThanOrEqual Operator = "greater_than_or_equal"
	OpSegmentation       Operator = "segmentation"
	OpAnd                Operator = "and"
	OpOr                 Operator = "or"
	OpNot                Operator = "not"
)

// comparison operators that require a property and an operand.
var comparisonOps = map[Operator]bool{
	OpEquals:             true,
	OpIn:                 true,
	OpNotIn:              true,
	OpLessThan:           true,
	OpLessThanOrEqual:    true,
	OpGreaterThan:        true,
	OpGreaterThanOrEqual: true,
}

// compositeOps wrap child conditions.
var compositeOps = map[Operator]bool{
	OpAnd: true,
	OpOr:  true,
	OpNot: true,
}

// Override is a named conditional replacement of a variant value. The
// conditions form a conjunction; Value replaces the variant's base value
// when they all match.
type Override struct {
	Name       string          `json:"name"`
	Conditions []Condition     `json:"conditions"`
	Value      json.RawMessage `json:"value"`
}

// Condition is one node of the condition tree. Comparison operators use
// Property and Value; segmentation uses Property, FromPercentage,
// ToPercentage and Seed; and/or/not use Conditions.
type Condition struct {
	Operator Operator `json:"operator"`

	Property string   `json:"property,omitempty"`
	Value    *Operand `json:"value,omitempty"`

	FromPercentage float64 `json:"fromPercentage,omitempty"`
	ToPercentage   float64 `json:"toPercentage,omitempty"`
	Seed           string  `json:"seed,omitempty"`

	Conditions []Condition `json:"conditions,omitempty"`
}

// OperandType discriminates literal operands from config references.
type OperandType string

const (
	OperandLiteral   OperandType = "literal"
	OperandReference OperandType = "reference"
)

// Operand is the right-hand side of a comparison: either a literal JSON
// value or a reference to another config in the same project at a JSON path.
type Operand struct {
	Type OperandType `json:"type"`

	// Value holds the literal payload when Type == "literal".
	Value json.RawMessage `json:"value,omitempty"`

	// Reference fields, set when Type == "reference".
	ProjectID  string        `json:"projectId,omitempty"`
	ConfigName string        `json:"configName,omitempty"`
	Path       []PathSegment `json:"path,omitempty"`
}

// Literal builds a literal operand.
func Literal(raw json.RawMessage) *Operand {
	return &Operand{Type: OperandLiteral, Value: raw}
}

// ReferenceTo builds a reference operand.
func ReferenceTo(projectID, configName string, path ...PathSegment) *Operand {
	return &Operand{Type: OperandReference, ProjectID: projectID, ConfigName: configName, Path: path}
}

// PathSegment addresses one step into a JSON document: an object key or an
// array index. It serializes as a bare string or number.
type PathSegment struct {
	Key     string
	Index   int
	IsIndex bool
}

// K builds a key segment.
func K(key string) PathSegment { return PathSegment{Key: key} }

// I builds an index segment.
func I(idx int) PathSegment { return PathSegment{Index: idx, IsIndex: true} }

// MarshalJSON encodes the segment as a string or a number.
func (s PathSegment) MarshalJSON() ([]byte, error) {
	if s.IsIndex {
		return json.Marshal(s.Index)
	}
	return json.Marshal(s.Key)
}

// UnmarshalJSON accepts a string or a non-negative integer.
func (s *PathSegment) UnmarshalJSON(data []byte) error {
	var key string
	if err := json.Unmarshal(data, &key); err == nil {
		*s = PathSegment{Key: key}
		return nil
	}
	var idx int
	if err := json.Unmarshal(data, &idx); err == nil {
		if idx < 0 {
			return fmt.Errorf("path index must not be negative, got %d", idx)
		}
		*s = PathSegment{Index: idx, IsIndex: true}
		return nil
	}
	return fmt.Errorf("path segment must be a string or an integer, got %s", string(data))
}

// String renders the segment for error messages.
func (s PathSegment) String() string {
	if s.IsIndex {
		return fmt.Sprintf("[%d]", s.Index)
	}
	return s.Key
}

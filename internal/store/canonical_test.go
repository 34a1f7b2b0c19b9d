package store

import (
	"encoding/json"
	"testing"
)

func TestCanonicalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"sorts object keys", `{"b":1,"a":2}`, `{"a":2,"b":1}`},
		{"nested objects", `{"z":{"y":1,"x":2},"a":[{"m":1,"k":2}]}`, `{"a":[{"k":2,"m":1}],"z":{"x":2,"y":1}}`},
		{"strips whitespace", "{ \"a\" : [ 1 , 2 ] }", `{"a":[1,2]}`},
		{"preserves number text", `{"n":1.50,"m":1e3}`, `{"m":1e3,"n":1.50}`},
		{"scalar", `  "hello" `, `"hello"`},
		{"null", `null`, `null`},
		{"bool", `true`, `true`},
		{"unicode key order is bytewise", `{"é":1,"e":2}`, `{"e":2,"é":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CanonicalJSON(json.RawMessage(tt.in))
			if err != nil {
				t.Fatalf("CanonicalJSON(%q) error = %v", tt.in, err)
			}
			if string(got) != tt.want {
				t.Errorf("CanonicalJSON(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestCanonicalJSON_Rejects(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"truncated", `{"a":`},
		{"trailing garbage", `{} {}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CanonicalJSON(json.RawMessage(tt.in)); err == nil {
				t.Errorf("CanonicalJSON(%q) expected error, got nil", tt.in)
			}
		})
	}
}

func TestJSONEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"key order ignored", `{"a":1,"b":2}`, `{"b":2,"a":1}`, true},
		{"whitespace ignored", `[1, 2, 3]`, `[1,2,3]`, true},
		{"different values", `{"a":1}`, `{"a":2}`, false},
		{"number text significant", `1.50`, `1.5`, false},
		{"array order significant", `[1,2]`, `[2,1]`, false},
		{"invalid operand", `{`, `{}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JSONEqual(json.RawMessage(tt.a), json.RawMessage(tt.b)); got != tt.want {
				t.Errorf("JSONEqual(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

package store

import (
	"testing"
	"time"
)

func TestCursor_RoundTrip(t *testing.T) {
	at := time.Date(2025, 11, 3, 14, 30, 0, 123456000, time.UTC)
	id := NewID()

	token := EncodeCursor(at, id)
	got, err := DecodeCursor(token)
	if err != nil {
		t.Fatalf("DecodeCursor() error = %v", err)
	}

	if !got.CreatedAt.Equal(at) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, at)
	}
	if got.ID != id {
		t.Errorf("ID = %q, want %q", got.ID, id)
	}
}

func TestDecodeCursor_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not base64url", "!!!not-base64!!!"},
		{"no separator", "MTIzNDU2"},       // "123456"
		{"missing id", "MTIzNDU2Og"},       // "123456:"
		{"non-numeric time", "YWJjOmRlZg"}, // "abc:def"
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeCursor(tt.token); err != ErrBadCursor {
				t.Errorf("DecodeCursor(%q) error = %v, want ErrBadCursor", tt.token, err)
			}
		})
	}
}

func TestNewID_TimeOrdered(t *testing.T) {
	a := NewID()
	b := NewID()
	if a == b {
		t.Fatal("NewID() returned duplicate ids")
	}
	// UUIDv7 sorts by generation time.
	if !(a < b) {
		t.Errorf("ids not monotonic: %s then %s", a, b)
	}
}

package store

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrBadCursor is returned for cursors the server did not mint.
var ErrBadCursor = errors.New("malformed pagination cursor")

// Cursor is a keyset position over (created_at DESC, id DESC).
// Time-ordered UUIDv7 ids make the id an unambiguous tie-break.
type Cursor struct {
	CreatedAt time.Time
	ID        string
}

// EncodeCursor packs the position of the last returned row into an
// opaque page token.
func EncodeCursor(createdAt time.Time, id string) string {
	payload := fmt.Sprintf("%d:%s", createdAt.UnixMicro(), id)
	return base64.RawURLEncoding.EncodeToString([]byte(payload))
}

// DecodeCursor unpacks a page token minted by EncodeCursor.
func DecodeCursor(s string) (Cursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return Cursor{}, ErrBadCursor
	}
	micros, id, ok := strings.Cut(string(raw), ":")
	if !ok || id == "" {
		return Cursor{}, ErrBadCursor
	}
	n, err := strconv.ParseInt(micros, 10, 64)
	if err != nil {
		return Cursor{}, ErrBadCursor
	}
	return Cursor{CreatedAt: time.UnixMicro(n).UTC(), ID: id}, nil
}

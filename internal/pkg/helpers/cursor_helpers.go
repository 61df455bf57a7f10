package helpers

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const cursorPrefix = "arrayconnection:"

// OffsetToCursor encodes a zero-based list offset as an opaque connection cursor.
func OffsetToCursor(offset int) string {
	return base64.StdEncoding.EncodeToString([]byte(cursorPrefix + strconv.Itoa(offset)))
}

// CursorToOffset decodes a cursor produced by OffsetToCursor.
func CursorToOffset(cursor string) (int, error) {
	raw, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return 0, fmt.Errorf("invalid cursor %q: %w", cursor, err)
	}
	s := string(raw)
	if !strings.HasPrefix(s, cursorPrefix) {
		return 0, fmt.Errorf("invalid cursor %q", cursor)
	}
	offset, err := strconv.Atoi(strings.TrimPrefix(s, cursorPrefix))
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("invalid cursor %q", cursor)
	}
	return offset, nil
}

// ConnectionWindow turns relay-style first/after arguments into offset and limit.
// A missing or non-positive first falls back to MaxPageSize, larger values are capped.
func ConnectionWindow(first int, after string) (offset uint64, limit int, err error) {
	limit = first
	if limit <= 0 || limit > MaxPageSize {
		limit = MaxPageSize
	}
	if after == "" {
		return 0, limit, nil
	}
	n, err := CursorToOffset(after)
	if err != nil {
		return 0, 0, err
	}
	return uint64(n + 1), limit, nil
}

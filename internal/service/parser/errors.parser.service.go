package parser

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnavailable wraps every failure that is not an HTTP answer from the backend:
// the call could not be made, or a success answer could not be decoded.
var ErrUnavailable = errors.New("parsing backend unavailable")

// BackendError is a non-2xx answer from the backend.
type BackendError struct {
	StatusCode int
	// Detail is the backend's "detail" field, empty when absent or undecodable.
	Detail string
	// Unreadable is set when the body could not be read at all.
	Unreadable bool
}

func (e *BackendError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend answered %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("backend answered %d", e.StatusCode)
}

// detailString flattens a decoded "detail" value. Empty and falsy values yield "".
func detailString(detail any) string {
	switch v := detail.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if !v {
			return ""
		}
	case float64:
		if v == 0 {
			return ""
		}
	}
	raw, err := json.Marshal(detail)
	if err != nil {
		return ""
	}
	return string(raw)
}

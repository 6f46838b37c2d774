// Package common holds the shared value types exchanged between the
// application services and the interface layers.
package common

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ID is a string alias for UUID v4 identifiers.
type ID string

// GenerateID returns a fresh random ID. When prefix is non-empty it is
// prepended with a dash so related entities can be distinguished in logs.
func GenerateID(prefix string) ID {
	u := uuid.NewString()
	if prefix == "" {
		return ID(u)
	}
	return ID(prefix + "-" + u)
}

// IsValid reports whether the ID parses as a UUID, ignoring any prefix
// segment produced by GenerateID.
func (id ID) IsValid() bool {
	s := string(id)
	if len(s) > 36 {
		s = s[len(s)-36:]
	}
	_, err := uuid.Parse(s)
	return err == nil
}

func (id ID) String() string { return string(id) }

// Timestamp is a time.Time alias that serializes as RFC 3339.
type Timestamp time.Time

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).UTC().Format(time.RFC3339Nano))
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return err
	}
	*t = Timestamp(parsed)
	return nil
}

// Time returns the underlying time.Time.
func (t Timestamp) Time() time.Time { return time.Time(t) }

// Now returns the current instant as a Timestamp.
func Now() Timestamp { return Timestamp(time.Now()) }

// Pagination defines parameters for paginated requests and responses.
type Pagination struct {
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total,omitempty"`
}

// ErrorDetail provides structured error information for API responses.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIResponse is the generic wrapper for all API responses.
type APIResponse[T any] struct {
	Success    bool         `json:"success"`
	Data       T            `json:"data,omitempty"`
	Error      *ErrorDetail `json:"error,omitempty"`
	Pagination *Pagination  `json:"pagination,omitempty"`
	Timestamp  Timestamp    `json:"timestamp"`
}

package easyverein

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// RecordBase carries the fields shared by every easyVerein resource. The
// soft-delete markers use underscore-prefixed wire names and are populated
// by the server, never by the client.
type RecordBase struct {
	ID              int64      `json:"id,omitempty"               yaml:"id,omitempty"`
	Org             *Ref       `json:"org,omitempty"              yaml:"org,omitempty"`
	DeleteAfterDate *Timestamp `json:"_deleteAfterDate,omitempty" yaml:"deleteAfterDate,omitempty"`
	DeletedBy       *string    `json:"_deletedBy,omitempty"       yaml:"deletedBy,omitempty"`
}

// RecordID returns the server-assigned primary id, for handing a
// fetched record back to Update, Delete or Purge.
func (r RecordBase) RecordID() int64 {
	return r.ID
}

// ListResponse is the API's pagination envelope for list endpoints.
type ListResponse[T any] struct {
	Count   int     `json:"count"   yaml:"count"`
	Next    *string `json:"next"    yaml:"next,omitempty"`
	Results []T     `json:"results" yaml:"results"`
}

// Ref is a reference to another resource. Depending on the requested
// field projection the API returns either a numeric id or the URL of the
// referenced object.
type Ref struct {
	ID  int64
	URL string
}

// RefID constructs a numeric reference.
func RefID(id int64) *Ref {
	return &Ref{ID: id}
}

// IsURL reports whether the reference came back as a URL rather than an id.
func (r *Ref) IsURL() bool {
	return r != nil && r.URL != ""
}

// String implements fmt.Stringer.
func (r *Ref) String() string {
	if r == nil {
		return ""
	}

	if r.URL != "" {
		return r.URL
	}

	return strconv.FormatInt(r.ID, 10)
}

// MarshalJSON implements json.Marshaler.
func (r Ref) MarshalJSON() ([]byte, error) {
	if r.URL != "" {
		return json.Marshal(r.URL)
	}

	return json.Marshal(r.ID)
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Ref) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		return nil
	}

	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("parsing reference: %w", err)
		}

		r.URL = s

		return nil
	}

	id, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return fmt.Errorf("parsing reference id: %w", err)
	}

	r.ID = id

	return nil
}

// Date marshals as the API's plain date format (2006-01-02).
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

// NewDate builds a Date from year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current date.
func Today() Date {
	now := time.Now()

	return NewDate(now.Year(), now.Month(), now.Day())
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("parsing date: %w", err)
	}

	if s == "" {
		return nil
	}

	parsed, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("parsing date %q: %w", s, err)
	}

	d.Time = parsed

	return nil
}

// String implements fmt.Stringer.
func (d Date) String() string {
	return d.Format(dateLayout)
}

// Timestamp marshals as the API's second-resolution timestamp format
// (2006-01-02T15:04:05, no zone suffix).
type Timestamp struct {
	time.Time
}

const timestampLayout = "2006-01-02T15:04:05"

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(timestampLayout))
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("parsing timestamp: %w", err)
	}

	if s == "" {
		return nil
	}

	// Some endpoints include fractional seconds or a zone offset.
	for _, layout := range []string{timestampLayout, time.RFC3339, "2006-01-02T15:04:05.999999"} {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed

			return nil
		}
	}

	return fmt.Errorf("parsing timestamp %q: unrecognized format", s)
}

// String implements fmt.Stringer.
func (t Timestamp) String() string {
	return t.Format(timestampLayout)
}

// IntList is a filter value holding multiple ids; it serializes to a
// comma-joined string as expected by __in style predicates.
type IntList []int64

// String implements fmt.Stringer.
func (l IntList) String() string {
	parts := make([]string, 0, len(l))
	for _, v := range l {
		parts = append(parts, strconv.FormatInt(v, 10))
	}

	return strings.Join(parts, ",")
}

// StrList is the string counterpart of IntList.
type StrList []string

// String implements fmt.Stringer.
func (l StrList) String() string {
	return strings.Join(l, ",")
}

// Ptr returns a pointer to v. Convenience for building partial payloads.
func Ptr[T any](v T) *T {
	return &v
}

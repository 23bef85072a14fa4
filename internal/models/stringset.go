package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringSet is a list of unique strings stored as a JSON text column so the
// same schema works on both the Postgres and SQLite backends.
type StringSet []string

// Value implements driver.Valuer
func (s StringSet) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal([]string(s))
	if err != nil {
		return nil, fmt.Errorf("failed to encode string set: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner. NULL and empty values scan as the empty set.
func (s *StringSet) Scan(value interface{}) error {
	if value == nil {
		*s = StringSet{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringSet", value)
	}

	if len(raw) == 0 {
		*s = StringSet{}
		return nil
	}

	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("failed to decode string set: %w", err)
	}
	*s = StringSet(out)
	return nil
}

// Contains reports whether v is in the set
func (s StringSet) Contains(v string) bool {
	for _, item := range s {
		if item == v {
			return true
		}
	}
	return false
}

// Add appends v if it is not already present
func (s StringSet) Add(v string) StringSet {
	if s.Contains(v) {
		return s
	}
	return append(s, v)
}

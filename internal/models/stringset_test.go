package models

import (
	"testing"
)

func TestStringSet_ScanValue(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected int
		wantErr  bool
	}{
		{name: "nil scans to empty set", input: nil, expected: 0},
		{name: "empty bytes scan to empty set", input: []byte(""), expected: 0},
		{name: "json array bytes", input: []byte(`["linkedin","instagram_personal"]`), expected: 2},
		{name: "json array string", input: `["linkedin"]`, expected: 1},
		{name: "empty json array", input: "[]", expected: 0},
		{name: "malformed json", input: `["linkedin"`, wantErr: true},
		{name: "unsupported type", input: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s StringSet
			err := s.Scan(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Error("expected scan error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Scan() error: %v", err)
			}
			if len(s) != tt.expected {
				t.Errorf("Scan() produced %d items, want %d", len(s), tt.expected)
			}
		})
	}
}

func TestStringSet_Value(t *testing.T) {
	// Empty and nil sets store as an empty JSON array, never NULL
	for _, s := range []StringSet{nil, {}} {
		v, err := s.Value()
		if err != nil {
			t.Fatalf("Value() error: %v", err)
		}
		if v != "[]" {
			t.Errorf("Value() = %v, want []", v)
		}
	}

	s := StringSet{"linkedin"}
	v, err := s.Value()
	if err != nil {
		t.Fatalf("Value() error: %v", err)
	}
	if v != `["linkedin"]` {
		t.Errorf("Value() = %v", v)
	}
}

func TestStringSet_Add(t *testing.T) {
	s := StringSet{"linkedin"}
	s = s.Add("linkedin")
	if len(s) != 1 {
		t.Errorf("Add() should not duplicate, got %v", s)
	}
	s = s.Add("instagram_personal")
	if len(s) != 2 || !s.Contains("instagram_personal") {
		t.Errorf("Add() should append new value, got %v", s)
	}
}

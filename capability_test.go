package vapi

import (
	"reflect"
	"testing"
)

func TestNewCapabilitySet(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "single name",
			input: []string{"x"},
			want:  []string{"x"},
		},
		{
			name:  "multiple names sorted",
			input: []string{"b", "a"},
			want:  []string{"a", "b"},
		},
		{
			name:  "duplicates collapse",
			input: []string{"a", "a"},
			want:  []string{"a"},
		},
		{
			name:  "empty names skipped",
			input: []string{"", "a", ""},
			want:  []string{"a"},
		},
		{
			name:  "no names",
			input: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewCapabilitySet(tt.input...).Names()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Names() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCapabilitySetIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     CapabilitySet
		expected bool
	}{
		{"common element", NewCapabilitySet("a", "b"), NewCapabilitySet("b", "c"), true},
		{"disjoint", NewCapabilitySet("a"), NewCapabilitySet("b"), false},
		{"nil left", nil, NewCapabilitySet("a"), false},
		{"nil right", NewCapabilitySet("a"), nil, false},
		{"both nil", nil, nil, false},
		{"larger right side", NewCapabilitySet("x"), NewCapabilitySet("a", "b", "c", "x"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.expected {
				t.Errorf("Intersects = %v, want %v", got, tt.expected)
			}
			// Intersection is symmetric.
			if got := tt.b.Intersects(tt.a); got != tt.expected {
				t.Errorf("reverse Intersects = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCapabilitySetHasAndLen(t *testing.T) {
	set := NewCapabilitySet("a", "b")

	if !set.Has("a") || !set.Has("b") {
		t.Error("expected set to contain a and b")
	}
	if set.Has("c") {
		t.Error("did not expect set to contain c")
	}
	if set.Len() != 2 {
		t.Errorf("Len() = %d, want 2", set.Len())
	}
}

func TestCapabilitySetEqual(t *testing.T) {
	if !NewCapabilitySet("a", "b").Equal(NewCapabilitySet("b", "a")) {
		t.Error("order should not matter")
	}
	if NewCapabilitySet("a").Equal(NewCapabilitySet("a", "b")) {
		t.Error("different sizes should not be equal")
	}
	var nilSet CapabilitySet
	if !nilSet.Equal(NewCapabilitySet()) {
		t.Error("nil and empty compare equal")
	}
}

package models

import "testing"

func TestIsValidID(t *testing.T) {
	cases := []struct {
		name string
		id   string
		want bool
	}{
		{"lowercase hex", "507f1f77bcf86cd799439011", true},
		{"uppercase hex", "507F1F77BCF86CD799439011", true},
		{"mixed case", "507f1F77bcF86cd799439011", true},
		{"empty", "", false},
		{"too short", "507f1f77bcf86cd79943901", false},
		{"too long", "507f1f77bcf86cd7994390111", false},
		{"non-hex char", "507f1f77bcf86cd79943901g", false},
		{"whitespace", "507f1f77bcf86cd79943901 ", false},
		{"obviously malformed", "abc", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValidID(tc.id); got != tc.want {
				t.Fatalf("IsValidID(%q) = %v, want %v", tc.id, got, tc.want)
			}
		})
	}
}

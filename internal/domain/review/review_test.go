package review

import (
	"strings"
	"testing"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  string
		valid bool
	}{
		{"min boundary", "abcde", "abcde", true},
		{"max boundary", strings.Repeat("a", 140), strings.Repeat("a", 140), true},
		{"too short", "abcd", "", false},
		{"too long", strings.Repeat("a", 141), "", false},
		{"trimmed before counting", "   abcd   ", "", false},
		{"trimmed", "  Great food!  ", "Great food!", true},
		{"runes", "Gött!", "Gött!", true},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeText(tt.in)
			if tt.valid {
				if err != nil || got != tt.want {
					t.Fatalf("got %q, %v; want %q", got, err, tt.want)
				}
				return
			}
			if err != ErrInvalidText {
				t.Fatalf("expected ErrInvalidText, got %v", err)
			}
		})
	}
}

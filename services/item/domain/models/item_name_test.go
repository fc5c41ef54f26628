package models

import (
	"strings"
	"testing"
)

func TestNewItemName(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "single character", in: "a", want: "a"},
		{name: "255 characters", in: strings.Repeat("x", 255), want: strings.Repeat("x", 255)},
		{name: "surrounding spaces trimmed", in: "  Widget ", want: "Widget"},
		{name: "255 multibyte runes", in: strings.Repeat("é", 255), want: strings.Repeat("é", 255)},
		{name: "empty", in: "", wantErr: true},
		{name: "only spaces", in: "   ", wantErr: true},
		{name: "256 characters", in: strings.Repeat("x", 256), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := NewItemName(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n.String() != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, n.String())
			}
		})
	}
}

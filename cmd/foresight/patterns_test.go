package main

import (
	"testing"

	"github.com/vovakirdan/foresight/internal/engine"
)

func TestDrawPattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern engine.Pattern
		want    string
	}{
		{"single", engine.Pattern{{DX: 0, DY: 0}}, "  @"},
		{"domino", engine.Pattern{{DX: 0, DY: 0}, {DX: 1, DY: 0}}, "  @#"},
		{"l-shape", engine.Pattern{{DX: 0, DY: 0}, {DX: 1, DY: 0}, {DX: 0, DY: 1}}, "  #.\n  @#"},
		{"below anchor", engine.Pattern{{DX: 0, DY: 0}, {DX: -1, DY: -1}}, "  .@\n  #."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := drawPattern(tt.pattern); got != tt.want {
				t.Errorf("drawPattern() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("3f2a9c1e-1111-2222-3333-444455556666"); got != "3f2a9c1e" {
		t.Errorf("shortID() = %q", got)
	}
	if got := shortID("abc"); got != "abc" {
		t.Errorf("shortID() = %q", got)
	}
}

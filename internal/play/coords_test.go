package play

import (
	"testing"

	"github.com/vovakirdan/foresight/internal/engine"
)

func TestParseCoords(t *testing.T) {
	tests := []struct {
		in      string
		want    []engine.Coord
		wantErr bool
	}{
		{"", nil, false},
		{"1,2", []engine.Coord{engine.C(1, 2)}, false},
		{" 0,0 ; 3, 4 ;", []engine.Coord{engine.C(0, 0), engine.C(3, 4)}, false},
		{"1", nil, true},
		{"a,2", nil, true},
		{"1,b", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCoords(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCoords(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseCoords(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("coord %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseSwaps(t *testing.T) {
	swaps, err := ParseSwaps("0,0:1,0; 2,2:2,3")
	if err != nil {
		t.Fatalf("ParseSwaps() failed: %v", err)
	}
	want := []Swap{
		{A: engine.C(0, 0), B: engine.C(1, 0)},
		{A: engine.C(2, 2), B: engine.C(2, 3)},
	}
	if len(swaps) != len(want) || swaps[0] != want[0] || swaps[1] != want[1] {
		t.Errorf("ParseSwaps() = %v, want %v", swaps, want)
	}
	if FormatSwaps(swaps) != "0,0:1,0;2,2:2,3" {
		t.Errorf("FormatSwaps() = %q", FormatSwaps(swaps))
	}

	for _, bad := range []string{"0,0", "0,0:x,1", "0:1"} {
		if _, err := ParseSwaps(bad); err == nil {
			t.Errorf("ParseSwaps(%q) should fail", bad)
		}
	}
}

func TestFormatCoordsRoundTrip(t *testing.T) {
	coords := []engine.Coord{engine.C(0, 1), engine.C(10, 2)}
	got, err := ParseCoords(FormatCoords(coords))
	if err != nil {
		t.Fatalf("ParseCoords() failed: %v", err)
	}
	if len(got) != 2 || got[0] != coords[0] || got[1] != coords[1] {
		t.Errorf("round trip = %v", got)
	}
}

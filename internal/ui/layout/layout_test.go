package layout

import (
	"strings"
	"testing"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{MinWidth, MinHeight, false},
		{MinWidth - 1, MinHeight, true},
		{MinWidth, MinHeight - 1, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestHeartsClamped(t *testing.T) {
	tests := []struct {
		health, max  int
		full, hollow int
	}{
		{3, 3, 3, 0},
		{1, 3, 1, 2},
		{-2, 3, 0, 3},
		{9, 3, 3, 0},
	}
	for _, tt := range tests {
		got := Hearts(tt.health, tt.max)
		if n := strings.Count(got, "♥"); n != tt.full {
			t.Errorf("Hearts(%d, %d) has %d full hearts, want %d", tt.health, tt.max, n, tt.full)
		}
		if n := strings.Count(got, "♡"); n != tt.hollow {
			t.Errorf("Hearts(%d, %d) has %d empty hearts, want %d", tt.health, tt.max, n, tt.hollow)
		}
	}
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Tower 2", Status{Score: 40, Health: 2, MaxHealth: 3}, 80)
	for _, want := range []string{"Math Tower", "Tower 2", "40", "♥♥"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q", want)
		}
	}

	plain := RenderHeader("Stats", Status{Score: 5}, 80)
	if strings.Contains(plain, "♥") {
		t.Error("header without MaxHealth should not show hearts")
	}
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Enter", Description: "Select"}, {Key: "Esc", Description: "Back"}}, 80)
	for _, want := range []string{"Enter", "Select", "Esc", "Back"} {
		if !strings.Contains(f, want) {
			t.Errorf("footer missing %q", want)
		}
	}
}

package barchart

import (
	"math"
	"reflect"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLinearScaleInverted(t *testing.T) {
	y := NewLinearScale(10, 100, 0)

	if got := y.Map(0); got != 100 {
		t.Errorf("Map(0) = %v, want 100", got)
	}
	if got := y.Map(10); got != 0 {
		t.Errorf("Map(10) = %v, want 0", got)
	}
	if got := y.Map(5); got != 50 {
		t.Errorf("Map(5) = %v, want 50", got)
	}
}

func TestLinearScaleDegenerateDomain(t *testing.T) {
	y := NewLinearScale(0, 100, 0)

	for _, v := range []float64{0, 1, 50} {
		if got := y.Map(v); got != 100 {
			t.Errorf("Map(%v) = %v, want 100", v, got)
		}
	}

	ticks, step := y.Ticks(10)
	if !reflect.DeepEqual(ticks, []float64{0}) || step != 0 {
		t.Errorf("Ticks on [0,0] = %v step %v, want [0] step 0", ticks, step)
	}
}

func TestLinearScaleTicks(t *testing.T) {
	tests := []struct {
		name     string
		max      float64
		wantLen  int
		wantLast float64
		wantStep float64
	}{
		{"mock data max", 56, 12, 55, 5},
		{"ten", 10, 11, 10, 1},
		{"hundred", 100, 11, 100, 10},
		{"one", 1, 11, 1, 0.1},
		{"fifteen", 15, 8, 14, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticks, step := NewLinearScale(tt.max, 100, 0).Ticks(DefaultTickCount)
			if len(ticks) != tt.wantLen {
				t.Fatalf("len(ticks) = %d (%v), want %d", len(ticks), ticks, tt.wantLen)
			}
			if ticks[0] != 0 {
				t.Errorf("first tick = %v, want 0", ticks[0])
			}
			if !almostEqual(ticks[len(ticks)-1], tt.wantLast) {
				t.Errorf("last tick = %v, want %v", ticks[len(ticks)-1], tt.wantLast)
			}
			if !almostEqual(step, tt.wantStep) {
				t.Errorf("step = %v, want %v", step, tt.wantStep)
			}
		})
	}
}

func TestTickFormat(t *testing.T) {
	tests := []struct {
		v, step float64
		want    string
	}{
		{55, 5, "55"},
		{0, 1, "0"},
		{0.5, 0.1, "0.5"},
		{0.25, 0.05, "0.25"},
	}
	for _, tt := range tests {
		if got := TickFormat(tt.v, tt.step); got != tt.want {
			t.Errorf("TickFormat(%v, %v) = %q, want %q", tt.v, tt.step, got, tt.want)
		}
	}
}

func TestBandScale(t *testing.T) {
	x := NewBandScale([]string{"a", "b", "c", "d"}, 100, 0.1)

	step := 100 / 4.1
	if !almostEqual(x.Step(), step) {
		t.Fatalf("Step() = %v, want %v", x.Step(), step)
	}
	if !almostEqual(x.Bandwidth(), step*0.9) {
		t.Errorf("Bandwidth() = %v, want %v", x.Bandwidth(), step*0.9)
	}

	start := (100 - step*3.9) / 2
	for i, name := range []string{"a", "b", "c", "d"} {
		pos, ok := x.Position(name)
		if !ok {
			t.Fatalf("Position(%q) not found", name)
		}
		if !almostEqual(pos, start+step*float64(i)) {
			t.Errorf("Position(%q) = %v, want %v", name, pos, start+step*float64(i))
		}
	}

	// the outer padding is the same on both sides
	last, _ := x.Position("d")
	if right := 100 - (last + x.Bandwidth()); !almostEqual(right, start) {
		t.Errorf("right gap = %v, left gap = %v", right, start)
	}

	if _, ok := x.Position("missing"); ok {
		t.Errorf("Position(missing) should not be found")
	}
}

func TestBandScaleDuplicateLastWins(t *testing.T) {
	x := NewBandScale([]string{"a", "b", "a"}, 300, 0.1)

	if got := x.Domain(); !reflect.DeepEqual(got, []string{"b", "a"}) {
		t.Fatalf("Domain() = %v, want [b a]", got)
	}
	if !almostEqual(x.Step(), 300/2.1) {
		t.Errorf("Step() = %v, want two bands %v", x.Step(), 300/2.1)
	}

	start := (300 - x.Step()*1.9) / 2
	b, _ := x.Position("b")
	a, _ := x.Position("a")
	if !almostEqual(b, start) {
		t.Errorf("Position(b) = %v, want the first band %v", b, start)
	}
	if !almostEqual(a, start+x.Step()) {
		t.Errorf("Position(a) = %v, want the second band %v", a, start+x.Step())
	}
}

func TestBandScaleZeroWidth(t *testing.T) {
	x := NewBandScale([]string{"a", "b"}, 0, 0.1)
	if x.Bandwidth() != 0 || x.Step() != 0 {
		t.Errorf("zero width scale: step %v bandwidth %v", x.Step(), x.Bandwidth())
	}
}

func TestNum(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{2, "2"},
		{-6, "-6"},
		{2.5, "2.5"},
		{1.0 / 3, "0.333"},
		{-0.0001, "0"},
		{math.NaN(), "0"},
	}
	for _, tt := range tests {
		if got := num(tt.v); got != tt.want {
			t.Errorf("num(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

package barchart

import (
	"math"
)

// BandScale maps an ordered set of categories onto evenly spaced bands
// across [0, width]. Inner and outer padding are the same fraction of
// the step and the bands are centred in the range.
type BandScale struct {
	index     map[string]int
	domain    []string
	start     float64
	step      float64
	bandwidth float64
}

// NewBandScale builds the scale over domain. When a name repeats, only its
// last occurrence takes a band, so the bars of earlier duplicates overdraw it.
func NewBandScale(domain []string, width float64, padding float64) *BandScale {
	if width < 0 {
		width = 0
	}
	if padding < 0 || padding >= 1 {
		padding = float64(DefaultPadding)
	}
	last := make(map[string]int, len(domain))
	for i, name := range domain {
		last[name] = i
	}
	s := &BandScale{index: make(map[string]int, len(last))}
	for i, name := range domain {
		if last[name] != i {
			continue
		}
		s.index[name] = len(s.domain)
		s.domain = append(s.domain, name)
	}
	n := float64(len(s.domain))
	s.step = width / math.Max(1, n-padding+2*padding)
	s.start = (width - s.step*(n-padding)) * 0.5
	s.bandwidth = s.step * (1 - padding)
	return s
}

// Position returns the left edge of the band for name.
func (s *BandScale) Position(name string) (float64, bool) {
	i, ok := s.index[name]
	if !ok {
		return 0, false
	}
	return s.start + s.step*float64(i), true
}

// Domain lists the categories that own a band, in band order.
func (s *BandScale) Domain() []string { return s.domain }

// Step is the distance between the left edges of two adjacent bands.
func (s *BandScale) Step() float64 { return s.step }

// Bandwidth is the drawn width of one band.
func (s *BandScale) Bandwidth() float64 { return s.bandwidth }

// LinearScale maps [0, max] onto [rangeStart, rangeEnd]. With the range
// inverted (plotHeight, 0) larger values land higher on screen.
type LinearScale struct {
	max        float64
	rangeStart float64
	rangeEnd   float64
}

func NewLinearScale(maxDomain, rangeStart, rangeEnd float64) *LinearScale {
	return &LinearScale{max: maxDomain, rangeStart: rangeStart, rangeEnd: rangeEnd}
}

// Map converts a domain value into a pixel coordinate. A degenerate
// domain sends every value to rangeStart.
func (s *LinearScale) Map(v float64) float64 {
	if s.max <= 0 || math.IsNaN(s.max) || math.IsInf(s.max, 0) {
		return s.rangeStart
	}
	return s.rangeStart + (v/s.max)*(s.rangeEnd-s.rangeStart)
}

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// Ticks returns roughly count round values (1, 2 or 5 times a power of ten)
// inside the domain, and the spacing between them.
func (s *LinearScale) Ticks(count int) ([]float64, float64) {
	if s.max <= 0 || count <= 0 || math.IsNaN(s.max) || math.IsInf(s.max, 0) {
		return []float64{0}, 0
	}
	start, stop := 0.0, s.max

	raw := (stop - start) / float64(count)
	power := math.Floor(math.Log10(raw))
	e := raw / math.Pow(10, power)
	factor := 1.0
	switch {
	case e >= e10:
		factor = 10
	case e >= e5:
		factor = 5
	case e >= e2:
		factor = 2
	}

	var ticks []float64
	if power < 0 {
		inc := math.Pow(10, -power) / factor
		i1 := math.Round(start * inc)
		i2 := math.Round(stop * inc)
		if i1/inc < start {
			i1++
		}
		if i2/inc > stop {
			i2--
		}
		for i := i1; i <= i2; i++ {
			ticks = append(ticks, i/inc)
		}
		return ticks, 1 / inc
	}

	inc := math.Pow(10, power) * factor
	i1 := math.Round(start / inc)
	i2 := math.Round(stop / inc)
	if i1*inc < start {
		i1++
	}
	if i2*inc > stop {
		i2--
	}
	for i := i1; i <= i2; i++ {
		ticks = append(ticks, i*inc)
	}
	return ticks, inc
}

// TickFormat prints v with as many decimals as step needs.
func TickFormat(v, step float64) string {
	decimals := 0
	if step > 0 {
		decimals = max(0, int(-math.Floor(math.Log10(step)+1e-9)))
	}
	return formatFixed(v, decimals)
}

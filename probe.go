package barchart

import (
	"strconv"
	"strings"
)

// ContainerProbe reports the size of the page around the chart.
// A missing element reports width 0.
type ContainerProbe interface {
	ContainerWidth(selector string) int
	ViewportHeight() int
}

// FixedProbe reports constant sizes. The zero value finds no container.
type FixedProbe struct {
	Width    int
	Viewport int
}

func (p FixedProbe) ContainerWidth(string) int { return p.Width }

func (p FixedProbe) ViewportHeight() int { return p.Viewport }

// MeasureContainer returns the width of the hosting element and half the
// viewport height. Both are 0 when there is nothing to measure.
func (r *Renderer) MeasureContainer() (width, height int) {
	width = max(0, r.probe.ContainerWidth(string(r.selector)))
	height = max(0, r.probe.ViewportHeight()/2)
	return width, height
}

// ParsePixels reads the leading number of a computed css length such as
// "600px" or "612.5px" and drops the fraction. Anything unparsable is 0.
func ParsePixels(value string) int {
	value = strings.TrimSpace(value)
	end, dot := 0, false
	for end < len(value) {
		c := value[end]
		if c == '.' && !dot {
			dot = true
			end++
			continue
		}
		if (c >= '0' && c <= '9') || (end == 0 && (c == '-' || c == '+')) {
			end++
			continue
		}
		break
	}
	f, err := strconv.ParseFloat(value[:end], 64)
	if err != nil || f < 0 {
		return 0
	}
	return int(f)
}

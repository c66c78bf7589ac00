package barchart

import (
	"github.com/tinywasm/barchart/errs"
)

// BarChart builds the svg tree of a single series bar chart.
type BarChart struct {
	width   int
	height  int
	margins Margins
	padding float64
	labels  Labels
	data    []DataPoint
}

// NewBarChart returns a builder with the default margins, padding and labels.
func NewBarChart() *BarChart {
	return &BarChart{
		margins: DefaultMargins,
		padding: float64(DefaultPadding),
		labels:  Labels{X: DefaultXLabel, Y: DefaultYLabel},
	}
}

// Size sets the total svg size in pixels, margins included.
func (c *BarChart) Size(width, height int) *BarChart {
	c.width = width
	c.height = height
	return c
}

func (c *BarChart) Margins(m Margins) *BarChart {
	c.margins = m
	return c
}

func (c *BarChart) Padding(p float64) *BarChart {
	c.padding = p
	return c
}

func (c *BarChart) Labels(l Labels) *BarChart {
	c.labels = l
	return c
}

// Data sets the bars, drawn left to right in slice order.
func (c *BarChart) Data(data []DataPoint) *BarChart {
	c.data = data
	return c
}

// AddBar appends one bar.
func (c *BarChart) AddBar(name string, count int) *BarChart {
	c.data = append(c.data, DataPoint{Name: name, Count: count})
	return c
}

func (c *BarChart) Geometry() Geometry {
	return ComputeGeometry(c.width, c.height, c.margins)
}

// Scales returns the category and count scales for the current data and size.
func (c *BarChart) Scales() (*BandScale, *LinearScale) {
	g := c.Geometry()
	names := make([]string, len(c.data))
	maxCount := 0
	for i, d := range c.data {
		names[i] = d.Name
		if d.Count > maxCount {
			maxCount = d.Count
		}
	}
	x := NewBandScale(names, float64(g.PlotWidth), c.padding)
	y := NewLinearScale(float64(maxCount), float64(g.PlotHeight), 0)
	return x, y
}

// Draw returns the svg tree, or an error saying why there is nothing to
// draw. It never panics on empty data or a zero sized canvas.
func (c *BarChart) Draw() (*Node, error) {
	g := c.Geometry()
	if g.Degenerate() {
		return nil, errs.New(errs.ErrDegenerateGeometry, g.TotalWidth, "x", g.TotalHeight)
	}
	if len(c.data) == 0 {
		return nil, errs.ErrEmptyData
	}

	x, y := c.Scales()
	plotH := float64(g.PlotHeight)

	svg := El("svg").
		Set("xmlns", svgNS).
		Set("width", num(float64(g.TotalWidth))).
		Set("height", num(float64(g.TotalHeight))).
		Set("viewBox", "0 0 "+num(float64(g.TotalWidth))+" "+num(float64(g.TotalHeight)))

	group := El("g").Set("transform", translate(float64(g.Margins.Left), float64(g.Margins.Top)))
	svg.Append(group)

	group.Append(bottomAxis(x, g), leftAxis(y, g))

	for _, d := range c.data {
		bx, _ := x.Position(d.Name)
		by := y.Map(float64(d.Count))
		group.Append(El("rect").
			Set("class", "bar").
			Set("fill", barColor).
			Set("x", num(bx)).
			Set("y", num(by)).
			Set("width", num(x.Bandwidth())).
			Set("height", num(max(0, plotH-by))))
	}

	group.Append(axisLabels(c.labels, g)...)
	return svg, nil
}

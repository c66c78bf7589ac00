package barchart

// DefaultSelector is the element that hosts the chart svg.
const DefaultSelector Selector = "#barchart"

// DefaultPadding is the inner and outer band padding, as a fraction of the band step.
const DefaultPadding Padding = 0.1

// DefaultTickCount is the approximate number of ticks on the count axis.
const DefaultTickCount = 10

// Axis label defaults.
const (
	DefaultXLabel = "Bin ID"
	DefaultYLabel = "Count in Bin"
)

const svgNS = "http://www.w3.org/2000/svg"

// Fill colours.
const (
	barColor  = "#4682b4"
	axisColor = "#000000"
)

// DataPoint is one bar: Name on the category axis, Count on the value axis.
type DataPoint struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Margins reserved around the plot area for axes and labels, in pixels.
type Margins struct {
	Top, Right, Bottom, Left int
}

// DefaultMargins leaves room for tick labels on the left and the axis title below.
var DefaultMargins = Margins{Top: 10, Right: 10, Bottom: 40, Left: 60}

// Selector is a CSS selector for the hosting element. eg: "#barchart"
type Selector string

// Padding is the band padding in the range [0, 1).
type Padding float64

// Labels are the axis titles.
type Labels struct {
	X, Y string
}

// LoggerFunc replaces the environment logger.
// eg: barchart.New(barchart.LoggerFunc(func(a ...any) {}))
type LoggerFunc func(message ...any)

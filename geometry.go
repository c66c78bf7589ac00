package barchart

// Geometry is the pixel layout of one render. It is derived, never stored.
type Geometry struct {
	TotalWidth  int
	TotalHeight int
	Margins     Margins
	PlotWidth   int
	PlotHeight  int
}

// ComputeGeometry subtracts the margins from the canvas size.
// Negative sizes are clamped to zero.
func ComputeGeometry(width, height int, m Margins) Geometry {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Geometry{
		TotalWidth:  width,
		TotalHeight: height,
		Margins:     m,
		PlotWidth:   max(0, width-m.Left-m.Right),
		PlotHeight:  max(0, height-m.Top-m.Bottom),
	}
}

// Degenerate reports whether there is no plot area left to draw into.
func (g Geometry) Degenerate() bool {
	return g.PlotWidth <= 0 || g.PlotHeight <= 0
}

package barchart

const (
	tickSize    = 6.0
	tickPadding = 3.0
)

// axisGroup is the common wrapper of both axes.
func axisGroup(class, anchor string) *Node {
	return El("g").
		Set("class", "axis "+class).
		Set("fill", "none").
		Set("font-size", "10").
		Set("font-family", "sans-serif").
		Set("text-anchor", anchor)
}

// bottomAxis draws the category axis: a domain line across the plot and
// one tick per category at the centre of its band.
func bottomAxis(x *BandScale, g Geometry) *Node {
	w := float64(g.PlotWidth)
	axis := axisGroup("axis-x", "middle").
		Set("transform", translate(0, float64(g.PlotHeight)))

	axis.Append(El("path").
		Set("class", "domain").
		Set("stroke", axisColor).
		Set("d", "M0.5,"+num(tickSize)+"V0.5H"+num(w+0.5)+"V"+num(tickSize)))

	for _, name := range x.Domain() {
		pos, ok := x.Position(name)
		if !ok {
			continue
		}
		center := pos + x.Bandwidth()/2
		tick := El("g").
			Set("class", "tick").
			Set("opacity", "1").
			Set("transform", translate(center+0.5, 0))
		tick.Append(
			El("line").Set("stroke", axisColor).Set("y2", num(tickSize)),
			El("text").Set("fill", axisColor).Set("y", num(tickSize+tickPadding)).Set("dy", "0.71em").SetText(name),
		)
		axis.Append(tick)
	}
	return axis
}

// leftAxis draws the count axis with round tick values.
func leftAxis(y *LinearScale, g Geometry) *Node {
	h := float64(g.PlotHeight)
	axis := axisGroup("axis-y", "end")

	axis.Append(El("path").
		Set("class", "domain").
		Set("stroke", axisColor).
		Set("d", "M-"+num(tickSize)+","+num(h+0.5)+"H0.5V0.5H-"+num(tickSize)))

	ticks, step := y.Ticks(DefaultTickCount)
	for _, v := range ticks {
		tick := El("g").
			Set("class", "tick").
			Set("opacity", "1").
			Set("transform", translate(0, y.Map(v)+0.5))
		tick.Append(
			El("line").Set("stroke", axisColor).Set("x2", num(-tickSize)),
			El("text").Set("fill", axisColor).Set("x", num(-(tickSize+tickPadding))).Set("dy", "0.32em").SetText(TickFormat(v, step)),
		)
		axis.Append(tick)
	}
	return axis
}

// axisLabels places the x title under the category axis and the y title
// rotated alongside the count axis.
func axisLabels(labels Labels, g Geometry) []*Node {
	var out []*Node
	if labels.X != "" {
		out = append(out, El("text").
			Set("class", "label label-x").
			Set("text-anchor", "middle").
			Set("x", num(float64(g.PlotWidth)/2)).
			Set("y", num(float64(g.PlotHeight+g.Margins.Bottom)-6)).
			SetText(labels.X))
	}
	if labels.Y != "" {
		out = append(out, El("text").
			Set("class", "label label-y").
			Set("text-anchor", "middle").
			Set("transform", "rotate(-90)").
			Set("x", num(-float64(g.PlotHeight)/2)).
			Set("y", num(-float64(g.Margins.Left)+14)).
			SetText(labels.Y))
	}
	return out
}

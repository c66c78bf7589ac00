package barchart

import (
	"github.com/tinywasm/barchart/errs"
)

// State is what a render leaves behind: the container width it was drawn
// for and the mounted chart, so the next render can replace it.
type State struct {
	Width   int
	Mounted Mounted
}

// Start fetches the data and draws the first chart.
func (r *Renderer) Start() State {
	data, err := r.source.Data()
	if err != nil {
		r.Log("barchart: data source failed:", err)
		return State{}
	}
	return r.Render(State{}, data)
}

// Render replaces the chart in st with one drawn from data at the current
// container size. Nothing is mounted when the container is missing, too
// small or data is empty; the page is never disturbed by a failed draw.
func (r *Renderer) Render(st State, data []DataPoint) State {
	if st.Mounted != nil {
		st.Mounted.Remove()
		st.Mounted = nil
	}

	width, height := r.MeasureContainer()
	st.Width = width

	svg, err := r.Chart().Bar().Size(width, height).Data(data).Draw()
	if err != nil {
		r.Log("barchart: skip draw:", err)
		return st
	}

	st.Mounted = r.target.Mount(string(r.selector), svg)
	if st.Mounted == nil {
		r.Log("barchart:", errs.ErrNoContainer, string(r.selector))
	}
	return st
}

// OnResize redraws with fresh data only when the container width changed
// since st was rendered. Otherwise st comes back untouched.
func (r *Renderer) OnResize(st State) State {
	width, _ := r.MeasureContainer()
	if width == st.Width {
		return st
	}

	data, err := r.source.Data()
	if err != nil {
		r.Log("barchart: data source failed, keeping previous chart:", err)
		return st
	}
	return r.Render(st, data)
}

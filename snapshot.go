package barchart

import (
	"github.com/tinywasm/barchart/errs"
)

// Snapshot draws one chart off-screen into an svg of width x height pixels
// and returns its markup. Extra options are passed to New.
func Snapshot(width, height int, source DataSource, options ...any) (string, error) {
	data, err := source.Data()
	if err != nil {
		return "", err
	}

	target := NewMemoryTarget(string(DefaultSelector))
	options = append(options, FixedProbe{Width: width, Viewport: height * 2}, target, Selector(DefaultSelector))
	r := New(options...)

	st := r.Render(State{}, data)
	if st.Mounted == nil {
		return "", errs.New(errs.ErrNothingDrawn, ':', "size", width, "x", height, "with", len(data), "records")
	}
	return target.Markup(string(DefaultSelector)), nil
}

package barchart

// Renderer draws the chart into a Target using the size reported by a
// ContainerProbe and the records of a DataSource. It holds no render
// state of its own: State is passed in and returned by every call.
type Renderer struct {
	probe    ContainerProbe
	source   DataSource
	target   Target
	selector Selector
	margins  Margins
	padding  Padding
	labels   Labels
	logger   func(message ...any)
}

// Log writes messages with the environment logger
// (fmt.Println on the backend, console.log in the browser).
func (r *Renderer) Log(message ...any) {
	if r.logger != nil {
		r.logger(message...)
	}
}

// New accepts, in any order:
//
//	ContainerProbe, DataSource, Target (one value may be several of them)
//	Selector, Margins, Padding, Labels, LoggerFunc
//
// Missing collaborators default to a probe that finds nothing, the mock
// data and an in-memory target.
func New(options ...any) *Renderer {
	r := &Renderer{
		selector: DefaultSelector,
		margins:  DefaultMargins,
		padding:  DefaultPadding,
		labels:   Labels{X: DefaultXLabel, Y: DefaultYLabel},
	}

	r.initIO()

	for _, opt := range options {
		switch v := opt.(type) {
		case Selector:
			if v != "" {
				r.selector = v
			}
		case Margins:
			r.margins = v
		case Padding:
			r.padding = v
		case Labels:
			r.labels = v
		case LoggerFunc:
			r.logger = v
		case nil:
		default:
			if p, ok := v.(ContainerProbe); ok {
				r.probe = p
			}
			if s, ok := v.(DataSource); ok {
				r.source = s
			}
			if t, ok := v.(Target); ok {
				r.target = t
			}
		}
	}

	if r.probe == nil {
		r.probe = FixedProbe{}
	}
	if r.source == nil {
		r.source = StaticSource(MockData())
	}
	if r.target == nil {
		r.target = NewMemoryTarget(string(r.selector))
	}
	return r
}

// Selector returns the css selector of the hosting element.
func (r *Renderer) Selector() string { return string(r.selector) }

// Source returns the data source used on start and on resize.
func (r *Renderer) Source() DataSource { return r.source }

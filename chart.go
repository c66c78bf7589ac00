package barchart

type ChartFactory struct {
	r *Renderer
}

// Chart returns a factory whose charts share the renderer settings.
func (r *Renderer) Chart() *ChartFactory {
	return &ChartFactory{r: r}
}

// Bar starts building a Bar Chart.
func (f *ChartFactory) Bar() *BarChart {
	c := NewBarChart()
	if f.r != nil {
		c.Margins(f.r.margins).Padding(float64(f.r.padding)).Labels(f.r.labels)
	}
	return c
}

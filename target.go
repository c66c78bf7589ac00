package barchart

// Target mounts a chart tree as the child of the element matched by
// selector. It returns nil when the element does not exist.
type Target interface {
	Mount(selector string, svg *Node) Mounted
}

// Mounted is a chart attached to a Target. Remove detaches it and is a
// no-op once the chart is gone.
type Mounted interface {
	Remove()
}

// MemoryTarget keeps mounted trees in memory. The backend renders into
// it and reads the markup back; tests use it to inspect the "page".
type MemoryTarget struct {
	containers map[string]bool
	mounted    map[string][]*memoryMount
	mounts     int
}

// NewMemoryTarget returns a target with one container per selector.
func NewMemoryTarget(selectors ...string) *MemoryTarget {
	t := &MemoryTarget{
		containers: make(map[string]bool, len(selectors)),
		mounted:    make(map[string][]*memoryMount),
	}
	for _, s := range selectors {
		t.containers[s] = true
	}
	return t
}

func (t *MemoryTarget) Mount(selector string, svg *Node) Mounted {
	if !t.containers[selector] || svg == nil {
		return nil
	}
	m := &memoryMount{target: t, selector: selector, node: svg}
	t.mounted[selector] = append(t.mounted[selector], m)
	t.mounts++
	return m
}

// Children returns the trees currently mounted under selector.
func (t *MemoryTarget) Children(selector string) []*Node {
	out := make([]*Node, 0, len(t.mounted[selector]))
	for _, m := range t.mounted[selector] {
		out = append(out, m.node)
	}
	return out
}

// Mounts counts every Mount that attached a tree.
func (t *MemoryTarget) Mounts() int { return t.mounts }

// Markup returns the markup of everything mounted under selector.
func (t *MemoryTarget) Markup(selector string) string {
	var out string
	for _, n := range t.Children(selector) {
		out += n.Markup()
	}
	return out
}

type memoryMount struct {
	target   *MemoryTarget
	selector string
	node     *Node
}

func (m *memoryMount) Remove() {
	list := m.target.mounted[m.selector]
	for i, other := range list {
		if other == m {
			m.target.mounted[m.selector] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

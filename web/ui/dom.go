//go:build wasm
// +build wasm

package ui

import (
	"syscall/js"

	"github.com/tinywasm/barchart"
)

const svgNS = "http://www.w3.org/2000/svg"

// DOM measures and draws into the live page. It is both the
// ContainerProbe and the Target of the browser renderer.
type DOM struct {
	window   js.Value
	document js.Value
}

func NewDOM() *DOM {
	return &DOM{
		window:   js.Global(),
		document: js.Global().Get("document"),
	}
}

func (d *DOM) query(selector string) (js.Value, bool) {
	el := d.document.Call("querySelector", selector)
	if el.IsNull() || el.IsUndefined() {
		return el, false
	}
	return el, true
}

// ContainerWidth reads the computed css width of the element, 0 when it
// is not in the page.
func (d *DOM) ContainerWidth(selector string) int {
	el, ok := d.query(selector)
	if !ok {
		return 0
	}
	style := d.window.Call("getComputedStyle", el)
	return barchart.ParsePixels(style.Get("width").String())
}

func (d *DOM) ViewportHeight() int {
	return d.window.Get("innerHeight").Int()
}

// Mount builds the svg elements and appends them to the container.
func (d *DOM) Mount(selector string, svg *barchart.Node) barchart.Mounted {
	host, ok := d.query(selector)
	if !ok || svg == nil {
		return nil
	}
	el := d.build(svg)
	host.Call("appendChild", el)
	return domMount{el: el}
}

func (d *DOM) build(n *barchart.Node) js.Value {
	el := d.document.Call("createElementNS", svgNS, n.Tag)
	for _, a := range n.Attrs {
		if a.Key == "xmlns" {
			continue
		}
		el.Call("setAttribute", a.Key, a.Val)
	}
	if n.Text != "" {
		el.Set("textContent", n.Text)
	}
	for _, c := range n.Children {
		el.Call("appendChild", d.build(c))
	}
	return el
}

type domMount struct {
	el js.Value
}

// Remove on a detached element does nothing.
func (m domMount) Remove() {
	m.el.Call("remove")
}

//go:build wasm
// +build wasm

package ui

import (
	"context"
	"strconv"
	"strings"
	"syscall/js"

	"github.com/tinywasm/barchart"
)

// Setup prepara la página, dibuja el gráfico y lo vuelve a dibujar
// cuando cambia el tamaño de la ventana.
func Setup(r *barchart.Renderer, dom *DOM) {
	container := ensureContainer(dom, r.Selector())
	loadStyles(dom)

	loop := barchart.NewLoop(r)
	go loop.Run(context.Background())

	subscribeResize(dom, loop, debounceMs(container))
}

// ensureContainer crea el contenedor del gráfico si la página no lo trae.
func ensureContainer(dom *DOM, selector string) js.Value {
	if el, ok := dom.query(selector); ok {
		return el
	}

	body := dom.document.Get("body")

	wrapper := dom.document.Call("createElement", "div")
	wrapper.Set("className", "container")

	title := dom.document.Call("createElement", "h1")
	title.Set("textContent", "Bar Chart")
	wrapper.Call("appendChild", title)

	chart := dom.document.Call("createElement", "div")
	chart.Set("className", "chart")
	if strings.HasPrefix(selector, "#") {
		chart.Set("id", strings.TrimPrefix(selector, "#"))
	}
	wrapper.Call("appendChild", chart)

	body.Call("appendChild", wrapper)
	return chart
}

func loadStyles(dom *DOM) {
	// Verificar si ya existe el link de estilos
	existingLink := dom.document.Call("querySelector", "link[href='style.css']")
	if !existingLink.IsNull() {
		return
	}

	link := dom.document.Call("createElement", "link")
	link.Set("rel", "stylesheet")
	link.Set("href", "style.css")
	dom.document.Get("head").Call("appendChild", link)
}

// debounceMs lee data-debounce-ms del contenedor; 0 desactiva el retardo.
func debounceMs(container js.Value) int {
	if container.IsNull() || container.IsUndefined() {
		return 0
	}
	v := container.Call("getAttribute", "data-debounce-ms")
	if v.IsNull() {
		return 0
	}
	ms, err := strconv.Atoi(v.String())
	if err != nil || ms < 0 {
		return 0
	}
	return ms
}

// subscribeResize only queues events; the loop goroutine does the work,
// since fetching data from inside a js callback would deadlock.
func subscribeResize(dom *DOM, loop *barchart.Loop, delay int) {
	timer := js.Null()

	fire := js.FuncOf(func(this js.Value, args []js.Value) any {
		timer = js.Null()
		loop.Notify()
		return nil
	})

	onResize := js.FuncOf(func(this js.Value, args []js.Value) any {
		if delay <= 0 {
			loop.Notify()
			return nil
		}
		if !timer.IsNull() {
			dom.window.Call("clearTimeout", timer)
		}
		timer = dom.window.Call("setTimeout", fire, delay)
		return nil
	})

	dom.window.Call("addEventListener", "resize", onResize)
}

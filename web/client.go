//go:build wasm

package main

import (
	"github.com/tinywasm/barchart"
	"github.com/tinywasm/barchart/web/ui"
)

func main() {
	dom := ui.NewDOM()

	// sin servidor se dibujan los datos de ejemplo
	source := &barchart.FallbackSource{
		Primary:   ui.FetchSource("/api/bins"),
		Secondary: barchart.StaticSource(barchart.MockData()),
	}
	r := barchart.New(dom, source)
	source.Log = r.Log

	r.Log("barchart inicializado...")

	// Configurar UI
	ui.Setup(r, dom)

	r.Log("Aplicación lista")

	// Mantener el programa ejecutándose
	select {}
}

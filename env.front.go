//go:build wasm
// +build wasm

package barchart

import (
	"syscall/js"

	. "github.com/tinywasm/fmt"
)

// initIO sets the browser logger: console.log with every argument
// converted to a string first.
func (r *Renderer) initIO() {
	r.logger = func(message ...any) {
		console := js.Global().Get("console")
		if console.IsUndefined() {
			return
		}
		args := make([]any, len(message))
		for i, m := range message {
			switch v := m.(type) {
			case error:
				args[i] = v.Error()
			case string:
				args[i] = v
			default:
				args[i] = Convert(v).String()
			}
		}
		console.Call("log", args...)
	}
}

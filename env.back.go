//go:build !wasm
// +build !wasm

package barchart

import (
	"fmt"
)

// initIO sets the backend logger.
func (r *Renderer) initIO() {
	r.logger = func(message ...any) {
		fmt.Println(message...)
	}
}

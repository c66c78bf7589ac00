//go:build wasm
// +build wasm

package ui

import (
	"github.com/tinywasm/barchart"
	"github.com/tinywasm/fetch"
)

// FetchSource downloads the records from a JSON endpoint on every call.
// It blocks until the response arrives, so it must run on the Loop
// goroutine and never inside a js callback.
type FetchSource string

type fetchResult struct {
	resp *fetch.Response
	err  error
}

func (url FetchSource) Data() ([]barchart.DataPoint, error) {
	done := make(chan fetchResult, 1)
	fetch.Get(string(url)).Send(func(resp *fetch.Response, err error) {
		done <- fetchResult{resp: resp, err: err}
	})

	res := <-done
	if res.err != nil || res.resp == nil {
		return responseData(string(url), 0, nil, res.err)
	}
	return responseData(string(url), res.resp.Status, res.resp.Body(), nil)
}

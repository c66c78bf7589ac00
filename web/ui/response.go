package ui

import (
	"bytes"

	"github.com/tinywasm/barchart"
	. "github.com/tinywasm/fmt"
)

// responseData turns a finished request for url into records.
func responseData(url string, status int, body []byte, err error) ([]barchart.DataPoint, error) {
	if err != nil {
		return nil, Errf("error fetching data %s: %v", url, err)
	}
	if status != 200 {
		return nil, Errf("error fetching data %s: status %d", url, status)
	}
	return barchart.DecodeData(bytes.NewReader(body))
}

package barchart

import (
	"math"
	"strings"

	. "github.com/tinywasm/fmt"
)

// num prints a coordinate for an svg attribute: integers without a
// fraction, everything else rounded to three decimals.
func num(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return Convert(int(v)).String()
	}
	s := Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

func formatFixed(v float64, decimals int) string {
	if decimals <= 0 {
		return Convert(int(math.Round(v))).String()
	}
	return Sprintf("%."+Convert(decimals).String()+"f", v)
}

func translate(x, y float64) string {
	return "translate(" + num(x) + "," + num(y) + ")"
}

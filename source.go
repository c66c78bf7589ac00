package barchart

import (
	"encoding/json"
	"io"
	"os"

	"github.com/tinywasm/barchart/errs"
	. "github.com/tinywasm/fmt"
)

// DataSource supplies the records to draw. It is asked again on every
// resize that changes the width.
type DataSource interface {
	Data() ([]DataPoint, error)
}

// SourceFunc adapts a plain function to DataSource.
type SourceFunc func() ([]DataPoint, error)

func (f SourceFunc) Data() ([]DataPoint, error) { return f() }

// StaticSource always returns a copy of the same records.
type StaticSource []DataPoint

func (s StaticSource) Data() ([]DataPoint, error) {
	out := make([]DataPoint, len(s))
	copy(out, s)
	return out, nil
}

// MockData is the demo data set.
func MockData() []DataPoint {
	return []DataPoint{
		{Name: "Bin_0", Count: 20},
		{Name: "Bin_1", Count: 15},
		{Name: "Bin_2", Count: 56},
		{Name: "Bin_3", Count: 40},
	}
}

// FallbackSource asks Primary first and uses Secondary when it fails.
type FallbackSource struct {
	Primary   DataSource
	Secondary DataSource
	Log       func(message ...any)
}

func (s FallbackSource) Data() ([]DataPoint, error) {
	data, err := s.Primary.Data()
	if err == nil {
		return data, nil
	}
	if s.Log != nil {
		s.Log("barchart: primary data source failed, using fallback:", err)
	}
	return s.Secondary.Data()
}

// FileSource reads a JSON array of {"name","count"} records from a file.
type FileSource string

func (path FileSource) Data() ([]DataPoint, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return nil, Errf("open data file %s: %v", string(path), err)
	}
	defer f.Close()
	return DecodeData(f)
}

// DecodeData parses and validates a JSON array of records.
func DecodeData(r io.Reader) ([]DataPoint, error) {
	var data []DataPoint
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errs.New(errs.ErrInvalidData, ':', "decode:", err.Error())
	}
	if err := Validate(data); err != nil {
		return nil, err
	}
	return data, nil
}

// Validate rejects empty names and negative counts. Duplicate names are
// allowed and overdraw each other.
func Validate(data []DataPoint) error {
	for i, d := range data {
		if d.Name == "" {
			return errs.New(errs.ErrInvalidData, "index", i, ':', "empty name")
		}
		if d.Count < 0 {
			return errs.New(errs.ErrInvalidData, "index", i, ':', "negative count", d.Count)
		}
	}
	return nil
}

// Package io reads and writes jump record lists as JSON.
//
// The flat record list is the interchange artifact of a mapping run: it is
// what exports, the run store, and the graph builder all share. Files
// written by [WriteJSON] can be re-imported with [ReadJSON] for round-trip
// processing.
package io

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/lgoulart/jumpmap/pkg/explore"
	"github.com/lgoulart/jumpmap/pkg/jump"
)

// record is the on-disk shape. Coordinates are pointers so that rows
// written by other tools with missing fields survive the round trip as
// NaN instead of silently becoming zero.
type record struct {
	LevelIn   int      `json:"level_in"`
	XIn       *float64 `json:"x_in,omitempty"`
	YIn       *float64 `json:"y_in,omitempty"`
	Charge    int      `json:"charge"`
	Direction string   `json:"direction"`
	LevelOut  int      `json:"level_out"`
	XOut      *float64 `json:"x_out,omitempty"`
	YOut      *float64 `json:"y_out,omitempty"`
}

type recordFile struct {
	Records []record `json:"records"`
}

// WriteJSON encodes a record list as JSON and writes it to w.
func WriteJSON(records []explore.Record, w io.Writer) error {
	out := recordFile{Records: make([]record, len(records))}
	for i, r := range records {
		out.Records[i] = record{
			LevelIn:   r.LevelIn,
			XIn:       present(r.XIn),
			YIn:       present(r.YIn),
			Charge:    r.Charge,
			Direction: string(r.Direction),
			LevelOut:  r.LevelOut,
			XOut:      present(r.XOut),
			YOut:      present(r.YOut),
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a record list to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(records []explore.Record, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(records, f)
}

// ReadJSON decodes a JSON record list from r.
//
// The input must be a JSON object with a "records" array. Missing
// coordinate fields decode as NaN; such records are preserved here and
// skipped later by the graph builder, so one bad row does not discard a
// file. ReadJSON does not close r.
func ReadJSON(r io.Reader) ([]explore.Record, error) {
	var data recordFile
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	records := make([]explore.Record, len(data.Records))
	for i, rec := range data.Records {
		dir, err := jump.ParseDirection(rec.Direction)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records[i] = explore.Record{
			LevelIn:   rec.LevelIn,
			XIn:       value(rec.XIn),
			YIn:       value(rec.YIn),
			Charge:    rec.Charge,
			Direction: dir,
			LevelOut:  rec.LevelOut,
			XOut:      value(rec.XOut),
			YOut:      value(rec.YOut),
		}
	}
	return records, nil
}

// ImportJSON reads a JSON file at path and returns the decoded records.
func ImportJSON(path string) ([]explore.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

func present(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

func value(p *float64) float64 {
	if p == nil {
		return math.NaN()
	}
	return *p
}

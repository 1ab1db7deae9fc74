package io

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgoulart/jumpmap/pkg/explore"
	"github.com/lgoulart/jumpmap/pkg/jump"
)

var sampleRecords = []explore.Record{
	{LevelIn: 0, XIn: 230, YIn: 298, Charge: 15, Direction: jump.DirectionRight, LevelOut: 0, XOut: 300, YOut: 298},
	{LevelIn: 0, XIn: 230, YIn: 298, Charge: 30, Direction: jump.DirectionLeft, LevelOut: 1, XOut: 120, YOut: 100},
}

func TestRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(sampleRecords, &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if len(got) != len(sampleRecords) {
		t.Fatalf("got %d records, want %d", len(got), len(sampleRecords))
	}
	for i := range got {
		if got[i] != sampleRecords[i] {
			t.Errorf("record %d = %+v, want %+v", i, got[i], sampleRecords[i])
		}
	}
}

func TestReadJSONMissingCoordinates(t *testing.T) {
	const input = `{
	  "records": [
	    {"level_in": 0, "x_in": 230, "y_in": 298, "charge": 15, "direction": "right", "level_out": 0, "y_out": 298}
	  ]
	}`

	records, err := ReadJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if !math.IsNaN(records[0].XOut) {
		t.Errorf("missing x_out decoded as %v, want NaN", records[0].XOut)
	}
	if records[0].Complete() {
		t.Error("record with missing coordinate reported complete")
	}
}

func TestReadJSONRejectsBadDirection(t *testing.T) {
	const input = `{"records": [{"direction": "up", "x_in": 1, "y_in": 1, "x_out": 1, "y_out": 1}]}`

	if _, err := ReadJSON(strings.NewReader(input)); err == nil {
		t.Fatal("expected error for invalid direction")
	}
}

func TestExportImportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")

	if err := ExportJSON(sampleRecords, path); err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON() error = %v", err)
	}
	if len(got) != len(sampleRecords) {
		t.Errorf("got %d records, want %d", len(got), len(sampleRecords))
	}
}

func TestImportJSONMissingFile(t *testing.T) {
	if _, err := ImportJSON(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

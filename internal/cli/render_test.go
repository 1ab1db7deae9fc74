package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestArtifactBasePath(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		fallback string
		want     string
	}{
		{"empty output uses fallback", "", "records", "records"},
		{"format extension stripped", "graph.svg", "records", "graph"},
		{"png extension stripped", "graph.png", "records", "graph"},
		{"unknown extension kept", "graph.out", "records", "graph.out"},
		{"bare path kept", "graph", "records", "graph"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := artifactBasePath(tt.output, tt.fallback); got != tt.want {
				t.Errorf("artifactBasePath(%q, %q) = %q, want %q", tt.output, tt.fallback, got, tt.want)
			}
		})
	}
}

func TestWriteArtifactsMultipleFormats(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "graph")

	err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{
			"dot":  []byte("digraph reachability {}"),
			"json": []byte(`{"records": []}`),
		},
		formats: []string{"dot", "json"},
		base:    base,
	})
	if err != nil {
		t.Fatalf("writeArtifacts() error = %v", err)
	}

	for _, ext := range []string{".dot", ".json"} {
		if _, err := os.Stat(base + ext); err != nil {
			t.Errorf("expected artifact %s: %v", base+ext, err)
		}
	}
}

func TestWriteArtifactsSingleFormatOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "custom-name.dot")

	err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{"dot": []byte("digraph reachability {}")},
		formats:   []string{"dot"},
		base:      "unused",
		output:    out,
	})
	if err != nil {
		t.Fatalf("writeArtifacts() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "digraph reachability {}" {
		t.Errorf("output content = %q", data)
	}
}

func TestWriteArtifactsSkipsMissingFormat(t *testing.T) {
	base := filepath.Join(t.TempDir(), "graph")

	// svg requested but not rendered; must not fail or create a file
	err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{"dot": []byte("digraph reachability {}")},
		formats:   []string{"dot", "svg"},
		base:      base,
	})
	if err != nil {
		t.Fatalf("writeArtifacts() error = %v", err)
	}
	if _, err := os.Stat(base + ".svg"); !os.IsNotExist(err) {
		t.Error("missing format should not produce a file")
	}
}

package cli

import (
	"io"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/lgoulart/jumpmap/pkg/jump"
)

func newTestCLI() *CLI {
	c := New(io.Discard, log.InfoLevel)
	c.Config = DefaultConfig()
	return c
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newTestCLI().RootCommand()

	want := []string{"jump", "verify", "sample", "map", "render", "runs", "serve", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{"svg"}},
		{"dot", []string{"dot"}},
		{"svg,png,json", []string{"svg", "png", "json"}},
	}

	for _, tt := range tests {
		if got := parseFormats(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseCharges(t *testing.T) {
	got, err := parseCharges("5, 15,30,60")
	if err != nil {
		t.Fatalf("parseCharges() error = %v", err)
	}
	if want := []int{5, 15, 30, 60}; !reflect.DeepEqual(got, want) {
		t.Errorf("parseCharges() = %v, want %v", got, want)
	}

	if got, err := parseCharges(""); err != nil || got != nil {
		t.Errorf("parseCharges(\"\") = %v, %v, want nil, nil", got, err)
	}

	if _, err := parseCharges("5,x"); err == nil {
		t.Error("parseCharges should reject non-numeric charges")
	}
}

func TestParseDirections(t *testing.T) {
	got, err := parseDirections("right, left")
	if err != nil {
		t.Fatalf("parseDirections() error = %v", err)
	}
	if want := []jump.Direction{jump.DirectionRight, jump.DirectionLeft}; !reflect.DeepEqual(got, want) {
		t.Errorf("parseDirections() = %v, want %v", got, want)
	}

	if _, err := parseDirections("up"); err == nil {
		t.Error("parseDirections should reject unknown directions")
	}
}

func TestCacheDirXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error = %v", err)
	}
	if want := filepath.Join("/tmp/xdg-cache", "jumpmap"); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestConfigDirXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")

	dir, err := configDir()
	if err != nil {
		t.Fatalf("configDir() error = %v", err)
	}
	if want := filepath.Join("/tmp/xdg-config", "jumpmap"); dir != want {
		t.Errorf("configDir() = %q, want %q", dir, want)
	}
}

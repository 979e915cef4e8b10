package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "cgc.gff")
	if err := os.WriteFile(file, []byte("#\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"dir is dir", DirExists(dir), true},
		{"file is not dir", DirExists(file), false},
		{"missing dir", DirExists(filepath.Join(dir, "nope")), false},
		{"file is file", FileExists(file), true},
		{"dir is not file", FileExists(dir), false},
		{"parent of new file", ParentExists(filepath.Join(dir, "output.txt")), true},
		{"parent missing", ParentExists(filepath.Join(dir, "a", "b", "output.txt")), false},
		{"relative name", ParentExists("output.txt"), true},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

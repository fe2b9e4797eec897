package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadNonBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passwords.txt")
	if err := os.WriteFile(path, []byte("password\n\n  \nhunter2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	lines, err := readNonBlankLines(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"password", "hunter2"}
	if len(lines) != len(want) {
		t.Fatalf("got %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestReadNonBlankLinesMissingFile(t *testing.T) {
	_, err := readNonBlankLines(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

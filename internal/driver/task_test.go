package driver

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestShouldSkipMissingOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.j")
	os.WriteFile(in, []byte("x"), 0644)
	if ShouldSkip(filepath.Join(dir, "missing.o"), in) {
		t.Fatal("missing output should never be skipped")
	}
}

func TestShouldSkipStaleOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.j")
	out := filepath.Join(dir, "out.o")

	os.WriteFile(out, []byte("old"), 0644)
	time.Sleep(10 * time.Millisecond)
	os.WriteFile(in, []byte("x"), 0644)

	if ShouldSkip(out, in) {
		t.Fatal("output older than input should not be skipped")
	}
}

func TestShouldSkipFreshOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.j")
	out := filepath.Join(dir, "out.o")

	os.WriteFile(in, []byte("x"), 0644)
	time.Sleep(10 * time.Millisecond)
	os.WriteFile(out, []byte("new"), 0644)

	if !ShouldSkip(out, in) {
		t.Fatal("output newer than every input should be skipped")
	}
}

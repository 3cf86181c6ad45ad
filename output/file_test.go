package output

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteAtomic_Overwrite(t *testing.T) {
	dir := t.TempDir()
	final := filepath.Join(dir, "result.json")

	if err := os.WriteFile(final, []byte("stale"), 0o644); err != nil {
		t.Fatalf("setup write: %v", err)
	}
	if err := WriteAtomic(final, []byte(`{"output":[],"status":"success"}`+"\n")); err != nil {
		t.Fatalf("WriteAtomic failed: %v", err)
	}
	got, err := os.ReadFile(final)
	if err != nil {
		t.Fatalf("read final: %v", err)
	}
	if string(got) != `{"output":[],"status":"success"}`+"\n" {
		t.Fatalf("content mismatch: %q", string(got))
	}
}

func TestWriteAtomic_FailurePreservesOriginal(t *testing.T) {
	dir := t.TempDir()
	final := filepath.Join(dir, "result.json")
	if err := os.WriteFile(final, []byte("original"), 0o644); err != nil {
		t.Fatalf("setup write: %v", err)
	}

	// Remove write permission so CreateTemp fails.
	if err := os.Chmod(dir, 0o555); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chmod(dir, 0o755)
	})

	if err := WriteAtomic(final, []byte("should-not-land")); err == nil {
		t.Fatal("expected WriteAtomic to fail on unwritable dir")
	}
	got, err := os.ReadFile(final)
	if err != nil {
		t.Fatalf("read final: %v", err)
	}
	if string(got) != "original" {
		t.Fatalf("original file was modified: %q", string(got))
	}
}

package resume

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExtractText_PlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.txt")
	if err := os.WriteFile(path, []byte("Brand Manager, 8 years"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ExtractText(path)
	if err != nil {
		t.Fatalf("ExtractText returned unexpected error: %v", err)
	}
	if got != "Brand Manager, 8 years" {
		t.Errorf("ExtractText = %q", got)
	}
}

func TestExtractText_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.docx")
	if err := os.WriteFile(path, []byte("binary"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ExtractText(path)
	if err != nil {
		t.Fatalf("unsupported format must not be an error: %v", err)
	}
	if got != "" {
		t.Errorf("ExtractText = %q, want empty for unsupported format", got)
	}
}

func TestExtractText_MissingFile(t *testing.T) {
	if _, err := ExtractText(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("ExtractText expected error for missing file, got nil")
	}
}

// Package resume extracts plain text from an uploaded CV and derives a
// profile fragment from it. Extraction and parsing are heuristic and
// best-effort: empty or unreadable input produces a default fragment,
// never an error the bot surfaces to the user.
package resume

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractText reads a CV file into plain text. PDF pages that fail to
// decode are skipped. Plain-text files are read as-is; anything else
// yields an empty string.
func ExtractText(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extractPDF(path)
	case ".txt", ".text", ".md":
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read text file: %w", err)
		}
		return string(b), nil
	default:
		return "", nil
	}
}

func extractPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var sb strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// broken page, keep the rest
			continue
		}

		sb.WriteString(text)
		sb.WriteString(" ")
	}

	return sb.String(), nil
}

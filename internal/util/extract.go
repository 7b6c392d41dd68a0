package util

import (
	"bytes"
	"fmt"

	"github.com/gen2brain/go-fitz"
)

// ExtractPDFText returns the embedded text of the PDF at path, pages
// concatenated in order. Scanned/image-only PDFs yield an empty string.
func ExtractPDFText(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var fullText bytes.Buffer
	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := doc.Text(n)
		if err != nil {
			return "", fmt.Errorf("page %d: failed to extract text: %w", n+1, err)
		}
		fullText.WriteString(pageText)
	}

	return fullText.String(), nil
}

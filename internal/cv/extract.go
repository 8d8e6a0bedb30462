// Package cv turns uploaded documents into plain text for scoring. One
// extractor per format, dispatched on file extension; every failure
// degrades to empty text plus a warning so a single unreadable file never
// aborts an upload batch.
package cv

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Extractor is one per-format text extraction strategy.
type Extractor interface {
	Extract(filename string, data []byte) (string, error)
}

var extractors = map[string]Extractor{
	".pdf":  pdfExtractor{},
	".docx": docxExtractor{},
	".doc":  docconvExtractor{},
	".rtf":  docconvExtractor{},
	".odt":  docconvExtractor{},
}

// ExtractText extracts text from an uploaded document, dispatching on the
// file extension. Unknown extensions are decoded as UTF-8 text with invalid
// bytes dropped. On failure it returns empty text and a caller-visible
// warning, never an error.
func ExtractText(filename string, data []byte) (text string, warning string) {
	ext := strings.ToLower(filepath.Ext(filename))
	ex, ok := extractors[ext]
	if !ok {
		ex = plainTextExtractor{}
	}
	text, err := ex.Extract(filename, data)
	if err != nil {
		return "", fmt.Sprintf("could not extract text from %s: %v", filename, err)
	}
	return text, ""
}

type pdfExtractor struct{}

// Extract concatenates per-page plain text. A page that fails to decode is
// skipped; the rest of the document still contributes.
func (pdfExtractor) Extract(_ string, data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}
	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

type docxExtractor struct{}

var xmlTagRe = regexp.MustCompile(`<[^>]+>`)

func (docxExtractor) Extract(_ string, data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parse docx: %w", err)
	}
	defer doc.Close()
	// GetContent returns the raw document body; strip markup so only the
	// paragraph text remains.
	return xmlTagRe.ReplaceAllString(doc.Editable().GetContent(), " "), nil
}

// docconvExtractor covers the legacy word-processor formats the pure-Go
// readers do not handle.
type docconvExtractor struct{}

func (docconvExtractor) Extract(filename string, data []byte) (string, error) {
	mime := docconv.MimeTypeByExtension(filename)
	res, err := docconv.Convert(bytes.NewReader(data), mime, true)
	if err != nil {
		return "", fmt.Errorf("convert document: %w", err)
	}
	return res.Body, nil
}

type plainTextExtractor struct{}

func (plainTextExtractor) Extract(_ string, data []byte) (string, error) {
	return strings.ToValidUTF8(string(data), ""), nil
}

// Package pdftext pulls plain text out of PDF resumes.
package pdftext

import (
	"fmt"
	"os"
	"strings"

	"github.com/dslipak/pdf"
	"go.uber.org/zap"
)

// Extractor concatenates the text of every page of a PDF.
type Extractor struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{logger: logger}
}

// Extract returns the text of all pages at path, in page order. Pages that fail to
// decode are skipped, so the result may be empty for scanned or broken documents.
func (e *Extractor) Extract(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat pdf: %w", err)
	}

	reader, err := newReader(f, info.Size())
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	var text strings.Builder
	numPages := reader.NumPage()
	e.logger.Debug("extracting pdf text", zap.String("path", path), zap.Int("pages", numPages))

	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		content, err := pageText(page)
		if err != nil {
			e.logger.Warn("skipping unreadable page",
				zap.String("path", path),
				zap.Int("page", i),
				zap.Error(err),
			)
			continue
		}

		text.WriteString(content)
	}

	return text.String(), nil
}

// newReader guards against the parser panicking on malformed cross-reference tables.
func newReader(f *os.File, size int64) (reader *pdf.Reader, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()
	return pdf.NewReader(f, size)
}

func pageText(page pdf.Page) (content string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed page content: %v", r)
		}
	}()
	return page.GetPlainText(nil)
}

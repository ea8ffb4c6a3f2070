// Package extract converts uploaded PDF, DOCX and PPTX documents into plain text.
package extract

import (
	"errors"
	"fmt"

	"edugenie/internal/domain"
)

// ErrMalformedDocument is returned when bytes cannot be parsed as the claimed format.
var ErrMalformedDocument = errors.New("malformed document")

func malformed(format string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrMalformedDocument, format, err)
}

// Extract dispatches to the extractor for kind.
func Extract(kind domain.FileKind, data []byte) (string, error) {
	switch kind {
	case domain.FileKindPDF:
		return ExtractPDFText(data)
	case domain.FileKindDOCX:
		return ExtractDOCXText(data)
	case domain.FileKindPPTX:
		return ExtractPPTXText(data)
	default:
		return "", fmt.Errorf("no extractor for file kind %s", kind)
	}
}

package extract

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

// ExtractPDFText concatenates the text layer of every page in document order.
func ExtractPDFText(data []byte) (text string, err error) {
	// The pdf package panics on some corrupt object graphs.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = malformed("pdf", fmt.Errorf("%v", r))
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", malformed("pdf", err)
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", malformed("pdf", err)
	}
	b, err := io.ReadAll(plain)
	if err != nil {
		return "", malformed("pdf", err)
	}
	return string(b), nil
}

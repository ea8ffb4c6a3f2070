package extract

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

const docxBodyPart = "word/document.xml"

// ExtractDOCXText returns every top-level body paragraph followed by a newline, in
// document order. Tabs and line breaks inside runs are preserved.
func ExtractDOCXText(data []byte) (string, error) {
	zr, err := openZip(data)
	if err != nil {
		return "", malformed("docx", err)
	}
	body, err := readZipFile(zr, docxBodyPart)
	if err != nil {
		return "", malformed("docx", err)
	}
	paragraphs, err := docxParagraphs(body)
	if err != nil {
		return "", malformed("docx", err)
	}

	var out strings.Builder
	for _, p := range paragraphs {
		out.WriteString(p)
		out.WriteString("\n")
	}
	return out.String(), nil
}

// docxParagraphs walks word/document.xml and collects the text of each w:p that is a
// direct child of w:body. Paragraphs inside tables and text boxes are not body paragraphs.
func docxParagraphs(body []byte) ([]string, error) {
	dec := xml.NewDecoder(bytes.NewReader(body))
	var (
		stack      []string
		paragraphs []string
		text       strings.Builder
		inPara     bool
		paraDepth  int
		sawBody    bool
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			parent := ""
			if len(stack) > 0 {
				parent = stack[len(stack)-1]
			}
			stack = append(stack, t.Name.Local)
			switch {
			case t.Name.Local == "body":
				sawBody = true
			case t.Name.Local == "p" && parent == "body":
				inPara = true
				paraDepth = len(stack)
				text.Reset()
			case inPara && t.Name.Local == "tab" && parent == "r":
				text.WriteString("\t")
			case inPara && (t.Name.Local == "br" || t.Name.Local == "cr") && parent == "r":
				text.WriteString("\n")
			}
		case xml.CharData:
			if inPara && len(stack) > 0 && stack[len(stack)-1] == "t" && !insideTextBox(stack) {
				text.Write(t)
			}
		case xml.EndElement:
			if inPara && len(stack) == paraDepth && t.Name.Local == "p" {
				paragraphs = append(paragraphs, text.String())
				inPara = false
			}
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if !sawBody {
		return nil, errors.New("document has no body")
	}
	return paragraphs, nil
}

func insideTextBox(stack []string) bool {
	for _, name := range stack {
		if name == "txbxContent" {
			return true
		}
	}
	return false
}

// Package extracttest builds small, valid PDF, DOCX and PPTX documents for tests.
package extracttest

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
)

// BuildPDF returns a PDF with one page per entry, each page showing its text in
// Helvetica. Text must not contain parentheses or backslashes.
func BuildPDF(pages ...string) []byte {
	var objects []string
	nPages := len(pages)
	// 1: catalog, 2: pages, 3: font, then a page and a content stream per page.
	kids := make([]string, nPages)
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}
	objects = append(objects,
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), nPages),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	)
	for i, text := range pages {
		content := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", 5+2*i),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		)
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

const contentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="xml" ContentType="application/xml"/><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/></Types>`

// BuildDOCX returns a DOCX whose body holds one paragraph per entry. Tabs and
// newlines inside an entry become w:tab and w:br run elements.
func BuildDOCX(paragraphs ...string) []byte {
	var body strings.Builder
	for _, p := range paragraphs {
		body.WriteString("<w:p><w:r>")
		body.WriteString(docxRunContent(p))
		body.WriteString("</w:r></w:p>")
	}
	doc := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body.String() + `<w:sectPr/></w:body></w:document>`

	return buildZip(map[string]string{
		"[Content_Types].xml": contentTypes,
		"word/document.xml":   doc,
	}, []string{"[Content_Types].xml", "word/document.xml"})
}

// BuildDOCXRaw wraps bodyXML in a w:document/w:body element.
func BuildDOCXRaw(bodyXML string) []byte {
	doc := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		bodyXML + `</w:body></w:document>`
	return buildZip(map[string]string{
		"[Content_Types].xml": contentTypes,
		"word/document.xml":   doc,
	}, []string{"[Content_Types].xml", "word/document.xml"})
}

func docxRunContent(s string) string {
	var b strings.Builder
	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			b.WriteString(`<w:t xml:space="preserve">`)
			b.WriteString(escape(text.String()))
			b.WriteString("</w:t>")
			text.Reset()
		}
	}
	for _, r := range s {
		switch r {
		case '\t':
			flush()
			b.WriteString("<w:tab/>")
		case '\n':
			flush()
			b.WriteString("<w:br/>")
		default:
			text.WriteRune(r)
		}
	}
	flush()
	return b.String()
}

// BuildPPTX returns a PPTX with one slide per entry. Each string in a slide becomes a
// text shape; newlines inside it split paragraphs.
func BuildPPTX(slides ...[]string) []byte {
	shapes := make([]string, len(slides))
	for i, texts := range slides {
		var sp strings.Builder
		for j, t := range texts {
			fmt.Fprintf(&sp, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="TextBox %d"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr><p:spPr/><p:txBody><a:bodyPr/>`, j+2, j+1)
			for _, para := range strings.Split(t, "\n") {
				fmt.Fprintf(&sp, "<a:p><a:r><a:t>%s</a:t></a:r></a:p>", escape(para))
			}
			sp.WriteString("</p:txBody></p:sp>")
		}
		shapes[i] = sp.String()
	}
	return BuildPPTXRaw(shapes...)
}

// BuildPPTXRaw returns a PPTX with one slide per entry, each entry being the raw
// children of that slide's p:spTree.
func BuildPPTXRaw(slideTrees ...string) []byte {
	files := map[string]string{"[Content_Types].xml": contentTypes}
	order := []string{"[Content_Types].xml", "ppt/presentation.xml", "ppt/_rels/presentation.xml.rels"}

	var ids, rels strings.Builder
	for i, tree := range slideTrees {
		n := i + 1
		fmt.Fprintf(&ids, `<p:sldId id="%d" r:id="rId%d"/>`, 255+n, n)
		fmt.Fprintf(&rels, `<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide%d.xml"/>`, n, n)

		name := fmt.Sprintf("ppt/slides/slide%d.xml", n)
		files[name] = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:cSld><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/>` +
			tree + `</p:spTree></p:cSld></p:sld>`
		order = append(order, name)
	}

	files["ppt/presentation.xml"] = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:presentation xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:sldIdLst>` +
		ids.String() + `</p:sldIdLst></p:presentation>`
	files["ppt/_rels/presentation.xml.rels"] = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		rels.String() + `</Relationships>`

	return buildZip(files, order)
}

func buildZip(files map[string]string, order []string) []byte {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range order {
		w, err := zw.Create(name)
		if err != nil {
			panic(err)
		}
		if _, err := w.Write([]byte(files[name])); err != nil {
			panic(err)
		}
	}
	if err := zw.Close(); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}

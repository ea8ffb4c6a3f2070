package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var slidePartPattern = regexp.MustCompile(`(?i)^ppt/slides/slide(\d+)\.xml$`)

// ExtractPPTXText walks slides in presentation order and, within each slide, top-level
// shapes in their native order. Each text-bearing shape contributes its paragraphs
// joined by newlines, followed by a newline.
func ExtractPPTXText(data []byte) (string, error) {
	zr, err := openZip(data)
	if err != nil {
		return "", malformed("pptx", err)
	}
	slides, err := slideParts(zr)
	if err != nil {
		return "", malformed("pptx", err)
	}

	var out strings.Builder
	for _, name := range slides {
		raw, err := readZipFile(zr, name)
		if err != nil {
			return "", malformed("pptx", err)
		}
		shapes, err := slideShapeTexts(raw)
		if err != nil {
			return "", malformed("pptx", err)
		}
		for _, s := range shapes {
			out.WriteString(s)
			out.WriteString("\n")
		}
	}
	return out.String(), nil
}

// slideParts lists slide part names in presentation order. The order comes from
// ppt/presentation.xml; when that is absent the slide file numbers are used.
func slideParts(zr *zip.Reader) ([]string, error) {
	if ordered, err := presentationOrder(zr); err == nil && len(ordered) > 0 {
		return ordered, nil
	}

	type numbered struct {
		name string
		n    int
	}
	var found []numbered
	for _, f := range zr.File {
		m := slidePartPattern.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		n, _ := strconv.Atoi(m[1])
		found = append(found, numbered{name: f.Name, n: n})
	}
	if len(found) == 0 {
		if findZipFile(zr, "ppt/presentation.xml") == nil {
			return nil, errors.New("not a presentation: ppt/presentation.xml missing")
		}
		return nil, nil
	}
	sort.Slice(found, func(i, j int) bool { return found[i].n < found[j].n })

	names := make([]string, len(found))
	for i, f := range found {
		names[i] = f.name
	}
	return names, nil
}

type presentationXML struct {
	SlideIDs []struct {
		Attrs []xml.Attr `xml:",any,attr"`
	} `xml:"sldIdLst>sldId"`
}

type relationshipsXML struct {
	Relationships []struct {
		ID     string `xml:"Id,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

func presentationOrder(zr *zip.Reader) ([]string, error) {
	presRaw, err := readZipFile(zr, "ppt/presentation.xml")
	if err != nil {
		return nil, err
	}
	relsRaw, err := readZipFile(zr, "ppt/_rels/presentation.xml.rels")
	if err != nil {
		return nil, err
	}

	var pres presentationXML
	if err := xml.Unmarshal(presRaw, &pres); err != nil {
		return nil, err
	}
	var rels relationshipsXML
	if err := xml.Unmarshal(relsRaw, &rels); err != nil {
		return nil, err
	}

	targets := make(map[string]string, len(rels.Relationships))
	for _, r := range rels.Relationships {
		targets[r.ID] = r.Target
	}

	names := make([]string, 0, len(pres.SlideIDs))
	for _, s := range pres.SlideIDs {
		target, ok := targets[relationshipID(s.Attrs)]
		if !ok {
			return nil, errors.New("slide relationship not found")
		}
		names = append(names, resolvePartName("ppt", target))
	}
	return names, nil
}

// resolvePartName resolves a relationship target relative to the part's directory.
func resolvePartName(base, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Clean(path.Join(base, target))
}

// slideShapeTexts returns one entry per p:sp directly under p:spTree. Pictures, graphic
// frames and group shapes carry no text of their own.
func slideShapeTexts(raw []byte) ([]string, error) {
	dec := xml.NewDecoder(bytes.NewReader(raw))
	var (
		stack      []string
		shapes     []string
		paragraphs []string
		para       strings.Builder
		shapeDepth int
		inPara     bool
		sawTree    bool
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
			inShape := shapeDepth > 0
			switch {
			case t.Name.Local == "spTree":
				sawTree = true
			case !inShape && t.Name.Local == "sp" && parent == "spTree":
				shapeDepth = len(stack)
				paragraphs = paragraphs[:0]
			case inShape && t.Name.Local == "p" && parent == "txBody":
				inPara = true
				para.Reset()
			case inPara && t.Name.Local == "br":
				// Soft line break, kept distinct from a paragraph break.
				para.WriteString("\v")
			}
		case xml.CharData:
			if inPara && len(stack) > 0 && stack[len(stack)-1] == "t" {
				para.Write(t)
			}
		case xml.EndElement:
			switch {
			case inPara && t.Name.Local == "p":
				paragraphs = append(paragraphs, para.String())
				inPara = false
			case shapeDepth > 0 && len(stack) == shapeDepth:
				shapes = append(shapes, strings.Join(paragraphs, "\n"))
				shapeDepth = 0
			}
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if !sawTree {
		return nil, errors.New("slide has no shape tree")
	}
	return shapes, nil
}

// Package docx writes minimal Office Open XML word-processing documents.
//
// It covers exactly what the drafting agent's document tool needs: a
// centered heading followed by left-aligned body paragraphs at a fixed
// point size. It is not a general-purpose OOXML library.
package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"os"
	"strings"
)

const (
	contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

	relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

	documentHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`

	documentFooter = `</w:body></w:document>`
)

// Alignment controls horizontal paragraph alignment.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
)

// paragraph is a single block of the document body.
type paragraph struct {
	text      string
	alignment Alignment
	heading   bool
}

// Document accumulates paragraphs and serializes them as a .docx file.
type Document struct {
	paragraphs []paragraph
}

// New creates an empty document.
func New() *Document {
	return &Document{}
}

// AddHeading appends a centered level-1 heading.
func (d *Document) AddHeading(text string) {
	d.paragraphs = append(d.paragraphs, paragraph{
		text:      text,
		alignment: AlignCenter,
		heading:   true,
	})
}

// AddParagraph appends a left-aligned 12pt body paragraph. Line breaks in
// text produce separate paragraphs.
func (d *Document) AddParagraph(text string) {
	for _, line := range strings.Split(text, "\n") {
		d.paragraphs = append(d.paragraphs, paragraph{
			text:      line,
			alignment: AlignLeft,
		})
	}
}

// Save writes the document to path as a .docx archive.
func (d *Document) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("docx: create %q: %w", path, err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	parts := map[string]string{
		"[Content_Types].xml": contentTypesXML,
		"_rels/.rels":         relsXML,
		"word/document.xml":   d.documentXML(),
	}
	for _, name := range []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml"} {
		w, err := zw.Create(name)
		if err != nil {
			zw.Close()
			return fmt.Errorf("docx: write %q: %w", name, err)
		}
		if _, err := w.Write([]byte(parts[name])); err != nil {
			zw.Close()
			return fmt.Errorf("docx: write %q: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("docx: finalize archive: %w", err)
	}
	return nil
}

func (d *Document) documentXML() string {
	var b strings.Builder
	b.WriteString(documentHeader)
	for _, p := range d.paragraphs {
		b.WriteString(p.xml())
	}
	b.WriteString(documentFooter)
	return b.String()
}

func (p paragraph) xml() string {
	// Font sizes are half-points: 24 = 12pt body, 32 = 16pt heading.
	size := "24"
	bold := ""
	if p.heading {
		size = "32"
		bold = "<w:b/>"
	}

	var text strings.Builder
	xml.EscapeText(&text, []byte(p.text))

	return fmt.Sprintf(
		`<w:p><w:pPr><w:jc w:val="%s"/></w:pPr>`+
			`<w:r><w:rPr>%s<w:sz w:val="%s"/></w:rPr>`+
			`<w:t xml:space="preserve">%s</w:t></w:r></w:p>`,
		p.alignment, bold, size, text.String(),
	)
}

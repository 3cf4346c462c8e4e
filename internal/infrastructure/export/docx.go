// Package export renders offer documents to downloadable files.
package export

import (
	"bytes"
	"fmt"

	"palettepad/internal/domain/offerbuilder"
	"palettepad/internal/usecase/interfaces"

	"github.com/fumiama/go-docx"
)

const DocxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Run sizes in half-points.
const (
	titleSize    = "36"
	heading2Size = "28"
	heading3Size = "24"
)

// DocxExporter renders an offer document tree as an A4 Word document.
type DocxExporter struct{}

var _ interfaces.IDocumentExporter = DocxExporter{}

func NewDocxExporter() DocxExporter { return DocxExporter{} }

func (DocxExporter) ContentType() string { return DocxContentType }

func (DocxExporter) Export(doc offerbuilder.Document) ([]byte, error) {
	w := docx.New().WithDefaultTheme()
	for _, blk := range doc.Blocks {
		switch blk.Kind {
		case offerbuilder.BlockTitle:
			w.AddParagraph().Justification("center").AddText(blk.Text).Bold().Size(titleSize)
		case offerbuilder.BlockHeading2:
			w.AddParagraph().AddText(blk.Text).Bold().Size(heading2Size)
		case offerbuilder.BlockHeading3:
			w.AddParagraph().AddText(blk.Text).Bold().Size(heading3Size)
		case offerbuilder.BlockTable:
			addPriceTable(w, blk.Rows)
		default:
			w.AddParagraph().AddText(blk.Text)
		}
	}
	// the section properties must close the body
	w.WithA4Page()

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("export: write docx: %w", err)
	}
	return buf.Bytes(), nil
}

func addPriceTable(w *docx.Docx, rows []offerbuilder.TableRow) {
	if len(rows) == 0 {
		return
	}
	tbl := w.AddTable(len(rows), 2, 0, nil)
	for i, r := range rows {
		cells := tbl.TableRows[i].TableCells
		cells[0].AddParagraph().AddText(r.Left)
		cells[1].AddParagraph().Justification("end").AddText(r.Right)
	}
}

package offerbuilder

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// BlockKind identifies a node of an exported document.
type BlockKind int

const (
	BlockTitle BlockKind = iota
	BlockHeading2
	BlockHeading3
	BlockParagraph
	BlockTable
)

// Block is a heading, a paragraph or a two-column table.
type Block struct {
	Kind BlockKind
	Text string
	Rows []TableRow
}

type TableRow struct {
	Left  string
	Right string
}

// Document is the ordered tree handed to a document exporter.
type Document struct {
	Blocks []Block
}

func (d *Document) add(kind BlockKind, text string) {
	d.Blocks = append(d.Blocks, Block{Kind: kind, Text: text})
}

const (
	documentTitle = "ΠΡΟΣΦΟΡΑ ΕΡΓΑΣΙΑΣ"
	groupBreak    = "—"
	blankLine     = " "
)

// DocumentInput is everything BuildDocument needs from a session.
type DocumentInput struct {
	Header   Header
	Sections []AreaSection
	Totals   Totals
	VAT      VATConfig
	Date     time.Time
}

// BuildDocument lays out the narrative, notes, price tables and totals.
func BuildDocument(in DocumentInput) Document {
	var doc Document
	doc.add(BlockTitle, documentTitle)
	if in.Header.Customer != "" {
		doc.add(BlockParagraph, "Πελάτης: "+in.Header.Customer)
	}
	if in.Header.Project != "" {
		doc.add(BlockParagraph, "Έργο: "+in.Header.Project)
	}
	doc.add(BlockParagraph, "Ημερομηνία: "+in.Date.Format("02/01/2006"))
	doc.add(BlockParagraph, blankLine)

	for _, area := range in.Sections {
		doc.add(BlockHeading2, area.Title)
		for _, sub := range area.SubAreas {
			doc.add(BlockHeading3, sub.Title)
			if sub.Intro != "" {
				doc.add(BlockParagraph, sub.Intro)
			}
			for _, s := range sub.Sentences {
				doc.add(BlockParagraph, s)
			}
			doc.add(BlockParagraph, groupBreak)
		}
	}

	if note := strings.TrimSpace(in.Header.Note); note != "" {
		doc.add(BlockHeading2, "Σημείωση")
		for _, line := range strings.Split(note, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				doc.add(BlockParagraph, line)
			}
		}
		doc.add(BlockParagraph, groupBreak)
	}

	for _, area := range in.Sections {
		doc.add(BlockHeading2, "Τιμές — "+area.Title)
		for _, sub := range area.SubAreas {
			doc.add(BlockHeading3, sub.Title)
			rows := make([]TableRow, 0, len(sub.Prices))
			for _, p := range sub.Prices {
				rows = append(rows, TableRow{Left: "· " + p.Label, Right: FormatEuro(p.Amount)})
			}
			doc.Blocks = append(doc.Blocks, Block{Kind: BlockTable, Rows: rows})
			doc.add(BlockParagraph, blankLine)
		}
	}

	doc.add(BlockParagraph, blankLine)
	doc.add(BlockHeading3, "Υποσύνολο: "+FormatEuro(in.Totals.Subtotal))
	if in.VAT.Enabled {
		doc.add(BlockHeading3, fmt.Sprintf("ΦΠΑ %s%%: %s", formatRate(in.VAT.Rate), FormatEuro(in.Totals.VAT)))
	}
	doc.add(BlockHeading2, "Σύνολο: "+FormatEuro(in.Totals.Total))
	return doc
}

func FormatEuro(v float64) string {
	return fmt.Sprintf("€%.2f", v)
}

func formatRate(r float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", r), "0"), ".")
}

var unsafeFilenameChars = regexp.MustCompile(`[^\p{L}\p{N}\-_ ]`)

// ExportFilename derives the download name from the customer, then the
// project, keeping letters, digits, '-', '_' and spaces.
func ExportFilename(customer, project string) string {
	base := customer
	if base == "" {
		base = project
	}
	base = unsafeFilenameChars.ReplaceAllString(base, "")
	if base == "" {
		base = "offer"
	}
	return base + ".docx"
}

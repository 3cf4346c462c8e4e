package interfaces

import "palettepad/internal/domain/offerbuilder"

// IDocumentExporter renders an offer document to a downloadable file.
type IDocumentExporter interface {
	Export(doc offerbuilder.Document) ([]byte, error)
	ContentType() string
}

package export

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"palettepad/internal/domain/offerbuilder"

	"github.com/stretchr/testify/require"
)

func readPart(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(b)
	}
	t.Fatalf("part %s not found", name)
	return ""
}

func TestDocxExporter_Export(t *testing.T) {
	doc := offerbuilder.Document{Blocks: []offerbuilder.Block{
		{Kind: offerbuilder.BlockTitle, Text: "ΠΡΟΣΦΟΡΑ ΕΡΓΑΣΙΑΣ"},
		{Kind: offerbuilder.BlockHeading2, Text: "Εξωτερικοί χώροι"},
		{Kind: offerbuilder.BlockParagraph, Text: `Tom & "Jerry" <co>`},
		{Kind: offerbuilder.BlockTable, Rows: []offerbuilder.TableRow{{Left: "· Τρίψιμο", Right: "€5.00"}}},
	}}

	data, err := NewDocxExporter().Export(doc)
	require.NoError(t, err)

	for _, name := range []string{"[Content_Types].xml", "_rels/.rels", "word/styles.xml"} {
		require.NotEmpty(t, readPart(t, data, name))
	}

	body := readPart(t, data, "word/document.xml")
	require.Contains(t, body, "<w:b>")
	require.Contains(t, body, `<w:sz w:val="36">`)
	require.Contains(t, body, `<w:jc w:val="center"`)
	require.Contains(t, body, "ΠΡΟΣΦΟΡΑ ΕΡΓΑΣΙΑΣ")
	require.Contains(t, body, "Tom &amp; &#34;Jerry&#34; &lt;co&gt;")
	require.Contains(t, body, "<w:tbl>")
	require.Contains(t, body, "€5.00")
	require.Equal(t, 1, strings.Count(body, "<w:tr>"))
	require.Contains(t, body, "<w:sectPr")
}

func TestDocxExporter_ExportEmptyTableSkipped(t *testing.T) {
	doc := offerbuilder.Document{Blocks: []offerbuilder.Block{
		{Kind: offerbuilder.BlockHeading3, Text: "Σημειώσεις"},
		{Kind: offerbuilder.BlockTable},
	}}

	data, err := NewDocxExporter().Export(doc)
	require.NoError(t, err)

	body := readPart(t, data, "word/document.xml")
	require.Contains(t, body, `<w:sz w:val="24">`)
	require.NotContains(t, body, "<w:tbl>")
}

func TestDocxExporter_ContentType(t *testing.T) {
	require.Equal(t, DocxContentType, NewDocxExporter().ContentType())
}

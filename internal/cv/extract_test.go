package cv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractTextPlainPassthrough(t *testing.T) {
	text, warning := ExtractText("cv.txt", []byte("Jane Doe\nCustomer service agent"))
	require.Empty(t, warning)
	require.Equal(t, "Jane Doe\nCustomer service agent", text)
}

func TestExtractTextUnknownExtensionDropsInvalidUTF8(t *testing.T) {
	text, warning := ExtractText("cv.dat", []byte{'o', 'k', 0xff, 0xfe, '!'})
	require.Empty(t, warning)
	require.Equal(t, "ok!", text)
}

func TestExtractTextCorruptPDFDegrades(t *testing.T) {
	text, warning := ExtractText("cv.pdf", []byte("this is not a pdf"))
	require.Empty(t, text)
	require.Contains(t, warning, "cv.pdf")
}

func TestExtractTextCorruptDocxDegrades(t *testing.T) {
	text, warning := ExtractText("cv.docx", []byte("this is not a zip archive"))
	require.Empty(t, text)
	require.NotEmpty(t, warning)
}

func TestXMLTagStripping(t *testing.T) {
	raw := `<w:p><w:r><w:t>Customer</w:t></w:r><w:r><w:t>service</w:t></w:r></w:p>`
	stripped := xmlTagRe.ReplaceAllString(raw, " ")
	require.Contains(t, stripped, "Customer")
	require.Contains(t, stripped, "service")
	require.False(t, strings.Contains(stripped, "<"))
}

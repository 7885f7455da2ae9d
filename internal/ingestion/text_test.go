package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportedType(t *testing.T) {
	assert.True(t, SupportedType(MimePDF))
	assert.True(t, SupportedType(MimeDOCX))
	assert.False(t, SupportedType("text/plain"))
	assert.False(t, SupportedType("image/png"))
}

func TestExtractText_UnsupportedType(t *testing.T) {
	_, err := ExtractText("text/markdown", []byte("# resume"))
	require.Error(t, err)

	var unsupported *ErrUnsupportedFileType
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "text/markdown", unsupported.Mime)
}

func TestExtractText_CorruptPDF(t *testing.T) {
	_, err := ExtractText(MimePDF, []byte("not a pdf at all"))
	assert.Error(t, err)
}

func TestExtractText_CorruptDocx(t *testing.T) {
	_, err := ExtractText(MimeDOCX, []byte("not a zip archive"))
	assert.Error(t, err)
}

package ocr

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/filingscan/internal/config"
	"github.com/sells-group/filingscan/internal/model"
)

func configFor(provider string) config.OCRConfig {
	return config.OCRConfig{Provider: provider}
}

type stubExtractor struct {
	text string
	err  error
}

func (s stubExtractor) ExtractText(ctx context.Context, pdfPath string) (string, error) {
	return s.text, s.err
}

func TestExtractPages_SplitsOnFormFeed(t *testing.T) {
	pages, err := ExtractPages(context.Background(), stubExtractor{text: "page one\fpage two\f"}, "doc.pdf")
	require.NoError(t, err)

	assert.Equal(t, []model.PageText{
		{Page: 1, Text: "page one"},
		{Page: 2, Text: "page two"},
	}, pages)
}

func TestExtractPages_SinglePageNoDelimiter(t *testing.T) {
	pages, err := ExtractPages(context.Background(), stubExtractor{text: "only page"}, "doc.pdf")
	require.NoError(t, err)

	require.Len(t, pages, 1)
	assert.Equal(t, 1, pages[0].Page)
}

func TestExtractPages_KeepsInteriorEmptyPages(t *testing.T) {
	pages, err := ExtractPages(context.Background(), stubExtractor{text: "a\f\fb\f"}, "doc.pdf")
	require.NoError(t, err)

	require.Len(t, pages, 3)
	assert.Equal(t, "", pages[1].Text)
	assert.Equal(t, 3, pages[2].Page)
}

func TestExtractPages_PropagatesError(t *testing.T) {
	_, err := ExtractPages(context.Background(), stubExtractor{err: eris.New("boom")}, "doc.pdf")
	assert.Error(t, err)
}

func TestNewExtractor_LocalProvider(t *testing.T) {
	ex, err := NewExtractor(configFor("local"))
	require.NoError(t, err)
	assert.IsType(t, &PdfToText{}, ex)

	ex, err = NewExtractor(configFor(""))
	require.NoError(t, err)
	assert.IsType(t, &PdfToText{}, ex)
}

func TestNewExtractor_UnknownProvider(t *testing.T) {
	_, err := NewExtractor(configFor("cloud"))
	assert.Error(t, err)
}

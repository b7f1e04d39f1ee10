package cbic

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gst-rates/models"
	"gst-rates/utils"
)

const ratesPage = `<!DOCTYPE html>
<html><body>
<h1>GST Goods and Services Rates</h1>
<table id="goods_table">
  <thead>
    <tr><th>S. No.</th><th>Schedule</th><th>Chapter/Heading</th><th>Description</th><th>CGST</th><th>SGST</th><th>IGST</th><th>Condition</th></tr>
  </thead>
  <tbody>
    <tr><td>1</td><td>I</td><td>0101, 01012100</td><td>Live&nbsp;horses,
        asses,   mules</td><td>2.5%</td><td>2.5%</td><td>5%</td><td>-</td></tr>
    <tr></tr>
    <tr><th>Section II</th></tr>
    <tr><td>2</td><td>I</td><td> </td><td>&nbsp;</td><td></td><td></td><td></td></tr>
    <tr><td>3</td><td>II</td><td>9999</td><td>[Omitted]</td><td></td><td></td><td></td></tr>
    <tr><td>4</td><td>II</td><td>0402</td><td>Milk</td></tr>
    <tr><td>5</td><td>III</td></tr>
  </tbody>
</table>
</body></html>`

func newTestExtractor(selector string) *Extractor {
	return NewExtractor(selector, utils.NewDiscardLogger())
}

func TestExtractRows(t *testing.T) {
	records, err := newTestExtractor("").Extract(strings.NewReader(ratesPage))
	require.NoError(t, err)

	want := []models.RawGoodsRateRecord{
		{ChapterHeading: "0101, 01012100", Description: "Live horses, asses, mules", CGSTRate: "2.5%", SGSTRate: "2.5%", IGSTRate: "5%"},
		{ChapterHeading: "9999", Description: "[Omitted]"},
		{ChapterHeading: "0402", Description: "Milk"},
	}
	assert.Equal(t, want, records)
}

func TestExtractEveryRecordHasContent(t *testing.T) {
	records, err := newTestExtractor("").Extract(strings.NewReader(ratesPage))
	require.NoError(t, err)

	for i, r := range records {
		assert.True(t, r.HasContent(), "record %d is empty", i)
	}
}

func TestExtractTableNotFound(t *testing.T) {
	html := `<html><body><table id="services_table"><tbody><tr><td>1</td></tr></tbody></table></body></html>`

	records, err := newTestExtractor("").Extract(strings.NewReader(html))

	assert.Nil(t, records)
	assert.True(t, errors.Is(err, ErrTableNotFound), "got %v", err)
	assert.EqualError(t, err, "table not found")
}

func TestExtractEmptyTableReturnsEmptySlice(t *testing.T) {
	html := `<table id="goods_table"><tbody></tbody></table>`

	records, err := newTestExtractor("").Extract(strings.NewReader(html))

	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestExtractCustomSelector(t *testing.T) {
	html := `<table class="rates"><tbody>
		<tr><td>1</td><td>I</td><td>8471</td><td>Computers</td><td>9%</td><td>9%</td><td>18%</td></tr>
	</tbody></table>`

	records, err := newTestExtractor("table.rates").Extract(strings.NewReader(html))

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "18%", records[0].IGSTRate)
}

func TestExtractFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.html")
	require.NoError(t, os.WriteFile(path, []byte(ratesPage), 0o644))

	records, err := newTestExtractor("").ExtractFile(path)

	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestExtractFileMissing(t *testing.T) {
	_, err := newTestExtractor("").ExtractFile(filepath.Join(t.TempDir(), "missing.html"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"  Live horses  ", "Live horses"},
		{"a\n\t b", "a b"},
		{"  ", ""},
		{"", ""},
		{"2.5%", "2.5%"},
	}

	for _, tt := range tests {
		if got := CleanText(tt.raw); got != tt.want {
			t.Errorf("CleanText(%q) = %q; want %q", tt.raw, got, tt.want)
		}
	}
}

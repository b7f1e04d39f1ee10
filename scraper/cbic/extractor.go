// Package cbic extracts the goods-rate table from the CBIC "GST Goods and
// Services Rates" page.
package cbic

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"gst-rates/models"
	"gst-rates/utils"
)

// DefaultTableSelector is the anchor of the goods-rate table on the CBIC page.
const DefaultTableSelector = "#goods_table"

// Column positions inside a goods table row. Other columns are ignored.
const (
	colChapterHeading = 2
	colDescription    = 3
	colCGST           = 4
	colSGST           = 5
	colIGST           = 6
)

// ErrTableNotFound is returned when the page has no element matching the table selector.
var ErrTableNotFound = errors.New("table not found")

// Extractor turns the rates page HTML into raw table records.
type Extractor struct {
	selector string
	logger   *utils.Logger
}

// NewExtractor creates an Extractor for the table matched by selector.
// An empty selector falls back to DefaultTableSelector.
func NewExtractor(selector string, logger *utils.Logger) *Extractor {
	if strings.TrimSpace(selector) == "" {
		selector = DefaultTableSelector
	}
	return &Extractor{selector: selector, logger: logger}
}

// ExtractFile reads the saved HTML page at path and extracts its records.
func (e *Extractor) ExtractFile(path string) ([]models.RawGoodsRateRecord, error) {
	html, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("extract: read %q: %w", path, err)
	}
	return e.Extract(bytes.NewReader(html))
}

// Extract parses the HTML document and returns one record per body row of
// the goods table, in document order. Rows without cells, or whose fields are
// all empty after cleanup, are dropped.
func (e *Extractor) Extract(r io.Reader) ([]models.RawGoodsRateRecord, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("extract: parse html: %w", err)
	}

	table := doc.Find(e.selector).First()
	if table.Length() == 0 {
		return nil, ErrTableNotFound
	}

	records := make([]models.RawGoodsRateRecord, 0)
	dropped := 0

	table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td").Map(func(_ int, cell *goquery.Selection) string {
			return CleanText(cell.Text())
		})
		if len(cells) == 0 {
			dropped++
			return
		}

		record := models.RawGoodsRateRecord{
			ChapterHeading: cellAt(cells, colChapterHeading),
			Description:    cellAt(cells, colDescription),
			CGSTRate:       cellAt(cells, colCGST),
			SGSTRate:       cellAt(cells, colSGST),
			IGSTRate:       cellAt(cells, colIGST),
		}
		if !record.HasContent() {
			dropped++
			return
		}
		records = append(records, record)
	})

	e.logger.Debug("[extract] %d rows kept, %d dropped", len(records), dropped)
	return records, nil
}

// CleanText replaces non-breaking spaces, collapses whitespace runs to a
// single space and trims the ends.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.Join(strings.Fields(s), " ")
}

func cellAt(cells []string, i int) string {
	if i < len(cells) {
		return cells[i]
	}
	return ""
}

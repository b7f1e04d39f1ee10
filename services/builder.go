package services

import (
	"fmt"
	"strings"

	"gst-rates/hsn"
	"gst-rates/models"
	"gst-rates/storage"
	"gst-rates/utils"
)

// BuildResult is the outcome of one build: the lookup table plus the counts
// needed for reporting.
type BuildResult struct {
	Table          *hsn.Table
	RecordsRead    int
	RecordsSkipped int
}

// Builder transforms raw goods-rate records into the HSN lookup table.
type Builder struct {
	logger *utils.Logger
}

// NewBuilder creates a Builder with the given logger.
func NewBuilder(logger *utils.Logger) *Builder {
	return &Builder{logger: logger}
}

// Load reads every record from r and builds the table.
func (b *Builder) Load(r storage.RecordReader) (*BuildResult, error) {
	raw, err := r.ReadRecords()
	if err != nil {
		return nil, fmt.Errorf("builder: load records: %w", err)
	}
	return b.Build(raw), nil
}

// Build normalizes codes, parses rates and resolves duplicate codes.
//
// A record is skipped when its description is empty or marked omitted, or
// when its chapter cell yields no code of at least hsn.MinCodeLength.
// When a code appears more than once, a later entry replaces the kept one only
// if its Score is strictly higher, so ties keep the first-seen entry.
func (b *Builder) Build(raw []models.RawGoodsRateRecord) *BuildResult {
	entries := make(map[string]models.HSNCode)
	order := make([]string, 0, len(raw))
	skipped := 0

	for _, r := range raw {
		description := strings.TrimSpace(r.Description)
		if description == "" || hsn.IsOmitted(description) {
			b.logger.Debug("[builder] Skipping %q: no usable description", r.ChapterHeading)
			skipped++
			continue
		}

		codes := hsn.SplitCodes(r.ChapterHeading)
		if len(codes) == 0 {
			b.logger.Debug("[builder] Skipping %q: no code of %d+ characters", r.ChapterHeading, hsn.MinCodeLength)
			skipped++
			continue
		}

		cgst := hsn.ParseRate(r.CGSTRate)
		sgst := hsn.ParseRate(r.SGSTRate)
		igst := hsn.ParseRate(r.IGSTRate)

		for _, code := range codes {
			entry := models.HSNCode{
				Code:        code,
				Description: description,
				CGST:        cgst,
				SGST:        sgst,
				IGST:        igst,
			}

			existing, seen := entries[code]
			if !seen {
				entries[code] = entry
				order = append(order, code)
				continue
			}
			if entry.Score() > existing.Score() {
				b.logger.Debug("[builder] %s: replacing %.2f%% entry with %.2f%% entry", code, existing.IGST, entry.IGST)
				entries[code] = entry
			}
		}
	}

	codes := make([]models.HSNCode, 0, len(order))
	for _, code := range order {
		codes = append(codes, entries[code])
	}

	result := &BuildResult{
		Table:          hsn.NewTable(codes),
		RecordsRead:    len(raw),
		RecordsSkipped: skipped,
	}

	b.logger.Info("[builder] Built %d HSN codes from %d records (skipped %d)",
		result.Table.Len(), result.RecordsRead, result.RecordsSkipped)
	return result
}

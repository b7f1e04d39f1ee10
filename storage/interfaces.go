package storage

import (
	"context"

	"gst-rates/models"
)

// RecordWriter persists raw extracted table rows.
type RecordWriter interface {
	WriteRecords(records []models.RawGoodsRateRecord) error
}

// RecordReader loads raw table rows back for the lookup builder.
type RecordReader interface {
	ReadRecords() ([]models.RawGoodsRateRecord, error)
}

// CodeWriter is the interface any export backend for the built HSN table must satisfy.
type CodeWriter interface {
	WriteCodes(ctx context.Context, codes []models.HSNCode) error
	Close() error
}

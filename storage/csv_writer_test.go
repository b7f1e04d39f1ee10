package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gst-rates/models"
)

func TestCSVWriterWritesCodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "hsn_codes.csv")

	w, err := NewCSVWriter(path)
	require.NoError(t, err)

	err = w.WriteCodes(context.Background(), []models.HSNCode{
		{Code: "0101", Description: "Live horses, asses", CGST: 2.5, SGST: 2.5, IGST: 5},
		{Code: "0401", Description: "Milk"},
	})
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := "code,description,cgst,sgst,igst,cess\n" +
		"0101,\"Live horses, asses\",2.5,2.5,5,0\n" +
		"0401,Milk,0,0,0,0\n"
	assert.Equal(t, want, string(data))
}

func TestCSVWriterImplementsCodeWriter(t *testing.T) {
	var _ CodeWriter = (*CSVWriter)(nil)
	var _ CodeWriter = (*PostgresWriter)(nil)
	var _ RecordWriter = (*JSONStore)(nil)
	var _ RecordReader = (*JSONStore)(nil)
}

package hsn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gst-rates/hsn"
)

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"already normalized", "01012100", "01012100"},
		{"spaces", "0101 21 00", "01012100"},
		{"punctuation", "[0101.21-00]", "01012100"},
		{"lowercase letters", "ch84a", "CH84A"},
		{"non-ascii dropped", "0101 é21", "010121"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, hsn.NormalizeCode(tt.input))
		})
	}
}

func TestNormalizeCodeIdempotent(t *testing.T) {
	for _, input := range []string{"0101, 0102", "ch 84a", " 9999 ", "ab-12.cd"} {
		once := hsn.NormalizeCode(input)
		assert.Equal(t, once, hsn.NormalizeCode(once), "input %q", input)
	}
}

func TestSplitCodes(t *testing.T) {
	tests := []struct {
		name     string
		cell     string
		expected []string
	}{
		{"two codes", "0101, 01012100", []string{"0101", "01012100"}},
		{"short fragments dropped", "01, 0102, 12", []string{"0102"}},
		{"trailing comma", "0401,", []string{"0401"}},
		{"only fragments", "1, 23, 456", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hsn.SplitCodes(tt.cell)
			assert.Equal(t, tt.expected, got)
			for _, code := range got {
				assert.GreaterOrEqual(t, len(code), hsn.MinCodeLength)
			}
		})
	}
}

func TestParseRate(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"Nil", 0},
		{"nil", 0},
		{" NIL ", 0},
		{"", 0},
		{"   ", 0},
		{"18%", 18},
		{"5.5", 5.5},
		{"2.5%", 2.5},
		{"abc", 0},
		{"%", 0},
		{".", 0},
		{"6%*", 6},
		{"0.125", 0.125},
		{"1.5.2", 1.5},
	}

	for _, tt := range tests {
		got := hsn.ParseRate(tt.raw)
		if got != tt.want {
			t.Errorf("ParseRate(%q) = %v; want %v", tt.raw, got, tt.want)
		}
	}
}

func TestIsOmitted(t *testing.T) {
	tests := []struct {
		description string
		expected    bool
	}{
		{"[Omitted]", true},
		{"[omitted vide notification]", true},
		{"[OMITTED", true},
		{"Omitted", true},
		{"  [Omitted]", true},
		{"Live horses", false},
		{"Horses [Omitted]", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, hsn.IsOmitted(tt.description), "IsOmitted(%q)", tt.description)
	}
}

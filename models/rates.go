package models

import "unicode/utf8"

// RawGoodsRateRecord is one row of the government goods-rate table, exactly as
// extracted from the HTML page. It is persisted as JSON before any parsing.
type RawGoodsRateRecord struct {
	ChapterHeading string `json:"chapterHeading"`
	Description    string `json:"description"`
	CGSTRate       string `json:"cgstRate"`
	SGSTRate       string `json:"sgstRate"`
	IGSTRate       string `json:"igstRate"`
}

// HasContent reports whether at least one field is non-empty.
func (r RawGoodsRateRecord) HasContent() bool {
	return r.ChapterHeading != "" || r.Description != "" ||
		r.CGSTRate != "" || r.SGSTRate != "" || r.IGSTRate != ""
}

// HSNCode is the normalized lookup entry for a single HSN code.
type HSNCode struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	CGST        float64 `json:"cgst"`
	SGST        float64 `json:"sgst"`
	IGST        float64 `json:"igst"`
	Cess        float64 `json:"cess"`
}

// Score ranks competing entries for the same code: a non-zero rate with a
// fuller description wins.
func (h HSNCode) Score() float64 {
	return (h.CGST + h.SGST + h.IGST) * float64(utf8.RuneCountInString(h.Description))
}

// State is an Indian state with its two-digit GST state code.
type State struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// RateSplit holds the percentages that apply to one invoice line.
// Intrastate supplies carry CGST+SGST, interstate supplies carry IGST only.
type RateSplit struct {
	InterState bool
	CGST       float64
	SGST       float64
	IGST       float64
	Cess       float64
}

// Total returns the combined percentage.
func (s RateSplit) Total() float64 {
	return s.CGST + s.SGST + s.IGST + s.Cess
}

// SlabCount is the number of codes that share one IGST rate.
type SlabCount struct {
	Rate  float64
	Count int
}

// RateTableSummary holds statistics over a built HSN table.
type RateTableSummary struct {
	RecordsRead    int
	RecordsSkipped int
	TotalCodes     int
	ZeroRated      int
	Slabs          []SlabCount
	HighestRated   *HSNCode
}

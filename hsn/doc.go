// Package hsn holds the HSN code lookup table and the static reference data
// (units of measure, transport modes, Indian states) used by invoice forms.
//
// Codes are normalized to uppercase ASCII alphanumerics before any lookup so
// user input such as "0101 21-00" resolves the same entry as "01012100".
package hsn

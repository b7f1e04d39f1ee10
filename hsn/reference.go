package hsn

import (
	"errors"
	"regexp"
	"strings"

	"gst-rates/models"
)

// ErrInvalidGSTIN is returned when a GSTIN does not have the 15-character shape.
var ErrInvalidGSTIN = errors.New("invalid GSTIN")

// gstinPattern: state code, PAN (5 letters, 4 digits, 1 letter), entity number,
// the fixed "Z", and a check character. The check character is not verified.
var gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

var uomOptions = []string{"MTS", "KGS", "NOS", "PCS", "TONS", "QTLS", "BOXES", "BAGS"}

var transportModes = []string{"By Lorry", "By Road", "By Rail", "By Air", "By Ship"}

var indianStates = []models.State{
	{Name: "Andhra Pradesh", Code: "37"},
	{Name: "Arunachal Pradesh", Code: "12"},
	{Name: "Assam", Code: "18"},
	{Name: "Bihar", Code: "10"},
	{Name: "Chhattisgarh", Code: "22"},
	{Name: "Goa", Code: "30"},
	{Name: "Gujarat", Code: "24"},
	{Name: "Haryana", Code: "06"},
	{Name: "Himachal Pradesh", Code: "02"},
	{Name: "Jharkhand", Code: "20"},
	{Name: "Karnataka", Code: "29"},
	{Name: "Kerala", Code: "32"},
	{Name: "Madhya Pradesh", Code: "23"},
	{Name: "Maharashtra", Code: "27"},
	{Name: "Manipur", Code: "14"},
	{Name: "Meghalaya", Code: "17"},
	{Name: "Mizoram", Code: "15"},
	{Name: "Nagaland", Code: "13"},
	{Name: "Odisha", Code: "21"},
	{Name: "Punjab", Code: "03"},
	{Name: "Rajasthan", Code: "08"},
	{Name: "Sikkim", Code: "11"},
	{Name: "Tamil Nadu", Code: "33"},
	{Name: "Telangana", Code: "36"},
	{Name: "Tripura", Code: "16"},
	{Name: "Uttar Pradesh", Code: "09"},
	{Name: "Uttarakhand", Code: "05"},
	{Name: "West Bengal", Code: "19"},
}

var (
	statesByCode = make(map[string]models.State, len(indianStates))
	statesByName = make(map[string]models.State, len(indianStates))
)

func init() {
	for _, s := range indianStates {
		statesByCode[s.Code] = s
		statesByName[strings.ToLower(s.Name)] = s
	}
}

// UOMOptions returns the unit-of-measure choices for invoice lines.
func UOMOptions() []string {
	return append([]string(nil), uomOptions...)
}

// TransportModes returns the transport mode choices for invoices.
func TransportModes() []string {
	return append([]string(nil), transportModes...)
}

// IndianStates returns the state name/code pairs.
func IndianStates() []models.State {
	return append([]models.State(nil), indianStates...)
}

// StateByCode returns the state for a GST state code. Single-digit codes are
// zero-padded, so "6" finds Haryana.
func StateByCode(code string) (models.State, bool) {
	s, ok := statesByCode[padStateCode(code)]
	return s, ok
}

// StateByName finds a state by name, ignoring case and surrounding spaces.
func StateByName(name string) (models.State, bool) {
	s, ok := statesByName[strings.ToLower(strings.TrimSpace(name))]
	return s, ok
}

// StateCodeFromGSTIN returns the two-digit state prefix of a GSTIN.
func StateCodeFromGSTIN(gstin string) (string, error) {
	gstin = strings.ToUpper(strings.TrimSpace(gstin))
	if !gstinPattern.MatchString(gstin) {
		return "", ErrInvalidGSTIN
	}
	return gstin[:2], nil
}

// IsInterState reports whether a supply crosses state lines. When either
// state is unknown the supply is treated as intrastate.
func IsInterState(supplierStateCode, placeOfSupplyCode string) bool {
	from := padStateCode(supplierStateCode)
	to := padStateCode(placeOfSupplyCode)
	if from == "" || to == "" {
		return false
	}
	return from != to
}

// SplitRates returns the percentages that apply to a line item for code.
func SplitRates(code models.HSNCode, interState bool) models.RateSplit {
	if interState {
		return models.RateSplit{InterState: true, IGST: code.IGST, Cess: code.Cess}
	}
	return models.RateSplit{CGST: code.CGST, SGST: code.SGST, Cess: code.Cess}
}

func padStateCode(code string) string {
	code = strings.TrimSpace(code)
	if len(code) == 1 {
		return "0" + code
	}
	return code
}

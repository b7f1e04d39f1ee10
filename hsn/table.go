package hsn

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"gst-rates/models"
)

// Table is an immutable, code-sorted HSN lookup table with a code index.
type Table struct {
	codes  []models.HSNCode
	byCode map[string]models.HSNCode
}

// NewTable sorts codes with locale-aware comparison and indexes them by code.
// If the same code appears more than once the first occurrence is kept.
func NewTable(codes []models.HSNCode) *Table {
	t := &Table{
		codes:  make([]models.HSNCode, 0, len(codes)),
		byCode: make(map[string]models.HSNCode, len(codes)),
	}

	for _, c := range codes {
		if _, dup := t.byCode[c.Code]; dup {
			continue
		}
		t.byCode[c.Code] = c
		t.codes = append(t.codes, c)
	}

	// A Collator is not safe for concurrent use, so each table gets its own.
	col := collate.New(language.English)
	sort.SliceStable(t.codes, func(i, j int) bool {
		return col.CompareString(t.codes[i].Code, t.codes[j].Code) < 0
	})

	return t
}

// Len returns the number of codes in the table.
func (t *Table) Len() int {
	return len(t.codes)
}

// Codes returns a copy of the sorted table.
func (t *Table) Codes() []models.HSNCode {
	out := make([]models.HSNCode, len(t.codes))
	copy(out, t.codes)
	return out
}

// Index returns a copy of the code-keyed lookup map.
func (t *Table) Index() map[string]models.HSNCode {
	out := make(map[string]models.HSNCode, len(t.byCode))
	for k, v := range t.byCode {
		out[k] = v
	}
	return out
}

// Lookup normalizes code and returns the matching entry.
func (t *Table) Lookup(code string) (models.HSNCode, bool) {
	entry, ok := t.byCode[NormalizeCode(code)]
	return entry, ok
}

// Search returns entries for an autocomplete box: code-prefix matches first,
// then entries whose description contains the query. Both groups keep table
// order. A limit of zero or less returns every match.
func (t *Table) Search(query string, limit int) []models.HSNCode {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	codePrefix := NormalizeCode(query)
	needle := strings.ToLower(query)

	var byCode, byDescription []models.HSNCode
	for _, entry := range t.codes {
		switch {
		case codePrefix != "" && strings.HasPrefix(entry.Code, codePrefix):
			byCode = append(byCode, entry)
		case strings.Contains(strings.ToLower(entry.Description), needle):
			byDescription = append(byDescription, entry)
		}
	}

	results := append(byCode, byDescription...)
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

package services

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gst-rates/models"
	"gst-rates/utils"
)

type SummaryService struct {
	logger *utils.Logger
	out    io.Writer
}

// NewSummaryService creates a SummaryService printing to stdout.
func NewSummaryService(logger *utils.Logger) *SummaryService {
	return &SummaryService{logger: logger, out: os.Stdout}
}

// WithOutput redirects Print.
func (s *SummaryService) WithOutput(w io.Writer) *SummaryService {
	s.out = w
	return s
}

func (s *SummaryService) Generate(result *BuildResult) *models.RateTableSummary {
	summary := &models.RateTableSummary{}
	if result == nil {
		return summary
	}

	summary.RecordsRead = result.RecordsRead
	summary.RecordsSkipped = result.RecordsSkipped

	codes := result.Table.Codes()
	summary.TotalCodes = len(codes)

	slabs := make(map[float64]int)
	for i := range codes {
		c := codes[i]
		if c.CGST+c.SGST+c.IGST == 0 {
			summary.ZeroRated++
		}
		slabs[c.IGST]++
		if summary.HighestRated == nil || c.IGST > summary.HighestRated.IGST {
			summary.HighestRated = &codes[i]
		}
	}

	for rate, count := range slabs {
		summary.Slabs = append(summary.Slabs, models.SlabCount{Rate: rate, Count: count})
	}
	sort.Slice(summary.Slabs, func(i, j int) bool {
		return summary.Slabs[i].Rate < summary.Slabs[j].Rate
	})

	return summary
}

func (s *SummaryService) Print(r *models.RateTableSummary) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)
	w := s.out

	fmt.Fprintf(w, "\n\033[1;35m%s\033[0m\n", sep)
	fmt.Fprintf(w, "\033[1;35m  HSN RATE TABLE SUMMARY\033[0m\n")
	fmt.Fprintf(w, "\033[1;35m%s\033[0m\n\n", sep)

	fmt.Fprintf(w, "\033[1;33m  Overview\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	fmt.Fprintf(w, "  Records read     : \033[1m%d\033[0m\n", r.RecordsRead)
	fmt.Fprintf(w, "  Records skipped  : \033[1m%d\033[0m\n", r.RecordsSkipped)
	fmt.Fprintf(w, "  HSN codes        : \033[1m%d\033[0m\n", r.TotalCodes)
	fmt.Fprintf(w, "  Zero rated codes : \033[1m%d\033[0m\n", r.ZeroRated)
	fmt.Fprintln(w)

	if r.HighestRated != nil {
		fmt.Fprintf(w, "\033[1;33m  Highest IGST\033[0m\n")
		fmt.Fprintf(w, "  %s\n", thin)
		fmt.Fprintf(w, "  %s  %s\n", r.HighestRated.Code, truncate(r.HighestRated.Description, 40))
		fmt.Fprintf(w, "  IGST : \033[1;31m%s%%\033[0m\n", FormatPercent(r.HighestRated.IGST))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "\033[1;33m  Codes by IGST slab\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	if len(r.Slabs) == 0 {
		fmt.Fprintf(w, "  No codes\n")
	} else {
		for _, slab := range r.Slabs {
			fmt.Fprintf(w, "  %8s%%  %6d\n", FormatPercent(slab.Rate), slab.Count)
		}
	}

	fmt.Fprintf(w, "\n\033[1;35m%s\033[0m\n\n", sep)
}

// FormatPercent renders a rate without trailing zeros, e.g. 2.5 or 18.
func FormatPercent(f float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.3f", f), "0"), ".")
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gst-rates/hsn"
	"gst-rates/models"
	"gst-rates/services"
)

func newLookupCommand(a *app) *cobra.Command {
	var (
		inputPath string
		from      string
		to        string
	)

	cmd := &cobra.Command{
		Use:   "lookup CODE...",
		Short: "Look up HSN codes and the rates that apply to them",
		Long: `Normalizes each code, prints its entry and, when both --from and --to are
given, the CGST/SGST or IGST split for that supply. States may be given as a
GST state code, a state name or a GSTIN.

Example:
  gst-rates lookup 0101 "8471 30"
  gst-rates lookup 8471 --from 27 --to "Karnataka"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var split *bool
			if from != "" || to != "" {
				inter, err := resolveInterState(from, to)
				if err != nil {
					return err
				}
				split = &inter
			}

			result, err := loadTable(a, inputPath)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			missing := 0
			for _, arg := range args {
				entry, ok := result.Table.Lookup(arg)
				if !ok {
					fmt.Fprintf(tw, "%s\tnot found\n", hsn.NormalizeCode(arg))
					missing++
					continue
				}
				writeEntry(tw, entry)
				if split != nil {
					writeSplit(tw, hsn.SplitRates(entry, *split))
				}
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			if missing > 0 {
				return fmt.Errorf("lookup: %d of %d codes not found", missing, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", a.cfg.RatesJSONPath, "extracted JSON file to read")
	cmd.Flags().StringVar(&from, "from", "", "supplier state (code, name or GSTIN)")
	cmd.Flags().StringVar(&to, "to", "", "place of supply (code, name or GSTIN)")

	return cmd
}

func newSearchCommand(a *app) *cobra.Command {
	var (
		inputPath string
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search HSN codes by code prefix or description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := loadTable(a, inputPath)
			if err != nil {
				return err
			}

			matches := result.Table.Search(strings.Join(args, " "), limit)
			if len(matches) == 0 {
				fmt.Fprintln(a.out, "No matching HSN codes")
				return nil
			}

			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			for _, entry := range matches {
				writeEntry(tw, entry)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", a.cfg.RatesJSONPath, "extracted JSON file to read")
	const defaultLimit = 20
	cmd.Flags().IntVarP(&limit, "limit", "n", defaultLimit, "maximum number of results (0 for all)")

	return cmd
}

// resolveInterState decides the tax split from the two state arguments.
func resolveInterState(from, to string) (bool, error) {
	if from == "" || to == "" {
		return false, fmt.Errorf("lookup: --from and --to must be given together")
	}
	fromCode, err := resolveState(from)
	if err != nil {
		return false, err
	}
	toCode, err := resolveState(to)
	if err != nil {
		return false, err
	}
	return hsn.IsInterState(fromCode, toCode), nil
}

// resolveState accepts a state code, a state name or a GSTIN.
func resolveState(value string) (string, error) {
	if s, ok := hsn.StateByCode(value); ok {
		return s.Code, nil
	}
	if s, ok := hsn.StateByName(value); ok {
		return s.Code, nil
	}
	code, err := hsn.StateCodeFromGSTIN(value)
	if err != nil {
		return "", fmt.Errorf("lookup: unknown state %q", value)
	}
	if _, ok := hsn.StateByCode(code); !ok {
		return "", fmt.Errorf("lookup: GSTIN %q has unknown state code %s", value, code)
	}
	return code, nil
}

func writeEntry(w io.Writer, e models.HSNCode) {
	fmt.Fprintf(w, "%s\t%s\tCGST %s%%\tSGST %s%%\tIGST %s%%\n",
		e.Code, e.Description,
		services.FormatPercent(e.CGST), services.FormatPercent(e.SGST), services.FormatPercent(e.IGST))
}

func writeSplit(w io.Writer, s models.RateSplit) {
	if s.InterState {
		fmt.Fprintf(w, "\tinterstate: IGST %s%%\t\t\t\n", services.FormatPercent(s.IGST))
		return
	}
	fmt.Fprintf(w, "\tintrastate: CGST %s%% + SGST %s%%\t\t\t\n",
		services.FormatPercent(s.CGST), services.FormatPercent(s.SGST))
}

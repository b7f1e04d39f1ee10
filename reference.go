package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gst-rates/hsn"
)

func newReferenceCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reference",
		Short: "Print units of measure, transport modes and state codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(a.out, "Units of measure: %s\n", strings.Join(hsn.UOMOptions(), ", "))
			fmt.Fprintf(a.out, "Transport modes:  %s\n", strings.Join(hsn.TransportModes(), ", "))
			fmt.Fprintln(a.out, "States:")
			for _, s := range hsn.IndianStates() {
				fmt.Fprintf(a.out, "  %s  %s\n", s.Code, s.Name)
			}
			return nil
		},
	}
}

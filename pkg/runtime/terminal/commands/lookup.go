package commands

import (
	"fmt"

	"github.com/de-tools/destiny-report/pkg/adapters"
	"github.com/de-tools/destiny-report/pkg/models/domain"
	"github.com/spf13/cobra"
)

func NewLookupCmd(printer LookupPrinter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Show reference table entries",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "planet NAME",
		Short: "Gemstone, mantra, donation and mindset entries of a planet",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			info, ok := adapters.MapPlanetToAPI(domain.Planet(args[0]))
			if !ok {
				return fmt.Errorf("unknown planet %q", args[0])
			}
			return printer.Planet(info)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "nakshatra NAME",
		Short: "Guidance entries of a birth nakshatra",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			info, ok := adapters.MapNakshatraToAPI(args[0])
			if !ok {
				return fmt.Errorf("unknown nakshatra %q", args[0])
			}
			return printer.Nakshatra(info)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "direction NAME",
		Short: "Vastu entries of a direction",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			info, ok := adapters.MapDirectionToAPI(domain.Direction(args[0]))
			if !ok {
				return fmt.Errorf("unknown direction %q", args[0])
			}
			return printer.Direction(info)
		},
	})

	return cmd
}

// Package cmd - units command
package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"quantify/core/engine"
	"quantify/core/locale"
	"quantify/core/unit"
)

var unitsExport string

// unitsCmd represents the units command
var unitsCmd = &cobra.Command{
	Use:   "units [dimension]",
	Short: "List units and their abbreviations",
	Long: `List the units of a dimension (or all dimensions) with the
abbreviations the effective culture accepts.

Examples:
  quantify units length
  quantify units mass --culture ru
  quantify units --export yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUnits,
}

func init() {
	unitsCmd.Flags().StringVar(&unitsExport, "export", "", "dump the merged registry view (yaml)")
}

func runUnits(cmd *cobra.Command, args []string) error {
	tag, err := culture()
	if err != nil {
		return err
	}
	reg := locale.Default()

	if unitsExport != "" {
		if unitsExport != "yaml" {
			return fmt.Errorf("unsupported export format %q", unitsExport)
		}
		data, err := reg.ExportYAML(tag)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	dims := unit.Dimensions()
	if len(args) == 1 {
		d, ok := unit.DimensionByName(strings.ToLower(args[0]))
		if !ok {
			return fmt.Errorf("unknown dimension %q (one of: %s)", args[0], strings.Join(engine.Names(), ", "))
		}
		dims = []unit.Dimension{d}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DIMENSION\tUNIT\tPREFERRED\tACCEPTED")
	for _, d := range dims {
		accepted := reg.View(tag).Abbreviations(d)
		for raw := uint8(1); int(raw) <= unit.Count(d); raw++ {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				d,
				unit.NameOf(d, raw),
				reg.Abbreviation(tag, d, raw),
				strings.Join(accepted[raw], ", "))
		}
	}
	return w.Flush()
}

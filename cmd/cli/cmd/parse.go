// Package cmd - parse command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quantify/core/engine"
	"quantify/core/locale"
	"quantify/core/unit"
	ierrors "quantify/internal/errors"
)

var (
	parseDimension string
	parseFormat    string
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse [quantity]",
	Short: "Parse a quantity string into its base unit",
	Long: `Parse a free-form quantity string and print the summed magnitude
in the dimension's base unit.

Examples:
  quantify parse "1 ft and 2 in" --dimension length
  quantify parse "5,5 bar" --dimension pressure --culture de
  quantify parse "21 °C" --dimension temperature --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseDimension, "dimension", "d", "length", "dimension of the quantity")
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "text", "output format (text, json)")
}

type parseResult struct {
	Input     string  `json:"input"`
	Dimension string  `json:"dimension"`
	Culture   string  `json:"culture"`
	Base      float64 `json:"base"`
	BaseUnit  string  `json:"base_unit"`
}

func runParse(cmd *cobra.Command, args []string) error {
	tag, err := culture()
	if err != nil {
		return err
	}
	eng, err := engine.For(parseDimension)
	if err != nil {
		return err
	}

	base, err := eng.Parse(args[0], tag)
	if err != nil {
		// parse failures carry their context; surface it for diagnosis
		if derr, ok := err.(*ierrors.Error); ok && parseFormat == "json" {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			_ = enc.Encode(derr)
			os.Exit(1)
		}
		return err
	}

	d := eng.Dimension()
	result := parseResult{
		Input:     args[0],
		Dimension: d.String(),
		Culture:   tag.String(),
		Base:      base,
		BaseUnit:  locale.Default().Abbreviation(tag, d, unit.BaseUnitOf(d)),
	}

	if parseFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	fmt.Printf("%v %s\n", result.Base, result.BaseUnit)
	return nil
}

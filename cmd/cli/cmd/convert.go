// Package cmd - convert command
package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"quantify/core/engine"
	"quantify/core/locale"
	"quantify/core/unit"
	"quantify/internal/config"
	"quantify/internal/logging"
)

var (
	convertDimension string
	convertTo        string
	convertDigits    int
	convertExact     bool
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert [quantity]",
	Short: "Convert a quantity to another unit",
	Long: `Parse a quantity string and express it in a target unit.

The input may contain several value/unit pairs, which are summed:

  quantify convert "1ft 2in" --dimension length --to m
  quantify convert "5,5 km" --dimension length --to mi --culture de
  quantify convert "100 °F" --dimension temperature --to °C
  quantify convert "1 atm" --dimension pressure --to kPa --exact`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertDimension, "dimension", "d", "length", "dimension of the quantity")
	convertCmd.Flags().StringVarP(&convertTo, "to", "t", "", "target unit (abbreviation or name)")
	convertCmd.Flags().IntVarP(&convertDigits, "digits", "n", -1, "fraction digits in the output (-1 for default)")
	convertCmd.Flags().BoolVar(&convertExact, "exact", false, "compute the conversion in decimal arithmetic")
	_ = convertCmd.MarkFlagRequired("to")
}

func runConvert(cmd *cobra.Command, args []string) error {
	tag, err := culture()
	if err != nil {
		return err
	}
	eng, err := engine.For(convertDimension)
	if err != nil {
		return err
	}

	base, err := eng.Parse(args[0], tag)
	if err != nil {
		return err
	}
	raw := eng.ResolveUnit(convertTo, tag)
	if raw == 0 {
		return fmt.Errorf("unknown %s unit %q", eng.Dimension(), convertTo)
	}

	logging.Debug("converting",
		zap.String("input", args[0]),
		zap.String("dimension", eng.Dimension().String()),
		zap.String("target", convertTo),
		zap.Float64("base", base))

	if convertExact {
		out, err := exactConvert(base, eng.Dimension(), raw)
		if err != nil {
			return err
		}
		fmt.Printf("%s %s\n", out, locale.Default().Abbreviation(tag, eng.Dimension(), raw))
		return nil
	}

	digits := convertDigits
	if digits < 0 {
		digits = config.Get().Output.FractionDigits
	}
	out, err := eng.Format(base, raw, tag, digits)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

// exactConvert applies the target unit's inverse affine factor in decimal
// arithmetic, avoiding the binary-float artifacts a display conversion can
// pick up (0.30000000000000004 and friends).
func exactConvert(base float64, d unit.Dimension, raw uint8) (string, error) {
	f, err := unit.FactorOf(d, raw)
	if err != nil {
		return "", err
	}
	b := decimal.NewFromFloat(base)
	scale := decimal.NewFromFloat(f.Scale)
	offset := decimal.NewFromFloat(f.Offset)
	return b.Sub(offset).Div(scale).String(), nil
}

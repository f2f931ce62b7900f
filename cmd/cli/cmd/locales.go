// Package cmd - locales command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"quantify/core/locale"
)

// localesCmd represents the locales command
var localesCmd = &cobra.Command{
	Use:   "locales",
	Short: "List cultures with registered abbreviations",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, tag := range locale.Default().Cultures() {
			fmt.Println(tag)
		}
		return nil
	},
}

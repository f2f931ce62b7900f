// Package cmd provides the CLI commands for quantify.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"quantify/core/locale"
	"quantify/internal/config"
	"quantify/internal/logging"
)

var (
	cfgFile    string
	verbose    bool
	cultureArg string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "quantify",
	Short: "Convert and parse strongly-typed physical quantities",
	Long: `quantify converts between units of physical quantities and parses
free-form quantity strings with culture-aware number formats.

Examples:
  quantify convert "1ft 2in" --dimension length --to m
  quantify parse "5,5 m" --dimension length --culture de
  quantify units length --culture ru
  quantify locales`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.quantify.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&cultureArg, "culture", "c", "", "culture for numbers and abbreviations (BCP 47 tag)")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(unitsCmd)
	rootCmd.AddCommand(localesCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}

	for _, path := range cfg.Abbreviations {
		if err := locale.Default().LoadHCLFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading abbreviations from %s: %v\n", path, err)
			os.Exit(1)
		}
	}
}

// culture resolves the effective culture tag: the --culture flag, then the
// configured default, then the invariant culture.
func culture() (language.Tag, error) {
	arg := cultureArg
	if arg == "" {
		arg = config.Get().DefaultCulture
	}
	if arg == "" {
		return language.Und, nil
	}
	tag, err := language.Parse(arg)
	if err != nil {
		return language.Und, fmt.Errorf("invalid culture %q: %w", arg, err)
	}
	return tag, nil
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("quantify version 0.1.0")
	},
}

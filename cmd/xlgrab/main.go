// Package main provides the CLI entry point for xlgrab-go.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/xlgrab/xlgrab-go/pkg/xlgrab"
	"github.com/xlgrab/xlgrab-go/pkg/xlgrab/config"
	"github.com/xlgrab/xlgrab-go/pkg/xlgrab/excel"
	"github.com/xlgrab/xlgrab-go/pkg/xlgrab/output"
)

var (
	cfgFile    string
	rulesPath  string
	outputPath string
	pretty     bool
	strict     bool
	emitEmpty  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "xlgrab [input.xlsx]",
		Short: "Extract tabular regions from Excel files using declarative rules",
		Long: `xlgrab-go resolves declarative region rules (fixed ranges, anchor
searches, keyword-terminated blocks) against an Excel workbook and
outputs the extracted tables plus per-rule errors as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&rulesPath, "rules", "r", "", "YAML rule file (required)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "Fail ranges that overhang the sheet instead of clipping")
	rootCmd.Flags().BoolVar(&emitEmpty, "emit-empty", false, "Emit zero-row results for rules whose every block failed")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./xlgrab.yaml)")
	_ = rootCmd.MarkFlagRequired("rules")

	cobra.OnInitialize(initConfig)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("xlgrab")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "xlgrab"))
		}
	}

	viper.SetDefault("header_join", xlgrab.DefaultHeaderJoin)
	viper.SetDefault("clip", true)
	viper.SetEnvPrefix("XLGRAB")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	rules, err := config.LoadRules(rulesPath)
	if err != nil {
		return err
	}

	wb, err := excel.OpenWorkbook(inputPath)
	if err != nil {
		return err
	}

	opts := engineOptions()
	rep := xlgrab.Extract(wb, rules, opts)

	jsonData, err := output.ToJSON(rep, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		fmt.Println(string(jsonData))
	}

	for _, rec := range rep.Errors {
		fmt.Fprintln(os.Stderr, rec.String())
	}
	return nil
}

// engineOptions merges the config file with command-line overrides.
func engineOptions() xlgrab.Options {
	opts := xlgrab.DefaultOptions()
	opts.HeaderJoin = viper.GetString("header_join")
	clip := viper.GetBool("clip") && !strict
	opts.Clip = &clip
	opts.EmitEmptyResults = emitEmpty || viper.GetBool("emit_empty")
	return opts
}

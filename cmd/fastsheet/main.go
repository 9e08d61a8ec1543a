// Package main provides the CLI entry point for fastsheet-go.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/fastsheet/fastsheet-go/pkg/fastsheet"
	"github.com/fastsheet/fastsheet-go/pkg/fastsheet/output"
)

var (
	outputPath    string
	pretty        bool
	sheetName     string
	sheetIdx      int
	noHeader      bool
	headerRow     int
	skipRows      int
	nRows         int
	sampleRows    int
	useColumns    string
	columnNames   []string
	columnIndices []int
	listSheets    bool
	configPath    string
	logLevel      string
	logFormat     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fastsheet [input.xlsx]",
		Short: "Load a spreadsheet sheet as typed columns",
		Long: `fastsheet loads tabular data out of a spreadsheet file, infers a dtype
per column, and outputs the selected columns as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet name to load (default: first sheet)")
	rootCmd.Flags().IntVar(&sheetIdx, "sheet-idx", 0, "Sheet index to load when --sheet is not set")
	rootCmd.Flags().BoolVar(&noHeader, "no-header", false, "Treat the sheet as having no header row")
	rootCmd.Flags().IntVar(&headerRow, "header-row", 0, "Index of the row holding column labels")
	rootCmd.Flags().IntVar(&skipRows, "skip-rows", 0, "Data rows to skip after the header")
	rootCmd.Flags().IntVar(&nRows, "n-rows", -1, "Maximum rows to load (-1: all)")
	rootCmd.Flags().IntVar(&sampleRows, "sample-rows", fastsheet.DefaultSchemaSampleRows,
		"Rows sampled per column for dtype inference (-1: all)")
	rootCmd.Flags().StringVar(&useColumns, "use-columns", "", `Column range to load, e.g. "A,C:E"`)
	rootCmd.Flags().StringSliceVar(&columnNames, "use-column-names", nil, "Column names to load")
	rootCmd.Flags().IntSliceVar(&columnIndices, "use-column-indices", nil, "Column indices to load")
	rootCmd.Flags().BoolVar(&listSheets, "list-sheets", false, "List sheet names and exit")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Config file supplying flag defaults")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&logFormat, "log-format", "text", "Log format: text, json")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if err := applyConfig(cmd); err != nil {
		return err
	}
	setupLogging(logLevel, logFormat)

	inputPath := args[0]
	reader, err := fastsheet.OpenFile(inputPath)
	if err != nil {
		return err
	}
	defer reader.Close()

	if listSheets {
		for _, name := range reader.SheetNames() {
			fmt.Println(name)
		}
		return nil
	}

	opts, err := loadOptions()
	if err != nil {
		return err
	}

	var sheet *fastsheet.Sheet
	if sheetName != "" {
		sheet, err = reader.LoadSheetByName(sheetName, opts)
	} else {
		sheet, err = reader.LoadSheetByIdx(sheetIdx, opts)
	}
	if err != nil {
		return err
	}
	slog.Debug("sheet loaded",
		"sheet", sheet.Name(),
		"width", sheet.Width(),
		"height", sheet.Height(),
		"total_height", sheet.TotalHeight(),
	)

	doc, err := output.Document(sheet)
	if err != nil {
		return err
	}
	jsonData, err := output.ToJSON(doc, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		slog.Info("wrote output", "path", outputPath, "bytes", len(jsonData))
		return nil
	}
	fmt.Println(string(jsonData))
	return nil
}

// loadOptions assembles LoadOptions from the parsed flags.
func loadOptions() (fastsheet.LoadOptions, error) {
	opts := fastsheet.DefaultLoadOptions()
	if noHeader {
		opts.HeaderRow = nil
	} else {
		opts.HeaderRow = fastsheet.Int(headerRow)
	}
	opts.SkipRows = skipRows
	if nRows >= 0 {
		opts.NRows = fastsheet.Int(nRows)
	}
	if sampleRows >= 0 {
		opts.SchemaSampleRows = fastsheet.Int(sampleRows)
	} else {
		opts.SchemaSampleRows = nil
	}

	selectors := 0
	if useColumns != "" {
		opts.UseColumns = fastsheet.SelectByRange(useColumns)
		selectors++
	}
	if len(columnNames) > 0 {
		opts.UseColumns = fastsheet.SelectByNames(columnNames...)
		selectors++
	}
	if len(columnIndices) > 0 {
		opts.UseColumns = fastsheet.SelectByIndices(columnIndices...)
		selectors++
	}
	if selectors > 1 {
		return opts, fmt.Errorf("--use-columns, --use-column-names and --use-column-indices are mutually exclusive")
	}
	return opts, nil
}

// applyConfig reads an optional config file and uses its values as defaults
// for flags the user did not set on the command line.
func applyConfig(cmd *cobra.Command) error {
	if configPath == "" {
		return nil
	}
	v := viper.New()
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("could not read config %s: %w", configPath, err)
	}

	var flagErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || !v.IsSet(f.Name) {
			return
		}
		if err := f.Value.Set(v.GetString(f.Name)); err != nil && flagErr == nil {
			flagErr = fmt.Errorf("invalid config value for %s: %w", f.Name, err)
		}
	})
	return flagErr
}

// setupLogging configures the global slog handler.
func setupLogging(level, format string) {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

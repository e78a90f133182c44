package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reportsmith/schemamatch"
	"github.com/reportsmith/schemamatch/internal/formatter"
	"github.com/reportsmith/schemamatch/internal/search"
)

var (
	dbURL      string
	mysqlURL   string
	sqlitePath string
	sourceName string
	schemaName string
	configPath string
	outputFile string
	format     string
	fields     string
	fieldsFile string
	limit      int
)

var rootCmd = &cobra.Command{
	Use:          "schemamatch",
	Short:        "Discover database schemas and evaluate report field coverage",
	Long:         `Schemamatch discovers schemas from PostgreSQL, MySQL, or SQLite and fuzzy-matches free-text report fields against the discovered columns, reporting which fields resolve to table.column and which are missing.`,
	SilenceUsage: true,
}

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Discover and print the schema of a data source",
	RunE:  runDiscover,
}

var coverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Evaluate field coverage against a data source",
	Long:  `Coverage matches each requested field against the discovered columns. The command exits non-zero when any field is missing, so callers can gate SQL generation on full coverage.`,
	RunE:  runCoverage,
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy-search columns in a data source",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dbURL, "db-url", "", "PostgreSQL connection string")
	pf.StringVar(&mysqlURL, "mysql-url", "", "MySQL connection string")
	pf.StringVar(&sqlitePath, "sqlite", "", "SQLite database file path")
	pf.StringVar(&sourceName, "source", "", "Named data source from the config file")
	pf.StringVarP(&schemaName, "schema", "s", "", "Database schema name (default: public for PostgreSQL)")
	pf.StringVar(&configPath, "config", "", "Config file path (default: schemamatch.yaml)")

	discoverCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	discoverCmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text or markdown (default: text)")

	coverageCmd.Flags().StringVarP(&fields, "fields", "t", "", "Requested fields (comma-separated)")
	coverageCmd.Flags().StringVar(&fieldsFile, "fields-file", "", "File with one requested field per line")
	coverageCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	coverageCmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text or markdown (default: text)")

	searchCmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of results")

	rootCmd.AddCommand(discoverCmd, coverageCmd, searchCmd)
}

// resolveSource turns the database flags into a single source argument for
// discovery. Exactly one of the source flags must be set.
func resolveSource() (string, error) {
	var sources []string
	if dbURL != "" {
		sources = append(sources, dbURL)
	}
	if mysqlURL != "" {
		url := mysqlURL
		if !strings.HasPrefix(url, "mysql://") {
			url = "mysql://" + url
		}
		sources = append(sources, url)
	}
	if sqlitePath != "" {
		sources = append(sources, "sqlite://"+sqlitePath)
	}
	if sourceName != "" {
		sources = append(sources, sourceName)
	}

	if len(sources) == 0 {
		return "", fmt.Errorf("one of --db-url, --mysql-url, --sqlite, or --source must be specified")
	}
	if len(sources) > 1 {
		return "", fmt.Errorf("only one of --db-url, --mysql-url, --sqlite, or --source can be specified")
	}
	return sources[0], nil
}

func discoverSchema(cmd *cobra.Command) (*schemamatch.Result, error) {
	source, err := resolveSource()
	if err != nil {
		return nil, err
	}

	result, err := schemamatch.Discover(cmd.Context(), source, &schemamatch.Options{
		SchemaName: schemaName,
		ConfigPath: configPath,
	})
	if err != nil {
		return nil, err
	}

	if result.Source == schemamatch.SourceFallback {
		fmt.Fprintf(os.Stderr, "warning: using built-in demo schema (%s)\n", result.Reason)
	}
	return result, nil
}

// openOutput returns the writer for -o, or stdout.
func openOutput() (io.Writer, func(), error) {
	if outputFile == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(outputFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() {
		if err := f.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to close output file: %v\n", err)
		}
	}, nil
}

func runDiscover(cmd *cobra.Command, args []string) error {
	result, err := discoverSchema(cmd)
	if err != nil {
		return err
	}

	writer, closeOutput, err := openOutput()
	if err != nil {
		return err
	}
	defer closeOutput()

	switch format {
	case "text":
		return formatter.NewTextFormatter(writer).FormatSchema(result.Schema)
	case "markdown":
		return formatter.NewMarkdownFormatter(writer).FormatSchema(result.Schema)
	default:
		return fmt.Errorf("invalid format: %s (must be 'text' or 'markdown')", format)
	}
}

func runCoverage(cmd *cobra.Command, args []string) error {
	fieldList, err := collectFields(fields, fieldsFile)
	if err != nil {
		return err
	}
	if len(fieldList) == 0 {
		return fmt.Errorf("no fields specified: use --fields or --fields-file")
	}

	result, err := discoverSchema(cmd)
	if err != nil {
		return err
	}

	report := schemamatch.EvaluateCoverage(result.Schema, fieldList)

	writer, closeOutput, err := openOutput()
	if err != nil {
		return err
	}
	defer closeOutput()

	switch format {
	case "text":
		err = formatter.NewTextFormatter(writer).FormatCoverage(report)
	case "markdown":
		err = formatter.NewMarkdownFormatter(writer).FormatCoverage(report)
	default:
		return fmt.Errorf("invalid format: %s (must be 'text' or 'markdown')", format)
	}
	if err != nil {
		return err
	}

	// Gate for callers: incomplete coverage blocks downstream SQL generation.
	if len(report.MissingFields) > 0 {
		return fmt.Errorf("coverage %d%%: %d field(s) could not be matched", report.CoveragePct, len(report.MissingFields))
	}
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	result, err := discoverSchema(cmd)
	if err != nil {
		return err
	}

	matches := search.Columns(result.Schema, args[0], limit)
	if len(matches) == 0 {
		fmt.Println("no matches")
		return nil
	}
	for _, m := range matches {
		fmt.Println(m.Column)
	}
	return nil
}

// collectFields merges the --fields list and the --fields-file contents.
func collectFields(commaList, filePath string) ([]string, error) {
	fieldList := splitFields(commaList)

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read fields file: %w", err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				fieldList = append(fieldList, line)
			}
		}
	}

	return fieldList, nil
}

// splitFields parses a comma-separated field list, trimming whitespace and
// dropping empty entries.
func splitFields(s string) []string {
	if s == "" {
		return nil
	}
	var fieldList []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fieldList = append(fieldList, f)
		}
	}
	return fieldList
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

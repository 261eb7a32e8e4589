package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tordrt/tablebuilder"
	"github.com/tordrt/tablebuilder/internal/config"
	"github.com/tordrt/tablebuilder/internal/formatter"
	"github.com/tordrt/tablebuilder/internal/logging"
	"github.com/tordrt/tablebuilder/internal/schema"
)

var (
	dbURL       string
	mysqlURL    string
	sqlitePath  string
	prefix      string
	collation   string
	dialectName string
	logLevel    string
	logFormat   string
	dryRun      bool
	dropSQL     bool
	outputFile  string
	format      string
)

var rootCmd = &cobra.Command{
	Use:   "tablebuilder",
	Short: "Create and drop database tables from declarative schema files",
	Long: `TableBuilder compiles JSON schema definitions into CREATE TABLE and DROP TABLE
statements for MySQL, PostgreSQL, or SQLite, validates them, and executes them.`,
	SilenceUsage: true,
}

var createCmd = &cobra.Command{
	Use:   "create <schema.json>...",
	Short: "Create the tables described by the schema files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCreate,
}

var dropCmd = &cobra.Command{
	Use:   "drop <schema.json>...",
	Short: "Drop the tables described by the schema files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDrop,
}

var sqlCmd = &cobra.Command{
	Use:   "sql <schema.json>...",
	Short: "Print the generated DDL without connecting to a database",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSQL,
}

var validateCmd = &cobra.Command{
	Use:   "validate <schema.json>...",
	Short: "Check schema files for structural problems",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidate,
}

var describeCmd = &cobra.Command{
	Use:   "describe <schema.json>...",
	Short: "Describe schema files in text or markdown",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDescribe,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dbURL, "db-url", "", "Database URL (postgres://, mysql://, or sqlite://)")
	pf.StringVar(&mysqlURL, "mysql-url", "", "MySQL connection string")
	pf.StringVar(&sqlitePath, "sqlite", "", "SQLite database file path")
	pf.StringVarP(&prefix, "prefix", "p", "", "Table name prefix for schemas that do not set one")
	pf.StringVar(&collation, "collation", "", "MySQL table collation (default: database collation)")
	pf.StringVar(&dialectName, "dialect", "", "SQL dialect when no database is given: mysql, postgres, or sqlite")
	pf.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, or error (default: info)")
	pf.StringVar(&logFormat, "log-format", "", "Log format: text or json (default: text)")

	createCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print statements instead of executing them")
	dropCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print statements instead of executing them")
	sqlCmd.Flags().BoolVar(&dropSQL, "drop", false, "Print DROP TABLE statements instead of CREATE TABLE")
	describeCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	describeCmd.Flags().StringVarP(&format, "format", "f", formatter.FormatText, "Output format: text or markdown (default: text)")

	rootCmd.AddCommand(createCmd, dropCmd, sqlCmd, validateCmd, describeCmd)
}

// loadConfig reads the environment and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if prefix != "" {
		cfg.Prefix = prefix
	}
	if collation != "" {
		cfg.Collation = collation
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// resolveDatabaseURL returns the URL selected by flags, falling back to the
// environment. An empty result means no database was given.
func resolveDatabaseURL(cfg config.Config) (string, error) {
	dbCount := 0
	if dbURL != "" {
		dbCount++
	}
	if mysqlURL != "" {
		dbCount++
	}
	if sqlitePath != "" {
		dbCount++
	}
	if dbCount > 1 {
		return "", fmt.Errorf("only one of --db-url, --mysql-url, or --sqlite can be specified")
	}

	switch {
	case sqlitePath != "":
		return "sqlite://" + sqlitePath, nil
	case mysqlURL != "":
		if strings.HasPrefix(mysqlURL, "mysql://") {
			return mysqlURL, nil
		}
		return "mysql://" + mysqlURL, nil
	case dbURL != "":
		return dbURL, nil
	default:
		return cfg.DatabaseURL, nil
	}
}

// loadSchemas decodes each schema file. Schemas without their own prefix
// get the configured one.
func loadSchemas(paths []string, prefix string) ([]*schema.Schema, error) {
	schemas := make([]*schema.Schema, 0, len(paths))
	for _, path := range paths {
		s, err := schema.DecodeFile(path)
		if err != nil {
			return nil, err
		}
		if s.GetPrefix() == "" && prefix != "" {
			s.Prefix(prefix)
		}
		schemas = append(schemas, s)
	}
	return schemas, nil
}

func newLogger(cfg config.Config) *slog.Logger {
	return logging.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
}

// openBuilder connects to the configured database. In dry-run mode without
// a database the --dialect flag selects the dialect.
func openBuilder(ctx context.Context, cfg config.Config, out io.Writer) (*tablebuilder.Builder, error) {
	url, err := resolveDatabaseURL(cfg)
	if err != nil {
		return nil, err
	}

	opts := &tablebuilder.Options{
		Collation: cfg.Collation,
		Logger:    newLogger(cfg),
	}
	if dryRun {
		opts.DryRun = out
	}

	if url == "" {
		if dryRun && dialectName != "" {
			return tablebuilder.NewDryRun(dialectName, out, opts)
		}
		return nil, fmt.Errorf("one of --db-url, --mysql-url, or --sqlite must be specified (or set TABLEBUILDER_DB_URL)")
	}

	return tablebuilder.Open(ctx, url, opts)
}

func runCreate(cmd *cobra.Command, args []string) error {
	return runTables(cmd, args, (*tablebuilder.Builder).CreateTable)
}

func runDrop(cmd *cobra.Command, args []string) error {
	return runTables(cmd, args, (*tablebuilder.Builder).DropTable)
}

func runTables(cmd *cobra.Command, args []string, op func(*tablebuilder.Builder, context.Context, *schema.Schema) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	schemas, err := loadSchemas(args, cfg.Prefix)
	if err != nil {
		return err
	}

	builder, err := openBuilder(ctx, cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() {
		if err := builder.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to close database connection: %v\n", err)
		}
	}()

	for _, s := range schemas {
		if err := op(builder, ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func runSQL(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	schemas, err := loadSchemas(args, cfg.Prefix)
	if err != nil {
		return err
	}

	name := dialectName
	if name == "" {
		name = "mysql"
	}
	builder, err := tablebuilder.NewDryRun(name, nil, &tablebuilder.Options{Collation: cfg.Collation})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, s := range schemas {
		if i > 0 {
			fmt.Fprintln(out)
		}

		if dropSQL {
			query, err := builder.DropTableQuery(s)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, query)
			continue
		}

		query, err := builder.CreateTableQuery(s)
		if err != nil {
			return err
		}
		sum, err := builder.Checksum(s)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "-- %s checksum: %s\n%s\n", s.TableName(), sum, query)
	}
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, path := range args {
		schemas, err := loadSchemas([]string{path}, cfg.Prefix)
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", path, err)
			failed++
			continue
		}

		s := schemas[0]
		errs := tablebuilder.Validate(s)
		if len(errs) == 0 {
			fmt.Fprintf(out, "%s: ok (%s)\n", path, s.TableName())
			continue
		}

		failed++
		fmt.Fprintf(out, "%s: %d problem(s) in %s\n", path, len(errs), s.TableName())
		for _, e := range errs {
			fmt.Fprintf(out, "  - %s\n", e)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d schema file(s) failed validation", failed, len(args))
	}
	return nil
}

func runDescribe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	schemas, err := loadSchemas(args, cfg.Prefix)
	if err != nil {
		return err
	}

	var writer = cmd.OutOrStdout()
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to close output file: %v\n", err)
			}
		}()
		writer = f
	}

	var f formatter.Formatter
	switch format {
	case formatter.FormatText:
		f = formatter.NewTextFormatter(writer)
	case formatter.FormatMarkdown:
		f = formatter.NewMarkdownFormatter(writer)
	default:
		return fmt.Errorf("invalid format: %s (must be 'text' or 'markdown')", format)
	}

	if err := f.Format(schemas); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

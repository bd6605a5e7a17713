package commands

import (
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/conduit-lang/annotations/internal/catalog"
	"github.com/conduit-lang/annotations/internal/cli/config"
	"github.com/conduit-lang/annotations/internal/cli/ui"
	"github.com/conduit-lang/annotations/runtime/annotation"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// rootOptions carries the resolved flags and the objects built from them
type rootOptions struct {
	format  string
	noColor bool
	verbose bool

	loadConfig  func() (*config.Config, error)
	selectClass selectFunc
	newLogger   func(verbose bool) *zap.Logger

	logger  *zap.Logger
	catalog *catalog.Catalog
}

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	return newRootCommand(&rootOptions{
		loadConfig:  config.Load,
		selectClass: surveySelect,
		newLogger:   newLogger,
	})
}

func newRootCommand(opts *rootOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "annotate",
		Short: "Inspect annotated classes and their reflected structure",
		Long: color.CyanString(`annotate - annotation registry inspector

Lists the classes declared in the annotation registry and shows, for each
one, the annotations attached to the class, its constructor parameters,
methods and properties together with their reflected types.`),
		Example: `  # List the declared classes
  annotate classes

  # Show one class as YAML
  annotate inspect UserService --format yaml

  # Pick a class interactively
  annotate inspect --interactive`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.format, "format", "table", "Output format: table, json, yaml or dump")
	flags.BoolVar(&opts.verbose, "verbose", false, "Show annotation data and log registry activity")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(newClassesCommand(opts))
	rootCmd.AddCommand(newInspectCommand(opts))

	return rootCmd
}

// setup merges configuration with the flags given on the command line and
// declares the catalog in a fresh registry
func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := o.loadConfig()
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), ui.ConfigError(err.Error(), o.noColor))
		return reported(fmt.Errorf("load config: %w", err))
	}

	flags := cmd.Flags()
	if !flags.Changed("format") {
		o.format = cfg.Output.Format
	}
	if !flags.Changed("no-color") {
		o.noColor = cfg.Output.NoColor
	}
	if !flags.Changed("verbose") {
		o.verbose = cfg.Log.Verbose
	}
	if !config.ValidFormat(o.format) {
		return fmt.Errorf("unsupported format: %s (supported: table, json, yaml, dump)", o.format)
	}

	if o.noColor {
		color.NoColor = true
	}

	if o.newLogger == nil {
		o.newLogger = newLogger
	}
	o.logger = o.newLogger(o.verbose)
	if cfg.File != "" {
		o.logger.Debug("using config file", zap.String("file", cfg.File))
	}

	registry := annotation.NewRegistry(annotation.WithLogger(o.logger))
	o.catalog, err = catalog.New(registry)
	if err != nil {
		return fmt.Errorf("declare catalog: %w", err)
	}
	o.logger.Debug("catalog declared", zap.Int("classes", registry.Len()))
	return nil
}

// newLogger returns a development logger when verbose, otherwise a no-op logger
func newLogger(verbose bool) *zap.Logger {
	if verbose {
		if logger, err := zap.NewDevelopment(); err == nil {
			return logger
		}
	}
	return zap.NewNop()
}

// formatter returns the formatter selected by the options, writing to cmd's output
func (o *rootOptions) formatter(cmd *cobra.Command) (Formatter, error) {
	return GetFormatter(o.format, cmd.OutOrStdout(), o.noColor, o.verbose)
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display the annotate version, Git commit, build date, and Go version",
		Run: func(cmd *cobra.Command, args []string) {
			kv := ui.NewKeyValueTable(cmd.OutOrStdout(), color.NoColor)
			kv.AddRow("annotate version", Version)
			kv.AddRow("Git commit", GitCommit)
			kv.AddRow("Build date", BuildDate)
			kv.AddRow("Go version", runtime.Version())
			kv.Render()
		},
	}
}

// reportedError marks an error whose message was already written to stderr
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	return &reportedError{err: err}
}

// printError writes err in red unless a command already reported it
func printError(w io.Writer, err error) {
	var done *reportedError
	if errors.As(err, &done) {
		return
	}
	errorColor := color.New(color.FgRed, color.Bold)
	errorColor.Fprintf(w, "Error: %v\n", err)
}

// Execute runs the root command
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		return err
	}
	return nil
}

// Package main provides the genomic-validator command-line tool.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitError   = 1
	ExitUsage   = 2
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// errInvalid signals a failure that has already been reported to the user.
var errInvalid = errors.New("validation failed")

// usageError marks bad arguments or flags.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// app holds what every command needs.
type app struct {
	v       *viper.Viper
	cfgFile string
	stdout  io.Writer
	stderr  io.Writer
	logger  *zap.Logger
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	a := &app{
		v:      viper.New(),
		stdout: stdout,
		stderr: stderr,
		logger: zap.NewNop(),
	}

	root := a.newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	defer a.logger.Sync() //nolint:errcheck

	var uerr usageError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, errInvalid):
		return ExitError
	case errors.As(err, &uerr):
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		fmt.Fprint(stderr, root.UsageString())
		return ExitUsage
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}
}

func (a *app) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "genomic-validator [flags] <vcf-file>",
		Short: "Check that a VCF file is well-formed",
		Long: `genomic-validator reads a VCF file (plain, gzip/BGZF or zstd compressed)
and reports whether it is valid. Validation stops at the first problem found.

Meta-information lines are checked against the shapes of fileformat, INFO,
FORMAT, FILTER, contig and ALT definitions. The column header must list the
eight mandatory columns. Each data record is checked column by column,
including the per-sample genotype values described by FORMAT.`,
		Example: `  genomic-validator input.vcf
  genomic-validator calls.vcf.gz
  zcat calls.vcf.gz | genomic-validator -
  genomic-validator --format json --history input.vcf`,
		Version: fmt.Sprintf("%s (%s) built %s", version, commit, date),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usageError{fmt.Errorf("expected exactly one VCF file argument, got %d", len(args))}
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runValidate(args[0])
		},
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "Config file (default ~/.genomic-validator.yaml)")
	pf.String("log-level", "warn", "Log level: debug, info, warn, error")
	pf.String("log-format", "console", "Log format: console, json")
	pf.String("history-path", "", "History database path (default ~/.genomic-validator/history.duckdb)")

	f := root.Flags()
	f.StringP("format", "f", "text", "Output format: text, json")
	f.Bool("color", true, "Colorize text output")
	f.Bool("history", false, "Record this run in the history database")
	f.Bool("skip-unchanged", false, "Report files unchanged since their last valid run without re-reading them (implies --history)")

	a.bindFlags(root)

	root.AddCommand(a.newConfigCmd())
	root.AddCommand(a.newHistoryCmd())

	return root
}

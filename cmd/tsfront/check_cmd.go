package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cloudcmds/tsfront"
	"github.com/cloudcmds/tsfront/errors"
	"github.com/cloudcmds/tsfront/parser"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var checkCmd = &cobra.Command{
	Use:   "check file...",
	Short: "Parse files and report every file that fails",
	Long: `Parse each file independently. Every failure is reported, not just the
first one, and the command exits non-zero if any file failed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		colored := !viper.GetBool("no-color") && isTerminal(os.Stderr)
		if outputFormat(cmd) == "json" {
			return checkFilesJSON(cmd.OutOrStdout(), args)
		}
		return checkFiles(cmd.OutOrStdout(), os.Stderr, args, colored)
	},
}

func init() {
	checkCmd.Flags().StringP("output", "o", "text", "output format: text or json")
}

// loadSources reads every path. Unreadable files are collected into the
// returned error rather than stopping at the first.
func loadSources(paths []string) ([]tsfront.Source, error) {
	var result *multierror.Error
	sources := make([]tsfront.Source, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		sources = append(sources, tsfront.Source{Name: path, Code: string(data)})
	}
	return sources, result.ErrorOrNil()
}

func parseSources(sources []tsfront.Source) error {
	start := time.Now()
	programs, err := tsfront.ParseAll(sources, tsfront.WithMaxDepth(viper.GetInt("max-depth")))
	for i, program := range programs {
		if program != nil {
			log.Debug().Str("file", sources[i].Name).Int("statements", len(program.Stmts)).Msg("parsed")
		}
	}
	log.Debug().Int("files", len(sources)).Dur("elapsed", time.Since(start)).Msg("check finished")
	return err
}

func checkFiles(stdout, stderr io.Writer, paths []string, colored bool) error {
	sources, err := loadSources(paths)
	if err != nil {
		return err
	}
	if err := parseSources(sources); err != nil {
		return reportError(stderr, err, colored)
	}
	fmt.Fprintf(stdout, "ok: %d %s\n", len(sources), plural(len(sources), "file", "files"))
	return nil
}

func checkFilesJSON(stdout io.Writer, paths []string) error {
	sources, err := loadSources(paths)
	if err != nil {
		return err
	}
	parseErr := parseSources(sources)
	diags := tsfront.Diagnostics(parseErr)
	if diags == nil {
		diags = []*tsfront.Diagnostic{}
	}
	data, err := getOutputJSON(diags, useColor())
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, string(data))
	if parseErr != nil {
		return errReported
	}
	return nil
}

// reportError prints a rendered diagnostic for every parser error in err
// and returns errReported. Other errors are returned unchanged.
func reportError(w io.Writer, err error, colored bool) error {
	formatted := formatErrors(err)
	if len(formatted) == 0 {
		return err
	}
	fmt.Fprint(w, errors.NewFormatter(colored).FormatMultiple(formatted))
	return errReported
}

func formatErrors(err error) []*errors.FormattedError {
	var errs []error
	var merr *multierror.Error
	if stderrors.As(err, &merr) {
		errs = merr.Errors
	} else {
		errs = []error{err}
	}
	var formatted []*errors.FormattedError
	for _, e := range errs {
		var perr parser.ParserError
		if !stderrors.As(e, &perr) {
			return nil
		}
		formatted = append(formatted, perr.ToFormatted())
	}
	return formatted
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

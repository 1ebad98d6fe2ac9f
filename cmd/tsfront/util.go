package main

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/gofrs/uuid"
	"github.com/hokaccha/go-prettyjson"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Reads global flags from Viper and adjusts the environment accordingly.
func processGlobalFlags() {
	if viper.GetBool("no-color") {
		color.NoColor = true
	}
	setupLogging(os.Stderr, viper.GetBool("verbose"), viper.GetBool("no-color"))
}

// setupLogging installs the global logger. Every line carries the id of
// this invocation so interleaved runs can be told apart.
func setupLogging(w io.Writer, verbose, noColor bool) {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	runID := uuid.Must(uuid.NewV4()).String()
	console := zerolog.ConsoleWriter{Out: w, NoColor: noColor, TimeFormat: time.Kitchen}
	log.Logger = zerolog.New(console).
		Level(level).
		With().
		Timestamp().
		Str("run", runID).
		Logger()
	log.Debug().Str("version", version).Msg("starting")
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// useColor reports whether output written to stdout should be colorized.
func useColor() bool {
	return !viper.GetBool("no-color") && isTerminal(os.Stdout)
}

func getOutputJSON(v any, colored bool) ([]byte, error) {
	if !colored {
		return json.MarshalIndent(v, "", "  ")
	}
	return prettyjson.Marshal(v)
}

// getCode determines the source to operate on. There are three
// possibilities:
// 1. --code <code>
// 2. --stdin (read code from stdin)
// 3. path as args[0]
// The returned name is used as the filename in diagnostics.
func getCode(cmd *cobra.Command, args []string, stdin io.Reader) (string, string, error) {
	var codeFlagSet bool
	if f := cmd.Flags().Lookup("code"); f != nil && f.Changed {
		codeFlagSet = true
	}
	var stdinFlagSet bool
	if f := cmd.Flags().Lookup("stdin"); f != nil && f.Changed {
		stdinFlagSet = true
	}
	pathSupplied := len(args) > 0
	if pathSupplied && (codeFlagSet || stdinFlagSet) {
		return "", "", errors.New("multiple input sources specified")
	} else if codeFlagSet && stdinFlagSet {
		return "", "", errors.New("multiple input sources specified")
	}
	switch {
	case stdinFlagSet:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", err
		}
		return "<stdin>", string(data), nil
	case pathSupplied:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", err
		}
		return args[0], string(data), nil
	case codeFlagSet:
		code, err := cmd.Flags().GetString("code")
		return "", code, err
	}
	return "", "", errors.New("no input: pass a file, --code or --stdin")
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("code", "c", "", "code to read")
	cmd.Flags().Bool("stdin", false, "read code from stdin")
}

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cloudcmds/tsfront"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the token stream for source code",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, code, err := getCode(cmd, args, os.Stdin)
		if err != nil {
			return err
		}
		tokens, err := tsfront.Tokenize(code, tsfront.WithFilename(name))
		if err != nil {
			return reportError(os.Stderr, err, !viper.GetBool("no-color") && isTerminal(os.Stderr))
		}
		return renderTokens(cmd.OutOrStdout(), tokens, outputFormat(cmd), useColor())
	},
}

func init() {
	addInputFlags(tokensCmd)
	tokensCmd.Flags().StringP("output", "o", "text", "output format: text or json")
}

func renderTokens(w io.Writer, tokens []tsfront.Token, format string, colored bool) error {
	switch strings.ToLower(format) {
	case "", "text":
		for _, tok := range tokens {
			if _, err := fmt.Fprintln(w, tok.String()); err != nil {
				return err
			}
		}
		return nil
	case "json":
		data, err := getOutputJSON(tokens, colored)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

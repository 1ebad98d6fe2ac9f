package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cloudcmds/tsfront/parser"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "tsfront",
	Short: "Parse and inspect TypeScript-like source code",
	Long: `tsfront tokenizes and parses a TypeScript-like language subset.

Use "ast" to print a syntax tree, "tokens" to print the token stream and
"check" to validate files. Settings may also come from TSFRONT_* environment
variables or from $HOME/.tsfront.yaml.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}
		processGlobalFlags()
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tsfront.yaml)")
	flags.Bool("no-color", false, "disable colored output")
	flags.BoolP("verbose", "v", false, "enable debug logging")
	flags.Int("max-depth", parser.DefaultMaxDepth, "maximum nesting depth")
	for _, name := range []string{"no-color", "verbose", "max-depth"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
	rootCmd.AddCommand(astCmd, tokensCmd, checkCmd, versionCmd)
}

// initConfig wires environment variables and the optional config file into
// viper. A missing default config file is not an error.
func initConfig() error {
	viper.SetEnvPrefix("tsfront")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		path, err := homedir.Expand(cfgFile)
		if err != nil {
			return err
		}
		viper.SetConfigFile(path)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return nil
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".tsfront")
		viper.SetConfigType("yaml")
	}
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// outputFormat returns the command's --output flag, falling back to the
// configured default when the flag was not given.
func outputFormat(cmd *cobra.Command) string {
	f := cmd.Flags().Lookup("output")
	if f == nil {
		return viper.GetString("output")
	}
	if !f.Changed && viper.IsSet("output") {
		return viper.GetString("output")
	}
	return f.Value.String()
}

// Package main provides embedlint, a tool that validates embed definition
// files and renders them as API-ready JSON.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jdziat/embedbuilder/embedconfig"
)

var version = "dev"

type options struct {
	verbose bool
	lenient bool
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "embedlint",
		Short: "Validate and render chat message embed definitions",
		Long: `embedlint checks YAML or JSON embed definitions against the platform's
embed limits and renders them as the JSON the message API expects.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log decoding details to stderr")
	rootCmd.PersistentFlags().BoolVar(&opts.lenient, "lenient", false, "Ignore unknown keys in definition files")

	rootCmd.AddCommand(
		newValidateCmd(opts),
		newRenderCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

func (o *options) loader(stderr io.Writer) *embedconfig.Loader {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	return embedconfig.NewLoader(
		embedconfig.WithLogger(embedconfig.NewSlogAdapter(logger)),
		embedconfig.WithStrict(!o.lenient),
	)
}

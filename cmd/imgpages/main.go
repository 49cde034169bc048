package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yuanying/imgpages/internal/pages"
)

const (
	defaultDir       = "."
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "imgpages",
		Short: "Convert numbered PNG images into linked HTML pages",
		Long: `imgpages scans a directory for page images named 1.png, 2.png, ...
and writes one self-contained HTML page per image (1.html, 2.html, ...).

Each page embeds its image as a base64 data URI and links to the
previous and next pages. Pages are numbered by sorted position, so
gaps in the input numbering are closed up.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runGenerate,
	}

	cmd.Flags().StringP("dir", "C", defaultDir, "Directory to scan for page images")
	cmd.Flags().StringP("output", "o", "", "Directory to write pages to (default: same as --dir)")
	cmd.Flags().String("log-level", defaultLogLevel, "Log level: debug, info, warn, error")
	cmd.Flags().String("log-format", defaultLogFormat, "Log format: text, json")
	cmd.Flags().BoolP("verbose", "v", false, "Enable debug logging (overrides --log-level)")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	opts, err := readCLIOptions(cmd, args)
	if err != nil {
		return err
	}

	opts.Logger.Info("generating pages", "dir", opts.Dir, "output", opts.OutputDir)

	result, err := pages.NewGenerator(opts).Run()
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	opts.Logger.Info("done", "pages", len(result.Pages))
	return nil
}

// readCLIOptions validates flags and converts them into generator options.
func readCLIOptions(cmd *cobra.Command, _ []string) (pages.Options, error) {
	flags := cmd.Flags()

	dir, _ := flags.GetString("dir")
	if dir == "" {
		return pages.Options{}, errors.New("--dir must not be empty")
	}
	outputDir, _ := flags.GetString("output")
	if outputDir == "" {
		outputDir = dir
	}

	logLevel, _ := flags.GetString("log-level")
	if !isValidLogLevel(logLevel) {
		return pages.Options{}, fmt.Errorf("--log-level must be one of debug, info, warn, error: got %q", logLevel)
	}
	logFormat, _ := flags.GetString("log-format")
	if !isValidLogFormat(logFormat) {
		return pages.Options{}, fmt.Errorf("--log-format must be text or json: got %q", logFormat)
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		logLevel = "debug"
	}

	return pages.Options{
		Dir:       dir,
		OutputDir: outputDir,
		Logger:    buildLogger(cmd.ErrOrStderr(), logLevel, logFormat),
	}, nil
}

func isValidLogLevel(level string) bool {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

func isValidLogFormat(format string) bool {
	switch strings.ToLower(format) {
	case "text", "json":
		return true
	}
	return false
}

// buildLogger creates a slog logger. Level and format are matched
// case-insensitively; unknown values fall back to info and text.
func buildLogger(w io.Writer, level, format string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: l}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

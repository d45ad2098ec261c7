package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/ecotrack/internal/config"
	"github.com/rshade/ecotrack/internal/tui"
)

// outputMode picks plain, styled or interactive rendering for cmd.
func (a *app) outputMode(cmd *cobra.Command, interactive bool) tui.OutputMode {
	plain, _ := cmd.Flags().GetBool("plain")
	if cmd.OutOrStdout() != os.Stdout {
		return tui.OutputModePlain
	}
	lookup := a.opts.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if _, noColor := lookup("NO_COLOR"); noColor {
		plain = true
	}
	return tui.DetectOutputMode(interactive, plain)
}

func (a *app) renderer(cmd *cobra.Command) tui.Renderer {
	return tui.NewRenderer(a.outputMode(cmd, false), tui.TerminalWidth(tui.DefaultWidth))
}

// outputFormat returns the --output flag, falling back to the configured default.
func (a *app) outputFormat(cmd *cobra.Command) (string, error) {
	format := a.config().Output.DefaultFormat
	if f := cmd.Flags().Lookup("output"); f != nil && f.Changed {
		format = f.Value.String()
	}
	switch strings.ToLower(format) {
	case config.FormatTable, "":
		return config.FormatTable, nil
	case config.FormatJSON:
		return config.FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want table or json)", format)
	}
}

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "output format: table or json (default from config)")
}

// report writes v as JSON or the rendered text, depending on --output.
func (a *app) report(cmd *cobra.Command, v any, render func(tui.Renderer) string) error {
	format, err := a.outputFormat(cmd)
	if err != nil {
		return err
	}
	if format == config.FormatJSON {
		return writeJSON(cmd.OutOrStdout(), v)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), render(a.renderer(cmd)))
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	return nil
}

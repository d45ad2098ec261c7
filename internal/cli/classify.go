package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/ecotrack/internal/classify"
	"github.com/rshade/ecotrack/internal/tui"
)

func newClassifyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify <item>",
		Short: "Find out which bin an item belongs in",
		Long: `Classifies a waste item as Wet, Dry, E-waste or Hazardous. Items in the
bundled guide are answered locally; anything else is sent to the configured
classifier endpoint and cached.`,
		Example: `  ecotrack classify battery
  ecotrack classify "pizza box"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item := strings.Join(args, " ")
			res, err := a.classifier(cmd.Context()).Classify(cmd.Context(), item)
			if err != nil {
				return err
			}
			return a.report(cmd, res, func(r tui.Renderer) string { return r.Classification(res) })
		},
	}
	addOutputFlag(cmd)
	return cmd
}

func newGuideCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guide [query]",
		Short: "Search the bundled waste segregation guide",
		RunE: func(cmd *cobra.Command, args []string) error {
			items := classify.Lookup(strings.Join(args, " "))
			return a.report(cmd, items, func(r tui.Renderer) string { return r.Guide(items) })
		},
	}
	addOutputFlag(cmd)
	return cmd
}

func newCacheCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "cache", Short: "Manage the classification cache"}

	clean := &cobra.Command{
		Use:   "clean",
		Short: "Remove expired classification cache entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.config()
			cache, err := classify.NewFileCache(cfg.ClassifierCacheDir(), cfg.Classifier.CacheTTL)
			if err != nil {
				return err
			}
			removed, err := cache.CleanupExpired()
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %d expired entries from %s\n", removed, cfg.ClassifierCacheDir())
			return nil
		},
	}

	cmd.AddCommand(clean)
	return cmd
}

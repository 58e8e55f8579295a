package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hyperjump/sitesearch/internal/cli"
	"github.com/hyperjump/sitesearch/internal/models"
	"github.com/hyperjump/sitesearch/internal/widget"
)

func newQueryCmd(opts *rootOptions) *cobra.Command {
	var (
		source sourceFlags
		output string
	)
	cmd := &cobra.Command{
		Use:   "query <text>...",
		Short: "Load the index once and print what the dropdown would show for a query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cli.ParseOutputFormat(output)
			if err != nil {
				return err
			}
			cfg, _, debug, err := setup(opts)
			if err != nil {
				return err
			}
			source.apply(cmd, cfg)

			logger := zap.NewNop()
			if debug {
				if logger, err = newLogger(true); err != nil {
					return err
				}
				defer logger.Sync()
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), source.timeout)
			defer cancel()

			doc := widget.NewHeadless(widget.WithBaseURL(cfg.Site.BaseURL))
			w, err := widget.New(ctx, doc, source.fetcher(cfg), widget.WithLogger(logger))
			if err != nil {
				return err
			}
			if err := doc.Next(ctx); err != nil {
				return fmt.Errorf("waiting for search index: %w", err)
			}

			query := buildQuery(args)
			doc.Type(query)
			if err := cli.WriteResults(cmd.OutOrStdout(), query, doc.ResultsElement().Content(), format); err != nil {
				return err
			}
			if st := w.State(); st.Status() == models.IndexFailed {
				return st.Err()
			}
			return nil
		},
	}
	source.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json or html")
	return cmd
}

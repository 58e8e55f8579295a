package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hyperjump/sitesearch/internal/tui"
	"github.com/hyperjump/sitesearch/internal/widget"
	"github.com/hyperjump/sitesearch/pkg/utils"
)

func newTUICmd(opts *rootOptions) *cobra.Command {
	var (
		source  sourceFlags
		logFile string
	)
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Search the site from an interactive terminal dropdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, debug, err := setup(opts)
			if err != nil {
				return err
			}
			source.apply(cmd, cfg)

			// The terminal belongs to the program; logs only go to a file.
			logger, err := utils.NewFileLogger(debug, logFile)
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			model := tui.NewModel(cfg.Site.BaseURL, tui.WithElementIDs(cfg.Site.InputID, cfg.Site.ResultsID))
			w, err := widget.New(ctx, model, source.fetcher(cfg),
				widget.WithLogger(logger),
				widget.WithElementIDs(cfg.Site.InputID, cfg.Site.ResultsID),
			)
			if err != nil {
				return err
			}
			model.Attach(w)

			p := tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithContext(ctx),
			)
			_, err = p.Run()
			return err
		},
	}
	source.register(cmd)
	cmd.Flags().StringVar(&logFile, "log-file", "sitesearch-tui.log", "debug log file")
	return cmd
}

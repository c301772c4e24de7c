package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/gxlfixture/internal/ctxlog"
	"github.com/specialistvlad/gxlfixture/internal/export"
)

// Run performs the export described by the App's configuration.
func (a *App) Run(ctx context.Context) (*export.Report, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "input_dir", a.config.InputDir, "fixture_dir", a.config.FixtureDir)

	report, err := export.New(a.config.ExportOptions()).Run(ctx)
	if err != nil {
		return report, fmt.Errorf("export failed: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return report, nil
}

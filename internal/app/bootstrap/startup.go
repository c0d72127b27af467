// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after the catalog is
// loaded and checked, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	viewdata.Init(appCfg.SiteName)
	logger.Info("ideabook starting",
		zap.String("site_name", viewdata.SiteName()),
		zap.Int("page_size", appCfg.PageSize),
		zap.Int("spotlight_count", appCfg.SpotlightCount))
	return nil
}

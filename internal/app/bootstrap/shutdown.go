// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown runs when the server stops. The catalog is in memory, so there
// are no connections to close.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.Ideas != nil {
		logger.Info("ideabook stopped", zap.Int("ideas", deps.Ideas.Len()))
	}
	return nil
}

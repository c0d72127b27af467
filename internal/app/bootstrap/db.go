// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	ideastore "github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/store/ideas"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// ConnectDB loads the idea catalog. WAFFLE calls it where a database-backed
// app would open its connections; a load error aborts startup.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	store, err := loadCatalog(appCfg.DataFile)
	if err != nil {
		logger.Error("idea catalog load failed", zap.String("data_file", appCfg.DataFile), zap.Error(err))
		return DBDeps{}, err
	}

	source := appCfg.DataFile
	if source == "" {
		source = "embedded:" + ideastore.DefaultCatalog
	}
	logger.Info("idea catalog loaded", zap.String("source", source), zap.Int("ideas", store.Len()))
	return DBDeps{Ideas: store}, nil
}

func loadCatalog(path string) (*ideastore.Store, error) {
	if path == "" {
		return ideastore.LoadDefault()
	}
	s, err := ideastore.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return s, nil
}

// EnsureSchema checks the loaded catalog. Problems that do not stop the
// catalog from loading are logged as warnings.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.Ideas == nil {
		return fmt.Errorf("idea catalog not loaded")
	}
	for _, w := range deps.Ideas.Warnings() {
		logger.Warn("idea catalog", zap.String("warning", w))
	}
	logger.Info("idea catalog checked", zap.Int("warnings", len(deps.Ideas.Warnings())))
	return nil
}

package ideas

import (
	ideastore "github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/store/ideas"
	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/store/queries/ideaqueries"
	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/system/paging"
	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/domain/models"
	"go.uber.org/zap"
)

// Config holds the settings the idea pages read from app configuration.
type Config struct {
	PageSize     int
	RelatedLimit int
	ContactEmail string
}

// Handler serves the Idea Book pages and the JSON API.
type Handler struct {
	Store *ideastore.Store
	Cfg   Config
	Log   *zap.Logger
}

// NewHandler constructs an ideas Handler. Zero config values fall back to
// the defaults.
func NewHandler(store *ideastore.Store, cfg Config, logger *zap.Logger) *Handler {
	if cfg.PageSize <= 0 {
		cfg.PageSize = paging.DefaultPageSize
	}
	if cfg.RelatedLimit <= 0 {
		cfg.RelatedLimit = ideaqueries.DefaultRelatedLimit
	}
	if cfg.ContactEmail == "" {
		cfg.ContactEmail = models.DefaultContactEmail
	}
	return &Handler{
		Store: store,
		Cfg:   cfg,
		Log:   logger,
	}
}

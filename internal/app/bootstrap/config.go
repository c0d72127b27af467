// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"
	"os"

	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// envPrefix is the environment variable prefix for app keys
// (IDEABOOK_DATA_FILE, IDEABOOK_PAGE_SIZE, ...).
const envPrefix = "IDEABOOK"

// appConfigKeys defines the configuration keys for the Idea Book.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: data_file, site_name, etc.
//   - Environment variables: IDEABOOK_DATA_FILE, IDEABOOK_SITE_NAME, etc.
//   - Command-line flags: --data_file, --site_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "data_file", Default: "", Desc: "Path to the YAML idea catalog (blank uses the embedded catalog)"},
	{Name: "site_name", Default: models.DefaultSiteName, Desc: "Site name shown in the header and page titles"},
	{Name: "contact_fallback_email", Default: models.DefaultContactEmail, Desc: "Contact address used when an idea has no author email"},

	// Static files
	{Name: "static_dir", Default: "public/static", Desc: "Directory served under /static"},
	{Name: "resources_dir", Default: "public/resources", Desc: "Directory served under /public/resources"},

	// Page sizes
	{Name: "spotlight_count", Default: 4, Desc: "Ideas featured on the home page"},
	{Name: "page_size", Default: 24, Desc: "Cards per page of the idea list"},
	{Name: "related_limit", Default: 3, Desc: "Related ideas shown on a detail page"},

	// JSON API
	{Name: "api_rate_limit", Default: 120, Desc: "API requests per minute per client (0 disables)"},
	{Name: "api_burst", Default: 30, Desc: "API requests a client may make back to back"},
	{Name: "api_trust_proxy", Default: false, Desc: "Identify API clients by X-Forwarded-For / X-Real-IP (enable only behind a proxy)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, IDEABOOK_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, envPrefix, appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		DataFile: appValues.String("data_file"),

		SiteName:             appValues.String("site_name"),
		ContactFallbackEmail: appValues.String("contact_fallback_email"),

		StaticDir:    appValues.String("static_dir"),
		ResourcesDir: appValues.String("resources_dir"),

		SpotlightCount: appValues.Int("spotlight_count"),
		PageSize:       appValues.Int("page_size"),
		RelatedLimit:   appValues.Int("related_limit"),

		APIRateLimit:  appValues.Int("api_rate_limit"),
		APIBurst:      appValues.Int("api_burst"),
		APITrustProxy: appValues.Bool("api_trust_proxy"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// Counts must be positive, the API limit must not be negative and a
// configured catalog file must exist.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := validateAppConfig(appCfg); err != nil {
		logger.Error("invalid app config", zap.Error(err))
		return err
	}
	return nil
}

func validateAppConfig(appCfg AppConfig) error {
	var errs []error
	for _, c := range []struct {
		key string
		val int
	}{
		{"spotlight_count", appCfg.SpotlightCount},
		{"page_size", appCfg.PageSize},
		{"related_limit", appCfg.RelatedLimit},
	} {
		if c.val <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", c.key, c.val))
		}
	}

	if appCfg.APIRateLimit < 0 {
		errs = append(errs, fmt.Errorf("api_rate_limit must not be negative, got %d", appCfg.APIRateLimit))
	}
	if appCfg.APIRateLimit > 0 && appCfg.APIBurst <= 0 {
		errs = append(errs, fmt.Errorf("api_burst must be positive when api_rate_limit is set, got %d", appCfg.APIBurst))
	}

	if appCfg.DataFile != "" {
		info, err := os.Stat(appCfg.DataFile)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("data_file: %w", err))
		case info.IsDir():
			errs = append(errs, fmt.Errorf("data_file %q is a directory", appCfg.DataFile))
		}
	}

	return errors.Join(errs...)
}

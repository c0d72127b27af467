// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - Request body size limits
//
// AppConfig is where the Idea Book keeps its own settings: where the
// catalog and static files live and how many ideas each page shows.
type AppConfig struct {
	// Catalog
	DataFile string // YAML catalog path; blank means the catalog embedded in the binary

	// Site
	SiteName             string // Shown in the header and page titles
	ContactFallbackEmail string // Used for contact links when an idea has no author email

	// Static files
	StaticDir    string // Served under /static
	ResourcesDir string // Served under /public/resources

	// Page sizes
	SpotlightCount int // Ideas featured on the home page
	PageSize       int // Cards per page of the idea list
	RelatedLimit   int // Related ideas on a detail page

	// JSON API
	APIRateLimit  int  // Requests per minute per client; 0 disables limiting
	APIBurst      int  // Requests a client may make back to back
	APITrustProxy bool // Key clients by X-Forwarded-For / X-Real-IP; only behind a proxy
}

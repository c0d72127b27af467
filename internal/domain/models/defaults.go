// internal/domain/models/defaults.go
package models

// DefaultSiteName is the site name used when none is configured.
const DefaultSiteName = "AI Idea Book"

// DefaultContactEmail receives questions for ideas that carry no author email.
const DefaultContactEmail = "example@stthomas.edu"

// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	ideastore "github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/store/ideas"
)

// DBDeps holds the back-end dependencies for the app. The Idea Book has no
// database; its only backend is the immutable idea catalog.
type DBDeps struct {
	Ideas *ideastore.Store
}

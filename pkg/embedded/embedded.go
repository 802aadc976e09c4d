// Package embedded provides embedded static assets for the application.
package embedded

import (
	"embed"
)

// Files contains all files embedded in the Go binary:
//   - frontend/index.html - dashboard page template (html/template)
//   - frontend/app.css    - dashboard stylesheet, served under /static
//
//go:embed frontend
var Files embed.FS

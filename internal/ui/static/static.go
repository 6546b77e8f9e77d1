// Package static embeds the dashboard's client assets.
package static

import "embed"

//go:embed dashboard.js
var Files embed.FS

// Package assets embeds the HTML templates shipped with the binary.
package assets

import "embed"

//go:embed templates
var Templates embed.FS

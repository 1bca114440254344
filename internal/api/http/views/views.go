// Package views embeds the HTML templates served by the form endpoint.
package views

import "embed"

//go:embed *.html
var FS embed.FS

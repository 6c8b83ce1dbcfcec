// Package schemas embeds the JSON Schema documents for CLI and API payloads.
package schemas

import "embed"

// FS holds every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS

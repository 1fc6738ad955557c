package server

import (
	"embed"
)

//go:embed template/*.html
var templateFs embed.FS

//go:embed static
var staticFs embed.FS

//go:embed help.md
var helpMarkdown []byte

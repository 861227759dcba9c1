package main

// Output formats for rendered puzzles.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatText = "text"
)

// DefaultPreviewSeating is used by the relations command when neither the
// flag nor the config names a layout.
const DefaultPreviewSeating = "linear"

// Valid output formats.
var validFormats = []string{FormatJSON, FormatYAML, FormatText}

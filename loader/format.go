package loader

import (
	"bytes"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/erraggy/oasflat/internal/httputil"
)

// SourceFormat is the serialization format of a loaded document.
type SourceFormat string

const (
	// FormatUnknown means the format could not be told from name or content.
	FormatUnknown SourceFormat = "unknown"
	// FormatJSON is a JSON document.
	FormatJSON SourceFormat = "json"
	// FormatYAML is a YAML document.
	FormatYAML SourceFormat = "yaml"
)

// StdinSource is the source name that reads from standard input.
const StdinSource = "-"

// formatFromPath detects the format from a file extension.
func formatFromPath(path string) SourceFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatUnknown
	}
}

// formatFromContent guesses the format from the first non-blank byte.
func formatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return FormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return FormatJSON
	}
	return FormatYAML
}

// formatFromURL tries the URL path extension first, then the Content-Type.
func formatFromURL(rawURL, contentType string) SourceFormat {
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		if f := formatFromPath(u.Path); f != FormatUnknown {
			return f
		}
	}
	if contentType == "" {
		return FormatUnknown
	}
	switch base := httputil.BaseMediaType(contentType); base {
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return FormatYAML
	default:
		if httputil.IsJSONMediaType(base) {
			return FormatJSON
		}
	}
	return FormatUnknown
}

// isURL reports whether source is an http:// or https:// URL.
func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

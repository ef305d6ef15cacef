package utils

import (
	"medicenter-service/internal/pkg/constvars"
	"strings"
)

// NormalizeMediaURL resolves the media path variants the upstream returns:
// absolute URLs pass through, server-relative /media/ paths and bare
// filenames are prefixed with the media host. Empty input stays empty.
func NormalizeMediaURL(mediaHost, path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	host := strings.TrimSuffix(mediaHost, "/")
	if strings.HasPrefix(path, constvars.MediaPathPrefix) {
		return host + path
	}
	return host + constvars.MediaPathPrefix + strings.TrimPrefix(path, "/")
}

// Package pathfilter decides which paths server mode may read.
package pathfilter

import (
	"regexp"
	"strings"

	"github.com/taigrr/minigrep/internal/types"
)

// DefaultIgnoredPatterns are always denied.
var DefaultIgnoredPatterns = []string{
	".git/**",
	"**/.git/**",
	"node_modules/**",
	"**/node_modules/**",
	".DS_Store",
	"**/.DS_Store",
	"Thumbs.db",
}

var extensionPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// PathFilter filters paths by glob deny-list and extension allow-list.
// An empty allow-list admits every extension.
type PathFilter struct {
	ignored           []*regexp.Regexp
	allowedExtensions []string
}

// New creates a PathFilter from the defaults plus config.
func New(config *types.PathFilterConfig) *PathFilter {
	patterns := DefaultIgnoredPatterns
	pf := &PathFilter{}

	if config != nil {
		patterns = append(patterns[:len(patterns):len(patterns)], config.IgnoredPatterns...)
		for _, ext := range config.AllowedExtensions {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			pf.allowedExtensions = append(pf.allowedExtensions, ext)
		}
	}

	for _, pattern := range patterns {
		if re, err := globToRegexp(pattern); err == nil {
			pf.ignored = append(pf.ignored, re)
		}
	}

	return pf
}

// globToRegexp converts a glob pattern to an anchored regexp.
func globToRegexp(pattern string) (*regexp.Regexp, error) {
	// Normalize pattern path separators (Windows compatibility)
	normalizedPattern := strings.ReplaceAll(pattern, "\\", "/")

	// Escape all regex special chars first
	regexPattern := regexp.QuoteMeta(normalizedPattern)

	// Convert glob patterns (unescape the escaped versions)
	regexPattern = strings.ReplaceAll(regexPattern, `\*\*`, ".*")  // ** matches any
	regexPattern = strings.ReplaceAll(regexPattern, `\*`, "[^/]*") // * matches non-slash
	regexPattern = strings.ReplaceAll(regexPattern, `\?`, "[^/]")  // ? matches single char

	return regexp.Compile("^" + regexPattern + "$")
}

// IsAllowed checks if a path is allowed based on the filter rules.
func (pf *PathFilter) IsAllowed(path string) bool {
	normalizedPath := strings.TrimPrefix(strings.ReplaceAll(path, "\\", "/"), "./")
	normalizedPath = strings.TrimPrefix(normalizedPath, "/")

	for _, re := range pf.ignored {
		if re.MatchString(normalizedPath) {
			return false
		}
	}

	if len(pf.allowedExtensions) == 0 {
		return true
	}

	if !isFile(normalizedPath) {
		return false
	}

	lowerPath := strings.ToLower(normalizedPath)
	for _, ext := range pf.allowedExtensions {
		if strings.HasSuffix(lowerPath, ext) {
			return true
		}
	}
	return false
}

// isFile determines if a path names a file with an extension.
func isFile(path string) bool {
	if strings.HasSuffix(path, "/") {
		return false
	}

	lastComponent := path
	if i := strings.LastIndex(path, "/"); i != -1 {
		lastComponent = path[i+1:]
	}

	lastDotIndex := strings.LastIndex(lastComponent, ".")
	if lastDotIndex <= 0 {
		// No dot, or dot at the start (like .gitignore)
		return false
	}

	extension := lastComponent[lastDotIndex+1:]
	if len(extension) < 1 || len(extension) > 10 {
		return false
	}

	return extensionPattern.MatchString(extension)
}

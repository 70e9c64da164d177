// Package filesystem reads search targets from disk.
package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/taigrr/minigrep/internal/pathfilter"
)

// ReadErrorKind classifies a failure to read a search target.
type ReadErrorKind string

const (
	KindNotFound        ReadErrorKind = "not_found"
	KindPermission      ReadErrorKind = "permission"
	KindIsDirectory     ReadErrorKind = "is_directory"
	KindInvalidEncoding ReadErrorKind = "invalid_encoding"
	KindIO              ReadErrorKind = "io"
)

// ErrInvalidEncoding is wrapped by a ReadError when the file is not valid UTF-8.
var ErrInvalidEncoding = errors.New("file is not valid UTF-8")

// ReadError reports a file that could not be read as text.
type ReadError struct {
	Path string
	Kind ReadErrorKind
	Err  error
}

func (e *ReadError) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("file not found: %s", e.Path)
	case KindPermission:
		return fmt.Sprintf("permission denied: %s", e.Path)
	case KindIsDirectory:
		return fmt.Sprintf("cannot read directory as file: %s", e.Path)
	case KindInvalidEncoding:
		return fmt.Sprintf("invalid text encoding: %s", e.Path)
	}
	return fmt.Sprintf("failed to read file: %s - %v", e.Path, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *ReadError) Unwrap() error {
	return e.Err
}

// ReadFile reads the whole file at path and returns it as text.
// Every failure is returned as a *ReadError.
func ReadFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", classify(path, err)
	}

	if !utf8.Valid(content) {
		return "", &ReadError{Path: path, Kind: KindInvalidEncoding, Err: ErrInvalidEncoding}
	}

	return string(content), nil
}

func classify(path string, err error) *ReadError {
	kind := KindIO
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = KindNotFound
	case errors.Is(err, fs.ErrPermission):
		kind = KindPermission
	default:
		if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
			kind = KindIsDirectory
		}
	}
	return &ReadError{Path: path, Kind: kind, Err: err}
}

// Service confines file access to a root directory.
type Service struct {
	rootPath   string
	pathFilter *pathfilter.PathFilter
}

// New creates a Service rooted at rootPath.
func New(rootPath string, pf *pathfilter.PathFilter) *Service {
	absPath, _ := filepath.Abs(rootPath)
	if pf == nil {
		pf = pathfilter.New(nil)
	}
	return &Service{
		rootPath:   absPath,
		pathFilter: pf,
	}
}

// ResolvePath resolves a relative path within the root and validates it.
func (s *Service) ResolvePath(relativePath string) (string, error) {
	relativePath = strings.TrimSpace(relativePath)
	normalizedPath := strings.TrimPrefix(relativePath, "/")

	fullPath := filepath.Join(s.rootPath, normalizedPath)
	absPath, err := filepath.Abs(fullPath)
	if err != nil {
		return "", err
	}

	// Security check: ensure path is within root
	relPath, err := filepath.Rel(s.rootPath, absPath)
	if err != nil {
		return "", err
	}
	if relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal not allowed: %s", relativePath)
	}

	return absPath, nil
}

// ReadFile reads a file relative to the root, applying the path filter.
func (s *Service) ReadFile(path string) (string, error) {
	fullPath, err := s.ResolvePath(path)
	if err != nil {
		return "", err
	}

	relPath, err := filepath.Rel(s.rootPath, fullPath)
	if err != nil {
		return "", err
	}
	if !s.pathFilter.IsAllowed(filepath.ToSlash(relPath)) {
		return "", fmt.Errorf("access denied: %s", path)
	}

	content, err := ReadFile(fullPath)
	if err != nil {
		var re *ReadError
		if errors.As(err, &re) {
			// Report the caller's path, not the absolute one.
			re.Path = path
		}
		return "", err
	}

	return content, nil
}

// RootPath returns the root directory.
func (s *Service) RootPath() string {
	return s.rootPath
}

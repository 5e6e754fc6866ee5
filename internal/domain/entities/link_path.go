package entities

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// RelativeLinkPath returns the path of filePath relative to repositoryFolder,
// with every segment percent-encoded and the separators normalized to "/".
func RelativeLinkPath(repositoryFolder, filePath string) (string, error) {
	rel, err := filepath.Rel(filepath.Clean(repositoryFolder), filepath.Clean(filePath))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrFileOutsideRepository, filePath)
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("%w: %s", ErrFileOutsideRepository, filePath)
	}
	if rel == "." {
		return "", nil
	}

	segments := strings.Split(rel, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/"), nil
}

// EscapeRef percent-encodes a branch name or commit so it can be used as a
// single URL path segment or query value ("feature/x" becomes "feature%2Fx").
func EscapeRef(ref string) string {
	return url.PathEscape(ref)
}

// NormalizeRepositoryFolder cleans a folder path and appends a trailing separator.
func NormalizeRepositoryFolder(folder string) string {
	cleaned := filepath.Clean(folder)
	if strings.HasSuffix(cleaned, string(filepath.Separator)) {
		return cleaned
	}
	return cleaned + string(filepath.Separator)
}

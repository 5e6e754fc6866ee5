//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import "github.com/rios0rios0/copygitlink/internal/domain/repositories"

// SpyClipboardRepository records what was written to the clipboard.
type SpyClipboardRepository struct {
	Written  []string
	WriteErr error
}

var _ repositories.ClipboardRepository = (*SpyClipboardRepository)(nil)

func (s *SpyClipboardRepository) WriteAll(text string) error {
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.Written = append(s.Written, text)
	return nil
}

package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/rios0rios0/copygitlink/internal/domain/repositories"
)

// ErrUnsupported is returned when no clipboard utility is available (e.g. a headless Linux box).
var ErrUnsupported = errors.New("clipboard is not available on this system")

// SystemClipboardRepository writes to the operating system clipboard.
type SystemClipboardRepository struct{}

// NewSystemClipboardRepository creates a new SystemClipboardRepository.
func NewSystemClipboardRepository() repositories.ClipboardRepository {
	return &SystemClipboardRepository{}
}

func (r *SystemClipboardRepository) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write to clipboard: %w", err)
	}
	return nil
}

//go:build unit

package entities_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/copygitlink/internal/domain/entities"
)

func TestRelativeLinkPath(t *testing.T) {
	t.Parallel()

	t.Run("should use forward slashes and escape every segment", func(t *testing.T) {
		t.Parallel()

		// given
		folder := filepath.FromSlash("/work/repo/")
		file := filepath.FromSlash("/work/repo/docs/read me#1.md")

		// when
		rel, err := entities.RelativeLinkPath(folder, file)

		// then
		require.NoError(t, err)
		assert.Equal(t, "docs/read%20me%231.md", rel)
	})

	t.Run("should reject a file outside of the folder", func(t *testing.T) {
		t.Parallel()

		// given
		folder := filepath.FromSlash("/work/repo/")
		file := filepath.FromSlash("/work/other/main.go")

		// when
		_, err := entities.RelativeLinkPath(folder, file)

		// then
		require.ErrorIs(t, err, entities.ErrFileOutsideRepository)
	})
}

func TestNormalizeRepositoryFolder(t *testing.T) {
	t.Parallel()

	t.Run("should end with exactly one separator", func(t *testing.T) {
		t.Parallel()

		// given
		expected := filepath.FromSlash("/work/repo/")

		// when
		withoutSlash := entities.NormalizeRepositoryFolder(filepath.FromSlash("/work/repo"))
		withSlash := entities.NormalizeRepositoryFolder(filepath.FromSlash("/work/repo//"))

		// then
		assert.Equal(t, expected, withoutSlash)
		assert.Equal(t, expected, withSlash)
	})
}

func TestEscapeRef(t *testing.T) {
	t.Parallel()

	t.Run("should keep a branch a single path segment", func(t *testing.T) {
		t.Parallel()

		// given
		branch := "feature/x y"

		// when
		escaped := entities.EscapeRef(branch)

		// then
		assert.Equal(t, "feature%2Fx%20y", escaped)
	})
}

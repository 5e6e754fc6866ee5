//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/copygitlink/internal/domain/entities"
)

func TestLineRange_Normalize(t *testing.T) {
	t.Parallel()

	t.Run("should swap lines and columns of a reversed selection", func(t *testing.T) {
		t.Parallel()

		// given
		lines := entities.NewSelection(9, 3, 4, 7)

		// when
		normalized := lines.Normalize()

		// then
		assert.Equal(t, 4, *normalized.StartLine)
		assert.Equal(t, 7, *normalized.StartColumn)
		assert.Equal(t, 9, *normalized.EndLine)
		assert.Equal(t, 3, *normalized.EndColumn)
	})

	t.Run("should keep ordered and partial ranges", func(t *testing.T) {
		t.Parallel()

		// given
		ordered := entities.NewLineRange(2, 5)
		sameLine := entities.NewSelection(2, 8, 2, 1)
		startOnly := entities.StartLineOnly(6)

		// when
		normalizedOrdered := ordered.Normalize()
		normalizedSameLine := sameLine.Normalize()
		normalizedStartOnly := startOnly.Normalize()

		// then
		assert.Equal(t, ordered, normalizedOrdered)
		assert.Equal(t, sameLine, normalizedSameLine)
		assert.Equal(t, startOnly, normalizedStartOnly)
		assert.False(t, normalizedStartOnly.HasEnd())
	})

	t.Run("should report an empty range", func(t *testing.T) {
		t.Parallel()

		// given
		var lines entities.LineRange

		// when
		empty := lines.IsEmpty()

		// then
		assert.True(t, empty)
		assert.False(t, lines.HasStart())
		assert.False(t, entities.StartLineOnly(0).IsEmpty())
	})
}

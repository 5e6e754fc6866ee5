//go:build unit

package commands_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/copygitlink/internal/domain/commands"
	"github.com/rios0rios0/copygitlink/internal/domain/entities"
)

func TestDiscoverCommand_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should report every path in the given order", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture()
		f.gitConfig.
			WithRepository(p("/work/repo"), map[string]string{"origin": originURL}).
			WithRepository(p("/work/local"), nil)
		cmd := commands.NewDiscoverCommand(f.registry, f.newResolver, f.newDiscovery)
		paths := []string{p("/work/repo/a/b.go"), p("/work/local/c.go"), p("/work/none/d.go")}

		// when
		results, err := cmd.Execute(context.Background(), settingsWith("generic"), commands.DiscoverOptions{Paths: paths})

		// then
		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, paths[0], results[0].Path)
		assert.Equal(t, commands.StatusRemote, results[0].Status)
		assert.Equal(t, p("/work/repo/"), results[0].Folder)
		assert.Equal(t, "test-org", results[0].Identity.Properties()[entities.PropertyOrganization])
		assert.Equal(t, commands.StatusLocal, results[1].Status)
		assert.Equal(t, commands.StatusNone, results[2].Status)
		assert.Equal(t, 2, f.gitConfig.ReadCallCount())
	})

	t.Run("should search a directory argument itself first", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		f := newFixture()
		f.gitConfig.WithRepository(dir, map[string]string{"origin": originURL})
		cmd := commands.NewDiscoverCommand(f.registry, f.newResolver, f.newDiscovery)

		// when
		results, err := cmd.Execute(context.Background(), settingsWith("generic"), commands.DiscoverOptions{
			Paths: []string{dir},
		})

		// then
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, commands.StatusRemote, results[0].Status)
		assert.Equal(t, dir+string(filepath.Separator), results[0].Folder)
	})

	t.Run("should fail for an unknown provider in the settings", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture()
		cmd := commands.NewDiscoverCommand(f.registry, f.newResolver, f.newDiscovery)

		// when
		results, err := cmd.Execute(context.Background(), settingsWith("nope"), commands.DiscoverOptions{
			Paths: []string{p("/work/repo/a.go")},
		})

		// then
		require.ErrorIs(t, err, entities.ErrUnknownProvider)
		assert.Nil(t, results)
	})

	t.Run("should stop when the context is cancelled", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture()
		cmd := commands.NewDiscoverCommand(f.registry, f.newResolver, f.newDiscovery)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// when
		_, err := cmd.Execute(ctx, settingsWith("generic"), commands.DiscoverOptions{
			Paths: []string{p("/work/repo/a.go")},
		})

		// then
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestSearchStart(t *testing.T) {
	t.Parallel()

	t.Run("should keep file paths and descend into directories", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()

		// when
		forDir := commands.SearchStart(dir)
		forFile := commands.SearchStart(filepath.Join(dir, "missing.go"))

		// then
		assert.Equal(t, dir, filepath.Dir(forDir))
		assert.Equal(t, filepath.Join(dir, "missing.go"), forFile)
	})
}

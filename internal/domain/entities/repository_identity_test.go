//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/copygitlink/internal/domain/entities"
	"github.com/rios0rios0/copygitlink/test/domain/entitybuilders"
)

func TestRepositoryIdentity(t *testing.T) {
	t.Parallel()

	t.Run("should not be changed through its inputs or outputs", func(t *testing.T) {
		t.Parallel()

		// given
		props := map[string]string{entities.PropertyRepository: "repo"}
		identity := entities.NewRepositoryIdentity("https://host/org/repo.git", props, "generic")

		// when
		props[entities.PropertyRepository] = "changed"
		identity.Properties()[entities.PropertyRepository] = "changed again"

		// then
		value, ok := identity.Property(entities.PropertyRepository)
		assert.True(t, ok)
		assert.Equal(t, "repo", value)
	})

	t.Run("should require present non-empty properties", func(t *testing.T) {
		t.Parallel()

		// given
		identity := entitybuilders.NewRepositoryIdentityBuilder().
			WithProperty(entities.PropertyHost, "").
			WithoutProperty(entities.PropertyOrganization).
			BuildIdentity()

		// when
		_, hostErr := identity.RequireProperty(entities.PropertyHost)
		_, orgErr := identity.RequireProperty(entities.PropertyOrganization)
		repo, repoErr := identity.RequireProperty(entities.PropertyRepository)

		// then
		require.ErrorIs(t, hostErr, entities.ErrMissingProperty)
		require.ErrorIs(t, orgErr, entities.ErrMissingProperty)
		require.NoError(t, repoErr)
		assert.Equal(t, "test-repo", repo)
	})

	t.Run("should report the zero identity", func(t *testing.T) {
		t.Parallel()

		// given
		var zero entities.RepositoryIdentity

		// when
		built := entitybuilders.NewRepositoryIdentityBuilder().BuildIdentity()

		// then
		assert.True(t, zero.IsZero())
		assert.False(t, built.IsZero())
	})
}

//go:build unit

package azuredevops_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/copygitlink/internal/domain/entities"
	"github.com/rios0rios0/copygitlink/internal/infrastructure/repositories/azuredevops"
	"github.com/rios0rios0/copygitlink/test/infrastructure/repositorydoubles"
)

func TestAzureDevOpsProviderRepository_TryParse(t *testing.T) {
	t.Parallel()

	t.Run("should parse dev.azure.com URLs with or without trailing slash and query", func(t *testing.T) {
		t.Parallel()

		// given
		provider := azuredevops.NewAzureDevOpsProviderRepository(&repositorydoubles.StubBranchCommitRepository{})
		urls := []string{
			"https://dev.azure.com/Contoso/DefaultCollection/Contoso/_git/MyRepository/?foo=bar",
			"https://dev.azure.com/Contoso/DefaultCollection/Contoso/_git/MyRepository?foo=bar",
			"https://dev.azure.com/Contoso/DefaultCollection/Contoso/_git/MyRepository",
			"https://dev.azure.com/Contoso/Contoso/_git/MyRepository",
		}

		for _, rawURL := range urls {
			// when
			props, ok := provider.TryParse(rawURL)

			// then
			require.True(t, ok, rawURL)
			assert.Equal(t, "Contoso", props[entities.PropertyOrganization])
			assert.Equal(t, "Contoso", props[entities.PropertyProject])
			assert.Equal(t, "MyRepository", props[entities.PropertyRepository])
			assert.Equal(t, "https://dev.azure.com/Contoso/", props[entities.PropertyOrganizationURL])
			assert.Equal(t, "https://dev.azure.com/Contoso/Contoso/_git/MyRepository/", props[entities.PropertyRepositoryURL])
		}
	})

	t.Run("should parse visualstudio.com URLs and take the organization from the host", func(t *testing.T) {
		t.Parallel()

		// given
		provider := azuredevops.NewAzureDevOpsProviderRepository(&repositorydoubles.StubBranchCommitRepository{})
		urls := []string{
			"https://john.doe@contoso.visualstudio.com/DefaultCollection/Contoso/_git/MyRepository/?foo=bar",
			"https://john.doe@contoso.visualstudio.com/DefaultCollection/Contoso/_git/MyRepository?foo=bar",
			"https://john.doe@contoso.visualstudio.com/DefaultCollection/Contoso/_git/MyRepository",
		}

		for _, rawURL := range urls {
			// when
			props, ok := provider.TryParse(rawURL)

			// then
			require.True(t, ok, rawURL)
			assert.Equal(t, "contoso", props[entities.PropertyOrganization])
			assert.Equal(t, "Contoso", props[entities.PropertyProject])
			assert.Equal(t, "MyRepository", props[entities.PropertyRepository])
			assert.Equal(t, "https://contoso.visualstudio.com/", props[entities.PropertyOrganizationURL])
			assert.Equal(
				t, "https://contoso.visualstudio.com/Contoso/_git/MyRepository/", props[entities.PropertyRepositoryURL],
			)
		}
	})

	t.Run("should parse on-premises TFS URLs on port 8080", func(t *testing.T) {
		t.Parallel()

		// given
		provider := azuredevops.NewAzureDevOpsProviderRepository(&repositorydoubles.StubBranchCommitRepository{})
		urls := []string{
			"https://tfs.contoso.com:8080/tfs/Contoso/_git/MyRepository/?foo=bar",
			"https://tfs.contoso.com:8080/tfs/Contoso/_git/MyRepository?foo=bar",
		}

		for _, rawURL := range urls {
			// when
			props, ok := provider.TryParse(rawURL)

			// then
			require.True(t, ok, rawURL)
			assert.Equal(t, "tfs.contoso.com", props[entities.PropertyOrganization])
			assert.Equal(t, "Contoso", props[entities.PropertyProject])
			assert.Equal(t, "MyRepository", props[entities.PropertyRepository])
			assert.Equal(t, "https://tfs.contoso.com:8080/tfs/", props[entities.PropertyOrganizationURL])
			assert.Equal(
				t, "https://tfs.contoso.com:8080/tfs/Contoso/_git/MyRepository/", props[entities.PropertyRepositoryURL],
			)
		}
	})

	t.Run("should not recognize incomplete or foreign URLs", func(t *testing.T) {
		t.Parallel()

		// given
		provider := azuredevops.NewAzureDevOpsProviderRepository(&repositorydoubles.StubBranchCommitRepository{})
		badURLs := []string{
			"",
			"hello I am not a uri!",
			"ssh://dev.azure.com/Contoso/Contoso/_git/MyRepository",
			"https://contoso.visualstudio.com/Contoso",
			"https://contoso.visualstudio.com/Contoso/",
			"https://contoso.visualstudio.com/Contoso/Hello",
			"https://contoso.visualstudio.com/Contoso/Hello/",
			"https://contoso.visualstudio.com/Contoso/Hello/_git",
			"https://contoso.visualstudio.com/Contoso/_git",
			"https://contoso.visualstudio.com/Contoso/_git/",
			"https://contoso.visualstudio.com/Contoso/Hello?dfghfhg=fghj",
			"https://contoso.visualstudio.com/Contoso/Hello/?dfghfhg=fghj",
			"https://contoso.visualstudio.com/Contoso/Hello/_git?dfghfhg=fghj",
			"https://contoso.visualstudio.com/Contoso/_git?dfghfhg=fghj",
			"https://contoso.visualstudio.com/Contoso/_git/?dfghfhg=fghj",
			"https://contoso.visualstudio.com",
			"https://contoso.visualstudio.com/",
			"https://dev.azure.com/{organization}/",
			"https://dev.azure.com/Contoso/Contoso",
			"https://dev.azure.com/Contoso/Contoso/_git/MyRepository/extra",
			"https://tfs.contoso.com:8080/collection/Contoso/_git/MyRepository",
			"http://www.bing.com",
			"http://www.bing.com:8080",
		}

		for _, rawURL := range badURLs {
			// when
			props, ok := provider.TryParse(rawURL)

			// then
			assert.False(t, ok, rawURL)
			assert.Nil(t, props, rawURL)
		}
	})
}

func TestAzureDevOpsProviderRepository_GenerateLink(t *testing.T) {
	t.Parallel()

	folder := filepath.FromSlash("/work/MyRepository/")
	file := filepath.FromSlash("/work/MyRepository/src/Program.cs")
	identity := entities.NewRepositoryIdentity(
		"https://dev.azure.com/Contoso/Contoso/_git/MyRepository",
		map[string]string{
			entities.PropertyOrganization:    "Contoso",
			entities.PropertyProject:         "Contoso",
			entities.PropertyRepository:      "MyRepository",
			entities.PropertyOrganizationURL: "https://dev.azure.com/Contoso/",
			entities.PropertyRepositoryURL:   "https://dev.azure.com/Contoso/Contoso/_git/MyRepository/",
		},
		"azuredevops",
	)
	base := "https://dev.azure.com/Contoso/Contoso/_git/MyRepository/?path=src/Program.cs&version=GBmain&lineStyle=plain"

	t.Run("should link to the file without selection", func(t *testing.T) {
		t.Parallel()

		// given
		provider := azuredevops.NewAzureDevOpsProviderRepository(&repositorydoubles.StubBranchCommitRepository{Branch: "main"})

		// when
		url, err := provider.GenerateLink(context.Background(), folder, identity, file, entities.LineRange{})

		// then
		require.NoError(t, err)
		assert.Equal(t, base, url)
	})

	t.Run("should append every bound of a full selection", func(t *testing.T) {
		t.Parallel()

		// given
		provider := azuredevops.NewAzureDevOpsProviderRepository(&repositorydoubles.StubBranchCommitRepository{Branch: "main"})

		// when
		url, err := provider.GenerateLink(context.Background(), folder, identity, file, entities.NewSelection(4, 0, 9, 12))

		// then
		require.NoError(t, err)
		assert.Equal(t, base+"&line=5&lineEnd=10&lineStartColumn=1&lineEndColumn=13", url)
	})

	t.Run("should append only the bounds that are present", func(t *testing.T) {
		t.Parallel()

		// given
		provider := azuredevops.NewAzureDevOpsProviderRepository(&repositorydoubles.StubBranchCommitRepository{Branch: "main"})
		endColumn := 3

		// when
		startOnly, errStart := provider.GenerateLink(context.Background(), folder, identity, file, entities.StartLineOnly(4))
		columnOnly, errColumn := provider.GenerateLink(
			context.Background(), folder, identity, file, entities.LineRange{EndColumn: &endColumn},
		)

		// then
		require.NoError(t, errStart)
		require.NoError(t, errColumn)
		assert.Equal(t, base+"&line=5", startOnly)
		assert.Equal(t, base+"&lineEndColumn=4", columnOnly)
	})

	t.Run("should escape the branch and query separators in the path", func(t *testing.T) {
		t.Parallel()

		// given
		provider := azuredevops.NewAzureDevOpsProviderRepository(
			&repositorydoubles.StubBranchCommitRepository{Branch: "users/jdoe/fix"},
		)

		// when
		url, err := provider.GenerateLink(
			context.Background(), folder, identity,
			filepath.FromSlash("/work/MyRepository/docs/a&b.md"), entities.LineRange{},
		)

		// then
		require.NoError(t, err)
		assert.Equal(
			t,
			"https://dev.azure.com/Contoso/Contoso/_git/MyRepository/?path=docs/a%26b.md&version=GBusers%2Fjdoe%2Ffix&lineStyle=plain",
			url,
		)
	})

	t.Run("should fail without a repository URL", func(t *testing.T) {
		t.Parallel()

		// given
		provider := azuredevops.NewAzureDevOpsProviderRepository(&repositorydoubles.StubBranchCommitRepository{Branch: "main"})
		incomplete := entities.NewRepositoryIdentity("x", map[string]string{}, "azuredevops")

		// when
		_, err := provider.GenerateLink(context.Background(), folder, incomplete, file, entities.LineRange{})

		// then
		require.ErrorIs(t, err, entities.ErrMissingProperty)
	})

	t.Run("should fail when no branch can be resolved", func(t *testing.T) {
		t.Parallel()

		// given
		provider := azuredevops.NewAzureDevOpsProviderRepository(&repositorydoubles.StubBranchCommitRepository{})

		// when
		_, err := provider.GenerateLink(context.Background(), folder, identity, file, entities.LineRange{})

		// then
		require.ErrorIs(t, err, entities.ErrEmptyBranch)
	})
}

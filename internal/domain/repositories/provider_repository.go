package repositories

import (
	"context"

	"github.com/rios0rios0/copygitlink/internal/domain/entities"
)

// ProviderRepository abstracts a Git hosting service (GitHub, GitLab, Azure DevOps, etc.).
// It pairs the parser that recognizes the service's push URLs with the builder
// that turns a parsed identity into a browsable link.
type ProviderRepository interface {
	// Name returns the provider identifier (e.g. "generic", "azuredevops").
	Name() string

	// TryParse extracts the provider properties from a push URL. It never
	// performs I/O and returns false when the URL is not recognized.
	TryParse(remoteURL string) (map[string]string, bool)

	// GenerateLink builds a URL pointing at filePath inside the repository,
	// optionally scoped to a 0-based line/column range. The range must already
	// be normalized (start <= end).
	GenerateLink(
		ctx context.Context,
		repositoryFolder string,
		identity entities.RepositoryIdentity,
		filePath string,
		lines entities.LineRange,
	) (string, error)
}

// RemoteURLParser turns a raw push URL into a repository identity by trying
// providers in a fixed order.
type RemoteURLParser interface {
	Parse(remoteURL string) (*entities.RepositoryIdentity, bool)
}

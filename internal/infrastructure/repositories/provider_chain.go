package repositories

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/copygitlink/internal/domain/entities"
	domainRepos "github.com/rios0rios0/copygitlink/internal/domain/repositories"
)

// ProviderChain tries its providers in order and remembers which one owns
// each identity so links are built by the provider that parsed the URL.
type ProviderChain struct {
	providers []domainRepos.ProviderRepository
	byName    map[string]domainRepos.ProviderRepository
}

var _ domainRepos.RemoteURLParser = (*ProviderChain)(nil)

// NewProviderChain creates a chain over providers, in priority order.
func NewProviderChain(providers ...domainRepos.ProviderRepository) *ProviderChain {
	byName := make(map[string]domainRepos.ProviderRepository, len(providers))
	for _, provider := range providers {
		byName[provider.Name()] = provider
	}
	return &ProviderChain{providers: providers, byName: byName}
}

// Parse returns the identity produced by the first provider that recognizes
// remoteURL. An unrecognized URL is not an error.
func (c *ProviderChain) Parse(remoteURL string) (*entities.RepositoryIdentity, bool) {
	for _, provider := range c.providers {
		props, ok := provider.TryParse(remoteURL)
		if !ok {
			continue
		}

		logger.Debugf("Remote %q recognized by provider %q", remoteURL, provider.Name())
		identity := entities.NewRepositoryIdentity(remoteURL, props, provider.Name())
		return &identity, true
	}

	logger.Debugf("Remote %q not recognized by any provider", remoteURL)
	return nil, false
}

// GenerateLink delegates to the provider that parsed identity.
func (c *ProviderChain) GenerateLink(
	ctx context.Context,
	repositoryFolder string,
	identity entities.RepositoryIdentity,
	filePath string,
	lines entities.LineRange,
) (string, error) {
	provider, ok := c.byName[identity.ProviderName()]
	if !ok {
		return "", fmt.Errorf("%w: %q", entities.ErrUnknownProvider, identity.ProviderName())
	}

	url, err := provider.GenerateLink(ctx, repositoryFolder, identity, filePath, lines)
	if err != nil {
		return "", fmt.Errorf("failed to generate %s link: %w", provider.Name(), err)
	}
	return url, nil
}

// Providers returns the provider names in priority order.
func (c *ProviderChain) Providers() []string {
	names := make([]string, 0, len(c.providers))
	for _, provider := range c.providers {
		names = append(names, provider.Name())
	}
	return names
}

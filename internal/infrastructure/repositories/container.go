package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/copygitlink/internal/domain/repositories"
	adoRepo "github.com/rios0rios0/copygitlink/internal/infrastructure/repositories/azuredevops"
	clipRepo "github.com/rios0rios0/copygitlink/internal/infrastructure/repositories/clipboard"
	discRepo "github.com/rios0rios0/copygitlink/internal/infrastructure/repositories/discovery"
	genRepo "github.com/rios0rios0/copygitlink/internal/infrastructure/repositories/generic"
	cfgRepo "github.com/rios0rios0/copygitlink/internal/infrastructure/repositories/gitconfig"
	ghRepo "github.com/rios0rios0/copygitlink/internal/infrastructure/repositories/github"
	refRepo "github.com/rios0rios0/copygitlink/internal/infrastructure/repositories/gitref"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register provider registry with all provider factories, in parsing priority order
	if err := container.Provide(func() *ProviderRegistry {
		reg := NewProviderRegistry()
		reg.Register("generic", genRepo.NewGenericProviderRepository)
		reg.Register("azuredevops", adoRepo.NewAzureDevOpsProviderRepository)
		reg.Register("github", ghRepo.NewGitHubProviderRepository)
		reg.Register("generic-commit", genRepo.NewGenericCommitProviderRepository)
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(cfgRepo.NewGitConfigRepository); err != nil {
		return err
	}
	if err := container.Provide(clipRepo.NewSystemClipboardRepository); err != nil {
		return err
	}

	if err := container.Provide(func() ResolverFactory {
		return refRepo.NewBranchCommitRepository
	}); err != nil {
		return err
	}
	if err := container.Provide(func(gitConfig domainRepos.GitConfigRepository) DiscoveryFactory {
		return func(parser domainRepos.RemoteURLParser, remoteName string) domainRepos.DiscoveryRepository {
			return discRepo.NewDiscoveryRepository(parser, gitConfig, remoteName)
		}
	}); err != nil {
		return err
	}

	return nil
}

//go:build unit

package commands_test

import (
	"path/filepath"

	"github.com/rios0rios0/copygitlink/internal/domain/entities"
	domainRepos "github.com/rios0rios0/copygitlink/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/copygitlink/internal/infrastructure/repositories"
	"github.com/rios0rios0/copygitlink/internal/infrastructure/repositories/discovery"
	"github.com/rios0rios0/copygitlink/test/infrastructure/repositorydoubles"
)

const (
	originURL = "https://github.com/test-org/test-repo.git"
	localLink = "https://github.com/test-org/test-repo/blob/main/main.go"
)

func p(path string) string { return filepath.FromSlash(path) }

// fixture wires the commands to a real discovery engine over spy collaborators.
type fixture struct {
	provider  *repositorydoubles.SpyProviderRepository
	resolver  *repositorydoubles.StubBranchCommitRepository
	gitConfig *repositorydoubles.SpyGitConfigRepository
	clipboard *repositorydoubles.SpyClipboardRepository
	registry  *infraRepos.ProviderRegistry
	remotes   []string
}

func newFixture() *fixture {
	f := &fixture{
		provider: &repositorydoubles.SpyProviderRepository{
			ProviderName: "generic",
			ParseResults: map[string]map[string]string{
				originURL: {
					entities.PropertyHost:         "github.com",
					entities.PropertyOrganization: "test-org",
					entities.PropertyRepository:   "test-repo",
				},
			},
			Link: localLink,
		},
		resolver:  &repositorydoubles.StubBranchCommitRepository{Branch: "main"},
		gitConfig: repositorydoubles.NewSpyGitConfigRepository(),
		clipboard: &repositorydoubles.SpyClipboardRepository{},
		registry:  infraRepos.NewProviderRegistry(),
	}
	f.registry.Register("generic", func(_ domainRepos.BranchCommitRepository) domainRepos.ProviderRepository {
		return f.provider
	})
	return f
}

func (f *fixture) newResolver(remoteName string) domainRepos.BranchCommitRepository {
	f.remotes = append(f.remotes, remoteName)
	return f.resolver
}

func (f *fixture) newDiscovery(parser domainRepos.RemoteURLParser, remoteName string) domainRepos.DiscoveryRepository {
	return discovery.NewDiscoveryRepository(parser, f.gitConfig, remoteName)
}

func settingsWith(providers ...string) *entities.Settings {
	settings := entities.NewDefaultSettings()
	settings.Providers = providers
	return settings
}

package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/copygitlink/internal/domain/entities"
	infraRepos "github.com/rios0rios0/copygitlink/internal/infrastructure/repositories"
)

// maxConcurrentDiscoveries bounds the callers waiting on the discovery engine.
const maxConcurrentDiscoveries = 8

// directoryMarker is joined to directory arguments so that the directory
// itself is the first folder searched for a repository. It must survive filepath.Clean.
const directoryMarker = ".git"

// Discover is the interface for the discover command.
type Discover interface {
	Execute(ctx context.Context, settings *entities.Settings, opts DiscoverOptions) ([]DiscoveryResult, error)
}

// DiscoverOptions holds runtime options for the discover command.
type DiscoverOptions struct {
	Paths []string
}

// DiscoveryStatus is the outcome of discovering one path.
type DiscoveryStatus string

const (
	StatusRemote DiscoveryStatus = "remote"     // inside a repository with a recognized remote
	StatusLocal  DiscoveryStatus = "local-only" // inside a repository without a usable remote
	StatusNone   DiscoveryStatus = "none"       // not inside a known repository
)

// DiscoveryResult describes where a path was found.
type DiscoveryResult struct {
	Path     string
	Folder   string
	Identity entities.RepositoryIdentity
	Status   DiscoveryStatus
}

// DiscoverCommand queues every path for discovery, then waits for each of them.
type DiscoverCommand struct {
	providerRegistry *infraRepos.ProviderRegistry
	newResolver      infraRepos.ResolverFactory
	newDiscovery     infraRepos.DiscoveryFactory
}

// NewDiscoverCommand creates a new DiscoverCommand.
func NewDiscoverCommand(
	providerRegistry *infraRepos.ProviderRegistry,
	newResolver infraRepos.ResolverFactory,
	newDiscovery infraRepos.DiscoveryFactory,
) *DiscoverCommand {
	return &DiscoverCommand{
		providerRegistry: providerRegistry,
		newResolver:      newResolver,
		newDiscovery:     newDiscovery,
	}
}

// Execute returns one result per path, in the order the paths were given.
func (it *DiscoverCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts DiscoverOptions,
) ([]DiscoveryResult, error) {
	chain, err := it.providerRegistry.Select(settings.Providers, it.newResolver(settings.Remote))
	if err != nil {
		return nil, fmt.Errorf("failed to configure providers: %w", err)
	}

	engine := it.newDiscovery(chain, settings.Remote)
	defer engine.Close()

	starts := make([]string, len(opts.Paths))
	for i, path := range opts.Paths {
		starts[i] = searchStart(path)
		engine.QueueDiscovery(starts[i])
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentDiscoveries)
	for _, start := range starts {
		g.Go(func() error {
			return engine.DiscoverSync(gctx, start)
		})
	}
	if err = g.Wait(); err != nil {
		return nil, fmt.Errorf("discovery interrupted: %w", err)
	}

	results := make([]DiscoveryResult, len(opts.Paths))
	for i, path := range opts.Paths {
		result := DiscoveryResult{Path: path, Status: StatusNone}
		if folder, identity, found := engine.TryGetKnown(starts[i]); found {
			result.Folder = folder
			result.Identity = identity
			result.Status = StatusRemote
		} else if engine.IsKnownLocal(starts[i]) {
			result.Status = StatusLocal
		}
		logger.Debugf("%s: %s %s", path, result.Status, result.Folder)
		results[i] = result
	}

	return results, nil
}

// searchStart turns path into an absolute file path whose parent is the first
// folder to search.
func searchStart(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}

	if info, statErr := os.Stat(abs); statErr == nil && info.IsDir() {
		return filepath.Join(abs, directoryMarker)
	}
	return abs
}

package commands

import (
	"context"
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/copygitlink/internal/domain/entities"
	"github.com/rios0rios0/copygitlink/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/copygitlink/internal/infrastructure/repositories"
)

// Link is the interface for the link command.
type Link interface {
	Execute(ctx context.Context, settings *entities.Settings, opts LinkOptions) (string, error)
}

// LinkOptions holds runtime options for a single link.
type LinkOptions struct {
	FilePath string
	Lines    entities.LineRange // 0-based, may be reversed
	Copy     bool               // Copy the link even if settings do not ask for it
}

// LinkCommand resolves the repository of a file and builds a browsable link to it:
// discover repository -> resolve branch or commit -> build link -> optionally copy.
type LinkCommand struct {
	providerRegistry *infraRepos.ProviderRegistry
	newResolver      infraRepos.ResolverFactory
	newDiscovery     infraRepos.DiscoveryFactory
	clipboard        repositories.ClipboardRepository
}

// NewLinkCommand creates a new LinkCommand.
func NewLinkCommand(
	providerRegistry *infraRepos.ProviderRegistry,
	newResolver infraRepos.ResolverFactory,
	newDiscovery infraRepos.DiscoveryFactory,
	clipboard repositories.ClipboardRepository,
) *LinkCommand {
	return &LinkCommand{
		providerRegistry: providerRegistry,
		newResolver:      newResolver,
		newDiscovery:     newDiscovery,
		clipboard:        clipboard,
	}
}

// Execute returns the link for opts.FilePath.
func (it *LinkCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts LinkOptions,
) (string, error) {
	chain, err := it.providerRegistry.Select(settings.Providers, it.newResolver(settings.Remote))
	if err != nil {
		return "", fmt.Errorf("failed to configure providers: %w", err)
	}

	filePath, err := filepath.Abs(opts.FilePath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", opts.FilePath, err)
	}

	engine := it.newDiscovery(chain, settings.Remote)
	defer engine.Close()

	if err = engine.DiscoverSync(ctx, filePath); err != nil {
		return "", fmt.Errorf("discovery of %s interrupted: %w", filePath, err)
	}

	folder, identity, found := engine.TryGetKnown(filePath)
	if !found {
		if engine.IsKnownLocal(filePath) {
			return "", fmt.Errorf("%w: %s (repository has no usable %q remote)",
				entities.ErrNotInRepository, filePath, settings.Remote)
		}
		return "", fmt.Errorf("%w: %s", entities.ErrNotInRepository, filePath)
	}
	logger.Debugf("%s belongs to %s (%s)", filePath, folder, identity.ProviderName())

	url, err := chain.GenerateLink(ctx, folder, identity, filePath, opts.Lines.Normalize())
	if err != nil {
		return "", err
	}

	if opts.Copy || settings.Copy {
		if copyErr := it.clipboard.WriteAll(url); copyErr != nil {
			logger.Warnf("Failed to copy link to clipboard: %v", copyErr)
		} else {
			logger.Info("Link copied to clipboard")
		}
	}

	return url, nil
}

package github

import (
	"context"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/copygitlink/internal/domain/entities"
	"github.com/rios0rios0/copygitlink/internal/domain/repositories"
	"github.com/rios0rios0/copygitlink/internal/infrastructure/repositories/remoteurl"
)

const (
	providerName    = "github"
	githubHost      = "github.com"
	remoteGitEnding = ".git"
	segmentCount    = 3 // "/", "{org}/", "{repo}.git"
)

// GitHubProviderRepository implements repositories.ProviderRepository for
// repositories hosted on github.com itself. Self-managed hosts and SSH remotes
// are left to the generic provider.
type GitHubProviderRepository struct {
	resolver repositories.BranchCommitRepository
}

// NewGitHubProviderRepository creates a new github.com provider.
func NewGitHubProviderRepository(resolver repositories.BranchCommitRepository) repositories.ProviderRepository {
	return &GitHubProviderRepository{resolver: resolver}
}

func (p *GitHubProviderRepository) Name() string { return providerName }

// TryParse accepts only "http(s)://github.com/{org}/{repo}.git".
func (p *GitHubProviderRepository) TryParse(remoteURL string) (map[string]string, bool) {
	u, ok := remoteurl.ParseHTTP(remoteURL)
	if !ok || !strings.EqualFold(remoteurl.Hostname(u), githubHost) {
		return nil, false
	}

	segments := remoteurl.Segments(u)
	if len(segments) != segmentCount {
		return nil, false
	}

	last := segments[2]
	if !strings.HasSuffix(last, remoteGitEnding) || len(last) == len(remoteGitEnding) {
		return nil, false
	}

	organization := remoteurl.TrimSegment(segments[1])
	if organization == "" {
		return nil, false
	}

	return map[string]string{
		entities.PropertyHost:         githubHost,
		entities.PropertyOrganization: organization,
		entities.PropertyRepository:   strings.TrimSuffix(last, remoteGitEnding),
	}, true
}

// GenerateLink builds "https://github.com/{org}/{repo}/blob/{branch}/{path}".
// A "#L{start}-L{end}" anchor is added only when both lines are known.
func (p *GitHubProviderRepository) GenerateLink(
	ctx context.Context,
	repositoryFolder string,
	identity entities.RepositoryIdentity,
	filePath string,
	lines entities.LineRange,
) (string, error) {
	organization, err := identity.RequireProperty(entities.PropertyOrganization)
	if err != nil {
		return "", err
	}
	repository, err := identity.RequireProperty(entities.PropertyRepository)
	if err != nil {
		return "", err
	}

	branch := p.resolver.GetBestRemoteBranch(ctx, repositoryFolder)
	if branch == "" {
		return "", fmt.Errorf("%w in %s", entities.ErrEmptyBranch, repositoryFolder)
	}

	relativePath, err := entities.RelativeLinkPath(repositoryFolder, filePath)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf(
		"https://%s/%s/%s/blob/%s/%s",
		githubHost, organization, repository, entities.EscapeRef(branch), relativePath,
	)
	if lines.HasStart() && lines.HasEnd() {
		url += fmt.Sprintf("#L%d-L%d", *lines.StartLine+1, *lines.EndLine+1)
	}

	logger.Debugf("[%s] Generated link for %s: %s", providerName, filePath, url)
	return url, nil
}

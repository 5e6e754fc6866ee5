package generic

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
	providerName       = "generic"
	commitProviderName = "generic-commit"
	remoteGitEnding    = ".git"
	minSegments        = 3 // "/", "{org}/", "{repo}.git"
	githubHostMarker   = "github"
)

// GenericProviderRepository handles GitHub, GitLab and their self-managed
// instances. The branch and commit flavors parse identically and differ only
// in the ref and line anchors of the generated link.
type GenericProviderRepository struct {
	name     string
	resolver repositories.BranchCommitRepository
	byCommit bool
}

// NewGenericProviderRepository creates the branch-based provider.
func NewGenericProviderRepository(
	resolver repositories.BranchCommitRepository,
) repositories.ProviderRepository {
	return &GenericProviderRepository{name: providerName, resolver: resolver}
}

// NewGenericCommitProviderRepository creates the commit-based provider (permalinks).
func NewGenericCommitProviderRepository(
	resolver repositories.BranchCommitRepository,
) repositories.ProviderRepository {
	return &GenericProviderRepository{name: commitProviderName, resolver: resolver, byCommit: true}
}

func (p *GenericProviderRepository) Name() string { return p.name }

// TryParse recognizes "https://{host}/{org...}/{repo}.git" and the scp-like
// "git@{host}:{org...}/{repo}.git" form. Nested groups are kept in Organization.
func (p *GenericProviderRepository) TryParse(remoteURL string) (map[string]string, bool) {
	if strings.TrimSpace(remoteURL) == "" {
		return nil, false
	}

	if remoteurl.HasSSHPrefix(remoteURL) {
		remoteURL = remoteurl.ConvertSSHToHTTP(remoteURL)
	}

	u, ok := remoteurl.ParseHTTP(remoteURL)
	if !ok {
		return nil, false
	}

	segments := remoteurl.Segments(u)
	if len(segments) < minSegments {
		return nil, false
	}

	last := segments[len(segments)-1]
	if !strings.HasSuffix(last, remoteGitEnding) || len(last) == len(remoteGitEnding) {
		return nil, false
	}

	organization := strings.Trim(strings.Join(segments[1:len(segments)-1], ""), "/")
	if organization == "" {
		return nil, false
	}

	return map[string]string{
		entities.PropertyHost:         remoteurl.Host(u),
		entities.PropertyOrganization: organization,
		entities.PropertyRepository:   strings.TrimSuffix(last, remoteGitEnding),
	}, true
}

// GenerateLink builds "https://{host}/{org}/{repo}/blob/{ref}/{path}" plus the line anchor.
func (p *GenericProviderRepository) GenerateLink(
	ctx context.Context,
	repositoryFolder string,
	identity entities.RepositoryIdentity,
	filePath string,
	lines entities.LineRange,
) (string, error) {
	host, err := identity.RequireProperty(entities.PropertyHost)
	if err != nil {
		return "", err
	}
	organization, err := identity.RequireProperty(entities.PropertyOrganization)
	if err != nil {
		return "", err
	}
	repository, err := identity.RequireProperty(entities.PropertyRepository)
	if err != nil {
		return "", err
	}

	ref, err := p.resolveRef(ctx, repositoryFolder)
	if err != nil {
		return "", err
	}

	relativePath, err := entities.RelativeLinkPath(repositoryFolder, filePath)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf(
		"https://%s/%s/%s/blob/%s/%s",
		host, organization, repository, entities.EscapeRef(ref), relativePath,
	)

	isGitHub := strings.Contains(strings.ToLower(host), githubHostMarker)
	if p.byCommit {
		url += commitAnchor(lines, isGitHub)
	} else {
		url += branchAnchor(lines, isGitHub)
	}

	logger.Debugf("[%s] Generated link for %s: %s", p.name, filePath, url)
	return url, nil
}

func (p *GenericProviderRepository) resolveRef(ctx context.Context, repositoryFolder string) (string, error) {
	if p.byCommit {
		commit := p.resolver.GetBestCommit(ctx, repositoryFolder)
		if commit == "" {
			return "", fmt.Errorf("%w in %s", entities.ErrEmptyCommit, repositoryFolder)
		}
		return commit, nil
	}

	branch := p.resolver.GetBestRemoteBranch(ctx, repositoryFolder)
	if branch == "" {
		return "", fmt.Errorf("%w in %s", entities.ErrEmptyBranch, repositoryFolder)
	}
	return branch, nil
}

// commitAnchor: "#L{start+1}" when a start line is given, then "-L{end+1}"
// only on GitHub hosts, which understand line ranges in that form.
func commitAnchor(lines entities.LineRange, isGitHub bool) string {
	if !lines.HasStart() {
		return ""
	}

	anchor := fmt.Sprintf("#L%d", *lines.StartLine+1)
	if lines.HasEnd() && isGitHub {
		anchor += fmt.Sprintf("-L%d", *lines.EndLine+1)
	}
	return anchor
}

// branchAnchor keeps the historical branch-link format: the first anchor is
// the end line and the GitHub range suffix is the start line.
func branchAnchor(lines entities.LineRange, isGitHub bool) string {
	if !lines.HasStart() {
		return ""
	}

	first := *lines.StartLine
	if lines.HasEnd() {
		first = *lines.EndLine
	}

	anchor := fmt.Sprintf("#L%d", first+1)
	if lines.HasEnd() && isGitHub {
		anchor += fmt.Sprintf("-L%d", *lines.StartLine+1)
	}
	return anchor
}

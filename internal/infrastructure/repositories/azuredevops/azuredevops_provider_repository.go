package azuredevops

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
	providerName = "azuredevops"

	devAzureHost       = "dev.azure.com"
	visualStudioSuffix = ".visualstudio.com"
	tfsPort            = "8080"
	tfsSegment         = "tfs/"

	minDevAzureSegments     = 3
	minVisualStudioSegments = 4
	minTfsSegments          = 5
)

// bannedSegments are boilerplate path segments that never carry an
// organization, project or repository name. Compared case-insensitively.
//
//nolint:gochecknoglobals // read-only lookup table
var bannedSegments = []string{
	"/",
	"_git/",
	"_ssh/",
	"_optimized/",
	"_full/",
	"DefaultCollection/",
}

// query values must not leak separators into the surrounding query string
//
//nolint:gochecknoglobals // read-only replacer
var queryUnsafe = strings.NewReplacer("&", "%26", "+", "%2B", "=", "%3D")

// AzureDevOpsProviderRepository implements repositories.ProviderRepository for
// Azure DevOps services, legacy visualstudio.com accounts and on-premises TFS servers.
type AzureDevOpsProviderRepository struct {
	resolver repositories.BranchCommitRepository
}

// NewAzureDevOpsProviderRepository creates a new Azure DevOps provider.
func NewAzureDevOpsProviderRepository(
	resolver repositories.BranchCommitRepository,
) repositories.ProviderRepository {
	return &AzureDevOpsProviderRepository{resolver: resolver}
}

func (p *AzureDevOpsProviderRepository) Name() string { return providerName }

// TryParse recognizes three URL shapes:
//
//	https://dev.azure.com/{org}/[DefaultCollection/]{project}/_git/{repo}
//	https://{org}.visualstudio.com/[DefaultCollection/]{project}/_git/{repo}
//	https://{server}:8080/tfs/{project}/_git/{repo}
//
// Trailing slashes and query strings are ignored.
func (p *AzureDevOpsProviderRepository) TryParse(remoteURL string) (map[string]string, bool) {
	u, ok := remoteurl.ParseHTTP(remoteURL)
	if !ok {
		return nil, false
	}

	hostname := remoteurl.Hostname(u)
	segments := remoteurl.Segments(u)

	var props map[string]string
	switch {
	case hostname == devAzureHost:
		if len(segments) < minDevAzureSegments {
			return nil, false
		}
		props, ok = assignSegments(segments, []string{
			entities.PropertyOrganization,
			entities.PropertyProject,
			entities.PropertyRepository,
		})
		if !ok {
			return nil, false
		}
		props[entities.PropertyOrganizationURL] = fmt.Sprintf(
			"%s://%s/%s/", u.Scheme, hostname, props[entities.PropertyOrganization],
		)

	case strings.Count(hostname, ".") == 2 &&
		strings.HasSuffix(hostname, visualStudioSuffix) &&
		len(segments) >= minVisualStudioSegments:
		props, ok = assignSegments(segments, []string{
			entities.PropertyProject,
			entities.PropertyRepository,
		})
		if !ok {
			return nil, false
		}
		props[entities.PropertyOrganization] = strings.SplitN(hostname, ".", 2)[0] //nolint:mnd // "{org}.visualstudio.com"
		props[entities.PropertyOrganizationURL] = fmt.Sprintf("%s://%s/", u.Scheme, hostname)

	case u.Port() == tfsPort && len(segments) >= minTfsSegments && segments[1] == tfsSegment:
		props = map[string]string{
			entities.PropertyOrganization: hostname,
			entities.PropertyProject:      remoteurl.TrimSegment(segments[2]),
			entities.PropertyRepository:   remoteurl.TrimSegment(segments[4]),
		}
		if props[entities.PropertyProject] == "" || props[entities.PropertyRepository] == "" {
			return nil, false
		}
		props[entities.PropertyOrganizationURL] = fmt.Sprintf("%s://%s/tfs/", u.Scheme, remoteurl.Host(u))

	default:
		return nil, false
	}

	props[entities.PropertyRepositoryURL] = fmt.Sprintf(
		"%s%s/_git/%s/",
		props[entities.PropertyOrganizationURL],
		props[entities.PropertyProject],
		props[entities.PropertyRepository],
	)
	return props, true
}

// GenerateLink builds "{RepositoryUrl}?path={path}&version=GB{branch}&lineStyle=plain"
// and appends each known bound of the selection as its own query parameter.
func (p *AzureDevOpsProviderRepository) GenerateLink(
	ctx context.Context,
	repositoryFolder string,
	identity entities.RepositoryIdentity,
	filePath string,
	lines entities.LineRange,
) (string, error) {
	repositoryURL, err := identity.RequireProperty(entities.PropertyRepositoryURL)
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

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s?path=%s&version=GB%s&lineStyle=plain",
		repositoryURL,
		queryUnsafe.Replace(relativePath),
		queryUnsafe.Replace(entities.EscapeRef(branch)),
	)
	appendBound(&sb, "line", lines.StartLine)
	appendBound(&sb, "lineEnd", lines.EndLine)
	appendBound(&sb, "lineStartColumn", lines.StartColumn)
	appendBound(&sb, "lineEndColumn", lines.EndColumn)

	url := sb.String()
	logger.Debugf("[%s] Generated link for %s: %s", providerName, filePath, url)
	return url, nil
}

// assignSegments fills keys in order with the non-banned segments. More
// non-banned segments than keys, or fewer, is a parse failure.
func assignSegments(segments, keys []string) (map[string]string, bool) {
	props := make(map[string]string, len(keys)+2) //nolint:mnd // room for the two URL properties
	next := 0
	for _, segment := range segments {
		if isBannedSegment(segment) {
			continue
		}
		if next == len(keys) {
			return nil, false
		}
		value := remoteurl.TrimSegment(segment)
		if value == "" {
			return nil, false
		}
		props[keys[next]] = value
		next++
	}

	if next != len(keys) {
		return nil, false
	}
	return props, true
}

func isBannedSegment(segment string) bool {
	for _, banned := range bannedSegments {
		if strings.EqualFold(segment, banned) {
			return true
		}
	}
	return false
}

func appendBound(sb *strings.Builder, name string, value *int) {
	if value == nil {
		return
	}
	fmt.Fprintf(sb, "&%s=%d", name, *value+1)
}

package repositories

import (
	domainRepos "github.com/rios0rios0/copygitlink/internal/domain/repositories"
)

// ResolverFactory creates the branch/commit resolver for a remote name.
type ResolverFactory func(remoteName string) domainRepos.BranchCommitRepository

// DiscoveryFactory creates a discovery engine that parses remotes with parser.
// The caller owns the engine and must Close it.
type DiscoveryFactory func(parser domainRepos.RemoteURLParser, remoteName string) domainRepos.DiscoveryRepository

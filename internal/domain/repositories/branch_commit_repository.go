package repositories

import "context"

// BranchCommitRepository resolves the ref a link should point at.
// Both methods fail soft: any error yields an empty string.
type BranchCommitRepository interface {
	// GetBestRemoteBranch returns the current branch when it is not "HEAD" and
	// exists on the remote, otherwise the remote's default branch.
	GetBestRemoteBranch(ctx context.Context, repositoryFolder string) string

	// GetBestCommit returns the hash of the current commit.
	GetBestCommit(ctx context.Context, repositoryFolder string) string
}

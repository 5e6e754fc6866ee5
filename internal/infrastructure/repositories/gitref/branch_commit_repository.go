package gitref

import (
	"context"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/copygitlink/internal/domain/repositories"
)

const headName = "HEAD"

// BranchCommitRepository resolves branches and commits by reading the
// repository with go-git. It never runs the git binary and never fetches.
type BranchCommitRepository struct {
	remoteName string
}

// NewBranchCommitRepository creates a resolver that checks branches against remoteName.
func NewBranchCommitRepository(remoteName string) repositories.BranchCommitRepository {
	return &BranchCommitRepository{remoteName: remoteName}
}

// GetBestRemoteBranch returns the checked out branch when the remote has it,
// otherwise the branch the remote's HEAD points at. Errors yield "".
func (r *BranchCommitRepository) GetBestRemoteBranch(ctx context.Context, repositoryFolder string) string {
	if ctx.Err() != nil {
		return ""
	}

	repo, err := open(repositoryFolder)
	if err != nil {
		logger.Debugf("Cannot open repository at %s: %v", repositoryFolder, err)
		return ""
	}

	if head, headErr := repo.Head(); headErr == nil && head.Name().IsBranch() {
		branch := head.Name().Short()
		if branch != headName {
			remoteRef := plumbing.NewRemoteReferenceName(r.remoteName, branch)
			if _, refErr := repo.Reference(remoteRef, false); refErr == nil {
				return branch
			}
			logger.Debugf("Branch %q does not exist on remote %q", branch, r.remoteName)
		}
	}

	return r.remoteDefaultBranch(repo)
}

// GetBestCommit returns the hash HEAD points at. Errors yield "".
func (r *BranchCommitRepository) GetBestCommit(ctx context.Context, repositoryFolder string) string {
	if ctx.Err() != nil {
		return ""
	}

	repo, err := open(repositoryFolder)
	if err != nil {
		logger.Debugf("Cannot open repository at %s: %v", repositoryFolder, err)
		return ""
	}

	head, err := repo.Head()
	if err != nil {
		logger.Debugf("Cannot resolve HEAD in %s: %v", repositoryFolder, err)
		return ""
	}
	return head.Hash().String()
}

// remoteDefaultBranch reads the symbolic "refs/remotes/<remote>/HEAD".
func (r *BranchCommitRepository) remoteDefaultBranch(repo *git.Repository) string {
	ref, err := repo.Reference(plumbing.NewRemoteHEADReferenceName(r.remoteName), false)
	if err != nil {
		logger.Debugf("Remote %q has no default branch: %v", r.remoteName, err)
		return ""
	}
	if ref.Type() != plumbing.SymbolicReference {
		return ""
	}

	prefix := "refs/remotes/" + r.remoteName + "/"
	return strings.TrimPrefix(ref.Target().String(), prefix)
}

func open(repositoryFolder string) (*git.Repository, error) {
	return git.PlainOpenWithOptions(repositoryFolder, &git.PlainOpenOptions{
		EnableDotGitCommonDir: true,
	})
}

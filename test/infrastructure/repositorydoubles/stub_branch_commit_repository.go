//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/copygitlink/internal/domain/repositories"
)

// StubBranchCommitRepository returns fixed branch and commit values.
type StubBranchCommitRepository struct {
	Branch string
	Commit string

	BranchCallCount int
	CommitCallCount int
}

var _ repositories.BranchCommitRepository = (*StubBranchCommitRepository)(nil)

func (s *StubBranchCommitRepository) GetBestRemoteBranch(_ context.Context, _ string) string {
	s.BranchCallCount++
	return s.Branch
}

func (s *StubBranchCommitRepository) GetBestCommit(_ context.Context, _ string) string {
	s.CommitCallCount++
	return s.Commit
}

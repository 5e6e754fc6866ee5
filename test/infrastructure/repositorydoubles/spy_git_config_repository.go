//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"path/filepath"
	"sync"

	"github.com/rios0rios0/copygitlink/internal/domain/repositories"
)

// SpyGitConfigRepository simulates a filesystem of repositories keyed by folder.
// Folders are compared after filepath.Clean.
type SpyGitConfigRepository struct {
	// Repositories holds the folders that contain a .git entry.
	Repositories map[string]bool
	// RemoteURLs maps folder -> remote name -> URL.
	RemoteURLs map[string]map[string]string
	// ReadErrs maps folder -> error returned by ReadRemoteURL.
	ReadErrs map[string]error

	// ReadStarted, when set, receives a value each time ReadRemoteURL is entered.
	ReadStarted chan struct{}
	// Block, when set, is received from before every ReadRemoteURL returns.
	Block chan struct{}

	HasRepositoryCalls []string
	ReadCalls          []string

	mu sync.Mutex
}

var _ repositories.GitConfigRepository = (*SpyGitConfigRepository)(nil)

// NewSpyGitConfigRepository creates an empty spy.
func NewSpyGitConfigRepository() *SpyGitConfigRepository {
	return &SpyGitConfigRepository{
		Repositories: make(map[string]bool),
		RemoteURLs:   make(map[string]map[string]string),
		ReadErrs:     make(map[string]error),
	}
}

// WithRepository registers folder as a repository with the given remotes (name, url pairs).
func (s *SpyGitConfigRepository) WithRepository(folder string, remotes map[string]string) *SpyGitConfigRepository {
	folder = filepath.Clean(folder)
	s.Repositories[folder] = true
	if remotes != nil {
		s.RemoteURLs[folder] = remotes
	}
	return s
}

func (s *SpyGitConfigRepository) HasRepository(folder string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	folder = filepath.Clean(folder)
	s.HasRepositoryCalls = append(s.HasRepositoryCalls, folder)
	return s.Repositories[folder]
}

func (s *SpyGitConfigRepository) ReadRemoteURL(folder, remoteName string) (string, error) {
	if s.ReadStarted != nil {
		s.ReadStarted <- struct{}{}
	}
	if s.Block != nil {
		<-s.Block
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	folder = filepath.Clean(folder)
	s.ReadCalls = append(s.ReadCalls, folder)
	if err := s.ReadErrs[folder]; err != nil {
		return "", err
	}
	return s.RemoteURLs[folder][remoteName], nil
}

// ReadCallCount returns how many times ReadRemoteURL was called.
func (s *SpyGitConfigRepository) ReadCallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ReadCalls)
}

// HasRepositoryCallCount returns how many times HasRepository was called.
func (s *SpyGitConfigRepository) HasRepositoryCallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.HasRepositoryCalls)
}

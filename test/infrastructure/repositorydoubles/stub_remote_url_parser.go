//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"sync"

	"github.com/rios0rios0/copygitlink/internal/domain/entities"
	"github.com/rios0rios0/copygitlink/internal/domain/repositories"
)

// StubRemoteURLParser recognizes only the URLs it was given identities for.
type StubRemoteURLParser struct {
	Identities map[string]entities.RepositoryIdentity
	ParsedURLs []string

	mu sync.Mutex
}

var _ repositories.RemoteURLParser = (*StubRemoteURLParser)(nil)

// NewStubRemoteURLParser creates a parser that recognizes nothing yet.
func NewStubRemoteURLParser() *StubRemoteURLParser {
	return &StubRemoteURLParser{Identities: make(map[string]entities.RepositoryIdentity)}
}

// Recognize makes the stub return identity for remoteURL.
func (s *StubRemoteURLParser) Recognize(remoteURL string, identity entities.RepositoryIdentity) *StubRemoteURLParser {
	s.Identities[remoteURL] = identity
	return s
}

func (s *StubRemoteURLParser) Parse(remoteURL string) (*entities.RepositoryIdentity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ParsedURLs = append(s.ParsedURLs, remoteURL)
	identity, ok := s.Identities[remoteURL]
	if !ok {
		return nil, false
	}
	return &identity, true
}

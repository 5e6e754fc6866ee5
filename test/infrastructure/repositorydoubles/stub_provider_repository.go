//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"sync"

	"github.com/rios0rios0/copygitlink/internal/domain/entities"
	"github.com/rios0rios0/copygitlink/internal/domain/repositories"
)

// SpyProviderRepository implements repositories.ProviderRepository as a configurable spy.
// Configure the response fields for the methods your test exercises,
// then inspect the call-tracking fields to verify behavior.
type SpyProviderRepository struct {
	// --- identity ---
	ProviderName string

	// --- TryParse ---
	// ParseResults maps a remote URL to the properties returned for it.
	// URLs missing from the map are not recognized.
	ParseResults map[string]map[string]string
	ParsedURLs   []string

	// --- GenerateLink ---
	Link            string
	GenerateLinkErr error
	LinkRequests    []LinkRequest

	mu sync.Mutex
}

// LinkRequest records the arguments of one GenerateLink call.
type LinkRequest struct {
	RepositoryFolder string
	Identity         entities.RepositoryIdentity
	FilePath         string
	Lines            entities.LineRange
}

var _ repositories.ProviderRepository = (*SpyProviderRepository)(nil)

func (p *SpyProviderRepository) Name() string { return p.ProviderName }

func (p *SpyProviderRepository) TryParse(remoteURL string) (map[string]string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.ParsedURLs = append(p.ParsedURLs, remoteURL)
	props, ok := p.ParseResults[remoteURL]
	return props, ok
}

func (p *SpyProviderRepository) GenerateLink(
	_ context.Context,
	repositoryFolder string,
	identity entities.RepositoryIdentity,
	filePath string,
	lines entities.LineRange,
) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.LinkRequests = append(p.LinkRequests, LinkRequest{
		RepositoryFolder: repositoryFolder,
		Identity:         identity,
		FilePath:         filePath,
		Lines:            lines,
	})
	if p.GenerateLinkErr != nil {
		return "", p.GenerateLinkErr
	}
	return p.Link, nil
}

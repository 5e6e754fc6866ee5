package repositories

import (
	"fmt"

	"github.com/rios0rios0/copygitlink/internal/domain/entities"
	domainRepos "github.com/rios0rios0/copygitlink/internal/domain/repositories"
)

// ProviderFactory is a constructor function that creates a ProviderRepository
// given the resolver its link builder reads branches and commits from.
type ProviderFactory func(resolver domainRepos.BranchCommitRepository) domainRepos.ProviderRepository

// ProviderRegistry manages all registered Git provider implementations.
// Registration order is preserved and is the default parsing order.
type ProviderRegistry struct {
	providers map[string]ProviderFactory
	order     []string
}

// NewProviderRegistry creates an empty provider registry.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		providers: make(map[string]ProviderFactory),
	}
}

// Register adds a provider factory under the given name (e.g. "generic").
// Registering a name twice replaces the factory but keeps its position.
func (r *ProviderRegistry) Register(name string, factory ProviderFactory) {
	if _, exists := r.providers[name]; !exists {
		r.order = append(r.order, name)
	}
	r.providers[name] = factory
}

// Get returns a provider instance for the given name, wired to resolver.
func (r *ProviderRegistry) Get(
	name string,
	resolver domainRepos.BranchCommitRepository,
) (domainRepos.ProviderRepository, error) {
	factory, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", entities.ErrUnknownProvider, name)
	}
	return factory(resolver), nil
}

// Names returns the registered provider names in registration order.
func (r *ProviderRegistry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Select builds a chain with the named providers, in the given order.
// An empty list selects every registered provider.
func (r *ProviderRegistry) Select(
	names []string,
	resolver domainRepos.BranchCommitRepository,
) (*ProviderChain, error) {
	if len(names) == 0 {
		names = r.order
	}

	providers := make([]domainRepos.ProviderRepository, 0, len(names))
	for _, name := range names {
		provider, err := r.Get(name, resolver)
		if err != nil {
			return nil, err
		}
		providers = append(providers, provider)
	}
	return NewProviderChain(providers...), nil
}

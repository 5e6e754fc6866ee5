//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"maps"

	"github.com/rios0rios0/copygitlink/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

const (
	defaultRemoteURI    = "https://github.com/test-org/test-repo.git"
	defaultProviderName = "generic"
)

func defaultProperties() map[string]string {
	return map[string]string{
		entities.PropertyHost:         "github.com",
		entities.PropertyOrganization: "test-org",
		entities.PropertyRepository:   "test-repo",
	}
}

// RepositoryIdentityBuilder helps create test identities with a fluent interface.
type RepositoryIdentityBuilder struct {
	*testkit.BaseBuilder
	remoteURI    string
	providerName string
	properties   map[string]string
}

// NewRepositoryIdentityBuilder creates a new builder for a generic github.com identity.
func NewRepositoryIdentityBuilder() *RepositoryIdentityBuilder {
	return &RepositoryIdentityBuilder{
		BaseBuilder:  testkit.NewBaseBuilder(),
		remoteURI:    defaultRemoteURI,
		providerName: defaultProviderName,
		properties:   defaultProperties(),
	}
}

// WithRemoteURI sets the push URL the identity was parsed from.
func (b *RepositoryIdentityBuilder) WithRemoteURI(uri string) *RepositoryIdentityBuilder {
	b.remoteURI = uri
	return b
}

// WithProviderName sets the owning provider.
func (b *RepositoryIdentityBuilder) WithProviderName(name string) *RepositoryIdentityBuilder {
	b.providerName = name
	return b
}

// WithProperty sets a single property.
func (b *RepositoryIdentityBuilder) WithProperty(key, value string) *RepositoryIdentityBuilder {
	b.properties[key] = value
	return b
}

// WithoutProperty removes a property.
func (b *RepositoryIdentityBuilder) WithoutProperty(key string) *RepositoryIdentityBuilder {
	delete(b.properties, key)
	return b
}

// AsAzureDevOps switches to a dev.azure.com identity.
func (b *RepositoryIdentityBuilder) AsAzureDevOps() *RepositoryIdentityBuilder {
	b.remoteURI = "https://dev.azure.com/test-org/test-project/_git/test-repo"
	b.providerName = "azuredevops"
	b.properties = map[string]string{
		entities.PropertyOrganization:    "test-org",
		entities.PropertyProject:         "test-project",
		entities.PropertyRepository:      "test-repo",
		entities.PropertyOrganizationURL: "https://dev.azure.com/test-org/",
		entities.PropertyRepositoryURL:   "https://dev.azure.com/test-org/test-project/_git/test-repo/",
	}
	return b
}

// Build creates the identity (satisfies testkit.Builder interface).
func (b *RepositoryIdentityBuilder) Build() interface{} {
	return b.BuildIdentity()
}

// BuildIdentity creates the identity with a concrete return type.
func (b *RepositoryIdentityBuilder) BuildIdentity() entities.RepositoryIdentity {
	return entities.NewRepositoryIdentity(b.remoteURI, b.properties, b.providerName)
}

// Reset clears the builder state, allowing it to be reused.
func (b *RepositoryIdentityBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.remoteURI = defaultRemoteURI
	b.providerName = defaultProviderName
	b.properties = defaultProperties()
	return b
}

// Clone creates a deep copy of the RepositoryIdentityBuilder.
func (b *RepositoryIdentityBuilder) Clone() testkit.Builder {
	return &RepositoryIdentityBuilder{
		BaseBuilder:  b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		remoteURI:    b.remoteURI,
		providerName: b.providerName,
		properties:   maps.Clone(b.properties),
	}
}

package entities

import (
	"fmt"
	"maps"
)

// Property keys emitted by the provider parsers.
const (
	PropertyHost            = "Host"
	PropertyOrganization    = "Organization"
	PropertyProject         = "Project"
	PropertyRepository      = "Repository"
	PropertyOrganizationURL = "OrganizationUrl"
	PropertyRepositoryURL   = "RepositoryUrl"
)

// RepositoryIdentity is the structured form of a remote push URL.
// It is immutable once built: Properties returns a copy.
type RepositoryIdentity struct {
	remoteURI    string
	properties   map[string]string
	providerName string
}

// NewRepositoryIdentity copies the given properties into a new identity.
func NewRepositoryIdentity(
	remoteURI string,
	properties map[string]string,
	providerName string,
) RepositoryIdentity {
	return RepositoryIdentity{
		remoteURI:    remoteURI,
		properties:   maps.Clone(properties),
		providerName: providerName,
	}
}

// RemoteURI returns the raw push URL the identity was parsed from.
func (r RepositoryIdentity) RemoteURI() string { return r.remoteURI }

// ProviderName returns the name of the provider that owns this identity.
func (r RepositoryIdentity) ProviderName() string { return r.providerName }

// Properties returns a copy of the provider-specific properties.
func (r RepositoryIdentity) Properties() map[string]string {
	return maps.Clone(r.properties)
}

// Property returns a single property and whether it is present.
func (r RepositoryIdentity) Property(key string) (string, bool) {
	value, ok := r.properties[key]
	return value, ok
}

// RequireProperty returns the property or ErrMissingProperty when it is absent or empty.
func (r RepositoryIdentity) RequireProperty(key string) (string, error) {
	value, ok := r.properties[key]
	if !ok || value == "" {
		return "", fmt.Errorf("%w: %q (provider %q)", ErrMissingProperty, key, r.providerName)
	}
	return value, nil
}

// IsZero reports whether the identity was never set.
func (r RepositoryIdentity) IsZero() bool {
	return r.remoteURI == "" && r.providerName == "" && len(r.properties) == 0
}

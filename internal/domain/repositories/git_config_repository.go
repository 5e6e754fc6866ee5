package repositories

// GitConfigRepository reads the pre-existing git configuration of a working tree.
// It never writes.
type GitConfigRepository interface {
	// HasRepository reports whether folder holds a ".git" entry with a readable config.
	HasRepository(folder string) bool

	// ReadRemoteURL returns the url of the given remote, or "" when the remote is absent.
	ReadRemoteURL(folder, remoteName string) (string, error)
}

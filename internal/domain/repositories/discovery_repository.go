package repositories

import (
	"context"

	"github.com/rios0rios0/copygitlink/internal/domain/entities"
)

// DiscoveryRepository finds the repository a file lives in and caches the
// resolved identity for the lifetime of the process.
type DiscoveryRepository interface {
	// QueueDiscovery schedules discovery for filePath and returns immediately.
	QueueDiscovery(filePath string)

	// DiscoverSync resolves filePath's repository before returning. It only
	// fails when ctx is cancelled.
	DiscoverSync(ctx context.Context, filePath string) error

	// IsKnown reports whether filePath is inside a cached remote repository. No I/O.
	IsKnown(filePath string) bool

	// TryGetKnown returns the repository folder and identity for filePath. No I/O.
	TryGetKnown(filePath string) (string, entities.RepositoryIdentity, bool)

	// IsKnownLocal reports whether filePath is inside a cached repository without a remote.
	IsKnownLocal(filePath string) bool

	// OnRepositoryFolderCreated is called back when a ".git" folder appears.
	// It re-runs discovery for path even if an enclosing folder is cached.
	OnRepositoryFolderCreated(ctx context.Context, path string) error

	// Close cancels queued work and waits for the worker to stop.
	Close()
}

package discovery

import (
	"context"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"

	"github.com/rios0rios0/copygitlink/internal/domain/entities"
	"github.com/rios0rios0/copygitlink/internal/domain/repositories"
)

const dotGit = ".git"

// cacheEntry is what discovery learned about one repository folder.
type cacheEntry struct {
	folder   string
	identity entities.RepositoryIdentity
	local    bool // the repository has no usable remote URL
}

// DiscoveryRepository finds the repository enclosing a file and caches the
// result per repository folder.
//
// Every discovery, queued or synchronous, runs behind a single gate so that at
// most one filesystem walk is in flight. Cache reads never take the gate.
type DiscoveryRepository struct {
	parser     repositories.RemoteURLParser
	gitConfig  repositories.GitConfigRepository
	remoteName string

	gate *semaphore.Weighted

	cacheMu sync.RWMutex
	cache   map[string]cacheEntry

	queueMu sync.Mutex
	queue   []string
	pending map[string]struct{}
	notify  chan struct{}

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewDiscoveryRepository creates the engine and starts its background worker.
// Call Close to stop it.
func NewDiscoveryRepository(
	parser repositories.RemoteURLParser,
	gitConfig repositories.GitConfigRepository,
	remoteName string,
) repositories.DiscoveryRepository {
	ctx, cancel := context.WithCancel(context.Background())
	r := &DiscoveryRepository{
		parser:     parser,
		gitConfig:  gitConfig,
		remoteName: remoteName,
		gate:       semaphore.NewWeighted(1),
		cache:      make(map[string]cacheEntry),
		pending:    make(map[string]struct{}),
		notify:     make(chan struct{}, 1),
		ctx:        ctx,
		cancel:     cancel,
	}

	r.wg.Add(1)
	go r.run()
	return r
}

// QueueDiscovery schedules discovery for filePath and returns immediately.
// A path that is already waiting in the queue is not queued twice.
func (r *DiscoveryRepository) QueueDiscovery(filePath string) {
	if r.ctx.Err() != nil {
		return
	}

	path := absolute(filePath)

	r.queueMu.Lock()
	if _, queued := r.pending[path]; !queued {
		r.pending[path] = struct{}{}
		r.queue = append(r.queue, path)
	}
	r.queueMu.Unlock()

	select {
	case r.notify <- struct{}{}:
	default:
	}
}

// DiscoverSync resolves the repository of filePath before returning. The only
// error is the one of ctx, in which case the cache is left untouched.
func (r *DiscoveryRepository) DiscoverSync(ctx context.Context, filePath string) error {
	path := absolute(filePath)
	return r.discover(ctx, filepath.Dir(path), path, false)
}

// OnRepositoryFolderCreated re-runs discovery from path (or from its parent
// when path is the ".git" folder itself), ignoring any cached enclosing repository.
func (r *DiscoveryRepository) OnRepositoryFolderCreated(ctx context.Context, path string) error {
	start := absolute(path)
	if filepath.Base(start) == dotGit {
		start = filepath.Dir(start)
	}

	logger.Debugf("Repository folder created under %s, rediscovering", start)
	return r.discover(ctx, start, start, true)
}

// IsKnown reports whether filePath is inside a cached repository with a recognized remote.
func (r *DiscoveryRepository) IsKnown(filePath string) bool {
	_, _, found := r.TryGetKnown(filePath)
	return found
}

// TryGetKnown returns the folder and identity of the repository enclosing
// filePath. Only repositories with a recognized remote are returned.
func (r *DiscoveryRepository) TryGetKnown(filePath string) (string, entities.RepositoryIdentity, bool) {
	entry, found := r.lookup(filepath.Dir(absolute(filePath)))
	if !found || entry.local {
		return "", entities.RepositoryIdentity{}, false
	}
	return entry.folder, entry.identity, true
}

// IsKnownLocal reports whether filePath is inside a cached repository without a usable remote.
func (r *DiscoveryRepository) IsKnownLocal(filePath string) bool {
	entry, found := r.lookup(filepath.Dir(absolute(filePath)))
	return found && entry.local
}

// Close abandons queued work and waits for the worker to stop.
func (r *DiscoveryRepository) Close() {
	r.cancel()
	r.wg.Wait()
}

func (r *DiscoveryRepository) run() {
	defer r.wg.Done()

	for {
		select {
		case <-r.ctx.Done():
			return
		case <-r.notify:
		}

		for {
			path, ok := r.dequeue()
			if !ok {
				break
			}
			if err := r.discover(r.ctx, filepath.Dir(path), path, false); err != nil {
				logger.Debugf("Queued discovery abandoned: %v", err)
				return
			}
		}
	}
}

func (r *DiscoveryRepository) dequeue() (string, bool) {
	r.queueMu.Lock()
	defer r.queueMu.Unlock()

	if len(r.queue) == 0 {
		return "", false
	}
	path := r.queue[0]
	r.queue = r.queue[1:]
	delete(r.pending, path)
	return path, true
}

// discover walks up from startDir under the gate. Unless forced, a cached
// enclosing repository short-circuits the walk.
func (r *DiscoveryRepository) discover(ctx context.Context, startDir, path string, force bool) error {
	if err := r.gate.Acquire(ctx, 1); err != nil {
		return err
	}
	defer r.gate.Release(1)

	if !force {
		if entry, found := r.lookup(startDir); found {
			logger.Debugf("Cache hit for %s: %s", path, entry.folder)
			return nil
		}
	}

	for dir := startDir; ; {
		if err := ctx.Err(); err != nil {
			return err
		}

		if r.gitConfig.HasRepository(dir) {
			return r.resolve(ctx, dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			logger.Debugf("%s is not part of any repository", path)
			return nil
		}
		dir = parent
	}
}

// resolve reads the remote of the repository at dir and records the outcome.
// The walk stops here whatever the outcome.
func (r *DiscoveryRepository) resolve(ctx context.Context, dir string) error {
	folder := entities.NormalizeRepositoryFolder(dir)
	logger.Debugf("Found repository at %s", folder)

	remoteURL, err := r.gitConfig.ReadRemoteURL(dir, r.remoteName)
	if err != nil {
		logger.Debugf("Cannot read remote %q of %s: %v", r.remoteName, folder, err)
		remoteURL = ""
	}

	// nothing is written once the caller gave up
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if remoteURL == "" {
		logger.Debugf("Repository %s has no %q remote, treating it as local-only", folder, r.remoteName)
		r.store(cacheEntry{folder: folder, local: true})
		return nil
	}

	identity, ok := r.parser.Parse(remoteURL)
	if !ok {
		logger.Debugf("Remote %q of %s is not recognized by any provider", remoteURL, folder)
		r.forget(folder)
		return nil
	}

	r.store(cacheEntry{folder: folder, identity: *identity})
	return nil
}

// lookup returns the deepest cached folder enclosing dir.
func (r *DiscoveryRepository) lookup(dir string) (cacheEntry, bool) {
	r.cacheMu.RLock()
	defer r.cacheMu.RUnlock()

	if len(r.cache) == 0 {
		return cacheEntry{}, false
	}

	for current := filepath.Clean(dir); ; {
		if entry, found := r.cache[cacheKey(current)]; found {
			return entry, true
		}
		parent := filepath.Dir(current)
		if parent == current {
			return cacheEntry{}, false
		}
		current = parent
	}
}

func (r *DiscoveryRepository) store(entry cacheEntry) {
	r.cacheMu.Lock()
	defer r.cacheMu.Unlock()
	r.cache[cacheKey(entry.folder)] = entry
}

func (r *DiscoveryRepository) forget(folder string) {
	r.cacheMu.Lock()
	defer r.cacheMu.Unlock()
	delete(r.cache, cacheKey(folder))
}

// cacheKey normalizes a folder so that lookups agree with the filesystem's
// case sensitivity.
func cacheKey(folder string) string {
	key := entities.NormalizeRepositoryFolder(folder)
	if runtime.GOOS == "windows" {
		return strings.ToLower(key)
	}
	return key
}

func absolute(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

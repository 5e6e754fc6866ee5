package gitconfig

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	format "github.com/go-git/go-git/v5/plumbing/format/config"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/copygitlink/internal/domain/repositories"
)

const (
	dotGit        = ".git"
	configFile    = "config"
	commonDirFile = "commondir"
	gitDirPrefix  = "gitdir:"
	remoteSection = "remote"
	urlKey        = "url"
)

// GitConfigRepository reads remotes from the ".git/config" of a working tree.
// Worktrees and submodules, whose ".git" is a file pointing elsewhere, are followed.
type GitConfigRepository struct{}

// NewGitConfigRepository creates a new GitConfigRepository.
func NewGitConfigRepository() repositories.GitConfigRepository {
	return &GitConfigRepository{}
}

// HasRepository reports whether folder holds a ".git" entry with a config file.
func (r *GitConfigRepository) HasRepository(folder string) bool {
	_, err := locateConfig(folder)
	return err == nil
}

// ReadRemoteURL returns the first url of remoteName, or "" when the remote is not configured.
func (r *GitConfigRepository) ReadRemoteURL(folder, remoteName string) (string, error) {
	path, err := locateConfig(folder)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	// only the raw INI is decoded: sections unrelated to the remote are never validated
	cfg := format.New()
	if err = format.NewDecoder(bytes.NewReader(data)).Decode(cfg); err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", path, err)
	}

	urls := cfg.Section(remoteSection).Subsection(remoteName).OptionAll(urlKey)
	if len(urls) == 0 {
		logger.Debugf("No remote %q configured in %s", remoteName, path)
		return "", nil
	}
	return strings.TrimSpace(urls[0]), nil
}

// locateConfig returns the path of the config file that applies to the working
// tree at folder.
func locateConfig(folder string) (string, error) {
	gitDir, err := resolveGitDir(filepath.Join(folder, dotGit))
	if err != nil {
		return "", err
	}

	path := filepath.Join(commonDir(gitDir), configFile)
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("no git config in %s: %w", folder, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", path)
	}
	return path, nil
}

// resolveGitDir follows a "gitdir: <path>" file to the real git directory.
func resolveGitDir(dotGitPath string) (string, error) {
	info, err := os.Stat(dotGitPath)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return dotGitPath, nil
	}

	data, err := os.ReadFile(dotGitPath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", dotGitPath, err)
	}

	line := strings.TrimSpace(string(data))
	if !strings.HasPrefix(line, gitDirPrefix) {
		return "", fmt.Errorf("%s is not a gitdir file", dotGitPath)
	}

	target := strings.TrimSpace(strings.TrimPrefix(line, gitDirPrefix))
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(dotGitPath), target)
	}
	return filepath.Clean(target), nil
}

// commonDir returns the directory shared by linked worktrees, or gitDir itself.
func commonDir(gitDir string) string {
	data, err := os.ReadFile(filepath.Join(gitDir, commonDirFile))
	if err != nil {
		return gitDir
	}

	target := strings.TrimSpace(string(data))
	if target == "" {
		return gitDir
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(gitDir, target)
	}
	return filepath.Clean(target)
}

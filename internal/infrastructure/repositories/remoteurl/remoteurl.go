// Package remoteurl holds the URL plumbing shared by the provider parsers.
package remoteurl

import (
	"net/url"
	"strings"
)

const (
	sshPrefixGit = "git@"
	sshPrefixSSH = "ssh@"
)

// HasSSHPrefix reports whether rawURL starts with "git@" or "ssh@" (case-insensitive).
func HasSSHPrefix(rawURL string) bool {
	if len(rawURL) < len(sshPrefixGit) {
		return false
	}
	prefix := rawURL[:len(sshPrefixGit)]
	return strings.EqualFold(prefix, sshPrefixGit) || strings.EqualFold(prefix, sshPrefixSSH)
}

// ConvertSSHToHTTP rewrites an scp-like SSH remote ("git@host:org/repo.git")
// into its HTTPS form ("https://host/org/repo.git"). Other inputs are returned unchanged.
func ConvertSSHToHTTP(rawURL string) string {
	if !HasSSHPrefix(rawURL) || len(rawURL) <= len(sshPrefixGit) {
		return rawURL
	}
	return "https://" + strings.Replace(rawURL[len(sshPrefixGit):], ":", "/", 1)
}

// ParseHTTP parses rawURL and accepts it only when the scheme is http or https
// and a host is present.
func ParseHTTP(rawURL string) (*url.URL, bool) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return nil, false
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, false
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, false
	}
	if u.Hostname() == "" {
		return nil, false
	}

	return u, true
}

// Host returns the lowercased host of u, port included when one is explicit.
func Host(u *url.URL) string {
	return strings.ToLower(u.Host)
}

// Hostname returns the lowercased host of u without port.
func Hostname(u *url.URL) string {
	return strings.ToLower(u.Hostname())
}

// Segments splits the escaped path of u the way URI segment lists are usually
// presented: the root "/" first, then every element keeping its trailing "/".
//
//	"/org/repo.git"  -> ["/", "org/", "repo.git"]
//	"/org/repo/"     -> ["/", "org/", "repo/"]
//	""               -> ["/"]
func Segments(u *url.URL) []string {
	segments := []string{"/"}

	rest := strings.TrimPrefix(u.EscapedPath(), "/")
	for rest != "" {
		idx := strings.Index(rest, "/")
		if idx < 0 {
			segments = append(segments, rest)
			break
		}
		segments = append(segments, rest[:idx+1])
		rest = rest[idx+1:]
	}

	return segments
}

// TrimSegment removes the trailing "/" of a segment.
func TrimSegment(segment string) string {
	return strings.TrimRight(segment, "/")
}

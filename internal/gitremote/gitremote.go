// Package gitremote derives a browsable tracker URL from a repository's
// git remote. It is the last fallback for `todolint open` when neither
// the configuration nor a package manifest names a tracker.
package gitremote

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"strings"
)

// Runner executes an external command and returns its stdout. Injectable
// so tests never have to shell out to git.
type Runner func(ctx context.Context, dir, name string, args ...string) ([]byte, error)

func gitRunner(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if dir != "" {
		cmd.Dir = dir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}
	return stdout.Bytes(), nil
}

// Info holds the host, owner and repository extracted from a git remote.
type Info struct {
	Host   string
	Owner  string
	Repo   string
	Scheme string
}

// Detect reads the remote URL of repoDir and parses it. The remote name
// defaults to origin and can be overridden with TODOLINT_REMOTE.
func Detect(ctx context.Context, run Runner, repoDir string) (Info, error) {
	if run == nil {
		run = gitRunner
	}
	name := strings.TrimSpace(os.Getenv("TODOLINT_REMOTE"))
	if name == "" {
		name = "origin"
	}
	key := fmt.Sprintf("remote.%s.url", name)
	stdout, err := run(ctx, repoDir, "git", "config", "--get", key)
	if err != nil {
		return Info{}, fmt.Errorf("git config --get %s: %w", key, err)
	}
	remote := strings.TrimSpace(string(stdout))
	if remote == "" {
		return Info{}, fmt.Errorf("%s is empty", key)
	}
	return Parse(remote)
}

// Parse understands the common remote spellings: scp-like ssh
// (git@host:owner/repo.git), ssh:// and git:// URLs, and plain http(s).
func Parse(raw string) (Info, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Info{}, errors.New("empty remote url")
	}
	if rest, ok := strings.CutPrefix(raw, "git@"); ok {
		host, p, ok := strings.Cut(rest, ":")
		if !ok {
			return Info{}, fmt.Errorf("invalid ssh remote: %s", raw)
		}
		owner, repo, err := splitOwnerRepo(p)
		if err != nil {
			return Info{}, err
		}
		return Info{Host: strings.ToLower(strings.TrimSpace(host)), Owner: owner, Repo: repo}, nil
	}
	switch {
	case strings.HasPrefix(raw, "ssh://"),
		strings.HasPrefix(raw, "git://"),
		strings.HasPrefix(raw, "http://"),
		strings.HasPrefix(raw, "https://"):
		u, err := url.Parse(raw)
		if err != nil {
			return Info{}, fmt.Errorf("invalid remote url: %w", err)
		}
		cleaned, err := url.PathUnescape(strings.TrimPrefix(u.Path, "/"))
		if err != nil {
			return Info{}, fmt.Errorf("invalid remote path: %w", err)
		}
		owner, repo, err := splitOwnerRepo(cleaned)
		if err != nil {
			return Info{}, err
		}
		info := Info{
			Host:  strings.ToLower(strings.TrimSpace(u.Hostname())),
			Owner: owner,
			Repo:  repo,
		}
		if s := strings.ToLower(u.Scheme); s == "http" || s == "https" {
			info.Scheme = s
		}
		return info, nil
	}
	return Info{}, fmt.Errorf("unsupported remote url: %s", raw)
}

func splitOwnerRepo(p string) (string, string, error) {
	cleaned := strings.TrimSuffix(strings.TrimSpace(p), ".git")
	cleaned = strings.Trim(cleaned, "/")
	segments := strings.Split(cleaned, "/")
	if len(segments) < 2 {
		return "", "", errors.New("remote url must include owner and repo")
	}
	owner := segments[len(segments)-2]
	repo := segments[len(segments)-1]
	if owner == "" || repo == "" {
		return "", "", errors.New("invalid owner or repo in remote url")
	}
	return owner, repo, nil
}

// WebURL returns the browsable base URL for the repository.
func (i Info) WebURL() string {
	host := strings.TrimSuffix(i.Host, "/")
	return fmt.Sprintf("%s://%s/%s/%s", i.scheme(), host, url.PathEscape(i.Owner), url.PathEscape(i.Repo))
}

// IssuesURL returns the conventional issue-tracker URL for the repository.
func (i Info) IssuesURL() string {
	return i.WebURL() + "/issues"
}

// ssh and git remotes have no browsable scheme, so default to https.
func (i Info) scheme() string {
	if i.Scheme == "http" {
		return "http"
	}
	return "https"
}
